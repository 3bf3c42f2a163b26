package qoi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Decode reconstructs an image from a complete QOI stream held in
// memory. On error no partially decoded image is returned.
func Decode(data []byte) (*Image, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	numPixels := uint64(header.Width) * uint64(header.Height)
	if numPixels > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, header.Width, header.Height, maxPixels)
	}
	img := &Image{
		Pix:        make([]byte, int(numPixels)*int(header.Channels)),
		Width:      int(header.Width),
		Height:     int(header.Height),
		Channels:   header.Channels,
		Colorspace: header.Colorspace,
	}
	if err := decodePixels(data[HeaderSize:], img.Pix, int(header.Channels)); err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeIntoBuffer decodes like Decode but writes pixel data into
// dest, which must be able to hold width*height*channels bytes. The
// returned image aliases dest.
func DecodeIntoBuffer(data []byte, dest []byte) (*Image, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	numPixels := uint64(header.Width) * uint64(header.Height)
	if numPixels > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, header.Width, header.Height, maxPixels)
	}
	need := int(numPixels) * int(header.Channels)
	if need > len(dest) {
		return nil, fmt.Errorf("%w: dest of %d bytes cannot fit image data totalling %d bytes", ErrBufferSizeMismatch, len(dest), need)
	}
	img := &Image{
		Pix:        dest[:need],
		Width:      int(header.Width),
		Height:     int(header.Height),
		Channels:   header.Channels,
		Colorspace: header.Colorspace,
	}
	if err := decodePixels(data[HeaderSize:], img.Pix, int(header.Channels)); err != nil {
		return nil, err
	}
	return img, nil
}

// decodePixels runs the chunk stream after the header into dst, which
// holds bytesPerPixel bytes per pixel. All decoder state is local to
// the call: the 64-slot index cache starts zeroed and the previous
// pixel starts at (0,0,0,255).
func decodePixels(data []byte, dst []byte, bytesPerPixel int) error {
	var index [64]pixel
	px := pixel{0, 0, 0, 255}

	numPixels := len(dst) / bytesPerPixel
	decoded := 0
	pos := 0
	for decoded < numPixels {
		if pos >= len(data) {
			return fmt.Errorf("%w: chunk stream ended after %d of %d pixels", ErrTruncatedInput, decoded, numPixels)
		}
		b1 := data[pos]
		pos++
		run := 1
		switch {
		case b1 == opRGB:
			if pos+3 > len(data) {
				return fmt.Errorf("%w: chunk stream ended inside an RGB chunk", ErrTruncatedInput)
			}
			px[0], px[1], px[2] = data[pos], data[pos+1], data[pos+2]
			pos += 3
		case b1 == opRGBA:
			if pos+4 > len(data) {
				return fmt.Errorf("%w: chunk stream ended inside an RGBA chunk", ErrTruncatedInput)
			}
			px[0], px[1], px[2], px[3] = data[pos], data[pos+1], data[pos+2], data[pos+3]
			pos += 4
		case b1&mask2 == opIndex:
			px = index[b1&0b111111]
		case b1&mask2 == opDiff:
			px[0] += ((b1 >> 4) & 0b11) - 2
			px[1] += ((b1 >> 2) & 0b11) - 2
			px[2] += (b1 & 0b11) - 2
		case b1&mask2 == opLuma:
			if pos >= len(data) {
				return fmt.Errorf("%w: chunk stream ended inside a LUMA chunk", ErrTruncatedInput)
			}
			b2 := data[pos]
			pos++
			dg := (b1 & 0b111111) - 32
			px[0] += dg - 8 + ((b2 >> 4) & 0b1111)
			px[1] += dg
			px[2] += dg - 8 + (b2 & 0b1111)
		default: // RUN
			raw := int(b1 & 0b111111)
			if raw >= maxRun {
				// 62 and 63 are reserved; they alias the RGB/RGBA tags
				return fmt.Errorf("%w: raw run value %d", ErrMalformedRun, raw)
			}
			run = raw + 1
		}

		index[colorHash(px)] = px

		// a run reaching past the last pixel is truncated to fit
		if run > numPixels-decoded {
			run = numPixels - decoded
		}
		for ; run > 0; run-- {
			copy(dst[decoded*bytesPerPixel:], px[:bytesPerPixel])
			decoded++
		}
	}
	if decoded != numPixels {
		return fmt.Errorf("%w: decoded %d pixels, header declared %d", ErrPixelCountMismatch, decoded, numPixels)
	}
	return nil
}

// DecodeConfig returns the color model and dimensions of a QOI image
// without decoding the pixel stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return image.Config{}, fmt.Errorf("%w: %v", ErrTruncatedInput, err)
		}
		return image.Config{}, err
	}
	header, err := DecodeHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: int(header.Width), Height: int(header.Height)}, nil
}

// decodeImage adapts Decode to the signature image.RegisterFormat
// wants. Streaming is deliberately not supported; the whole input is
// read up front.
func decodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
