package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Encode serializes img into a complete QOI stream: header, chunk
// stream, end marker. The output buffer is reserved up front for the
// worst case of one full literal chunk per pixel, so the hot loop
// never reallocates.
func Encode(img *Image) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	channels := int(img.Channels)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannelCount, img.Channels)
	}
	numPixels := img.Width * img.Height
	if numPixels >= maxPixels {
		return nil, fmt.Errorf("%w: image must have less than %d pixels total", ErrInvalidDimensions, maxPixels)
	}
	if len(img.Pix) != numPixels*channels {
		return nil, fmt.Errorf("%w: %d bytes of pixel data for a %dx%d image with %d channels",
			ErrBufferSizeMismatch, len(img.Pix), img.Width, img.Height, channels)
	}

	header, err := EncodeHeader(Header{
		Width:      uint32(img.Width),
		Height:     uint32(img.Height),
		Channels:   img.Channels,
		Colorspace: img.Colorspace,
	})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+numPixels*(channels+1)+len(endMarker))
	out = append(out, header...)

	var index [64]pixel
	prev := pixel{0, 0, 0, 255}
	px := pixel{0, 0, 0, 255}
	run := 0

	for off := 0; off < len(img.Pix); off += channels {
		px[0], px[1], px[2] = img.Pix[off], img.Pix[off+1], img.Pix[off+2]
		if channels == 4 {
			px[3] = img.Pix[off+3]
		}

		if px == prev {
			run++
			if run == maxRun {
				out = append(out, opRun|byte(run-1))
				run = 0
			}
			continue
		}
		if run > 0 {
			out = append(out, opRun|byte(run-1))
			run = 0
		}

		slot := colorHash(px)
		if index[slot] == px {
			out = append(out, opIndex|slot)
		} else {
			index[slot] = px
			if px[3] == prev[3] {
				// channel deltas as mod-256 signed wraparound distances
				dr := int8(px[0] - prev[0])
				dg := int8(px[1] - prev[1])
				db := int8(px[2] - prev[2])
				drDg := dr - dg
				dbDg := db - dg
				switch {
				case dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1:
					out = append(out, opDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))
				case dg >= -32 && dg <= 31 && drDg >= -8 && drDg <= 7 && dbDg >= -8 && dbDg <= 7:
					out = append(out, opLuma|byte(dg+32), byte(drDg+8)<<4|byte(dbDg+8))
				default:
					out = append(out, opRGB, px[0], px[1], px[2])
				}
			} else {
				out = append(out, opRGBA, px[0], px[1], px[2], px[3])
			}
		}
		prev = px
	}
	if run > 0 {
		out = append(out, opRun|byte(run-1))
	}

	out = append(out, endMarker...)
	return out, nil
}

// EncodeImage encodes m as a QOI stream and writes it to w. Images
// with full alpha everywhere are stored with 3 channels.
func EncodeImage(w io.Writer, m image.Image) error {
	img, ok := m.(*Image)
	if !ok {
		img = fromImage(m)
	}
	data, err := Encode(img)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// fromImage flattens an arbitrary image into a packed NRGBA pixel
// buffer, picking 3 or 4 channels based on an opacity scan.
func fromImage(m image.Image) *Image {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	channels := 4
	if isOpaque(m) {
		channels = 3
	}
	img := &Image{
		Pix:        make([]byte, width*height*channels),
		Width:      width,
		Height:     height,
		Channels:   uint8(channels),
		Colorspace: SRGB,
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			if channels == 4 {
				img.Pix[i+3] = c.A
			}
			i += channels
		}
	}
	return img
}

func isOpaque(m image.Image) bool {
	if o, ok := m.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := m.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
