package qoi

import (
	"encoding/binary"
	"fmt"
)

// Header is the fixed 14-byte preamble of a QOI stream: the magic,
// width and height as big-endian 32-bit values, the channel count and
// the colorspace byte.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace Colorspace
}

// EncodeHeader serializes h. Width and height must be greater than
// zero and Channels must be 3 or 4.
func EncodeHeader(h Header) ([]byte, error) {
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}
	if h.Channels != 3 && h.Channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannelCount, h.Channels)
	}
	buf := make([]byte, HeaderSize)
	copy(buf, Magic)
	binary.BigEndian.PutUint32(buf[4:], h.Width)
	binary.BigEndian.PutUint32(buf[8:], h.Height)
	buf[12] = h.Channels
	buf[13] = byte(h.Colorspace)
	return buf, nil
}

// DecodeHeader parses the preamble at the start of data. It validates
// the magic and the channel count; the colorspace byte is passed
// through unchecked.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedInput, HeaderSize, len(data))
	}
	if string(data[:4]) != Magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: Colorspace(data[13]),
	}
	if h.Channels != 3 && h.Channels != 4 {
		return Header{}, fmt.Errorf("%w: got %d", ErrInvalidChannelCount, h.Channels)
	}
	return h, nil
}
