// Package qoi implements the QOI ("Quite OK Image") lossless image
// format. Encode turns a raw 3- or 4-channel pixel buffer into a QOI
// byte stream; Decode reconstructs the exact pixel buffer from such a
// stream. Both operate on in-memory buffers in a single pass with no
// I/O of their own.
//
// Importing the package registers the format with the standard image
// package, so image.Decode and image.DecodeConfig handle QOI streams
// transparently.
package qoi

import (
	"errors"
	"image"
)

func init() {
	image.RegisterFormat("qoi", Magic, decodeImage, DecodeConfig)
}

// Magic is the four ASCII bytes every QOI stream starts with.
const Magic = "qoif"

// HeaderSize is the fixed length of the stream preamble in bytes.
const HeaderSize = 14

// Chunk tags. The two full-byte tags overlap the RUN prefix and take
// priority over it; RUN's payload never reaches 62 or 63, so the byte
// values 0xfe and 0xff are unambiguous.
const (
	opIndex byte = 0b00_000000
	opDiff  byte = 0b01_000000
	opLuma  byte = 0b10_000000
	opRun   byte = 0b11_000000
	opRGB   byte = 0b1111_1110
	opRGBA  byte = 0b1111_1111

	mask2 byte = 0b11_000000
)

// maxRun is the longest pixel run a single RUN chunk can carry.
const maxRun = 62

// endMarker terminates every valid stream.
var endMarker = []byte{0, 0, 0, 0, 0, 0, 0, 0b00000001}

const maxPixels = 400_000_000 // 400 million pixels ought to be enough for anybody

var (
	ErrBadMagic            = errors.New("qoi: bad magic")
	ErrInvalidDimensions   = errors.New("qoi: invalid image dimensions")
	ErrInvalidChannelCount = errors.New("qoi: channels must be 3 or 4")
	ErrTruncatedInput      = errors.New("qoi: truncated input")
	ErrMalformedRun        = errors.New("qoi: reserved run length")
	ErrPixelCountMismatch  = errors.New("qoi: pixel count mismatch")
	ErrBufferSizeMismatch  = errors.New("qoi: pixel buffer size mismatch")
)

type pixel [4]byte

func colorHash(p pixel) byte {
	return (p[0]*3 + p[1]*5 + p[2]*7 + p[3]*11) & 0b111111
}
