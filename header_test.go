package qoi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixfmt/qoi"
)

func TestEncodeHeader(t *testing.T) {
	got, err := qoi.EncodeHeader(qoi.Header{Width: 640, Height: 480, Channels: 4, Colorspace: qoi.Linear})
	require.NoError(t, err)
	want := []byte{'q', 'o', 'i', 'f', 0, 0, 2, 128, 0, 0, 1, 224, 4, 1}
	assert.Equal(t, want, got)
}

func TestEncodeHeaderRejectsZeroDimensions(t *testing.T) {
	for _, header := range []qoi.Header{
		{Width: 0, Height: 10, Channels: 4},
		{Width: 10, Height: 0, Channels: 4},
		{Width: 0, Height: 0, Channels: 3},
	} {
		_, err := qoi.EncodeHeader(header)
		assert.ErrorIs(t, err, qoi.ErrInvalidDimensions)
	}
}

func TestEncodeHeaderRejectsBadChannels(t *testing.T) {
	for _, channels := range []uint8{0, 1, 2, 5, 255} {
		_, err := qoi.EncodeHeader(qoi.Header{Width: 1, Height: 1, Channels: channels})
		assert.ErrorIs(t, err, qoi.ErrInvalidChannelCount)
	}
}

func TestDecodeHeaderRoundTrip(t *testing.T) {
	header := qoi.Header{Width: 1920, Height: 1080, Channels: 3, Colorspace: qoi.SRGB}
	data, err := qoi.EncodeHeader(header)
	require.NoError(t, err)
	got, err := qoi.DecodeHeader(data)
	require.NoError(t, err)
	assert.Equal(t, header, got)
}

func TestDecodeHeaderColorspacePassthrough(t *testing.T) {
	data, err := qoi.EncodeHeader(qoi.Header{Width: 1, Height: 1, Channels: 4})
	require.NoError(t, err)
	data[13] = 7 // not a defined colorspace, must be carried through untouched
	got, err := qoi.DecodeHeader(data)
	require.NoError(t, err)
	assert.Equal(t, qoi.Colorspace(7), got.Colorspace)
}

func TestDecodeHeaderBadMagic(t *testing.T) {
	data, err := qoi.EncodeHeader(qoi.Header{Width: 1, Height: 1, Channels: 4})
	require.NoError(t, err)
	data[0] = 'Q'
	_, err = qoi.DecodeHeader(data)
	assert.ErrorIs(t, err, qoi.ErrBadMagic)
}

func TestDecodeHeaderTruncated(t *testing.T) {
	data, err := qoi.EncodeHeader(qoi.Header{Width: 1, Height: 1, Channels: 4})
	require.NoError(t, err)
	for cut := 0; cut < qoi.HeaderSize; cut++ {
		_, err := qoi.DecodeHeader(data[:cut])
		assert.ErrorIs(t, err, qoi.ErrTruncatedInput, "header cut to %d bytes", cut)
	}
}

func TestDecodeHeaderBadChannels(t *testing.T) {
	data, err := qoi.EncodeHeader(qoi.Header{Width: 1, Height: 1, Channels: 4})
	require.NoError(t, err)
	data[12] = 2
	_, err = qoi.DecodeHeader(data)
	assert.ErrorIs(t, err, qoi.ErrInvalidChannelCount)
}
