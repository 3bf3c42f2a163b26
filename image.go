package qoi

import (
	"fmt"
	"image"
	"image/color"
)

// Colorspace is the header colorspace byte. The codec carries it
// through unchanged and never interprets it.
type Colorspace uint8

const (
	SRGB   Colorspace = 0 // sRGB with linear alpha
	Linear Colorspace = 1 // all channels linear
)

func (c Colorspace) String() string {
	switch c {
	case SRGB:
		return "sRGB"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Colorspace(%d)", uint8(c))
}

// Image is a decoded QOI image. Pix holds Channels bytes per pixel in
// row-major order with no padding between rows. When Channels is 3,
// alpha is implicitly 255.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	i := (y*img.Width + x) * int(img.Channels)
	if img.Channels == 4 {
		return color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
	}
	return color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}

// Opaque reports whether every pixel has full alpha.
func (img *Image) Opaque() bool {
	if img.Channels == 3 {
		return true
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			return false
		}
	}
	return true
}
