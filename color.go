package bingo

import (
	"image/color"
	"math"
)

// RGB represents an opaque color with red, green, and blue components.
// Each component is in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

// FromColor converts a standard color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// RGB8 creates a color from 8-bit RGB components.
func RGB8(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// clamp255 clamps v to the range [0, 255].
func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}
