package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color3 is an 8-bit per channel RGB color with no alpha
type Color3 struct {
	R, G, B uint8
}

var (
	// Black has every channel at zero
	Black = Color3{0, 0, 0}
	// White has every channel at full intensity
	White = Color3{255, 255, 255}
)

// Add returns the per-channel sum, clamped at 255
func (c Color3) Add(other Color3) Color3 {
	return Color3{
		R: saturate(uint(c.R) + uint(other.R)),
		G: saturate(uint(c.G) + uint(other.G)),
		B: saturate(uint(c.B) + uint(other.B)),
	}
}

// Multiply returns the per-channel product, clamped at 255
func (c Color3) Multiply(other Color3) Color3 {
	return Color3{
		R: saturate(uint(c.R) * uint(other.R)),
		G: saturate(uint(c.G) * uint(other.G)),
		B: saturate(uint(c.B) * uint(other.B)),
	}
}

// RGBA returns the color as an opaque color.RGBA
func (c Color3) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Color3FromColor converts any color.Color, dropping alpha.
// Premultiplied channels are taken as-is.
func Color3FromColor(c color.Color) Color3 {
	r, g, b, _ := c.RGBA()
	return Color3{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func (c Color3) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// saturate narrows a widened channel value back to 8 bits
func saturate(v uint) uint8 {
	return uint8(min(v, math.MaxUint8))
}
