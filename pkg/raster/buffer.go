package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Frame size used by the CLI and the pixel layout of a Buffer
const (
	DefaultWidth  = 400
	DefaultHeight = 400
	BytesPerPixel = 3 // R, G, B at 8 bits each, no alpha
)

var (
	// ErrInvalidDimensions reports a non-positive size or one whose byte count overflows int
	ErrInvalidDimensions = errors.New("invalid raster dimensions")
	// ErrBufferSize reports a pixel slice whose length disagrees with the dimensions
	ErrBufferSize = errors.New("pixel buffer size does not match dimensions")
)

// Buffer is a flat row-major RGB pixel buffer.
// The pixel at (x, y) occupies Pix[3*(y*Width+x) : 3*(y*Width+x)+3].
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// checkDimensions returns the byte length of a width x height buffer
func checkDimensions(width, height int) (int, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/BytesPerPixel/height {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return BytesPerPixel * width * height, nil
}

// New allocates an all-black buffer
func New(width, height int) (*Buffer, error) {
	size, err := checkDimensions(width, height)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, size),
	}, nil
}

// FromBytes wraps an existing pixel buffer without copying it
func FromBytes(width, height int, pix []byte) (*Buffer, error) {
	want, err := checkDimensions(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(pix), want)
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// Offset returns the index of the red byte for (x, y), or -1 when out of range
func (b *Buffer) Offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return -1
	}
	return BytesPerPixel * (y*b.Width + x)
}

// Set writes a pixel. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, c core.Color3) {
	i := b.Offset(x, y)
	if i < 0 {
		return
	}
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
}

// At reads a pixel. Out-of-range coordinates read as black.
func (b *Buffer) At(x, y int) core.Color3 {
	i := b.Offset(x, y)
	if i < 0 {
		return core.Black
	}
	return core.Color3{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// Fill sets every pixel to c
func (b *Buffer) Fill(c core.Color3) {
	for i := 0; i < len(b.Pix); i += BytesPerPixel {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
	}
}

// Image converts the buffer to an opaque RGBA image for the standard encoders
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.At(x, y).RGBA())
		}
	}
	return img
}

// FromImage copies any image into a new buffer, dropping alpha
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			buf.Set(x, y, core.Color3FromColor(img.At(x+bounds.Min.X, y+bounds.Min.Y)))
		}
	}
	return buf, nil
}
