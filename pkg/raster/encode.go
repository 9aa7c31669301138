package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects the image file encoding
type Format int

// Supported formats
const (
	PNG Format = iota
	BMP
	TIFF
)

// ErrUnknownFormat is returned for a format name or value with no encoder
var ErrUnknownFormat = errors.New("unknown image format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name such as "png" or ".tif" to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks a Format from the file extension, defaulting to PNG
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return PNG
	}
	return f
}

// Options controls encoding. A zero Width or Height keeps the buffer's size
// on that axis (or preserves aspect ratio if the other is set).
type Options struct {
	Format Format
	Width  uint
	Height uint
}

// Encode writes the buffer to w in the requested format
func Encode(w io.Writer, b *Buffer, opts Options) error {
	var img image.Image = b.Image()
	if opts.Width != 0 || opts.Height != 0 {
		img = resize.Resize(opts.Width, opts.Height, img, resize.Lanczos3)
	}

	var err error
	switch opts.Format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", opts.Format, err)
	}
	return nil
}

// WriteFile encodes the buffer to path, creating parent directories as needed
func WriteFile(path string, b *Buffer, opts Options) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	return Encode(file, b, opts)
}
