package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/OB11TO/Computer-Graphics/pkg/renderer"
)

// Format identifies an output image encoding
type Format string

const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

// FormatForPath picks the encoding from the file extension; anything that
// is not .png is written as a bitmap
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatBMP
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// SaveBMP writes a row-major packed pixel buffer as an uncompressed bitmap
func SaveBMP(path string, pixels []uint32, height, width int) error {
	return save(path, pixels, height, width, FormatBMP)
}

// SaveImage writes a row-major packed pixel buffer, choosing the format
// from the file extension
func SaveImage(path string, pixels []uint32, height, width int) error {
	return save(path, pixels, height, width, FormatForPath(path))
}

func save(path string, pixels []uint32, height, width int, format Format) error {
	if len(pixels) != height*width {
		return fmt.Errorf("pixel buffer has %d entries, expected %dx%d", len(pixels), height, width)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := Encode(file, renderer.PixelsToImage(pixels, height, width), format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
