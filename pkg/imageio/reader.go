package imageio

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/OB11TO/Computer-Graphics/pkg/renderer"
)

// LoadPixels loads a BMP or PNG image back into a row-major packed pixel
// buffer laid out the way SaveImage expects it
func LoadPixels(path string) (*renderer.Framebuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects BMP/PNG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	fb := renderer.NewFramebuffer(bounds.Dx(), bounds.Dy())

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels; keep the high byte
			packed := (b>>8)<<16 | (g>>8)<<8 | r>>8
			fb.Set(fb.Height-1-y, x, packed)
		}
	}

	return fb, nil
}
