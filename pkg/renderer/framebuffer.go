package renderer

import (
	"image"
	"image/color"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

// Framebuffer is a row-major buffer of packed 32-bit colors
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// At returns the packed color at (row, col)
func (fb *Framebuffer) At(row, col int) uint32 {
	return fb.Pixels[row*fb.Width+col]
}

// Set stores the packed color at (row, col)
func (fb *Framebuffer) Set(row, col int, packed uint32) {
	fb.Pixels[row*fb.Width+col] = packed
}

// ToImage converts the framebuffer to an RGBA image.
// Buffer row 0 is the bottom row of the image, as in a bottom-up bitmap.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return PixelsToImage(fb.Pixels, fb.Height, fb.Width)
}

// PixelsToImage converts a row-major packed pixel buffer to an RGBA image
func PixelsToImage(pixels []uint32, height, width int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r, g, b := UnpackColor(pixels[row*width+col])
			img.SetRGBA(col, height-1-row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// PackColor clamps each channel to [0,1], scales it to [0,255] and packs
// the channels as 0x00BBGGRR
func PackColor(c core.Vec3) uint32 {
	c = c.Clamp(0, 1)
	return uint32(c.Z*255)<<16 | uint32(c.Y*255)<<8 | uint32(c.X*255)
}

// UnpackColor splits a packed 0x00BBGGRR color into its channels
func UnpackColor(packed uint32) (r, g, b uint8) {
	return uint8(packed), uint8(packed >> 8), uint8(packed >> 16)
}
