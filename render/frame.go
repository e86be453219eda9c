package render

import (
	"image"

	"github.com/echoflaresat/raybench/colors"
)

// Frame holds the pixel levels of one (zoom, light) point of the sweep.
// Rows above FirstRow are never traced and stay 0.
type Frame struct {
	Zoom   float32
	Light  Light
	Levels [Height][Width]uint8
}

// RenderFrame traces one frame with the same pixel loop as Sweep.
func RenderFrame(zoom float32, light Light) *Frame {
	f := &Frame{Zoom: zoom, Light: light}
	camera := Camera{Zoom: zoom}
	for y := FirstRow; y < Height; y++ {
		for x := 0; x < Width; x++ {
			f.Levels[y][x] = uint8(PixelLevel(camera, x, y, light))
		}
	}
	return f
}

// Checksum returns the sum of all levels in the frame.
func (f *Frame) Checksum() uint32 {
	var sum uint32
	for y := range f.Levels {
		for _, l := range f.Levels[y] {
			sum += uint32(l)
		}
	}
	return sum
}

// Image converts the levels into an 8-bit grayscale image.
func (f *Frame) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := range f.Levels {
		for x, l := range f.Levels[y] {
			img.SetGray(x, y, colors.Gray(int(l)))
		}
	}
	return img
}
