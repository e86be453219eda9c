package render

import "github.com/echoflaresat/raybench/vectors"

// Camera is a pinhole camera at the origin looking down +Z. Zoom is the
// distance of the image plane in pixel units; larger zoom narrows the view.
type Camera struct {
	Zoom float32
}

// Direction returns the normalized viewing direction through pixel (x, y).
// The image plane is centered on the optical axis at (Width/2, Height/2).
func (c Camera) Direction(x, y int) vectors.Vec3 {
	return vectors.Vec3{
		X: float32(x - Width/2),
		Y: float32(y - Height/2),
		Z: c.Zoom,
	}.Normalize()
}

// Ray returns the primary ray for pixel (x, y).
func (c Camera) Ray(x, y int) Ray {
	return Ray{
		Origin:    vectors.Zero(),
		Direction: c.Direction(x, y),
	}
}
