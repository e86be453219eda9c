package render

import "github.com/echoflaresat/raybench/vectors"

// Ray is a half-line Origin + t*Direction. Direction is unit length at every
// call site in this package, but Sphere.Intersect does not depend on it.
type Ray struct {
	Origin    vectors.Vec3
	Direction vectors.Vec3
}

// At returns the point Origin + Direction*t.
func (r Ray) At(t float32) vectors.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
