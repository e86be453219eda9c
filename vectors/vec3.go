package vectors

import "github.com/chewxy/math32"

// Vec3 is a simple 3D vector with float32 components.
//
// Products that feed a sum are rounded with an explicit float32 conversion.
// Without it the compiler may fuse them into FMA instructions on arm64 and
// friends, and the benchmark checksum would depend on GOARCH.
type Vec3 struct {
	X, Y, Z float32
}

func Zero() Vec3 {
	return Vec3{X: 0.0, Y: 0.0, Z: 0.0}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{float32(v.X * s), float32(v.Y * s), float32(v.Z * s)}
}

// Divide returns v / s. A zero s yields Inf/NaN components.
func (v Vec3) Divide(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float32 {
	return float32(v.X*o.X) + float32(v.Y*o.Y) + float32(v.Z*o.Z)
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v / ||v||.
// Unlike most vector libraries there is no zero guard: a zero vector
// normalizes to NaNs, matching the reference kernel.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Norm())
}

func Distance(v1, v2 Vec3) float32 {
	return v1.Sub(v2).Norm()
}
