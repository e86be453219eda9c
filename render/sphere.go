package render

import (
	"github.com/chewxy/math32"
	"github.com/echoflaresat/raybench/vectors"
)

// Sphere is the single scene object.
type Sphere struct {
	Center vectors.Vec3
	Radius float32
}

// SceneSphere sits straight ahead of the camera: center (0,0,Height),
// radius Height/2.
var SceneSphere = Sphere{
	Center: vectors.Vec3{X: 0, Y: 0, Z: Height},
	Radius: Height / 2.0,
}

// Normal returns the unit surface normal at p. p is assumed to be on the
// surface; nothing checks it.
func (s Sphere) Normal(p vectors.Vec3) vectors.Vec3 {
	return p.Sub(s.Center).Normalize()
}

// Intersect solves |O + tD - C|^2 = r^2 for the ray and returns the point at
// the nearer root. The nearer root is taken whatever its sign, so a sphere
// behind the ray origin still reports a hit.
func (s Sphere) Intersect(ray Ray) (vectors.Vec3, bool) {
	toCenter := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(toCenter)
	c := toCenter.Dot(toCenter) - float32(s.Radius*s.Radius)

	discriminant := float32(b*b) - float32(a*c)
	if discriminant < 0 {
		return vectors.Vec3{}, false
	}

	sqrtDisc := math32.Sqrt(discriminant)
	t := fmin((-b+sqrtDisc)/a, (-b-sqrtDisc)/a)

	return ray.At(t), true
}

// fmin is C fminf: a NaN operand loses to a number.
func fmin(x, y float32) float32 {
	switch {
	case math32.IsNaN(x):
		return y
	case math32.IsNaN(y):
		return x
	case x < y:
		return x
	}
	return y
}

// fmax is C fmaxf: a NaN operand loses to a number.
func fmax(x, y float32) float32 {
	switch {
	case math32.IsNaN(x):
		return y
	case math32.IsNaN(y):
		return x
	case x > y:
		return x
	}
	return y
}
