package render

import "github.com/echoflaresat/raybench/colors"

// Scene constants. They are part of the benchmark definition and must stay
// literal: changing any of them changes the checksum.
const (
	Width  = 80
	Height = 40

	// Smoothness is the specular exponent.
	Smoothness = 20.5

	Ambient        = 0.1
	LightIntensity = 0.7
)

// ShadeRay returns the unclamped brightness seen along ray when the scene is
// lit by light. A ray that misses the sphere is black; ambient light is only
// added on a hit.
func ShadeRay(ray Ray, light Light) colors.Shade {
	hitPoint, ok := SceneSphere.Intersect(ray)
	if !ok {
		return colors.Shade(0)
	}

	normal := SceneSphere.Normal(hitPoint)
	reflected := ray.Direction.Sub(normal.Scale(2.0).Scale(ray.Direction.Dot(normal)))
	toLight := light.Position.Sub(hitPoint).Normalize()

	diffuse := fmax(0.0, toLight.Dot(normal))
	specular := fmax(0.0, toLight.Dot(reflected))

	return light.Intensity.Scale(pow32(specular, Smoothness)).
		Add(light.Intensity.Scale(diffuse)).
		Add(colors.Shade(Ambient))
}
