package render

import (
	"math"

	"github.com/echoflaresat/raybench/colors"
	"github.com/echoflaresat/raybench/vectors"
)

// Light is a point light: a position plus an intensity.
type Light struct {
	Position  vectors.Vec3
	Intensity colors.Shade
}

// OrbitLight places the light for a given rotation angle (radians). It swings
// on an ellipse behind the camera at z = -100.
func OrbitLight(angle float32) Light {
	return Light{
		Position: vectors.Vec3{
			X: 2.0 * Width * cos32(angle),
			Y: 3.0 * Height * (sin32(angle) - 0.5),
			Z: -100.0,
		},
		Intensity: LightIntensity,
	}
}

// Trig and pow are evaluated in double precision and rounded once, which
// gives the correctly rounded single precision result the kernel expects.

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

func pow32(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
