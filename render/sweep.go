package render

// Parameter space of the sweep.
const (
	ZoomStart = 12.0
	ZoomEnd   = 32.0
	ZoomStep  = 10.0

	// LightSteps is the number of light angles per zoom level, stepping by
	// pi/11 over one full turn.
	LightSteps = 22

	// FirstRow skips the two top rows of every frame.
	FirstRow = 2

	// Evaluations is the number of ShadeRay calls made by one Sweep.
	Evaluations = 3 * LightSteps * (Height - FirstRow) * Width

	// ReferenceChecksum is the Sweep result for the constants above.
	ReferenceChecksum uint32 = 363682
)

// pi as the benchmark defines it, in single precision.
const pi float32 = 3.14159265

const lightStep = pi / 11.0

// Zooms returns the zoom levels of the sweep: 12, 22, 32.
func Zooms() []float32 {
	var zooms []float32
	for zoom := float32(ZoomStart); zoom <= ZoomEnd; zoom += ZoomStep {
		zooms = append(zooms, zoom)
	}
	return zooms
}

// LightAngles returns the LightSteps light rotation angles. The angle is
// accumulated in single precision, so the values carry the rounding of the
// repeated additions rather than being exact multiples of the step.
func LightAngles() []float32 {
	angles := make([]float32, 0, LightSteps)
	angle := float32(0)
	for i := 0; i < LightSteps; i++ {
		angles = append(angles, angle)
		angle += lightStep
	}
	return angles
}

// PixelLevel traces the primary ray of pixel (x, y) and discretizes it.
func PixelLevel(camera Camera, x, y int, light Light) int {
	return ShadeRay(camera.Ray(x, y), light).Level()
}

// Sweep renders every zoom level and light angle and returns the sum of all
// pixel levels. It is the measured workload of the benchmark.
func Sweep() uint32 {
	var sum uint32
	for _, zoom := range Zooms() {
		camera := Camera{Zoom: zoom}
		for _, angle := range LightAngles() {
			light := OrbitLight(angle)
			for y := FirstRow; y < Height; y++ {
				for x := 0; x < Width; x++ {
					sum += uint32(PixelLevel(camera, x, y, light))
				}
			}
		}
	}
	return sum
}
