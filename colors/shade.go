package colors

import "image/color"

// MaxLevel is the brightness level of a fully lit pixel.
const MaxLevel = 20

// Shade is a scalar brightness. Arithmetic on it is unclamped; the value is
// only forced into [0,1] when it is discretized by Level.
type Shade float32

// Scale returns s * f (unclamped).
func (s Shade) Scale(f float32) Shade {
	return Shade(float32(s) * f)
}

// Add returns s + o (unclamped).
func (s Shade) Add(o Shade) Shade {
	return s + o
}

// Clamp01 returns the shade clamped into [0,1]. NaN clamps to 0, as fmaxf does.
func (s Shade) Clamp01() Shade {
	return Shade(clamp01(float32(s)))
}

// Level returns the integer brightness in [0, MaxLevel].
// Truncates toward zero; never rounds.
func (s Shade) Level() int {
	return int(float32(s.Clamp01()) * MaxLevel)
}

// Gray maps a brightness level onto an 8-bit gray value (truncating).
func Gray(level int) color.Gray {
	return color.Gray{Y: to8bit(float32(level) / MaxLevel)}
}

// --- helpers ---

// clamp01 follows fminf(1, fmaxf(0, x)).
func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float32) uint8 {
	return uint8(255.0 * clamp01(x))
}
