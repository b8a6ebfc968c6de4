package bounce

import "math"

const (
	// hueStepMillis is how long the hue stays on one degree.
	hueStepMillis = 100
	// HueCycleMillis is the length of one full trip around the color wheel.
	HueCycleMillis = 360 * hueStepMillis
)

// HueDegrees maps elapsed milliseconds to a hue in [0, 360). The hue advances
// one whole degree every 100 ms, so it wraps every 36 seconds.
func HueDegrees(elapsedMillis int64) float64 {
	deg := (elapsedMillis / hueStepMillis) % 360
	if deg < 0 {
		deg += 360
	}
	return float64(deg)
}

// HueToRGB maps a hue in degrees to a fully saturated color using six
// 60-degree sectors. Within a sector one channel ramps linearly while the
// other two are pinned at 0 and 1. Input is wrapped into [0, 360); NaN and
// infinities map to 0 (red).
func HueToRGB(degrees float64) Color {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		degrees = 0
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// A tiny negative input rounds up to exactly 360 after the shift.
	if d >= 360 {
		d = 0
	}
	t := math.Mod(d, 60) / 60

	switch int(d / 60) {
	case 0:
		return Color{R: 1, G: t, B: 0, A: 1}
	case 1:
		return Color{R: 1 - t, G: 1, B: 0, A: 1}
	case 2:
		return Color{R: 0, G: 1, B: t, A: 1}
	case 3:
		return Color{R: 0, G: 1 - t, B: 1, A: 1}
	case 4:
		return Color{R: t, G: 0, B: 1, A: 1}
	default:
		return Color{R: 1, G: 0, B: 1 - t, A: 1}
	}
}

// CycleColor returns the modulation color for the given elapsed time.
func CycleColor(elapsedMillis int64) Color {
	return HueToRGB(HueDegrees(elapsedMillis))
}

// Modulate multiplies a mask sample by c channel-wise. The mask value is
// used for every channel including alpha, which c does not touch.
func Modulate(sample uint8, c Color) Color {
	v := float64(sample) / 255
	return Color{R: v * c.R, G: v * c.G, B: v * c.B, A: v}
}
