package ink

// Brush dynamics: the rules mapping stylus pressure to effective line
// width and opacity, and the input smoothing that turns noisy touch
// samples into a visually fluid line.

// pressureRamp linearly interpolates between 10% and 100% of base using
// pressure clamped to [0, 1].
func pressureRamp(base, pressure float64) float64 {
	return base*0.1 + base*0.9*clamp01(pressure)
}

// EffectiveSize returns the stroke width at a sample. When the brush does
// not scale size by pressure, the base size is returned unchanged.
func EffectiveSize(pressure float64, b BrushSettings) float64 {
	if !b.PressureSize {
		return b.Size
	}
	return pressureRamp(b.Size, pressure)
}

// EffectiveOpacity returns the stroke opacity at a sample. When the brush
// does not scale opacity by pressure, the base opacity is returned
// unchanged.
func EffectiveOpacity(pressure float64, b BrushSettings) float64 {
	if !b.PressureOpacity {
		return b.Opacity
	}
	return pressureRamp(b.Opacity, pressure)
}

// SmoothPoint blends the sample position toward the previous recorded
// point with factor (1 - spacing). Pressure, timestamp, tilt, and
// velocity pass through unmodified; only position is smoothed.
//
// With no previous point the sample is returned unchanged. For any
// spacing below 1 the blend is a contraction, so feeding a constant
// sample repeatedly converges the output to that sample.
func SmoothPoint(sample Point, previous []Point, b BrushSettings) Point {
	if len(previous) == 0 {
		return sample
	}
	last := previous[len(previous)-1]
	t := 1 - b.Spacing
	out := sample
	out.X = last.X + (sample.X-last.X)*t
	out.Y = last.Y + (sample.Y-last.Y)*t
	return out
}
