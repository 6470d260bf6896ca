package anim

// Lerp blends between a and b, t=0 returns a and t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits value to the [lower, upper] range.
func Clamp(value, lower, upper float64) float64 {
	return max(lower, min(upper, value))
}

// Interpolate maps x from the ascending input range onto the output range, piecewise linearly.
// Values outside of the input range are clamped to the first or last output.
//
// Both ranges must hold the same number of points, at least two. Anything else is a programming
// error and panics.
func Interpolate(x float64, in []float64, out []float64) float64 {
	if len(in) < 2 || len(in) != len(out) {
		panic("anim: interpolate requires matching ranges of at least two points")
	}

	if x <= in[0] {
		return out[0]
	}

	last := len(in) - 1
	if x >= in[last] {
		return out[last]
	}

	for i := 1; i <= last; i++ {
		if x > in[i] {
			continue
		}

		span := in[i] - in[i-1]
		if span <= 0 {
			return out[i]
		}

		return Lerp(out[i-1], out[i], (x-in[i-1])/span)
	}

	return out[last]
}
