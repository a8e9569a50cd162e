package vmath

// Lerp interpolates from a to b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpInverse returns where v lies between a and b, clamped to [0, 1]
// a may be greater than b, producing a falling curve
func LerpInverse(v, a, b float64) float64 {
	if a == b {
		if v >= b {
			return 1
		}
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// EaseOut is a quadratic ease-out over [0, 1]
func EaseOut(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
