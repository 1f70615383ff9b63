package simplex

import "math"

// Softmax computes a numerically stable softmax over x, subtracting the
// max element before exponentiating so large inputs don't overflow.
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	max := x[0]
	for _, v := range x[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	for i, v := range x {
		e := math.Exp(v - max)
		out[i] = e
		sum += e
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// ClampToSimplex projects a 3-vector onto the 2-simplex with a minimum
// per-component floor: negative or sub-floor components are raised to
// floor and the vector is renormalized to sum to 1. If the input sum is
// non-positive (degenerate state), it fails closed to the uniform
// composition rather than panicking or producing NaNs (spec §4.3).
func ClampToSimplex(x [3]float64, floor float64) [3]float64 {
	sum := x[0] + x[1] + x[2]
	if sum <= 0 {
		return [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	}
	clamped := [3]float64{
		math.Max(x[0], floor),
		math.Max(x[1], floor),
		math.Max(x[2], floor),
	}
	total := clamped[0] + clamped[1] + clamped[2]
	if total <= 0 {
		return [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	}
	return [3]float64{clamped[0] / total, clamped[1] / total, clamped[2] / total}
}
