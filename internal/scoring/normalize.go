package scoring

// MinMaxNormalize rescales values to [0,1] by (v-min)/(max-min). When
// every value is equal (zero range), all outputs collapse to 0.5
// rather than dividing by zero (spec §4.1).
func MinMaxNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / rng
	}
	return out
}
