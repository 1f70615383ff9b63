package simplex

import "math"

// helmert basis rows for the 3-part composition (sattva, rajas, tamas),
// orthonormal contrasts mapping the 2-simplex onto R^2 (spec §4.3):
//
//	v1 = (1/sqrt2, -1/sqrt2, 0)
//	v2 = (1/sqrt6,  1/sqrt6, -2/sqrt6)
var (
	helmertV1 = [3]float64{1 / math.Sqrt2, -1 / math.Sqrt2, 0}
	helmertV2 = [3]float64{1 / math.Sqrt(6), 1 / math.Sqrt(6), -2 / math.Sqrt(6)}
)

// ILRForward maps a 3-part composition x (each component > 0, summing
// to ~1) to its isometric log-ratio coordinates (z1, z2) in R^2.
func ILRForward(x [3]float64) Vec2 {
	logs := [3]float64{math.Log(x[0]), math.Log(x[1]), math.Log(x[2])}
	mean := (logs[0] + logs[1] + logs[2]) / 3
	clr := [3]float64{logs[0] - mean, logs[1] - mean, logs[2] - mean}

	z1 := helmertV1[0]*clr[0] + helmertV1[1]*clr[1] + helmertV1[2]*clr[2]
	z2 := helmertV2[0]*clr[0] + helmertV2[1]*clr[1] + helmertV2[2]*clr[2]
	return Vec2{X: z1, Y: z2}
}

// ILRInverse maps ILR coordinates back onto the open 2-simplex.
func ILRInverse(z Vec2) [3]float64 {
	var clr [3]float64
	for i := 0; i < 3; i++ {
		var v1i, v2i float64
		switch i {
		case 0:
			v1i, v2i = helmertV1[0], helmertV2[0]
		case 1:
			v1i, v2i = helmertV1[1], helmertV2[1]
		case 2:
			v1i, v2i = helmertV1[2], helmertV2[2]
		}
		clr[i] = v1i*z.X + v2i*z.Y
	}

	exp := [3]float64{math.Exp(clr[0]), math.Exp(clr[1]), math.Exp(clr[2])}
	sum := exp[0] + exp[1] + exp[2]
	return [3]float64{exp[0] / sum, exp[1] / sum, exp[2] / sum}
}
