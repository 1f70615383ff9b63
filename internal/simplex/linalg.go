// Package simplex implements the 2-simplex numerics the Triguna Kalman
// filter operates in: the isometric log-ratio (ILR) transform via a
// Helmert basis, 2x2 linear algebra for the filter's covariance
// arithmetic, a numerically stable softmax, and simplex clamping
// (spec §4.3). Every function here is pure and allocation-light.
package simplex

// Mat2 is a 2x2 matrix, row-major: [[A, B], [C, D]].
type Mat2 struct {
	A, B, C, D float64
}

// Vec2 is a 2-element vector.
type Vec2 struct {
	X, Y float64
}

func AddMat2(m, n Mat2) Mat2 {
	return Mat2{m.A + n.A, m.B + n.B, m.C + n.C, m.D + n.D}
}

func SubMat2(m, n Mat2) Mat2 {
	return Mat2{m.A - n.A, m.B - n.B, m.C - n.C, m.D - n.D}
}

func MulMat2(m, n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

func MulMat2Vec(m Mat2, v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

func TransposeMat2(m Mat2) Mat2 {
	return Mat2{m.A, m.C, m.B, m.D}
}

func ScaleMat2(m Mat2, s float64) Mat2 {
	return Mat2{m.A * s, m.B * s, m.C * s, m.D * s}
}

// IdentityMat2 returns the 2x2 identity matrix.
func IdentityMat2() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// InverseMat2 returns the inverse of m, or false if m is singular
// (|det| < 1e-15). Callers must treat a false return as "not
// invertible" and fail closed rather than propagate a NaN-laden result.
func InverseMat2(m Mat2) (Mat2, bool) {
	det := m.A*m.D - m.B*m.C
	if det < 1e-15 && det > -1e-15 {
		return Mat2{}, false
	}
	inv := 1.0 / det
	return Mat2{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
	}, true
}
