package simplex

import "testing"

func TestILRRoundTrip(t *testing.T) {
	cases := [][3]float64{
		{0.5, 0.3, 0.2},
		{0.8, 0.1, 0.1},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	}
	for _, x := range cases {
		z := ILRForward(x)
		back := ILRInverse(z)
		const eps = 1e-9
		for i := range x {
			if diff := back[i] - x[i]; diff > eps || diff < -eps {
				t.Errorf("ILR round trip of %v = %v, diff at %d = %v", x, back, i, diff)
			}
		}
	}
}

func TestILRForwardUniformIsOrigin(t *testing.T) {
	z := ILRForward([3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	const eps = 1e-9
	if z.X > eps || z.X < -eps || z.Y > eps || z.Y < -eps {
		t.Errorf("ILRForward(uniform) = %+v, want (0,0)", z)
	}
}

func TestILRInverseSumsToOne(t *testing.T) {
	x := ILRInverse(Vec2{X: 0.7, Y: -0.2})
	sum := x[0] + x[1] + x[2]
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ILRInverse result sums to %v, want 1", sum)
	}
	for _, v := range x {
		if v <= 0 {
			t.Errorf("ILRInverse component %v should be strictly positive", v)
		}
	}
}
