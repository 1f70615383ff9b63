package simplex

import "testing"

func TestSoftmaxSumsToOne(t *testing.T) {
	out := Softmax([]float64{1, 2, 3})
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Softmax sums to %v, want 1", sum)
	}
}

func TestSoftmaxLargeValuesDoNotOverflow(t *testing.T) {
	out := Softmax([]float64{1000, 1001, 1002})
	for _, v := range out {
		if v != v { // NaN check
			t.Fatal("Softmax produced NaN for large inputs")
		}
	}
}

func TestSoftmaxEmpty(t *testing.T) {
	if got := Softmax(nil); len(got) != 0 {
		t.Errorf("Softmax(nil) = %v, want empty", got)
	}
}

func TestClampToSimplexNonPositiveSumFailsClosed(t *testing.T) {
	got := ClampToSimplex([3]float64{-1, -1, -1}, 0.05)
	want := [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if got != want {
		t.Errorf("ClampToSimplex(degenerate) = %v, want %v", got, want)
	}
}

func TestClampToSimplexEnforcesFloor(t *testing.T) {
	got := ClampToSimplex([3]float64{0.98, 0.01, 0.01}, 0.05)
	// Sub-floor components are raised to 0.05 before renormalizing, so
	// the result is (0.98, 0.05, 0.05) / 1.08.
	want := [3]float64{0.98 / 1.08, 0.05 / 1.08, 0.05 / 1.08}
	for i, v := range got {
		if diff := v - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("component %d = %v, want %v", i, v, want[i])
		}
	}
	sum := got[0] + got[1] + got[2]
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ClampToSimplex result sums to %v, want 1", sum)
	}
}

func TestClampToSimplexAlreadyValidIsStable(t *testing.T) {
	got := ClampToSimplex([3]float64{0.5, 0.3, 0.2}, 0.05)
	want := [3]float64{0.5, 0.3, 0.2}
	const eps = 1e-9
	for i := range want {
		if diff := got[i] - want[i]; diff > eps || diff < -eps {
			t.Errorf("ClampToSimplex(valid)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
