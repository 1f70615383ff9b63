package scoring

import "testing"

func TestMinMaxNormalizeRange(t *testing.T) {
	got := MinMaxNormalize([]float64{1, 2, 3, 4})
	want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("MinMaxNormalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMinMaxNormalizeZeroRange(t *testing.T) {
	got := MinMaxNormalize([]float64{5, 5, 5})
	for i, v := range got {
		if v != 0.5 {
			t.Errorf("MinMaxNormalize()[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMinMaxNormalizeEmpty(t *testing.T) {
	if got := MinMaxNormalize(nil); len(got) != 0 {
		t.Errorf("MinMaxNormalize(nil) = %v, want empty", got)
	}
}
