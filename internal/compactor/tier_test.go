package compactor

import "testing"

func TestSelectTierBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		usage float64
		want  Tier
	}{
		{0.59, TierNone},
		{0.60, TierGentle},
		{0.74, TierGentle},
		{0.75, TierModerate},
		{0.89, TierModerate},
		{0.90, TierAggressive},
		{5.0, TierAggressive},
	}
	for _, c := range cases {
		if got := SelectTier(c.usage, cfg); got != c.want {
			t.Errorf("SelectTier(%v) = %v, want %v", c.usage, got, c.want)
		}
	}
}
