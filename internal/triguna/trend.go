package triguna

import "cogcore/internal/types"

// Trend classifies the direction a guna has moved over the configured
// trend window.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// olsSlope fits y = a + b*index by ordinary least squares over the
// given values (index 0..len(values)-1) and returns the slope b. Shared
// by the trend classifier; callers with fewer than 2 points should not
// call this (the caller classifies that case as stable directly).
func olsSlope(values []float64) float64 {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Trend returns the rising/falling/stable classification for each guna
// over the last cfg.TrendWindow history snapshots: OLS slope against
// index, totalChange = slope*(N-1), compared against cfg.TrendThreshold
// (spec §4.3). Fewer than 2 snapshots in the window yields stable.
func (m *Monitor) Trend() map[types.Guna]Trend {
	m.mu.Lock()
	defer m.mu.Unlock()

	window := m.history
	if len(window) > m.cfg.TrendWindow {
		window = window[len(window)-m.cfg.TrendWindow:]
	}

	result := map[types.Guna]Trend{
		types.Sattva: TrendStable,
		types.Rajas:  TrendStable,
		types.Tamas:  TrendStable,
	}
	if len(window) < 2 {
		return result
	}

	for _, g := range [3]types.Guna{types.Sattva, types.Rajas, types.Tamas} {
		values := make([]float64, len(window))
		for i, snap := range window {
			values[i] = snap.State.Get(g)
		}
		slope := olsSlope(values)
		totalChange := slope * float64(len(values)-1)
		switch {
		case totalChange > m.cfg.TrendThreshold:
			result[g] = TrendRising
		case totalChange < -m.cfg.TrendThreshold:
			result[g] = TrendFalling
		default:
			result[g] = TrendStable
		}
	}
	return result
}
