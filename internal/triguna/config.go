// Package triguna implements the health monitor: a simplex-constrained
// Kalman filter tracking three-component system health (sattva, rajas,
// tamas) from a stream of six-signal observations, with threshold
// alerting and OLS trend detection over its bounded history (spec §4.3).
package triguna

// Config holds the monitor's tunables, all defaultable via
// internal/config (spec §6).
type Config struct {
	ProcessNoise     float64 `yaml:"process_noise"`
	MeasurementNoise float64 `yaml:"measurement_noise"`
	SattvaThreshold  float64 `yaml:"sattva_threshold"`
	RajasThreshold   float64 `yaml:"rajas_threshold"`
	TamasThreshold   float64 `yaml:"tamas_threshold"`
	MaxHistory       int     `yaml:"max_history"`
	SimplexFloor     float64 `yaml:"simplex_floor"`
	TrendWindow      int     `yaml:"trend_window"`
	TrendThreshold   float64 `yaml:"trend_threshold"`
	InitialState     [3]float64 `yaml:"initial_state"`
}

const hardMaxHistory = 1000

// DefaultConfig returns the spec's documented defaults (spec §6).
func DefaultConfig() Config {
	return Config{
		ProcessNoise:     0.01,
		MeasurementNoise: 0.1,
		SattvaThreshold:  0.7,
		RajasThreshold:   0.5,
		TamasThreshold:   0.4,
		MaxHistory:       100,
		SimplexFloor:     1e-6,
		TrendWindow:      5,
		TrendThreshold:   0.05,
		InitialState:     [3]float64{0.6, 0.3, 0.1},
	}
}

func (c Config) historyCap() int {
	if c.MaxHistory <= 0 || c.MaxHistory > hardMaxHistory {
		return hardMaxHistory
	}
	return c.MaxHistory
}
