// Package nidra implements the sleep-cycle daemon: a drift-correcting
// three-state machine (LISTENING/DREAMING/DEEP_SLEEP) that drives
// periodic heartbeats and invokes caller-supplied dream/deep-sleep
// handlers on its own schedule (spec §4.5).
package nidra

import "cogcore/internal/types"

// Config holds the daemon's timers, all defaultable via internal/config
// (spec §6).
type Config struct {
	HeartbeatMs map[types.NidraState]int64 `yaml:"heartbeat_ms"`

	IdleTimeoutMs       int64 `yaml:"idle_timeout_ms"`
	DreamDurationMs     int64 `yaml:"dream_duration_ms"`
	DeepSleepDurationMs int64 `yaml:"deep_sleep_duration_ms"`
}

// DefaultConfig returns the spec's documented per-state heartbeat
// intervals (60s/5s/30s) plus conservative phase durations (spec §4.5,
// §6).
func DefaultConfig() Config {
	return Config{
		HeartbeatMs: map[types.NidraState]int64{
			types.StateListening: 60_000,
			types.StateDreaming:  5_000,
			types.StateDeepSleep: 30_000,
		},
		IdleTimeoutMs:       300_000,
		DreamDurationMs:     60_000,
		DeepSleepDurationMs: 120_000,
	}
}

func (c Config) heartbeatInterval(state types.NidraState) int64 {
	if v, ok := c.HeartbeatMs[state]; ok && v > 0 {
		return v
	}
	return 60_000
}
