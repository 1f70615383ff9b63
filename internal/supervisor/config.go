// Package supervisor implements Prana: the restart/health supervisor
// that keeps a daemon alive, bounds its error rate, and runs periodic
// background scans (spec §4.6).
package supervisor

// Config holds the supervisor's tunables (spec §6).
type Config struct {
	ErrorBudget           int   `yaml:"error_budget"`
	ErrorWindowMs          int64 `yaml:"error_window_ms"`
	InitialRestartDelayMs int64 `yaml:"initial_restart_delay_ms"`
	MaxRestartDelayMs     int64 `yaml:"max_restart_delay_ms"`
	MaxRestartAttempts    int   `yaml:"max_restart_attempts"`
	CooldownMs            int64 `yaml:"cooldown_ms"`
	SkillScanIntervalMs   int64 `yaml:"skill_scan_interval_ms"`
	ScanGracePeriodMs     int64 `yaml:"scan_grace_period_ms"`
	EnableSkillSync       bool  `yaml:"enable_skill_sync"`
	AutoApproveSafe       bool  `yaml:"auto_approve_safe"`

	// StaleConsolidationThresholdMs bounds how long a non-empty
	// consolidation_phase may persist before self-heal treats it as a
	// stale lock from a crash mid-consolidation (spec §4.6).
	StaleConsolidationThresholdMs int64 `yaml:"stale_consolidation_threshold_ms"`
}

// DefaultConfig returns the spec's documented defaults (spec §4.6, §6).
func DefaultConfig() Config {
	return Config{
		ErrorBudget:           5,
		ErrorWindowMs:         60_000,
		InitialRestartDelayMs: 1_000,
		MaxRestartDelayMs:     60_000,
		MaxRestartAttempts:    10,
		CooldownMs:            5 * 60_000,
		SkillScanIntervalMs:   300_000,
		ScanGracePeriodMs:     5_000,
		EnableSkillSync:       true,
		AutoApproveSafe:       true,
		StaleConsolidationThresholdMs: 10 * 60_000,
	}
}
