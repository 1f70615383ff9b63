// Package config aggregates every subsystem's tunables into one YAML
// document, grounded on the teacher's internal/config/config.go:
// defaults first, then an optional file merge, then environment
// overrides (spec §6 lists Triguna, Compactor, Nidra, Supervisor, and
// the actor system as the configurable subsystems).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"cogcore/internal/compactor"
	"cogcore/internal/gossip"
	"cogcore/internal/logging"
	"cogcore/internal/nidra"
	"cogcore/internal/supervisor"
	"cogcore/internal/triguna"
	"cogcore/internal/turiya"
)

// CoreConfig holds top-level settings that don't belong to any one
// subsystem.
type CoreConfig struct {
	DatabasePath     string `yaml:"database_path"`
	ShutdownDeadline string `yaml:"shutdown_deadline"`
	DefaultBinding   string `yaml:"default_binding_strategy"`
}

// ActorSystemConfig tunes the actor system's defaults.
type ActorSystemConfig struct {
	DefaultMailboxSize int `yaml:"default_mailbox_size"`
}

// Config is the whole core's configuration. Immutable after
// construction: Load and DefaultConfig both return a value the caller
// owns outright, never a pointer shared with a background mutator.
type Config struct {
	Core        CoreConfig        `yaml:"core"`
	Logging     logging.Config    `yaml:"logging"`
	Triguna     triguna.Config    `yaml:"triguna"`
	Compactor   compactor.Config  `yaml:"compactor"`
	Nidra       nidra.Config      `yaml:"nidra"`
	Supervisor  supervisor.Config `yaml:"supervisor"`
	Gossip      gossip.Config     `yaml:"gossip"`
	Turiya      turiya.Config     `yaml:"turiya"`
	ActorSystem ActorSystemConfig `yaml:"actor_system"`
}

// DefaultConfig assembles every subsystem's own DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			DatabasePath:     "data/cogcore.db",
			ShutdownDeadline: "5s",
			DefaultBinding:   "hybrid",
		},
		Logging:    logging.DefaultConfig(),
		Triguna:    triguna.DefaultConfig(),
		Compactor:  compactor.DefaultConfig(),
		Nidra:      nidra.DefaultConfig(),
		Supervisor: supervisor.DefaultConfig(),
		Gossip:     gossip.DefaultConfig(),
		Turiya:     turiya.DefaultConfig(),
		ActorSystem: ActorSystemConfig{
			DefaultMailboxSize: 256,
		},
	}
}

// Load reads path as YAML and merges it onto DefaultConfig; a missing
// file is not an error, matching the teacher's "defaults if absent"
// behavior.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides layers environment variables over whatever Load
// parsed, mirroring the teacher's applyEnvOverrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COGCORE_DB_PATH"); v != "" {
		c.Core.DatabasePath = v
	}
	if v := os.Getenv("COGCORE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("COGCORE_LOG_DIR"); v != "" {
		c.Logging.Dir = v
	}
	if v := os.Getenv("COGCORE_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
	if v := os.Getenv("COGCORE_BINDING_STRATEGY"); v != "" {
		c.Core.DefaultBinding = v
	}
}

// GetShutdownDeadline parses Core.ShutdownDeadline, defaulting safely
// to 5s on an empty or malformed value.
func (c Config) GetShutdownDeadline() time.Duration {
	d, err := time.ParseDuration(c.Core.ShutdownDeadline)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
