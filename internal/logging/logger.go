// Package logging provides config-driven categorized logging for the
// cognitive runtime core. Each subsystem gets its own named logger so
// operators can enable verbose output per-concern without drowning in
// the rest. Backed by zap; disabled categories resolve to a true no-op
// so call sites never need to guard with IsCategoryEnabled themselves.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies the subsystem a log line belongs to.
type Category string

const (
	CategoryBoot       Category = "boot"
	CategoryNidra      Category = "nidra"
	CategorySupervisor Category = "supervisor"
	CategoryTriguna    Category = "triguna"
	CategoryCompactor  Category = "compactor"
	CategoryScoring    Category = "scoring"
	CategoryMarga      Category = "marga"
	CategoryTuriya     Category = "turiya"
	CategoryMesh       Category = "mesh"
	CategoryGossip     Category = "gossip"
	CategoryActor      Category = "actorsystem"
)

// Config controls what gets logged and where.
type Config struct {
	// DebugMode gates all logging; false means every category is a no-op.
	DebugMode bool `yaml:"debug_mode"`
	// Categories, when non-nil, enables/disables individual categories.
	// A category absent from the map is enabled by default in debug mode.
	Categories map[string]bool `yaml:"categories"`
	// Level is one of debug|info|warn|error.
	Level string `yaml:"level"`
	// JSONFormat emits structured JSON lines instead of console text.
	JSONFormat bool `yaml:"json_format"`
	// Dir, when non-empty, writes one file per category under Dir
	// (named "<category>.log"); otherwise logs go to stderr.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a disabled-by-default logging config.
func DefaultConfig() Config {
	return Config{
		DebugMode: false,
		Level:     "info",
	}
}

var (
	mu      sync.RWMutex
	cfg     = DefaultConfig()
	loggers = make(map[Category]*Logger)
)

// Initialize configures the package-level logging state. Safe to call
// more than once (e.g. on config reload): the logger cache is cleared,
// so later Get calls build loggers under the new config, while handles
// obtained earlier keep the config they were built with.
func Initialize(c Config) error {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
	loggers = make(map[Category]*Logger)

	if !cfg.DebugMode {
		return nil
	}
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return fmt.Errorf("logging: create log dir: %w", err)
		}
	}
	return nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func categoryEnabled(cat Category) bool {
	if !cfg.DebugMode {
		return false
	}
	if cfg.Categories == nil {
		return true
	}
	enabled, ok := cfg.Categories[string(cat)]
	if !ok {
		return true
	}
	return enabled
}

// Logger is a category-scoped logging handle. The zero value (as
// returned for a disabled category) is a safe no-op.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

// Get returns (or lazily builds) the logger for a category. Returns a
// no-op logger when the category or debug mode is disabled.
func Get(category Category) *Logger {
	mu.RLock()
	if !categoryEnabled(category) {
		mu.RUnlock()
		return &Logger{category: category}
	}
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	var writer zapcore.WriteSyncer
	if cfg.Dir != "" {
		path := filepath.Join(cfg.Dir, string(category)+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging: open %s: %v\n", path, err)
			writer = zapcore.AddSync(os.Stderr)
		} else {
			writer = zapcore.AddSync(f)
		}
	} else {
		writer = zapcore.AddSync(os.Stderr)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.JSONFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, writer, parseLevel(cfg.Level))
	base := zap.New(core).With(zap.String("category", string(category)))
	l := &Logger{category: category, sugar: base.Sugar()}
	loggers[category] = l
	return l
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}

// WithFields returns a child logger annotated with structured key-values,
// used at sites that want one structured event rather than a formatted
// string (e.g. event emission sites).
func (l *Logger) WithFields(kv ...interface{}) *Logger {
	if l.sugar == nil {
		return l
	}
	return &Logger{category: l.category, sugar: l.sugar.With(kv...)}
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	for _, l := range loggers {
		if l.sugar != nil {
			_ = l.sugar.Sync()
		}
	}
}

// Timer measures and logs the duration of an operation.
type Timer struct {
	logger *Logger
	op     string
	start  time.Time
}

// StartTimer begins timing an operation under a category.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{logger: Get(category), op: operation, start: time.Now()}
}

// Stop ends the timer, logging the elapsed duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs a warning if the elapsed duration exceeds threshold,
// otherwise logs at debug level.
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.logger.Warn("%s took %v (threshold %v)", t.op, elapsed, threshold)
	} else {
		t.logger.Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
