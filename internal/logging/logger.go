// Package logging provides config-driven categorized logging for frontbundle.
// Every category is a named child of one zap logger writing to stderr, so stdout
// stays reserved for the success line.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"frontbundle/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config
	CategorySelect Category = "select" // Trail and target-directory selection
	CategoryRead   Category = "read"   // Content reading and placeholders
	CategoryReport Category = "report" // Output document writing
)

// Logger wraps a sugared zap logger bound to one category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	base      = zap.NewNop()
	settings  config.LoggingConfig
)

// Initialize builds the process logger from cfg.
// Should be called once at startup, before any category logger is used.
func Initialize(cfg config.LoggingConfig) error {
	zc := zap.NewProductionConfig()
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggersMu.Lock()
	settings = cfg
	loggersMu.Unlock()
	UseLogger(l)

	Boot("logging initialized: level=%s format=%s", level, zc.Encoding)
	return nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "warning":
		return zapcore.WarnLevel, nil
	case "":
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// UseLogger replaces the process logger and drops cached category loggers.
// A nil logger installs a no-op logger.
func UseLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggersMu.Lock()
	defer loggersMu.Unlock()
	base = l
	loggers = make(map[Category]*Logger)
}

// Annotate attaches fields to every subsequent log line (e.g. the run id).
func Annotate(fields ...zap.Field) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	base = base.With(fields...)
	loggers = make(map[Category]*Logger)
}

// Sync flushes buffered entries.
func Sync() error {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return base.Sync()
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *Logger {
	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := &Logger{category: category, sugar: zap.NewNop().Sugar()}
	if settings.IsCategoryEnabled(string(category)) {
		l.sugar = base.Named(string(category)).Sugar()
	}
	loggers[category] = l
	return l
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// StructuredLog writes msg with key-value pairs at the given level.
func (l *Logger) StructuredLog(level zapcore.Level, msg string, keysAndValues ...interface{}) {
	l.sugar.Logw(level, msg, keysAndValues...)
}

// =============================================================================
// CATEGORY HELPERS
// =============================================================================

func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debug(format, args...)
}

func Select(format string, args ...interface{}) {
	Get(CategorySelect).Info(format, args...)
}

func SelectDebug(format string, args ...interface{}) {
	Get(CategorySelect).Debug(format, args...)
}

func Read(format string, args ...interface{}) {
	Get(CategoryRead).Info(format, args...)
}

func ReadDebug(format string, args ...interface{}) {
	Get(CategoryRead).Debug(format, args...)
}

func Report(format string, args ...interface{}) {
	Get(CategoryReport).Info(format, args...)
}

func ReportDebug(format string, args ...interface{}) {
	Get(CategoryReport).Debug(format, args...)
}
