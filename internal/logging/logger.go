// internal/logging/logger.go
// Inisialisasi zap logger dari LOG_LEVEL & LOG_FORMAT

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New membangun logger. format: "json" (default) atau "console".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "console", "text":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// MustNew seperti New tapi fallback ke production logger jika konfigurasi invalid.
func MustNew(level, format string) *zap.Logger {
	l, err := New(level, format)
	if err == nil {
		return l
	}
	l, _ = zap.NewProduction()
	l.Warn("invalid log config, using defaults", zap.Error(err))
	return l
}
