// Package logger builds the process-wide zap logger. Output always goes to
// a file so terminal hosts keep stdout and stderr clean.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/antigravity/parameter"
)

// Config holds configuration for the logger
type Config struct {
	// Debug enables file logging; otherwise a no-op logger is returned
	Debug   bool
	Level   string
	Dir     string
	Service string
	Session string
	// MaxSize overrides parameter.MaxLogSize when positive
	MaxSize int64
}

// New creates the logger and returns a closer for its file
func New(cfg Config) (*zap.Logger, func() error, error) {
	if !cfg.Debug {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if cfg.Dir == "" {
		cfg.Dir = parameter.LogDir
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = parameter.MaxLogSize
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, parameter.LogFileName)
	if err := rotate(path, cfg.MaxSize, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(f),
		level(cfg.Level),
	)
	l := zap.New(core, zap.AddCaller())

	fields := make([]zap.Field, 0, 2)
	if cfg.Service != "" {
		fields = append(fields, zap.String("service", cfg.Service))
	}
	if cfg.Session != "" {
		fields = append(fields, zap.String("session", cfg.Session))
	}
	l = l.With(fields...)

	closer := func() error {
		_ = l.Sync()
		return f.Close()
	}
	return l, closer, nil
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string, maxSize int64, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// level converts a string log level, defaulting to info
func level(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
