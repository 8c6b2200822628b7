// Package logging builds the zap logger shared by the binaries.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"stockquotes/internal/config"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New returns a JSON logger writing to stdout, and to a rotated file when
// cfg.File is set. Development mode logs human-readable lines, at debug level unless
// cfg.Level says otherwise.
func New(cfg config.Log) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	if cfg.Development {
		dev := zap.NewDevelopmentConfig()
		if cfg.Level != "" {
			dev.Level = level
		}
		if cfg.File != "" {
			dev.OutputPaths = append(dev.OutputPaths, cfg.File)
		}
		return dev.Build()
	}

	sink := zapcore.AddSync(os.Stdout)
	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 100
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
			MaxAge:     28,
		}))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, level)
	return zap.New(core, zap.AddCaller()), nil
}
