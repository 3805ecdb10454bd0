package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents logger configuration
type Config struct {
	Level          string // debug, info, warn, error, dpanic, panic, fatal
	Format         string // json or console
	OutputPath     string // stdout, stderr, or file path
	EnableSampling bool   // drop repeated entries under load
	ServiceName    string
	ServiceVersion string
	Environment    string // production, development, ...
	Rotation       Rotation
}

// Rotation controls file output; it is ignored for stdout and stderr.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewWithConfig builds a zap logger from cfg.
// It fails if cfg.Level is not a level zap recognizes.
func NewWithConfig(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	core := zapcore.NewCore(newEncoder(cfg), newSink(cfg.OutputPath, cfg.Rotation), level)
	if cfg.EnableSampling {
		// 100 entries per second per message, then every 10th
		core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 10)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(
		zap.String("service", cfg.ServiceName),
		zap.String("version", cfg.ServiceVersion),
		zap.String("environment", cfg.Environment),
	), nil
}

// WithRunID tags every entry of l with a freshly generated run_id.
func WithRunID(l *zap.Logger) *zap.Logger {
	return l.With(zap.String("run_id", uuid.NewString()))
}

func newEncoder(cfg Config) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.SecondsDurationEncoder

	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	if cfg.Environment != "production" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

func newSink(path string, r Rotation) zapcore.WriteSyncer {
	switch path {
	case "", "stdout":
		return zapcore.Lock(os.Stdout)
	case "stderr":
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   true,
	})
}
