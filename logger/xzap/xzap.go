package xzap

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = mustBuild(zap.InfoLevel)

// SetUp replaces the package logger with one at the configured level.
// Call once from main before anything logs.
func SetUp(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	logger = mustBuild(lvl)
	return nil
}

// WithContext returns the request-scoped logger. Context is accepted so a
// trace id can be attached later without touching call sites.
func WithContext(_ context.Context) *zap.Logger {
	return logger
}

func Sync() error {
	return logger.Sync()
}

func mustBuild(lvl zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		lvl,
	)
	return zap.New(core, zap.AddCallerSkip(1), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
