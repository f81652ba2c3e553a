package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// Leveled adapts a zap logger to the key/value leveled logger interface used by
// go-retryablehttp.
type Leveled struct {
	l *zap.SugaredLogger
}

// NewLeveled wraps l.
func NewLeveled(l *zap.Logger) *Leveled {
	return &Leveled{l: l.Sugar()}
}

func (z *Leveled) Error(msg string, keysAndValues ...interface{}) { z.l.Errorw(msg, keysAndValues...) }
func (z *Leveled) Info(msg string, keysAndValues ...interface{})  { z.l.Infow(msg, keysAndValues...) }
func (z *Leveled) Debug(msg string, keysAndValues ...interface{}) { z.l.Debugw(msg, keysAndValues...) }
func (z *Leveled) Warn(msg string, keysAndValues ...interface{})  { z.l.Warnw(msg, keysAndValues...) }
