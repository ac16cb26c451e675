package logger

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	levelFlag       = "log-level"
	developmentFlag = "log-development"
)

// NewFlags creates the logging cli flags.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    levelFlag,
			Value:   "info",
			Usage:   "log level: debug, info, warn, error",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    developmentFlag,
			Usage:   "use the human readable development encoder",
			EnvVars: []string{"LOG_DEVELOPMENT"},
		},
	}
}

// NewLogger builds a zap logger from cli flags. The returned func flushes
// buffered entries and should be deferred by the caller.
func NewLogger(c *cli.Context) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(c.String(levelFlag))
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", levelFlag, err)
	}

	cfg := zap.NewProductionConfig()
	if c.Bool(developmentFlag) {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return l, func() { _ = l.Sync() }, nil
}
