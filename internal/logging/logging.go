// Package logging builds the zap logger shared by the CLI and the terminal UI.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tarefas/internal/config"
)

// New builds a logger from cfg. Debug forces the debug level. Interactive
// sessions log to the log file in the config directory so the alternate
// screen stays clean; everything else logs to stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Log.Level)
	}
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = !cfg.Debug

	if cfg.Interactive {
		if err := cfg.EnsureDir(); err != nil {
			return nil, errors.Wrap(err, "failed to create config directory")
		}
		zc.OutputPaths = []string{cfg.LogPath()}
		zc.ErrorOutputPaths = []string{cfg.LogPath()}
	} else {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger.Named(config.AppName), nil
}
