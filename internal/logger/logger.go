package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide SugaredLogger.
// It discards everything until Initialize or InitializeConsole is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize installs a JSON production logger with the given level.
func Initialize(level string) error {
	return install(level, zap.NewProductionConfig())
}

// InitializeConsole installs a human readable logger writing to stderr,
// for command line tools.
func InitializeConsole(level string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return install(level, cfg)
}

func install(level string, cfg zap.Config) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}
