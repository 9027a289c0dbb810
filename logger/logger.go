// Package logger wraps zap so the rest of the program shares one configured logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger holds the process-wide zap logger
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger that discards everything until Init is called
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production logger at the given level.
// When outputPath is non-empty, logs go to that file instead of stderr.
func (l *Logger) Init(level string, outputPath ...string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if len(outputPath) > 0 && outputPath[0] != "" {
		cfg.OutputPaths = []string{outputPath[0]}
		cfg.ErrorOutputPaths = []string{outputPath[0]}
	}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}
