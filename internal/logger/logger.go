// Package logger wires logrus into a single process-wide logger, the
// way cmd/main.go expects: a level string, a text formatter with full
// timestamps, and output duplicated to stdout and a log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Anthya1104/evenodd-raid6/internal/config"
	"github.com/sirupsen/logrus"
)

// InitLogger sets the standard logger's level and formatter and
// directs its output to both stdout and config.LogFilePath. level must
// be one of config.LogLevelDebug/Info/Warning/Error.
func InitLogger(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(lvl)

	if err := os.MkdirAll(filepath.Dir(config.LogFilePath), 0o755); err != nil {
		return fmt.Errorf("logger: creating log directory: %w", err)
	}
	f, err := os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logger: opening log file: %w", err)
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

func parseLevel(level string) (logrus.Level, error) {
	switch level {
	case config.LogLevelDebug:
		return logrus.DebugLevel, nil
	case config.LogLevelInfo:
		return logrus.InfoLevel, nil
	case config.LogLevelWarning:
		return logrus.WarnLevel, nil
	case config.LogLevelError:
		return logrus.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}
