package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-console/internal/config"
)

// New builds the application logger. Entries go to w, unless a log file is
// configured, in which case they only go to the rotated file so they stay
// out of the game's output. In production w shares the player's terminal
// and only gets warnings and errors.
func New(cfg config.Config, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	level := logrus.InfoLevel
	if cfg.Development() {
		level = logrus.DebugLevel
	}
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{})

	if cfg.Log.File == "" {
		if cfg.Production() {
			level = logrus.WarnLevel
		}
		logger.SetLevel(level)
		return logger, nil
	}
	logger.SetLevel(level)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	logger.AddHook(hook)
	logger.SetOutput(io.Discard)

	return logger, nil
}
