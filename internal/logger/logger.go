package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/sangkips/confreg-invoicing/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} [%{module}] [%{level}] %{message}`,
)

// Setup installs the stdout backend and, when cfg.File is set, a rotating
// file backend. It returns the file writer so callers can close it.
func Setup(cfg config.LogConfig) io.Closer {
	return SetupTo(cfg, os.Stdout)
}

// SetupTo is Setup with the console output sent to w
func SetupTo(cfg config.LogConfig, w io.Writer) io.Closer {
	level := ParseLevel(cfg.Level)

	backendStdout := logging.NewLogBackend(w, "", 0)
	stdoutLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(backendStdout, stdoutLogFormat))
	stdoutLeveled.SetLevel(level, "")

	if cfg.File == "" {
		logging.SetBackend(stdoutLeveled)
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	backendFile := logging.NewLogBackend(rotator, "", 0)
	fileLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(backendFile, fileLogFormat))
	fileLeveled.SetLevel(level, "")

	logging.SetBackend(fileLeveled, stdoutLeveled)
	return rotator
}

// ParseLevel maps a level name to a logging.Level, defaulting to INFO
func ParseLevel(name string) logging.Level {
	level, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return logging.INFO
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
