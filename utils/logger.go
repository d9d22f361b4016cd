package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLogger sends info logs to stdout and errors to stderr.
// An unknown level falls back to info.
func InitLogger(level string) {
	configure(InfoLogger, os.Stdout, level)
	configure(ErrorLogger, os.Stderr, "error")
}

// SilenceLoggers discards all log output. Tests call it to keep output clean.
func SilenceLoggers() {
	InfoLogger.SetOutput(io.Discard)
	ErrorLogger.SetOutput(io.Discard)
}

func configure(l *logrus.Logger, out io.Writer, level string) {
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}
