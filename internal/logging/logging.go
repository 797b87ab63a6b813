package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger at the given level writing to w. The terminal UI
// owns stdout, so the application points this at a log file.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return logger, nil
}

// NewConsole is New with human-readable output, used by the interest
// calculator and by ad hoc debugging.
func NewConsole(w io.Writer, level string) (zerolog.Logger, error) {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return New(cw, level)
}

// OpenLogFile opens (or creates) the application log file for appending.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
