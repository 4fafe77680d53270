package core

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the package-level zerolog.Logger used across
// circuitsim. format "console" produces the human-readable
// zerolog.ConsoleWriter (dev mode); anything else emits structured JSON
// lines to w, or os.Stdout if w is nil. Mirrors the dev/prod logger
// split in kegliz/qplay and dbehnke/allstar-nexus.
func NewLogger(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}

	var writer io.Writer = w
	if format == "console" {
		writer = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
