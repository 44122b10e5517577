package wordarena

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a human-readable console logger writing to w at the named
// level. Unknown level names fall back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("component", "wordarena").
		Logger()
}
