package util

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

// InitLogger configures the global zerolog logger. Pretty output is meant for
// terminals, otherwise one JSON object is written per line.
func InitLogger(appName, level string, pretty bool, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = zerolog.New(out).With().Str("app", appName).Timestamp().Logger()
}
