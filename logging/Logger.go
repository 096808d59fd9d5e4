package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log is the package-global logger configured by Init
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init sets the global level and points the logger at w (stdout when nil).
// level can be "debug", "info", "warn", "error".
func Init(w io.Writer, level string) {
	l := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(l)

	if w == nil {
		w = os.Stdout
	}
	Log = zerolog.New(w).With().Timestamp().Logger()
}

// Get returns a pointer to the package-global logger
func Get() *zerolog.Logger {
	return &Log
}
