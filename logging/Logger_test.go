package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{"default level", "", zerolog.InfoLevel},
		{"debug level", "debug", zerolog.DebugLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"case insensitive", "DEBUG", zerolog.DebugLevel},
		{"unknown falls back to info", "verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(nil, tt.level)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestInitWriter(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "info")
	defer Init(nil, "info")

	Get().Info().Str("group", "admins").Msg("test message")
	Get().Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"group":"admins"`)
	assert.Contains(t, out, "test message")
	assert.NotContains(t, out, "hidden")
}
