package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("viewer", "lb").Msg("opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "opened", entry["message"])
	assert.Equal(t, "lb", entry["viewer"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(DefaultConfig(), &buf)
	log.Warn().Msg("host channel full")
	assert.Contains(t, buf.String(), "host channel full")
	assert.Contains(t, buf.String(), "WRN")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LIGHTBOX_LOG_LEVEL", "debug")
	t.Setenv("LIGHTBOX_LOG_FORMAT", "json")
	cfg := configFromEnv(DefaultConfig())
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv("LIGHTBOX_LOG_FORMAT", "xml")
	cfg = configFromEnv(DefaultConfig())
	assert.Equal(t, "console", cfg.Format)
}

func TestNewFromEnvLevel(t *testing.T) {
	t.Setenv("LIGHTBOX_LOG_LEVEL", "error")
	assert.Equal(t, zerolog.ErrorLevel, NewFromEnv().GetLevel())
}
