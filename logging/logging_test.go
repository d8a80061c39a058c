package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"info":    zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"err":     zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"weird":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestSetLevelFiltersOutput(t *testing.T) {
	orig := logger
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	SetLevel("warn")

	L().Info().Msg("hidden")
	L().Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestSetOutputKeepsLevel(t *testing.T) {
	orig := logger
	defer SetLogger(orig)

	SetLevel("error")
	var buf bytes.Buffer
	SetOutput(&buf)

	assert.Equal(t, zerolog.ErrorLevel, L().GetLevel())
	L().Error().Str("entry", "MainFrame").Msg("boom")
	assert.Contains(t, buf.String(), "boom")
}
