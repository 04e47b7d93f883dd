package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	require.Equal(t, zerolog.Disabled, ParseLevel("off"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestFor_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	For("seating").Info().Str("event_id", "e1").Msg("generated")

	out := buf.String()
	require.Contains(t, out, `"component":"seating"`)
	require.Contains(t, out, `"event_id":"e1"`)
	require.Contains(t, out, `"message":"generated"`)
}

func TestInit_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	For("x").Info().Msg("hidden")
	require.Empty(t, buf.String())

	For("x").Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}
