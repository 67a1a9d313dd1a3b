package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"Error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"off":     zerolog.Disabled,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_WritesPlainLinesToExtraWriters(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", nil, &buf)

	l.Debug().Msg("hidden")
	l.Info().Int("entity", 3).Msg("combatant down")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "combatant down")
	assert.Contains(t, out, "entity=3")
	assert.NotContains(t, out, "\x1b[", "no color codes in file output")
}

func TestNew_NoWritersIsNop(t *testing.T) {
	l := New("debug", nil)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestSampled_ThinsBursts(t *testing.T) {
	var buf bytes.Buffer
	l := Sampled(New("debug", nil, &buf))

	for i := 0; i < 50; i++ {
		l.Debug().Int("shot", i).Msg("fired")
	}

	lines := strings.Count(buf.String(), "fired")
	assert.GreaterOrEqual(t, lines, 5, "the first burst passes")
	assert.Less(t, lines, 10)
	assert.Contains(t, buf.String(), "sampled=true")
}
