package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"  WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})

	log.Info().Msg("below threshold")
	log.Warn().Msg("at threshold")

	out := buf.String()
	if strings.Contains(out, "below threshold") {
		t.Fatalf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "at threshold") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestNew_EmitsJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf})

	log.Info().Str("key", "value").Msg("hello")

	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("expected JSON output, got: %s", out)
	}
}
