package logger

import (
	"bytes"
	"strings"
	"testing"

	"hello_connector/internal/shared/types"
)

func TestInitWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(types.LogConf{Level: "warn"}, &buf); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	Info().Msgf("hidden %d", 1)
	Error().Str("k", "v").Msgf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("expected error message in output, got %q", out)
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(types.LogConf{Level: "debug"}, &buf); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	buf.Reset()

	l := WithComponent("connector")
	l.Info().Msg("hello")

	if !strings.Contains(buf.String(), "component=connector") {
		t.Errorf("expected component field, got %q", buf.String())
	}
}
