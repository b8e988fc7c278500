package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"  WARN ": LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"info":    LevelInfo,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Init("warn")
	defer Init("info")

	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("visible warn %d", 1)
	Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("suppressed levels leaked into output: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible warn 1") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] visible error") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLevelString(t *testing.T) {
	Init("debug")
	defer Init("info")
	if got := LevelString(); got != "debug" {
		t.Errorf("LevelString() = %q, want debug", got)
	}
}
