package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	errOne := errors.New("disk full")
	errTwo := errors.New("closed")

	cw := NewCombinedWriter(&a, failingWriter{errOne}, &b, failingWriter{errTwo})
	n, err := cw.Write([]byte("hello"))

	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
	if a.String() != "hello" || b.String() != "hello" {
		t.Errorf("writers got %q and %q, want hello in both", a.String(), b.String())
	}
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Errorf("expected 2 combined errors, got %v", err)
	}
}

func TestSetupWithParamsWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "deskwalk.log")
	closer := SetupWithParams(Params{Level: "debug", File: path})

	slog.Debug("Profile saved", "profile_id", "p1")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Profile saved") || !strings.Contains(string(data), "profile_id=p1") {
		t.Errorf("log file missing record: %q", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Errorf("log file contains color escapes: %q", data)
	}
}

func TestSetupUsesEnvLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	t.Setenv("LOG_LEVEL", "warn")

	Setup()
	if slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at LOG_LEVEL=warn")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be enabled at LOG_LEVEL=warn")
	}
}
