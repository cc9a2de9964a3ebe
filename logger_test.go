package starscroll

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLoggerReceivesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	newTestBackground(t, 64, 64, 1, WithSelector(Deterministic))

	out := buf.String()
	for _, want := range []string{"sheet loaded", "catalog ready", "background composed", "rows=1", "padding=192"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogReadyLoggedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer SetLogger(nil)

	testCatalog(t)

	out := buf.String()
	if !strings.Contains(out, "catalog ready") || !strings.Contains(out, "sheets=6") {
		t.Errorf("info output missing catalog summary:\n%s", out)
	}
	if strings.Contains(out, "sheet loaded") {
		t.Errorf("per-sheet debug lines leaked at info level:\n%s", out)
	}
}
