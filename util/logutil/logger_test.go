package logutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expecting silent default logger")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Info("window created", "w", 800)
	if !strings.Contains(buf.String(), "window created") {
		t.Fatal(buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	type pair struct {
		s   string
		l   slog.Level
		err bool
	}
	pairs := []pair{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, p := range pairs {
		l, err := ParseLevel(p.s)
		if p.err {
			if err == nil {
				t.Errorf("%q: expecting error", p.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", p.s, err)
			continue
		}
		if l != p.l {
			t.Errorf("%q: expected %v, got %v", p.s, p.l, l)
		}
	}
}
