package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/unify/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Debug("scanning member")
	l.Info("plan computed")
	l.Warn("exclusion matched nothing")
	l.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"scanning member", "plan computed", "exclusion matched nothing", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.New()

	l.SetOutput(&first)
	l.Info("one")

	l.SetOutput(&second)
	l.Info("two")

	if !strings.Contains(first.String(), "one") || strings.Contains(first.String(), "two") {
		t.Errorf("first buffer has wrong content: %q", first.String())
	}
	if !strings.Contains(second.String(), "two") {
		t.Errorf("second buffer missing entry: %q", second.String())
	}
}
