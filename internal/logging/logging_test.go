package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureDefault routes the default logger into a buffer for the test.
func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithUser(t *testing.T) {
	buf := captureDefault(t)

	WithUser("U123").Error("something failed", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, "user_id=U123")
	assert.Contains(t, out, "something failed")
	assert.Contains(t, out, "error=boom")
}

func TestWithChannel(t *testing.T) {
	buf := captureDefault(t)

	WithChannel("C456").Warn("post dropped")

	out := buf.String()
	assert.Contains(t, out, "channel_id=C456")
	assert.Contains(t, out, "post dropped")
}

func TestInitLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLogger("debug", "json")

	assert.NotNil(t, Logger)
	assert.Same(t, Logger, slog.Default())
	assert.True(t, Logger.Enabled(context.Background(), slog.LevelDebug))
}
