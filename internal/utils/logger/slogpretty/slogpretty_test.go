package slogpretty

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "test"))

	log.Info("server started", slog.Int("port", 3000))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, `"port": 3000`)
	assert.Contains(t, out, `"component": "test"`)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	h := opts.NewPrettyHandler(&buf)

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))

	slog.New(h).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).
		With(slog.String("component", "test")).
		WithGroup("http").
		With(slog.String("method", "GET")).
		WithGroup("response")

	log.Info("request served", slog.Int("status", 200))

	out := buf.String()
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"http.method": "GET"`)
	assert.Contains(t, out, `"http.response.status": 200`)
}
