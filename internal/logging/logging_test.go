package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_LevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlogLogger(slog.New(h))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		require.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := log.With("component", "session")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "component=session")
}

func TestCharmLogger_WritesOutput(t *testing.T) {
	var buf bytes.Buffer
	cl := charm.NewWithOptions(&buf, charm.Options{Level: charm.DebugLevel})
	log := NewCharmLogger(cl)
	ctx := context.Background()

	log.Info(ctx, "inf", "k", "v")
	log.Error(ctx, "err")

	out := buf.String()
	require.True(t, strings.Contains(out, "inf"))
	require.True(t, strings.Contains(out, "err"))
	require.Contains(t, out, "k=v")
}

func TestNop_DoesNothing(t *testing.T) {
	log := Nop()
	// must not panic, even through With
	log.With("a", 1).Info(context.Background(), "ignored")
}
