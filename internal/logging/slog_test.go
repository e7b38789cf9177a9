package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("searching", "attempt", 3)
	logger.Info("round found", "edges", 12)
	logger.Warn("slow roster", "participants", 500)
	logger.Error("bad entry", "key", "round.x")

	out := buf.String()
	require.Contains(t, out, "searching")
	require.Contains(t, out, "attempt=3")
	require.Contains(t, out, "round found")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestNopLogger(t *testing.T) {
	// Must simply not panic.
	logger := NewNop()
	logger.Debug("x")
	logger.Info("x", "k", "v")
	logger.Warn("x")
	logger.Error("x")
}
