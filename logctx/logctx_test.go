package logctx

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestFromReturnsStoredLogger(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := Into(context.Background(), l)
	if got := From(ctx); got != l {
		t.Error("From did not return the stored logger")
	}
}

func TestFromFallsBackToDefault(t *testing.T) {
	if got := From(context.Background()); got != slog.Default() {
		t.Error("From did not fall back to slog.Default")
	}
}
