package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "restoring", "a", 1)
	log.Info(ctx, "restored", "b", 2)
	log.Warn(ctx, "discarding", "c", 3)
	log.Error(ctx, "failed", "d", 4)

	out := buf.String()
	for _, s := range []string{
		"level=DEBUG msg=restoring a=1",
		"level=INFO msg=restored b=2",
		"level=WARN msg=discarding c=3",
		"level=ERROR msg=failed d=4",
	} {
		assert.Contains(t, out, s)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("component", "session").Info(context.Background(), "user signed in", "email", "ann@example.com")

	out := buf.String()
	assert.Contains(t, out, "component=session")
	assert.Contains(t, out, "email=ann@example.com")
}

func TestSlogLogger_ContextFields(t *testing.T) {
	log, buf := newTestLogger(t)

	ctx := ContextWith(context.Background(), "request_id", "abc")
	ctx = ContextWith(ctx, "route", "/api/auth/login")
	log.Info(ctx, "request", "status", 200)

	assert.Contains(t, buf.String(), "request_id=abc route=/api/auth/login status=200")
}

func TestSlogLogger_NilContext(t *testing.T) {
	log, buf := newTestLogger(t)
	assert.NotPanics(t, func() {
		//nolint:staticcheck // nil ctx is tolerated
		log.Info(nil, "no ctx")
	})
	assert.Contains(t, buf.String(), "msg=\"no ctx\"")
}

func TestContextWith_NoArgsKeepsContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, ContextWith(ctx))
	assert.Nil(t, fieldsFrom(ctx))
}
