package audit

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("@example.com"))
	assert.Equal(t, HashValue("not-an-email"), MaskEmail("not-an-email"))
	assert.Equal(t, "é***@example.com", MaskEmail("élise@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("é@example.com"))
	assert.True(t, utf8.ValidString(MaskEmail("ömer@example.com")))
	assert.Len(t, HashValue("x"), 16)
}

func TestLogLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap(zap.New(core), "forms-api", "test")

	ctx := WithRequestID(context.Background(), "req-1")
	l.Log(ctx, Event{Event: EventSubmissionReceived, Form: "contact", Submitter: "jane@example.com"})
	l.Log(ctx, Event{Event: EventSubmissionRejected, Form: "contact", Violations: 2})
	l.Log(ctx, Event{Event: EventDeliveryFailed, Form: "contact", Err: errors.New("smtp down")})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "j***@example.com", fields["submitter"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "contact", fields["form"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 2, entries[1].ContextMap()["violations"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "smtp down", entries[2].ContextMap()["error"])
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Log(context.Background(), Event{Event: EventInternalError})
	})
}
