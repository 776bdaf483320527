package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "r***@farm.in", MaskEmail("ravi@farm.in"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***@x.in", MaskEmail("a@x.in"))
}

func TestLogLevelsPerEvent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "pondpatrol-web", "test")
	ctx := context.Background()

	sl.LogRateLimitTriggered(ctx, "10.0.0.1", "curl", "req-1", "/v1/contact")
	sl.LogUnauthorized(ctx, "10.0.0.2", "curl", "req-2", "missing token")
	sl.LogSpamSuspected(ctx, "10.0.0.3", "req-3", "/contact", 5)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "rate_limit_triggered", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, "10.0.0.3", entries[2].ContextMap()["subject_value"])
	assert.Contains(t, entries[2].ContextMap()["details"], `"rejections":5`)
}

func TestHashValue(t *testing.T) {
	h := HashValue("pondpatrol")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashValue("pondpatrol"))
	assert.NotEqual(t, h, HashValue("pondpatrol2"))
	assert.Equal(t, h, maskValue("session", "pondpatrol"))
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityHIGH, GetSeverity(EventUnauthorizedAccess))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventSpamSuspected))
	assert.Equal(t, SeverityWARN, GetSeverity(EventType("unknown")))

	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "pondpatrol-web", "test")
	sl.LogCSRFRejected(context.Background(), "10.0.0.4", "req-4", "/contact")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "WARN", logs.All()[0].ContextMap()["severity"])
}

func TestLoggerCarriesServiceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "pondpatrol-web", "production")
	sl.LogRateLimitTriggered(context.Background(), "10.0.0.5", "", "", "/contact")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "pondpatrol-web", fields["service"])
	assert.Equal(t, "production", fields["env"])
	assert.NotContains(t, fields, "user_agent")
}
