package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestTracker(threshold int, window time.Duration) (*SpamTracker, *observer.ObservedLogs, *time.Time) {
	core, logs := observer.New(zapcore.DebugLevel)
	st := NewSpamTracker(SpamTrackerConfig{Threshold: threshold, Window: window}, nil,
		NewSecurityLogger(zap.New(core), "pondpatrol-web", "test"))
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }
	return st, logs, &now
}

func TestSpamTrackerFlagsOnceAtThreshold(t *testing.T) {
	st, logs, _ := newTestTracker(3, time.Minute)
	ctx := context.Background()

	var flags []bool
	for i := 0; i < 5; i++ {
		count, flagged, err := st.RecordRejection(ctx, "10.0.0.9", "req", "/contact")
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
		flags = append(flags, flagged)
	}

	assert.Equal(t, []bool{false, false, true, false, false}, flags)
	entries := logs.FilterMessage(string(EventSpamSuspected)).AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "10.0.0.9", entries[0].ContextMap()["ip"])
}

func TestSpamTrackerWindowResets(t *testing.T) {
	st, logs, now := newTestTracker(2, time.Minute)
	ctx := context.Background()

	_, _, _ = st.RecordRejection(ctx, "10.0.0.9", "req", "/contact")
	*now = now.Add(time.Minute)
	count, flagged, err := st.RecordRejection(ctx, "10.0.0.9", "req", "/contact")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.False(t, flagged)
	assert.Zero(t, logs.Len())
}

func TestSpamTrackerCountsPerIP(t *testing.T) {
	st, _, _ := newTestTracker(5, time.Minute)
	ctx := context.Background()

	_, _, _ = st.RecordRejection(ctx, "10.0.0.1", "", "/contact")
	_, _, _ = st.RecordRejection(ctx, "10.0.0.1", "", "/contact")
	count, _, _ := st.RecordRejection(ctx, "10.0.0.2", "", "/contact")
	assert.Equal(t, 1, count)

	count, flagged, err := st.RecordRejection(ctx, "", "", "/contact")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, flagged)
}

func TestNewSpamTrackerDefaults(t *testing.T) {
	st := NewSpamTracker(SpamTrackerConfig{}, nil, NewSecurityLogger(zap.NewNop(), "svc", "test"))
	assert.Equal(t, DefaultSpamTrackerConfig(), st.config)
}
