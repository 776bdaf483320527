package security

import (
	"context"
	"errors"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SpamTrackerConfig holds configuration for rejected-submission tracking
type SpamTrackerConfig struct {
	Threshold int           // Rejections within Window that flag a client (default: 5)
	Window    time.Duration // Time window for counting rejections (default: 15min)
}

// DefaultSpamTrackerConfig returns sensible defaults
func DefaultSpamTrackerConfig() SpamTrackerConfig {
	return SpamTrackerConfig{
		Threshold: 5,
		Window:    15 * time.Minute,
	}
}

// SpamTracker counts rejected form submissions per client and logs a
// spam_suspected event once a client crosses the threshold.
type SpamTracker struct {
	config SpamTrackerConfig
	client *goredis.Client
	logger *SecurityLogger
	now    func() time.Time

	mu     sync.Mutex
	counts map[string]*rejectCount
}

type rejectCount struct {
	n       int
	resetAt time.Time
}

// NewSpamTracker creates a tracker. A nil client keeps counters in memory.
func NewSpamTracker(config SpamTrackerConfig, client *goredis.Client, logger *SecurityLogger) *SpamTracker {
	if config.Threshold <= 0 {
		config.Threshold = DefaultSpamTrackerConfig().Threshold
	}
	if config.Window <= 0 {
		config.Window = DefaultSpamTrackerConfig().Window
	}
	if logger == nil {
		logger = DefaultLogger()
	}
	return &SpamTracker{
		config: config,
		client: client,
		logger: logger,
		now:    time.Now,
		counts: make(map[string]*rejectCount),
	}
}

const rejectedSubmitPrefix = "rejected:submit:ip:"

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: current count after increment
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RecordRejection counts one rejected submission from ip. It returns the
// count inside the current window and whether this call crossed the threshold.
func (st *SpamTracker) RecordRejection(ctx context.Context, ip, requestID, endpoint string) (int, bool, error) {
	if ip == "" {
		return 0, false, nil
	}

	var (
		count int
		err   error
	)
	if st.client != nil {
		count, err = st.incrementRedis(ctx, rejectedSubmitPrefix+ip)
		if err != nil {
			// Redis hiccup: keep counting locally
			count = st.incrementMemory(ip)
			err = nil
		}
	} else {
		count = st.incrementMemory(ip)
	}

	// Log exactly once per window, on the crossing
	flagged := count == st.config.Threshold
	if flagged {
		st.logger.LogSpamSuspected(ctx, ip, requestID, endpoint, count)
	}
	return count, flagged, err
}

func (st *SpamTracker) incrementRedis(ctx context.Context, key string) (int, error) {
	ttlSeconds := int(st.config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}
	result, err := st.client.Eval(ctx, incrWithTTLScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, err
	}
	count, ok := result.(int64)
	if !ok {
		return 0, errors.New("unexpected result type from Lua script")
	}
	return int(count), nil
}

func (st *SpamTracker) incrementMemory(ip string) int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	// Expired entries are dropped on access
	for k, rc := range st.counts {
		if !now.Before(rc.resetAt) {
			delete(st.counts, k)
		}
	}

	rc, ok := st.counts[ip]
	if !ok {
		rc = &rejectCount{resetAt: now.Add(st.config.Window)}
		st.counts[ip] = rc
	}
	rc.n++
	return rc.n
}
