package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/logger"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Redis is the shared counter store. Nil uses the in-process limiter.
	Redis *goredis.Client
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig is the per-IP ceiling applied to every route
func GlobalRateLimitConfig(limit int, window time.Duration, rdb *goredis.Client) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIPKey,
		Redis:     rdb,
	}
}

// SubmitRateLimitConfig is the stricter per-IP limit for contact and newsletter submits.
// Fails open: losing a lead is worse than letting a burst through.
func SubmitRateLimitConfig(limit int, window time.Duration, rdb *goredis.Client) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:submit:",
		KeyFunc:   clientIPKey,
		Redis:     rdb,
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when configured, and a token bucket per key otherwise.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.Limit <= 0 {
		config.Limit = 100
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.KeyFunc == nil {
		config.KeyFunc = clientIPKey
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rl:ip:"
	}
	local := newMemoryLimiter(config.Limit, config.Window)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var (
			allowed   bool
			remaining int
			resetAt   time.Time
		)

		if config.Redis != nil {
			count, redisReset, err := checkRateLimitRedis(c.Request.Context(), config.Redis, fullKey, config)
			switch {
			case err == nil:
				allowed = count <= config.Limit
				remaining = config.Limit - count
				resetAt = redisReset
			case config.FailClosed:
				logger.Log.Error("Rate limit store unavailable", "error", err.Error(), "request_id", response.RequestID(c))
				abortWith(c, apperror.Unavailable("Service temporarily unavailable. Please try again.", err))
				return
			default:
				logger.Log.Warn("Rate limit store unavailable, using in-memory limiter", "error", err.Error())
				allowed, remaining, resetAt = local.allow(fullKey, now)
			}
		} else {
			allowed, remaining, resetAt = local.allow(fullKey, now)
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if !allowed {
			retryAfter := int(math.Ceil(resetAt.Sub(now).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				response.RequestID(c),
				c.FullPath(),
			)

			abortWith(c, apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			return
		}

		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// memoryLimiter keeps one token bucket per key. Limit tokens refill evenly
// over Window. Idle buckets are swept on access, so no goroutine is needed.
type memoryLimiter struct {
	mu        sync.Mutex
	limit     int
	every     time.Duration
	window    time.Duration
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newMemoryLimiter(limit int, window time.Duration) *memoryLimiter {
	return &memoryLimiter{
		limit:   limit,
		every:   window / time.Duration(limit),
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

func (m *memoryLimiter) allow(key string, now time.Time) (bool, int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now)

	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(m.every), m.limit)}
		m.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}
	// time until the bucket is full again
	missing := float64(m.limit) - tokens
	resetAt := now.Add(time.Duration(missing * float64(m.every)))

	return allowed, int(math.Floor(tokens)), resetAt
}

// sweep drops buckets idle for a full window; they would be full again anyway
func (m *memoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.window {
		return
	}
	m.lastSweep = now
	for k, b := range m.buckets {
		if now.Sub(b.lastSeen) >= m.window {
			delete(m.buckets, k)
		}
	}
}
