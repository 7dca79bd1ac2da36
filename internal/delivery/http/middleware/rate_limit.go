package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/pkg/logger"

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
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
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

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// LoginRateLimitConfig is used for register and login.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

// UploadRateLimitConfig is used for routes that accept files.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:upload:",
		FailClosed: false,
		KeyFunc:    clientIP,
	}
}

type localEntry struct {
	limiter  *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// RateLimiter counts requests in Redis when a client is configured and falls
// back to per-key token buckets held in memory otherwise.
type RateLimiter struct {
	client *goredis.Client

	mu        sync.Mutex
	local     map[string]*localEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{
		client: client,
		local:  map[string]*localEntry{},
		now:    time.Now,
	}
}

type decision struct {
	allowed    bool
	remaining  int
	retryAfter time.Duration
}

// Middleware creates a rate limiting middleware with the given config.
func (rl *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIP
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)

		var d decision
		if rl.client != nil {
			var err error
			d, err = rl.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				logger.Log.Warn("Rate limit backend unavailable",
					"key_prefix", config.KeyPrefix, "error", err, "fail_closed", config.FailClosed)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				d = rl.checkLocal(fullKey, config)
			}
		} else {
			d = rl.checkLocal(fullKey, config)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(d.remaining, 0)))

		if !d.allowed {
			retryAfter := int(math.Ceil(d.retryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("Rate limit triggered",
				"ip", c.ClientIP(), "path", c.FullPath(), "request_id", response.RequestID(c))

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRedis uses a fixed window counter kept atomically by the Lua script.
func (rl *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (decision, error) {
	ttlSeconds := max(int(config.Window.Seconds()), 1)

	result, err := rl.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return decision{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return decision{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return decision{
		allowed:    int(count) <= config.Limit,
		remaining:  config.Limit - int(count),
		retryAfter: time.Duration(ttl) * time.Second,
	}, nil
}

// checkLocal refills Limit tokens per Window with a burst of Limit.
func (rl *RateLimiter) checkLocal(key string, config RateLimitConfig) decision {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now, config.Window)

	entry, ok := rl.local[key]
	if !ok {
		every := config.Window / time.Duration(max(config.Limit, 1))
		entry = &localEntry{limiter: rate.NewLimiter(rate.Every(every), config.Limit), window: config.Window}
		rl.local[key] = entry
	}
	entry.lastSeen = now

	res := entry.limiter.ReserveN(now, 1)
	if !res.OK() {
		return decision{allowed: false, retryAfter: config.Window}
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return decision{allowed: false, retryAfter: delay}
	}
	return decision{allowed: true, remaining: int(entry.limiter.TokensAt(now))}
}

// sweep drops buckets idle for more than two of their windows. Caller holds mu.
func (rl *RateLimiter) sweep(now time.Time, every time.Duration) {
	if now.Sub(rl.lastSweep) < every {
		return
	}
	rl.lastSweep = now
	for k, e := range rl.local {
		if now.Sub(e.lastSeen) > 2*e.window {
			delete(rl.local, k)
		}
	}
}
