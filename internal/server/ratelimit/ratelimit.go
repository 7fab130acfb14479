// Package ratelimit throttles login attempts per username.
package ratelimit

import (
	"context"
	"time"

	"github.com/luconnect/luconnect/internal/logging"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another attempt for key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// Nop allows everything. It is used when no redis address is configured.
type Nop struct{}

func (Nop) Allow(context.Context, string) bool { return true }

// Fixed window counter: the first hit sets the expiry, later hits only count.
const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const keyPrefix = "luconnect:login:"

// RedisLimiter is a fixed-window limiter shared by every server instance
// using the same redis. Redis failures fail open.
type RedisLimiter struct {
	client  redis.Scripter
	script  *redis.Script
	limit   int
	window  time.Duration
	timeout time.Duration
	log     logging.Logger
}

func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration, log logging.Logger) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		script:  redis.NewScript(fixedWindowScript),
		limit:   limit,
		window:  window,
		timeout: 250 * time.Millisecond,
		log:     log,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil || key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}

	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{keyPrefix + key}, ttl, l.limit).Int64()
	if err != nil {
		l.log.Warn(ctx, "rate limiter unavailable, allowing request", "error", err)
		return true
	}
	return allowed == 1
}

// New returns a RedisLimiter for addr, or Nop when addr is empty. The
// returned close function releases the redis client.
func New(addr string, limit int, window time.Duration, log logging.Logger) (Limiter, func() error) {
	if addr == "" {
		return Nop{}, func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return NewRedisLimiter(client, limit, window, log), client.Close
}
