package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/luconnect/luconnect/internal/logging"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter emulates the fixed window script with an in-memory counter.
type fakeScripter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
	keys   []string
	args   []any
}

func newFakeScripter() *fakeScripter {
	return &fakeScripter{counts: map[string]int64{}}
}

func (f *fakeScripter) run(ctx context.Context, keys []string, args ...any) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.keys, f.args = keys, args

	f.counts[keys[0]]++
	limit := int64(args[1].(int))
	if f.counts[keys[0]] > limit {
		cmd.SetVal(int64(0))
	} else {
		cmd.SetVal(int64(1))
	}
	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, _ ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceCmd(ctx)
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	return redis.NewStringCmd(ctx)
}

func TestRedisLimiter_Allow(t *testing.T) {
	f := newFakeScripter()
	l := NewRedisLimiter(f, 3, time.Minute, logging.NewDiscard())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "alice"), "attempt %d", i+1)
	}
	assert.False(t, l.Allow(ctx, "alice"))
	assert.True(t, l.Allow(ctx, "bob"), "keys are independent")

	require.Equal(t, []string{keyPrefix + "bob"}, f.keys)
	assert.Equal(t, int64(60000), f.args[0])
	assert.Equal(t, 3, f.args[1])
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	f := newFakeScripter()
	f.err = errors.New("connection refused")
	l := NewRedisLimiter(f, 1, time.Minute, logging.NewDiscard())

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), "alice"))
	}
}

func TestRedisLimiter_Disabled(t *testing.T) {
	f := newFakeScripter()
	ctx := context.Background()

	assert.True(t, NewRedisLimiter(f, 0, time.Minute, logging.NewDiscard()).Allow(ctx, "a"))
	assert.True(t, NewRedisLimiter(f, 1, 0, logging.NewDiscard()).Allow(ctx, "a"))
	assert.True(t, NewRedisLimiter(f, 1, time.Minute, logging.NewDiscard()).Allow(ctx, ""))
	assert.True(t, NewRedisLimiter(nil, 1, time.Minute, logging.NewDiscard()).Allow(ctx, "a"))

	var nilLimiter *RedisLimiter
	assert.True(t, nilLimiter.Allow(ctx, "a"))
	assert.Empty(t, f.counts)
}

func TestNew(t *testing.T) {
	l, closeFn := New("", 5, time.Minute, logging.NewDiscard())
	assert.IsType(t, Nop{}, l)
	assert.NoError(t, closeFn())
	assert.True(t, l.Allow(context.Background(), "x"))

	l, closeFn = New("127.0.0.1:0", 5, time.Minute, logging.NewDiscard())
	assert.IsType(t, &RedisLimiter{}, l)
	assert.NoError(t, closeFn())
}
