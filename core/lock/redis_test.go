package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	l, client := NewFromConfig(Config{RedisAddr: "localhost:6379", Key: "k", TTLSeconds: 0})
	defer client.Close()

	assert.Equal(t, "k", l.key)
	assert.Equal(t, 10*time.Minute, l.ttl)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
}

func TestTryLock_Unreachable(t *testing.T) {
	l, client := NewFromConfig(Config{RedisAddr: "127.0.0.1:1", Key: "listing-sync:test", TTLSeconds: 5})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	release, ok, err := l.TryLock(ctx)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, release)
	assert.Contains(t, err.Error(), "acquire listing-sync:test")
}

// memRedis implements the SET NX and script calls RedisLocker issues.
type memRedis struct {
	redis.Cmdable

	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.data[key]; held {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = value.(string)
	m.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

// compareAndDelete mirrors releaseScript.
func (m *memRedis) compareAndDelete(keys []string, args []interface{}) *redis.Cmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[keys[0]] == args[0].(string) {
		delete(m.data, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (m *memRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.compareAndDelete(keys, args)
}

func (m *memRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.compareAndDelete(keys, args)
}

// expire drops key as if its TTL elapsed.
func (m *memRedis) expire(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *memRedis) holder(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func TestTryLock_Contended(t *testing.T) {
	rdb := newMemRedis()
	first := New(rdb, "listing-sync:run", time.Minute)
	second := New(rdb, "listing-sync:run", time.Minute)
	ctx := context.Background()

	release, ok, err := first.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, release)
	assert.Equal(t, time.Minute, rdb.ttls["listing-sync:run"])

	again, ok, err := second.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, again)

	release()
	_, held := rdb.holder("listing-sync:run")
	assert.False(t, held)

	next, ok, err := second.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	next()
}

func TestTryLock_ReleaseKeepsOtherToken(t *testing.T) {
	rdb := newMemRedis()
	first := New(rdb, "listing-sync:run", time.Minute)
	second := New(rdb, "listing-sync:run", time.Minute)
	ctx := context.Background()

	staleRelease, ok, err := first.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// first's lock expires and second takes it over
	rdb.expire("listing-sync:run")
	release, ok, err := second.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	owner, _ := rdb.holder("listing-sync:run")

	staleRelease()
	current, held := rdb.holder("listing-sync:run")
	require.True(t, held)
	assert.Equal(t, owner, current)

	release()
	_, held = rdb.holder("listing-sync:run")
	assert.False(t, held)
}
