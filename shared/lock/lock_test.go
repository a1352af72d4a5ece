package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimedia/shared/lock"
)

func newLocker(t *testing.T) (lock.Locker, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return lock.New(client), server
}

func TestAcquire(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()

	unlock, err := locker.Acquire(ctx, "widget:lock", time.Minute)
	require.NoError(t, err)
	assert.True(t, server.Exists("widget:lock"))

	_, err = locker.Acquire(ctx, "widget:lock", time.Minute)
	assert.ErrorIs(t, err, lock.ErrLocked)

	unlock()
	unlock()
	assert.False(t, server.Exists("widget:lock"))

	unlock, err = locker.Acquire(ctx, "widget:lock", time.Minute)
	require.NoError(t, err)
	unlock()
}

func TestAcquireDoesNotReleaseForeignLock(t *testing.T) {
	locker, server := newLocker(t)
	ctx := context.Background()

	unlock, err := locker.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	other, err := locker.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)

	unlock()
	assert.True(t, server.Exists("k"))

	other()
	assert.False(t, server.Exists("k"))
}

func TestLockIsRenewedWhileHeld(t *testing.T) {
	locker, server := newLocker(t)

	unlock, err := locker.Acquire(context.Background(), "k", 300*time.Millisecond)
	require.NoError(t, err)
	defer unlock()

	server.FastForward(200 * time.Millisecond)
	require.Equal(t, 100*time.Millisecond, server.TTL("k"))

	// renewals run every ttl/3 and push the expiry back to the full ttl
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, 300*time.Millisecond, server.TTL("k"))
}

func TestWait(t *testing.T) {
	locker, _ := newLocker(t)
	ctx := context.Background()

	unlock, err := locker.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		unlock()
	}()

	next, err := locker.Wait(ctx, "k", time.Minute)
	require.NoError(t, err)
	next()

	held, err := locker.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	defer held()

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	_, err = locker.Wait(waitCtx, "k", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
