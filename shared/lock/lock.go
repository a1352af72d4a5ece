package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTTL = 2 * time.Minute

	defaultRetryInterval = 50 * time.Millisecond
)

var (
	ErrLocked = errors.New("resource is locked by another holder")

	// releaseScript deletes the lock only if it still holds our token.
	releaseScript = goRedis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

	// renewScript extends the lock only if it still holds our token.
	renewScript = goRedis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)
)

// Locker hands out Redis locks. A held lock is renewed in the background
// until its unlock func is called, so it only expires when the holder dies.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
	Wait(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
}

type lockerImpl struct {
	client        *goRedis.Client
	retryInterval time.Duration
}

func New(client *goRedis.Client) Locker {
	return &lockerImpl{
		client:        client,
		retryInterval: defaultRetryInterval,
	}
}

// Acquire takes key once and fails with ErrLocked when someone else holds it.
func (l *lockerImpl) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !acquired {
		return nil, ErrLocked
	}

	stop := make(chan struct{})
	go l.renew(context.WithoutCancel(ctx), key, token, ttl, stop)

	var once sync.Once

	unlock := func() {
		once.Do(func() {
			close(stop)

			if err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, token).Err(); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to release lock")
			}
		})
	}

	return unlock, nil
}

// Wait retries Acquire until the lock is free or ctx is done.
func (l *lockerImpl) Wait(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		unlock, err := l.Acquire(ctx, key, ttl)
		if !errors.Is(err, ErrLocked) {
			return unlock, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *lockerImpl) renew(ctx context.Context, key, token string, ttl time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			renewed, err := renewScript.Run(ctx, l.client, []string{key}, token, ttl.Milliseconds()).Int()
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to renew lock")

				continue
			}

			if renewed == 0 {
				log.Warn().Str("key", key).Msg("lock lost before release")

				return
			}
		}
	}
}
