package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"multimedia/config"
	"multimedia/infras/otel"
	"multimedia/internal/domains/register/model"
	"multimedia/shared"
	"multimedia/shared/cache"
	"multimedia/shared/constant"
	"multimedia/shared/failure"
	"multimedia/shared/lock"
	"time"
)

const (
	keyForm = "register:form"
	keyLock = "register:lock"

	defaultFormTTLSeconds = 3600
)

var ErrLocked = lock.ErrLocked

// Form keeps register forms in Redis, keyed by session.
type Form interface {
	Save(ctx context.Context, form model.Form) error
	Get(ctx context.Context, sessionID string) (model.Form, error)
	Delete(ctx context.Context, sessionID string) error
	Lock(ctx context.Context, sessionID string, ttl time.Duration) (unlock func(), err error)
}

type storeImpl struct {
	locker lock.Locker
	cache  cache.RedisCache
	cfg    *config.Config
	otel   otel.Otel
}

func New(locker lock.Locker, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Form {
	return &storeImpl{
		locker: locker,
		cache:  cache,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *storeImpl) ttl() int {
	if s.cfg.Register.FormTTLSeconds > 0 {
		return s.cfg.Register.FormTTLSeconds
	}

	return defaultFormTTLSeconds
}

func (s *storeImpl) Save(ctx context.Context, form model.Form) error {
	if err := s.cache.Save(ctx, shared.BuildCacheKey(keyForm, form.SessionID), form, s.ttl()); err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, sessionID string) (form model.Form, err error) {
	err = s.cache.Get(ctx, shared.BuildCacheKey(keyForm, sessionID), &form)
	if cache.IsMiss(err) {
		return form, failure.NotFound("form not found")
	}

	if err != nil {
		return form, fmt.Errorf("failed to load form: %w", err)
	}

	return form, nil
}

func (s *storeImpl) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(keyForm, sessionID)); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}

	return nil
}

// Lock serialises work on one session. The lock is renewed until unlock is
// called and expires after ttl only if the holder goes away.
func (s *storeImpl) Lock(ctx context.Context, sessionID string, ttl time.Duration) (unlock func(), err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Lock")
	defer scope.End()
	defer func() {
		if !errors.Is(err, ErrLocked) {
			scope.TraceIfError(err)
		}
	}()

	unlock, err = s.locker.Acquire(ctx, shared.BuildCacheKey(keyLock, sessionID), ttl)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return unlock, nil
}
