package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"multimedia/config"
	"multimedia/infras/kafka"
	"multimedia/infras/otel"
	"multimedia/internal/domains/widget/model"
	"multimedia/shared"
	"multimedia/shared/cache"
	"multimedia/shared/constant"
	"multimedia/shared/lock"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	keyLockSuffix = "lock"
	lockTTL       = 30 * time.Second
)

// Widget reads and replaces the widget collection as a whole.
type Widget interface {
	GetCurrent(ctx context.Context) (model.Collection, error)
	Update(ctx context.Context, entries model.Collection) error
	Watch(ctx context.Context, handler func(event model.RefreshEvent))
	Lock(ctx context.Context) (unlock func(), err error)
	Remove(ctx context.Context, entryID string) error
}

type serviceImpl struct {
	cfg    *config.Config
	cache  cache.RedisCache
	locker lock.Locker
	kafka  kafka.Client
	otel   otel.Otel
	now    func() time.Time
}

func New(cfg *config.Config, cache cache.RedisCache, locker lock.Locker, kafka kafka.Client, otel otel.Otel) Widget {
	return &serviceImpl{
		cfg:    cfg,
		cache:  cache,
		locker: locker,
		kafka:  kafka,
		otel:   otel,
		now:    time.Now,
	}
}

func (s *serviceImpl) key() string {
	if s.cfg.Widget.CacheKey != "" {
		return s.cfg.Widget.CacheKey
	}

	return model.DefaultCacheKey
}

func (s *serviceImpl) lockKey() string {
	return shared.BuildCacheKey(s.key(), keyLockSuffix)
}

func (s *serviceImpl) topic() string {
	if s.cfg.Kafka.Topics.WidgetRefresh != "" {
		return s.cfg.Kafka.Topics.WidgetRefresh
	}

	return model.DefaultRefreshTopic
}

// GetCurrent returns the stored collection. A collection that was never written is empty.
func (s *serviceImpl) GetCurrent(ctx context.Context) (entries model.Collection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".widget.GetCurrent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, s.key(), &entries)
	if cache.IsMiss(err) {
		return model.Collection{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", s.key()).Msg("failed to read widget collection")

		return nil, fmt.Errorf("failed to read widget collection: %w", err)
	}

	if entries == nil {
		entries = model.Collection{}
	}

	return entries, nil
}

// Update replaces the collection and announces the change when Kafka is enabled.
func (s *serviceImpl) Update(ctx context.Context, entries model.Collection) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".widget.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if entries == nil {
		entries = model.Collection{}
	}

	scope.SetAttribute("widget.count", len(entries))

	if err = s.cache.Save(ctx, s.key(), entries, cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to write widget collection: %w", err)
	}

	if s.cfg.Kafka.Enable {
		s.publish(ctx, entries)
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, entries model.Collection) {
	event := model.RefreshEvent{
		Count:     len(entries),
		UpdatedAt: s.now().UTC().Format(constant.ISOTimestampFormat),
	}

	if len(entries) > 0 {
		event.LastID = entries[len(entries)-1].ID
	}

	err := s.kafka.SendMessages(ctx, s.topic(), kafka.Message{Key: model.EntityName, Value: event})
	if err != nil {
		log.Warn().Err(err).Str("topic", s.topic()).Msg("failed to publish widget refresh")
	}
}

// Watch blocks until ctx is done, calling handler for every refresh event.
func (s *serviceImpl) Watch(ctx context.Context, handler func(event model.RefreshEvent)) {
	s.kafka.Consume(ctx, s.cfg.Kafka.ConsumerGroup, s.topic(), func(message kafkaGo.Message) {
		event, err := kafka.Decode[model.RefreshEvent](message)
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed widget refresh event")

			return
		}

		handler(event)
	})
}

// Lock waits for exclusive use of the collection. Writers hold it across
// GetCurrent and Update so concurrent appends are not lost.
func (s *serviceImpl) Lock(ctx context.Context) (unlock func(), err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".widget.Lock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err = s.locker.Wait(ctx, s.lockKey(), lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock widget collection: %w", err)
	}

	return unlock, nil
}

// Remove drops the entry with entryID from the collection. A missing entry is not an error.
func (s *serviceImpl) Remove(ctx context.Context, entryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".widget.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	current, err := s.GetCurrent(ctx)
	if err != nil {
		return err
	}

	next := current.Without(entryID)
	if len(next) == len(current) {
		return nil
	}

	return s.Update(ctx, next)
}
