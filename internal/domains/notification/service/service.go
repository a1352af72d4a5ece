package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"multimedia/config"
	"multimedia/infras/kafka"
	"multimedia/internal/domains/notification/model"
	"sync"

	"github.com/rs/zerolog/log"
)

// Presenter shows a dialog without waiting for the user to dismiss it.
type Presenter interface {
	Present(ctx context.Context, sessionID string, dialog model.Dialog)
	Flush(ctx context.Context) error
}

type presenterImpl struct {
	cfg      *config.Config
	kafka    kafka.Client
	inflight sync.WaitGroup
}

func New(cfg *config.Config, kafka kafka.Client) Presenter {
	return &presenterImpl{
		cfg:   cfg,
		kafka: kafka,
	}
}

func (p *presenterImpl) topic() string {
	if p.cfg.Kafka.Topics.Notification != "" {
		return p.cfg.Kafka.Topics.Notification
	}

	return model.DefaultTopic
}

// Present logs the dialog and, when Kafka is enabled, publishes it in the background.
func (p *presenterImpl) Present(ctx context.Context, sessionID string, dialog model.Dialog) {
	log.Info().
		Str("session", sessionID).
		Str("header", dialog.Header).
		Str("message", dialog.Message).
		Strs("buttons", dialog.Buttons).
		Msg("presenting dialog")

	if !p.cfg.Kafka.Enable {
		return
	}

	p.inflight.Add(1)

	go func() {
		defer p.inflight.Done()

		c := context.WithoutCancel(ctx)

		event := model.Event{SessionID: sessionID, Dialog: dialog}
		if err := p.kafka.SendMessages(c, p.topic(), kafka.Message{Key: sessionID, Value: event}); err != nil {
			log.Warn().Err(err).Str("session", sessionID).Msg("failed to publish dialog")
		}
	}()
}

// Flush blocks until every dialog handed to Present has been published or ctx is done.
func (p *presenterImpl) Flush(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to flush dialogs: %w", ctx.Err())
	}
}
