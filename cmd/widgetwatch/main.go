package main

import (
	"context"
	"multimedia/config"
	"multimedia/di"
	"multimedia/internal/domains/widget/model"
	"multimedia/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled; nothing to watch")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	widget := di.InitializeWidget()

	log.Info().Msg("Watching widget refresh events.")

	widget.Watch(ctx, func(event model.RefreshEvent) {
		entries, err := widget.GetCurrent(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to reload widget collection")

			return
		}

		log.Info().
			Int("count", len(entries)).
			Str("last_id", event.LastID).
			Str("updated_at", event.UpdatedAt).
			Msg("Widget collection reloaded")
	})
}
