package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"multimedia/config"
	"multimedia/di"
	"multimedia/infras/camera"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/domains/register/service"
	"multimedia/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const flushTimeout = 10 * time.Second

func main() {
	file := flag.String("file", "", "Image file to submit")
	description := flag.String("description", "", "Description of the image")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if *file == "" {
		log.Fatal().Msg("-file is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeCapture()

	result, err := run(ctx, app.Register, *file, *description)

	// dialogs are published in the background
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	if flushErr := app.Presenter.Flush(flushCtx); flushErr != nil {
		log.Warn().Err(flushErr).Msg("Dialogs not published before exit")
	}
	cancel()

	if err != nil {
		log.Fatal().Err(err).Msg("Capture failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}

	fmt.Println(string(out))

	if result.Outcome == model.OutcomeFailure {
		os.Exit(1)
	}
}

func run(ctx context.Context, register service.Register, file, description string) (model.Result, error) {
	form, err := register.Open(ctx)
	if err != nil {
		return model.Result{}, fmt.Errorf("open form: %w", err)
	}

	form, err = register.Capture(ctx, form.SessionID, camera.NewGallery(file))
	if err != nil {
		return model.Result{}, fmt.Errorf("capture %s: %w", file, err)
	}

	if _, err = register.Describe(ctx, form.SessionID, description); err != nil {
		return model.Result{}, fmt.Errorf("describe: %w", err)
	}

	result, err := register.Submit(ctx, form.SessionID)
	if err != nil {
		return model.Result{}, fmt.Errorf("submit: %w", err)
	}

	if result.Outcome != model.OutcomeFailure {
		if err = register.Discard(ctx, form.SessionID); err != nil {
			log.Warn().Err(err).Str("session", form.SessionID).Msg("failed to discard form")
		}
	}

	return result, nil
}
