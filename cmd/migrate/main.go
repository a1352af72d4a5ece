package main

import (
	"errors"
	"multimedia/config"
	"multimedia/helper"
	"multimedia/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction is required: up, down, drop or step-up")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		if errors.Is(err, helper.ErrUnknownAction) {
			log.Fatal().Err(err).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
		}

		log.Fatal().Err(err).Msg("Migration failed")
	}
}
