package logger_test

import (
	"bytes"
	"errors"
	"multimedia/config"
	"multimedia/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("upload failed"))

	if !bytes.Contains(buf.Bytes(), []byte("upload failed")) {
		t.Error("expected log output to contain 'upload failed'")
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level to be %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestSetOutput(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	t.Run("development keeps console writer", func(t *testing.T) {
		var buf bytes.Buffer
		log.Logger = log.Output(&buf)

		cfg := &config.Config{}
		cfg.Server.Env = "development"

		var jsonBuf bytes.Buffer
		logger.SetOutput(cfg, &jsonBuf)
		log.Info().Msg("hello")

		if jsonBuf.Len() != 0 {
			t.Error("expected development logs not to be redirected")
		}
	})

	t.Run("production writes json with app name", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.App.Name = "multimedia"

		var buf bytes.Buffer
		logger.SetOutput(cfg, &buf)
		log.Info().Msg("hello")

		if !bytes.Contains(buf.Bytes(), []byte(`"app":"multimedia"`)) {
			t.Errorf("expected json output with app field, got %s", buf.String())
		}
	})
}
