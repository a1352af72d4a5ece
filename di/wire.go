//go:build wireinject
// +build wireinject

package di

import (
	"multimedia/config"
	"multimedia/infras/kafka"
	"multimedia/infras/otel"
	"multimedia/infras/postgres"
	"multimedia/infras/redis"
	"multimedia/infras/s3"
	"multimedia/shared/cache"
	"multimedia/shared/lock"
	"multimedia/transport/http"
	"multimedia/transport/http/middleware"
	"multimedia/transport/http/router"

	"github.com/google/wire"

	multimediaRepository "multimedia/internal/domains/multimedia/repository"
	multimediaService "multimedia/internal/domains/multimedia/service"
	notificationService "multimedia/internal/domains/notification/service"
	registerStore "multimedia/internal/domains/register/store"
	widgetService "multimedia/internal/domains/widget/service"

	multimediaHandler "multimedia/internal/handlers/multimedia"
	registerHandler "multimedia/internal/handlers/register"
	widgetHandler "multimedia/internal/handlers/widget"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
)

var multimediaDomain = wire.NewSet(
	multimediaRepository.New,
	multimediaService.New,
)

var widgetDomain = wire.NewSet(
	widgetService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var registerDomain = wire.NewSet(
	registerStore.New,
	registerService.New,
)

var domains = wire.NewSet(
	multimediaDomain,
	widgetDomain,
	notificationDomain,
	registerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	registerHandler.New,
	multimediaHandler.New,
	widgetHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeCapture builds the register workflow without the HTTP transport.
func InitializeCapture() *Capture {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(Capture), "*"),
	)

	return &Capture{}
}

func InitializeWidget() widgetService.Widget {
	wire.Build(
		configurations,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		widgetDomain,
	)

	return nil
}
