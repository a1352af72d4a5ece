package router

import (
	"multimedia/internal/handlers/multimedia"
	"multimedia/internal/handlers/register"
	"multimedia/internal/handlers/widget"
	"multimedia/transport/http/middleware"

	// swagger spec
	_ "multimedia/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Register   register.Handler
	Multimedia multimedia.Handler
	Widget     widget.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.CORS())

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Register.Router(routerGroup)
		r.DomainHandlers.Multimedia.Router(routerGroup)
		r.DomainHandlers.Widget.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
