package widget

import (
	"multimedia/infras/otel"
	"multimedia/internal/domains/multimedia/model/dto"
	"multimedia/internal/domains/widget/service"
	"multimedia/shared/constant"
	"multimedia/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Widget
	otel    otel.Otel
}

func New(service service.Widget, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/widget/entries", handler.GetEntries)
}

// GetEntries returns the collection shown on the home-screen widget, oldest first.
// @Summary Get widget entries
// @Tags Widget
// @Produce json
// @Success 200 {object} response.Data[[]dto.EntryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/widget/entries [get]
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".widget.GetEntries")
	defer scope.End()

	collection, err := handler.service.GetCurrent(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get widget entries")

		response.WithError(w, err)

		return
	}

	res := make([]dto.EntryResponse, len(collection))
	for i, entry := range collection {
		res[i].FromModel(entry)
	}

	scope.SetAttribute("widget.count", len(res))

	response.WithJSON(w, http.StatusOK, res)
}
