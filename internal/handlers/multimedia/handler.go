package multimedia

import (
	"multimedia/infras/otel"
	"multimedia/internal/domains/multimedia/model"
	"multimedia/internal/domains/multimedia/service"
	widgetService "multimedia/internal/domains/widget/service"
	"multimedia/shared/constant"
	gDto "multimedia/shared/dto"
	"multimedia/shared/validator"
	"multimedia/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Multimedia
	widget  widgetService.Widget
	otel    otel.Otel
}

func New(service service.Multimedia, widget widgetService.Widget, otel otel.Otel) Handler {
	return Handler{
		service: service,
		widget:  widget,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/entries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Delete("/{id}", handler.DeleteEntry)
	})
}

// GetEntries lists saved multimedia entries.
// @Summary Get all entries
// @Description Retrieve saved entries with optional description filter and pagination.
// @Tags Multimedia
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_dir query string false "ASC or DESC"
// @Param description query string false "Filter by description"
// @Success 200 {object} response.Data[dto.GetEntriesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/entries [get]
func (handler *Handler) GetEntries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSortBy(model.FieldCreatedAt)

	if err := validator.ValidateStruct(&queryParams); err != nil {
		response.WithError(writer, err)

		return
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if description := request.URL.Query().Get(model.FieldDescription); description != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDescription,
			Operator: gDto.FilterOperatorLike,
			Value:    description,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get entries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, entries)
}

// DeleteEntry removes an entry and drops it from the widget collection. The
// stored image is left in the bucket.
// @Summary Delete an entry
// @Tags Multimedia
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/entries/{id} [delete]
func (handler *Handler) DeleteEntry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEntry")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		response.WithError(writer, err)

		return
	}

	// widget first: a failed removal leaves the entry in place for a retry
	if err := handler.widget.Remove(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to remove entry from widget")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete entry")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Entry deleted successfully")
}
