package register

import (
	"multimedia/infras/otel"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/domains/register/model/dto"
	"multimedia/internal/domains/register/service"
	"multimedia/shared/constant"
	"multimedia/shared/validator"
	"multimedia/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Register
	otel    otel.Otel
}

func New(service service.Register, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/register/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenForm)
		routerGroup.Get("/{id}", handler.GetForm)
		routerGroup.Delete("/{id}", handler.DiscardForm)
		routerGroup.Post("/{id}/capture", handler.Capture)
		routerGroup.Put("/{id}/description", handler.Describe)
		routerGroup.Post("/{id}/submit", handler.Submit)
	})
}

func (handler *Handler) sessionID(request *http.Request) (string, error) {
	id := chi.URLParam(request, constant.RequestParamID)

	return id, validator.ValidateVar(id, "required,uuid")
}

func (handler *Handler) respondForm(writer http.ResponseWriter, code int, form model.Form) {
	res := dto.FormResponse{}
	res.FromModel(form)

	response.WithJSON(writer, code, res)
}

// OpenForm starts a new register session.
// @Summary Open a register form
// @Description Create an empty register form and return its session.
// @Tags Register
// @Produce json
// @Success 201 {object} response.Data[dto.FormResponse]
// @Failure 500 {object} response.Error
// @Router /v1/register/sessions [post]
func (handler *Handler) OpenForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenForm")
	defer scope.End()

	form, err := handler.service.Open(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open register form")

		response.WithError(writer, err)

		return
	}

	handler.respondForm(writer, http.StatusCreated, form)
}

// GetForm returns the current state of a register form.
// @Summary Get a register form
// @Tags Register
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/register/sessions/{id} [get]
func (handler *Handler) GetForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	id, err := handler.sessionID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	form, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respondForm(writer, http.StatusOK, form)
}

// DiscardForm drops a register form and anything captured in it.
// @Summary Discard a register form
// @Tags Register
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/register/sessions/{id} [delete]
func (handler *Handler) DiscardForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardForm")
	defer scope.End()

	id, err := handler.sessionID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Discard(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session", id).Msg("failed to discard register form")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Form discarded")
}

// Capture attaches the photo returned by the device camera.
// @Summary Capture a photo
// @Description Attach a data URL produced by the camera. An empty data_url or cancelled=true leaves the form unchanged.
// @Tags Register
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CaptureRequest true "Capture Request"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/register/sessions/{id}/capture [post]
func (handler *Handler) Capture(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Capture")
	defer scope.End()

	id, err := handler.sessionID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.CaptureRequest{}

	if err = validator.Validate(http.MaxBytesReader(writer, request.Body, constant.RequestMaxBodyBytes), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate capture request")

		response.WithError(writer, err)

		return
	}

	form, err := handler.service.Capture(ctx, id, req.Camera())
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respondForm(writer, http.StatusOK, form)
}

// Describe sets the description text. It may be empty.
// @Summary Describe the captured photo
// @Tags Register
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.DescribeRequest true "Describe Request"
// @Success 200 {object} response.Data[dto.FormResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/register/sessions/{id}/description [put]
func (handler *Handler) Describe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Describe")
	defer scope.End()

	id, err := handler.sessionID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.DescribeRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	form, err := handler.service.Describe(ctx, id, req.Description)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respondForm(writer, http.StatusOK, form)
}

// Submit uploads the photo, saves the entry and refreshes the widget.
// @Summary Submit the register form
// @Description Runs the submission. The result carries the outcome and the dialog to show. A failed submission is undone and answered with 502.
// @Tags Register
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[model.Result]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Data[model.Result]
// @Router /v1/register/sessions/{id}/submit [post]
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	id, err := handler.sessionID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session", id).Msg("failed to submit register form")

		response.WithError(writer, err)

		return
	}

	code := http.StatusOK
	if result.Outcome == model.OutcomeFailure {
		code = http.StatusBadGateway
	}

	scope.AddEvent("Submission finished with outcome " + string(result.Outcome))

	response.WithJSON(writer, code, result)
}
