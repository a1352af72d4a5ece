package register_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"multimedia/infras/camera"
	"multimedia/infras/otel/mocks"
	entryModel "multimedia/internal/domains/multimedia/model"
	notificationModel "multimedia/internal/domains/notification/model"
	registerMocks "multimedia/internal/domains/register/mocks"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/handlers/register"
	"multimedia/shared/failure"
)

const pngDataURL = "data:image/png;base64,iVBORw0KGgo="

type body struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T) (*registerMocks.MockRegister, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := registerMocks.NewMockRegister(ctrl)

	handler := register.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func do(t *testing.T, h http.Handler, method, path, payload string) (*httptest.ResponseRecorder, body) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	res := body{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return rec, res
}

func TestOpenForm(t *testing.T) {
	svc, h := setup(t)
	id := uuid.NewString()

	svc.EXPECT().Open(gomock.Any()).Return(model.NewForm(id, time.Now()), nil)

	rec, res := do(t, h, http.MethodPost, "/register/sessions", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(res.Data), `"session_id":"`+id+`"`)
	assert.Contains(t, string(res.Data), `"state":"empty"`)
}

func TestGetForm(t *testing.T) {
	t.Run("rejects a malformed session id", func(t *testing.T) {
		_, h := setup(t)

		rec, res := do(t, h, http.MethodGet, "/register/sessions/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Get(gomock.Any(), id).Return(model.Form{}, failure.NotFound("form not found"))

		rec, res := do(t, h, http.MethodGet, "/register/sessions/"+id, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "form not found", res.Error)
	})
}

func TestCapture(t *testing.T) {
	t.Run("replays the data url through the camera", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Capture(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sessionID string, cam camera.Camera) (model.Form, error) {
				photo, err := cam.GetPhoto(ctx, camera.DefaultOptions())
				require.NoError(t, err)
				assert.Equal(t, pngDataURL, photo.DataURL)

				return model.NewForm(sessionID, time.Now()), nil
			})

		rec, _ := do(t, h, http.MethodPost, "/register/sessions/"+id+"/capture", `{"data_url":"`+pngDataURL+`"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cancelled capture", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Capture(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sessionID string, cam camera.Camera) (model.Form, error) {
				_, err := cam.GetPhoto(ctx, camera.DefaultOptions())
				assert.ErrorIs(t, err, camera.ErrCancelled)

				return model.NewForm(sessionID, time.Now()), nil
			})

		rec, _ := do(t, h, http.MethodPost, "/register/sessions/"+id+"/capture", `{"cancelled":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a body that is not a data url", func(t *testing.T) {
		_, h := setup(t)

		rec, _ := do(t, h, http.MethodPost, "/register/sessions/"+uuid.NewString()+"/capture", `{"data_url":"hello"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("busy form", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Capture(gomock.Any(), id, gomock.Any()).Return(model.Form{}, failure.Conflict("submission in progress"))

		rec, res := do(t, h, http.MethodPost, "/register/sessions/"+id+"/capture", `{"data_url":"`+pngDataURL+`"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "submission in progress", res.Error)
	})
}

func TestDescribe(t *testing.T) {
	svc, h := setup(t)
	id := uuid.NewString()

	form := model.NewForm(id, time.Now())
	form.Description = "sunset"

	svc.EXPECT().Describe(gomock.Any(), id, "sunset").Return(form, nil)

	rec, res := do(t, h, http.MethodPut, "/register/sessions/"+id+"/description", `{"description":"sunset"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(res.Data), `"description":"sunset"`)
}

func TestSubmit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()
		entry := entryModel.NewEntry("https://cdn.example.com/entry/image_1.jpg", "", time.Now())

		svc.EXPECT().Submit(gomock.Any(), id).Return(model.Succeeded(entry), nil)

		rec, res := do(t, h, http.MethodPost, "/register/sessions/"+id+"/submit", "")

		result := model.Result{}
		require.NoError(t, json.Unmarshal(res.Data, &result))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.OutcomeSuccess, result.Outcome)
		require.NotNil(t, result.Dialog)
		assert.Equal(t, notificationModel.HeaderSuccess, result.Dialog.Header)
	})

	t.Run("failed submission answers with the dialog", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Submit(gomock.Any(), id).Return(model.Failed(errors.New("bucket unavailable")), nil)

		rec, res := do(t, h, http.MethodPost, "/register/sessions/"+id+"/submit", "")

		result := model.Result{}
		require.NoError(t, json.Unmarshal(res.Data, &result))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, model.OutcomeFailure, result.Outcome)
		require.NotNil(t, result.Dialog)
		assert.Equal(t, notificationModel.MessageFailure+"bucket unavailable", result.Dialog.Message)
	})

	t.Run("nothing captured", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Submit(gomock.Any(), id).Return(model.Skipped(), nil)

		rec, res := do(t, h, http.MethodPost, "/register/sessions/"+id+"/submit", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(res.Data), `"outcome":"skipped"`)
	})

	t.Run("submission in progress", func(t *testing.T) {
		svc, h := setup(t)
		id := uuid.NewString()

		svc.EXPECT().Submit(gomock.Any(), id).Return(model.Result{}, failure.Conflict("submission in progress"))

		rec, _ := do(t, h, http.MethodPost, "/register/sessions/"+id+"/submit", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDiscardForm(t *testing.T) {
	svc, h := setup(t)
	id := uuid.NewString()

	svc.EXPECT().Discard(gomock.Any(), id).Return(nil)

	rec, _ := do(t, h, http.MethodDelete, "/register/sessions/"+id, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
