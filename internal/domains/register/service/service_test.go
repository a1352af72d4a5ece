package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"multimedia/config"
	"multimedia/infras/camera"
	cameraMocks "multimedia/infras/camera/mocks"
	"multimedia/infras/otel/mocks"
	entryMocks "multimedia/internal/domains/multimedia/mocks"
	entryModel "multimedia/internal/domains/multimedia/model"
	entryDto "multimedia/internal/domains/multimedia/model/dto"
	notificationMocks "multimedia/internal/domains/notification/mocks"
	notificationModel "multimedia/internal/domains/notification/model"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/domains/register/service"
	"multimedia/internal/domains/register/store"
	widgetMocks "multimedia/internal/domains/widget/mocks"
	widgetModel "multimedia/internal/domains/widget/model"
	widgetService "multimedia/internal/domains/widget/service"
	"multimedia/shared/cache"
	"multimedia/shared/constant"
	"multimedia/shared/failure"
	"multimedia/shared/lock"
)

const (
	pngDataURL = "data:image/png;base64,iVBORw0KGgo="
	imageURL   = "https://cdn.example.com/register/image_1.jpg"
)

type fixture struct {
	server    *miniredis.Miniredis
	ctrl      *gomock.Controller
	store     store.Form
	entries   *entryMocks.MockMultimedia
	widget    *widgetMocks.MockWidget
	presenter *notificationMocks.MockPresenter
	svc       service.Register
}

func newFixture(t *testing.T, cfg *config.Config) fixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctrl := gomock.NewController(t)

	f := fixture{
		server:    server,
		ctrl:      ctrl,
		store:     store.New(lock.New(client), cache.NewRedisCache(client, mocks.NewOtel()), cfg, mocks.NewOtel()),
		entries:   entryMocks.NewMockMultimedia(ctrl),
		widget:    widgetMocks.NewMockWidget(ctrl),
		presenter: notificationMocks.NewMockPresenter(ctrl),
	}
	f.svc = service.New(cfg, f.store, f.entries, f.widget, f.presenter, mocks.NewOtel())

	return f
}

// captured opens a form and attaches the PNG data URL with a description.
func (f fixture) captured(t *testing.T, description string) model.Form {
	t.Helper()

	ctx := context.Background()

	form, err := f.svc.Open(ctx)
	require.NoError(t, err)

	_, err = f.svc.Capture(ctx, form.SessionID, camera.FromDataURL(pngDataURL))
	require.NoError(t, err)

	form, err = f.svc.Describe(ctx, form.SessionID, description)
	require.NoError(t, err)

	return form
}

func TestRegisterService_OpenAndGet(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()

	form, err := f.svc.Open(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, form.SessionID)
	assert.Equal(t, model.StateEmpty, form.State)

	got, err := f.svc.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, form.SessionID, got.SessionID)

	_, err = f.svc.Get(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRegisterService_Capture(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()

	form, err := f.svc.Open(ctx)
	require.NoError(t, err)

	form, err = f.svc.Capture(ctx, form.SessionID, camera.FromDataURL(pngDataURL))
	require.NoError(t, err)

	assert.Equal(t, model.StateCaptured, form.State)
	assert.Equal(t, pngDataURL, form.Preview)
	require.NotNil(t, form.Image)
	assert.Equal(t, "image/png", form.Image.MIMEType)
	assert.Len(t, form.Image.Bytes, 8)
	assert.True(t, strings.HasSuffix(form.Image.Name, ".jpg"))

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, form.Image.Bytes, stored.Image.Bytes)
}

func TestRegisterService_CaptureLeavesFormUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		camera   func(ctrl *gomock.Controller) camera.Camera
		wantCode int
	}{
		{
			name:   "cancelled",
			camera: func(*gomock.Controller) camera.Camera { return camera.Cancelled() },
		},
		{
			name:   "empty result",
			camera: func(*gomock.Controller) camera.Camera { return camera.FromDataURL("") },
		},
		{
			name:     "malformed data url",
			camera:   func(*gomock.Controller) camera.Camera { return camera.FromDataURL("image/png,AAAA") },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "capability error",
			camera: func(ctrl *gomock.Controller) camera.Camera {
				cam := cameraMocks.NewMockCamera(ctrl)
				cam.EXPECT().
					GetPhoto(gomock.Any(), camera.DefaultOptions()).
					Return(camera.Photo{}, errors.New("camera busy"))

				return cam
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Camera.AllowEditing = true

			f := newFixture(t, cfg)
			ctx := context.Background()
			before := f.captured(t, "keep me")

			form, err := f.svc.Capture(ctx, before.SessionID, tt.camera(f.ctrl))

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}

			stored, err := f.store.Get(ctx, before.SessionID)
			require.NoError(t, err)

			assert.Equal(t, before.Preview, form.Preview)
			assert.Equal(t, before.Preview, stored.Preview)
			assert.Equal(t, before.Image.Name, stored.Image.Name)
			assert.Equal(t, "keep me", stored.Description)
			assert.Equal(t, model.StateCaptured, stored.State)
		})
	}
}

func TestRegisterService_SubmitWithoutImageIsNoop(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()

	form, err := f.svc.Open(ctx)
	require.NoError(t, err)

	_, err = f.svc.Describe(ctx, form.SessionID, "no photo")
	require.NoError(t, err)

	// no expectations: any upload, save, fetch, update or dialog fails the test
	result, err := f.svc.Submit(ctx, form.SessionID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSkipped, result.Outcome)

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "no photo", stored.Description)
	assert.Equal(t, model.StateEmpty, stored.State)
}

func TestRegisterService_SubmitSuccess(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	existing := widgetModel.Collection{{ID: "a"}, {ID: "b"}}

	var (
		saved   entryModel.Entry
		updated widgetModel.Collection
	)

	gomock.InOrder(
		f.entries.EXPECT().
			UploadImage(gomock.Any(), entryDto.UploadImageRequest{Image: *form.Image}).
			Return(entryDto.UploadImageResponse{URL: imageURL, FileName: form.Image.Name}, nil),
		f.entries.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry entryModel.Entry) error {
				saved = entry

				return nil
			}),
		f.widget.EXPECT().Lock(gomock.Any()).Return(func() {}, nil),
		f.widget.EXPECT().GetCurrent(gomock.Any()).Return(existing, nil),
		f.widget.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries widgetModel.Collection) error {
				updated = entries

				return nil
			}),
		f.presenter.EXPECT().Present(gomock.Any(), form.SessionID, notificationModel.Success()),
	)

	result, err := f.svc.Submit(ctx, form.SessionID)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeSuccess, result.Outcome)
	require.NotNil(t, result.Entry)
	assert.Equal(t, saved, *result.Entry)

	assert.Equal(t, imageURL, saved.ImageURL)
	assert.Equal(t, "sunset", saved.Description)
	_, err = time.Parse(constant.ISOTimestampFormat, saved.CreatedAt)
	assert.NoError(t, err)

	assert.Equal(t, widgetModel.Collection{{ID: "a"}, {ID: "b"}, saved}, updated)
	assert.Len(t, existing, 2)

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateEmpty, stored.State)
	assert.Empty(t, stored.Preview)
	assert.Nil(t, stored.Image)
	assert.Empty(t, stored.Description)
}

func TestRegisterService_SubmitSaveFailure(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	gomock.InOrder(
		f.entries.EXPECT().
			UploadImage(gomock.Any(), gomock.Any()).
			Return(entryDto.UploadImageResponse{URL: imageURL}, nil),
		f.entries.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("database down")),
		f.entries.EXPECT().DeleteImage(gomock.Any(), imageURL).Return(nil),
		f.presenter.EXPECT().
			Present(gomock.Any(), form.SessionID, gomock.Any()).
			Do(func(_ context.Context, _ string, dialog notificationModel.Dialog) {
				assert.Equal(t, "Error", dialog.Header)
				assert.Contains(t, dialog.Message, "database down")
			}),
	)

	result, err := f.svc.Submit(ctx, form.SessionID)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeFailure, result.Outcome)
	assert.Contains(t, result.Reason, "save entry")
	assert.Nil(t, result.Entry)

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateCaptured, stored.State)
	assert.Equal(t, form.Preview, stored.Preview)
	require.NotNil(t, stored.Image)
	assert.Equal(t, "sunset", stored.Description)
}

func TestRegisterService_SubmitUploadFailure(t *testing.T) {
	f := newFixture(t, &config.Config{})
	form := f.captured(t, "")

	gomock.InOrder(
		f.entries.EXPECT().
			UploadImage(gomock.Any(), gomock.Any()).
			Return(entryDto.UploadImageResponse{}, errors.New("network down")),
		f.presenter.EXPECT().Present(gomock.Any(), form.SessionID, gomock.Any()),
	)

	result, err := f.svc.Submit(context.Background(), form.SessionID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailure, result.Outcome)
	assert.Contains(t, result.Dialog.Message, "network down")
}

func TestRegisterService_SubmitWidgetFailureCompensatesInReverse(t *testing.T) {
	f := newFixture(t, &config.Config{})
	form := f.captured(t, "sunset")

	var saved entryModel.Entry

	gomock.InOrder(
		f.entries.EXPECT().
			UploadImage(gomock.Any(), gomock.Any()).
			Return(entryDto.UploadImageResponse{URL: imageURL}, nil),
		f.entries.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry entryModel.Entry) error {
				saved = entry

				return nil
			}),
		f.widget.EXPECT().Lock(gomock.Any()).Return(func() {}, nil),
		f.widget.EXPECT().GetCurrent(gomock.Any()).Return(widgetModel.Collection{}, nil),
		f.widget.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("redis down")),
		f.entries.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) error {
				assert.Equal(t, saved.ID, id)

				return nil
			}),
		f.entries.EXPECT().DeleteImage(gomock.Any(), imageURL).Return(errors.New("denied")),
		f.presenter.EXPECT().Present(gomock.Any(), form.SessionID, gomock.Any()),
	)

	result, err := f.svc.Submit(context.Background(), form.SessionID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailure, result.Outcome)
	assert.Contains(t, result.Reason, "redis down")
	assert.Contains(t, result.Reason, "denied")
}

func TestRegisterService_SubmitWhileLocked(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	unlock, err := f.store.Lock(ctx, form.SessionID, time.Minute)
	require.NoError(t, err)
	defer unlock()

	_, err = f.svc.Submit(ctx, form.SessionID)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	_, err = f.svc.Capture(ctx, form.SessionID, camera.FromDataURL(pngDataURL))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestRegisterService_SubmitRecoversInterruptedSubmission(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	form.State = model.StateSubmitting
	form.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, f.store.Save(ctx, form))

	_, err := f.svc.Describe(ctx, form.SessionID, "changed")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	f.entries.EXPECT().
		UploadImage(gomock.Any(), gomock.Any()).
		Return(entryDto.UploadImageResponse{}, errors.New("network down"))
	f.presenter.EXPECT().Present(gomock.Any(), gomock.Any(), gomock.Any())

	result, err := f.svc.Submit(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailure, result.Outcome)

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateCaptured, stored.State)
}

func TestRegisterService_SubmitReleasesWidgetLockOnFetchFailure(t *testing.T) {
	f := newFixture(t, &config.Config{})
	form := f.captured(t, "sunset")

	released := false

	gomock.InOrder(
		f.entries.EXPECT().
			UploadImage(gomock.Any(), gomock.Any()).
			Return(entryDto.UploadImageResponse{URL: imageURL}, nil),
		f.entries.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		f.widget.EXPECT().Lock(gomock.Any()).Return(func() { released = true }, nil),
		f.widget.EXPECT().GetCurrent(gomock.Any()).Return(nil, errors.New("redis down")),
		f.entries.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		f.entries.EXPECT().DeleteImage(gomock.Any(), imageURL).Return(nil),
		f.presenter.EXPECT().Present(gomock.Any(), form.SessionID, gomock.Any()),
	)

	result, err := f.svc.Submit(context.Background(), form.SessionID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailure, result.Outcome)
	assert.True(t, released)
}

func TestRegisterService_ConcurrentSubmissionsKeepEveryWidgetEntry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	ctrl := gomock.NewController(t)
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())
	locker := lock.New(client)

	entries := entryMocks.NewMockMultimedia(ctrl)
	presenter := notificationMocks.NewMockPresenter(ctrl)
	widget := widgetService.New(cfg, redisCache, locker, nil, mocks.NewOtel())
	svc := service.New(cfg, store.New(locker, redisCache, cfg, mocks.NewOtel()), entries, widget, presenter, mocks.NewOtel())

	ctx := context.Background()
	sessions := make([]string, 2)

	for i := range sessions {
		form, err := svc.Open(ctx)
		require.NoError(t, err)

		_, err = svc.Capture(ctx, form.SessionID, camera.FromDataURL(pngDataURL))
		require.NoError(t, err)

		sessions[i] = form.SessionID
	}

	// both uploads are in flight before either submission moves on
	var arrived sync.WaitGroup
	arrived.Add(len(sessions))

	entries.EXPECT().
		UploadImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, entryDto.UploadImageRequest) (entryDto.UploadImageResponse, error) {
			arrived.Done()
			arrived.Wait()

			return entryDto.UploadImageResponse{URL: imageURL}, nil
		}).
		Times(len(sessions))
	entries.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(len(sessions))
	presenter.EXPECT().Present(gomock.Any(), gomock.Any(), notificationModel.Success()).Times(len(sessions))

	results := make([]model.Result, len(sessions))
	errs := make([]error, len(sessions))

	var wg sync.WaitGroup
	for i, sessionID := range sessions {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = svc.Submit(ctx, sessionID)
		}()
	}
	wg.Wait()

	ids := make([]string, 0, len(sessions))
	for i := range sessions {
		require.NoError(t, errs[i])
		require.Equal(t, model.OutcomeSuccess, results[i].Outcome)
		ids = append(ids, results[i].Entry.ID)
	}

	current, err := widget.GetCurrent(ctx)
	require.NoError(t, err)
	require.Len(t, current, len(sessions))
	assert.ElementsMatch(t, ids, []string{current[0].ID, current[1].ID})
}

func TestRegisterService_SubmitAfterLockExpiryDoesNotDuplicate(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	uploading := make(chan struct{})
	release := make(chan struct{})

	f.entries.EXPECT().
		UploadImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, entryDto.UploadImageRequest) (entryDto.UploadImageResponse, error) {
			close(uploading)
			<-release

			return entryDto.UploadImageResponse{URL: imageURL}, nil
		})
	f.entries.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.widget.EXPECT().Lock(gomock.Any()).Return(func() {}, nil)
	f.widget.EXPECT().GetCurrent(gomock.Any()).Return(widgetModel.Collection{}, nil)
	f.widget.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.presenter.EXPECT().Present(gomock.Any(), form.SessionID, notificationModel.Success())

	done := make(chan model.Result, 1)

	go func() {
		result, err := f.svc.Submit(ctx, form.SessionID)
		assert.NoError(t, err)

		done <- result
	}()

	<-uploading

	// the session lock key lapses while the first submission is still uploading
	f.server.FastForward(3 * time.Minute)

	_, err := f.svc.Submit(ctx, form.SessionID)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	close(release)

	result := <-done
	assert.Equal(t, model.OutcomeSuccess, result.Outcome)

	stored, err := f.store.Get(ctx, form.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateEmpty, stored.State)
}

func TestRegisterService_SubmitTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Register.SubmitTimeoutSeconds = 1

	f := newFixture(t, cfg)
	form := f.captured(t, "")

	f.entries.EXPECT().
		UploadImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ entryDto.UploadImageRequest) (entryDto.UploadImageResponse, error) {
			<-ctx.Done()

			return entryDto.UploadImageResponse{}, ctx.Err()
		})
	f.presenter.EXPECT().Present(gomock.Any(), gomock.Any(), gomock.Any())

	result, err := f.svc.Submit(context.Background(), form.SessionID)

	require.NoError(t, err)
	assert.Equal(t, model.OutcomeFailure, result.Outcome)
	assert.Contains(t, result.Reason, context.DeadlineExceeded.Error())
}

func TestRegisterService_Discard(t *testing.T) {
	f := newFixture(t, &config.Config{})
	ctx := context.Background()
	form := f.captured(t, "sunset")

	require.NoError(t, f.svc.Discard(ctx, form.SessionID))

	_, err := f.svc.Get(ctx, form.SessionID)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	err = f.svc.Discard(ctx, form.SessionID)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))
}
