package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"multimedia/config"
	"multimedia/infras/camera"
	"multimedia/infras/otel"
	entryModel "multimedia/internal/domains/multimedia/model"
	entryDto "multimedia/internal/domains/multimedia/model/dto"
	entryService "multimedia/internal/domains/multimedia/service"
	notificationService "multimedia/internal/domains/notification/service"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/domains/register/store"
	widgetModel "multimedia/internal/domains/widget/model"
	widgetService "multimedia/internal/domains/widget/service"
	"multimedia/shared/constant"
	"multimedia/shared/dataurl"
	"multimedia/shared/failure"
	"multimedia/shared/saga"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	stepUpload        = "upload image"
	stepSaveEntry     = "save entry"
	stepFetchWidget   = "fetch widget collection"
	stepUpdateWidget  = "update widget collection"
	defaultLockWindow = 2 * time.Minute
)

var (
	errBusy = failure.Conflict("submission in progress")
)

// Register drives the capture-and-submit workflow of one form per session.
type Register interface {
	Open(ctx context.Context) (model.Form, error)
	Get(ctx context.Context, sessionID string) (model.Form, error)
	Capture(ctx context.Context, sessionID string, cam camera.Camera) (model.Form, error)
	Describe(ctx context.Context, sessionID, description string) (model.Form, error)
	Submit(ctx context.Context, sessionID string) (model.Result, error)
	Discard(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	cfg       *config.Config
	store     store.Form
	entries   entryService.Multimedia
	widget    widgetService.Widget
	presenter notificationService.Presenter
	otel      otel.Otel
	options   camera.Options
	now       func() time.Time
}

func New(
	cfg *config.Config,
	store store.Form,
	entries entryService.Multimedia,
	widget widgetService.Widget,
	presenter notificationService.Presenter,
	otel otel.Otel,
) Register {
	return &serviceImpl{
		cfg:       cfg,
		store:     store,
		entries:   entries,
		widget:    widget,
		presenter: presenter,
		otel:      otel,
		options:   camera.OptionsFromConfig(cfg),
		now:       time.Now,
	}
}

func (s *serviceImpl) submitTimeout() time.Duration {
	return time.Duration(s.cfg.Register.SubmitTimeoutSeconds) * time.Second
}

func (s *serviceImpl) lockWindow() time.Duration {
	if timeout := s.submitTimeout(); timeout > 0 {
		return timeout + time.Minute
	}

	return defaultLockWindow
}

// locked loads the form while holding its session lock.
func (s *serviceImpl) locked(ctx context.Context, sessionID string, fn func(form *model.Form) error) error {
	unlock, err := s.store.Lock(ctx, sessionID, s.lockWindow())
	if errors.Is(err, store.ErrLocked) {
		return errBusy
	}

	if err != nil {
		return err //nolint:wrapcheck
	}
	defer unlock()

	form, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return fn(&form)
}

func (s *serviceImpl) Open(ctx context.Context) (form model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Open")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	form = model.NewForm(uuid.NewString(), s.now().UTC())

	if err = s.store.Save(ctx, form); err != nil {
		return form, err //nolint:wrapcheck
	}

	log.Info().Str("session", form.SessionID).Msg("register form opened")

	return form, nil
}

func (s *serviceImpl) Get(ctx context.Context, sessionID string) (form model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.store.Get(ctx, sessionID) //nolint:wrapcheck
}

// Capture asks cam for a photo and attaches it to the form. Cancellation and
// empty results leave the form untouched; so do capture and decode errors,
// which are returned.
func (s *serviceImpl) Capture(ctx context.Context, sessionID string, cam camera.Camera) (form model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Capture")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.locked(ctx, sessionID, func(f *model.Form) error {
		form = *f

		if form.Busy() {
			return errBusy
		}

		photo, err := cam.GetPhoto(ctx, s.options)
		if errors.Is(err, camera.ErrCancelled) {
			log.Info().Str("session", sessionID).Msg("capture cancelled by user")

			return nil
		}

		if err != nil {
			log.Error().Err(err).Str("session", sessionID).Msg("failed to capture photo")

			return fmt.Errorf("failed to capture photo: %w", err)
		}

		if photo.DataURL == constant.Empty {
			log.Info().Str("session", sessionID).Msg("nothing captured")

			return nil
		}

		image, err := dataurl.Decode(photo.DataURL)
		if err != nil {
			log.Error().Err(err).Str("session", sessionID).Msg("failed to decode captured photo")

			return failure.BadRequest(err) //nolint:wrapcheck
		}

		f.Attach(photo.DataURL, image, s.now().UTC())

		if err := s.store.Save(ctx, *f); err != nil {
			return err //nolint:wrapcheck
		}

		form = *f

		return nil
	})

	return form, err
}

func (s *serviceImpl) Describe(ctx context.Context, sessionID, description string) (form model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.locked(ctx, sessionID, func(f *model.Form) error {
		form = *f

		if f.Busy() {
			return errBusy
		}

		f.Description = description
		f.UpdatedAt = s.now().UTC()

		if err := s.store.Save(ctx, *f); err != nil {
			return err //nolint:wrapcheck
		}

		form = *f

		return nil
	})

	return form, err
}

func (s *serviceImpl) Discard(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.locked(ctx, sessionID, func(f *model.Form) error {
		if f.Busy() {
			return errBusy
		}

		return s.store.Delete(ctx, sessionID) //nolint:wrapcheck
	})
}

// Submit uploads the captured image, records the entry and appends it to the
// widget collection. Every terminal branch is reported through the returned
// Result and the presenter; the error return is reserved for a missing or
// busy form and for store failures.
func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (result model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".register.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.locked(ctx, sessionID, func(f *model.Form) error {
		if f.Busy() {
			// a live submission keeps its lock renewed; only a stale one died midway
			if s.now().UTC().Sub(f.UpdatedAt) < s.lockWindow() {
				return errBusy
			}

			log.Warn().Str("session", sessionID).Msg("recovering form left in submitting state")

			f.State = model.StateCaptured
		}

		if !f.CanSubmit() {
			result = model.Skipped()

			return nil
		}

		f.State = model.StateSubmitting
		f.UpdatedAt = s.now().UTC()

		if err := s.store.Save(ctx, *f); err != nil {
			return err //nolint:wrapcheck
		}

		result = s.submit(ctx, *f)

		if result.Outcome == model.OutcomeSuccess {
			f.Reset(s.now().UTC())
		} else {
			f.State = model.StateCaptured
			f.UpdatedAt = s.now().UTC()
		}

		// a form stuck in submitting is recovered by the next Submit
		if err := s.store.Save(context.WithoutCancel(ctx), *f); err != nil {
			log.Error().Err(err).Str("session", sessionID).Msg("failed to save form after submission")
		}

		return nil
	})
	if err != nil {
		return result, err
	}

	scope.SetAttribute("register.outcome", string(result.Outcome))

	if result.Dialog != nil {
		s.presenter.Present(ctx, sessionID, *result.Dialog)
	}

	return result, nil
}

func (s *serviceImpl) submit(ctx context.Context, form model.Form) model.Result {
	if timeout := s.submitTimeout(); timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var (
		upload       entryDto.UploadImageResponse
		entry        entryModel.Entry
		current      widgetModel.Collection
		unlockWidget = func() {}
	)

	// held from fetch to update so appends from other sessions are not lost
	defer func() { unlockWidget() }()

	err := saga.Run(ctx,
		saga.Step{
			Name: stepUpload,
			Action: func(ctx context.Context) (err error) {
				upload, err = s.entries.UploadImage(ctx, entryDto.UploadImageRequest{Image: *form.Image})

				return err //nolint:wrapcheck
			},
			Compensate: func(ctx context.Context) error {
				return s.entries.DeleteImage(ctx, upload.URL) //nolint:wrapcheck
			},
		},
		saga.Step{
			Name: stepSaveEntry,
			Action: func(ctx context.Context) error {
				entry = entryModel.NewEntry(upload.URL, form.Description, s.now())

				return s.entries.Save(ctx, entry) //nolint:wrapcheck
			},
			Compensate: func(ctx context.Context) error {
				return s.entries.Delete(ctx, entry.ID) //nolint:wrapcheck
			},
		},
		saga.Step{
			Name: stepFetchWidget,
			Action: func(ctx context.Context) (err error) {
				unlock, err := s.widget.Lock(ctx)
				if err != nil {
					return err //nolint:wrapcheck
				}

				unlockWidget = unlock
				current, err = s.widget.GetCurrent(ctx)

				return err //nolint:wrapcheck
			},
		},
		saga.Step{
			Name: stepUpdateWidget,
			Action: func(ctx context.Context) error {
				return s.widget.Update(ctx, current.Append(entry)) //nolint:wrapcheck
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Str("session", form.SessionID).Msg("submission failed")

		return model.Failed(err)
	}

	log.Info().Str("session", form.SessionID).Str("entry", entry.ID).Msg("submission completed")

	return model.Succeeded(entry)
}
