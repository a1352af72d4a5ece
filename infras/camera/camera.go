// Package camera abstracts the device capability that produces a photo.
//
// A photo arrives as a data URL. On a phone the camera plugin produces it and
// the client forwards it; from the command line it is read from the gallery,
// i.e. an image file on disk.
package camera

//go:generate go run go.uber.org/mock/mockgen -source=./camera.go -destination=./mocks/camera_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"multimedia/config"
	"multimedia/shared/dataurl"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

type ResultType string

const (
	ResultTypeDataURL ResultType = "dataUrl"
	ResultTypeBase64  ResultType = "base64"
	ResultTypeURI     ResultType = "uri"
)

type Source string

const (
	SourcePrompt Source = "PROMPT"
	SourceCamera Source = "CAMERA"
	SourcePhotos Source = "PHOTOS"
)

const (
	DefaultQuality = 90
)

var (
	ErrCancelled   = errors.New("user cancelled photos app")
	ErrUnavailable = errors.New("camera source not available")
)

type Options struct {
	Quality      int        `json:"quality"`
	AllowEditing bool       `json:"allow_editing"`
	ResultType   ResultType `json:"result_type"`
	Source       Source     `json:"source"`
}

// DefaultOptions asks for an editable data URL at quality 90, letting the user pick camera or gallery.
func DefaultOptions() Options {
	return Options{
		Quality:      DefaultQuality,
		AllowEditing: true,
		ResultType:   ResultTypeDataURL,
		Source:       SourcePrompt,
	}
}

// OptionsFromConfig overlays configured values on DefaultOptions.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()

	if cfg.Camera.Quality > 0 && cfg.Camera.Quality <= 100 {
		opts.Quality = cfg.Camera.Quality
	}

	opts.AllowEditing = cfg.Camera.AllowEditing

	switch Source(cfg.Camera.Source) {
	case SourceCamera, SourcePhotos, SourcePrompt:
		opts.Source = Source(cfg.Camera.Source)
	}

	return opts
}

// Photo is what the capability hands back. DataURL is empty when nothing was captured.
type Photo struct {
	DataURL string `json:"data_url"`
}

type Camera interface {
	GetPhoto(ctx context.Context, options Options) (Photo, error)
}

type staticCamera struct {
	photo Photo
	err   error
}

func (c staticCamera) GetPhoto(ctx context.Context, _ Options) (Photo, error) {
	if err := ctx.Err(); err != nil {
		return Photo{}, err //nolint:wrapcheck
	}

	return c.photo, c.err
}

// FromDataURL wraps a photo the device already took.
func FromDataURL(dataURL string) Camera {
	return staticCamera{photo: Photo{DataURL: dataURL}}
}

// Cancelled reports that the user dismissed the capture prompt.
func Cancelled() Camera {
	return staticCamera{err: ErrCancelled}
}

type galleryCamera struct {
	path string
}

// NewGallery picks the image stored at path.
func NewGallery(path string) Camera {
	return galleryCamera{path: path}
}

func (c galleryCamera) GetPhoto(ctx context.Context, options Options) (Photo, error) {
	if err := ctx.Err(); err != nil {
		return Photo{}, err //nolint:wrapcheck
	}

	if options.Source == SourceCamera {
		return Photo{}, fmt.Errorf("%w: %s", ErrUnavailable, options.Source)
	}

	if options.ResultType != ResultTypeDataURL {
		return Photo{}, fmt.Errorf("%w: result type %s", ErrUnavailable, options.ResultType)
	}

	if c.path == "" {
		return Photo{}, ErrCancelled
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return Photo{}, fmt.Errorf("failed to read gallery image: %w", err)
	}

	if len(data) == 0 {
		return Photo{}, nil
	}

	return Photo{DataURL: dataurl.Encode(mimetype.Detect(data).String(), data)}, nil
}
