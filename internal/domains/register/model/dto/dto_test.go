package dto_test

import (
	"context"
	"multimedia/infras/camera"
	"multimedia/internal/domains/register/model"
	"multimedia/internal/domains/register/model/dto"
	"multimedia/shared/dataurl"
	"multimedia/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureRequest_Camera(t *testing.T) {
	ctx := context.Background()

	photo, err := (&dto.CaptureRequest{DataURL: "data:image/png;base64,AA=="}).Camera().GetPhoto(ctx, camera.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AA==", photo.DataURL)

	_, err = (&dto.CaptureRequest{DataURL: "data:image/png;base64,AA==", Cancelled: true}).Camera().GetPhoto(ctx, camera.DefaultOptions())
	assert.ErrorIs(t, err, camera.ErrCancelled)
}

func TestFormResponse_FromModel(t *testing.T) {
	timezone.SetLocation("UTC")

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	form := model.NewForm("s1", now)

	var empty dto.FormResponse
	empty.FromModel(form)

	assert.Equal(t, model.StateEmpty, empty.State)
	assert.False(t, empty.CanSubmit)
	assert.Empty(t, empty.CapturedAt)
	assert.Equal(t, "2024-05-01T08:00:00Z", empty.UpdatedAt)

	form.Attach("data:image/png;base64,AQID", dataurl.File{Name: "image_1.jpg", MIMEType: "image/png", Bytes: []byte{1, 2, 3}}, now)
	form.Description = "sunset"

	var captured dto.FormResponse
	captured.FromModel(form)

	assert.Equal(t, dto.FormResponse{
		SessionID:   "s1",
		State:       model.StateCaptured,
		Preview:     "data:image/png;base64,AQID",
		FileName:    "image_1.jpg",
		MIMEType:    "image/png",
		Size:        3,
		Description: "sunset",
		CanSubmit:   true,
		CapturedAt:  "2024-05-01T08:00:00Z",
		UpdatedAt:   "2024-05-01T08:00:00Z",
	}, captured)
}
