package dto

import (
	"multimedia/infras/camera"
	"multimedia/internal/domains/register/model"
	"multimedia/shared/constant"
	"multimedia/shared/timezone"
)

type CaptureRequest struct {
	DataURL   string `json:"data_url"  validate:"omitempty,dataurl,maxfilesize=15"`
	Cancelled bool   `json:"cancelled"`
}

// Camera replays what the device camera returned.
func (r *CaptureRequest) Camera() camera.Camera {
	if r.Cancelled {
		return camera.Cancelled()
	}

	return camera.FromDataURL(r.DataURL)
}

type DescribeRequest struct {
	Description string `json:"description" validate:"max=2000"`
}

// FormResponse omits the image bytes; Preview already carries the image.
type FormResponse struct {
	SessionID   string      `json:"session_id"`
	State       model.State `json:"state"`
	Preview     string      `json:"preview,omitempty"`
	FileName    string      `json:"file_name,omitempty"`
	MIMEType    string      `json:"mime_type,omitempty"`
	Size        int         `json:"size"`
	Description string      `json:"description"`
	CanSubmit   bool        `json:"can_submit"`
	CapturedAt  string      `json:"captured_at,omitempty"`
	UpdatedAt   string      `json:"updated_at"`
}

func (r *FormResponse) FromModel(form model.Form) {
	r.SessionID = form.SessionID
	r.State = form.State
	r.Preview = form.Preview
	r.Description = form.Description
	r.CanSubmit = form.CanSubmit()
	r.CapturedAt = timezone.Format(form.CapturedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(form.UpdatedAt, constant.DateFormat)

	if form.Image != nil {
		r.FileName = form.Image.Name
		r.MIMEType = form.Image.MIMEType
		r.Size = form.Image.Size()
	}
}
