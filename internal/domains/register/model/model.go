package model

import (
	entryModel "multimedia/internal/domains/multimedia/model"
	notificationModel "multimedia/internal/domains/notification/model"
	"multimedia/shared/dataurl"
	"time"
)

const (
	EntityName = "register"
)

// State drives what the form allows next.
type State string

const (
	StateEmpty      State = "empty"
	StateCaptured   State = "captured"
	StateSubmitting State = "submitting"
)

// Form is the per-session register screen: a captured image awaiting submission plus its description.
type Form struct {
	SessionID   string        `json:"session_id"`
	State       State         `json:"state"`
	Preview     string        `json:"preview,omitempty"`
	Image       *dataurl.File `json:"image,omitempty"`
	Description string        `json:"description"`
	CapturedAt  time.Time     `json:"captured_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func NewForm(sessionID string, now time.Time) Form {
	return Form{
		SessionID: sessionID,
		State:     StateEmpty,
		UpdatedAt: now,
	}
}

// Attach replaces any previous capture.
func (f *Form) Attach(preview string, image dataurl.File, now time.Time) {
	f.Preview = preview
	f.Image = &image
	f.State = StateCaptured
	f.CapturedAt = now
	f.UpdatedAt = now
}

// Reset clears preview, payload and description.
func (f *Form) Reset(now time.Time) {
	f.Preview = ""
	f.Image = nil
	f.Description = ""
	f.State = StateEmpty
	f.CapturedAt = time.Time{}
	f.UpdatedAt = now
}

func (f *Form) HasImage() bool {
	return f.Image != nil
}

func (f *Form) CanSubmit() bool {
	return f.State == StateCaptured && f.HasImage()
}

func (f *Form) Busy() bool {
	return f.State == StateSubmitting
}

// Outcome is the terminal branch a submission ended in.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

// Result is returned for every submission so the caller always learns how it ended.
type Result struct {
	Outcome Outcome                   `json:"outcome"`
	Entry   *entryModel.Entry         `json:"entry,omitempty"`
	Reason  string                    `json:"reason,omitempty"`
	Dialog  *notificationModel.Dialog `json:"dialog,omitempty"`
}

func Succeeded(entry entryModel.Entry) Result {
	dialog := notificationModel.Success()

	return Result{Outcome: OutcomeSuccess, Entry: &entry, Dialog: &dialog}
}

func Failed(err error) Result {
	dialog := notificationModel.Failure(err)

	result := Result{Outcome: OutcomeFailure, Dialog: &dialog}
	if err != nil {
		result.Reason = err.Error()
	}

	return result
}

func Skipped() Result {
	return Result{Outcome: OutcomeSkipped, Reason: "nothing captured"}
}
