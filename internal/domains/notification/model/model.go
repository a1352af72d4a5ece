package model

const (
	EntityName = "notification"

	DefaultTopic = "register.notification"

	ButtonOK = "OK"

	HeaderSuccess  = "Success"
	HeaderError    = "Error"
	MessageSuccess = "Entry saved successfully"
	MessageFailure = "An error occurred while saving: "
	UnknownReason  = "Unknown"
)

// Dialog is a modal message shown to the user.
type Dialog struct {
	Header  string   `json:"header"`
	Message string   `json:"message"`
	Buttons []string `json:"buttons"`
}

func Success() Dialog {
	return Dialog{
		Header:  HeaderSuccess,
		Message: MessageSuccess,
		Buttons: []string{ButtonOK},
	}
}

// Failure describes err, or "Unknown" when err is nil or has no message.
func Failure(err error) Dialog {
	reason := UnknownReason
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}

	return Dialog{
		Header:  HeaderError,
		Message: MessageFailure + reason,
		Buttons: []string{ButtonOK},
	}
}

// Event is the payload published for every presented dialog.
type Event struct {
	SessionID string `json:"session_id,omitempty"`
	Dialog    Dialog `json:"dialog"`
}
