package failure_test

import (
	"errors"
	"fmt"
	"multimedia/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "malformed data url",
	}

	if f.Error() != "malformed data url" {
		t.Errorf("expected error message to be 'malformed data url', got %s", f.Error())
	}
}

func TestWrappingConstructors(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(error) error
		input    error
		wantCode int
		wantNil  bool
	}{
		{name: "bad request", fn: failure.BadRequest, input: errors.New("bad"), wantCode: http.StatusBadRequest},
		{name: "bad request nil", fn: failure.BadRequest, input: nil, wantNil: true},
		{name: "internal", fn: failure.InternalError, input: errors.New("db down"), wantCode: http.StatusInternalServerError},
		{name: "internal nil", fn: failure.InternalError, input: nil, wantNil: true},
		{name: "bad gateway", fn: failure.BadGateway, input: errors.New("s3 down"), wantCode: http.StatusBadGateway},
		{name: "bad gateway nil", fn: failure.BadGateway, input: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input)

			if tt.wantNil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, f.Code)
			}

			if f.Message != tt.input.Error() {
				t.Errorf("expected message %q, got %q", tt.input.Error(), f.Message)
			}
		})
	}
}

func TestMessageConstructors(t *testing.T) {
	tests := []struct {
		name     string
		result   error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request from string", result: failure.BadRequestFromString("nothing captured"), wantCode: http.StatusBadRequest, wantMsg: "nothing captured"},
		{name: "not found", result: failure.NotFound("form not found"), wantCode: http.StatusNotFound, wantMsg: "form not found"},
		{name: "conflict", result: failure.Conflict("submission in progress"), wantCode: http.StatusConflict, wantMsg: "submission in progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.wantCode || f.Message != tt.wantMsg {
				t.Errorf("expected %d/%q, got %d/%q", tt.wantCode, tt.wantMsg, f.Code, f.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("capture: %w", failure.Conflict("busy")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("load form: %w", failure.NotFound("form not found"))

	if !failure.IsCode(err, http.StatusNotFound) {
		t.Error("expected wrapped not found to match")
	}

	if failure.IsCode(err, http.StatusConflict) {
		t.Error("expected not found not to match conflict")
	}

	if failure.IsCode(errors.New("plain"), http.StatusNotFound) {
		t.Error("expected plain error not to match")
	}
}
