package model_test

import (
	"errors"
	"multimedia/internal/domains/notification/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestSuccess(t *testing.T) {
	assert.Equal(t, model.Dialog{
		Header:  "Success",
		Message: "Entry saved successfully",
		Buttons: []string{"OK"},
	}, model.Success())
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "with message", err: errors.New("timeout"), expected: "An error occurred while saving: timeout"},
		{name: "nil", err: nil, expected: "An error occurred while saving: Unknown"},
		{name: "empty message", err: emptyError{}, expected: "An error occurred while saving: Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := model.Failure(tt.err)

			assert.Equal(t, "Error", dialog.Header)
			assert.Equal(t, tt.expected, dialog.Message)
			assert.Equal(t, []string{"OK"}, dialog.Buttons)
		})
	}
}
