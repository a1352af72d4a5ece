package model

import (
	"multimedia/shared/constant"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "multimedia_entries"
	EntityName = "entry"

	FieldID          = "id"
	FieldImageURL    = "image_url"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
)

// Entry is a saved photo. It is immutable once built.
type Entry struct {
	ID          string `db:"id"          json:"id"`
	ImageURL    string `db:"image_url"   json:"imageUrl"`
	Description string `db:"description" json:"description"`
	CreatedAt   string `db:"created_at"  json:"createdAt"`
}

// NewEntry stamps createdAt as an ISO-8601 UTC string with millisecond precision.
func NewEntry(imageURL, description string, createdAt time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		ImageURL:    imageURL,
		Description: description,
		CreatedAt:   createdAt.UTC().Format(constant.ISOTimestampFormat),
	}
}
