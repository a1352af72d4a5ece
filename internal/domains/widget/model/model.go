package model

import (
	entryModel "multimedia/internal/domains/multimedia/model"
)

const (
	EntityName = "widget"

	DefaultCacheKey     = "widget:entries"
	DefaultRefreshTopic = "widget.refresh"
)

// Collection is the ordered list of entries shown on the home-screen widget.
type Collection []entryModel.Entry

// Append returns a new collection with entry at the end. The receiver is not modified.
func (c Collection) Append(entry entryModel.Entry) Collection {
	next := make(Collection, 0, len(c)+1)
	next = append(next, c...)

	return append(next, entry)
}

// Without returns a new collection minus the entry with id, order preserved.
func (c Collection) Without(id string) Collection {
	next := make(Collection, 0, len(c))

	for _, entry := range c {
		if entry.ID != id {
			next = append(next, entry)
		}
	}

	return next
}

// RefreshEvent tells display surfaces to reload the collection.
type RefreshEvent struct {
	Count     int    `json:"count"`
	LastID    string `json:"last_id,omitempty"`
	UpdatedAt string `json:"updated_at"`
}
