package s3_test

import (
	"multimedia/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		key      string
		expected string
	}{
		{name: "plain", domain: "https://cdn.example.com", key: "multimedia/image_1.jpg", expected: "https://cdn.example.com/multimedia/image_1.jpg"},
		{name: "trailing slash", domain: "https://cdn.example.com/", key: "multimedia/image_1.jpg", expected: "https://cdn.example.com/multimedia/image_1.jpg"},
		{name: "leading slash key", domain: "https://cdn.example.com", key: "/image_1.jpg", expected: "https://cdn.example.com/image_1.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.PublicURL(tt.domain, tt.key))
		})
	}
}

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		url      string
		expected string
	}{
		{name: "inside domain", domain: "https://cdn.example.com", url: "https://cdn.example.com/multimedia/image_1.jpg", expected: "multimedia/image_1.jpg"},
		{name: "outside domain", domain: "https://cdn.example.com", url: "https://other.example.com/image_1.jpg", expected: ""},
		{name: "empty domain", domain: "", url: "https://cdn.example.com/image_1.jpg", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectKeyFromURL(tt.domain, tt.url))
		})
	}

	key := "multimedia/image_42.jpg"
	assert.Equal(t, key, s3.ObjectKeyFromURL("https://cdn.example.com", s3.PublicURL("https://cdn.example.com", key)))
}
