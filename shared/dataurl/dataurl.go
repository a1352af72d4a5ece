// Package dataurl converts between data URLs and binary image files.
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	scheme       = "data:"
	base64Marker = ";base64,"

	// FileExtension is applied to every decoded file, whatever its MIME type.
	FileExtension = ".jpg"
	filePrefix    = "image_"
)

var (
	ErrMalformed = errors.New("malformed data url")

	now = time.Now
)

// File is a decoded binary payload ready for upload.
type File struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Bytes    []byte `json:"bytes"`
}

// Size returns the payload length in bytes.
func (f File) Size() int {
	return len(f.Bytes)
}

// Decode turns "data:<mime>;base64,<payload>" into a File named image_<unix millis>.jpg.
func Decode(dataURL string) (File, error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return File{}, fmt.Errorf("%w: missing payload separator", ErrMalformed)
	}

	mime, err := parseMIME(header)
	if err != nil {
		return File{}, err
	}

	data, err := decodePayload(payload)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return File{
		Name:     FileName(now()),
		MIMEType: mime,
		Bytes:    data,
	}, nil
}

// Encode builds a base64 data URL for the given payload.
func Encode(mime string, data []byte) string {
	return scheme + mime + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// FileName names a capture taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("%s%d%s", filePrefix, t.UnixMilli(), FileExtension)
}

// parseMIME takes the text between the first ':' and the following ';'.
func parseMIME(header string) (string, error) {
	_, rest, found := strings.Cut(header, ":")
	if !found {
		return "", fmt.Errorf("%w: missing ':' in header", ErrMalformed)
	}

	mime, _, found := strings.Cut(rest, ";")
	if !found {
		return "", fmt.Errorf("%w: missing ';' in header", ErrMalformed)
	}

	return mime, nil
}

func decodePayload(payload string) ([]byte, error) {
	payload = strings.Join(strings.Fields(payload), "")

	if strings.HasSuffix(payload, "=") || len(payload)%4 == 0 {
		return base64.StdEncoding.DecodeString(payload) //nolint:wrapcheck
	}

	return base64.RawStdEncoding.DecodeString(payload) //nolint:wrapcheck
}
