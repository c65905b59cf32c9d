package base64

import (
	enc "encoding/base64"
	"errors"
	"strings"
)

const dataURIPrefix = "data:"
const base64Marker = ";base64,"

var ErrInvalidDataURI = errors.New("invalid base64 data URI")

// GetContentType extracts the declared content type from a base64 data URI
// such as "data:image/png;base64,...". It returns "" when the input is not a
// data URI.
func GetContentType(file string) string {
	start := len(dataURIPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the raw payload bytes of a base64 data URI.
func Decode(file string) ([]byte, error) {
	marker := strings.Index(file, base64Marker)
	if marker == -1 {
		return nil, ErrInvalidDataURI
	}

	payload := file[marker+len(base64Marker):]

	data, err := enc.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidDataURI
	}

	return data, nil
}

// ExtensionForContentType maps a content type to a file extension for stored
// objects. Unknown types get ".bin".
func ExtensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpg", "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
