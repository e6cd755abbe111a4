package base64

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid base64 data URI")

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a data URI into its content type and decoded payload.
func Decode(file string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(file, "data:") {
		return "", nil, ErrInvalidDataURI
	}

	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURI
	}

	marker := ";base64,"
	idx := strings.Index(file, marker)

	data, err = base64.StdEncoding.DecodeString(file[idx+len(marker):])
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}

	return contentType, data, nil
}

// Extension maps a content type to the object name suffix used for uploads.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "bin"
	}
}
