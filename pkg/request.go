package pkg

import (
	"mime"
	"net/http"
)

// IsJSONRequest reports whether the request body is declared as JSON, parameters like charset allowed.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == ContentType.JSON
}
