package thirdweb

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// DefaultBaseURL is the thirdweb API endpoint used when Options.BaseURL is empty.
	DefaultBaseURL = "https://api.thirdweb.com"

	// Version is reported to the upstream in the x-sdk-version header.
	Version = "0.1.0"

	sdkName     = "thirdweb_sdk_go"
	sdkPlatform = "go"
)

var (
	// ErrClientIDRequired is returned by CreateClient when no client ID is supplied.
	ErrClientIDRequired = errors.New("thirdweb: client ID is required")
)

// APIError represents a non-2xx response returned by a thirdweb service.
type APIError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	// JSON holds the decoded body when the response was application/json.
	JSON any
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("thirdweb: api error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// Unauthorized reports whether the upstream rejected the client credentials.
func (e *APIError) Unauthorized() bool {
	if e == nil {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
