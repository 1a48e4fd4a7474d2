package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// HTTPError carries a rejected response. JSON is set only when the body was
// declared and parsed as application/json.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	JSON       any
}

func newHTTPError(resp *http.Response) error {
	defer closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpx: status %d, read body: %w", resp.StatusCode, err)
	}

	e := &HTTPError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header.Clone(),
	}
	if len(body) > 0 && isJSON(resp.Header.Get("Content-Type")) {
		var payload any
		if json.Unmarshal(body, &payload) == nil {
			e.JSON = payload
		}
	}
	return e
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("httpx: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
