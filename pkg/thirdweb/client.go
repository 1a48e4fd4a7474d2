package thirdweb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Ratio1/thirdweb_sdk_go/internal/httpx"
)

// Options configures CreateClient. ClientID is the only required field.
type Options struct {
	ClientID string
	// SecretKey is optional and must only be set in server-side processes.
	SecretKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL    string
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// Client is an immutable handle bound to a single client ID. It is safe for
// concurrent use.
type Client struct {
	clientID     string
	hasSecretKey bool
	http         *httpx.Client
	log          logrus.FieldLogger
}

// CreateClient constructs a Client from opts. It never returns a Client with
// an empty client ID; any other value is kept verbatim.
func CreateClient(opts Options) (*Client, error) {
	clientID := opts.ClientID
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	secretKey := strings.TrimSpace(opts.SecretKey)
	headers := make(http.Header)
	headers.Set("x-client-id", clientID)
	if secretKey != "" {
		headers.Set("x-secret-key", secretKey)
	}
	headers.Set("x-sdk-name", sdkName)
	headers.Set("x-sdk-version", Version)
	headers.Set("x-sdk-os", runtime.GOOS)
	headers.Set("x-sdk-platform", sdkPlatform)

	cl, err := httpx.NewClient(baseURL, httpx.WithHTTPClient(opts.HTTPClient), httpx.WithHeaders(headers))
	if err != nil {
		return nil, fmt.Errorf("thirdweb: init HTTP client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Client{
		clientID:     clientID,
		hasSecretKey: secretKey != "",
		http:         cl,
		log:          logger.WithField("client_id", MaskClientID(clientID)),
	}, nil
}

// ClientID returns the identifier the Client was created with.
func (c *Client) ClientID() string {
	return c.clientID
}

// HasSecretKey reports whether requests are authenticated with a secret key.
func (c *Client) HasSecretKey() bool {
	return c.hasSecretKey
}

// BaseURL returns the endpoint requests are resolved against.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// Do issues a single request relative to BaseURL with the client's
// identifying headers attached. body is sent as-is with no Content-Type; use
// DoJSON for JSON payloads. The caller owns the returned body. Non-2xx
// responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	return c.send(ctx, &httpx.Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
}

// DoJSON sends in (when non-nil) as a JSON body and decodes the response into
// out (when non-nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	req := &httpx.Request{
		Method: method,
		Path:   path,
		Header: http.Header{"Accept": []string{"application/json"}},
	}
	if in != nil {
		body, contentType, err := httpx.WithJSONBody(in)
		if err != nil {
			return fmt.Errorf("thirdweb: encode request: %w", err)
		}
		req.Body = body
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	data, err := httpx.ReadAllAndClose(resp.Body)
	if err != nil {
		return fmt.Errorf("thirdweb: read response: %w", err)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("thirdweb: decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, req *httpx.Request) (*http.Response, error) {
	fields := logrus.Fields{"method": req.Method, "path": req.Path}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		var httpErr *httpx.HTTPError
		if errors.As(err, &httpErr) {
			fields["status"] = httpErr.StatusCode
			c.log.WithFields(fields).Warn("thirdweb request rejected")
			return nil, &APIError{
				StatusCode: httpErr.StatusCode,
				Body:       httpErr.Body,
				Header:     httpErr.Header,
				JSON:       httpErr.JSON,
			}
		}
		return nil, fmt.Errorf("thirdweb: %s %s: %w", req.Method, req.Path, err)
	}

	fields["status"] = resp.StatusCode
	c.log.WithFields(fields).Debug("thirdweb request completed")
	return resp, nil
}

// MaskClientID hides all but the last four characters of id, for logging.
func MaskClientID(id string) string {
	if len(id) <= 4 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-4) + id[len(id)-4:]
}
