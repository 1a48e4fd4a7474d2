package thirdweb_sdk_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ratio1/thirdweb_sdk_go/pkg/thirdweb_sdk"
)

func TestNewFromEnvClientID(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "abc123")

	client, err := thirdweb_sdk.NewFromEnv()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "abc123", client.ClientID())
	assert.False(t, client.HasSecretKey())
}

func TestNewFromEnvUnset(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "")
	os.Unsetenv("NEXT_PUBLIC_THIRD_CLIENT_ID")

	client, err := thirdweb_sdk.NewFromEnv()
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.Is(err, thirdweb_sdk.ErrMissingConfiguration))
	assert.Contains(t, err.Error(), "no client ID provided")
	assert.Contains(t, err.Error(), "NEXT_PUBLIC_THIRD_CLIENT_ID")
}

func TestNewFromEnvEmpty(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "")

	client, err := thirdweb_sdk.NewFromEnv()
	require.ErrorIs(t, err, thirdweb_sdk.ErrMissingConfiguration)
	assert.Nil(t, client)
}

func TestNewFromEnvKeepsClientIDVerbatim(t *testing.T) {
	for _, id := range []string{"   ", " abc123 ", "\tabc123"} {
		client, err := thirdweb_sdk.NewFromEnv(thirdweb_sdk.WithEnvironment(map[string]string{
			"NEXT_PUBLIC_THIRD_CLIENT_ID": id,
		}))
		require.NoError(t, err, "%q", id)
		assert.Equal(t, id, client.ClientID())

		cfg, err := thirdweb_sdk.LoadConfig(thirdweb_sdk.WithEnvironment(map[string]string{
			"NEXT_PUBLIC_THIRD_CLIENT_ID": id,
		}))
		require.NoError(t, err, "%q", id)
		assert.Equal(t, id, cfg.ClientID)
	}
}

func TestNewFromEnvInjectedEnvironment(t *testing.T) {
	for _, id := range []string{"a", "abc123", "0123456789abcdef0123456789abcdef", "id-with-dash_and_underscore"} {
		client, err := thirdweb_sdk.NewFromEnv(thirdweb_sdk.WithEnvironment(map[string]string{
			"NEXT_PUBLIC_THIRD_CLIENT_ID": id,
		}))
		require.NoError(t, err, id)
		assert.Equal(t, id, client.ClientID())
	}

	_, err := thirdweb_sdk.NewFromEnv(thirdweb_sdk.WithEnvironment(map[string]string{}))
	require.ErrorIs(t, err, thirdweb_sdk.ErrMissingConfiguration)
}

func TestNewFromEnvRepeatable(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "abc123")
	t.Setenv("THIRDWEB_API_URL", "https://example.test")

	first, err := thirdweb_sdk.NewFromEnv()
	require.NoError(t, err)
	second, err := thirdweb_sdk.NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, first.ClientID(), second.ClientID())
	assert.Equal(t, first.BaseURL(), second.BaseURL())
	assert.Equal(t, first.HasSecretKey(), second.HasSecretKey())
}

func TestNewFromEnvOptionalVariables(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "abc123")
	t.Setenv("THIRDWEB_SECRET_KEY", "s3cr3t")
	t.Setenv("THIRDWEB_API_URL", srv.URL)

	client, err := thirdweb_sdk.NewFromEnv(thirdweb_sdk.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	assert.True(t, client.HasSecretKey())

	require.NoError(t, client.DoJSON(context.Background(), http.MethodGet, "/v1/ping", nil, nil))
	assert.Equal(t, "abc123", got.Get("x-client-id"))
	assert.Equal(t, "s3cr3t", got.Get("x-secret-key"))
}

func TestNewFromEnvInvalidURL(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "abc123")
	t.Setenv("THIRDWEB_API_URL", "://not-a-url")

	client, err := thirdweb_sdk.NewFromEnv()
	require.Error(t, err)
	assert.Nil(t, client)
	assert.False(t, errors.Is(err, thirdweb_sdk.ErrMissingConfiguration))
}

func TestNewFromEnvLogsInitialisation(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	_, err := thirdweb_sdk.NewFromEnv(
		thirdweb_sdk.WithEnvironment(map[string]string{"NEXT_PUBLIC_THIRD_CLIENT_ID": "abcdef123456"}),
		thirdweb_sdk.WithLogger(logger),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "thirdweb client initialised")
	assert.Contains(t, buf.String(), "********3456")
	assert.NotContains(t, buf.String(), "abcdef123456")
}

func TestMustNewFromEnvPanics(t *testing.T) {
	assert.Panics(t, func() {
		thirdweb_sdk.MustNewFromEnv(thirdweb_sdk.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		thirdweb_sdk.MustNewFromEnv(thirdweb_sdk.WithEnvironment(map[string]string{
			"NEXT_PUBLIC_THIRD_CLIENT_ID": "abc123",
		}))
	})
}

func TestLoadDotEnv(t *testing.T) {
	path := writeTempFile(t, ".env", []byte("NEXT_PUBLIC_THIRD_CLIENT_ID=from-dotenv\nTHIRDWEB_SECRET_KEY=dotenv-secret\n"))

	t.Setenv("NEXT_PUBLIC_THIRD_CLIENT_ID", "")
	os.Unsetenv("NEXT_PUBLIC_THIRD_CLIENT_ID")
	t.Setenv("THIRDWEB_SECRET_KEY", "from-process")

	require.NoError(t, thirdweb_sdk.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))

	cfg, err := thirdweb_sdk.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.ClientID)
	assert.Equal(t, "from-process", cfg.SecretKey)
}

func TestLoadDotEnvMalformed(t *testing.T) {
	path := writeTempFile(t, "bad.env", []byte("BAD-KEY=value\n"))

	err := thirdweb_sdk.LoadDotEnv(path)
	require.Error(t, err)
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
