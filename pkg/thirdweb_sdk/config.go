package thirdweb_sdk

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

const (
	EnvClientID  = "NEXT_PUBLIC_THIRD_CLIENT_ID"
	EnvSecretKey = "THIRDWEB_SECRET_KEY"
	EnvAPIURL    = "THIRDWEB_API_URL"
)

// ErrMissingConfiguration is returned when the client ID variable is absent or empty.
var ErrMissingConfiguration = errors.New("thirdweb_sdk: no client ID provided")

// Config holds the values read from the environment.
type Config struct {
	ClientID  string `env:"NEXT_PUBLIC_THIRD_CLIENT_ID,required,notEmpty"`
	SecretKey string `env:"THIRDWEB_SECRET_KEY"`
	BaseURL   string `env:"THIRDWEB_API_URL"`
}

// Option configures LoadConfig and NewFromEnv.
type Option func(*options)

type options struct {
	environment map[string]string
	logger      logrus.FieldLogger
	httpClient  *http.Client
}

// WithEnvironment reads variables from environ instead of the process environment.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environment = environ
	}
}

// WithLogger sets the logger used during initialisation and by the client.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHTTPClient overrides the HTTP client used by the constructed handle.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) {
		o.httpClient = h
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadConfig reads and validates the client configuration.
func LoadConfig(opts ...Option) (*Config, error) {
	return loadConfig(newOptions(opts))
}

func loadConfig(o *options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: o.environment}); err != nil {
		if errors.Is(err, env.EnvVarIsNotSetError{}) || errors.Is(err, env.EmptyEnvVarError{}) {
			return nil, missingClientID()
		}
		return nil, fmt.Errorf("thirdweb_sdk: parse environment: %w", err)
	}

	if cfg.ClientID == "" {
		return nil, missingClientID()
	}
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	return &cfg, nil
}

func missingClientID() error {
	return fmt.Errorf("%w: %s is not set", ErrMissingConfiguration, EnvClientID)
}
