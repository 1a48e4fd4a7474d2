package thirdweb_sdk

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Ratio1/thirdweb_sdk_go/pkg/thirdweb"
)

// NewFromEnv validates the environment and constructs a thirdweb.Client. No
// client is returned when the configuration is invalid.
func NewFromEnv(opts ...Option) (*thirdweb.Client, error) {
	o := newOptions(opts)

	cfg, err := loadConfig(o)
	if err != nil {
		return nil, err
	}

	client, err := thirdweb.CreateClient(thirdweb.Options{
		ClientID:   cfg.ClientID,
		SecretKey:  cfg.SecretKey,
		BaseURL:    cfg.BaseURL,
		HTTPClient: o.httpClient,
		Logger:     o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("thirdweb_sdk: create client: %w", err)
	}

	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"client_id":  thirdweb.MaskClientID(client.ClientID()),
			"base_url":   client.BaseURL(),
			"secret_key": client.HasSecretKey(),
		}).Info("thirdweb client initialised")
	}
	return client, nil
}

// MustNewFromEnv is like NewFromEnv but panics on error.
func MustNewFromEnv(opts ...Option) *thirdweb.Client {
	client, err := NewFromEnv(opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Variables that are already set win, and missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("thirdweb_sdk: load %s: %w", path, err)
		}
	}
	return nil
}
