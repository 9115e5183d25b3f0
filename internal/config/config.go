// Package config loads feedlyctl settings from FEEDLY_-prefixed environment
// variables. The client library itself never reads the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/feedlyapi/feedly-go/client"
)

// Prefix is prepended to every variable name, e.g. FEEDLY_CLIENT_ID.
const Prefix = "FEEDLY"

// Config holds the settings feedlyctl turns into client options.
type Config struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`

	// Sandbox is ignored when ServiceHost is set.
	Sandbox     bool   `envconfig:"SANDBOX" default:"true"`
	ServiceHost string `envconfig:"SERVICE_HOST"`

	AccessToken string `envconfig:"ACCESS_TOKEN"`

	// Headers are merged into every request, e.g. FEEDLY_HEADERS="X-App:reader,X-Env:dev".
	Headers map[string]string `envconfig:"HEADERS"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// New parses the environment and validates the result.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the client would refuse.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0, got %s", c.HTTPTimeout)
	}
	return nil
}

// ClientOptions converts the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithClientID(c.ClientID),
		client.WithClientSecret(c.ClientSecret),
		client.WithSandbox(c.Sandbox),
		client.WithToken(c.AccessToken),
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithDebugLogging(c.Debug),
	}
	if c.ServiceHost != "" {
		opts = append(opts, client.WithServiceHost(c.ServiceHost))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, client.WithAdditionalHeaders(c.Headers))
	}
	return opts
}
