package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options only record settings; New resolves the service host, installs the
// debug transport and builds the request dispatcher once all options ran, so
// the order in which options are passed does not matter.
type Option func(*Client) error

// WithClientID sets the OAuth client identifier.
func WithClientID(id string) Option {
	return func(c *Client) error {
		c.clientID = id
		return nil
	}
}

// WithClientSecret sets the OAuth client secret.
func WithClientSecret(secret string) Option {
	return func(c *Client) error {
		c.clientSecret = secret
		return nil
	}
}

// WithSandbox selects sandbox.feedly.com (true, the default) or
// cloud.feedly.com (false). Ignored when WithServiceHost is given.
func WithSandbox(sandbox bool) Option {
	return func(c *Client) error {
		c.sandbox = sandbox
		return nil
	}
}

// WithServiceHost overrides the API host, e.g. "cloud.feedly.com" or a
// "host:port" pair. It always wins over WithSandbox.
func WithServiceHost(host string) Option {
	return func(c *Client) error {
		if host == "" {
			return fmt.Errorf("service host cannot be empty")
		}
		c.serviceHost = host
		return nil
	}
}

// WithAdditionalHeaders merges headers into every request. The map is copied.
func WithAdditionalHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
		return nil
	}
}

// WithToken stores an access token used whenever a call passes an empty one.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}

// WithSecret stores an opaque secret alongside the token. The client does not
// send it anywhere.
func WithSecret(secret string) Option {
	return func(c *Client) error {
		c.secret = secret
		return nil
	}
}

// WithHTTPClient uses a copy of hc as the underlying transport client. hc
// itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged at debug level when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and dumps request and response bodies. Authorization values are
// redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithLogger sets the logger used for warnings and debug output. Defaults to
// the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithWarningHandler receives non-fatal conditions such as a truncated entry
// id batch. The default handler logs them at warn level.
func WithWarningHandler(h func(Warning)) Option {
	return func(c *Client) error {
		c.onWarning = h
		return nil
	}
}
