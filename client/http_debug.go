package client

import (
	"net/http"
	"net/http/httputil"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// Purpose:
//   - Troubleshoot API communication problems (timeouts, malformed requests, unexpected responses)
//   - Validate request formatting (query strings, JSON bodies, encoded tag ids)
//
// Each request/response pair shares a request_id so the two log lines can be
// matched when calls run concurrently. Authorization values are redacted; bodies
// are not, so keep this out of production.
//
// Example usage:
//
//	c, _ := client.New(client.WithDebugLogging(true))
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

var authHeaderValue = regexp.MustCompile(`(?mi)^(Authorization:[ \t]*\S+[ \t]+)\S+`)

func redactAuthorization(dump []byte) string {
	return authHeaderValue.ReplaceAllString(string(dump), "${1}[REDACTED]")
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	id := uuid.NewString()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redactAuthorization(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}
