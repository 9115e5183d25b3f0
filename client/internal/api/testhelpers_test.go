package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newTLS starts a TLS test server and returns a resty client trusting it plus
// the host:port to use as the service host.
func newTLS(t *testing.T, h http.HandlerFunc) (*resty.Client, string) {
	t.Helper()
	srv := httptest.NewTLSServer(h)
	t.Cleanup(srv.Close)
	return resty.NewWithClient(srv.Client()), strings.TrimPrefix(srv.URL, "https://")
}

func failingClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: &errRT{}})
}
