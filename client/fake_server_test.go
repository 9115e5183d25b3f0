package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// recordedRequest is what the fake Feedly server saw.
type recordedRequest struct {
	Method     string
	RequestURI string
	Query      url.Values
	Header     http.Header
	Body       []byte
	Vars       map[string]string
}

// fakeFeedly serves canned v3 responses and records every request.
type fakeFeedly struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeFeedly(t *testing.T) *fakeFeedly {
	t.Helper()
	f := &fakeFeedly{}

	r := mux.NewRouter().UseEncodedPath()
	r.Use(f.record)

	r.HandleFunc("/v3/profile", writeJSON(`{"id":"u-1","email":"reader@example.com","fullName":"Ada Reader"}`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/auth/token", writeJSON(`{"id":"u-1","access_token":"at-1","refresh_token":"rt-1","expires_in":604800,"token_type":"Bearer"}`)).Methods(http.MethodPost)
	r.HandleFunc("/v3/opml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0"?><opml version="1.0"><body/></opml>`)
	}).Methods(http.MethodGet)
	r.HandleFunc("/v3/subscriptions", writeJSON(`[{"id":"feed/http://blog.golang.org/feed.atom","title":"The Go Blog","categories":[{"id":"user/u-1/category/go","label":"go"}]}]`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/tags", writeJSON(`[{"id":"user/u-1/tag/global.saved"},{"id":"user/u-1/tag/read-later","label":"read-later"}]`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/topics", writeJSON(`[{"id":"user/u-1/topic/golang","interest":"high"}]`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/markers", writeJSON(`{"unreadcounts":[]}`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/markers", func(w http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)
	r.HandleFunc("/v3/markers/reads", writeJSON(`{"entries":["e-1"],"feeds":[]}`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/streams/contents", writeJSON(`{"id":"feed/x","continuation":"next-page","items":[{"id":"e-1","title":"Hello","unread":true}]}`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/tags/{tagId}", func(w http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPut)
	r.HandleFunc("/v3/entries", writeJSON(`[]`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/entries/.mget", func(w http.ResponseWriter, req *http.Request) {
		var ids []string
		_ = json.NewDecoder(req.Body).Decode(&ids)
		out := make([]map[string]string, len(ids))
		for i, id := range ids {
			out[i] = map[string]string{"id": id}
		}
		_ = json.NewEncoder(w).Encode(out)
	}).Methods(http.MethodPost)
	r.HandleFunc("/v3/entries/{entryId}", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{{"id": mux.Vars(req)["entryId"]}})
	}).Methods(http.MethodGet)
	r.HandleFunc("/v3/categories", writeJSON(`[{"id":"user/u-1/category/go","label":"go"}]`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/categories/{categoryId}", func(w http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)
	r.HandleFunc("/v3/categories/{categoryId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)
	r.HandleFunc("/v3/preferences", writeJSON(`{"theme":"dark"}`)).Methods(http.MethodGet)
	r.HandleFunc("/v3/preferences", func(w http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)

	f.srv = httptest.NewTLSServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeFeedly) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:     r.Method,
			RequestURI: r.RequestURI,
			Query:      r.URL.Query(),
			Header:     r.Header.Clone(),
			Body:       body,
			Vars:       mux.Vars(r),
		})
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeFeedly) host() string {
	return strings.TrimPrefix(f.srv.URL, "https://")
}

func (f *fakeFeedly) all() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeFeedly) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.all()
	if len(reqs) == 0 {
		t.Fatal("fake server saw no requests")
	}
	return reqs[len(reqs)-1]
}

// newTestClient points a Client at the fake server.
func newTestClient(t *testing.T, f *fakeFeedly, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithServiceHost(f.host()), WithHTTPClient(f.srv.Client())}
	c, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
