package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/feedlyapi/feedly-go/client/internal/errors"
	"github.com/feedlyapi/feedly-go/client/internal/types"
)

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://sandbox.feedly.com/v3/foo", Endpoint("sandbox.feedly.com", "v3/foo"))
	assert.Equal(t, "https://sandbox.feedly.com/v3/foo", Endpoint("sandbox.feedly.com", "/v3/foo"))
	assert.Equal(t, "https://cloud.feedly.com", Endpoint("cloud.feedly.com", ""))
}

func TestAuthHeader(t *testing.T) {
	assert.Equal(t, "OAuth abc123", AuthHeader("abc123"))
}

func TestFetchJSON_SendsQueryBodyAndHeaders(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/search/feeds", r.URL.Path)
		assert.Equal(t, "go", r.URL.Query().Get("query"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["count"])
		_, _ = w.Write([]byte(`{"results":[{"feedId":"feed/x"}]}`))
	})

	var out struct {
		Results []struct {
			FeedID string `json:"feedId"`
		} `json:"results"`
	}
	err := FetchJSON(context.Background(), rc, types.FetchRequest{
		Method:  http.MethodPost,
		URL:     Endpoint(host, "v3/search/feeds"),
		Query:   map[string][]string{"query": {"go"}},
		Body:    map[string]int{"count": 3},
		Headers: map[string]string{"X-Test": "yes"},
	}, &out)
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "feed/x", out.Results[0].FeedID)
}

func TestFetchJSON_DefaultsToGETWithoutBody(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		_, _ = w.Write([]byte(`[1,2,3]`))
	})
	var out []int
	require.NoError(t, FetchJSON(context.Background(), rc, types.FetchRequest{URL: Endpoint(host, "v3/x")}, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestFetchJSON_Errors(t *testing.T) {
	t.Parallel()

	err := FetchJSON(context.Background(), failingClient(), types.FetchRequest{URL: "https://example.com/v3/x"}, &struct{}{})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Transport))

	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{bad json"))
	})
	err = FetchJSON(context.Background(), rc, types.FetchRequest{URL: Endpoint(host, "v3/x")}, &struct{}{})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Decode))

	rc2, host2 := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorCode":401,"errorId":"e1","errorMessage":"token expired"}`))
	})
	err = FetchJSON(context.Background(), rc2, types.FetchRequest{URL: Endpoint(host2, "v3/x")}, &struct{}{})
	require.Error(t, err)
	var ce *errs.ClassifiedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errs.Status, ce.Category)
	assert.Equal(t, http.StatusUnauthorized, ce.StatusCode)
	assert.Equal(t, "token expired", ce.Message)
}

func TestFetchJSON_BodyAlwaysJSONEncoded(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body any
		want string
	}{
		{"string", "abc", `"abc"`},
		{"number", 42, `42`},
		{"bool", true, `true`},
		{"raw bytes", []byte("hi"), `"aGk="`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				assert.Equal(t, tc.want, string(b))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				_, _ = w.Write([]byte(`{}`))
			})
			err := FetchJSON(context.Background(), rc, types.FetchRequest{
				Method: http.MethodPost,
				URL:    Endpoint(host, "v3/x"),
				Body:   tc.body,
			}, &struct{}{})
			require.NoError(t, err)
		})
	}
}

func TestFetchJSON_UnencodableBodySendsNothing(t *testing.T) {
	t.Parallel()
	var hits int
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) { hits++ })
	err := FetchJSON(context.Background(), rc, types.FetchRequest{
		Method: http.MethodPost,
		URL:    Endpoint(host, "v3/x"),
		Body:   make(chan int),
	}, &struct{}{})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Encode))
	assert.Zero(t, hits)
}
