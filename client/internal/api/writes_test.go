package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/feedlyapi/feedly-go/client/internal/errors"
	"github.com/feedlyapi/feedly-go/client/internal/types"
)

func TestMarkEntriesRead(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/markers", r.URL.Path)
		assert.Equal(t, "OAuth tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body types.MarkerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, types.MarkerRequest{Action: "markAsRead", Type: "entries", EntryIDs: []string{"e1", "e2"}}, body)
		w.WriteHeader(http.StatusOK)
	})
	resp, err := MarkEntriesRead(context.Background(), rc, host, "tok", []string{"e1", "e2"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMarkEntriesUnsaved_ReturnsRawOnFailure(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "markAsUnsaved", body["action"])
		assert.Equal(t, "entries", body["type"])
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorCode":401}`))
	})
	resp, err := MarkEntriesUnsaved(context.Background(), rc, host, "tok", []string{"e1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.JSONEq(t, `{"errorCode":401}`, resp.String())
}

func TestMarkers_EmptyIDsEncodeAsArray(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "[]", string(body["entryIds"]))
	})
	_, err := MarkEntriesRead(context.Background(), rc, host, "tok", nil)
	require.NoError(t, err)
}

func TestSaveForLater_EncodesTagID(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v3/tags/user%2Fu-1%2Ftag%2Fglobal.saved", r.RequestURI)
		var body types.TagEntriesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"e1"}, body.EntryIDs)
	})
	resp, err := SaveForLater(context.Background(), rc, host, "tok", "u-1", []string{"e1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCategoryMutations(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/categories/user%2Fu%2Fcategory%2Ftech", r.RequestURI)
		assert.Equal(t, "OAuth tok", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodPost:
			var body types.CategoryLabelRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Technology", body.Label)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	resp, err := RenameCategory(context.Background(), rc, host, "tok", "user%2Fu%2Fcategory%2Ftech", "Technology")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = DeleteCategory(context.Background(), rc, host, "tok", "user%2Fu%2Fcategory%2Ftech")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCategoriesReads(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/categories", r.URL.Path)
		if r.URL.Query().Get("sort") == "feedly" {
			_, _ = w.Write([]byte(`[{"id":"b","label":"B"},{"id":"a","label":"A"}]`))
			return
		}
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[{"id":"a","label":"A"},{"id":"b","label":"B"}]`))
	})
	cats, err := GetCategories(context.Background(), rc, host, "tok")
	require.NoError(t, err)
	assert.Equal(t, "a", cats[0].ID)

	sorted, err := GetSortedCategories(context.Background(), rc, host, "tok")
	require.NoError(t, err)
	assert.Equal(t, "b", sorted[0].ID)
}

func TestPreferences(t *testing.T) {
	t.Parallel()
	rc, host := newTLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/preferences", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"theme":"dark","autoMarkAsRead":"true"}`))
		case http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if _, ok := body["obsolete"]; ok {
				assert.Equal(t, map[string]string{"obsolete": "==DELETE=="}, body)
			} else {
				assert.Equal(t, map[string]string{"theme": "light"}, body)
			}
		}
	})
	prefs, err := GetPreferences(context.Background(), rc, host, "tok")
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs["theme"])

	resp, err := UpdatePreferences(context.Background(), rc, host, "tok", types.Preferences{"theme": "light"})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	resp, err = DeletePreference(context.Background(), rc, host, "tok", "obsolete")
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestWrites_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := failingClient()
	ctx := context.Background()
	_, err := MarkEntriesRead(ctx, rc, "example.com", "tok", []string{"e"})
	assert.True(t, errs.Is(err, errs.Transport))
	_, err = SaveForLater(ctx, rc, "example.com", "tok", "u", []string{"e"})
	assert.True(t, errs.Is(err, errs.Transport))
	_, err = DeleteCategory(ctx, rc, "example.com", "tok", "c")
	assert.True(t, errs.Is(err, errs.Transport))
	_, err = UpdatePreferences(ctx, rc, "example.com", "tok", types.Preferences{"a": "b"})
	assert.True(t, errs.Is(err, errs.Transport))
}
