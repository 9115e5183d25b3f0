package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// SavedTagID is the tag id of a user's saved-for-later list.
func SavedTagID(userID string) string {
	return "user/" + userID + "/tag/global.saved"
}

// SaveForLater tags entries with the user's global.saved tag.
func SaveForLater(ctx context.Context, rc *resty.Client, host, token, userID string, entryIDs []string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := "v3/tags/" + url.PathEscape(SavedTagID(userID))
	body := types.TagEntriesRequest{EntryIDs: nonNil(entryIDs)}
	resp, err := send("save for later", jsonRequest(ctx, rc, token, body), http.MethodPut, Endpoint(host, path))
	if err != nil {
		return nil, err
	}
	return toResponse(resp), nil
}
