package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// MarkEntriesRead marks entries as read. The response is returned unjudged.
func MarkEntriesRead(ctx context.Context, rc *resty.Client, host, token string, entryIDs []string) (*types.Response, error) {
	return postMarker(ctx, rc, host, token, "mark entries read", types.ActionMarkAsRead, entryIDs)
}

// MarkEntriesUnsaved removes entries from the saved-for-later list.
func MarkEntriesUnsaved(ctx context.Context, rc *resty.Client, host, token string, entryIDs []string) (*types.Response, error) {
	return postMarker(ctx, rc, host, token, "mark entries unsaved", types.ActionMarkAsUnsaved, entryIDs)
}

func postMarker(ctx context.Context, rc *resty.Client, host, token, op, action string, entryIDs []string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body := types.MarkerRequest{
		Action:   action,
		Type:     types.MarkerTypeEntries,
		EntryIDs: nonNil(entryIDs),
	}
	resp, err := send(op, jsonRequest(ctx, rc, token, body), http.MethodPost, Endpoint(host, "v3/markers"))
	if err != nil {
		return nil, err
	}
	return toResponse(resp), nil
}

// GetReadMarkers returns the latest read operations. Feedly defaults to the
// last 30 days when newerThan (ms since epoch) is nil.
func GetReadMarkers(ctx context.Context, rc *resty.Client, host, token string, newerThan *int64) (*types.ReadMarkers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "get read markers"
	req := authedRequest(ctx, rc, token)
	if newerThan != nil {
		req.SetQueryParam("newerThan", strconv.FormatInt(*newerThan, 10))
	}
	resp, err := send(op, req, http.MethodGet, Endpoint(host, "v3/markers/reads"))
	if err != nil {
		return nil, err
	}
	var rm types.ReadMarkers
	if err := decodeJSON(op, resp, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}

// nonNil keeps an empty id list encoding as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
