package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// MaxEntryIDs is the largest batch the entries .mget endpoint accepts.
const MaxEntryIDs = 1000

// GetEntryContent fetches a single entry. Feedly answers with a one-element list.
func GetEntryContent(ctx context.Context, rc *resty.Client, host, entryID string) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "get entry"
	resp, err := send(op, newRequest(ctx, rc), http.MethodGet, Endpoint(host, "v3/entries/"+entryID))
	if err != nil {
		return nil, err
	}
	var entries []types.Entry
	if err := decodeJSON(op, resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntriesContent fetches many entries in one call. Lists longer than
// MaxEntryIDs are cut to the first MaxEntryIDs and warn is told about it.
func GetEntriesContent(ctx context.Context, rc *resty.Client, host string, entryIDs []string, warn func(string)) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "get entries"
	if len(entryIDs) > MaxEntryIDs {
		if warn != nil {
			warn(fmt.Sprintf("entries .mget is limited to %d ids; %d supplied, extra ids dropped", MaxEntryIDs, len(entryIDs)))
		}
		entryIDs = entryIDs[:MaxEntryIDs]
	}
	req := newRequest(ctx, rc).
		SetHeader("Content-Type", "application/json").
		SetBody(nonNil(entryIDs))
	resp, err := send(op, req, http.MethodPost, Endpoint(host, "v3/entries/.mget"))
	if err != nil {
		return nil, err
	}
	var entries []types.Entry
	if err := decodeJSON(op, resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
