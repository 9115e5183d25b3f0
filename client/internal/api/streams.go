package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetFeedContent fetches one page of a stream. Only the parameters set in p
// reach the query string.
func GetFeedContent(ctx context.Context, rc *resty.Client, host, token string, p types.StreamContentsParams) (*types.StreamContents, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "get stream contents"
	req := authedRequest(ctx, rc, token).SetQueryParamsFromValues(p.Query())
	resp, err := send(op, req, http.MethodGet, Endpoint(host, "v3/streams/contents"))
	if err != nil {
		return nil, err
	}
	var sc types.StreamContents
	if err := decodeJSON(op, resp, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
