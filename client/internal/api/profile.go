package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetUserProfile returns the profile of the token's owner.
func GetUserProfile(ctx context.Context, rc *resty.Client, host, token string) (*types.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var p types.Profile
	err := FetchJSON(ctx, rc, types.FetchRequest{
		Method: http.MethodGet,
		URL:    Endpoint(host, "v3/profile"),
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": AuthHeader(token),
		},
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
