package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

const (
	authScope        = "https://cloud.feedly.com/subscriptions"
	authResponseType = "code"
)

// AuthorizationURL builds the URL a user visits to grant access. The values
// are composed verbatim, matching what Feedly registers for the client.
func AuthorizationURL(host, clientID, callbackURL string) string {
	return fmt.Sprintf("%s?client_id=%s&redirect_uri=%s&scope=%s&response_type=%s",
		Endpoint(host, "v3/auth/auth"), clientID, callbackURL, authScope, authResponseType)
}

// ExchangeCode trades an authorization code for an access token.
func ExchangeCode(ctx context.Context, rc *resty.Client, host, clientID, clientSecret, redirectURI, code string) (*types.TokenResponse, error) {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("client_secret", clientSecret)
	q.Set("grant_type", "authorization_code")
	q.Set("redirect_uri", redirectURI)
	q.Set("code", code)
	return postToken(ctx, rc, host, "exchange code", q)
}

// RefreshAccessToken obtains a new access token from a refresh token.
func RefreshAccessToken(ctx context.Context, rc *resty.Client, host, clientID, clientSecret, refreshToken string) (*types.TokenResponse, error) {
	q := url.Values{}
	q.Set("refresh_token", refreshToken)
	q.Set("client_id", clientID)
	q.Set("client_secret", clientSecret)
	q.Set("grant_type", "refresh_token")
	return postToken(ctx, rc, host, "refresh access token", q)
}

// The token endpoint takes its parameters in the query string.
func postToken(ctx context.Context, rc *resty.Client, host, op string, q url.Values) (*types.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := newRequest(ctx, rc).SetQueryParamsFromValues(q)
	resp, err := send(op, req, http.MethodPost, Endpoint(host, "v3/auth/token"))
	if err != nil {
		return nil, err
	}
	var tr types.TokenResponse
	if err := decodeJSON(op, resp, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
