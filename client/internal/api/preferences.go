package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetPreferences returns the application's preferences for the user.
func GetPreferences(ctx context.Context, rc *resty.Client, host, token string) (types.Preferences, error) {
	prefs := types.Preferences{}
	if err := GetInfo(ctx, rc, host, token, types.InfoPreferences, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// UpdatePreferences posts the given key/value pairs.
func UpdatePreferences(ctx context.Context, rc *resty.Client, host, token string, prefs types.Preferences) (*types.Response, error) {
	return postPreferences(ctx, rc, host, token, "update preferences", prefs)
}

// DeletePreference removes key by posting the deletion sentinel as its value.
func DeletePreference(ctx context.Context, rc *resty.Client, host, token, key string) (*types.Response, error) {
	return postPreferences(ctx, rc, host, token, "delete preference", types.Preferences{key: types.DeletePreferenceValue})
}

func postPreferences(ctx context.Context, rc *resty.Client, host, token, op string, prefs types.Preferences) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = types.Preferences{}
	}
	resp, err := send(op, jsonRequest(ctx, rc, token, prefs), http.MethodPost, Endpoint(host, "v3/preferences"))
	if err != nil {
		return nil, err
	}
	return toResponse(resp), nil
}
