package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	errs "github.com/feedlyapi/feedly-go/client/internal/errors"
	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetSubscriptionsOPML returns the user's subscriptions as an OPML document.
func GetSubscriptionsOPML(ctx context.Context, rc *resty.Client, host, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	resp, err := GetResponse(ctx, rc, host, token, "v3/opml")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", errs.NewStatusError("get opml", resp.StatusCode(), resp.Body())
	}
	return resp.String(), nil
}

// GetSubscriptions lists the user's subscriptions.
func GetSubscriptions(ctx context.Context, rc *resty.Client, host, token string) ([]types.Subscription, error) {
	var subs []types.Subscription
	if err := GetInfo(ctx, rc, host, token, types.InfoSubscriptions, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetTags lists the user's tags.
func GetTags(ctx context.Context, rc *resty.Client, host, token string) ([]types.Tag, error) {
	var tags []types.Tag
	if err := GetInfo(ctx, rc, host, token, types.InfoTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTopics lists the topics the user follows.
func GetTopics(ctx context.Context, rc *resty.Client, host, token string) ([]types.Topic, error) {
	var topics []types.Topic
	if err := GetInfo(ctx, rc, host, token, types.InfoTopics, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}
