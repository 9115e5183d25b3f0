package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetCategories lists the user's categories.
func GetCategories(ctx context.Context, rc *resty.Client, host, token string) ([]types.Category, error) {
	var cats []types.Category
	if err := GetInfo(ctx, rc, host, token, types.InfoCategories, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetSortedCategories lists categories in the order the Feedly UI shows them.
func GetSortedCategories(ctx context.Context, rc *resty.Client, host, token string) ([]types.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	const op = "get sorted categories"
	req := authedRequest(ctx, rc, token).SetQueryParam("sort", "feedly")
	resp, err := send(op, req, http.MethodGet, Endpoint(host, "v3/categories"))
	if err != nil {
		return nil, err
	}
	var cats []types.Category
	if err := decodeJSON(op, resp, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// RenameCategory changes a category's label. categoryID must already be URL-encoded.
func RenameCategory(ctx context.Context, rc *resty.Client, host, token, categoryID, label string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body := types.CategoryLabelRequest{Label: label}
	resp, err := send("rename category", jsonRequest(ctx, rc, token, body), http.MethodPost, Endpoint(host, "v3/categories/"+categoryID))
	if err != nil {
		return nil, err
	}
	return toResponse(resp), nil
}

// DeleteCategory removes a category; its feeds move to global.uncategorized.
// System categories cannot be deleted. categoryID must already be URL-encoded.
func DeleteCategory(ctx context.Context, rc *resty.Client, host, token, categoryID string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := send("delete category", authedRequest(ctx, rc, token), http.MethodDelete, Endpoint(host, "v3/categories/"+categoryID))
	if err != nil {
		return nil, err
	}
	return toResponse(resp), nil
}
