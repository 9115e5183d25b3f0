package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// GetInfo fetches the resource listed under t and decodes it into out. An
// unknown t sends nothing and returns ErrUnknownInfoType.
func GetInfo(ctx context.Context, rc *resty.Client, host, token string, t types.InfoType, out any) error {
	path, ok := t.Path()
	if !ok {
		return fmt.Errorf("get info %s: %w", t, types.ErrUnknownInfoType)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return getInfo(ctx, rc, host, token, path, out)
}

// GetInfoByType returns the undecoded JSON document for t.
func GetInfoByType(ctx context.Context, rc *resty.Client, host, token string, t types.InfoType) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := GetInfo(ctx, rc, host, token, t, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
