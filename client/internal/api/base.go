package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	errs "github.com/feedlyapi/feedly-go/client/internal/errors"
	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// Feedly only serves the API over TLS.
const scheme = "https"

// Endpoint joins the service host and a path into an absolute URL. An empty
// path yields the bare host URL. No escaping is applied; callers encode path
// segments that contain reserved characters.
func Endpoint(host, path string) string {
	u := scheme + "://" + host
	if path != "" {
		u += "/" + strings.TrimPrefix(path, "/")
	}
	return u
}

// AuthHeader is the Authorization header value for an access token.
func AuthHeader(token string) string {
	return "OAuth " + token
}

func newRequest(ctx context.Context, rc *resty.Client) *resty.Request {
	return rc.R().SetContext(ctx)
}

func authedRequest(ctx context.Context, rc *resty.Client, token string) *resty.Request {
	return newRequest(ctx, rc).SetHeader("Authorization", AuthHeader(token))
}

func jsonRequest(ctx context.Context, rc *resty.Client, token string, body any) *resty.Request {
	return authedRequest(ctx, rc, token).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// send issues the request once. resty's retry count stays at zero so this is
// always a single round trip.
func send(op string, req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}
	return resp, nil
}

// decodeJSON unmarshals a read call's body into out. Non-2xx statuses become
// Status errors so a Feedly error object is never mistaken for data.
func decodeJSON(op string, resp *resty.Response, out any) error {
	if !resp.IsSuccess() {
		return errs.NewStatusError(op, resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errs.NewDecodeError(op, resp.StatusCode(), resp.Body(), err)
	}
	return nil
}

func toResponse(resp *resty.Response) *types.Response {
	return &types.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}

// GetResponse performs an authenticated GET of path and returns the raw response.
func GetResponse(ctx context.Context, rc *resty.Client, host, token, path string) (*resty.Response, error) {
	op := "get " + strings.TrimPrefix(path, "/")
	return send(op, authedRequest(ctx, rc, token), http.MethodGet, Endpoint(host, path))
}

// getInfo performs an authenticated GET of path and decodes the JSON body.
func getInfo(ctx context.Context, rc *resty.Client, host, token, path string, out any) error {
	resp, err := GetResponse(ctx, rc, host, token, path)
	if err != nil {
		return err
	}
	return decodeJSON("get "+strings.TrimPrefix(path, "/"), resp, out)
}

// FetchJSON issues an arbitrary request and decodes the JSON response into out.
// Method defaults to GET. A non-nil Body is always sent JSON-encoded, so a
// string goes out quoted.
func FetchJSON(ctx context.Context, rc *resty.Client, fr types.FetchRequest, out any) error {
	method := fr.Method
	if method == "" {
		method = http.MethodGet
	}
	op := strings.ToLower(method) + " " + fr.URL

	req := newRequest(ctx, rc)
	for k, v := range fr.Headers {
		req.SetHeader(k, v)
	}
	if len(fr.Query) > 0 {
		req.SetQueryParamsFromValues(fr.Query)
	}
	if fr.Body != nil {
		b, err := json.Marshal(fr.Body)
		if err != nil {
			return errs.NewEncodeError(op, err)
		}
		if req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", "application/json")
		}
		req.SetBody(b)
	}

	resp, err := send(op, req, method, fr.URL)
	if err != nil {
		return err
	}
	return decodeJSON(op, resp, out)
}
