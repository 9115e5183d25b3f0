package types

import (
	"encoding/json"
	"net/http"
)

// ------------------------------
// Response Types
// ------------------------------

// TokenResponse is returned by the OAuth token endpoint for both the
// authorization-code and refresh-token grants.
type TokenResponse struct {
	ID           string `json:"id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Plan         string `json:"plan,omitempty"`
	Provider     string `json:"provider,omitempty"`
	State        string `json:"state,omitempty"`
}

// StreamContents is one page of a stream. Continuation is empty on the last page.
type StreamContents struct {
	ID           string  `json:"id"`
	Title        string  `json:"title,omitempty"`
	Direction    string  `json:"direction,omitempty"`
	Updated      int64   `json:"updated,omitempty"`
	Continuation string  `json:"continuation,omitempty"`
	Items        []Entry `json:"items"`
}

// ReadMarkers lists read operations recorded since a point in time.
type ReadMarkers struct {
	Entries []string         `json:"entries"`
	Feeds   []ReadMarkerFeed `json:"feeds,omitempty"`
	Unread  []string         `json:"unread,omitempty"`
}

// ReadMarkerFeed records a mark-all-as-read on a feed.
type ReadMarkerFeed struct {
	ID     string `json:"id"`
	AsOf   int64  `json:"asOf"`
	Status string `json:"status,omitempty"`
}

// APIErrorBody is the JSON object Feedly returns with non-2xx statuses.
type APIErrorBody struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorID      string `json:"errorId"`
	ErrorMessage string `json:"errorMessage"`
}

// Response is the unparsed outcome of a mutating call. Callers decide what
// counts as success.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) String() string { return string(r.Body) }

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
