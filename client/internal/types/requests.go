package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// StreamContentsParams selects a page of a stream. Nil fields are left out of
// the query entirely; a non-nil zero value (false, 0, "") is sent as is.
type StreamContentsParams struct {
	StreamID     string
	UnreadOnly   *bool
	NewerThan    *int64 // ms since epoch
	Count        *int
	Continuation *string
	Ranked       *string // "newest" or "oldest"
}

// Query encodes the parameters that were explicitly set.
func (p StreamContentsParams) Query() url.Values {
	q := url.Values{}
	q.Set("streamId", p.StreamID)
	if p.UnreadOnly != nil {
		q.Set("unreadOnly", strconv.FormatBool(*p.UnreadOnly))
	}
	if p.NewerThan != nil {
		q.Set("newerThan", strconv.FormatInt(*p.NewerThan, 10))
	}
	if p.Count != nil {
		q.Set("count", strconv.Itoa(*p.Count))
	}
	if p.Continuation != nil {
		q.Set("continuation", *p.Continuation)
	}
	if p.Ranked != nil {
		q.Set("ranked", *p.Ranked)
	}
	return q
}

// MarkerRequest is the body posted to the markers endpoint.
type MarkerRequest struct {
	Action   string   `json:"action"`
	Type     string   `json:"type"`
	EntryIDs []string `json:"entryIds"`
}

// Marker actions and types accepted by the markers endpoint.
const (
	ActionMarkAsRead    = "markAsRead"
	ActionMarkAsUnsaved = "markAsUnsaved"
	MarkerTypeEntries   = "entries"
)

// TagEntriesRequest is the body of a tag PUT.
type TagEntriesRequest struct {
	EntryIDs []string `json:"entryIds"`
}

// CategoryLabelRequest renames a category.
type CategoryLabelRequest struct {
	Label string `json:"label"`
}

// FetchRequest describes an arbitrary JSON call. Body is JSON-encoded when
// non-nil; Query and Headers are optional.
type FetchRequest struct {
	Method  string
	URL     string
	Query   url.Values
	Body    any
	Headers map[string]string
}
