package client

import "github.com/feedlyapi/feedly-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	StreamContentsParams = types.StreamContentsParams
	FetchRequest         = types.FetchRequest

	// Domain entities
	Profile      = types.Profile
	Subscription = types.Subscription
	Category     = types.Category
	Tag          = types.Tag
	Topic        = types.Topic
	Entry        = types.Entry
	Content      = types.Content
	Link         = types.Link
	Origin       = types.Origin
	Visual       = types.Visual
	Preferences  = types.Preferences

	// Responses
	TokenResponse  = types.TokenResponse
	StreamContents = types.StreamContents
	ReadMarkers    = types.ReadMarkers
	ReadMarkerFeed = types.ReadMarkerFeed
	APIErrorBody   = types.APIErrorBody
	Response       = types.Response

	// Enumerations
	InfoType = types.InfoType
)

const (
	InfoPreferences   = types.InfoPreferences
	InfoCategories    = types.InfoCategories
	InfoTopics        = types.InfoTopics
	InfoTags          = types.InfoTags
	InfoSubscriptions = types.InfoSubscriptions
	InfoMarkers       = types.InfoMarkers
	InfoEntries       = types.InfoEntries
)

// DeletePreferenceValue is posted as a preference's value to delete it.
const DeletePreferenceValue = types.DeletePreferenceValue

// ParseInfoType maps a resource key such as "subscriptions" to its InfoType.
func ParseInfoType(s string) (InfoType, error) { return types.ParseInfoType(s) }

// Bool returns a pointer to v, for optional parameters.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional parameters.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for optional parameters.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v, for optional parameters.
func String(v string) *string { return &v }
