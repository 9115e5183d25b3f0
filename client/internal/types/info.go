package types

import "fmt"

// InfoType is a resource that can be listed with a plain authenticated GET.
type InfoType int

const (
	InfoPreferences InfoType = iota
	InfoCategories
	InfoTopics
	InfoTags
	InfoSubscriptions
	InfoMarkers
	InfoEntries
)

// InfoTypes lists every InfoType in declaration order.
var InfoTypes = []InfoType{
	InfoPreferences,
	InfoCategories,
	InfoTopics,
	InfoTags,
	InfoSubscriptions,
	InfoMarkers,
	InfoEntries,
}

// Path returns the endpoint path for t and false when t is not a known type.
func (t InfoType) Path() (string, bool) {
	switch t {
	case InfoPreferences:
		return "/v3/preferences", true
	case InfoCategories:
		return "/v3/categories", true
	case InfoTopics:
		return "/v3/topics", true
	case InfoTags:
		return "/v3/tags", true
	case InfoSubscriptions:
		return "/v3/subscriptions", true
	case InfoMarkers:
		return "/v3/markers", true
	case InfoEntries:
		return "/v3/entries", true
	default:
		return "", false
	}
}

func (t InfoType) String() string {
	switch t {
	case InfoPreferences:
		return "preferences"
	case InfoCategories:
		return "categories"
	case InfoTopics:
		return "topics"
	case InfoTags:
		return "tags"
	case InfoSubscriptions:
		return "subscriptions"
	case InfoMarkers:
		return "markers"
	case InfoEntries:
		return "entries"
	default:
		return fmt.Sprintf("InfoType(%d)", int(t))
	}
}

// ParseInfoType maps a resource key such as "subscriptions" to its InfoType.
func ParseInfoType(s string) (InfoType, error) {
	for _, t := range InfoTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInfoType, s)
}
