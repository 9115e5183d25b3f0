package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Profile is the authenticated user's Feedly profile.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Picture    string `json:"picture,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Locale     string `json:"locale,omitempty"`
	Reader     string `json:"reader,omitempty"`
	Wave       string `json:"wave,omitempty"`
	Client     string `json:"client,omitempty"`
	Source     string `json:"source,omitempty"`
	Created    int64  `json:"created,omitempty"`
}

// Category is a user-defined (or global) grouping of subscriptions.
type Category struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Tag labels saved entries; global.saved is the "saved for later" tag.
type Tag struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Topic is a topic the user follows.
type Topic struct {
	ID       string `json:"id"`
	Interest string `json:"interest,omitempty"`
	Updated  int64  `json:"updated,omitempty"`
	Created  int64  `json:"created,omitempty"`
}

// Subscription is a feed the user is subscribed to.
type Subscription struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Website     string     `json:"website,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
	Updated     int64      `json:"updated,omitempty"`
	Velocity    float64    `json:"velocity,omitempty"`
	Subscribers int        `json:"subscribers,omitempty"`
	Topics      []string   `json:"topics,omitempty"`
	IconURL     string     `json:"iconUrl,omitempty"`
	VisualURL   string     `json:"visualUrl,omitempty"`
	SortID      string     `json:"sortid,omitempty"`
	Added       int64      `json:"added,omitempty"`
}

// Content carries the HTML body or summary of an entry.
type Content struct {
	Content   string `json:"content"`
	Direction string `json:"direction,omitempty"`
}

// Link is an alternate or canonical link of an entry.
type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// Origin identifies the stream an entry was published in.
type Origin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title,omitempty"`
	HTMLURL  string `json:"htmlUrl,omitempty"`
}

// Visual is the lead image of an entry.
type Visual struct {
	URL         string `json:"url"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// Entry is a single article.
type Entry struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Author      string     `json:"author,omitempty"`
	Content     *Content   `json:"content,omitempty"`
	Summary     *Content   `json:"summary,omitempty"`
	Alternate   []Link     `json:"alternate,omitempty"`
	Canonical   []Link     `json:"canonical,omitempty"`
	Origin      *Origin    `json:"origin,omitempty"`
	Visual      *Visual    `json:"visual,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
	Fingerprint string     `json:"fingerprint,omitempty"`
	OriginID    string     `json:"originId,omitempty"`
	Crawled     int64      `json:"crawled,omitempty"`
	Published   int64      `json:"published,omitempty"`
	Updated     int64      `json:"updated,omitempty"`
	Engagement  int        `json:"engagement,omitempty"`
	Unread      bool       `json:"unread"`
}

// Preferences are application-specific key/value settings.
type Preferences map[string]string

// DeletePreferenceValue is the sentinel that removes a preference when posted.
const DeletePreferenceValue = "==DELETE=="
