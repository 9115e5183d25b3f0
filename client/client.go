package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/feedlyapi/feedly-go/client/internal/api"
)

// Feedly API hosts.
const (
	SandboxHost    = "sandbox.feedly.com"
	ProductionHost = "cloud.feedly.com"
)

const defaultHTTPTimeout = 30 * time.Second

// MaxEntryIDs is the largest batch GetEntriesContent sends.
const MaxEntryIDs = api.MaxEntryIDs

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a Feedly v3 API client. Configuration is fixed once New returns,
// so a Client may be shared between goroutines. Every method issues at most
// one HTTP request.
type Client struct {
	clientID     string
	clientSecret string
	sandbox      bool
	serviceHost  string
	headers      map[string]string
	token        string
	secret       string

	http    *http.Client
	timeout time.Duration
	debug   bool
	rest    *resty.Client

	logger    zerolog.Logger
	onWarning func(Warning)
}

// New constructs a Client. Without options it talks to the sandbox host.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		sandbox: true,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.serviceHost == "" {
		c.serviceHost = resolveHost(c.sandbox)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, logger: c.logger}
	}
	if c.onWarning == nil {
		c.onWarning = c.logWarning
	}
	c.rest = newRestClient(c.http, c.headers, c.logger)

	return c, nil
}

func resolveHost(sandbox bool) string {
	if sandbox {
		return SandboxHost
	}
	return ProductionHost
}

// ServiceHost returns the host requests are sent to.
func (c *Client) ServiceHost() string { return c.serviceHost }

// ClientID returns the configured OAuth client id.
func (c *Client) ClientID() string { return c.clientID }

// Sandbox reports whether the client was configured for the sandbox.
func (c *Client) Sandbox() bool { return c.sandbox }

// Secret returns the stored secret.
func (c *Client) Secret() string { return c.secret }

// Endpoint returns https://{host}/{path}, or https://{host} for an empty path.
// A leading "/" on path is dropped, so "v3/x" and "/v3/x" give the same URL.
func (c *Client) Endpoint(path string) string {
	return api.Endpoint(c.serviceHost, path)
}

// accessToken prefers the per-call token and falls back to WithToken.
func (c *Client) accessToken(token string) string {
	if token != "" {
		return token
	}
	return c.token
}

// FetchJSON issues an arbitrary request and decodes the JSON response into
// out. Configured additional headers are merged in; no Authorization header
// is added.
func (c *Client) FetchJSON(ctx context.Context, req FetchRequest, out any) error {
	return api.FetchJSON(ctx, c.rest, req, out)
}

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

// AuthorizationURL returns the URL that starts the OAuth flow. No request is made.
func (c *Client) AuthorizationURL(callbackURL string) string {
	return api.AuthorizationURL(c.serviceHost, c.clientID, callbackURL)
}

// ExchangeCode trades the code received on the redirect URI for tokens.
func (c *Client) ExchangeCode(ctx context.Context, redirectURI, code string) (*TokenResponse, error) {
	return api.ExchangeCode(ctx, c.rest, c.serviceHost, c.clientID, c.clientSecret, redirectURI, code)
}

// RefreshAccessToken obtains a new access token. The caller stores it.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return api.RefreshAccessToken(ctx, c.rest, c.serviceHost, c.clientID, c.clientSecret, refreshToken)
}

// --------------------------------------------------------------------
// Profile & subscriptions
// --------------------------------------------------------------------

// GetUserProfile returns the profile of the token's owner.
func (c *Client) GetUserProfile(ctx context.Context, token string) (*Profile, error) {
	return api.GetUserProfile(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetSubscriptionsOPML returns the subscriptions as a raw OPML document.
func (c *Client) GetSubscriptionsOPML(ctx context.Context, token string) (string, error) {
	return api.GetSubscriptionsOPML(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetSubscriptions lists the user's subscriptions.
func (c *Client) GetSubscriptions(ctx context.Context, token string) ([]Subscription, error) {
	return api.GetSubscriptions(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetTags lists the user's tags.
func (c *Client) GetTags(ctx context.Context, token string) ([]Tag, error) {
	return api.GetTags(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetTopics lists the topics the user follows.
func (c *Client) GetTopics(ctx context.Context, token string) ([]Topic, error) {
	return api.GetTopics(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetInfoByType returns the JSON document listed under t. An InfoType outside
// the fixed set sends nothing and returns ErrUnknownInfoType.
func (c *Client) GetInfoByType(ctx context.Context, token string, t InfoType) (json.RawMessage, error) {
	return api.GetInfoByType(ctx, c.rest, c.serviceHost, c.accessToken(token), t)
}

// --------------------------------------------------------------------
// Streams & entries
// --------------------------------------------------------------------

// GetFeedContent returns one page of a stream. Pass the returned
// Continuation back in params to fetch the next page.
func (c *Client) GetFeedContent(ctx context.Context, token string, params StreamContentsParams) (*StreamContents, error) {
	return api.GetFeedContent(ctx, c.rest, c.serviceHost, c.accessToken(token), params)
}

// GetEntryContent fetches a single entry. No authentication is sent.
func (c *Client) GetEntryContent(ctx context.Context, entryID string) ([]Entry, error) {
	return api.GetEntryContent(ctx, c.rest, c.serviceHost, entryID)
}

// GetEntriesContent fetches up to MaxEntryIDs entries in one request. Longer
// lists are cut to their first MaxEntryIDs ids and a Warning is emitted.
func (c *Client) GetEntriesContent(ctx context.Context, entryIDs []string) ([]Entry, error) {
	return api.GetEntriesContent(ctx, c.rest, c.serviceHost, entryIDs, c.entryIDsTruncated)
}

// --------------------------------------------------------------------
// Markers & tags
// --------------------------------------------------------------------

// MarkEntriesRead marks entries as read and returns the raw response.
func (c *Client) MarkEntriesRead(ctx context.Context, token string, entryIDs []string) (*Response, error) {
	return api.MarkEntriesRead(ctx, c.rest, c.serviceHost, c.accessToken(token), entryIDs)
}

// MarkEntriesUnsaved removes entries from saved-for-later and returns the raw response.
func (c *Client) MarkEntriesUnsaved(ctx context.Context, token string, entryIDs []string) (*Response, error) {
	return api.MarkEntriesUnsaved(ctx, c.rest, c.serviceHost, c.accessToken(token), entryIDs)
}

// SaveForLater tags entries with user/{userID}/tag/global.saved.
func (c *Client) SaveForLater(ctx context.Context, token, userID string, entryIDs []string) (*Response, error) {
	return api.SaveForLater(ctx, c.rest, c.serviceHost, c.accessToken(token), userID, entryIDs)
}

// GetReadMarkers returns recent read operations, optionally only those newer
// than newerThan (ms since epoch).
func (c *Client) GetReadMarkers(ctx context.Context, token string, newerThan *int64) (*ReadMarkers, error) {
	return api.GetReadMarkers(ctx, c.rest, c.serviceHost, c.accessToken(token), newerThan)
}

// --------------------------------------------------------------------
// Categories
// --------------------------------------------------------------------

// GetCategories lists the user's categories.
func (c *Client) GetCategories(ctx context.Context, token string) ([]Category, error) {
	return api.GetCategories(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// GetSortedCategories lists categories in the order Feedly displays them.
func (c *Client) GetSortedCategories(ctx context.Context, token string) ([]Category, error) {
	return api.GetSortedCategories(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// RenameCategory sets a new label. categoryID must be URL-encoded by the caller.
func (c *Client) RenameCategory(ctx context.Context, token, categoryID, label string) (*Response, error) {
	return api.RenameCategory(ctx, c.rest, c.serviceHost, c.accessToken(token), categoryID, label)
}

// DeleteCategory deletes a category. categoryID must be URL-encoded by the caller.
func (c *Client) DeleteCategory(ctx context.Context, token, categoryID string) (*Response, error) {
	return api.DeleteCategory(ctx, c.rest, c.serviceHost, c.accessToken(token), categoryID)
}

// --------------------------------------------------------------------
// Preferences
// --------------------------------------------------------------------

// GetPreferences returns this application's preferences for the user.
func (c *Client) GetPreferences(ctx context.Context, token string) (Preferences, error) {
	return api.GetPreferences(ctx, c.rest, c.serviceHost, c.accessToken(token))
}

// UpdatePreferences sets the given preferences.
func (c *Client) UpdatePreferences(ctx context.Context, token string, prefs Preferences) (*Response, error) {
	return api.UpdatePreferences(ctx, c.rest, c.serviceHost, c.accessToken(token), prefs)
}

// DeletePreference removes a preference by posting DeletePreferenceValue for it.
func (c *Client) DeletePreference(ctx context.Context, token, key string) (*Response, error) {
	return api.DeletePreference(ctx, c.rest, c.serviceHost, c.accessToken(token), key)
}
