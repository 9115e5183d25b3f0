package client

// Warning is a non-fatal condition the client recovered from on its own.
type Warning struct {
	Op      string
	Message string
}

func (w Warning) String() string { return w.Op + ": " + w.Message }

func (c *Client) logWarning(w Warning) {
	c.logger.Warn().Str("op", w.Op).Msg(w.Message)
}

// entryIDsTruncated is handed to the .mget call and fires when the id list
// had to be cut.
func (c *Client) entryIDsTruncated(msg string) {
	entryIDsTruncatedTotal.Inc()
	c.onWarning(Warning{Op: "get entries", Message: msg})
}
