package oracle

import "go.uber.org/zap"

// Client wraps an Oracle with found-state tracking. Every probe goes
// through Query; the terminal condition (match count equals guess length)
// is detected here so callers can short-circuit at any phase boundary.
//
// The found flag is sticky: once the secret has been matched in full,
// Found reports true for the rest of the session.
type Client struct {
	oracle  Oracle
	logger  *zap.Logger
	queries int
	found   bool
	secret  string
}

// NewClient returns a Client querying o. logger must not be nil; pass
// zap.NewNop() to silence probe logging.
func NewClient(o Oracle, logger *zap.Logger) *Client {
	return &Client{
		oracle: o,
		logger: logger.With(zap.String("component", "oracle-client")),
	}
}

// Query evaluates guess and returns the raw oracle response.
func (c *Client) Query(guess string) int {
	result := c.oracle.Evaluate(guess)
	c.queries++
	c.logger.Debug("probe",
		zap.Int("query", c.queries),
		zap.String("guess", guess),
		zap.Int("result", result))
	if result == len(guess) {
		c.found = true
		c.secret = guess
		c.logger.Info("secret matched in full",
			zap.String("secret", guess),
			zap.Int("queries", c.queries))
	}
	return result
}

// Found reports whether a probe has matched the secret in full.
func (c *Client) Found() bool {
	return c.found
}

// Secret returns the fully matched guess, or "" if none yet.
func (c *Client) Secret() string {
	return c.secret
}

// Queries returns the number of probes issued through this client.
func (c *Client) Queries() int {
	return c.queries
}
