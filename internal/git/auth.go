package git

import (
	"strconv"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// AuthCache holds credential material for one batch of clones.
// It is not safe for concurrent use; batches run sequentially.
type AuthCache struct {
	auth       transport.AuthMethod
	scope      string // protocol, host and port the credentials were asked for
	negotiated bool
}

// NewAuthCache returns an empty cache. Clones start without credentials.
func NewAuthCache() *AuthCache {
	return &AuthCache{}
}

// Auth returns the cached auth method, nil before any negotiation.
func (c *AuthCache) Auth() transport.AuthMethod {
	return c.auth
}

// For returns the cached auth method if it was negotiated for the same
// protocol, host and port as remoteURL, nil otherwise. Credentials are
// never sent to a remote that did not ask for them.
func (c *AuthCache) For(remoteURL string) transport.AuthMethod {
	if c.auth == nil {
		return nil
	}
	scope, ok := endpointScope(remoteURL)
	if !ok || scope != c.scope {
		return nil
	}
	return c.auth
}

// Negotiated reports whether a negotiation has been attempted.
func (c *AuthCache) Negotiated() bool {
	return c.negotiated
}

// store records a negotiation attempt for remoteURL. A failed attempt
// stores nil auth but still counts, so the user is not asked again within
// the batch.
func (c *AuthCache) store(remoteURL string, auth transport.AuthMethod) {
	c.negotiated = true
	c.auth = nil
	c.scope = ""
	if auth == nil {
		return
	}
	if scope, ok := endpointScope(remoteURL); ok {
		c.auth = auth
		c.scope = scope
	}
}

func endpointScope(remoteURL string) (string, bool) {
	ep, err := transport.NewEndpoint(remoteURL)
	if err != nil || ep.Host == "" {
		return "", false
	}
	return ep.Protocol + "://" + ep.Host + ":" + strconv.Itoa(ep.Port), true
}
