package git

import (
	"context"
	"fmt"
	"io"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/raphi011/aurx/internal/log"
)

// cloneFunc performs one clone attempt.
type cloneFunc func(ctx context.Context, dest, url string, auth transport.AuthMethod, progress io.Writer) error

// Cloner clones remote package sources into local working copies.
type Cloner struct {
	// Negotiator obtains credentials when a remote rejects the cached ones.
	// Nil means authentication failures are final.
	Negotiator Negotiator

	// Progress receives transfer progress (e.g. os.Stderr in verbose mode).
	Progress io.Writer

	clone cloneFunc
}

// NewCloner creates a Cloner using go-git transport.
func NewCloner(n Negotiator, progress io.Writer) *Cloner {
	return &Cloner{Negotiator: n, Progress: progress, clone: plainClone}
}

// Clone materializes remoteURL at dest. It first tries the credentials in
// cache when they were negotiated for the same endpoint, anonymously
// otherwise. If the remote demands
// credentials and the batch has not negotiated yet, it negotiates once,
// stores the result in cache and retries.
//
// Clone does not check whether dest exists; an existing directory is the
// caller's "already installed" case. On failure dest may be left partially
// populated and should be removed with ForceRemove.
func (c *Cloner) Clone(ctx context.Context, dest, id, remoteURL string, cache *AuthCache) error {
	l := log.FromContext(ctx)
	cached := cache.For(remoteURL)
	l.Debug("cloning", "id", id, "url", remoteURL, "dest", dest, "cached_auth", cached != nil)

	err := c.attempt(ctx, dest, remoteURL, cached)
	if err != nil && isAuthError(err) && !cache.Negotiated() && c.Negotiator != nil {
		l.Debug("remote requires credentials", "id", id)

		// go-git may have created dest before the remote refused us.
		if rmErr := ForceRemove(dest); rmErr != nil {
			return &CloneError{ID: id, URL: remoteURL, Err: classify(rmErr)}
		}

		auth, nerr := c.Negotiator.Negotiate(ctx, id, remoteURL)
		if nerr != nil {
			// a typed nil auth would be used as credentials by later clones
			cache.store(remoteURL, nil)
			return &CloneError{ID: id, URL: remoteURL, Err: classify(fmt.Errorf("negotiate credentials: %w", nerr))}
		}
		cache.store(remoteURL, auth)
		err = c.attempt(ctx, dest, remoteURL, auth)
	}

	if err != nil {
		return &CloneError{ID: id, URL: remoteURL, Err: classify(err)}
	}
	return nil
}

func (c *Cloner) attempt(ctx context.Context, dest, url string, auth transport.AuthMethod) error {
	fn := c.clone
	if fn == nil {
		fn = plainClone
	}
	return fn(ctx, dest, url, auth, c.Progress)
}

func plainClone(ctx context.Context, dest, url string, auth transport.AuthMethod, progress io.Writer) error {
	_, err := gogit.PlainCloneContext(ctx, dest, false, &gogit.CloneOptions{
		URL:      url,
		Auth:     auth,
		Progress: progress,
	})
	return err
}

// ForceRemove deletes path recursively. A missing path is not an error.
func ForceRemove(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists on disk.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
