package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// ErrCancelled is returned when the user aborts a credential prompt.
var ErrCancelled = errors.New("credential prompt cancelled")

// Negotiator obtains credentials for a remote interactively or from an
// external source.
type Negotiator interface {
	Negotiate(ctx context.Context, id, remoteURL string) (transport.AuthMethod, error)
}

// Asker asks the user a question. Secret answers must not be echoed.
// Cancellation is reported as ErrCancelled.
type Asker func(question string, secret bool) (string, error)

// PromptNegotiator asks for HTTP basic credentials or an SSH key.
type PromptNegotiator struct {
	Ask Asker
}

// Negotiate implements Negotiator.
func (p PromptNegotiator) Negotiate(ctx context.Context, id, remoteURL string) (transport.AuthMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ep, err := transport.NewEndpoint(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote: %w", err)
	}

	switch ep.Protocol {
	case "http", "https":
		return p.basic(ep)
	case "ssh":
		return p.sshKey(ep)
	default:
		return nil, fmt.Errorf("%s remotes do not take credentials", ep.Protocol)
	}
}

func (p PromptNegotiator) basic(ep *transport.Endpoint) (transport.AuthMethod, error) {
	user := ep.User
	if user == "" {
		var err error
		user, err = p.Ask(fmt.Sprintf("Username for %s://%s", ep.Protocol, ep.Host), false)
		if err != nil {
			return nil, err
		}
	}
	pass, err := p.Ask(fmt.Sprintf("Password for %s@%s", user, ep.Host), true)
	if err != nil {
		return nil, err
	}
	return &http.BasicAuth{Username: user, Password: pass}, nil
}

func (p PromptNegotiator) sshKey(ep *transport.Endpoint) (transport.AuthMethod, error) {
	user := ep.User
	if user == "" {
		user = "git"
	}

	keyPath, err := p.Ask(fmt.Sprintf("SSH private key for %s@%s (empty for ssh-agent)", user, ep.Host), false)
	if err != nil {
		return nil, err
	}
	keyPath = strings.TrimSpace(keyPath)
	if keyPath == "" {
		return ssh.NewSSHAgentAuth(user)
	}
	if rest, ok := strings.CutPrefix(keyPath, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			keyPath = filepath.Join(home, rest)
		}
	}

	pass, err := p.Ask("Key passphrase (empty for none)", true)
	if err != nil {
		return nil, err
	}
	return ssh.NewPublicKeysFromFile(user, keyPath, pass)
}
