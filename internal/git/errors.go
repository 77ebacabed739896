package git

import (
	"errors"
	"fmt"
	"net"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	platformerrors "github.com/jmgilman/go/errors"
)

// CloneError reports a failed clone of one package.
type CloneError struct {
	ID  string
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone %s from %s: %v", e.ID, e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Code returns the classified error code of the failure.
func (e *CloneError) Code() platformerrors.ErrorCode {
	return platformerrors.GetCode(e.Err)
}

// Transient reports whether re-running the command may succeed.
func (e *CloneError) Transient() bool {
	return platformerrors.IsRetryable(e.Err)
}

// classify wraps a go-git error with a platform error code.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var code platformerrors.ErrorCode
	var msg string
	var netErr net.Error

	switch {
	case errors.Is(err, transport.ErrAuthenticationRequired):
		code, msg = platformerrors.CodeUnauthorized, "authentication required"
	case errors.Is(err, transport.ErrAuthorizationFailed):
		code, msg = platformerrors.CodeUnauthorized, "authorization failed"
	case errors.Is(err, transport.ErrRepositoryNotFound):
		code, msg = platformerrors.CodeNotFound, "repository not found"
	case errors.Is(err, transport.ErrEmptyRemoteRepository):
		code, msg = platformerrors.CodeNotFound, "remote repository is empty"
	case errors.Is(err, gogit.ErrRepositoryAlreadyExists):
		code, msg = platformerrors.CodeAlreadyExists, "destination already contains a repository"
	case errors.As(err, &netErr):
		code, msg = platformerrors.CodeNetwork, "network failure"
	default:
		code, msg = platformerrors.CodeExecutionFailed, "clone failed"
	}

	return platformerrors.Wrap(err, code, msg)
}

// isAuthError reports whether err asks for (other) credentials.
func isAuthError(err error) bool {
	return errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed)
}
