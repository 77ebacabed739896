package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/raphi011/aurx/internal/git"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/pkgtool"
	"github.com/raphi011/aurx/internal/repo"
	"github.com/raphi011/aurx/internal/ui/styles"
)

// ErrNoTerminal is reported for targets that need confirmation when no
// terminal is available to ask.
var ErrNoTerminal = errors.New("confirmation needs a terminal (use --force)")

// ConfirmFunc asks whether to proceed. A false answer skips the target.
type ConfirmFunc func(ctx context.Context, question string) (bool, error)

// NoMatchFunc is called when a batch selected nothing. targets holds only
// the explicitly named targets.
type NoMatchFunc func(ctx context.Context, root string, targets []location.Location)

// Remover uninstalls packages and deletes their working copies.
type Remover struct {
	Root        string
	Uninstaller pkgtool.Action

	// Confirm is asked per package unless Force is set. Nil means no
	// terminal: every unforced target fails with ErrNoTerminal.
	Confirm ConfirmFunc

	// Force skips confirmation and deletes the working copy even when the
	// uninstall fails.
	Force bool
	Regex bool

	// Delete removes a working copy. Defaults to git.ForceRemove.
	Delete func(path string) error

	OnNoMatch NoMatchFunc
}

// Remove processes every working copy selected by targets.
func (r *Remover) Remove(ctx context.Context, targets []location.Location) Outcome {
	l := log.FromContext(ctx)
	var out Outcome

	matches, err := repo.MatchingExisting(r.Root, targets, r.Regex)
	if err != nil {
		l.Printf("%v\n", err)
		out.Fail()
		return out
	}

	matched := 0
	for path := range matches {
		matched++
		if err := ctx.Err(); err != nil {
			l.Printf("aborted: %v\n", err)
			out.Fail()
			return out
		}
		out.Add(r.removeOne(ctx, path))
	}

	if matched == 0 {
		notifyNoMatch(ctx, r.OnNoMatch, r.Root, targets)
	}
	return out
}

func (r *Remover) removeOne(ctx context.Context, path string) Outcome {
	l := log.FromContext(ctx)
	var out Outcome
	name := filepath.Base(path)

	if !r.Force {
		ok, err := r.confirm(ctx, name)
		if err != nil {
			out.Fail()
			l.Status(styles.StatusWord(styles.StatusFailed), fmt.Sprintf("%s: %v", name, err))
			return out
		}
		if !ok {
			l.Status(styles.StatusWord(styles.StatusSkipped), name)
			return out
		}
	}

	uninstallErr := r.Uninstaller.Run(ctx, path, name)
	if uninstallErr != nil {
		out.Fail()
		l.Status(styles.StatusWord(styles.StatusFailed), fmt.Sprintf("%s: %v", name, uninstallErr))
	}

	if uninstallErr != nil && !r.Force {
		return out
	}

	if err := r.delete(path); err != nil {
		out.Fail()
		l.Printf("failed to remove %s: %v\n", path, err)
		return out
	}
	if uninstallErr == nil {
		l.Status(styles.StatusWord(styles.StatusRemoved), name)
	} else {
		l.Debug("deleted working copy after failed uninstall", "path", path)
	}
	return out
}

func (r *Remover) confirm(ctx context.Context, name string) (bool, error) {
	if r.Confirm == nil {
		return false, ErrNoTerminal
	}
	return r.Confirm(ctx, fmt.Sprintf("Remove %s?", name))
}

func (r *Remover) delete(path string) error {
	if r.Delete != nil {
		return r.Delete(path)
	}
	return git.ForceRemove(path)
}

// notifyNoMatch calls fn with the explicit targets, if there are any.
func notifyNoMatch(ctx context.Context, fn NoMatchFunc, root string, targets []location.Location) {
	if fn == nil {
		return
	}
	explicit := make([]location.Location, 0, len(targets))
	for _, t := range targets {
		if !t.All() {
			explicit = append(explicit, t)
		}
	}
	if len(explicit) > 0 {
		fn(ctx, root, explicit)
	}
}
