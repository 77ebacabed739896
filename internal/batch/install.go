package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/aurx/internal/git"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/pkgtool"
	"github.com/raphi011/aurx/internal/ui/styles"
)

// Cloner materializes a remote at dest. *git.Cloner implements it.
type Cloner interface {
	Clone(ctx context.Context, dest, id, remoteURL string, cache *git.AuthCache) error
}

// Installer clones missing targets and builds every resulting working copy.
type Installer struct {
	Root    string
	Cloner  Cloner
	Builder pkgtool.Action

	// Delete removes a partial working copy. Defaults to git.ForceRemove.
	Delete func(path string) error
}

// Install runs both phases over targets and returns the failure count.
func (in *Installer) Install(ctx context.Context, targets []location.Location) Outcome {
	l := log.FromContext(ctx)

	paths, out := in.materialize(ctx, targets)
	if len(paths) > 0 {
		l.Debug("building", "count", len(paths))
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			l.Printf("aborted: %v\n", err)
			out.Fail()
			return out
		}
		name := filepath.Base(path)
		if err := in.Builder.Run(ctx, path, name); err != nil {
			out.Fail()
			l.Status(styles.StatusWord(styles.StatusFailed), fmt.Sprintf("%s: %v", name, err))
			continue
		}
		l.Status(styles.StatusWord(styles.StatusInstalled), name)
	}
	return out
}

// materialize makes sure every target has a working copy and returns their
// paths in target order, each at most once.
func (in *Installer) materialize(ctx context.Context, targets []location.Location) ([]string, Outcome) {
	l := log.FromContext(ctx)
	var out Outcome
	cache := git.NewAuthCache()
	seen := make(map[string]bool, len(targets))
	paths := make([]string, 0, len(targets))

	for _, t := range targets {
		if t.All() {
			l.Printf("install needs an explicit package, got %s\n", t.RemoteURL)
			out.Fail()
			continue
		}

		dest := filepath.Join(in.Root, t.ID)
		if seen[dest] {
			continue
		}

		if git.Exists(dest) {
			l.Debug("reusing working copy", "id", t.ID, "path", dest)
			seen[dest] = true
			paths = append(paths, dest)
			continue
		}

		if err := os.MkdirAll(in.Root, 0755); err != nil {
			out.Fail()
			l.Status(styles.StatusWord(styles.StatusFailed), fmt.Sprintf("%s: create %s: %v", t.ID, in.Root, err))
			continue
		}

		if err := in.Cloner.Clone(ctx, dest, t.ID, t.RemoteURL, cache); err != nil {
			out.Fail()
			l.Status(styles.StatusWord(styles.StatusFailed), t.ID)
			l.Printf("  %v\n", err)
			var cerr *git.CloneError
			if errors.As(err, &cerr) && cerr.Transient() {
				l.Printf("  temporary failure, re-running may succeed\n")
			}
			if rmErr := in.delete(dest); rmErr != nil {
				l.Printf("  cleanup: %v\n", rmErr)
			}
			continue
		}

		l.Status(styles.StatusWord(styles.StatusDone), t.ID)
		seen[dest] = true
		paths = append(paths, dest)
	}
	return paths, out
}

func (in *Installer) delete(path string) error {
	if in.Delete != nil {
		return in.Delete(path)
	}
	return git.ForceRemove(path)
}
