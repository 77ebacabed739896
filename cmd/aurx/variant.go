package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/aurx/internal/batch"
	"github.com/raphi011/aurx/internal/git"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/repo"
	"github.com/raphi011/aurx/internal/ui/prompt"
)

// variant is one parsed package command with its validated options.
type variant interface {
	run(ctx context.Context) batch.Outcome
}

// exitError carries a non-zero exit code out of a command. It is never
// printed; the per-target messages were logged while the batch ran.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// runVariant runs v and folds its failures into pre, the outcome of
// resolving its targets. Any failure is returned as an *exitError.
func runVariant(ctx context.Context, pre batch.Outcome, v variant) error {
	out := pre
	out.Add(v.run(ctx))
	if out.OK() {
		return nil
	}
	log.FromContext(ctx).Debug("finished", "errors", out.Errors)
	return &exitError{code: out.ExitCode()}
}

// resolveTargets turns arguments into Locations against the configured
// base. Every argument that fails to resolve is logged and counted. With
// regex set the arguments are kept verbatim as patterns.
func resolveTargets(ctx context.Context, base string, args []string, fillEmpty, regex bool) ([]location.Location, batch.Outcome) {
	l := log.FromContext(ctx)
	var out batch.Outcome

	r, err := location.NewResolver(base)
	if err != nil {
		l.Printf("%v\n", err)
		out.Fail()
		return nil, out
	}

	resolve := r.ResolveAll
	if regex {
		resolve = r.ResolvePatterns
	}
	locs, errs := resolve(args, fillEmpty)
	for _, err := range errs {
		l.Printf("%v\n", err)
		out.Fail()
	}
	return locs, out
}

// interactiveTerminal reports whether prompts can be shown: they read
// stdin and render on stderr.
func interactiveTerminal() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newConfirm returns a yes/no prompt, or nil without a terminal.
func newConfirm() batch.ConfirmFunc {
	if !interactiveTerminal() {
		return nil
	}
	return func(_ context.Context, question string) (bool, error) {
		res, err := prompt.Confirm(question)
		if err != nil {
			return false, err
		}
		return res.Confirmed && !res.Cancelled, nil
	}
}

// newNegotiator returns a credential prompt, or nil without a terminal.
// Without one, clones needing credentials fail instead of hanging.
func newNegotiator() git.Negotiator {
	if !interactiveTerminal() {
		return nil
	}
	return git.PromptNegotiator{Ask: askCredential}
}

func askCredential(question string, secret bool) (string, error) {
	var (
		res prompt.TextInputResult
		err error
	)
	if secret {
		res, err = prompt.Password(question)
	} else {
		res, err = prompt.TextInput(question, "")
	}
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", git.ErrCancelled
	}
	return res.Value, nil
}

// suggestMatches reports targets that matched nothing, with up to a few
// similarly named installed packages.
func suggestMatches(ctx context.Context, root string, targets []location.Location) {
	l := log.FromContext(ctx)
	names, err := repo.Names(root)
	if err != nil {
		l.Debug("list installed", "error", err)
	}

	for _, t := range targets {
		msg := fmt.Sprintf("no installed package matches %q", t.ID)
		if similar := repo.Suggest(t.ID, names); len(similar) > 0 {
			msg += ", did you mean " + strings.Join(similar, ", ") + "?"
		}
		l.Println(msg)
	}
}
