package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/batch"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/output"
	"github.com/raphi011/aurx/internal/repo"
	"github.com/raphi011/aurx/internal/ui/static"
)

type listCmd struct {
	root    string
	targets []location.Location
	regex   bool
	long    bool
}

func (c *listCmd) run(ctx context.Context) batch.Outcome {
	p := output.FromContext(ctx)
	ls := &batch.Lister{
		Root:      c.root,
		Regex:     c.regex,
		OnNoMatch: suggestMatches,
	}

	if !c.long {
		return ls.List(ctx, c.targets, func(path string) {
			p.Println(filepath.Base(path))
		})
	}

	now := time.Now()
	var rows [][]string
	out := ls.List(ctx, c.targets, func(path string) {
		rows = append(rows, static.PackageTableRow(repo.Describe(path), now))
	})
	p.Printf("%s", static.RenderTable(static.PackageHeaders, rows))
	return out
}

func newListCmd() *cobra.Command {
	var (
		regex bool
		long  bool
	)

	cmd := &cobra.Command{
		Use:               "list [targets...]",
		Short:             "List installed packages",
		Aliases:           []string{"ls"},
		GroupID:           GroupPackages,
		ValidArgsFunction: completeInstalled,
		Long: `List packages in the source tree.

Without targets every package is listed. With --regex each target is a
regular expression that must match the whole package id. Patterns are
used as written: no ".git" suffix is stripped and "/" is not rewritten.`,
		Example: `  aurx list                # All packages
  aurx list -r 'python-.*' # Packages matching a pattern
  aurx list -l             # Table with version and last update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			targets, pre := resolveTargets(ctx, cfg.BaseURL, args, true, regex)
			return runVariant(ctx, pre, &listCmd{
				root:    cfg.SrcDir,
				targets: targets,
				regex:   regex,
				long:    long,
			})
		},
	}

	cmd.Flags().BoolVarP(&regex, "regex", "r", false, "Match targets as regular expressions")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show version, last update and path")

	return cmd
}
