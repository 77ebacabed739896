package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/aur"
	"github.com/raphi011/aurx/internal/batch"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/output"
	"github.com/raphi011/aurx/internal/ui/progress"
)

type searchCmd struct {
	baseURL  string
	keywords []string
	spinner  bool
}

func (c *searchCmd) run(ctx context.Context) batch.Outcome {
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)
	var out batch.Outcome

	client := &aur.Client{
		BaseURL: c.baseURL,
		HTTP:    &http.Client{Timeout: aur.DefaultTimeout},
	}

	var pkgs []aur.Package
	err := progress.While(os.Stderr, c.spinner, "Searching the AUR...", func() error {
		var err error
		pkgs, err = client.Search(ctx, c.keywords)
		return err
	})
	if err != nil {
		l.Printf("%v\n", err)
		out.Fail()
		return out
	}

	for _, pkg := range pkgs {
		p.Println(aur.FormatEntry(pkg, p.Width()))
	}
	return out
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <keywords...>",
		Short:   "Search the AUR",
		Aliases: []string{"s"},
		GroupID: GroupPackages,
		Args:    cobra.MinimumNArgs(1),
		Long: `Search package names and descriptions on the AUR.

Results are sorted by popularity, most popular first.`,
		Example: `  aurx search yay
  aurx s aur helper`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return runVariant(ctx, batch.Outcome{}, &searchCmd{
				baseURL:  cfg.BaseURL,
				keywords: args,
				spinner:  !quiet && isTerminal(os.Stderr),
			})
		},
	}

	return cmd
}
