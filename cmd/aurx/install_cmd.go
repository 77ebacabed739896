package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/batch"
	"github.com/raphi011/aurx/internal/config"
	"github.com/raphi011/aurx/internal/git"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/pkgtool"
)

type installCmd struct {
	root        string
	targets     []location.Location
	build       config.BuildConfig
	interactive bool

	// cloner overrides the go-git cloner in tests
	cloner batch.Cloner
}

func (c *installCmd) run(ctx context.Context) batch.Outcome {
	cloner := c.cloner
	if cloner == nil {
		cloner = git.NewCloner(newNegotiator(), cloneProgress(ctx))
	}
	in := &batch.Installer{
		Root:    c.root,
		Cloner:  cloner,
		Builder: pkgtool.NewBuilder(c.build, c.interactive),
	}
	return in.Install(ctx, c.targets)
}

// cloneProgress returns where git progress goes: the log in verbose mode,
// nowhere otherwise.
func cloneProgress(ctx context.Context) io.Writer {
	l := log.FromContext(ctx)
	if !l.IsVerbose() {
		return nil
	}
	return l.Writer()
}

func newInstallCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:     "install <targets...>",
		Short:   "Clone and build packages",
		Aliases: []string{"i"},
		GroupID: GroupPackages,
		Args:    cobra.MinimumNArgs(1),
		Long: `Clone packages into the source tree and build them with makepkg.

Packages that are already cloned are rebuilt from their working copy.
Credentials are asked at most once per invocation. A failed clone or
build does not stop the remaining packages; the exit code is the number
of packages that failed.`,
		Example: `  aurx install yay                                # Clone and build yay
  aurx install yay paru -i                        # Let makepkg ask before installing
  aurx install https://github.com/user/pkg.git    # Any git remote`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := pkgtool.Check(cfg.Build.Command); err != nil {
				return err
			}

			targets, pre := resolveTargets(ctx, cfg.BaseURL, args, false, false)
			return runVariant(ctx, pre, &installCmd{
				root:        cfg.SrcDir,
				targets:     targets,
				build:       cfg.Build,
				interactive: interactive,
			})
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run makepkg interactively")

	return cmd
}
