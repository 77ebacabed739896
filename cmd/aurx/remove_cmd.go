package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/batch"
	"github.com/raphi011/aurx/internal/config"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/pkgtool"
)

type removeCmd struct {
	root        string
	targets     []location.Location
	remove      config.RemoveConfig
	regex       bool
	force       bool
	interactive bool

	// confirm overrides the terminal prompt in tests
	confirm batch.ConfirmFunc
}

func (c *removeCmd) run(ctx context.Context) batch.Outcome {
	confirm := c.confirm
	if confirm == nil {
		confirm = newConfirm()
	}
	rm := &batch.Remover{
		Root:        c.root,
		Uninstaller: pkgtool.NewUninstaller(c.remove, c.interactive),
		Confirm:     confirm,
		Force:       c.force,
		Regex:       c.regex,
		OnNoMatch:   suggestMatches,
	}
	return rm.Remove(ctx, c.targets)
}

func newRemoveCmd() *cobra.Command {
	var (
		regex       bool
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:               "remove <targets...>",
		Short:             "Uninstall packages and delete their sources",
		Aliases:           []string{"rm", "uninstall"},
		GroupID:           GroupPackages,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeInstalled,
		Long: `Uninstall packages with pacman and delete their working copies.

Each package is confirmed before anything is removed. The working copy
is only deleted after a successful uninstall, unless --force is given,
which also skips confirmation.

With --regex each target is a regular expression that must match the
whole package id, used as written.`,
		Example: `  aurx remove yay            # Confirm, uninstall, delete
  aurx rm -r 'python-.*'     # Every package matching a pattern
  aurx rm yay -f             # No confirmation, delete even if pacman fails`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			targets, pre := resolveTargets(ctx, cfg.BaseURL, args, false, regex)
			return runVariant(ctx, pre, &removeCmd{
				root:        cfg.SrcDir,
				targets:     targets,
				remove:      cfg.Remove,
				regex:       regex,
				force:       force,
				interactive: interactive,
			})
		},
	}

	cmd.Flags().BoolVarP(&regex, "regex", "r", false, "Match targets as regular expressions")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation and delete even if uninstall fails")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run pacman interactively")

	return cmd
}
