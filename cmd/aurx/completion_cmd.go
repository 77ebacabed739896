package main

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/repo"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate completion script",
		GroupID:   GroupConfig,
		Long:      `Generate shell completion script.`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		Example: `  # Fish
  aurx completion fish > ~/.config/fish/completions/aurx.fish

  # Bash
  aurx completion bash > ~/.local/share/bash-completion/completions/aurx

  # Zsh
  aurx completion zsh > ~/.zfunc/_aurx
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeInstalled completes the ids of installed packages, skipping
// ones already on the command line.
func completeInstalled(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names, err := repo.Names(cfg.SrcDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterCompletions(names, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterCompletions(names, used []string, prefix string) []string {
	var out []string
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) || slices.Contains(used, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
