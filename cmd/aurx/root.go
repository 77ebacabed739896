package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/aurx/internal/config"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/output"
	"github.com/raphi011/aurx/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	srcDir  string

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupPackages = "packages"
	GroupConfig   = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aurx",
	Short: "Manage AUR package sources",
	Long: `aurx clones PKGBUILD repositories from the AUR (or any git remote)
into a local source tree and drives makepkg and pacman over them.

Targets are package names relative to the AUR base URL, or full
remote URLs. Each package lives in <src_dir>/<id>.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if srcDir != "" {
			if err := cfg.SetSrcDir(srcDir); err != nil {
				return err
			}
		}

		// Completion must not query the terminal
		if cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == "help" {
			return nil
		}

		styles.Init(cfg.Theme)

		// Diagnostics go to stderr, downsampled to what it supports
		logger := log.New(colorprofile.NewWriter(os.Stderr, os.Environ()), verbose, quiet)
		ctx := log.WithLogger(cmd.Context(), logger)
		ctx = output.WithPrinter(ctx, output.New(os.Stdout))
		cmd.SetContext(ctx)

		logger.Debug("config", "src_dir", cfg.SrcDir, "base_url", cfg.BaseURL)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command, runs it and exits
// with the resulting code.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd.SetContext(ctx)
	err = rootCmd.Execute()
	cancel()

	os.Exit(exitCode(err))
}

// exitCode maps the result of a command to the process exit code. Batch
// commands report their error count; any other error is printed and
// exits 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'aurx -h' for help")
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&srcDir, "src-dir", "", "Source tree root (overrides src_dir and "+config.EnvSrcDir+")")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkPersistentFlagDirname("src-dir")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPackages, Title: "Package Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Package commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newSearchCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
