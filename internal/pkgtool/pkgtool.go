package pkgtool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"slices"

	"github.com/raphi011/aurx/internal/cmd"
	"github.com/raphi011/aurx/internal/config"
)

// Action is an external command applied to one working copy.
// dir is the working copy path, name its package ID.
type Action interface {
	Run(ctx context.Context, dir, name string) error
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Name    string // package ID
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Command, e.Name, e.Code)
}

// runner runs a command with inherited stdio and returns its exit code.
type runner func(ctx context.Context, dir string, env []string, name string, args ...string) (int, error)

// Builder builds and installs a package from its working copy.
type Builder struct {
	Command       string
	Args          []string
	NoConfirmFlag string
	Interactive   bool

	run runner
}

// NewBuilder creates a Builder from the [build] config section.
func NewBuilder(cfg config.BuildConfig, interactive bool) *Builder {
	return &Builder{
		Command:       cfg.Command,
		Args:          cfg.Args,
		NoConfirmFlag: cfg.NoConfirmFlag,
		Interactive:   interactive,
		run:           cmd.Interactive,
	}
}

// Run executes "<command> <args...> <name> [no-confirm]" in dir with PWD
// pointing at dir.
func (b *Builder) Run(ctx context.Context, dir, name string) error {
	args := commandArgs(b.Args, name, b.NoConfirmFlag, b.Interactive)
	env := []string{"PWD=" + dir}
	run := b.run
	if run == nil {
		run = cmd.Interactive
	}
	code, err := run(ctx, dir, env, b.Command, args...)
	return result(b.Command, name, code, err)
}

// Uninstaller removes an installed package from the system.
type Uninstaller struct {
	Command       string
	Args          []string
	NoConfirmFlag string
	Interactive   bool
	Sudo          string // config.SudoAuto, SudoAlways or SudoNever

	run  runner
	euid func() int
}

// NewUninstaller creates an Uninstaller from the [remove] config section.
func NewUninstaller(cfg config.RemoveConfig, interactive bool) *Uninstaller {
	return &Uninstaller{
		Command:       cfg.Command,
		Args:          cfg.Args,
		NoConfirmFlag: cfg.NoConfirmFlag,
		Interactive:   interactive,
		Sudo:          cfg.Sudo,
		run:           cmd.Interactive,
		euid:          os.Geteuid,
	}
}

// Run executes "[sudo] <command> <args...> <name> [no-confirm]".
// The working directory is left unchanged; dir is not used.
func (u *Uninstaller) Run(ctx context.Context, _, name string) error {
	command, args := u.Command, commandArgs(u.Args, name, u.NoConfirmFlag, u.Interactive)
	if u.needsSudo() {
		args = append([]string{command}, args...)
		command = "sudo"
	}
	run := u.run
	if run == nil {
		run = cmd.Interactive
	}
	code, err := run(ctx, "", nil, command, args...)
	return result(command, name, code, err)
}

func (u *Uninstaller) needsSudo() bool {
	switch u.Sudo {
	case config.SudoAlways:
		return true
	case config.SudoNever:
		return false
	default:
		euid := u.euid
		if euid == nil {
			euid = os.Geteuid
		}
		return euid() != 0
	}
}

func commandArgs(base []string, name, noConfirm string, interactive bool) []string {
	args := append(slices.Clone(base), name)
	if !interactive && noConfirm != "" {
		args = append(args, noConfirm)
	}
	return args
}

// result converts a runner result into an Action error.
func result(command, name string, code int, err error) error {
	if err != nil {
		return fmt.Errorf("run %s for %s: %w", command, name, err)
	}
	if code != 0 {
		return &ExitError{Name: name, Command: command, Code: code}
	}
	return nil
}

// Check verifies that command is available in PATH.
func Check(command string) error {
	if _, err := exec.LookPath(command); err != nil {
		return fmt.Errorf("%s not found: please install it or set the command in %s", command, configHint())
	}
	return nil
}

func configHint() string {
	if p, err := config.Path(); err == nil {
		return p
	}
	return "the config file"
}
