package cmd

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/aurx/internal/log"
)

// Interactive runs name with inherited stdio in dir and returns its exit code.
// extraEnv entries ("KEY=value") are appended to the current environment.
// The error is non-nil only when the process could not be run at all, in
// which case the code is -1.
func Interactive(ctx context.Context, dir string, extraEnv []string, name string, args ...string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		c.Env = append(os.Environ(), extraEnv...)
	}

	err := c.Run()
	done(time.Since(start))
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
