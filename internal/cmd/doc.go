// Package cmd runs external commands that talk to the user directly
// (makepkg, pacman, sudo).
//
// [Interactive] inherits stdio and returns the exit code as-is, since it
// is the only success signal those tools give. In verbose mode the command
// line and its duration are echoed through the context logger.
//
// # Usage
//
//	code, err := cmd.Interactive(ctx, dir, nil, "makepkg", "-sirc", "yay")
package cmd
