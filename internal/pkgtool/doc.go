// Package pkgtool runs the external package commands aurx delegates to.
//
// [Builder] runs makepkg inside a working copy; [Uninstaller] runs pacman
// (through sudo when needed) to remove an installed package. Both inherit
// the terminal so the tools can prompt. Both add the configured
// no-confirm flag unless interactive mode is requested.
//
// A command that runs but exits non-zero is an [*ExitError]. A command
// that cannot be started at all is reported with the underlying error.
package pkgtool
