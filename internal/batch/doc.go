// Package batch applies one command to a list of package targets.
//
// A batch never stops at the first failure: every target is attempted and
// each failure adds one to the [Outcome]. The process exit code is derived
// from the final count, so zero means every target succeeded.
//
// [Installer] runs in two phases. First every target is cloned or reused
// under the source root, sharing one credential cache. A failed clone is
// force-removed so that a directory on disk always means "installed". Then
// the build action runs in each materialized working copy, in order.
//
// [Remover] uninstalls and deletes the working copies selected by the
// targets, asking for confirmation unless forced. [Lister] streams the
// selected working copies.
package batch
