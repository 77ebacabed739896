// Package git clones package sources for aurx.
//
// Clones go through go-git rather than the git CLI so credentials can be
// negotiated once and handed to every later clone of the same batch.
//
// # Auth Cache
//
// An [AuthCache] is created per command invocation and passed by pointer
// into every [Cloner.Clone] of that batch. The first clone that hits an
// authentication error negotiates credentials through the [Negotiator];
// the result, good or bad, is stored and reused. Later clones never prompt
// again. Stored credentials are bound to the endpoint they were negotiated
// for (protocol, host and port); a clone of any other endpoint runs without
// them. Nothing is written to disk and two caches never share state.
//
// # Failure Cleanup
//
// A failed clone can leave a partial working copy behind. Callers remove it
// with [ForceRemove] so an existing directory always means "installed".
//
// # Errors
//
// Failures are returned as [*CloneError], classified onto
// github.com/jmgilman/go/errors codes (UNAUTHORIZED, NOT_FOUND,
// NETWORK_ERROR, ...) for reporting.
package git
