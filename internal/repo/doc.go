// Package repo finds installed package working copies under the source
// tree.
//
// A working copy is a direct child directory of the source root whose name
// is the package ID. [MatchingExisting] selects those directories by exact
// ID or by anchored regular expression; the fill-empty sentinel location
// selects all of them. The directory listing is read on every call.
package repo
