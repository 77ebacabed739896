// Package location resolves user-supplied package targets into a canonical
// remote URL and a stable, filesystem-safe local identifier.
//
// A target is either a full remote URL ("https://host/path",
// "ssh://git@host/path", "git@host:path") used verbatim, or a shorthand
// appended to the configured base URL ("yay" with base
// "https://aur.archlinux.org/" becomes "https://aur.archlinux.org/yay").
//
// The identifier names the package's directory under the source tree and is
// what list/remove match against. For URLs under the base it is the path
// below the base ("yay"); for foreign URLs it is host and path
// ("github.com-user-repo"). Path separators become [IDSeparator].
//
// Regular expression targets go through [Resolver.ResolvePattern] instead,
// which keeps the input verbatim as the identifier.
package location

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// IDSeparator replaces path separators in identifiers.
const IDSeparator = "-"

// Location is a resolved package source reference. The zero value is not
// meaningful; use a Resolver.
type Location struct {
	Raw       string // original user input
	RemoteURL string // address handed to the clone transport
	ID        string // local directory name and display name
}

// All reports whether l is the fill-empty sentinel that stands for every
// package under the base.
func (l Location) All() bool {
	return l.ID == ""
}

func (l Location) String() string {
	if l.All() {
		return l.RemoteURL
	}
	return l.ID
}

// ParseError reports input that cannot be resolved to a Location.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid target %q: %s", e.Input, e.Reason)
}

// Resolver turns targets into Locations relative to a base URL.
type Resolver struct {
	base string
}

// NewResolver creates a resolver for base, which must be an absolute URL
// with scheme and host. A trailing slash is added when missing.
func NewResolver(base string) (*Resolver, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", base)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Resolver{base: base}, nil
}

// Base returns the normalized base URL.
func (r *Resolver) Base() string {
	return r.base
}

// Sentinel returns the Location representing the base with no sub-path.
func (r *Resolver) Sentinel() Location {
	return Location{RemoteURL: r.base}
}

// Resolve parses a single target.
func (r *Resolver) Resolve(input string) (Location, error) {
	if input == "" {
		return Location{}, &ParseError{Input: input, Reason: "empty target"}
	}
	if i := strings.IndexFunc(input, func(c rune) bool {
		return unicode.IsSpace(c) || unicode.IsControl(c)
	}); i >= 0 {
		return Location{}, &ParseError{Input: input, Reason: "contains whitespace or control characters"}
	}

	var remote string
	switch {
	case strings.Contains(input, "://"):
		u, err := url.Parse(input)
		if err != nil {
			return Location{}, &ParseError{Input: input, Reason: unwrapURLError(err)}
		}
		if u.Host == "" {
			return Location{}, &ParseError{Input: input, Reason: "URL has no host"}
		}
		remote = input
	case isSCPLike(input):
		remote = input
	default:
		path := strings.TrimLeft(input, "/")
		if path == "" {
			return Location{}, &ParseError{Input: input, Reason: "empty package name"}
		}
		remote = r.base + path
	}

	id := r.idFor(remote)
	switch id {
	case "":
		return Location{}, &ParseError{Input: input, Reason: "does not name a package below " + r.base}
	case ".", "..":
		return Location{}, &ParseError{Input: input, Reason: "reserved name"}
	}

	return Location{Raw: input, RemoteURL: remote, ID: id}, nil
}

// ResolveAll resolves every input independently. Failed inputs are reported
// in errs and left out of locs. When inputs is empty and fillEmpty is set,
// the sentinel is returned instead of an empty list.
func (r *Resolver) ResolveAll(inputs []string, fillEmpty bool) (locs []Location, errs []error) {
	return r.resolveAll(inputs, fillEmpty, r.Resolve)
}

// ResolvePattern resolves a regular expression target. The input is kept
// verbatim as the ID, without the separator, ".git" and reserved-name
// normalization of Resolve, so it matches directory names exactly as
// written. Pattern syntax is checked by the matcher.
func (r *Resolver) ResolvePattern(input string) (Location, error) {
	if input == "" {
		return Location{}, &ParseError{Input: input, Reason: "empty pattern"}
	}
	return Location{Raw: input, RemoteURL: r.base + input, ID: input}, nil
}

// ResolvePatterns is ResolveAll for regular expression targets.
func (r *Resolver) ResolvePatterns(inputs []string, fillEmpty bool) (locs []Location, errs []error) {
	return r.resolveAll(inputs, fillEmpty, r.ResolvePattern)
}

func (r *Resolver) resolveAll(inputs []string, fillEmpty bool, resolve func(string) (Location, error)) (locs []Location, errs []error) {
	if len(inputs) == 0 {
		if fillEmpty {
			return []Location{r.Sentinel()}, nil
		}
		return nil, nil
	}
	for _, in := range inputs {
		loc, err := resolve(in)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locs = append(locs, loc)
	}
	return locs, errs
}

// idFor derives the identifier from a remote URL. Equal URLs always give
// equal identifiers.
func (r *Resolver) idFor(remote string) string {
	s, underBase := strings.CutPrefix(remote, r.base)
	if !underBase {
		s = stripScheme(remote)
	}

	s = strings.TrimRight(s, "/")
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimRight(s, "/")
	s = strings.TrimLeft(s, "/")

	return strings.ReplaceAll(s, "/", IDSeparator)
}

// stripScheme removes "scheme://", any userinfo, and turns the scp-style
// "host:path" separator into a slash.
func stripScheme(remote string) string {
	if _, rest, ok := strings.Cut(remote, "://"); ok {
		if at := strings.Index(rest, "@"); at >= 0 && at < strings.IndexByte(rest+"/", '/') {
			rest = rest[at+1:]
		}
		return rest
	}
	// scp-like user@host:path
	if at := strings.Index(remote, "@"); at >= 0 {
		remote = remote[at+1:]
	}
	return strings.Replace(remote, ":", "/", 1)
}

// isSCPLike matches "user@host:path" remotes.
func isSCPLike(s string) bool {
	at := strings.Index(s, "@")
	colon := strings.Index(s, ":")
	slash := strings.Index(s, "/")
	return at > 0 && colon > at+1 && (slash < 0 || colon < slash) && colon < len(s)-1
}

func unwrapURLError(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err.Error()
	}
	return err.Error()
}
