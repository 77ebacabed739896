package repo

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/raphi011/aurx/internal/location"
)

// setupRoot creates a source root with the given package directories and a
// stray file that must never match.
func setupRoot(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "foo.log"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func ids(in ...string) []location.Location {
	locs := make([]location.Location, len(in))
	for i, id := range in {
		locs[i] = location.Location{Raw: id, RemoteURL: "https://aur.archlinux.org/" + id, ID: id}
	}
	return locs
}

func sentinel() location.Location {
	return location.Location{RemoteURL: "https://aur.archlinux.org/"}
}

func collect(t *testing.T, root string, targets []location.Location, useRegex bool) []string {
	t.Helper()
	seq, err := MatchingExisting(root, targets, useRegex)
	if err != nil {
		t.Fatalf("MatchingExisting() error = %v", err)
	}
	var names []string
	for p := range seq {
		if !filepath.IsAbs(p) {
			t.Errorf("yielded relative path %q", p)
		}
		if filepath.Dir(p) != root {
			t.Errorf("yielded %q outside root %q", p, root)
		}
		names = append(names, filepath.Base(p))
	}
	slices.Sort(names)
	return names
}

func TestMatchingExisting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		targets  []location.Location
		useRegex bool
		want     []string
	}{
		{"no targets", nil, false, nil},
		{"no targets regex", nil, true, nil},
		{"exact", ids("foo"), false, []string{"foo"}},
		{"exact is literal", ids("foo.*"), false, nil},
		{"regex prefix", ids("foo.*"), true, []string{"foo", "foobar"}},
		{"regex is anchored", ids("oo"), true, nil},
		{"regex alternation", ids("foo|bar"), true, []string{"bar", "foo"}},
		{"multiple exact", ids("bar", "foobar"), false, []string{"bar", "foobar"}},
		{"unknown", ids("baz"), false, nil},
		{"sentinel matches all", []location.Location{sentinel()}, false, []string{"bar", "foo", "foobar"}},
		{"sentinel with regex", []location.Location{sentinel()}, true, []string{"bar", "foo", "foobar"}},
		{"files never match", ids("foo.log"), false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := setupRoot(t, "foo", "bar", "foobar")
			got := collect(t, root, tt.targets, tt.useRegex)
			if !slices.Equal(got, tt.want) {
				t.Errorf("matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchingExisting_Dedup(t *testing.T) {
	t.Parallel()

	root := setupRoot(t, "foo", "foobar")
	got := collect(t, root, ids("foo", "foo.*", "foo"), true)
	want := []string{"foo", "foobar"}
	if !slices.Equal(got, want) {
		t.Errorf("matches = %v, want each directory once: %v", got, want)
	}
}

func TestMatchingExisting_BadPattern(t *testing.T) {
	t.Parallel()

	root := setupRoot(t, "foo")
	seq, err := MatchingExisting(root, ids("foo", "(unclosed"), true)
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PatternError", err)
	}
	if perr.Pattern != "(unclosed" {
		t.Errorf("Pattern = %q, want (unclosed", perr.Pattern)
	}
	if seq != nil {
		t.Error("sequence should be nil on pattern error")
	}

	// The same ID is fine as an exact name
	if _, err := MatchingExisting(root, ids("(unclosed"), false); err != nil {
		t.Errorf("exact match with regex metacharacters error = %v", err)
	}
}

func TestMatchingExisting_MissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "does-not-exist")
	got := collect(t, root, []location.Location{sentinel()}, false)
	if len(got) != 0 {
		t.Errorf("matches = %v, want none", got)
	}
}

func TestMatchingExisting_RootIsFile(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(root, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := MatchingExisting(root, ids("foo"), false)
	var ferr *FilesystemError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FilesystemError", err)
	}
	if ferr.Path != root {
		t.Errorf("Path = %q, want %q", ferr.Path, root)
	}
}

func TestMatchingExisting_Unreadable(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions not enforced")
	}

	root := setupRoot(t, "foo")
	if err := os.Chmod(root, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(root, 0755) })

	_, err := MatchingExisting(root, ids("foo"), false)
	var ferr *FilesystemError
	if !errors.As(err, &ferr) {
		t.Errorf("error = %v, want *FilesystemError", err)
	}
}

func TestMatchingExisting_Symlink(t *testing.T) {
	t.Parallel()

	root := setupRoot(t)
	elsewhere := t.TempDir()
	if err := os.Symlink(elsewhere, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	got := collect(t, root, ids("linked"), false)
	if !slices.Equal(got, []string{"linked"}) {
		t.Errorf("matches = %v, want [linked]", got)
	}
}

func TestMatchingExisting_ReadsEachCall(t *testing.T) {
	t.Parallel()

	root := setupRoot(t)
	if got := collect(t, root, ids("late"), false); len(got) != 0 {
		t.Fatalf("matches = %v before creation", got)
	}
	if err := os.Mkdir(filepath.Join(root, "late"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := collect(t, root, ids("late"), false); !slices.Equal(got, []string{"late"}) {
		t.Errorf("matches = %v after creation, want [late]", got)
	}
}

func TestMatchingExisting_EarlyStop(t *testing.T) {
	t.Parallel()

	root := setupRoot(t, "a", "b", "c")
	seq, err := MatchingExisting(root, []location.Location{sentinel()}, false)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times, want 1", n)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	root := setupRoot(t, "yay", "paru")
	names, err := Names(root)
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"paru", "yay"}) {
		t.Errorf("Names() = %v, want [paru yay]", names)
	}

	names, err = Names(filepath.Join(root, "missing"))
	if err != nil || len(names) != 0 {
		t.Errorf("Names(missing) = %v, %v, want empty", names, err)
	}
}
