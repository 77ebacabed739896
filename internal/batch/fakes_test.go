package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/aurx/internal/git"
	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
)

var errBoom = errors.New("boom")

// fakeCloner creates dest on success. A failing id leaves a partial
// directory behind, like an interrupted transfer.
type fakeCloner struct {
	fail   map[string]error
	ids    []string
	caches []*git.AuthCache
}

func (f *fakeCloner) Clone(_ context.Context, dest, id, _ string, cache *git.AuthCache) error {
	f.ids = append(f.ids, id)
	f.caches = append(f.caches, cache)
	if err := os.MkdirAll(filepath.Join(dest, ".git"), 0755); err != nil {
		return err
	}
	return f.fail[id]
}

// fakeAction records the working copies it ran in.
type fakeAction struct {
	fail  map[string]error
	names []string
	dirs  []string
}

func (f *fakeAction) Run(_ context.Context, dir, name string) error {
	f.names = append(f.names, name)
	f.dirs = append(f.dirs, dir)
	return f.fail[name]
}

func targets(ids ...string) []location.Location {
	locs := make([]location.Location, len(ids))
	for i, id := range ids {
		locs[i] = location.Location{Raw: id, RemoteURL: "https://aur.archlinux.org/" + id, ID: id}
	}
	return locs
}

func allTarget() location.Location {
	return location.Location{RemoteURL: "https://aur.archlinux.org/"}
}

// testContext returns a context whose logger writes to the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return log.WithLogger(context.Background(), log.New(&buf, true, false)), &buf
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(root, n), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
