package repo

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// Info summarizes an installed working copy.
type Info struct {
	Name    string
	Version string    // from .SRCINFO, empty when unknown
	Updated time.Time // HEAD commit time, zero when unknown
	Path    string
}

// Describe reads what is known about the working copy at path.
// Unreadable metadata leaves the corresponding field empty.
func Describe(path string) Info {
	info := Info{Name: filepath.Base(path), Path: path}
	info.Version = srcinfoVersion(filepath.Join(path, ".SRCINFO"))
	info.Updated = headTime(path)
	return info
}

// srcinfoVersion returns [epoch:]pkgver-pkgrel from the pkgbase section.
func srcinfoVersion(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var epoch, ver, rel string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		// pkgname sections only repeat overrides; the base values come first
		if strings.HasPrefix(line, "pkgname") {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "epoch":
			epoch = strings.TrimSpace(value)
		case "pkgver":
			ver = strings.TrimSpace(value)
		case "pkgrel":
			rel = strings.TrimSpace(value)
		}
	}
	if ver == "" {
		return ""
	}
	v := ver
	if rel != "" {
		v += "-" + rel
	}
	if epoch != "" && epoch != "0" {
		v = epoch + ":" + v
	}
	return v
}

func headTime(path string) time.Time {
	r, err := gogit.PlainOpen(path)
	if err != nil {
		return time.Time{}
	}
	ref, err := r.Head()
	if err != nil {
		return time.Time{}
	}
	c, err := r.CommitObject(ref.Hash())
	if err != nil {
		return time.Time{}
	}
	return c.Committer.When
}
