package repo

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"regexp"

	"github.com/raphi011/aurx/internal/location"
)

// matcher decides whether a directory name belongs to the selection.
type matcher func(name string) bool

// MatchingExisting returns the working copies under root selected by
// targets, as absolute paths in directory order. Each directory is yielded
// at most once, however many targets select it.
//
// With useRegex every target ID is compiled as a pattern that must match
// the whole name. All patterns are compiled before anything is read, so a
// bad pattern yields a *PatternError and no sequence. A missing root
// yields an empty sequence; any other listing failure is a
// *FilesystemError.
func MatchingExisting(root string, targets []location.Location, useRegex bool) (iter.Seq[string], error) {
	if len(targets) == 0 {
		return func(func(string) bool) {}, nil
	}

	matchers, err := compile(targets, useRegex)
	if err != nil {
		return nil, err
	}

	entries, err := readDirs(root)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}

	return func(yield func(string) bool) {
		for _, name := range entries {
			if !anyMatch(matchers, name) {
				continue
			}
			if !yield(filepath.Join(abs, name)) {
				return
			}
		}
	}, nil
}

// Names lists the IDs of all installed working copies. A missing root has
// none.
func Names(root string) ([]string, error) {
	return readDirs(root)
}

func compile(targets []location.Location, useRegex bool) ([]matcher, error) {
	matchers := make([]matcher, 0, len(targets))
	for _, t := range targets {
		switch {
		case t.All():
			matchers = append(matchers, func(string) bool { return true })
		case useRegex:
			re, err := regexp.Compile(`^(?:` + t.ID + `)$`)
			if err != nil {
				return nil, &PatternError{Pattern: t.ID, Err: err}
			}
			matchers = append(matchers, re.MatchString)
		default:
			id := t.ID
			matchers = append(matchers, func(name string) bool { return name == id })
		}
	}
	return matchers, nil
}

func anyMatch(matchers []matcher, name string) bool {
	for _, m := range matchers {
		if m(name) {
			return true
		}
	}
	return false
}

// readDirs returns the names of the directories directly under root.
func readDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(root, e) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// isDir follows symlinks so a linked working copy still counts.
func isDir(root string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}
