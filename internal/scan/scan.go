// Package scan discovers the HTML files of a site tree.
//
// Traversal uses an explicit pending-directory worklist rather than
// filepath.WalkDir so that unreadable subtrees can be skipped without
// aborting the whole scan. Output order is normalized by sorting.
package scan

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds .html files under a root directory.
type Scanner struct {
	skipDirs map[string]struct{}
}

// New creates a scanner that skips directories with the given literal names.
// Dot-prefixed directories are always skipped.
func New(skipDirs map[string]struct{}) *Scanner {
	if skipDirs == nil {
		skipDirs = map[string]struct{}{}
	}
	return &Scanner{skipDirs: skipDirs}
}

// skippable reports whether a directory name is excluded from traversal.
func (s *Scanner) skippable(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, skip := s.skipDirs[name]
	return skip
}

// FindHTMLFiles returns the sorted absolute paths of all .html files under
// root, excluding hidden and configured directories. Directories that cannot
// be listed due to permissions are skipped, not fatal.
func (s *Scanner) FindHTMLFiles(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var results []string
	pending := []string{absRoot}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				slog.Debug("Skipping unreadable directory", "path", dir)
				continue
			}
			return nil, err
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if !s.skippable(name) {
					pending = append(pending, filepath.Join(dir, name))
				}
				continue
			}
			if entry.Type().IsRegular() && strings.EqualFold(filepath.Ext(name), ".html") {
				results = append(results, filepath.Join(dir, name))
			}
		}
	}

	sort.Strings(results)
	return results, nil
}

// FindInPaths resolves an explicit list of file and directory arguments into
// a sorted, deduplicated set of HTML files. Directories are scanned
// recursively; files are accepted only with an .html extension.
func (s *Scanner) FindInPaths(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			files, err := s.FindHTMLFiles(p)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				seen[f] = struct{}{}
			}
			continue
		}
		if strings.EqualFold(filepath.Ext(p), ".html") {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, err
			}
			seen[abs] = struct{}{}
		}
	}

	results := make([]string, 0, len(seen))
	for f := range seen {
		results = append(results, f)
	}
	sort.Strings(results)
	return results, nil
}
