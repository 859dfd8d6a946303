// Package site maps filesystem paths to site URLs and page classes, and
// formats the date strings used in generated metadata.
package site

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot indicates a path that does not live under the site root.
// This is a caller misconfiguration, not recoverable bad input.
var ErrOutsideRoot = errors.New("path is outside the site root")

// RelPath returns the root-relative form of a path with forward slashes.
func RelPath(p, root string) (string, error) {
	absPath, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	return rel, nil
}

// PathToURL converts a file path under root into an absolute site URL.
// Index pages map to their directory URL; everything else keeps its
// root-relative path. No percent-encoding is applied.
func PathToURL(p, baseURL, root string) (string, error) {
	rel, err := RelPath(p, root)
	if err != nil {
		return "", err
	}
	base := strings.TrimRight(baseURL, "/")
	switch rel {
	case "index.html":
		return base + "/", nil
	case "blog/index.html":
		return base + "/blog/", nil
	}
	return base + "/" + rel, nil
}

// blogExcluded are the non-post artifacts living under blog/.
var blogExcluded = map[string]struct{}{
	"index.html":    {},
	"rss.xml":       {},
	"template.html": {},
	"styles.css":    {},
}

// IsBlogPost reports whether a root-relative path is a blog post page.
func IsBlogPost(rel string) bool {
	if !strings.HasPrefix(rel, "blog/") {
		return false
	}
	_, excluded := blogExcluded[path.Base(rel)]
	return !excluded
}

// IsIndex reports whether a root-relative path is the site or blog index.
func IsIndex(rel string) bool {
	return rel == "index.html" || rel == "blog/index.html"
}
