package lint

import (
	"fmt"
	"os"

	"github.com/ndegrande/sitemeta/internal/htmlmeta"
	"github.com/ndegrande/sitemeta/internal/site"
)

// Linter validates required SEO and social tags per file. All checks fire
// independently; nothing short-circuits, so one file can report every
// problem it has in a single run.
type Linter struct {
	// Root anchors blog-post/index classification. Files outside it are a
	// configuration error and abort the run.
	Root string
	// BaseURL enables canonical/og host matching; empty skips those checks.
	BaseURL string
}

// LintFile returns the ordered issue messages for one HTML file. An empty
// slice means the file passes.
func (l *Linter) LintFile(path string) ([]string, error) {
	rel, err := site.RelPath(path, l.Root)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	head := htmlmeta.ExtractHead(string(data))
	title, hasTitle := htmlmeta.ExtractTitle(head, false)
	metas := htmlmeta.ExtractMeta(head)
	links := htmlmeta.ExtractLinks(head)

	isBlogPost := site.IsBlogPost(rel)
	isIndex := site.IsIndex(rel)

	var issues []string
	issues = append(issues, checkTitle(title, hasTitle)...)
	issues = append(issues, checkDescription(metas)...)
	issues = append(issues, checkCanonical(links, l.BaseURL)...)
	issues = append(issues, checkOpenGraph(metas, isBlogPost, isIndex, l.BaseURL)...)
	issues = append(issues, checkTwitterCard(metas)...)
	issues = append(issues, checkArticlePublished(metas, isBlogPost)...)
	return issues, nil
}

// LintFiles lints every file, accumulating all issues before reporting.
// Issues are keyed by root-relative path.
func (l *Linter) LintFiles(files []string) (*Result, error) {
	result := NewResult()
	for _, path := range files {
		issues, err := l.LintFile(path)
		if err != nil {
			return nil, err
		}
		result.FilesTotal++

		rel, relErr := site.RelPath(path, l.Root)
		if relErr != nil {
			rel = path
		}
		result.Add(rel, issues)
	}
	return result, nil
}
