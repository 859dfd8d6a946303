// Package gen produces the derived site artifacts: sitemap.xml, robots.txt
// and the blog RSS feed.
package gen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ndegrande/sitemeta/internal/config"
	"github.com/ndegrande/sitemeta/internal/gitdates"
	"github.com/ndegrande/sitemeta/internal/site"
)

// DateSource yields the YYYY-MM-DD last-change date for a page.
type DateSource interface {
	PageDate(path string) (string, error)
}

// MtimeDates derives page dates from file modification times.
type MtimeDates struct{}

func (MtimeDates) PageDate(path string) (string, error) {
	return site.ISODateFromMtime(path, nil)
}

// GitDates derives page dates from commit history, falling back to the
// modification time for files without history.
type GitDates struct {
	Resolver *gitdates.Resolver
}

func (g GitDates) PageDate(path string) (string, error) {
	if date, ok := g.Resolver.ISODate(path); ok {
		return date, nil
	}
	return site.ISODateFromMtime(path, nil)
}

// NewDateSource selects commit-history dates when requested and available,
// mtimes otherwise.
func NewDateSource(root string, gitDates bool) DateSource {
	if gitDates {
		resolver, err := gitdates.Open(root)
		if err != nil {
			slog.Warn("Git dates requested but no repository found, using mtimes", "root", root, "error", err)
			return MtimeDates{}
		}
		return GitDates{Resolver: resolver}
	}
	return MtimeDates{}
}

// Generator builds the sitemap, robots file and RSS feed for one site tree.
type Generator struct {
	Root    string
	BaseURL string
	Feed    config.FeedConfig
	Dates   DateSource
}

// Run writes all three artifacts, overwriting previous versions.
func (g *Generator) Run(files []string) error {
	sitemap, err := g.Sitemap(files)
	if err != nil {
		return fmt.Errorf("generate sitemap: %w", err)
	}
	if err := writeFile(filepath.Join(g.Root, "sitemap.xml"), sitemap); err != nil {
		return err
	}
	slog.Info("Wrote sitemap", "entries", len(files))

	if err := writeFile(filepath.Join(g.Root, "robots.txt"), g.Robots()); err != nil {
		return err
	}
	slog.Info("Wrote robots.txt")

	posts, err := g.CollectPosts(files)
	if err != nil {
		return fmt.Errorf("collect blog posts: %w", err)
	}
	rss, err := g.RSS(posts)
	if err != nil {
		return fmt.Errorf("generate rss: %w", err)
	}
	if err := writeFile(filepath.Join(g.Root, "blog", "rss.xml"), rss); err != nil {
		return err
	}
	slog.Info("Wrote rss feed", "posts", len(posts))

	return nil
}

// writeFile writes UTF-8 text with LF newlines, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
