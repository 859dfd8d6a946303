package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ndegrande/sitemeta/internal/gen"
	"github.com/ndegrande/sitemeta/internal/scan"
	"github.com/ndegrande/sitemeta/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	BaseURL  string `name:"base-url" help:"Override site base URL (default: env SITE_BASE_URL or configured value)"`
	GitDates bool   `name:"git-dates" help:"Derive dates from git history instead of file mtimes"`
	Watch    bool   `short:"w" help:"Keep running and regenerate when HTML files change"`
}

// Run generates sitemap.xml, robots.txt and blog/rss.xml at the site root.
func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	siteRoot, err := root.SiteRoot()
	if err != nil {
		return err
	}

	generator := &gen.Generator{
		Root:    siteRoot,
		BaseURL: cfg.ResolveBaseURL(g.BaseURL),
		Feed:    cfg.Feed,
		Dates:   gen.NewDateSource(siteRoot, g.GitDates || cfg.Site.GitDates),
	}
	scanner := scan.New(cfg.SkipDirSet())

	generate := func() error {
		files, err := scanner.FindHTMLFiles(siteRoot)
		if err != nil {
			return fmt.Errorf("scan %s: %w", siteRoot, err)
		}
		return generator.Run(files)
	}

	if err := generate(); err != nil {
		return err
	}
	if !g.Watch {
		return nil
	}

	watcher, err := watch.New(siteRoot, cfg.SkipDirSet())
	if err != nil {
		return err
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Failed to close watcher", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watcher.Run(ctx, generate)
}
