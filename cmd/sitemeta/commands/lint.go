package commands

import (
	"fmt"
	"os"

	"github.com/ndegrande/sitemeta/internal/lint"
	"github.com/ndegrande/sitemeta/internal/scan"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Paths   []string `arg:"" optional:"" help:"Files or directories to lint (default: whole site tree)"`
	BaseURL string   `name:"base-url" help:"Base URL for canonical host checks (default: env SITE_BASE_URL); host checks are skipped when empty"`
	Format  string   `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

// Run lints the selected pages and exits non-zero when any file has any
// issue. All files and all checks are evaluated before reporting.
func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	siteRoot, err := root.SiteRoot()
	if err != nil {
		return err
	}

	scanner := scan.New(cfg.SkipDirSet())
	var files []string
	if len(l.Paths) > 0 {
		files, err = scanner.FindInPaths(l.Paths)
	} else {
		files, err = scanner.FindHTMLFiles(siteRoot)
	}
	if err != nil {
		return fmt.Errorf("resolve lint targets: %w", err)
	}

	baseURL := l.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("SITE_BASE_URL")
	}

	linter := &lint.Linter{Root: siteRoot, BaseURL: baseURL}
	result, err := linter.LintFiles(files)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	if err := lint.NewFormatter(l.Format).Format(os.Stdout, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasIssues() {
		os.Exit(1)
	}
	return nil
}
