package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ndegrande/sitemeta/internal/config"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitemeta.yaml"`
	Root    string           `short:"r" help:"Site root directory" default:"."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Beacon   BeaconCmd   `cmd:"" help:"Insert the analytics beacon into every HTML page"`
	Generate GenerateCmd `cmd:"" help:"Generate sitemap.xml, robots.txt and the blog RSS feed"`
	Lint     LintCmd     `cmd:"" help:"Validate SEO and social meta tags across pages"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration file named by the root flags. A missing
// file yields defaults so every command works in an unconfigured checkout.
func (c *CLI) LoadConfig() (*config.Config, error) {
	return config.Load(c.Config)
}

// SiteRoot returns the absolute site root directory.
func (c *CLI) SiteRoot() (string, error) {
	return filepath.Abs(c.Root)
}
