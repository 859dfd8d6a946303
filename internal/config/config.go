package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the compiled-in site base URL, used when neither the
// --base-url flag, the SITE_BASE_URL environment variable, nor the config
// file provides one.
const DefaultBaseURL = "https://niels.degran.de"

// Config represents the full sitemeta configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Scan   ScanConfig   `yaml:"scan"`
	Beacon BeaconConfig `yaml:"beacon"`
	Feed   FeedConfig   `yaml:"feed"`
}

// SiteConfig describes the site being processed.
type SiteConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	// GitDates derives sitemap lastmod and feed publish fallbacks from git
	// commit history instead of file modification times.
	GitDates bool `yaml:"git_dates,omitempty"`
}

// ScanConfig controls directory traversal.
type ScanConfig struct {
	// SkipDirs are literal directory names excluded from the scan, in
	// addition to every dot-prefixed directory.
	SkipDirs []string `yaml:"skip_dirs,omitempty"`
}

// BeaconConfig describes the analytics snippet injected into pages.
type BeaconConfig struct {
	Snippet string `yaml:"snippet,omitempty"`
	// Marker is the substring whose presence anywhere in a document marks
	// the beacon as already installed.
	Marker string `yaml:"marker,omitempty"`
}

// FeedConfig describes the RSS channel.
type FeedConfig struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// DefaultSkipDirs are the directory names excluded from scanning by default.
func DefaultSkipDirs() []string {
	return []string{
		"node_modules",
		"vendor",
		"assets",
		"prompts",
		"scripts",
		"build",
		"dist",
	}
}

const defaultBeaconSnippet = `<script defer src='https://static.cloudflareinsights.com/beacon.min.js' data-cf-beacon='{"token": "48a7ad56a51a4ef5ad845059521443a9"}'></script>`

const defaultBeaconMarker = "static.cloudflareinsights.com/beacon.min.js"

// Default returns a configuration with every field at its compiled-in default.
func Default() *Config {
	return &Config{
		Site: SiteConfig{BaseURL: DefaultBaseURL},
		Scan: ScanConfig{SkipDirs: DefaultSkipDirs()},
		Beacon: BeaconConfig{
			Snippet: defaultBeaconSnippet,
			Marker:  defaultBeaconMarker,
		},
		Feed: FeedConfig{
			Title:       "Niels Degrande's Blog",
			Description: "Insights on AI, coding agents, software engineering, and technology.",
			Language:    "en",
		},
	}
}

// Load reads configuration from the given file, filling unset fields with
// defaults. A missing file is not an error: defaults are returned so every
// command works in an unconfigured checkout.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	cfg := Default()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// applyDefaults fills fields the YAML left empty.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = d.Site.BaseURL
	}
	if c.Scan.SkipDirs == nil {
		c.Scan.SkipDirs = d.Scan.SkipDirs
	}
	if c.Beacon.Snippet == "" {
		c.Beacon.Snippet = d.Beacon.Snippet
	}
	if c.Beacon.Marker == "" {
		c.Beacon.Marker = d.Beacon.Marker
	}
	if c.Feed.Title == "" {
		c.Feed.Title = d.Feed.Title
	}
	if c.Feed.Description == "" {
		c.Feed.Description = d.Feed.Description
	}
	if c.Feed.Language == "" {
		c.Feed.Language = d.Feed.Language
	}
}

// Validate checks field values that have a constrained format.
func (c *Config) Validate() error {
	if c.Feed.Language != "" {
		if _, err := language.Parse(c.Feed.Language); err != nil {
			return fmt.Errorf("feed.language %q is not a valid BCP 47 tag: %w", c.Feed.Language, err)
		}
	}
	if c.Site.BaseURL != "" && !strings.HasPrefix(c.Site.BaseURL, "http://") && !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return fmt.Errorf("site.base_url %q must be an absolute http(s) URL", c.Site.BaseURL)
	}
	return nil
}

// ResolveBaseURL applies the precedence chain for the site base URL:
// command-line flag, then SITE_BASE_URL, then the configured value. The
// result never carries a trailing slash.
func (c *Config) ResolveBaseURL(flagValue string) string {
	base := c.Site.BaseURL
	if env := os.Getenv("SITE_BASE_URL"); env != "" {
		base = env
	}
	if flagValue != "" {
		base = flagValue
	}
	return strings.TrimRight(base, "/")
}

// SkipDirSet returns the configured skip names as a set for scan lookups.
func (c *Config) SkipDirSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Scan.SkipDirs))
	for _, name := range c.Scan.SkipDirs {
		set[name] = struct{}{}
	}
	return set
}
