package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `# sitemeta configuration
site:
  # Base URL used for sitemap, robots, RSS and canonical-host lint checks.
  # Overridden by --base-url or the SITE_BASE_URL environment variable.
  base_url: https://niels.degran.de
  # Derive lastmod/publish dates from git history instead of file mtimes.
  # Useful in CI checkouts, where modification times are not meaningful.
  git_dates: false

scan:
  # Directory names excluded from scanning. Dot-prefixed directories are
  # always skipped.
  skip_dirs:
    - node_modules
    - vendor
    - assets
    - prompts
    - scripts
    - build
    - dist

beacon:
  # Snippet inserted before the closing </head> of every page, and the
  # substring that marks it as already present.
  # snippet: <script defer src='...'></script>
  # marker: static.cloudflareinsights.com/beacon.min.js

feed:
  title: Niels Degrande's Blog
  description: Insights on AI, coding agents, software engineering, and technology.
  language: en
`

// Init writes a commented starter configuration file. It refuses to
// overwrite an existing file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
