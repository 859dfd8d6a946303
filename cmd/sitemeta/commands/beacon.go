package commands

import (
	"fmt"
	"os"

	"github.com/ndegrande/sitemeta/internal/beacon"
	"github.com/ndegrande/sitemeta/internal/scan"
)

// BeaconCmd implements the 'beacon' command.
type BeaconCmd struct{}

// Run injects the configured beacon snippet into every scanned page.
// Pages that already carry the beacon or have no closing head tag are left
// alone; neither case is a failure.
func (b *BeaconCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	siteRoot, err := root.SiteRoot()
	if err != nil {
		return err
	}

	files, err := scan.New(cfg.SkipDirSet()).FindHTMLFiles(siteRoot)
	if err != nil {
		return fmt.Errorf("scan %s: %w", siteRoot, err)
	}

	inj := &beacon.Injector{
		Snippet: cfg.Beacon.Snippet,
		Marker:  cfg.Beacon.Marker,
	}
	stats, err := inj.Run(siteRoot, files, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Done. Processed %d HTML files, updated %d.\n", stats.Processed, stats.Updated)
	return nil
}
