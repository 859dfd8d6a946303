package gen

import (
	"encoding/xml"
	"fmt"

	"github.com/ndegrande/sitemeta/internal/site"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Sitemap renders a sitemaps.org 0.9 sitemap with one entry per scanned
// page: location plus last-modified date, nothing else.
func (g *Generator) Sitemap(files []string) (string, error) {
	set := urlSet{Xmlns: sitemapNS, URLs: make([]urlEntry, 0, len(files))}
	for _, path := range files {
		loc, err := site.PathToURL(path, g.BaseURL, g.Root)
		if err != nil {
			return "", err
		}
		lastMod, err := g.Dates.PageDate(path)
		if err != nil {
			return "", fmt.Errorf("last-modified date for %s: %w", path, err)
		}
		set.URLs = append(set.URLs, urlEntry{Loc: loc, LastMod: lastMod})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}

// Robots renders the allow-everything robots policy with a sitemap pointer.
func (g *Generator) Robots() string {
	return "User-agent: *\nDisallow:\n\nSitemap: " + g.BaseURL + "/sitemap.xml\n"
}
