package gen

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/ndegrande/sitemeta/internal/htmlmeta"
	"github.com/ndegrande/sitemeta/internal/site"
)

// PostMeta is the per-post metadata that feeds one RSS item. It exists only
// for the duration of feed generation.
type PostMeta struct {
	Title       string
	Description string
	Published   string // ISO-8601 date string
	URL         string
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
	Description string  `xml:"description"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

// CollectPosts extracts feed metadata from every blog post in the scanned
// file set, sorted by published date descending. ISO-8601 date strings sort
// correctly under plain string comparison.
func (g *Generator) CollectPosts(files []string) ([]PostMeta, error) {
	var posts []PostMeta
	for _, p := range files {
		rel, err := site.RelPath(p, g.Root)
		if err != nil {
			return nil, err
		}
		if !site.IsBlogPost(rel) {
			continue
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		head := htmlmeta.ExtractHead(string(data))

		title, ok := htmlmeta.ExtractTitle(head, true)
		if !ok || title == "" {
			title = strings.TrimSuffix(path.Base(rel), path.Ext(rel))
		}

		var description, published string
		for _, meta := range htmlmeta.ExtractMeta(head) {
			if meta.Get("name") == "description" && description == "" {
				description = meta.Get("content")
			}
			if meta.Get("property") == "article:published_time" && published == "" {
				published = meta.Get("content")
			}
		}
		if published == "" {
			published, err = g.Dates.PageDate(p)
			if err != nil {
				return nil, fmt.Errorf("publish date for %s: %w", p, err)
			}
		}

		url, err := site.PathToURL(p, g.BaseURL, g.Root)
		if err != nil {
			return nil, err
		}

		posts = append(posts, PostMeta{
			Title:       title,
			Description: description,
			Published:   published,
			URL:         url,
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published > posts[j].Published
	})
	return posts, nil
}

// RSS renders an RSS 2.0 feed with an Atom self-link for the given posts.
func (g *Generator) RSS(posts []PostMeta) (string, error) {
	items := make([]rssItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, rssItem{
			Title:       post.Title,
			Link:        post.URL,
			GUID:        rssGUID{IsPermaLink: "true", Value: post.URL},
			PubDate:     site.RFC2822Date(post.Published),
			Description: post.Description,
		})
	}

	lastBuild := site.RFC2822Date(time.Now().UTC().Format(time.RFC3339))
	if len(posts) > 0 {
		latest := ""
		for _, post := range posts {
			if post.Published > latest {
				latest = post.Published
			}
		}
		lastBuild = site.RFC2822Date(latest)
	}

	feed := rssFeed{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         g.Feed.Title,
			Link:          g.BaseURL + "/blog/",
			Description:   g.Feed.Description,
			Language:      g.Feed.Language,
			LastBuildDate: lastBuild,
			AtomLink: atomLink{
				Href: g.BaseURL + "/blog/rss.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}
