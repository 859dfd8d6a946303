package lint

import (
	"net/url"
	"strings"

	"github.com/ndegrande/sitemeta/internal/htmlmeta"
)

// allowedTwitterCards are the values twitter:card may take.
var allowedTwitterCards = map[string]struct{}{
	"summary":             {},
	"summary_large_image": {},
	"app":                 {},
	"player":              {},
}

func checkTitle(title string, present bool) []string {
	if !present || title == "" {
		return []string{"Missing <title>"}
	}
	return nil
}

func checkDescription(metas []htmlmeta.AttrMap) []string {
	for _, m := range metas {
		if m.Get("name") == "description" && m.Get("content") != "" {
			return nil
		}
	}
	return []string{"Missing meta description"}
}

func checkCanonical(links []htmlmeta.AttrMap, baseURL string) []string {
	var canonical htmlmeta.AttrMap
	for _, l := range links {
		if strings.EqualFold(l.Get("rel"), "canonical") && l.Get("href") != "" {
			canonical = l
			break
		}
	}
	if canonical == nil {
		return []string{"Missing canonical link"}
	}

	href := canonical.Get("href")
	if !isAbsoluteURL(href) {
		return []string{"Canonical link should be absolute URL"}
	}
	if baseURL != "" && hostOf(href) != hostOf(baseURL) {
		return []string{"Canonical link host should match site base URL"}
	}
	return nil
}

func checkOpenGraph(metas []htmlmeta.AttrMap, isBlogPost, isIndex bool, baseURL string) []string {
	var issues []string

	ogTitle := findProperty(metas, "og:title")
	ogDesc := findProperty(metas, "og:description")
	ogType := findProperty(metas, "og:type")

	if ogTitle == nil {
		issues = append(issues, "Missing og:title")
	}
	if ogDesc == nil {
		issues = append(issues, "Missing og:description")
	}
	if ogType == nil {
		issues = append(issues, "Missing og:type")
	} else {
		val := ogType.Get("content")
		if isBlogPost && val != "article" {
			issues = append(issues, "og:type should be 'article' for blog posts")
		}
		if isIndex && val != "website" {
			issues = append(issues, "og:type should be 'website' for index pages")
		}
	}

	if ogURL := findProperty(metas, "og:url"); ogURL != nil {
		href := ogURL.Get("content")
		switch {
		case !isAbsoluteURL(href):
			issues = append(issues, "og:url should be absolute URL")
		case baseURL != "" && hostOf(href) != hostOf(baseURL):
			issues = append(issues, "og:url host should match site base URL")
		}
	}

	return issues
}

func checkTwitterCard(metas []htmlmeta.AttrMap) []string {
	var card htmlmeta.AttrMap
	for _, m := range metas {
		if (m.Get("name") == "twitter:card" || m.Get("property") == "twitter:card") && m.Get("content") != "" {
			card = m
			break
		}
	}
	if card == nil {
		return []string{"Missing twitter:card"}
	}

	val := strings.ToLower(strings.TrimSpace(card.Get("content")))
	if _, ok := allowedTwitterCards[val]; !ok {
		return []string{"twitter:card should be one of summary, summary_large_image, app, player"}
	}
	return nil
}

func checkArticlePublished(metas []htmlmeta.AttrMap, isBlogPost bool) []string {
	if !isBlogPost {
		return nil
	}
	for _, m := range metas {
		if m.Get("property") == "article:published_time" && m.Get("content") != "" {
			return nil
		}
	}
	return []string{"Missing article:published_time for blog post"}
}

// findProperty returns the first meta with the given property attribute and
// non-empty content.
func findProperty(metas []htmlmeta.AttrMap, property string) htmlmeta.AttrMap {
	for _, m := range metas {
		if m.Get("property") == property && m.Get("content") != "" {
			return m
		}
	}
	return nil
}

func isAbsoluteURL(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// hostOf extracts the host portion of a URL, "" when unparseable.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
