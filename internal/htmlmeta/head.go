// Package htmlmeta extracts head-level metadata from HTML documents.
//
// Pages are author-controlled, so this is deliberately not a full DOM parse:
// the head boundary is located by pattern matching over the raw text, and
// tags inside it are read with the x/net/html tokenizer, which tolerates
// unquoted and mixed-quote attributes and decodes entities.
package htmlmeta

import (
	"html"
	"regexp"
	"strings"
)

var (
	headOpenRe  = regexp.MustCompile(`(?i)<head\b[^>]*>`)
	headCloseRe = regexp.MustCompile(`(?i)</head>`)
	titleRe     = regexp.MustCompile(`(?is)<title\b[^>]*>(.*?)</title>`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// ExtractHead returns the inner markup of a document's <head> element: the
// text strictly between the first opening <head> tag and the last </head>
// occurrence. Documents with duplicate closing tags keep everything up to the
// final one. Returns "" when no head element is found.
func ExtractHead(doc string) string {
	open := headOpenRe.FindStringIndex(doc)
	if open == nil {
		return ""
	}
	closes := headCloseRe.FindAllStringIndex(doc, -1)
	if len(closes) == 0 {
		return ""
	}
	last := closes[len(closes)-1]
	if last[0] < open[1] {
		return ""
	}
	return doc[open[1]:last[0]]
}

// ExtractTitle returns the decoded text of the first <title> element in a
// head fragment. Leading and trailing whitespace is trimmed; when
// normalizeSpaces is set, internal whitespace runs collapse to single
// spaces. The second result is false when no title element exists.
func ExtractTitle(head string, normalizeSpaces bool) (string, bool) {
	m := titleRe.FindStringSubmatch(head)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if normalizeSpaces {
		title = spaceRunRe.ReplaceAllString(title, " ")
	}
	return html.UnescapeString(title), true
}
