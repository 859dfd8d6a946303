package htmlmeta

import (
	"strings"

	"golang.org/x/net/html"
)

// AttrMap holds one tag's attributes, keyed by lower-cased attribute name
// with entity-decoded values.
type AttrMap map[string]string

// Get returns the value for a key, or "" when absent.
func (a AttrMap) Get(key string) string {
	return a[key]
}

// ExtractMeta returns the attribute maps of all <meta> tags in a head
// fragment, in document order.
func ExtractMeta(head string) []AttrMap {
	return extractTags(head, "meta")
}

// ExtractLinks returns the attribute maps of all <link> tags in a head
// fragment, in document order.
func ExtractLinks(head string) []AttrMap {
	return extractTags(head, "link")
}

// extractTags tokenizes a head fragment and collects attributes for every
// occurrence of the named tag. The tokenizer never fails on malformed
// markup: unparseable constructs are consumed as text and skipped.
func extractTags(head, name string) []AttrMap {
	var out []AttrMap
	z := html.NewTokenizer(strings.NewReader(head))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF for a string reader.
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != name {
				continue
			}
			attrs := make(AttrMap, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs[a.Key] = a.Val
			}
			out = append(out, attrs)
		}
	}
}
