// Package beacon injects an analytics snippet into HTML pages.
package beacon

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/ndegrande/sitemeta/internal/site"
)

var closingHeadRe = regexp.MustCompile(`(?i)</\s*head\s*>`)

// Injector inserts a snippet before the closing </head> of each page.
type Injector struct {
	// Snippet is the line inserted into pages.
	Snippet string
	// Marker is the substring whose presence anywhere in a document means
	// the snippet is already installed.
	Marker string
}

// Stats summarizes one injection run.
type Stats struct {
	Processed int
	Updated   int
}

// DetectNewline returns the dominant newline sequence of a text buffer:
// CRLF when present anywhere, else CR, else LF.
func DetectNewline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	if strings.Contains(text, "\r") {
		return "\r"
	}
	return "\n"
}

// InsertBeforeClosingHead inserts the snippet immediately before the last
// closing </head> tag, reproducing the indentation of the line holding that
// tag and the document's dominant newline. The second result is false when
// no change is needed: the marker is already present or the document has no
// closing head tag.
func (inj *Injector) InsertBeforeClosingHead(htmlText string) (string, bool) {
	if strings.Contains(htmlText, inj.Marker) {
		return "", false
	}

	matches := closingHeadRe.FindAllStringIndex(htmlText, -1)
	if len(matches) == 0 {
		return "", false
	}
	insertAt := matches[len(matches)-1][0]

	lineStart := strings.LastIndex(htmlText[:insertAt], "\n") + 1
	indent := leadingWhitespace(htmlText[lineStart:insertAt])

	insertion := indent + inj.Snippet + DetectNewline(htmlText)
	return htmlText[:insertAt] + insertion + htmlText[insertAt:], true
}

// leadingWhitespace returns the run of spaces and tabs at the start of a line.
func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// Run rewrites every given file in place when the snippet is missing,
// printing an Updated line per changed file. Files already carrying the
// beacon or lacking a closing head tag are left untouched and are not
// errors.
func (inj *Injector) Run(root string, files []string, out io.Writer) (Stats, error) {
	var stats Stats
	for _, path := range files {
		stats.Processed++

		data, err := os.ReadFile(path)
		if err != nil {
			return stats, fmt.Errorf("read %s: %w", path, err)
		}

		updated, changed := inj.InsertBeforeClosingHead(string(data))
		if !changed {
			continue
		}

		if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
			return stats, fmt.Errorf("write %s: %w", path, err)
		}
		stats.Updated++

		rel, err := site.RelPath(path, root)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(out, "Updated: %s\n", rel)
	}
	return stats, nil
}
