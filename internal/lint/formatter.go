package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter renders a lint result.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter selects a formatter by name; unknown names fall back to text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter renders issues grouped per file with a trailing summary.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	for _, file := range result.Files() {
		if _, err := fmt.Fprintf(w, "%s:\n", file.File); err != nil {
			return err
		}
		for _, issue := range file.Issues {
			if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
				return err
			}
		}
	}

	if result.HasIssues() {
		_, err := fmt.Fprintf(w, "\n%d issue(s) in %d of %d file(s)\n",
			result.IssueCount(), len(result.Files()), result.FilesTotal)
		return err
	}
	_, err := fmt.Fprintf(w, "%d file(s) checked, no issues found\n", result.FilesTotal)
	return err
}

// JSONFormatter renders the per-file issue list as a JSON document.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	doc := struct {
		FilesTotal int          `json:"files_total"`
		IssueCount int          `json:"issue_count"`
		Files      []FileIssues `json:"files"`
	}{
		FilesTotal: result.FilesTotal,
		IssueCount: result.IssueCount(),
		Files:      result.Files(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
