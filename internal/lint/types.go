// Package lint validates the SEO and social metadata of HTML pages.
package lint

import "sort"

// FileIssues pairs a file with the ordered issue messages found in it.
// Issues are flat human-readable strings: the linter does not distinguish
// "tag absent" from "tag present but malformed", and carries no severities.
type FileIssues struct {
	File   string   `json:"file"`
	Issues []string `json:"issues"`
}

// Result aggregates linting over a set of files.
type Result struct {
	FilesTotal int
	byFile     map[string][]string
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{byFile: make(map[string][]string)}
}

// Add records the issues found in one file. Files without issues are not
// recorded.
func (r *Result) Add(file string, issues []string) {
	if len(issues) > 0 {
		r.byFile[file] = issues
	}
}

// HasIssues reports whether any linted file produced at least one issue.
func (r *Result) HasIssues() bool {
	return len(r.byFile) > 0
}

// IssueCount returns the total number of issues across all files.
func (r *Result) IssueCount() int {
	n := 0
	for _, issues := range r.byFile {
		n += len(issues)
	}
	return n
}

// Files returns the per-file issues sorted by file path.
func (r *Result) Files() []FileIssues {
	out := make([]FileIssues, 0, len(r.byFile))
	for file, issues := range r.byFile {
		out = append(out, FileIssues{File: file, Issues: issues})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}
