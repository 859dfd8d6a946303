// Package gitdates resolves per-file dates from git commit history.
//
// File modification times are unreliable in CI checkouts, where every file
// carries the clone time. When the site root lives inside a git repository,
// the committer date of the most recent commit touching a file is a better
// lastmod signal. Untracked or uncommitted files fall back to mtime at the
// call site.
package gitdates

import (
	"log/slog"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
)

// Resolver answers last-change queries against one repository.
type Resolver struct {
	repo         *git.Repository
	worktreeRoot string
}

// Open locates the repository containing root, searching parent directories
// for the .git directory. Returns an error when root is not inside a
// repository; callers treat that as "use mtimes".
func Open(root string) (*Resolver, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &Resolver{repo: repo, worktreeRoot: wt.Filesystem.Root()}, nil
}

// LastCommitTime returns the committer time of the newest commit touching
// the given file. The second result is false for untracked files, files
// with no history, or any lookup failure.
func (r *Resolver) LastCommitTime(path string) (time.Time, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, false
	}
	rel, err := filepath.Rel(r.worktreeRoot, abs)
	if err != nil {
		return time.Time{}, false
	}
	rel = filepath.ToSlash(rel)

	iter, err := r.repo.Log(&git.LogOptions{
		FileName: &rel,
		Order:    git.LogOrderCommitterTime,
	})
	if err != nil {
		slog.Debug("Git log failed", "path", rel, "error", err)
		return time.Time{}, false
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return time.Time{}, false
	}
	return commit.Committer.When, true
}

// ISODate formats the last commit time of a file as YYYY-MM-DD in UTC. The
// second result is false when no commit history exists for the file.
func (r *Resolver) ISODate(path string) (string, bool) {
	t, ok := r.LastCommitTime(path)
	if !ok {
		return "", false
	}
	return t.UTC().Format("2006-01-02"), true
}
