package gitdates

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, repo *git.Repository, repoPath, rel, content string, when time.Time) {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)

	path := filepath.Join(repoPath, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	_, err = wt.Add(rel)
	require.NoError(t, err)

	sig := &object.Signature{Name: "tester", Email: "tester@example.com", When: when}
	_, err = wt.Commit("update "+rel, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
}

func TestOpenOutsideRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestLastCommitTime(t *testing.T) {
	repoPath := t.TempDir()
	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	first := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
	commitFile(t, repo, repoPath, "blog/post.html", "<html>v1</html>", first)
	commitFile(t, repo, repoPath, "blog/post.html", "<html>v2</html>", second)
	commitFile(t, repo, repoPath, "index.html", "<html>home</html>", first)

	r, err := Open(repoPath)
	require.NoError(t, err)

	t.Run("newest commit touching the file wins", func(t *testing.T) {
		got, ok := r.LastCommitTime(filepath.Join(repoPath, "blog", "post.html"))
		require.True(t, ok)
		assert.True(t, got.Equal(second), "got %v, want %v", got, second)
	})

	t.Run("other files keep their own history", func(t *testing.T) {
		got, ok := r.LastCommitTime(filepath.Join(repoPath, "index.html"))
		require.True(t, ok)
		assert.True(t, got.Equal(first))
	})

	t.Run("untracked file has no commit time", func(t *testing.T) {
		untracked := filepath.Join(repoPath, "draft.html")
		require.NoError(t, os.WriteFile(untracked, []byte("<html></html>"), 0o644))
		_, ok := r.LastCommitTime(untracked)
		assert.False(t, ok)
	})

	t.Run("iso date formatting", func(t *testing.T) {
		got, ok := r.ISODate(filepath.Join(repoPath, "blog", "post.html"))
		require.True(t, ok)
		assert.Equal(t, "2024-03-05", got)
	})
}

func TestOpenFromSubdirectory(t *testing.T) {
	repoPath := t.TempDir()
	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)
	when := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	commitFile(t, repo, repoPath, "blog/post.html", "<html></html>", when)

	r, err := Open(filepath.Join(repoPath, "blog"))
	require.NoError(t, err, "dot-git detection should search parent directories")

	got, ok := r.LastCommitTime(filepath.Join(repoPath, "blog", "post.html"))
	require.True(t, ok)
	assert.True(t, got.Equal(when))
}
