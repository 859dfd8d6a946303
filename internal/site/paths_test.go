package site

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathToURL(t *testing.T) {
	root := t.TempDir()
	base := "https://example.com"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"site index maps to root url", "index.html", "https://example.com/"},
		{"blog index maps to blog directory", "blog/index.html", "https://example.com/blog/"},
		{"regular page keeps relative path", "blog/post.html", "https://example.com/blog/post.html"},
		{"top-level page", "about.html", "https://example.com/about.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathToURL(filepath.Join(root, filepath.FromSlash(tt.path)), base, root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("trailing slash on base url is trimmed", func(t *testing.T) {
		got, err := PathToURL(filepath.Join(root, "index.html"), "https://example.com/", root)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", got)
	})

	t.Run("path outside root fails", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "elsewhere.html")
		_, err := PathToURL(outside, base, root)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutsideRoot)
	})
}

func TestIsBlogPost(t *testing.T) {
	assert.True(t, IsBlogPost("blog/post.html"))
	assert.True(t, IsBlogPost("blog/2024/deep-post.html"))

	assert.False(t, IsBlogPost("index.html"))
	assert.False(t, IsBlogPost("about.html"))
	assert.False(t, IsBlogPost("blog/index.html"))
	assert.False(t, IsBlogPost("blog/rss.xml"))
	assert.False(t, IsBlogPost("blog/template.html"))
	assert.False(t, IsBlogPost("blog/styles.css"))
}

func TestIsIndex(t *testing.T) {
	assert.True(t, IsIndex("index.html"))
	assert.True(t, IsIndex("blog/index.html"))
	assert.False(t, IsIndex("blog/post.html"))
	assert.False(t, IsIndex("about.html"))
}
