package beacon

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInjector() *Injector {
	return &Injector{
		Snippet: `<script defer src='https://analytics.example.com/beacon.js'></script>`,
		Marker:  "analytics.example.com/beacon.js",
	}
}

func TestDetectNewline(t *testing.T) {
	assert.Equal(t, "\r\n", DetectNewline("a\r\nb"))
	assert.Equal(t, "\r\n", DetectNewline("a\nb\r\nc"), "CRLF wins when mixed")
	assert.Equal(t, "\r", DetectNewline("a\rb"))
	assert.Equal(t, "\n", DetectNewline("a\nb"))
	assert.Equal(t, "\n", DetectNewline("no newline"), "LF is the default")
}

func TestInsertBeforeClosingHead(t *testing.T) {
	inj := testInjector()

	t.Run("inserts before an unindented closing tag", func(t *testing.T) {
		doc := "<html>\n<head>\n  <title>X</title>\n</head>\n<body></body>\n</html>\n"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.Equal(t, "<html>\n<head>\n  <title>X</title>\n"+inj.Snippet+"\n</head>\n<body></body>\n</html>\n", got)
	})

	t.Run("reproduces the closing line indentation", func(t *testing.T) {
		// Insertion happens at the tag itself, after the line's existing
		// indent, so the snippet line carries both.
		doc := "<head>\n  </head>"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.Equal(t, "<head>\n  "+"  "+inj.Snippet+"\n</head>", got)
	})

	t.Run("skips documents already carrying the marker", func(t *testing.T) {
		doc := "<head>" + inj.Snippet + "</head>"
		_, changed := inj.InsertBeforeClosingHead(doc)
		assert.False(t, changed)
	})

	t.Run("idempotent across runs", func(t *testing.T) {
		doc := "<html>\n<head>\n  <title>X</title>\n</head>\n</html>\n"
		first, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		_, changedAgain := inj.InsertBeforeClosingHead(first)
		assert.False(t, changedAgain, "second run must signal no change")
	})

	t.Run("no closing head tag means no change", func(t *testing.T) {
		_, changed := inj.InsertBeforeClosingHead("<html><body>no head</body></html>")
		assert.False(t, changed)
	})

	t.Run("targets the last closing tag", func(t *testing.T) {
		doc := "<head>A</head>\nB\n</head>\n"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.True(t, strings.HasSuffix(got, inj.Snippet+"\n</head>\n"),
			"snippet should precede the final closing tag, got: %q", got)
		assert.Contains(t, got, "<head>A</head>\nB\n", "first closing tag untouched")
	})

	t.Run("tolerates whitespace inside the closing tag", func(t *testing.T) {
		doc := "<head>X</ head >"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.Contains(t, got, inj.Snippet)
	})

	t.Run("reproduces CRLF newlines", func(t *testing.T) {
		doc := "<html>\r\n<head>\r\n\t<title>X</title>\r\n</head>\r\n</html>\r\n"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.Contains(t, got, inj.Snippet+"\r\n</head>")
	})

	t.Run("tab indentation is reproduced", func(t *testing.T) {
		doc := "<head>\n\t\t</head>"
		got, changed := inj.InsertBeforeClosingHead(doc)
		require.True(t, changed)
		assert.Equal(t, "<head>\n\t\t"+"\t\t"+inj.Snippet+"\n</head>", got)
	})
}

func TestRun(t *testing.T) {
	inj := testInjector()
	root := t.TempDir()

	withHead := filepath.Join(root, "page.html")
	require.NoError(t, os.WriteFile(withHead, []byte("<html>\n<head>\n</head>\n</html>\n"), 0o644))
	noHead := filepath.Join(root, "fragment.html")
	require.NoError(t, os.WriteFile(noHead, []byte("<div>partial</div>\n"), 0o644))

	var out bytes.Buffer
	stats, err := inj.Run(root, []string{withHead, noHead}, &out)
	require.NoError(t, err)
	assert.Equal(t, Stats{Processed: 2, Updated: 1}, stats)
	assert.Equal(t, "Updated: page.html\n", out.String())

	updated, err := os.ReadFile(withHead)
	require.NoError(t, err)
	assert.Contains(t, string(updated), inj.Snippet)

	untouched, err := os.ReadFile(noHead)
	require.NoError(t, err)
	assert.Equal(t, "<div>partial</div>\n", string(untouched))

	t.Run("second run updates nothing", func(t *testing.T) {
		stats, err := inj.Run(root, []string{withHead, noHead}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, Stats{Processed: 2, Updated: 0}, stats)
	})
}
