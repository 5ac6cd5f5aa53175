package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "https://example.com/news/")

	t.Run("extracts and normalizes anchors", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<html><body>
			<a href="/a.html">A</a>
			<a href="b.html">B</a>
			<a href="https://other.org/c">C</a>
		</body></html>`)

		got := ExtractLinks(base, body)
		assert.Equal(t, []string{
			"https://example.com/a.html",
			"https://example.com/news/b.html",
			"https://other.org/c",
		}, got)
	})

	t.Run("dedups normalized links", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<body>
			<a href="/a.html">one</a>
			<a href="/a.html#top">same after defrag</a>
			<a href="https://example.com/a.html">same absolute</a>
		</body>`)

		got := ExtractLinks(base, body)
		assert.Equal(t, []string{"https://example.com/a.html"}, got)
	})

	t.Run("drops rejected hrefs", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<body>
			<a href="mailto:x@example.com">mail</a>
			<a href="javascript:alert(1)">js</a>
			<a>no href</a>
			<a href="">empty</a>
			<a href="/keep">keep</a>
		</body>`)

		got := ExtractLinks(base, body)
		assert.Equal(t, []string{"https://example.com/keep"}, got)
	})

	t.Run("is best-effort on malformed HTML", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<html><body><a href="/first">ok<div><<<a href="/second"`)
		got := ExtractLinks(base, body)
		assert.Contains(t, got, "https://example.com/first")
	})

	t.Run("returns nothing for non-HTML bytes", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ExtractLinks(base, []byte{0x89, 0x50, 0x4e, 0x47}))
		assert.Empty(t, ExtractLinks(base, nil))
	})
}
