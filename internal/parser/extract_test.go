package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("captures title and readable text", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<html><head>
			<title> Front Page </title>
			<script>var tracking = true;</script>
		</head><body>
			<nav><p>menu entry</p></nav>
			<h1>Headline</h1>
			<p>First paragraph of the story.</p>
			<footer><p>copyright notice</p></footer>
		</body></html>`)

		wp := ExtractPage("https://example.com/story", body, 0)

		assert.Equal(t, "https://example.com/story", wp.URL)
		assert.Equal(t, "Front Page", wp.Title)
		assert.Equal(t, "Headline First paragraph of the story", wp.Content)
		assert.NotContains(t, wp.Content, "menu")
		assert.NotContains(t, wp.Content, "copyright")
		assert.NotContains(t, wp.Content, "tracking")
		assert.Equal(t, 6, wp.WordCount)
	})

	t.Run("caps the excerpt at maxWords", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<body><p>one two three four five six</p></body>`)
		wp := ExtractPage("https://example.com/", body, 3)

		assert.Equal(t, "one two three", wp.Content)
		assert.Equal(t, 3, wp.WordCount)
	})

	t.Run("empty body keeps only the URL", func(t *testing.T) {
		t.Parallel()

		wp := ExtractPage("https://example.com/blank", nil, 100)
		assert.Equal(t, "https://example.com/blank", wp.URL)
		assert.Empty(t, wp.Title)
		assert.Empty(t, wp.Content)
		assert.Zero(t, wp.WordCount)
	})
}
