package parser

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestResolveLink(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "https://news.example.com/world/index.html")

	t.Run("resolves relative references against the base", func(t *testing.T) {
		t.Parallel()

		got, ok := ResolveLink(base, "/politics/story.html")
		require.True(t, ok)
		assert.Equal(t, "https://news.example.com/politics/story.html", got)

		got, ok = ResolveLink(base, "story2.html")
		require.True(t, ok)
		assert.Equal(t, "https://news.example.com/world/story2.html", got)
	})

	t.Run("keeps absolute URLs", func(t *testing.T) {
		t.Parallel()

		got, ok := ResolveLink(base, "http://other.example.org/page")
		require.True(t, ok)
		assert.Equal(t, "http://other.example.org/page", got)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		got, ok := ResolveLink(base, "/a/b.html#section-2")
		require.True(t, ok)
		assert.Equal(t, "https://news.example.com/a/b.html", got)

		// fragment-only href resolves to the base itself
		got, ok = ResolveLink(base, "#top")
		require.True(t, ok)
		assert.Equal(t, "https://news.example.com/world/index.html", got)
	})

	t.Run("rejects empty and whitespace hrefs", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "\t\n"} {
			_, ok := ResolveLink(base, raw)
			assert.False(t, ok, "raw=%q", raw)
		}
	})

	t.Run("rejects refused and non-http schemes", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"mailto:editor@example.com",
			"javascript:void(0)",
			"tel:+15551234567",
			"data:text/plain;base64,aGk=",
			"ftp://files.example.com/a.zip",
		} {
			_, ok := ResolveLink(base, raw)
			assert.False(t, ok, "raw=%q", raw)
		}
	})

	t.Run("rejects unparseable hrefs instead of failing", func(t *testing.T) {
		t.Parallel()

		_, ok := ResolveLink(base, "http://exa mple.com/%zz")
		assert.False(t, ok)
	})

	t.Run("adds a slash when the resolved path is empty", func(t *testing.T) {
		t.Parallel()

		got, ok := ResolveLink(base, "https://news.example.com")
		require.True(t, ok)
		assert.Equal(t, "https://news.example.com/", got)
	})
}

func TestHostInDomain(t *testing.T) {
	t.Parallel()

	assert.True(t, HostInDomain("example.com", "example.com"))
	assert.True(t, HostInDomain("blog.example.com", "example.com"))
	assert.True(t, HostInDomain("a.b.example.com", "example.com"))
	assert.True(t, HostInDomain("WWW.Example.com", "www.example.com"))
	assert.True(t, HostInDomain("Blog.Example.COM", "example.com"))
	assert.True(t, HostInDomain("example.com", "EXAMPLE.com"))
	assert.False(t, HostInDomain("example.com.evil.org", "example.com"))
	assert.False(t, HostInDomain("notexample.com", "example.com"))
	assert.False(t, HostInDomain("", "example.com"))
	assert.False(t, HostInDomain("example.com", ""))
}
