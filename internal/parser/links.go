package parser

import (
	"bytes"
	"net/url"

	"golang.org/x/net/html"
)

// ExtractLinks tokenizes an HTML body and returns the distinct set of
// normalized outlinks, in first-seen order. Malformed markup is handled
// best-effort: the tokenizer yields whatever anchors it can parse before
// giving up, and we never return an error.
func ExtractLinks(base *url.URL, body []byte) []string {
	z := html.NewTokenizer(bytes.NewReader(body))
	seen := make(map[string]struct{})
	links := make([]string, 0)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		t := z.Token()
		if t.Data != "a" {
			continue
		}
		for _, a := range t.Attr {
			if a.Key != "href" {
				continue
			}
			if abs, ok := ResolveLink(base, a.Val); ok {
				if _, dup := seen[abs]; !dup {
					seen[abs] = struct{}{}
					links = append(links, abs)
				}
			}
			break
		}
	}
	return links
}
