package parser

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"sitecrawler/internal/storage"
)

// ExtractPage condenses an HTML body into its archive form: the
// document title plus a word-capped excerpt of the readable text.
// maxWords <= 0 means no cap. Unparseable input yields an empty page
// carrying only the URL.
func ExtractPage(pageURL string, body []byte, maxWords int) storage.Webpage {
	wp := storage.Webpage{URL: pageURL}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return wp
	}

	wp.Title = strings.TrimSpace(doc.Find("title").First().Text())

	// Remove noisy nodes
	doc.Find("script, style, nav, header, footer, aside").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	// Gather text from semantic tags
	var sb strings.Builder
	doc.Find("main, article, p, h1, h2, h3, h4, h5, h6, li").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(" ")
		sb.WriteString(strings.TrimSpace(s.Text()))
	})

	words := strings.FieldsFunc(sb.String(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	wp.Content = strings.Join(words, " ")
	wp.WordCount = len(words)
	return wp
}
