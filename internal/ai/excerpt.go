package ai

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements that carry no posting content. Stripping them first keeps the
// excerpt inside the budget without losing the description body.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// Excerpt reduces fetched markup to a bounded plain-text representation that
// preserves company/title/description/contact content. Sending whole pages
// to the model wastes tokens on markup.
func Excerpt(html string, maxChars int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return truncate(collapse(html), maxChars)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return truncate(collapse(doc.Text()), maxChars)
	}
	return truncate(collapse(content.Text()), maxChars)
}

func collapse(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	// ToValidUTF8 drops the rune a byte-wise cut may have split
	return strings.ToValidUTF8(s[:maxChars], "")
}
