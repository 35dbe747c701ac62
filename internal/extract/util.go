package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// firstText returns the cleaned text of the first selector that matches.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if t := cleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// htmlToText flattens an HTML fragment (JSON-LD descriptions ship as
// markup) into plain text. Falls back to the raw string on parse failure.
func htmlToText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return cleanText(fragment)
	}
	return cleanText(doc.Text())
}

func metaContent(doc *goquery.Document, property string) string {
	sel := `meta[property="` + property + `"], meta[name="` + property + `"]`
	if v, ok := doc.Find(sel).First().Attr("content"); ok {
		return cleanText(v)
	}
	return ""
}
