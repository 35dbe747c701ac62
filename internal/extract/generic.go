package extract

import (
	"github.com/PuerkitoBio/goquery"

	"jobextract-engine/internal/domain"
)

const genericMethod = "goquery-generic"

// Generic is the pure fallback for unrecognized hosts: JSON-LD JobPosting
// first, then Open Graph meta tags, then loose heading/content heuristics.
type Generic struct{}

func (Generic) Parse(html, rawURL string) domain.ExtractionResult {
	doc, ok := parseDoc(html)
	if !ok {
		return domain.Degraded(genericMethod+"-failed", domain.SourceGeneric)
	}

	company, title, desc := "", "", ""
	if jp, found := findJobPosting(doc); found {
		company, title, desc = jp.Company, jp.Title, jp.Description
	}

	if title == "" {
		title = metaContent(doc, "og:title")
	}
	if title == "" {
		title = firstText(doc, "h1")
	}

	if company == "" {
		company = metaContent(doc, "og:site_name")
	}
	if company == "" {
		company = metaContent(doc, "author")
	}

	if desc == "" {
		desc = bodyContent(doc)
	}
	if desc == "" {
		desc = metaContent(doc, "og:description")
	}

	return domain.NewResult(company, title, desc, "", genericMethod, domain.SourceGeneric)
}

// bodyContent pulls the page's main prose, preferring semantic containers
// over the whole body.
func bodyContent(doc *goquery.Document) string {
	for _, sel := range []string{"main", "article", `div[class*="description"]`} {
		if t := cleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	// whole-body text is noisy; only worth it when paragraphs exist
	if doc.Find("p").Length() >= 2 {
		return cleanText(doc.Find("body").First().Text())
	}
	return ""
}
