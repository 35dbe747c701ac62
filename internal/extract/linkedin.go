package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobextract-engine/internal/domain"
)

const linkedinMethod = "goquery-linkedin"

// LinkedIn targets linkedin.com/jobs/view pages. Public job views ship a
// JSON-LD JobPosting; the topcard selectors cover logged-out HTML where the
// block is stripped.
type LinkedIn struct{}

func (LinkedIn) Parse(html, rawURL string) domain.ExtractionResult {
	doc, ok := parseDoc(html)
	if !ok {
		return domain.Degraded(linkedinMethod+"-failed", domain.SourceLinkedIn)
	}

	company, title, desc := "", "", ""
	if jp, found := findJobPosting(doc); found {
		company, title, desc = jp.Company, jp.Title, jp.Description
	}

	if title == "" {
		title = firstText(doc,
			"h1.top-card-layout__title",
			"h1.topcard__title",
			"h1.t-24",
		)
	}
	if company == "" {
		company = firstText(doc,
			"a.topcard__org-name-link",
			"span.topcard__flavor",
			"a.top-card-layout__company-url",
		)
	}
	if desc == "" {
		desc = cleanText(doc.Find("div.show-more-less-html__markup").First().Text())
		if desc == "" {
			desc = cleanText(doc.Find("div.description__text").First().Text())
		}
	}

	// "Meet the hiring team" card, when the poster chose to show it
	manager := firstText(doc,
		"div.message-the-recruiter a.base-card__full-link span.sr-only",
		"div.message-the-recruiter h3.base-main-card__title",
	)
	manager = strings.TrimSpace(manager)

	return domain.NewResult(company, title, desc, manager, linkedinMethod, domain.SourceLinkedIn)
}

// parseDoc wraps goquery parsing with the empty-input degrade path shared by
// every variant: no HTML from upstream means an all-sentinel result.
func parseDoc(html string) (*goquery.Document, bool) {
	if strings.TrimSpace(html) == "" {
		return nil, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return doc, true
}
