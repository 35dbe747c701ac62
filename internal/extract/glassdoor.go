package extract

import (
	"jobextract-engine/internal/domain"
)

const glassdoorMethod = "goquery-glassdoor"

// Glassdoor targets glassdoor.com/job-listing pages.
type Glassdoor struct{}

func (Glassdoor) Parse(html, rawURL string) domain.ExtractionResult {
	doc, ok := parseDoc(html)
	if !ok {
		return domain.Degraded(glassdoorMethod+"-failed", domain.SourceGlassdoor)
	}

	company, title, desc := "", "", ""
	if jp, found := findJobPosting(doc); found {
		company, title, desc = jp.Company, jp.Title, jp.Description
	}

	if title == "" {
		title = firstText(doc,
			`[data-test="job-title"]`,
			`h1[id^="jd-job-title"]`,
			"div.jobHeader h1",
		)
	}
	if company == "" {
		company = firstText(doc,
			`[data-test="employer-name"]`,
			"div.employerName",
			`h4[data-test="detailEmployer"]`,
		)
	}
	if desc == "" {
		desc = cleanText(doc.Find("section#JobDescriptionContainer").First().Text())
		if desc == "" {
			desc = cleanText(doc.Find(`div[class*="jobDescription"]`).First().Text())
		}
	}

	return domain.NewResult(company, title, desc, "", glassdoorMethod, domain.SourceGlassdoor)
}
