package extract

import (
	"jobextract-engine/internal/domain"
)

const indeedMethod = "goquery-indeed"

// Indeed targets indeed.com/viewjob pages. Indeed rotates its hashed CSS
// classes constantly; data-testid attributes and the #jobDescriptionText
// container are the only selectors that survive redesigns.
type Indeed struct{}

func (Indeed) Parse(html, rawURL string) domain.ExtractionResult {
	doc, ok := parseDoc(html)
	if !ok {
		return domain.Degraded(indeedMethod+"-failed", domain.SourceIndeed)
	}

	company, title, desc := "", "", ""
	if jp, found := findJobPosting(doc); found {
		company, title, desc = jp.Company, jp.Title, jp.Description
	}

	if title == "" {
		title = firstText(doc,
			`h1[data-testid="jobsearch-JobInfoHeader-title"]`,
			"h1.jobsearch-JobInfoHeader-title",
			"h1",
		)
	}
	if company == "" {
		company = firstText(doc,
			`[data-testid="inlineHeader-companyName"]`,
			`[data-company-name="true"]`,
			"div.jobsearch-InlineCompanyRating div",
		)
	}
	if desc == "" {
		desc = cleanText(doc.Find("#jobDescriptionText").First().Text())
	}

	// Indeed never exposes the poster; the AI side is the only chance.
	return domain.NewResult(company, title, desc, "", indeedMethod, domain.SourceIndeed)
}
