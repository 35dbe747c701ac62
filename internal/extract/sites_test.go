package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobextract-engine/internal/domain"
)

const linkedinTopcard = `<!DOCTYPE html>
<html><body>
<h1 class="top-card-layout__title">Senior Go Engineer</h1>
<a class="topcard__org-name-link" href="/company/acme">Acme Corp</a>
<div class="show-more-less-html__markup">
  <p>We build distributed systems in Go.</p>
  <p>You will own the extraction pipeline.</p>
</div>
<div class="message-the-recruiter">
  <h3 class="base-main-card__title">Jane Doe</h3>
</div>
</body></html>`

const indeedPage = `<!DOCTYPE html>
<html><body>
<h1 data-testid="jobsearch-JobInfoHeader-title">Site Reliability Engineer</h1>
<div data-testid="inlineHeader-companyName"><a href="/cmp/globex">Globex</a></div>
<div id="jobDescriptionText"><p>Keep five nines.</p><p>Carry the pager.</p></div>
</body></html>`

const glassdoorPage = `<!DOCTYPE html>
<html><body>
<div data-test="employer-name">Umbrella Corp</div>
<h1 data-test="job-title">Research Engineer</h1>
<section id="JobDescriptionContainer"><p>Do science, carefully.</p></section>
</body></html>`

func TestLinkedInSelectors(t *testing.T) {
	res := LinkedIn{}.Parse(linkedinTopcard, "https://www.linkedin.com/jobs/view/123")

	assert.Equal(t, "Acme Corp", res.Company)
	assert.Equal(t, "Senior Go Engineer", res.JobTitle)
	assert.Contains(t, res.FullDescription, "extraction pipeline")
	assert.Equal(t, "Jane Doe", res.HiringManager)
	assert.Equal(t, linkedinMethod, res.Method)
	assert.Equal(t, domain.SourceLinkedIn, res.AdSource)
	assert.True(t, res.IsComplete)
}

func TestLinkedInPrefersJSONLD(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type":"JobPosting","title":"Staff Engineer","description":"Lead the platform.","hiringOrganization":{"name":"Acme Corp"}}
	</script></head><body><h1 class="top-card-layout__title">Stale DOM Title</h1></body></html>`

	res := LinkedIn{}.Parse(html, "https://www.linkedin.com/jobs/view/456")
	assert.Equal(t, "Staff Engineer", res.JobTitle)
	assert.Equal(t, "Acme Corp", res.Company)
}

func TestLinkedInEmptyHTML(t *testing.T) {
	res := LinkedIn{}.Parse("", "https://www.linkedin.com/jobs/view/123")

	assert.Equal(t, linkedinMethod+"-failed", res.Method)
	assert.Equal(t, domain.NotSpecified, res.Company)
	assert.Equal(t, "", res.HiringManager)
	assert.False(t, res.IsComplete)
}

func TestIndeedSelectors(t *testing.T) {
	res := Indeed{}.Parse(indeedPage, "https://www.indeed.com/viewjob?jk=abc")

	assert.Equal(t, "Globex", res.Company)
	assert.Equal(t, "Site Reliability Engineer", res.JobTitle)
	assert.Contains(t, res.FullDescription, "pager")
	assert.Equal(t, "", res.HiringManager)
	assert.Equal(t, indeedMethod, res.Method)
	assert.True(t, res.IsComplete)
}

func TestGlassdoorSelectors(t *testing.T) {
	res := Glassdoor{}.Parse(glassdoorPage, "https://www.glassdoor.com/job-listing/x")

	assert.Equal(t, "Umbrella Corp", res.Company)
	assert.Equal(t, "Research Engineer", res.JobTitle)
	assert.Contains(t, res.FullDescription, "science")
	assert.Equal(t, glassdoorMethod, res.Method)
	assert.True(t, res.IsComplete)
}

func TestForSource(t *testing.T) {
	assert.IsType(t, LinkedIn{}, ForSource(domain.SourceLinkedIn))
	assert.IsType(t, Indeed{}, ForSource(domain.SourceIndeed))
	assert.IsType(t, Glassdoor{}, ForSource(domain.SourceGlassdoor))
	assert.IsType(t, Generic{}, ForSource(domain.SourceGeneric))
	assert.IsType(t, Generic{}, ForSource(domain.AdSource("unknown")))
}

// Missing individual fields degrade to their sentinel without aborting the
// rest of the parse.
func TestPartialFieldsKeepParsing(t *testing.T) {
	html := `<html><body><h1 data-testid="jobsearch-JobInfoHeader-title">Engineer</h1></body></html>`
	res := Indeed{}.Parse(html, "https://www.indeed.com/viewjob?jk=abc")

	assert.Equal(t, "Engineer", res.JobTitle)
	assert.Equal(t, domain.NotSpecified, res.Company)
	assert.False(t, res.IsComplete)
}
