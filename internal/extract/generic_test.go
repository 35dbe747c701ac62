package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobextract-engine/internal/domain"
)

const genericJSONLD = `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org/",
  "@type": "JobPosting",
  "title": "Backend Engineer",
  "description": "<p>Build and run our Go services.</p><p>5+ years experience.</p>",
  "hiringOrganization": {"@type": "Organization", "name": "Acme"}
}
</script>
</head><body><h1>Careers</h1></body></html>`

const genericOGOnly = `<!DOCTYPE html>
<html><head>
<meta property="og:title" content="Platform Engineer"/>
<meta property="og:site_name" content="Initech"/>
<meta property="og:description" content="Keep the printers running."/>
</head><body>
<main><p>Initech is hiring a platform engineer.</p><p>You will own the build system.</p></main>
</body></html>`

func TestGenericJSONLD(t *testing.T) {
	res := Generic{}.Parse(genericJSONLD, "https://careers.example.com/jobs/1")

	assert.Equal(t, "Acme", res.Company)
	assert.Equal(t, "Backend Engineer", res.JobTitle)
	assert.Contains(t, res.FullDescription, "Build and run our Go services.")
	assert.NotContains(t, res.FullDescription, "<p>")
	assert.Equal(t, "", res.HiringManager)
	assert.Equal(t, domain.SourceGeneric, res.AdSource)
	assert.Equal(t, genericMethod, res.Method)
	assert.True(t, res.IsComplete)
}

func TestGenericJSONLDGraph(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@context":"https://schema.org","@graph":[
	  {"@type":"WebSite","name":"Careers"},
	  {"@type":"JobPosting","title":"SRE","description":"Run prod.","hiringOrganization":{"name":"Hooli"}}
	]}</script></head><body></body></html>`

	res := Generic{}.Parse(html, "https://careers.example.com/jobs/2")
	assert.Equal(t, "Hooli", res.Company)
	assert.Equal(t, "SRE", res.JobTitle)
	assert.True(t, res.IsComplete)
}

func TestGenericOGFallback(t *testing.T) {
	res := Generic{}.Parse(genericOGOnly, "https://initech.example.com/jobs/7")

	assert.Equal(t, "Initech", res.Company)
	assert.Equal(t, "Platform Engineer", res.JobTitle)
	assert.Contains(t, res.FullDescription, "platform engineer")
	assert.True(t, res.IsComplete)
}

func TestGenericEmptyHTML(t *testing.T) {
	res := Generic{}.Parse("", "https://careers.example.com/jobs/1")

	assert.Equal(t, domain.NotSpecified, res.Company)
	assert.Equal(t, domain.NotSpecified, res.JobTitle)
	assert.Empty(t, res.FullDescription)
	assert.Equal(t, "", res.HiringManager)
	assert.Equal(t, genericMethod+"-failed", res.Method)
	assert.False(t, res.IsComplete)
}

// Structured extraction is a pure function: repeated calls over the same
// input must produce identical results.
func TestGenericDeterministic(t *testing.T) {
	first := Generic{}.Parse(genericJSONLD, "https://careers.example.com/jobs/1")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Generic{}.Parse(genericJSONLD, "https://careers.example.com/jobs/1"))
	}
}

func TestGenericMalformedJSONLDIsSkipped(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{not json at all</script>
	<meta property="og:title" content="Data Engineer"/>
	</head><body><main><p>Pipelines.</p><p>Lots of them.</p></main></body></html>`

	res := Generic{}.Parse(html, "https://careers.example.com/jobs/3")
	assert.Equal(t, "Data Engineer", res.JobTitle)
}
