package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobextract-engine/internal/ai"
	"jobextract-engine/internal/fetch"
	"jobextract-engine/internal/pipeline"
)

type fixedFetcher struct {
	out fetch.Outcome
}

func (f fixedFetcher) Fetch(ctx context.Context, rawURL string) fetch.Outcome { return f.out }

func testRoutes(t *testing.T, out fetch.Outcome) http.Handler {
	t.Helper()
	aiEx, err := ai.New(ai.Config{}, nil)
	require.NoError(t, err)
	pipe := pipeline.New(fixedFetcher{out: out}, aiEx, nil, nil, nil)
	return Routes(Deps{Pipeline: pipe, Log: zap.NewNop()})
}

const postingHTML = `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Engineer","description":"Build.","hiringOrganization":{"name":"Acme"}}
</script></head><body></body></html>`

func TestExtractEndpoint(t *testing.T) {
	h := testRoutes(t, fetch.Outcome{HTML: postingHTML, StatusCode: 200})

	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(`{"url":"https://careers.example.com/jobs/1"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"company":"Acme"`)
	assert.Contains(t, body, `"job_title":"Engineer"`)
	assert.Contains(t, body, `"ad_source":"generic"`)
	assert.Contains(t, body, `"hiring_manager":""`)
	assert.Contains(t, body, `"extractionMethod":"hybrid-goquery-generic-grok-failed"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestExtractEndpointRejectsBadURL(t *testing.T) {
	h := testRoutes(t, fetch.Outcome{})

	for _, body := range []string{
		`{"url":""}`,
		`{"url":"not-a-url"}`,
		`{"url":"ftp://example.com/x"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)
	}
}

func TestExtractEndpointMethodNotAllowed(t *testing.T) {
	h := testRoutes(t, fetch.Outcome{})

	req := httptest.NewRequest(http.MethodGet, "/extract", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestExtractEndpointCaptchaSignal(t *testing.T) {
	h := testRoutes(t, fetch.Outcome{
		HTML:             `<html><div class="g-recaptcha"></div></html>`,
		StatusCode:       403,
		CaptchaSuspected: true,
	})

	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(`{"url":"https://www.linkedin.com/jobs/view/1"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"needs_manual_html":true`)
}

// The CAPTCHA retry round-trip: caller supplies the HTML, fetch is skipped.
func TestExtractEndpointWithSuppliedHTML(t *testing.T) {
	// fetcher would report a challenge; supplied HTML must bypass it
	h := testRoutes(t, fetch.Outcome{StatusCode: 403, CaptchaSuspected: true})

	req := httptest.NewRequest(http.MethodPost, "/extract",
		strings.NewReader(`{"url":"https://www.linkedin.com/jobs/view/1","html":"<html><head><script type=\"application/ld+json\">{\"@type\":\"JobPosting\",\"title\":\"Engineer\",\"description\":\"Build.\",\"hiringOrganization\":{\"name\":\"Acme\"}}</script></head><body></body></html>"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"ad_source":"linkedin"`)
	assert.NotContains(t, w.Body.String(), `"needs_manual_html":true`)
}

func TestHealth(t *testing.T) {
	h := testRoutes(t, fetch.Outcome{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}
