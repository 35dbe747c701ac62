package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobPosting is the slice of schema.org JobPosting we care about.
type jobPosting struct {
	Title       string
	Company     string
	Description string
}

// findJobPosting scans every <script type="application/ld+json"> block for a
// JobPosting object. Boards embed these for search engines, which makes them
// far more stable than CSS selectors, so every variant prefers them.
func findJobPosting(doc *goquery.Document) (jobPosting, bool) {
	var (
		found bool
		jp    jobPosting
	)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return true // malformed block, keep scanning
		}
		if p, ok := scanForJobPosting(raw); ok {
			jp, found = p, true
			return false
		}
		return true
	})
	return jp, found
}

// scanForJobPosting walks arbitrary JSON-LD: a bare object, a top-level
// array, or an @graph container.
func scanForJobPosting(v any) (jobPosting, bool) {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if p, ok := scanForJobPosting(item); ok {
				return p, true
			}
		}
	case map[string]any:
		if isJobPostingType(node["@type"]) {
			return postingFromMap(node), true
		}
		if graph, ok := node["@graph"]; ok {
			return scanForJobPosting(graph)
		}
	}
	return jobPosting{}, false
}

func isJobPostingType(t any) bool {
	switch tv := t.(type) {
	case string:
		return strings.EqualFold(tv, "JobPosting")
	case []any:
		for _, item := range tv {
			if s, ok := item.(string); ok && strings.EqualFold(s, "JobPosting") {
				return true
			}
		}
	}
	return false
}

func postingFromMap(m map[string]any) jobPosting {
	jp := jobPosting{
		Title:       cleanText(stringField(m, "title")),
		Description: htmlToText(stringField(m, "description")),
	}
	if org, ok := m["hiringOrganization"].(map[string]any); ok {
		jp.Company = cleanText(stringField(org, "name"))
	}
	if jp.Company == "" {
		// some boards flatten the organization to a plain string
		if s, ok := m["hiringOrganization"].(string); ok {
			jp.Company = cleanText(s)
		}
	}
	return jp
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
