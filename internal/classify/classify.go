// Package classify maps job-posting URLs to their source board.
package classify

import (
	"net/url"
	"strings"

	"jobextract-engine/internal/domain"
)

// Classify returns the board a URL belongs to by host substring.
// Unknown hosts select the generic extractor; that is not a failure.
func Classify(rawURL string) domain.AdSource {
	host := strings.ToLower(rawURL)
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}

	switch {
	case strings.Contains(host, "linkedin.com"):
		return domain.SourceLinkedIn
	case strings.Contains(host, "indeed.com"):
		return domain.SourceIndeed
	case strings.Contains(host, "glassdoor.com"):
		return domain.SourceGlassdoor
	default:
		return domain.SourceGeneric
	}
}
