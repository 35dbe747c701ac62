// Package extract holds the deterministic, site-aware HTML parsers.
// Each variant is a pure function over (html, url): no network, no model
// calls, identical output for identical input.
package extract

import (
	"jobextract-engine/internal/domain"
)

// Extractor parses an already-fetched page into a partial record.
type Extractor interface {
	Parse(html, rawURL string) domain.ExtractionResult
}

// ForSource selects the variant for a classified board. Adding a board is a
// new variant here plus a classifier branch; nothing downstream changes.
func ForSource(src domain.AdSource) Extractor {
	switch src {
	case domain.SourceLinkedIn:
		return LinkedIn{}
	case domain.SourceIndeed:
		return Indeed{}
	case domain.SourceGlassdoor:
		return Glassdoor{}
	default:
		return Generic{}
	}
}
