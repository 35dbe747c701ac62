// Package reconcile merges the two extraction strategies' outputs into the
// final record. Pure and total: it always produces a record, even when both
// inputs degraded fully.
package reconcile

import (
	"fmt"

	"jobextract-engine/internal/domain"
)

// Merge applies field-level precedence between the structured and AI
// results. The AI wins where it produced a real value; the ad source always
// comes from the classifier, never from content extraction. Completeness is
// recomputed from the merged fields, so a title from one side and a company
// from the other can complete a record neither side completed alone.
func Merge(structured, ai domain.ExtractionResult, source domain.AdSource, rawURL string) domain.ReconciledRecord {
	company := pick(ai.Company, structured.Company)
	title := pick(ai.JobTitle, structured.JobTitle)
	desc := pickDesc(ai.FullDescription, structured.FullDescription)

	manager := ai.HiringManager
	if manager == "" {
		manager = structured.HiringManager
	}

	return domain.ReconciledRecord{
		Success:         domain.Complete(company, title, desc),
		URL:             rawURL,
		Company:         company,
		JobTitle:        title,
		AdSource:        source,
		FullDescription: desc,
		HiringManager:   manager,
		Method:          fmt.Sprintf("hybrid-%s-%s", structured.Method, ai.Method),
	}
}

func pick(preferred, fallback string) string {
	if preferred != "" && preferred != domain.NotSpecified {
		return preferred
	}
	if fallback != "" {
		return fallback
	}
	return domain.NotSpecified
}

func pickDesc(preferred, fallback string) string {
	if preferred != "" && preferred != domain.NotSpecified {
		return preferred
	}
	return fallback
}
