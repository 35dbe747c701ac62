package domain

// NotSpecified marks a field no extractor could determine.
// HiringManager is the one exception: its absent value is always "".
const NotSpecified = "Not specified"

// AdSource identifies the job board a posting URL belongs to.
type AdSource string

const (
	SourceLinkedIn  AdSource = "linkedin"
	SourceIndeed    AdSource = "indeed"
	SourceGlassdoor AdSource = "glassdoor"
	SourceGeneric   AdSource = "generic"
)

// SourceRequest is one extraction invocation. HTML, when set, is
// caller-supplied markup that bypasses the fetch step (CAPTCHA retry path).
type SourceRequest struct {
	URL         string
	HTML        string
	RequestedBy string
}

// ExtractionResult is the partial/complete record one strategy produced.
// Instances are built through NewResult and never mutated afterwards.
type ExtractionResult struct {
	Company         string
	JobTitle        string
	FullDescription string
	HiringManager   string
	AdSource        AdSource
	Method          string
	IsComplete      bool
}

// NewResult normalizes raw field values into an ExtractionResult.
// Blank company/title collapse to the sentinel, a sentinel hiring manager
// collapses to "", and IsComplete is recomputed from the content.
func NewResult(company, title, desc, manager, method string, source AdSource) ExtractionResult {
	if company == "" {
		company = NotSpecified
	}
	if title == "" {
		title = NotSpecified
	}
	if manager == NotSpecified {
		manager = ""
	}
	return ExtractionResult{
		Company:         company,
		JobTitle:        title,
		FullDescription: desc,
		HiringManager:   manager,
		AdSource:        source,
		Method:          method,
		IsComplete:      Complete(company, title, desc),
	}
}

// Degraded is the all-sentinel result a strategy returns when it cannot run.
func Degraded(method string, source AdSource) ExtractionResult {
	return NewResult("", "", "", "", method, source)
}

// Complete reports whether the minimum usable data is present:
// company and title both resolved, plus a non-empty description.
func Complete(company, title, desc string) bool {
	return company != "" && company != NotSpecified &&
		title != "" && title != NotSpecified &&
		desc != ""
}

// ReconciledRecord is the final payload handed back to the caller.
type ReconciledRecord struct {
	Success         bool     `json:"success"`
	URL             string   `json:"url"`
	Company         string   `json:"company"`
	JobTitle        string   `json:"job_title"`
	AdSource        AdSource `json:"ad_source"`
	FullDescription string   `json:"full_description"`
	HiringManager   string   `json:"hiring_manager"`
	Method          string   `json:"extractionMethod"`

	// NeedsManualHTML is set when the fetch looked like an anti-bot
	// challenge and neither strategy recovered usable data. The caller can
	// re-invoke with HTML obtained through a user-completed challenge.
	NeedsManualHTML bool `json:"needs_manual_html,omitempty"`
}
