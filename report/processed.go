package report

import "time"

// ProcessedAIFlawReport is the fully-resolved, shareable artifact of the
// pipeline. Known entries precede unknown entries; each group preserves the
// input order of the raw report.
type ProcessedAIFlawReport struct {
	// ReportID is the unique id generated at processing time.
	ReportID string `json:"report_id"`

	// CreatedAt is the UTC processing timestamp.
	CreatedAt time.Time `json:"created_at"`

	// AISystems is the ordered sequence of resolved system identities.
	AISystems []AISystem `json:"ai_systems"`

	// FlawDescription is copied verbatim from the raw report.
	FlawDescription string `json:"flaw_description"`

	// FlawSeverity is copied verbatim from the raw report.
	FlawSeverity Severity `json:"flaw_severity"`
}
