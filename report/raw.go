package report

import (
	"encoding/json"
	"fmt"
)

// MinDescriptionLen is the minimum length of a flaw description.
const MinDescriptionLen = 10

// ValidationError describes a malformed or missing field in a raw report.
type ValidationError struct {
	// Field is the raw input field that failed validation.
	Field string

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid raw report: %s: %s", e.Field, e.Message)
}

// UnknownSystem is a free-text description of an AI system the reporting
// user could not identify by slug.
type UnknownSystem struct {
	Description string `json:"description"`
}

// RawAIFlawReport is the untrusted form input: known systems referenced by
// slug, unknown systems by free text, plus the flaw description and severity.
type RawAIFlawReport struct {
	// AISystems lists known AI system slugs from the frontend dropdown.
	AISystems []string `json:"ai_systems"`

	// AISystemsUnknown lists systems the user described in free text.
	AISystemsUnknown []UnknownSystem `json:"ai_systems_unknown"`

	// FlawDescription describes the flaw or issue.
	FlawDescription string `json:"flaw_description"`

	// FlawSeverity is the severity label.
	FlawSeverity Severity `json:"flaw_severity"`
}

// ParseRaw decodes and validates a raw report from form-submitted JSON.
func ParseRaw(data []byte) (*RawAIFlawReport, error) {
	var raw RawAIFlawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Field: "body", Message: err.Error()}
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Validate checks the shape and types of the raw report. It returns a
// *ValidationError describing the first failure found.
func (r *RawAIFlawReport) Validate() error {
	if len(r.AISystems) == 0 && len(r.AISystemsUnknown) == 0 {
		return &ValidationError{
			Field:   "ai_systems",
			Message: "must specify at least one AI system (known or unknown)",
		}
	}

	for i, slug := range r.AISystems {
		if slug == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("ai_systems[%d]", i),
				Message: "slug must be a non-empty string",
			}
		}
	}

	for i, unknown := range r.AISystemsUnknown {
		if unknown.Description == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("ai_systems_unknown[%d].description", i),
				Message: "description must be non-empty",
			}
		}
	}

	if len(r.FlawDescription) < MinDescriptionLen {
		return &ValidationError{
			Field:   "flaw_description",
			Message: fmt.Sprintf("must be at least %d characters", MinDescriptionLen),
		}
	}

	if !r.FlawSeverity.IsValid() {
		return &ValidationError{
			Field:   "flaw_severity",
			Message: fmt.Sprintf("must be one of %v", Severities()),
		}
	}

	return nil
}
