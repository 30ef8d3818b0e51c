// Package processor converts validated raw flaw reports into processed
// reports by resolving known-system slugs against the knowledge base and
// synthesizing placeholder identities for unknown systems.
package processor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

// UnknownSystemName is the fixed placeholder name for unknown systems.
const UnknownSystemName = "Unknown System"

// SystemResolver resolves a slug to a known-system identity.
type SystemResolver interface {
	ResolveSystem(slug string) (report.AISystem, error)
}

// UnresolvedSystemError means a declared-known slug could not be resolved.
// It is terminal for the run: no partial processed report is produced.
type UnresolvedSystemError struct {
	// Slug is the slug that failed to resolve.
	Slug string

	// Err is the underlying resolver error.
	Err error
}

// Error implements the error interface.
func (e *UnresolvedSystemError) Error() string {
	return fmt.Sprintf("unresolved system slug %q: %v", e.Slug, e.Err)
}

// Unwrap returns the underlying resolver error.
func (e *UnresolvedSystemError) Unwrap() error {
	return e.Err
}

// Processor turns raw reports into processed reports.
//
// Resolution policy is strict: slugs are offered to the user from the
// knowledge base, so a miss indicates drift and fails the whole run rather
// than degrading to a placeholder.
type Processor struct {
	resolver SystemResolver

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// New creates a Processor backed by the given resolver.
func New(resolver SystemResolver) *Processor {
	return &Processor{
		resolver: resolver,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Process resolves every system reference in raw and produces a new
// immutable processed report. Known entries precede unknown entries, each
// group preserving input order.
func (p *Processor) Process(raw *report.RawAIFlawReport) (*report.ProcessedAIFlawReport, error) {
	// Raw reports arrive validated, but the invariants below depend on it.
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	reportID := p.newID()

	systems := make([]report.AISystem, 0, len(raw.AISystems)+len(raw.AISystemsUnknown))

	for _, slug := range raw.AISystems {
		sys, err := p.resolver.ResolveSystem(slug)
		if err != nil {
			unresolvedSystems.Inc()
			return nil, &UnresolvedSystemError{Slug: slug, Err: err}
		}
		systems = append(systems, sys)
	}

	for i, unknown := range raw.AISystemsUnknown {
		systems = append(systems, report.AISystem{
			ID:          aifr.UnknownSystemIRI(reportID, i+1),
			Name:        UnknownSystemName,
			DisplayName: UnknownSystemName,
			SystemType:  report.SystemUnknown,
			Description: unknown.Description,
		})
	}

	processed := &report.ProcessedAIFlawReport{
		ReportID:        reportID,
		CreatedAt:       p.now().UTC(),
		AISystems:       systems,
		FlawDescription: raw.FlawDescription,
		FlawSeverity:    raw.FlawSeverity,
	}

	reportsProcessed.WithLabelValues(string(raw.FlawSeverity)).Inc()
	unknownSynthesized.Add(float64(len(raw.AISystemsUnknown)))

	return processed, nil
}
