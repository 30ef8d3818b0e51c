package jsonld

import (
	"fmt"
	"strings"

	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

// namePrefix is the fixed prefix of the synthesized report name.
const namePrefix = "AI Flaw Report: "

// OrganizationResolver resolves a known system's canonical identifier to
// its publisher organization.
type OrganizationResolver interface {
	ResolveOrganization(systemID string) (report.Organization, error)
}

// OrganizationNotFoundError means a known system lacks a resolvable
// publisher. This is a data-integrity error and fails the whole projection;
// the projector never substitutes defaults for missing organization data.
type OrganizationNotFoundError struct {
	// SystemID is the canonical identifier of the system whose publisher
	// could not be resolved.
	SystemID string

	// Err is the underlying resolver error.
	Err error
}

// Error implements the error interface.
func (e *OrganizationNotFoundError) Error() string {
	return fmt.Sprintf("no organization for system %q: %v", e.SystemID, e.Err)
}

// Unwrap returns the underlying resolver error.
func (e *OrganizationNotFoundError) Unwrap() error {
	return e.Err
}

// Project converts a processed report into its JSON-LD document. It is
// pure given a resolver: the same report against an unchanged knowledge
// base always projects to the same document.
func Project(processed *report.ProcessedAIFlawReport, resolver OrganizationResolver) (*Document, error) {
	names := make([]string, 0, len(processed.AISystems))
	nodes := make([]SystemNode, 0, len(processed.AISystems))

	for _, sys := range processed.AISystems {
		names = append(names, sys.DisplayName)

		if sys.SystemType == report.SystemUnknown {
			nodes = append(nodes, SystemNode{
				Type:        aifr.TypeSoftwareApplication,
				ID:          sys.ID,
				Description: sys.Description,
			})
			continue
		}

		org, err := resolver.ResolveOrganization(sys.ID)
		if err != nil {
			return nil, &OrganizationNotFoundError{SystemID: sys.ID, Err: err}
		}

		nodes = append(nodes, SystemNode{
			Type:    aifr.TypeSoftwareApplication,
			ID:      sys.ID,
			Name:    sys.Name,
			Version: sys.Version,
			Publisher: &OrganizationNode{
				Type:   aifr.TypeOrganization,
				ID:     org.ID,
				Name:   org.Name,
				URL:    org.URL,
				SameAs: org.SameAs,
			},
		})
	}

	return &Document{
		Context:     NewContext(),
		Type:        aifr.TypeFlawReport,
		ID:          aifr.ReportIRI(processed.ReportID),
		Name:        namePrefix + strings.Join(names, ", "),
		Description: processed.FlawDescription,
		AISystem:    nodes,
		Severity:    processed.FlawSeverity,
	}, nil
}
