// Package export renders processed flaw reports as RDF.
//
// The JSON-LD projection lives in package jsonld; this package covers the
// line-based serializations (Turtle, N-Triples) built from the same
// vocabulary IRIs.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// triple is a single subject-predicate-object statement. Objects are either
// IRIs (ref) or string literals.
type triple struct {
	subject   string
	predicate string
	object    string
	ref       bool
}

// OrganizationResolver resolves a known system's identifier to its
// publisher organization.
type OrganizationResolver interface {
	ResolveOrganization(systemID string) (report.Organization, error)
}

// ReportExporter serializes processed reports to RDF.
type ReportExporter struct {
	prefixes map[string]string
}

// NewReportExporter creates an exporter with the standard prefixes.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{
		prefixes: map[string]string{
			"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
			"schema": aifr.SchemaOrg,
			"aifr":   aifr.Namespace,
		},
	}
}

// Export serializes the report and its resolved organizations to the given
// format. Organization resolution failures fail the whole export.
func (e *ReportExporter) Export(processed *report.ProcessedAIFlawReport, resolver OrganizationResolver, format Format) (string, error) {
	triples, err := buildReportTriples(processed, resolver)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatTurtle:
		return e.toTurtle(triples), nil
	case FormatNTriples:
		return toNTriples(triples), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// buildReportTriples flattens a processed report into RDF statements.
func buildReportTriples(processed *report.ProcessedAIFlawReport, resolver OrganizationResolver) ([]triple, error) {
	reportIRI := aifr.ReportIRI(processed.ReportID)

	triples := []triple{
		{reportIRI, rdfType, aifr.ClassFlawReport, true},
		{reportIRI, aifr.SchemaDescription, processed.FlawDescription, false},
		{reportIRI, aifr.PropSeverity, string(processed.FlawSeverity), false},
		{reportIRI, aifr.SchemaDateCreated, processed.CreatedAt.Format("2006-01-02T15:04:05.999999Z07:00"), false},
	}

	for _, sys := range processed.AISystems {
		triples = append(triples,
			triple{reportIRI, aifr.PropAISystem, sys.ID, true},
			triple{sys.ID, rdfType, aifr.ClassSoftwareApplication, true},
		)

		if sys.SystemType == report.SystemUnknown {
			triples = append(triples,
				triple{sys.ID, aifr.SchemaDescription, sys.Description, false})
			continue
		}

		triples = append(triples,
			triple{sys.ID, aifr.SchemaName, sys.Name, false})
		if sys.Version != "" {
			triples = append(triples,
				triple{sys.ID, aifr.SchemaVersion, sys.Version, false})
		}

		org, err := resolver.ResolveOrganization(sys.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve organization for %s: %w", sys.ID, err)
		}

		triples = append(triples,
			triple{sys.ID, aifr.SchemaPublisher, org.ID, true},
			triple{org.ID, rdfType, aifr.ClassOrganization, true},
			triple{org.ID, aifr.SchemaName, org.Name, false},
		)
		if org.URL != "" {
			triples = append(triples, triple{org.ID, aifr.SchemaURL, org.URL, false})
		}
		for _, same := range org.SameAs {
			triples = append(triples, triple{org.ID, aifr.SchemaSameAs, same, true})
		}
	}

	return triples, nil
}

// toTurtle serializes triples grouped by subject.
func (e *ReportExporter) toTurtle(triples []triple) string {
	var sb strings.Builder

	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	// Group by subject, preserving first-seen order.
	var subjects []string
	grouped := make(map[string][]triple)
	for _, t := range triples {
		if _, seen := grouped[t.subject]; !seen {
			subjects = append(subjects, t.subject)
		}
		grouped[t.subject] = append(grouped[t.subject], t)
	}

	for _, subject := range subjects {
		group := grouped[subject]
		sb.WriteString(fmt.Sprintf("<%s>\n", subject))
		for i, t := range group {
			terminator := " ;"
			if i == len(group)-1 {
				terminator = " ."
			}
			if t.predicate == rdfType {
				sb.WriteString(fmt.Sprintf("    a <%s>%s\n", t.object, terminator))
				continue
			}
			sb.WriteString(fmt.Sprintf("    <%s> %s%s\n", t.predicate, formatObject(t), terminator))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// toNTriples serializes one statement per line.
func toNTriples(triples []triple) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", t.subject, t.predicate, formatObject(t)))
	}
	return sb.String()
}

func formatObject(t triple) string {
	if t.ref {
		return fmt.Sprintf("<%s>", t.object)
	}
	return fmt.Sprintf("%q", t.object)
}
