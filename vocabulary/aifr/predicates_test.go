package aifr

import (
	"strings"
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		ReportSeverity,
		ReportDescription,
		ReportCreatedAt,
		ReportIRIPredicate,
		SystemSlug,
		SystemName,
		SystemVersion,
		SystemKind,
		SystemDescription,
		ReferencesSystem,
	}

	for _, pred := range predicates {
		t.Run(pred, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(pred)
			if meta.Description == "" {
				t.Errorf("predicate %s not registered or missing description", pred)
			}
		})
	}
}

func TestReportIRI(t *testing.T) {
	iri := ReportIRI("abc-123")
	if iri != "https://aifr.org/reports/abc-123" {
		t.Errorf("unexpected report IRI: %s", iri)
	}
}

func TestUnknownSystemIRI(t *testing.T) {
	iri := UnknownSystemIRI("abc-123", 2)
	if iri != "https://aifr.org/reports/abc-123/unknown-system-2" {
		t.Errorf("unexpected unknown system IRI: %s", iri)
	}

	// Unknown-system IRIs must stay distinct from the report IRI itself.
	if iri == ReportIRI("abc-123") {
		t.Error("unknown system IRI must differ from report IRI")
	}
}

func TestNamespaceIsURN(t *testing.T) {
	if !strings.HasPrefix(Namespace, "urn:") {
		t.Errorf("AIFR namespace should be a URN placeholder, got %s", Namespace)
	}
}
