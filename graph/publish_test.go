package graph

import (
	"testing"
	"time"

	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

func knownSystem() report.AISystem {
	return report.AISystem{
		ID:          "https://aifr.org/systems/gpt-4o",
		Name:        "GPT-4o",
		Version:     "2024-08-06",
		Slug:        "gpt-4o",
		DisplayName: "GPT-4o (OpenAI)",
		SystemType:  report.SystemKnown,
	}
}

func unknownSystem() report.AISystem {
	return report.AISystem{
		ID:          "https://aifr.org/reports/r1/unknown-system-1",
		Name:        "Unknown System",
		DisplayName: "Unknown System",
		SystemType:  report.SystemUnknown,
		Description: "an unbranded coding assistant",
	}
}

func TestReportEntityID(t *testing.T) {
	id := ReportEntityID("r1")
	if id != "aifr.local.report.report.r1" {
		t.Errorf("unexpected entity id: %s", id)
	}
}

func TestSystemEntityID(t *testing.T) {
	if id := SystemEntityID(knownSystem()); id != "aifr.local.kb.system.gpt-4o" {
		t.Errorf("unexpected known entity id: %s", id)
	}
	if id := SystemEntityID(unknownSystem()); id != "aifr.local.report.system.r1.unknown-system-1" {
		t.Errorf("unexpected unknown entity id: %s", id)
	}
}

func TestReportTriples(t *testing.T) {
	processed := &report.ProcessedAIFlawReport{
		ReportID:        "r1",
		CreatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		AISystems:       []report.AISystem{knownSystem(), unknownSystem()},
		FlawDescription: "Output contains fabricated citations.",
		FlawSeverity:    report.SeverityHigh,
	}

	triples := reportTriples(processed, time.Now())

	// Four report predicates plus one reference per system.
	if len(triples) != 6 {
		t.Fatalf("expected 6 triples, got %d", len(triples))
	}

	entityID := ReportEntityID("r1")
	refs := 0
	for _, tr := range triples {
		if tr.Subject != entityID {
			t.Errorf("all triples must share the report subject, got %s", tr.Subject)
		}
		if tr.Source != publishSource {
			t.Errorf("unexpected source: %s", tr.Source)
		}
		if tr.Predicate == aifr.ReferencesSystem {
			refs++
		}
	}
	if refs != 2 {
		t.Errorf("expected 2 system references, got %d", refs)
	}
}

func TestSystemTriples_Known(t *testing.T) {
	triples := systemTriples(knownSystem(), time.Now())

	predicates := make(map[string]any)
	for _, tr := range triples {
		predicates[tr.Predicate] = tr.Object
	}

	if predicates[aifr.SystemKind] != "known" {
		t.Errorf("kind triple missing or wrong: %v", predicates[aifr.SystemKind])
	}
	if predicates[aifr.SystemSlug] != "gpt-4o" {
		t.Errorf("slug triple missing: %v", predicates[aifr.SystemSlug])
	}
	if _, ok := predicates[aifr.SystemDescription]; ok {
		t.Error("known systems must not carry a description triple")
	}
}

func TestSystemTriples_Unknown(t *testing.T) {
	triples := systemTriples(unknownSystem(), time.Now())

	predicates := make(map[string]any)
	for _, tr := range triples {
		predicates[tr.Predicate] = tr.Object
	}

	if predicates[aifr.SystemKind] != "unknown" {
		t.Errorf("kind triple missing or wrong: %v", predicates[aifr.SystemKind])
	}
	if predicates[aifr.SystemDescription] != "an unbranded coding assistant" {
		t.Errorf("description triple missing: %v", predicates[aifr.SystemDescription])
	}
	if _, ok := predicates[aifr.SystemSlug]; ok {
		t.Error("unknown systems must not carry a slug triple")
	}
}

func TestPublishReport_NilClient(t *testing.T) {
	processed := &report.ProcessedAIFlawReport{
		ReportID:        "r2",
		CreatedAt:       time.Now().UTC(),
		AISystems:       []report.AISystem{knownSystem()},
		FlawDescription: "Anything at all goes here.",
		FlawSeverity:    report.SeverityLow,
	}

	if err := PublishReport(t.Context(), nil, processed); err != nil {
		t.Errorf("nil client should degrade gracefully: %v", err)
	}
}
