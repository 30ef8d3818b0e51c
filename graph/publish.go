// Package graph provides utilities for publishing flaw report entities to
// the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

// GraphIngestSubject is the stream subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// publishSource identifies this pipeline as the triple source.
const publishSource = "aifr.processor"

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublishReport publishes a processed flaw report and its referenced system
// entities to the knowledge graph.
func PublishReport(ctx context.Context, nc *natsclient.Client, processed *report.ProcessedAIFlawReport) error {
	if nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	now := time.Now()

	if err := publishEntity(ctx, nc, EntityIngestMessage{
		ID:        ReportEntityID(processed.ReportID),
		Triples:   reportTriples(processed, now),
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("publish report entity: %w", err)
	}

	for _, sys := range processed.AISystems {
		if err := publishEntity(ctx, nc, EntityIngestMessage{
			ID:        SystemEntityID(sys),
			Triples:   systemTriples(sys, now),
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("publish system entity: %w", err)
		}
	}

	return nil
}

func publishEntity(ctx context.Context, nc *natsclient.Client, msg EntityIngestMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity: %w", err)
	}
	return nc.PublishToStream(ctx, GraphIngestSubject, data)
}

// reportTriples builds the triples for the report entity itself.
func reportTriples(processed *report.ProcessedAIFlawReport, now time.Time) []message.Triple {
	entityID := ReportEntityID(processed.ReportID)

	triples := []message.Triple{
		{
			Subject:    entityID,
			Predicate:  aifr.ReportSeverity,
			Object:     string(processed.FlawSeverity),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  aifr.ReportDescription,
			Object:     processed.FlawDescription,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  aifr.ReportCreatedAt,
			Object:     processed.CreatedAt.Format(time.RFC3339),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  aifr.ReportIRIPredicate,
			Object:     aifr.ReportIRI(processed.ReportID),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
	}

	for _, sys := range processed.AISystems {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  aifr.ReferencesSystem,
			Object:     SystemEntityID(sys),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	return triples
}

// systemTriples builds the triples for a resolved system entity.
func systemTriples(sys report.AISystem, now time.Time) []message.Triple {
	entityID := SystemEntityID(sys)

	triples := []message.Triple{
		{
			Subject:    entityID,
			Predicate:  aifr.SystemKind,
			Object:     string(sys.SystemType),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  aifr.SystemName,
			Object:     sys.Name,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
	}

	if sys.SystemType == report.SystemUnknown {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  aifr.SystemDescription,
			Object:     sys.Description,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
		return triples
	}

	triples = append(triples,
		message.Triple{
			Subject:    entityID,
			Predicate:  aifr.SystemSlug,
			Object:     sys.Slug,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
		message.Triple{
			Subject:    entityID,
			Predicate:  aifr.SystemVersion,
			Object:     sys.Version,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		},
	)

	return triples
}

// ReportEntityID generates a consistent entity ID for a flaw report.
// Format: aifr.local.report.report.<report-id>
func ReportEntityID(reportID string) string {
	return fmt.Sprintf("aifr.local.report.report.%s", reportID)
}

// SystemEntityID generates a consistent entity ID for a resolved system.
// Known systems key on their slug; unknown systems key on the path portion
// of their synthesized identifier.
func SystemEntityID(sys report.AISystem) string {
	if sys.SystemType == report.SystemKnown {
		return fmt.Sprintf("aifr.local.kb.system.%s", sys.Slug)
	}
	suffix := strings.TrimPrefix(sys.ID, aifr.ReportNamespace)
	suffix = strings.ReplaceAll(suffix, "/", ".")
	return fmt.Sprintf("aifr.local.report.system.%s", suffix)
}
