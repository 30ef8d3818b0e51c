package aifr

import "github.com/c360studio/semstreams/vocabulary"

// Report predicates for flaw report entities.
const (
	// ReportSeverity is the flaw severity label.
	// Values: "Low", "Medium", "High", "Critical"
	ReportSeverity = "aifr.report.severity"

	// ReportDescription is the flaw description text.
	ReportDescription = "aifr.report.description"

	// ReportCreatedAt is when the report was processed (RFC3339).
	ReportCreatedAt = "aifr.report.created_at"

	// ReportIRIPredicate is the dereferenceable report URL.
	ReportIRIPredicate = "aifr.report.iri"
)

// System predicates for resolved AI system entities.
const (
	// SystemSlug is the knowledge-base slug the system resolved from.
	// Empty for unknown systems.
	SystemSlug = "aifr.system.slug"

	// SystemName is the canonical system name.
	SystemName = "aifr.system.name"

	// SystemVersion is the system version label.
	SystemVersion = "aifr.system.version"

	// SystemKind distinguishes resolved from synthesized identities.
	// Values: "known", "unknown"
	SystemKind = "aifr.system.kind"

	// SystemDescription is the user-supplied free text for unknown systems.
	SystemDescription = "aifr.system.description"
)

// Relationship predicates linking report entities.
const (
	// ReferencesSystem links a report to a referenced AI system.
	// Domain: report entity, Range: system entity
	ReferencesSystem = "aifr.rel.references_system"
)

func init() {
	// Register report predicates
	vocabulary.Register(ReportSeverity,
		vocabulary.WithDescription("Flaw severity label: Low, Medium, High, Critical"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropSeverity))

	vocabulary.Register(ReportDescription,
		vocabulary.WithDescription("Flaw description text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	vocabulary.Register(ReportCreatedAt,
		vocabulary.WithDescription("Report processing timestamp (RFC3339)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDateCreated))

	vocabulary.Register(ReportIRIPredicate,
		vocabulary.WithDescription("Dereferenceable report URL"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaURL))

	// Register system predicates
	vocabulary.Register(SystemSlug,
		vocabulary.WithDescription("Knowledge-base slug the system resolved from"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"slug"))

	vocabulary.Register(SystemName,
		vocabulary.WithDescription("Canonical AI system name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaName))

	vocabulary.Register(SystemVersion,
		vocabulary.WithDescription("AI system version label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaVersion))

	vocabulary.Register(SystemKind,
		vocabulary.WithDescription("System identity kind: known or unknown"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"systemKind"))

	vocabulary.Register(SystemDescription,
		vocabulary.WithDescription("User-supplied description of an unknown system"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaDescription))

	// Register relationship predicates
	vocabulary.Register(ReferencesSystem,
		vocabulary.WithDescription("Links a flaw report to a referenced AI system"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropAISystem))
}
