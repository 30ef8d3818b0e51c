package aifr

import "fmt"

// Namespace is the base IRI prefix for AIFR vocabulary terms.
// It is a placeholder URN, not a dereferenceable document.
const Namespace = "urn:aifr:vocab:"

// SchemaOrg is the general-purpose base vocabulary the AIFR vocabulary
// extends.
const SchemaOrg = "https://schema.org/"

// ReportNamespace is the base IRI for flaw report entity instances.
const ReportNamespace = "https://aifr.org/reports/"

// Prefix is the JSON-LD context prefix mapped to Namespace.
const Prefix = "aifr"

// JSON-LD term aliases declared in the report @context.
const (
	// TermAISystem maps to aifr:aiSystem.
	TermAISystem = "aiSystem"

	// TermSeverity maps to aifr:severity.
	TermSeverity = "severity"
)

// Class names used as @type values in projected documents.
const (
	// TypeFlawReport is the AIFR report type.
	TypeFlawReport = "aifr:AIFlawReport"

	// TypeSoftwareApplication is the schema.org type for AI system nodes.
	TypeSoftwareApplication = "schema:SoftwareApplication"

	// TypeOrganization is the schema.org type for publisher nodes.
	TypeOrganization = "schema:Organization"
)

// Full class IRIs for RDF serializations.
const (
	// ClassFlawReport is the AIFR flaw report class.
	ClassFlawReport = Namespace + "AIFlawReport"

	// ClassSoftwareApplication is the schema.org software application class.
	ClassSoftwareApplication = SchemaOrg + "SoftwareApplication"

	// ClassOrganization is the schema.org organization class.
	ClassOrganization = SchemaOrg + "Organization"
)

// Full vocabulary property IRIs for RDF serializations.
const (
	// PropAISystem links a report to a referenced AI system.
	// Domain: TypeFlawReport, Range: TypeSoftwareApplication
	PropAISystem = Namespace + "aiSystem"

	// PropSeverity is the report severity label.
	PropSeverity = Namespace + "severity"
)

// Standard schema.org property IRIs used alongside the AIFR namespace.
const (
	SchemaName        = SchemaOrg + "name"
	SchemaDescription = SchemaOrg + "description"
	SchemaVersion     = SchemaOrg + "version"
	SchemaURL         = SchemaOrg + "url"
	SchemaSameAs      = SchemaOrg + "sameAs"
	SchemaPublisher   = SchemaOrg + "publisher"
	SchemaDateCreated = SchemaOrg + "dateCreated"
)

// ReportIRI builds the dereferenceable identifier for a flaw report.
// Format: https://aifr.org/reports/<report-id>
func ReportIRI(reportID string) string {
	return ReportNamespace + reportID
}

// UnknownSystemIRI builds the placeholder identifier for the i-th unknown
// system of a report. The index is 1-based among unknown entries.
// Format: https://aifr.org/reports/<report-id>/unknown-system-<i>
func UnknownSystemIRI(reportID string, i int) string {
	return fmt.Sprintf("%s%s/unknown-system-%d", ReportNamespace, reportID, i)
}
