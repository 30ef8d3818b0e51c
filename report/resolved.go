package report

// SystemType discriminates resolved system identities. Known and unknown
// systems share one shape; optional fields are empty rather than absent.
type SystemType string

const (
	// SystemKnown marks an identity resolved from the knowledge base.
	SystemKnown SystemType = "known"

	// SystemUnknown marks a synthesized placeholder identity.
	SystemUnknown SystemType = "unknown"
)

// AISystem is the enriched form of a system reference.
//
// Known identities carry a non-empty ID, Name and Slug. Unknown identities
// carry a synthesized ID and the user-supplied Description, with empty Slug
// and Version.
type AISystem struct {
	// ID is the canonical, dereferenceable system identifier.
	ID string `json:"id"`

	// Name is the canonical system name.
	Name string `json:"name"`

	// Version is the system version label.
	Version string `json:"version"`

	// Slug is the originating knowledge-base slug. Empty for unknowns.
	Slug string `json:"slug"`

	// DisplayName is the human-friendly name shown in the frontend.
	DisplayName string `json:"display_name"`

	// SystemType is "known" or "unknown".
	SystemType SystemType `json:"system_type"`

	// Description is the user-supplied free text. Populated only for
	// unknown systems.
	Description string `json:"description,omitempty"`
}

// Organization is the publisher record associated with a known AI system,
// fetched from the knowledge base by canonical identifier.
type Organization struct {
	// ID is the canonical organization identifier.
	ID string `json:"id"`

	// Name is the organization name.
	Name string `json:"name"`

	// URL is the organization homepage.
	URL string `json:"url"`

	// SameAs lists equivalent-identity URLs.
	SameAs []string `json:"same_as,omitempty"`
}
