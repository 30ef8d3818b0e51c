// Package jsonld projects processed flaw reports into JSON-LD documents
// referencing canonical, resolvable identifiers.
//
// The projection is a derived, disposable view: it is regenerable at will
// from a processed report plus current organization data and is never an
// authoritative store.
package jsonld

import (
	"github.com/c360studio/aifr/report"
	"github.com/c360studio/aifr/vocabulary/aifr"
)

// Document is the JSON-LD projection of a processed flaw report.
// Struct field order fixes the serialized field order, so projecting the
// same report twice yields byte-identical output.
type Document struct {
	Context     []any           `json:"@context"`
	Type        string          `json:"@type"`
	ID          string          `json:"@id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	AISystem    []SystemNode    `json:"aiSystem"`
	Severity    report.Severity `json:"severity"`
}

// SystemNode is a typed software-application node. Known systems carry
// name, version and a nested publisher; unknown systems carry only type,
// id and description.
type SystemNode struct {
	Type        string            `json:"@type"`
	ID          string            `json:"@id"`
	Name        string            `json:"name,omitempty"`
	Version     string            `json:"version,omitempty"`
	Description string            `json:"description,omitempty"`
	Publisher   *OrganizationNode `json:"publisher,omitempty"`
}

// OrganizationNode is a typed organization node nested under a known
// system as its publisher.
type OrganizationNode struct {
	Type   string   `json:"@type"`
	ID     string   `json:"@id"`
	Name   string   `json:"name"`
	URL    string   `json:"url,omitempty"`
	SameAs []string `json:"sameAs,omitempty"`
}

// NewContext returns the fixed @context array: the schema.org base plus an
// inline extension mapping the aifr prefix and declaring the aiSystem and
// severity term aliases.
func NewContext() []any {
	return []any{
		aifr.SchemaOrg,
		map[string]string{
			aifr.Prefix:       aifr.Namespace,
			aifr.TermAISystem: aifr.Prefix + ":" + aifr.TermAISystem,
			aifr.TermSeverity: aifr.Prefix + ":" + aifr.TermSeverity,
		},
	}
}
