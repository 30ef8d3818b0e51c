// Package aifr provides the AIFR vocabulary: namespace IRIs, JSON-LD terms,
// and identifier builders for AI flaw report entities.
//
// The vocabulary extends schema.org with a small set of report-specific
// terms under the urn:aifr:vocab: namespace.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/aifr/vocabulary/aifr"
package aifr
