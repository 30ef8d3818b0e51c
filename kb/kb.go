// Package kb provides the read-only knowledge base mapping slugs to AI
// system identities and canonical identifiers to organization records.
//
// The knowledge base is materialized as JSON-LD documents whose @graph nodes
// carry an _aifr_internal envelope with the frontend slug and display name.
// Underscore-prefixed fields are internal and never surface in projections.
//
// Lookups are pure reads against an immutable snapshot. Reload swaps the
// snapshot atomically, so concurrent resolution never blocks.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/c360studio/aifr/report"
)

// Config configures knowledge-base loading.
type Config struct {
	// Path is the knowledge-base directory.
	Path string

	// Patterns lists glob patterns for knowledge-base documents,
	// relative to Path. Supports doublestar (**) patterns.
	Patterns []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "knowledge-base",
		Patterns: []string{"*.jsonld"},
	}
}

// SlugEntry pairs a slug with its display name, for frontend dropdowns.
type SlugEntry struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// KB is the knowledge base. It resolves slugs to system identities and
// system identifiers to organization records.
type KB struct {
	config Config
	snap   atomic.Pointer[snapshot]
}

// snapshot is an immutable view of the loaded knowledge base.
type snapshot struct {
	systemsBySlug map[string]systemRecord
	systemsByID   map[string]systemRecord
	orgsByID      map[string]report.Organization
	slugs         []SlugEntry
}

// systemRecord is a known-system entry plus its publisher reference.
type systemRecord struct {
	identity    report.AISystem
	publisherID string
}

// Open loads the knowledge base from the configured directory.
func Open(config Config) (*KB, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("knowledge base path is required")
	}
	if len(config.Patterns) == 0 {
		config.Patterns = DefaultConfig().Patterns
	}

	k := &KB{config: config}
	if err := k.Reload(); err != nil {
		return nil, err
	}
	return k, nil
}

// Reload re-reads all knowledge-base documents and atomically swaps the
// snapshot. Readers holding the old snapshot are unaffected.
func (k *KB) Reload() error {
	files, err := matchDocuments(k.config.Path, k.config.Patterns)
	if err != nil {
		return fmt.Errorf("match knowledge base documents: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no knowledge base documents under %s match %v", k.config.Path, k.config.Patterns)
	}

	snap := &snapshot{
		systemsBySlug: make(map[string]systemRecord),
		systemsByID:   make(map[string]systemRecord),
		orgsByID:      make(map[string]report.Organization),
	}

	for _, file := range files {
		if err := loadDocument(snap, file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	// Slug directory sorted case-insensitively by display name.
	sort.Slice(snap.slugs, func(i, j int) bool {
		return strings.ToLower(snap.slugs[i].DisplayName) < strings.ToLower(snap.slugs[j].DisplayName)
	})

	k.snap.Store(snap)
	return nil
}

// ResolveSystem resolves a slug to a known-system identity. Matching is
// case-sensitive and exact; a miss returns ErrNotFound.
func (k *KB) ResolveSystem(slug string) (report.AISystem, error) {
	rec, ok := k.snap.Load().systemsBySlug[slug]
	if !ok {
		return report.AISystem{}, fmt.Errorf("system %q: %w", slug, ErrNotFound)
	}
	return rec.identity, nil
}

// ResolveOrganization resolves a known system's canonical identifier to its
// publisher organization. A missing system or publisher returns ErrNotFound.
func (k *KB) ResolveOrganization(systemID string) (report.Organization, error) {
	snap := k.snap.Load()

	rec, ok := snap.systemsByID[systemID]
	if !ok {
		return report.Organization{}, fmt.Errorf("system id %q: %w", systemID, ErrNotFound)
	}
	if rec.publisherID == "" {
		return report.Organization{}, fmt.Errorf("system id %q has no publisher: %w", systemID, ErrNotFound)
	}

	org, ok := snap.orgsByID[rec.publisherID]
	if !ok {
		return report.Organization{}, fmt.Errorf("organization %q: %w", rec.publisherID, ErrNotFound)
	}
	return org, nil
}

// Slugs returns all system slugs with display names, sorted
// case-insensitively by display name.
func (k *KB) Slugs() []SlugEntry {
	snap := k.snap.Load()
	out := make([]SlugEntry, len(snap.slugs))
	copy(out, snap.slugs)
	return out
}

// graphDocument is the top-level shape of a knowledge-base JSON-LD file.
type graphDocument struct {
	Graph []graphNode `json:"@graph"`
}

// graphNode is a single @graph entry. System and organization nodes share
// one decode shape; @type decides how the node is indexed.
type graphNode struct {
	ID        string         `json:"@id"`
	Type      string         `json:"@type"`
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	URL       string         `json:"url"`
	SameAs    []string       `json:"sameAs"`
	Publisher *nodeRef       `json:"publisher"`
	Internal  internalFields `json:"_aifr_internal"`
}

// nodeRef is a JSON-LD reference to another node.
type nodeRef struct {
	ID string `json:"@id"`
}

// internalFields is the _aifr_internal envelope carried by KB nodes.
type internalFields struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
}

func loadDocument(snap *snapshot, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc graphDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse JSON-LD: %w", err)
	}

	for _, node := range doc.Graph {
		switch {
		case strings.HasSuffix(node.Type, "Organization"):
			indexOrganization(snap, node)
		default:
			if err := indexSystem(snap, node); err != nil {
				return err
			}
		}
	}
	return nil
}

func indexOrganization(snap *snapshot, node graphNode) {
	snap.orgsByID[node.ID] = report.Organization{
		ID:     node.ID,
		Name:   node.Name,
		URL:    node.URL,
		SameAs: node.SameAs,
	}
}

func indexSystem(snap *snapshot, node graphNode) error {
	slug := node.Internal.Slug
	if slug == "" {
		// Nodes without a slug are not offered to the frontend; skip.
		return nil
	}
	if _, exists := snap.systemsBySlug[slug]; exists {
		return fmt.Errorf("duplicate slug %q", slug)
	}

	displayName := node.Internal.DisplayName
	if displayName == "" {
		displayName = node.Name
	}

	rec := systemRecord{
		identity: report.AISystem{
			ID:          node.ID,
			Name:        node.Name,
			Version:     node.Version,
			Slug:        slug,
			DisplayName: displayName,
			SystemType:  report.SystemKnown,
		},
	}
	if node.Publisher != nil {
		rec.publisherID = node.Publisher.ID
	}

	snap.systemsBySlug[slug] = rec
	snap.systemsByID[node.ID] = rec

	snap.slugs = append(snap.slugs, SlugEntry{Slug: slug, DisplayName: displayName})
	return nil
}
