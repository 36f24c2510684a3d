package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// NormalizeDocument applies all normalization steps to a loaded document.
// It returns true when anything was repaired, so callers can decide
// whether the document is worth rewriting.
func NormalizeDocument(doc *types.Document) bool {
	changed := false

	order := NormalizeSectionOrder(doc.SectionOrder)
	if !equalOrder(order, doc.SectionOrder) {
		doc.SectionOrder = order
		changed = true
	}

	if EnsureEntryIDs(&doc.Content) {
		changed = true
	}
	if NormalizeSkills(&doc.Content) {
		changed = true
	}

	return changed
}

// NormalizeSectionOrder repairs a persisted section order: unknown tokens
// and duplicates are dropped (first occurrence wins), then every known
// kind missing from the list is appended in canonical order. The result
// always contains every known section kind exactly once, which is the
// shape the paginator requires.
func NormalizeSectionOrder(order []types.SectionKind) []types.SectionKind {
	seen := make(map[types.SectionKind]struct{}, len(order))
	normalized := make([]types.SectionKind, 0, len(order))

	for _, kind := range order {
		if !types.KnownSection(kind) {
			continue
		}
		if _, exists := seen[kind]; exists {
			continue
		}
		seen[kind] = struct{}{}
		normalized = append(normalized, kind)
	}

	for _, kind := range types.CanonicalSectionOrder() {
		if _, exists := seen[kind]; !exists {
			normalized = append(normalized, kind)
		}
	}

	return normalized
}

// EnsureEntryIDs assigns a fresh UUID to every list entry missing a stable
// ID. Stable IDs are what field paths and reordering address, so an entry
// without one is unreachable from the editing surface.
func EnsureEntryIDs(r *types.Resume) bool {
	changed := false
	for i := range r.Experience {
		if r.Experience[i].ID == "" {
			r.Experience[i].ID = uuid.New().String()
			changed = true
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = uuid.New().String()
			changed = true
		}
	}
	for i := range r.Languages {
		if r.Languages[i].ID == "" {
			r.Languages[i].ID = uuid.New().String()
			changed = true
		}
	}
	return changed
}

// NormalizeSkills trims skill strings and drops empties and duplicates,
// first occurrence winning. Case is preserved; comparison is
// case-insensitive so "Go" and "go" do not both survive.
func NormalizeSkills(r *types.Resume) bool {
	if len(r.Skills) == 0 {
		return false
	}

	normalized := make([]string, 0, len(r.Skills))
	seen := make(map[string]struct{}, len(r.Skills))
	for _, skill := range r.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, skill)
	}

	if equalStrings(normalized, r.Skills) {
		return false
	}
	r.Skills = normalized
	return true
}

func equalOrder(a, b []types.SectionKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
