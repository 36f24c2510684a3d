// Package engine provides the high-level orchestration for the layout
// computation: resolve the theme, estimate section heights, paginate, lay
// out every field and derive the zone catalog, in one synchronous call.
// The HTTP handlers, the CLI and the PDF exporter all go through this
// package, which is what keeps their geometry identical.
package engine

import (
	"time"

	"github.com/jonathan/resume-studio/internal/estimate"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/jonathan/resume-studio/internal/zones"
)

// Result bundles everything one computation pass produces. It is pure
// derived data: recomputing it from the same content and theme yields an
// identical value.
type Result struct {
	Theme    theme.Resolved   `json:"theme"`
	Plan     pagination.Plan  `json:"plan"`
	Geometry *layout.Geometry `json:"geometry"`
	Zones    []zones.Zone     `json:"zones"`
}

// Compute runs the full pipeline for one content tree. An empty order
// means the canonical section order.
func Compute(r *types.Resume, cfg types.ThemeConfig, order []types.SectionKind) *Result {
	if len(order) == 0 {
		order = types.CanonicalSectionOrder()
	}

	resolved := theme.Resolve(cfg)
	est := estimate.New(resolved)

	plan := pagination.Paginate(order, est.SectionHeights(r), pagination.Budget{
		First: resolved.BudgetFull(),
		Rest:  resolved.BudgetMini(),
	})

	g := layout.Compute(resolved, r, plan)

	return &Result{
		Theme:    resolved,
		Plan:     plan,
		Geometry: g,
		Zones:    zones.Build(g, r),
	}
}

// Snapshot is a Result stamped with the identity of the document it was
// computed from, so callers holding one can tell whether it is stale
// without re-deriving anything.
type Snapshot struct {
	DocumentID string    `json:"document_id"`
	UpdatedAt  time.Time `json:"updated_at"`
	Result
}

// ComputeDocument runs Compute over a stored document and stamps the
// result with the document's identity.
func ComputeDocument(doc *types.Document) *Snapshot {
	res := Compute(&doc.Content, doc.Theme, doc.SectionOrder)
	return &Snapshot{
		DocumentID: doc.ID,
		UpdatedAt:  doc.UpdatedAt,
		Result:     *res,
	}
}

// Stale reports whether the snapshot no longer matches the document it
// was computed from.
func (s *Snapshot) Stale(doc *types.Document) bool {
	return s.DocumentID != doc.ID || !s.UpdatedAt.Equal(doc.UpdatedAt)
}
