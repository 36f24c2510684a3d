// Package pagination distributes sections across fixed-height pages. The
// algorithm is a greedy single pass over the section order: sections
// accumulate on the current page until the next one would exceed the page's
// height budget, which flushes the page and starts the next. Sections are
// atomic; one section is never split across two pages.
package pagination

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/types"
)

// HeaderMode selects which header band a page reserves space for.
type HeaderMode string

const (
	// HeaderFull is the first page's large identity block.
	HeaderFull HeaderMode = "full"
	// HeaderMini is the condensed running header of later pages.
	HeaderMini HeaderMode = "mini"
)

// Page assigns an ordered subset of the section order to one printed page.
type Page struct {
	Index    int                 `json:"index"`
	Header   HeaderMode          `json:"header"`
	Sections []types.SectionKind `json:"sections"`
}

// Plan is the ordered assignment of sections to pages. Concatenating every
// page's sections, in order, yields the input section order minus its
// empty sections; no section appears twice.
type Plan struct {
	Pages []Page `json:"pages"`
}

// PageCount returns the number of planned pages.
func (p Plan) PageCount() int {
	return len(p.Pages)
}

// Sections returns the concatenation of all pages' section lists in order.
func (p Plan) Sections() []types.SectionKind {
	var out []types.SectionKind
	for _, page := range p.Pages {
		out = append(out, page.Sections...)
	}
	return out
}

// PageFor returns the index of the page holding the given section.
func (p Plan) PageFor(kind types.SectionKind) (int, bool) {
	for _, page := range p.Pages {
		for _, s := range page.Sections {
			if s == kind {
				return page.Index, true
			}
		}
	}
	return 0, false
}

// Budget is the per-page height available to sections. First differs from
// Rest only by the header reservation: the first page gives up more space
// to the full identity block.
type Budget struct {
	First float64 `json:"first"`
	Rest  float64 `json:"rest"`
}

// HeightFunc returns the estimated height of one section. A zero height
// marks the section empty; negative heights are a programming error.
type HeightFunc func(types.SectionKind) float64

// Paginate packs the ordered sections into pages under the budget.
//
// Zero-height sections are skipped entirely and appear on no page. A
// section taller than an empty page's budget is still placed whole on its
// own page; overflow is accepted only when the section is the page's sole
// occupant. If every section is empty, the plan degenerates to a single
// full-header page carrying the complete input order, so renderers never
// see an empty page list.
func Paginate(order []types.SectionKind, height HeightFunc, budget Budget) Plan {
	var pages []Page
	var current []types.SectionKind
	running := 0.0
	available := budget.First

	flush := func() {
		if len(current) == 0 {
			return
		}
		mode := HeaderMini
		if len(pages) == 0 {
			mode = HeaderFull
		}
		pages = append(pages, Page{Index: len(pages), Header: mode, Sections: current})
		current = nil
		running = 0
		available = budget.Rest
	}

	for _, kind := range order {
		h := height(kind)
		if h < 0 {
			panic(fmt.Sprintf("pagination: negative height %v for section %q", h, kind))
		}
		if h == 0 {
			continue
		}
		if running+h > available && len(current) > 0 {
			flush()
		}
		current = append(current, kind)
		running += h
	}
	flush()

	if len(pages) == 0 {
		fallback := make([]types.SectionKind, len(order))
		copy(fallback, order)
		pages = append(pages, Page{Index: 0, Header: HeaderFull, Sections: fallback})
	}

	return Plan{Pages: pages}
}
