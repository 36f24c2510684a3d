// Package layout computes the absolute frame of every addressable field in
// the document. It is the single source of truth for geometry: the
// interactive overlay and the PDF renderer both read frames from here and
// neither re-implements the flow walk, so their output can never diverge.
//
// The walk keeps one vertical cursor per visual column on each page and
// advances it by each field's estimated height, mirroring the way a text
// flow engine stacks boxes.
package layout

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/estimate"
	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
)

// Placed is one field frame with the page it lives on. Path follows the
// canonical grammar in the types package.
type Placed struct {
	Path  string         `json:"path"`
	Page  int            `json:"page"`
	Frame geometry.Frame `json:"frame"`
}

// SectionHeading is the heading band drawn above a section's content.
// Headings are rendering chrome, not editable fields, so they live beside
// the placed fields rather than among them.
type SectionHeading struct {
	Kind  types.SectionKind `json:"kind"`
	Frame geometry.Frame    `json:"frame"`
}

// PageGeometry is the per-page chrome: the header band, the sidebar band
// when a sidebar layout is active, and the section headings.
type PageGeometry struct {
	Index    int                   `json:"index"`
	Header   pagination.HeaderMode `json:"header"`
	Band     geometry.Frame        `json:"band"`
	Sidebar  *geometry.Frame       `json:"sidebar,omitempty"`
	Headings []SectionHeading      `json:"headings,omitempty"`
}

// Geometry is the full layout result: page chrome plus one Placed entry per
// addressable field, in placement order.
type Geometry struct {
	Pages  []PageGeometry `json:"pages"`
	Fields []Placed       `json:"fields"`

	byPath map[string]int
}

// Frame returns the placement of the field at the given path.
func (g *Geometry) Frame(path string) (Placed, bool) {
	i, ok := g.byPath[path]
	if !ok {
		return Placed{}, false
	}
	return g.Fields[i], true
}

// place records a field frame. Each path is placed at most once per layout;
// a duplicate means the walk itself is broken, so it fails fast.
func (g *Geometry) place(path string, page int, f geometry.Frame) {
	if _, exists := g.byPath[path]; exists {
		panic(fmt.Sprintf("layout: path %q placed twice", path))
	}
	g.byPath[path] = len(g.Fields)
	g.Fields = append(g.Fields, Placed{Path: path, Page: page, Frame: f})
}

// cursor is a downward-flowing position in one column.
type cursor struct {
	x, y, w float64
}

// take claims a frame of the given height at the cursor and advances past
// it.
func (c *cursor) take(h float64) geometry.Frame {
	f := geometry.NewFrame(c.x, c.y, c.w, h)
	c.y += h
	return f
}

// advance moves the cursor down without claiming a frame.
func (c *cursor) advance(h float64) {
	c.y += h
}

// Compute walks the content tree page by page, section by section, and
// assigns every addressable field its absolute frame. The same resolved
// theme and page plan always produce the same geometry.
func Compute(t theme.Resolved, r *types.Resume, plan pagination.Plan) *Geometry {
	est := estimate.New(t)
	g := &Geometry{byPath: make(map[string]int)}
	sidebarActive := t.SidebarSide != types.SidebarNone

	for _, page := range plan.Pages {
		pg := PageGeometry{Index: page.Index, Header: page.Header}

		headerH := t.HeaderMiniH
		if page.Header == pagination.HeaderFull {
			headerH = t.HeaderFullH
		}
		pg.Band = geometry.NewFrame(t.Margin.Left, t.Margin.Top, t.ContentW, headerH)
		if page.Header == pagination.HeaderFull {
			placeIdentity(g, t, r, pg.Band, page.Index)
		}

		topY := pg.Band.Bottom() + t.HeaderGap
		main := cursor{x: t.MainX, y: topY, w: t.MainW}
		side := cursor{x: t.SidebarX, y: topY, w: t.SidebarW}

		if sidebarActive {
			band := geometry.NewFrame(t.SidebarX, topY, t.SidebarW, t.PageH-t.Margin.Bottom-topY)
			pg.Sidebar = &band
		}

		for _, kind := range page.Sections {
			cur := &main
			if sidebarActive && types.SidebarSection(kind) {
				cur = &side
			}
			placeSection(g, &pg, est, t, r, kind, cur, page.Index)
		}

		g.Pages = append(g.Pages, pg)
	}

	return g
}

// placeSection lays one section down its column: heading band first, then
// the section's fields, then the inter-section gap. Sections that are empty
// (only possible on the fallback page) contribute their heading scaffold
// and no fields.
func placeSection(g *Geometry, pg *PageGeometry, est *estimate.Estimator, t theme.Resolved, r *types.Resume, kind types.SectionKind, cur *cursor, page int) {
	pg.Headings = append(pg.Headings, SectionHeading{Kind: kind, Frame: cur.take(t.SectionHeadingPx)})

	switch kind {
	case types.SectionSummary:
		if !r.SectionEmpty(kind) {
			g.place(types.PathSummary, page, cur.take(est.SummaryBlockH(r.Summary)))
		}
	case types.SectionExperience:
		for i := range r.Experience {
			entry := &r.Experience[i]
			g.place(types.ExperienceFieldPath(entry.ID, "role"), page, cur.take(t.BodyLinePx))
			g.place(types.ExperienceFieldPath(entry.ID, "company"), page, cur.take(t.BodyLinePx))
			g.place(types.ExperienceFieldPath(entry.ID, "period"), page, cur.take(t.SmallLinePx))
			for j, task := range entry.Tasks {
				g.place(types.TaskPath(entry.ID, j), page, cur.take(est.TaskBlockH(task)))
			}
			cur.advance(t.EntryGapPx)
		}
	case types.SectionEducation:
		for i := range r.Education {
			entry := &r.Education[i]
			g.place(types.EducationFieldPath(entry.ID, "degree"), page, cur.take(t.BodyLinePx))
			g.place(types.EducationFieldPath(entry.ID, "school"), page, cur.take(t.BodyLinePx))
			g.place(types.EducationFieldPath(entry.ID, "period"), page, cur.take(t.SmallLinePx))
			cur.advance(t.EntryGapPx)
		}
	case types.SectionSkills:
		if !r.SectionEmpty(kind) {
			g.place(types.PathSkills, page, cur.take(est.SkillsBlockH(len(r.Skills))))
		}
	case types.SectionLanguages:
		if !r.SectionEmpty(kind) {
			g.place(types.PathLanguages, page, cur.take(est.LanguagesBlockH(len(r.Languages))))
		}
	default:
		panic(fmt.Sprintf("layout: unknown section kind %q", kind))
	}

	cur.advance(t.SectionGapPx)
}

// placeIdentity lays the full header band: the optional photo on the left,
// then the stacked name lines, the title and the four contact lines. The
// band height is sized by the theme to fit this block exactly, so the
// identity fields never spill into the columns below.
func placeIdentity(g *Geometry, t theme.Resolved, r *types.Resume, band geometry.Frame, page int) {
	textX := band.X
	if r.Personal.Photo != "" {
		photoY := band.Y + (band.H-t.PhotoPx)/2
		g.place(types.PathPhoto, page, geometry.NewFrame(band.X, photoY, t.PhotoPx, t.PhotoPx))
		textX = band.X + t.PhotoPx + t.HeaderGap
	}
	textW := band.Right() - textX

	cur := cursor{x: textX, y: band.Y, w: textW}
	g.place(types.PathFirstName, page, cur.take(t.NameLinePx))
	g.place(types.PathLastName, page, cur.take(t.NameLinePx))
	g.place(types.PathTitle, page, cur.take(t.HeadingLinePx))
	g.place(types.PathEmail, page, cur.take(t.SmallLinePx))
	g.place(types.PathPhone, page, cur.take(t.SmallLinePx))
	g.place(types.PathLocation, page, cur.take(t.SmallLinePx))
	g.place(types.PathWebsite, page, cur.take(t.SmallLinePx))
}
