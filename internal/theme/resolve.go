// Package theme resolves the small persisted visual configuration into the
// concrete geometry and typography values every other layout component
// consumes. Resolution is pure and total: every field has a default, numeric
// knobs are clamped into safe ranges, and identical input always produces
// bit-identical output.
package theme

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/types"
)

// Base font sizes in points, multiplied by the configured font scale.
const (
	baseNamePt    = 27.0
	baseHeadingPt = 13.0
	baseBodyPt    = 10.5
	baseSmallPt   = 9.0
)

// Clamp ranges and defaults for the numeric knobs.
const (
	defaultFontScale  = 1.0
	minFontScale      = 0.8
	maxFontScale      = 1.25
	defaultLineFactor = 1.4
	minLineFactor     = 1.05
	maxLineFactor     = 1.8
)

// DefaultAccent is the accent color used when the configured value is
// missing or not a parseable hex color.
const DefaultAccent = "#2563eb"

// sidebarFraction is the share of the content width given to the sidebar
// column when a sidebar side is selected.
const sidebarFraction = 0.32

// Resolved is the fully computed theme. All lengths are device pixels
// unless the field name says points. Derived, never persisted.
type Resolved struct {
	PaperName string `json:"paper"`

	PageW  float64          `json:"page_width"`
	PageH  float64          `json:"page_height"`
	Margin geometry.Margins `json:"margin"`

	HeaderFullH float64 `json:"header_full_height"`
	HeaderMiniH float64 `json:"header_mini_height"`
	HeaderGap   float64 `json:"header_gap"`

	SidebarSide string  `json:"sidebar_side"`
	SidebarX    float64 `json:"sidebar_x"`
	SidebarW    float64 `json:"sidebar_width"`
	MainX       float64 `json:"main_x"`
	MainW       float64 `json:"main_width"`
	ContentW    float64 `json:"content_width"`

	NameSizePt    float64 `json:"name_size_pt"`
	HeadingSizePt float64 `json:"heading_size_pt"`
	BodySizePt    float64 `json:"body_size_pt"`
	SmallSizePt   float64 `json:"small_size_pt"`

	NameLinePx    float64 `json:"name_line"`
	HeadingLinePx float64 `json:"heading_line"`
	BodyLinePx    float64 `json:"body_line"`
	SmallLinePx   float64 `json:"small_line"`

	SectionHeadingPx float64 `json:"section_heading"`
	SectionGapPx     float64 `json:"section_gap"`
	EntryGapPx       float64 `json:"entry_gap"`
	PhotoPx          float64 `json:"photo_size"`

	Accent      string  `json:"accent"`
	HeadingFont string  `json:"heading_font"`
	BodyFont    string  `json:"body_font"`
	FontScale   float64 `json:"font_scale"`
	LineFactor  float64 `json:"line_factor"`
}

// Resolve computes the full theme from the persisted configuration. It
// never fails: unknown tokens fall back to defaults and numeric values are
// clamped, so the rest of the engine can rely on every field being sane.
func Resolve(cfg types.ThemeConfig) Resolved {
	paper := geometry.PaperByName(strings.ToLower(strings.TrimSpace(cfg.Paper)))

	scale := clamp(defaulted(cfg.FontScale, defaultFontScale), minFontScale, maxFontScale)
	lineFactor := clamp(defaulted(cfg.LineHeight, defaultLineFactor), minLineFactor, maxLineFactor)

	side := normalizeSide(cfg.SidebarSide)
	headingFont, bodyFont := fontPairing(cfg.FontPairing)

	r := Resolved{
		PaperName: paper.Name,
		PageW:     paper.WidthPx(),
		PageH:     paper.HeightPx(),
		Margin:    geometry.UniformMargins(geometry.MmToPx(15)),

		HeaderGap: geometry.MmToPx(6),

		SidebarSide: side,

		NameSizePt:    baseNamePt * scale,
		HeadingSizePt: baseHeadingPt * scale,
		BodySizePt:    baseBodyPt * scale,
		SmallSizePt:   baseSmallPt * scale,

		SectionGapPx: geometry.MmToPx(4.5),
		EntryGapPx:   geometry.MmToPx(2.5),
		PhotoPx:      geometry.MmToPx(26),

		Accent:      normalizeHex(cfg.AccentColor),
		HeadingFont: headingFont,
		BodyFont:    bodyFont,
		FontScale:   scale,
		LineFactor:  lineFactor,
	}

	r.NameLinePx = geometry.PtToPx(r.NameSizePt) * lineFactor
	r.HeadingLinePx = geometry.PtToPx(r.HeadingSizePt) * lineFactor
	r.BodyLinePx = geometry.PtToPx(r.BodySizePt) * lineFactor
	r.SmallLinePx = geometry.PtToPx(r.SmallSizePt) * lineFactor

	r.SectionHeadingPx = r.HeadingLinePx + geometry.MmToPx(2.5)

	// The full header band fits the identity block by construction: two
	// name lines, the title line, and up to four contact lines.
	r.HeaderFullH = 2*r.NameLinePx + r.HeadingLinePx + 4*r.SmallLinePx + geometry.MmToPx(6)
	r.HeaderMiniH = r.BodyLinePx + geometry.MmToPx(2)

	r.ContentW = r.PageW - r.Margin.Horizontal()
	gutter := geometry.MmToPx(6)
	switch side {
	case types.SidebarNone:
		r.MainX = r.Margin.Left
		r.MainW = r.ContentW
	case types.SidebarRight:
		r.SidebarW = r.ContentW * sidebarFraction
		r.MainW = r.ContentW - r.SidebarW - gutter
		r.MainX = r.Margin.Left
		r.SidebarX = r.Margin.Left + r.MainW + gutter
	default: // left
		r.SidebarW = r.ContentW * sidebarFraction
		r.MainW = r.ContentW - r.SidebarW - gutter
		r.SidebarX = r.Margin.Left
		r.MainX = r.Margin.Left + r.SidebarW + gutter
	}

	return r
}

// BudgetFull returns the vertical space available to sections on the first
// page, after margins and the full header band.
func (r Resolved) BudgetFull() float64 {
	return r.PageH - r.Margin.Vertical() - r.HeaderFullH - r.HeaderGap
}

// BudgetMini returns the vertical space available to sections on every page
// after the first.
func (r Resolved) BudgetMini() float64 {
	return r.PageH - r.Margin.Vertical() - r.HeaderMiniH - r.HeaderGap
}

// ColumnX returns the x origin of the column the section flows in.
func (r Resolved) ColumnX(kind types.SectionKind) float64 {
	if r.SidebarSide != types.SidebarNone && types.SidebarSection(kind) {
		return r.SidebarX
	}
	return r.MainX
}

// ColumnW returns the width of the column the section flows in.
func (r Resolved) ColumnW(kind types.SectionKind) float64 {
	if r.SidebarSide != types.SidebarNone && types.SidebarSection(kind) {
		return r.SidebarW
	}
	return r.MainW
}

func defaulted(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeSide(side string) string {
	switch strings.ToLower(strings.TrimSpace(side)) {
	case types.SidebarRight:
		return types.SidebarRight
	case types.SidebarNone:
		return types.SidebarNone
	default:
		return types.SidebarLeft
	}
}

func fontPairing(pairing string) (heading, body string) {
	switch strings.ToLower(strings.TrimSpace(pairing)) {
	case types.PairingClassic:
		return "Times", "Times"
	case types.PairingMixed:
		return "Helvetica", "Times"
	default: // modern
		return "Helvetica", "Helvetica"
	}
}
