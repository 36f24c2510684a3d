// Package render turns a computed layout into a print-ready PDF. Every
// element is drawn at the frame the layout walk assigned, converted from
// device pixels to points; the renderer carries no flow logic of its own,
// so the PDF and the interactive overlay can never disagree about where a
// field sits.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/estimate"
	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
)

type rgb struct{ r, g, b int }

// Fixed text colors. The accent and its tints come from the theme.
var (
	ink   = rgb{38, 38, 38}
	muted = rgb{115, 115, 115}
)

// PDF renders the document against an already computed layout result. One
// page is added per page plan entry, in order, and every field is placed
// at the frame recorded in the result's geometry.
func PDF(doc *types.Document, result *engine.Result) ([]byte, error) {
	if doc == nil || result == nil || result.Geometry == nil {
		return nil, &RenderError{Message: "nothing to render"}
	}
	if len(result.Plan.Pages) != len(result.Geometry.Pages) {
		return nil, &RenderError{Message: "page plan and geometry disagree"}
	}

	t := result.Theme
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geometry.PxToPt(t.PageW), Ht: geometry.PxToPt(t.PageH)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Name, true)
	// Pin the embedded dates to the document and sort the catalog so the
	// same document always produces the same bytes.
	pdf.SetCreationDate(doc.UpdatedAt)
	pdf.SetModificationDate(doc.UpdatedAt)
	pdf.SetCatalogSort(true)

	rd := &renderer{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		t:     t,
		est:   estimate.New(t),
		r:     &doc.Content,
		g:     result.Geometry,
		upper: cases.Upper(language.English),
	}

	for i := range result.Geometry.Pages {
		rd.page(&result.Geometry.Pages[i], result.Plan.Pages[i])
	}

	if pdf.Err() {
		return nil, &RenderError{Message: "drawing failed", Cause: pdf.Error()}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// renderer carries the drawing state for one document.
type renderer struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	t     theme.Resolved
	est   *estimate.Estimator
	r     *types.Resume
	g     *layout.Geometry
	upper cases.Caser
}

func (rd *renderer) page(pg *layout.PageGeometry, plan pagination.Page) {
	rd.pdf.AddPage()

	if pg.Sidebar != nil {
		rd.fill(pg.Sidebar.Inset(-geometry.MmToPx(3)), rd.tint(8))
	}

	if pg.Header == pagination.HeaderFull {
		rd.identity()
	} else {
		rd.miniHeader(pg.Band, pg.Index)
	}

	for _, h := range pg.Headings {
		rd.sectionHeading(h)
	}
	for _, kind := range plan.Sections {
		rd.section(kind)
	}
}

// identity draws the full header block at the frames the layout placed for
// the identity fields.
func (rd *renderer) identity() {
	p := rd.r.Personal
	if f, ok := rd.frame(types.PathPhoto); ok {
		rd.photo(f)
	}
	if f, ok := rd.frame(types.PathFirstName); ok {
		rd.text(f, rd.t.HeadingFont, "B", rd.t.NameSizePt, ink, "L", p.FirstName)
	}
	if f, ok := rd.frame(types.PathLastName); ok {
		rd.text(f, rd.t.HeadingFont, "B", rd.t.NameSizePt, ink, "L", p.LastName)
	}
	if f, ok := rd.frame(types.PathTitle); ok {
		rd.text(f, rd.t.HeadingFont, "", rd.t.HeadingSizePt, rd.accent(), "L", p.Title)
	}
	if f, ok := rd.frame(types.PathEmail); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", p.Contact.Email)
	}
	if f, ok := rd.frame(types.PathPhone); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", p.Contact.Phone)
	}
	if f, ok := rd.frame(types.PathLocation); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", p.Contact.Location)
	}
	if f, ok := rd.frame(types.PathWebsite); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", p.Contact.Website)
	}
}

// miniHeader is the condensed continuation header: name on the left, page
// number on the right.
func (rd *renderer) miniHeader(band geometry.Frame, page int) {
	rd.text(band, rd.t.HeadingFont, "B", rd.t.BodySizePt, ink, "L", rd.r.Personal.FullName())
	rd.text(band, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "R", fmt.Sprintf("Page %d", page+1))
}

// sectionHeading draws the upper-cased label with the accent rule beneath
// it. The heading band reserves the label line plus the rule gap.
func (rd *renderer) sectionHeading(h layout.SectionHeading) {
	label := geometry.NewFrame(h.Frame.X, h.Frame.Y, h.Frame.W, rd.t.HeadingLinePx)
	rd.text(label, rd.t.HeadingFont, "B", rd.t.HeadingSizePt, ink, "L", rd.upper.String(sectionTitle(h.Kind)))

	a := rd.accent()
	rd.pdf.SetDrawColor(a.r, a.g, a.b)
	rd.pdf.SetLineWidth(1)
	y := geometry.PxToPt(label.Bottom() + geometry.MmToPx(1))
	rd.pdf.Line(geometry.PxToPt(h.Frame.X), y, geometry.PxToPt(h.Frame.Right()), y)
}

// section draws one section's fields at their recorded frames. A lookup
// can only miss for fields the layout never placed, so misses are skipped.
func (rd *renderer) section(kind types.SectionKind) {
	switch kind {
	case types.SectionSummary:
		if f, ok := rd.frame(types.PathSummary); ok {
			rd.block(f, rd.t.BodySizePt, rd.r.Summary)
		}
	case types.SectionExperience:
		for i := range rd.r.Experience {
			rd.experience(&rd.r.Experience[i])
		}
	case types.SectionEducation:
		for i := range rd.r.Education {
			rd.education(&rd.r.Education[i])
		}
	case types.SectionSkills:
		if f, ok := rd.frame(types.PathSkills); ok {
			rd.skills(f)
		}
	case types.SectionLanguages:
		if f, ok := rd.frame(types.PathLanguages); ok {
			rd.languages(f)
		}
	}
}

func (rd *renderer) experience(entry *types.ExperienceEntry) {
	if f, ok := rd.frame(types.ExperienceFieldPath(entry.ID, "role")); ok {
		rd.text(f, rd.t.BodyFont, "B", rd.t.BodySizePt, ink, "L", entry.Role)
	}
	if f, ok := rd.frame(types.ExperienceFieldPath(entry.ID, "company")); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.BodySizePt, ink, "L", entry.Company)
	}
	if f, ok := rd.frame(types.ExperienceFieldPath(entry.ID, "period")); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", entry.Period.Display())
	}
	for j, task := range entry.Tasks {
		if f, ok := rd.frame(types.TaskPath(entry.ID, j)); ok {
			rd.task(f, task)
		}
	}
}

// task draws the bullet marker, then the wrapped text block beside it.
func (rd *renderer) task(f geometry.Frame, task string) {
	indent := geometry.MmToPx(4)
	marker := geometry.NewFrame(f.X, f.Y, indent, rd.t.BodyLinePx)
	rd.text(marker, rd.t.BodyFont, "", rd.t.BodySizePt, rd.accent(), "L", "•")
	rd.block(geometry.NewFrame(f.X+indent, f.Y, f.W-indent, f.H), rd.t.BodySizePt, task)
}

func (rd *renderer) education(entry *types.EducationEntry) {
	if f, ok := rd.frame(types.EducationFieldPath(entry.ID, "degree")); ok {
		rd.text(f, rd.t.BodyFont, "B", rd.t.BodySizePt, ink, "L", entry.Degree)
	}
	if f, ok := rd.frame(types.EducationFieldPath(entry.ID, "school")); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.BodySizePt, ink, "L", entry.School)
	}
	if f, ok := rd.frame(types.EducationFieldPath(entry.ID, "period")); ok {
		rd.text(f, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "L", entry.Period.Display())
	}
}

// skills draws the chip grid inside the single skills frame, mirroring the
// estimator's per-row arithmetic.
func (rd *renderer) skills(f geometry.Frame) {
	perRow := rd.est.SkillsPerRow()
	rowH := rd.est.ChipRowH()
	chipW := rd.est.ChipW()
	gap := geometry.MmToPx(2)
	bg := rd.tint(15)

	for i, skill := range rd.r.Skills {
		x := f.X + float64(i%perRow)*chipW
		y := f.Y + float64(i/perRow)*rowH
		rd.pdf.SetFillColor(bg.r, bg.g, bg.b)
		rd.pdf.RoundedRect(geometry.PxToPt(x), geometry.PxToPt(y),
			geometry.PxToPt(chipW-gap), geometry.PxToPt(rowH-gap/2), 3, "1234", "F")
		cell := geometry.NewFrame(x, y, chipW-gap, rowH-gap/2)
		rd.text(cell, rd.t.BodyFont, "", rd.t.SmallSizePt, rd.accent(), "C", skill)
	}
}

// languages draws one row per language: name on the left, proficiency on
// the right.
func (rd *renderer) languages(f geometry.Frame) {
	rowH := rd.est.LanguageRowH()
	for i := range rd.r.Languages {
		lang := rd.r.Languages[i]
		row := geometry.NewFrame(f.X, f.Y+float64(i)*rowH, f.W, rowH)
		rd.text(row, rd.t.BodyFont, "", rd.t.BodySizePt, ink, "L", lang.Name)
		rd.text(row, rd.t.BodyFont, "", rd.t.SmallSizePt, muted, "R", lang.Level)
	}
}

// photo embeds the referenced image when it is a readable local file, and
// draws an initials badge otherwise.
func (rd *renderer) photo(f geometry.Frame) {
	path := strings.TrimSpace(rd.r.Personal.Photo)
	if embeddable(path) {
		rd.pdf.ImageOptions(path, geometry.PxToPt(f.X), geometry.PxToPt(f.Y),
			geometry.PxToPt(f.W), geometry.PxToPt(f.H), false, fpdf.ImageOptions{}, 0, "")
		return
	}
	bg := rd.tint(15)
	rd.pdf.SetFillColor(bg.r, bg.g, bg.b)
	rd.pdf.Circle(geometry.PxToPt(f.X+f.W/2), geometry.PxToPt(f.Y+f.H/2), geometry.PxToPt(f.W)/2, "F")
	rd.text(f, rd.t.HeadingFont, "B", rd.t.HeadingSizePt, rd.accent(), "C", initials(rd.r.Personal))
}

func (rd *renderer) frame(path string) (geometry.Frame, bool) {
	p, ok := rd.g.Frame(path)
	return p.Frame, ok
}

// text draws a single line inside the frame, vertically centered. Empty
// values draw nothing.
func (rd *renderer) text(f geometry.Frame, family, style string, sizePt float64, c rgb, align, s string) {
	if s == "" {
		return
	}
	rd.pdf.SetFont(family, style, sizePt)
	rd.pdf.SetTextColor(c.r, c.g, c.b)
	rd.pdf.SetXY(geometry.PxToPt(f.X), geometry.PxToPt(f.Y))
	rd.pdf.CellFormat(geometry.PxToPt(f.W), geometry.PxToPt(f.H), rd.tr(s), "", 0, align+"M", false, 0, "")
}

// block draws wrapped body text from the top of the frame.
func (rd *renderer) block(f geometry.Frame, sizePt float64, s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	rd.pdf.SetFont(rd.t.BodyFont, "", sizePt)
	rd.pdf.SetTextColor(ink.r, ink.g, ink.b)
	rd.pdf.SetXY(geometry.PxToPt(f.X), geometry.PxToPt(f.Y))
	rd.pdf.MultiCell(geometry.PxToPt(f.W), geometry.PxToPt(rd.t.BodyLinePx), rd.tr(s), "", "L", false)
}

func (rd *renderer) fill(f geometry.Frame, c rgb) {
	rd.pdf.SetFillColor(c.r, c.g, c.b)
	rd.pdf.Rect(geometry.PxToPt(f.X), geometry.PxToPt(f.Y), geometry.PxToPt(f.W), geometry.PxToPt(f.H), "F")
}

// tint mixes the accent toward white, keeping pct percent of the accent.
func (rd *renderer) tint(pct int) rgb {
	r, g, b := rd.t.AccentRGB()
	mix := func(c int) int { return 255 - (255-c)*pct/100 }
	return rgb{mix(r), mix(g), mix(b)}
}

func (rd *renderer) accent() rgb {
	r, g, b := rd.t.AccentRGB()
	return rgb{r, g, b}
}

// sectionTitle is the display label drawn in a section's heading band.
func sectionTitle(kind types.SectionKind) string {
	switch kind {
	case types.SectionSummary:
		return "Summary"
	case types.SectionExperience:
		return "Experience"
	case types.SectionEducation:
		return "Education"
	case types.SectionSkills:
		return "Skills"
	case types.SectionLanguages:
		return "Languages"
	}
	return string(kind)
}

// embeddable reports whether the photo reference is a local image file in
// a format the PDF writer accepts.
func embeddable(path string) bool {
	if path == "" || strings.Contains(path, "://") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// initials is the badge text drawn when no photo file is available.
func initials(p types.Personal) string {
	var b strings.Builder
	for _, s := range []string{p.FirstName, p.LastName} {
		for _, r := range strings.TrimSpace(s) {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
