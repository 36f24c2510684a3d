// Package estimate computes heuristic rendered heights for sections and
// fields of the content tree. The heuristics are deliberately coarse: a
// character count divided by an estimated line capacity, and fixed per-row
// heights for list sections. Both pagination and layout consume the same
// estimates, so the two renderers agree on geometry without ever measuring
// real text.
package estimate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
)

// avgCharEm approximates the average glyph advance as a fraction of the
// font size. Tuned for the core font families; the planning layer only
// needs a stable estimate, not a measurement.
const avgCharEm = 0.52

// taskIndentChars is the line capacity given up to the bullet marker and
// indent on task lines.
const taskIndentChars = 3

// minCharsPerLine keeps the wrap estimate sane on very narrow columns.
const minCharsPerLine = 16

// Estimator derives field and section heights from a resolved theme. The
// zero value is not usable; construct with New.
type Estimator struct {
	theme theme.Resolved

	charsMain int // estimated characters per line, main column
	chipRowPx float64
	chipW     float64
}

// New returns an estimator for the given resolved theme.
func New(t theme.Resolved) *Estimator {
	return &Estimator{
		theme:     t,
		charsMain: charsPerLine(t.MainW, t.BodySizePt),
		chipRowPx: t.BodyLinePx + geometry.MmToPx(2),
		chipW:     geometry.MmToPx(24),
	}
}

// charsPerLine estimates how many characters fit in a column of the given
// width at the given body size.
func charsPerLine(widthPx, bodyPt float64) int {
	avg := geometry.PtToPx(bodyPt) * avgCharEm
	if avg <= 0 {
		return minCharsPerLine
	}
	n := int(widthPx / avg)
	if n < minCharsPerLine {
		n = minCharsPerLine
	}
	return n
}

// Section returns the estimated height of a whole section including its
// heading and trailing gap. Empty sections estimate to exactly zero, which
// drops them from pagination. Unknown kinds are a programming error and
// panic rather than silently corrupting the layout.
func (e *Estimator) Section(kind types.SectionKind, r *types.Resume) float64 {
	if !types.KnownSection(kind) {
		panic(fmt.Sprintf("estimate: unknown section kind %q", kind))
	}
	if r.SectionEmpty(kind) {
		return 0
	}

	var body float64
	switch kind {
	case types.SectionSummary:
		body = e.SummaryBlockH(r.Summary)
	case types.SectionExperience:
		for i := range r.Experience {
			body += e.ExperienceEntryH(&r.Experience[i])
		}
	case types.SectionEducation:
		body = float64(len(r.Education)) * e.EducationEntryH()
	case types.SectionSkills:
		body = e.SkillsBlockH(len(r.Skills))
	case types.SectionLanguages:
		body = e.LanguagesBlockH(len(r.Languages))
	}

	return e.theme.SectionHeadingPx + body + e.theme.SectionGapPx
}

// SectionHeights returns the per-section cost function over a fixed content
// snapshot, in the shape the paginator consumes.
func (e *Estimator) SectionHeights(r *types.Resume) func(types.SectionKind) float64 {
	return func(kind types.SectionKind) float64 {
		return e.Section(kind, r)
	}
}

// SummaryLines estimates the wrapped line count of the summary text.
func (e *Estimator) SummaryLines(text string) int {
	return wrappedLines(text, e.charsMain)
}

// SummaryBlockH is the summary body height, heading excluded.
func (e *Estimator) SummaryBlockH(text string) float64 {
	return float64(e.SummaryLines(text)) * e.theme.BodyLinePx
}

// TaskLines estimates the wrapped line count of one task. Tasks render with
// a bullet indent, which costs a few characters of line capacity. An
// present-but-empty task still occupies one line.
func (e *Estimator) TaskLines(task string) int {
	capacity := e.charsMain - taskIndentChars
	if capacity < minCharsPerLine {
		capacity = minCharsPerLine
	}
	n := wrappedLines(task, capacity)
	if n == 0 {
		n = 1
	}
	return n
}

// TaskBlockH is the height of one task's wrapped lines.
func (e *Estimator) TaskBlockH(task string) float64 {
	return float64(e.TaskLines(task)) * e.theme.BodyLinePx
}

// ExperienceEntryH is the height of a single experience entry: a fixed
// header (role line, company line, period line) plus its task lines and the
// inter-entry gap.
func (e *Estimator) ExperienceEntryH(entry *types.ExperienceEntry) float64 {
	h := e.EntryHeaderH()
	for _, task := range entry.Tasks {
		h += e.TaskBlockH(task)
	}
	return h + e.theme.EntryGapPx
}

// EntryHeaderH is the fixed role/company/period header of an experience
// entry. The header height does not depend on which of the three values are
// set; the layout reserves all three lines so edits never reflow siblings.
func (e *Estimator) EntryHeaderH() float64 {
	return 2*e.theme.BodyLinePx + e.theme.SmallLinePx
}

// EducationEntryH is the fixed height of one education row (degree, school,
// period) plus the inter-entry gap.
func (e *Estimator) EducationEntryH() float64 {
	return 2*e.theme.BodyLinePx + e.theme.SmallLinePx + e.theme.EntryGapPx
}

// LanguageRowH is the fixed height of one language row.
func (e *Estimator) LanguageRowH() float64 {
	return e.theme.BodyLinePx
}

// LanguagesBlockH is the languages body height, heading excluded.
func (e *Estimator) LanguagesBlockH(count int) float64 {
	return float64(count) * e.LanguageRowH()
}

// SkillsPerRow estimates how many skill chips fit in one row of the skills
// column.
func (e *Estimator) SkillsPerRow() int {
	col := e.theme.ColumnW(types.SectionSkills)
	n := int(col / e.chipW)
	if n < 1 {
		n = 1
	}
	return n
}

// SkillsRows returns the number of wrapped chip rows for count skills.
func (e *Estimator) SkillsRows(count int) int {
	if count <= 0 {
		return 0
	}
	return ceilDiv(count, e.SkillsPerRow())
}

// SkillsBlockH is the skills body height, heading excluded.
func (e *Estimator) SkillsBlockH(count int) float64 {
	return float64(e.SkillsRows(count)) * e.chipRowPx
}

// ChipRowH is the height of one skill chip row.
func (e *Estimator) ChipRowH() float64 {
	return e.chipRowPx
}

// ChipW is the fixed width of one skill chip.
func (e *Estimator) ChipW() float64 {
	return e.chipW
}

// wrappedLines is the shared character-count heuristic: ceil(chars /
// capacity), zero for blank text.
func wrappedLines(text string, capacity int) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return ceilDiv(utf8.RuneCountInString(trimmed), capacity)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
