package types

import (
	"strings"
	"time"
)

// Resume is the full content tree of one document. The layout engine treats
// it as a read-only snapshot; every mutation goes through the store's
// path-addressed update operation.
type Resume struct {
	Personal   Personal          `json:"personal"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Languages  []LanguageEntry   `json:"languages,omitempty"`
}

// Personal is the identity block rendered in the page header.
type Personal struct {
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	Title     string  `json:"title,omitempty"`
	Photo     string  `json:"photo,omitempty"` // reference to an image, empty when unset
	Contact   Contact `json:"contact"`
}

// FullName joins the name parts for single-line rendering.
func (p Personal) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Contact holds the header contact lines. Empty fields are not rendered.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Period is a date range in "2006-01" month precision. End is empty or
// "present" for ongoing entries.
type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Display formats the range for rendering, e.g. "Mar 2021 - Present".
// Unparseable values pass through verbatim.
func (p Period) Display() string {
	start := displayMonth(p.Start)
	end := displayMonth(p.End)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

func displayMonth(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.EqualFold(s, "present") {
		return "Present"
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// ExperienceEntry is one position in the experience section. ID is a stable
// identifier independent of list position, used for reordering and for zone
// identifiers.
type ExperienceEntry struct {
	ID      string   `json:"id"`
	Role    string   `json:"role,omitempty"`
	Company string   `json:"company,omitempty"`
	Period  Period   `json:"period"`
	Tasks   []string `json:"tasks,omitempty"`
}

// EducationEntry is one entry in the education section.
type EducationEntry struct {
	ID     string `json:"id"`
	Degree string `json:"degree,omitempty"`
	School string `json:"school,omitempty"`
	Period Period `json:"period"`
}

// LanguageEntry is one language with its proficiency label.
type LanguageEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Level string `json:"level,omitempty"`
}

// SectionEmpty reports whether the given section holds no content at all.
// Empty sections estimate to zero height and drop out of pagination.
func (r *Resume) SectionEmpty(kind SectionKind) bool {
	switch kind {
	case SectionSummary:
		return strings.TrimSpace(r.Summary) == ""
	case SectionExperience:
		return len(r.Experience) == 0
	case SectionEducation:
		return len(r.Education) == 0
	case SectionSkills:
		return len(r.Skills) == 0
	case SectionLanguages:
		return len(r.Languages) == 0
	}
	return true
}

// Empty reports whether every section of the content tree is empty, the
// degenerate state of a freshly created document.
func (r *Resume) Empty() bool {
	for _, kind := range CanonicalSectionOrder() {
		if !r.SectionEmpty(kind) {
			return false
		}
	}
	return true
}

// ExperienceByID returns the experience entry with the given stable ID.
func (r *Resume) ExperienceByID(id string) (*ExperienceEntry, bool) {
	for i := range r.Experience {
		if r.Experience[i].ID == id {
			return &r.Experience[i], true
		}
	}
	return nil, false
}

// EducationByID returns the education entry with the given stable ID.
func (r *Resume) EducationByID(id string) (*EducationEntry, bool) {
	for i := range r.Education {
		if r.Education[i].ID == id {
			return &r.Education[i], true
		}
	}
	return nil, false
}

// LanguageByID returns the language entry with the given stable ID.
func (r *Resume) LanguageByID(id string) (*LanguageEntry, bool) {
	for i := range r.Languages {
		if r.Languages[i].ID == id {
			return &r.Languages[i], true
		}
	}
	return nil, false
}
