// Package types defines the document content tree, the visual theme
// configuration and the persisted document envelope shared across the
// layout engine, the stores and the server.
package types

// SectionKind names one logical block of the content tree. Sections are the
// unit of pagination: a section is always placed whole on a single page.
type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionLanguages  SectionKind = "languages"
)

// CanonicalSectionOrder returns the default order of all known sections.
// Callers receive a fresh slice and may reorder it freely.
func CanonicalSectionOrder() []SectionKind {
	return []SectionKind{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionLanguages,
	}
}

// KnownSection reports whether k is one of the defined section kinds.
func KnownSection(k SectionKind) bool {
	switch k {
	case SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionLanguages:
		return true
	}
	return false
}

// SidebarSection reports whether the section belongs to the sidebar column
// when a sidebar layout is selected. Sidebar sections flow down their own
// cursor; all others flow down the main column.
func SidebarSection(k SectionKind) bool {
	return k == SectionSkills || k == SectionLanguages
}
