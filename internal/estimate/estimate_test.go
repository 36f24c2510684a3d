package estimate

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
)

func defaultEstimator() *Estimator {
	return New(theme.Resolve(types.ThemeConfig{}))
}

func TestEmptySectionsEstimateZero(t *testing.T) {
	e := defaultEstimator()
	r := &types.Resume{}

	for _, kind := range types.CanonicalSectionOrder() {
		if got := e.Section(kind, r); got != 0 {
			t.Errorf("Section(%s) on empty resume = %v, want 0", kind, got)
		}
	}
}

func TestSummaryLines(t *testing.T) {
	e := defaultEstimator()

	tests := []struct {
		name  string
		chars int
		want  int
	}{
		{"empty", 0, 0},
		{"single char", 1, 1},
		{"exactly one line", e.charsMain, 1},
		{"one over", e.charsMain + 1, 2},
		{"three lines", 3 * e.charsMain, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("x", tt.chars)
			if got := e.SummaryLines(text); got != tt.want {
				t.Errorf("SummaryLines(%d chars) = %d, want %d", tt.chars, got, tt.want)
			}
		})
	}
}

func TestSummaryWhitespaceOnlyIsZero(t *testing.T) {
	e := defaultEstimator()
	if got := e.SummaryLines("   \n\t  "); got != 0 {
		t.Errorf("SummaryLines(whitespace) = %d, want 0", got)
	}
	r := &types.Resume{Summary: "   "}
	if got := e.Section(types.SectionSummary, r); got != 0 {
		t.Errorf("Section(summary, whitespace) = %v, want 0", got)
	}
}

func TestSummaryCountsRunesNotBytes(t *testing.T) {
	e := defaultEstimator()
	ascii := strings.Repeat("a", e.charsMain)
	accented := strings.Repeat("é", e.charsMain)

	if e.SummaryLines(ascii) != e.SummaryLines(accented) {
		t.Errorf("rune and byte counts diverged: ascii=%d accented=%d",
			e.SummaryLines(ascii), e.SummaryLines(accented))
	}
}

func TestTaskLines(t *testing.T) {
	e := defaultEstimator()
	capacity := e.charsMain - taskIndentChars

	tests := []struct {
		name  string
		chars int
		want  int
	}{
		{"empty task still occupies a line", 0, 1},
		{"short", 10, 1},
		{"exactly capacity", capacity, 1},
		{"wraps once", capacity + 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := strings.Repeat("y", tt.chars)
			if got := e.TaskLines(task); got != tt.want {
				t.Errorf("TaskLines(%d chars) = %d, want %d", tt.chars, got, tt.want)
			}
		})
	}
}

func TestExperienceEntryHeight(t *testing.T) {
	resolved := theme.Resolve(types.ThemeConfig{})
	e := New(resolved)

	entry := &types.ExperienceEntry{
		ID:    "exp-1",
		Role:  "Engineer",
		Tasks: []string{"short task", "another short task"},
	}

	want := e.EntryHeaderH() + 2*resolved.BodyLinePx + resolved.EntryGapPx
	if got := e.ExperienceEntryH(entry); got != want {
		t.Errorf("ExperienceEntryH = %v, want %v", got, want)
	}

	// The header is fixed: blank role/company/period change nothing.
	blank := &types.ExperienceEntry{ID: "exp-2", Tasks: []string{"short task", "another short task"}}
	if got := e.ExperienceEntryH(blank); got != want {
		t.Errorf("ExperienceEntryH(blank header) = %v, want %v", got, want)
	}
}

func TestExperienceSectionSumsEntries(t *testing.T) {
	resolved := theme.Resolve(types.ThemeConfig{})
	e := New(resolved)

	r := &types.Resume{Experience: []types.ExperienceEntry{
		{ID: "a", Tasks: []string{"one"}},
		{ID: "b", Tasks: []string{"two", "three"}},
	}}

	want := resolved.SectionHeadingPx +
		e.ExperienceEntryH(&r.Experience[0]) +
		e.ExperienceEntryH(&r.Experience[1]) +
		resolved.SectionGapPx
	if got := e.Section(types.SectionExperience, r); got != want {
		t.Errorf("Section(experience) = %v, want %v", got, want)
	}
}

func TestEducationFixedRows(t *testing.T) {
	resolved := theme.Resolve(types.ThemeConfig{})
	e := New(resolved)

	r := &types.Resume{Education: []types.EducationEntry{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}}

	want := resolved.SectionHeadingPx + 3*e.EducationEntryH() + resolved.SectionGapPx
	if got := e.Section(types.SectionEducation, r); got != want {
		t.Errorf("Section(education) = %v, want %v", got, want)
	}
}

func TestSkillsRowWrapping(t *testing.T) {
	e := defaultEstimator()
	perRow := e.SkillsPerRow()
	if perRow < 1 {
		t.Fatalf("SkillsPerRow = %d, want >= 1", perRow)
	}

	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{perRow, 1},
		{perRow + 1, 2},
		{3 * perRow, 3},
	}

	for _, tt := range tests {
		if got := e.SkillsRows(tt.count); got != tt.want {
			t.Errorf("SkillsRows(%d) = %d, want %d (perRow=%d)", tt.count, got, tt.want, perRow)
		}
	}
}

func TestLanguagesBlock(t *testing.T) {
	resolved := theme.Resolve(types.ThemeConfig{})
	e := New(resolved)

	r := &types.Resume{Languages: []types.LanguageEntry{
		{ID: "l1", Name: "English"},
		{ID: "l2", Name: "French"},
	}}

	want := resolved.SectionHeadingPx + 2*resolved.BodyLinePx + resolved.SectionGapPx
	if got := e.Section(types.SectionLanguages, r); got != want {
		t.Errorf("Section(languages) = %v, want %v", got, want)
	}
}

func TestUnknownSectionPanics(t *testing.T) {
	e := defaultEstimator()
	r := &types.Resume{Summary: "text"}

	defer func() {
		if recover() == nil {
			t.Error("Section(unknown kind) did not panic")
		}
	}()
	e.Section("projects", r)
}

func TestEstimatesArePositiveAndDeterministic(t *testing.T) {
	e := defaultEstimator()
	r := &types.Resume{
		Summary:    "A short professional summary of about one line of text.",
		Experience: []types.ExperienceEntry{{ID: "a", Role: "Dev", Tasks: []string{"did things"}}},
		Education:  []types.EducationEntry{{ID: "e", Degree: "BSc"}},
		Skills:     []string{"Go", "SQL", "Docker"},
		Languages:  []types.LanguageEntry{{ID: "l", Name: "English", Level: "fluent"}},
	}

	for _, kind := range types.CanonicalSectionOrder() {
		first := e.Section(kind, r)
		second := e.Section(kind, r)
		if first != second {
			t.Errorf("Section(%s) not deterministic: %v != %v", kind, first, second)
		}
		if first <= 0 {
			t.Errorf("Section(%s) = %v, want > 0 for non-empty content", kind, first)
		}
	}
}
