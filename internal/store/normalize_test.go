package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestNormalizeSectionOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    []types.SectionKind
		expected []types.SectionKind
	}{
		{
			name:     "complete order unchanged",
			input:    []types.SectionKind{"summary", "experience", "education", "skills", "languages"},
			expected: []types.SectionKind{"summary", "experience", "education", "skills", "languages"},
		},
		{
			name:     "custom order preserved",
			input:    []types.SectionKind{"experience", "summary", "skills", "education", "languages"},
			expected: []types.SectionKind{"experience", "summary", "skills", "education", "languages"},
		},
		{
			name:     "missing kind appended",
			input:    []types.SectionKind{"summary", "experience", "education", "skills"},
			expected: []types.SectionKind{"summary", "experience", "education", "skills", "languages"},
		},
		{
			name:     "duplicate dropped, first wins",
			input:    []types.SectionKind{"summary", "experience", "summary", "education", "skills", "languages"},
			expected: []types.SectionKind{"summary", "experience", "education", "skills", "languages"},
		},
		{
			name:     "unknown token dropped",
			input:    []types.SectionKind{"summary", "certificates", "experience", "education", "skills", "languages"},
			expected: []types.SectionKind{"summary", "experience", "education", "skills", "languages"},
		},
		{
			name:     "empty list becomes canonical",
			input:    nil,
			expected: types.CanonicalSectionOrder(),
		},
		{
			name:     "garbage only becomes canonical",
			input:    []types.SectionKind{"certificates", "awards"},
			expected: types.CanonicalSectionOrder(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSectionOrder(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeSectionOrderAlwaysComplete(t *testing.T) {
	inputs := [][]types.SectionKind{
		nil,
		{"skills"},
		{"languages", "languages", "languages"},
		{"experience", "bogus", "experience"},
	}

	for _, input := range inputs {
		result := NormalizeSectionOrder(input)
		assert.Len(t, result, len(types.CanonicalSectionOrder()))

		seen := make(map[types.SectionKind]int)
		for _, kind := range result {
			seen[kind]++
		}
		for _, kind := range types.CanonicalSectionOrder() {
			assert.Equal(t, 1, seen[kind], "kind %s should appear exactly once", kind)
		}
	}
}

func TestEnsureEntryIDs(t *testing.T) {
	r := &types.Resume{
		Experience: []types.ExperienceEntry{
			{ID: "keep-me", Role: "Dev"},
			{Role: "Analyst"},
		},
		Education: []types.EducationEntry{{Degree: "BSc"}},
		Languages: []types.LanguageEntry{{Name: "English"}},
	}

	changed := EnsureEntryIDs(r)

	assert.True(t, changed)
	assert.Equal(t, "keep-me", r.Experience[0].ID)
	assert.NotEmpty(t, r.Experience[1].ID)
	assert.NotEmpty(t, r.Education[0].ID)
	assert.NotEmpty(t, r.Languages[0].ID)
	assert.NotEqual(t, r.Experience[1].ID, r.Education[0].ID)

	assert.False(t, EnsureEntryIDs(r), "second pass should find nothing to assign")
}

func TestNormalizeSkills(t *testing.T) {
	r := &types.Resume{Skills: []string{" Go ", "SQL", "", "go", "Docker", "SQL"}}

	changed := NormalizeSkills(r)

	assert.True(t, changed)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, r.Skills)

	assert.False(t, NormalizeSkills(r))
}

func TestNormalizeDocument(t *testing.T) {
	doc := &types.Document{
		ID: "doc-1",
		Content: types.Resume{
			Experience: []types.ExperienceEntry{{Role: "Dev"}},
			Skills:     []string{"Go", "Go"},
		},
		SectionOrder: []types.SectionKind{"summary", "experience", "education", "skills"},
	}

	changed := NormalizeDocument(doc)

	assert.True(t, changed)
	assert.Equal(t, types.CanonicalSectionOrder(), doc.SectionOrder)
	assert.NotEmpty(t, doc.Content.Experience[0].ID)
	assert.Equal(t, []string{"Go"}, doc.Content.Skills)

	assert.False(t, NormalizeDocument(doc), "already normalized document should not change")
}
