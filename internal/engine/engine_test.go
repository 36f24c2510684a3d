package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestComputeIsDeterministic(t *testing.T) {
	r := &types.Resume{
		Personal: types.Personal{FirstName: "Ada", LastName: "Lovelace", Title: "Engineer"},
		Summary:  strings.Repeat("steady output for steady input. ", 6),
		Experience: []types.ExperienceEntry{
			{ID: "exp-1", Role: "Engineer", Company: "Analytical Ltd", Tasks: []string{"designed the engine", "wrote the first program"}},
		},
		Skills: []string{"Go", "SQL", "Math"},
	}
	cfg := types.ThemeConfig{Paper: types.PaperA4, SidebarSide: types.SidebarLeft, FontScale: 1.1}

	a := Compute(r, cfg, nil)
	b := Compute(r, cfg, nil)

	assert.True(t, reflect.DeepEqual(a, b), "two runs over the same inputs diverged")
}

// A short summary and one small experience entry fit together on a single
// full-header page; the empty sections disappear from the plan.
func TestComputeSmallDocumentSinglePage(t *testing.T) {
	r := &types.Resume{
		Summary: strings.Repeat("x", 40),
		Experience: []types.ExperienceEntry{
			{ID: "exp-1", Role: "Dev", Company: "Co", Tasks: []string{
				strings.Repeat("a", 30),
				strings.Repeat("b", 30),
			}},
		},
	}

	res := Compute(r, types.ThemeConfig{}, nil)

	require.Equal(t, 1, res.Plan.PageCount())
	assert.Equal(t, pagination.HeaderFull, res.Plan.Pages[0].Header)
	assert.Equal(t, []types.SectionKind{types.SectionSummary, types.SectionExperience}, res.Plan.Pages[0].Sections)
}

func TestComputeEmptyOrderMeansCanonical(t *testing.T) {
	r := &types.Resume{}

	res := Compute(r, types.ThemeConfig{}, nil)

	require.Equal(t, 1, res.Plan.PageCount())
	assert.Equal(t, types.CanonicalSectionOrder(), res.Plan.Pages[0].Sections)
}

func TestComputeZonesMatchGeometry(t *testing.T) {
	r := &types.Resume{
		Personal:  types.Personal{FirstName: "Ada"},
		Summary:   "short",
		Education: []types.EducationEntry{{ID: "edu-1", Degree: "BSc", School: "Uni"}},
	}

	res := Compute(r, types.ThemeConfig{}, nil)

	require.NotEmpty(t, res.Zones)
	for _, z := range res.Zones {
		placed, ok := res.Geometry.Frame(z.Path)
		require.True(t, ok)
		assert.Equal(t, placed.Frame, z.Frame)
	}
}

func TestComputeDocumentStampsIdentity(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	doc := &types.Document{
		ID:           "doc-1",
		Name:         "Test",
		Content:      types.Resume{Summary: "hello"},
		SectionOrder: types.CanonicalSectionOrder(),
		UpdatedAt:    now,
	}

	snap := ComputeDocument(doc)

	assert.Equal(t, "doc-1", snap.DocumentID)
	assert.True(t, snap.UpdatedAt.Equal(now))
	assert.False(t, snap.Stale(doc))

	doc.UpdatedAt = now.Add(time.Minute)
	assert.True(t, snap.Stale(doc))

	other := &types.Document{ID: "doc-2", UpdatedAt: now}
	assert.True(t, snap.Stale(other))
}
