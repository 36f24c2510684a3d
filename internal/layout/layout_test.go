package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/estimate"
	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/types"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Personal: types.Personal{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Title:     "Software Engineer",
			Photo:     "photo.png",
			Contact: types.Contact{
				Email:    "ada@example.com",
				Phone:    "+44 20 0000",
				Location: "London",
			},
		},
		Summary: "Engineer with a decade of experience building deterministic systems.",
		Experience: []types.ExperienceEntry{
			{ID: "exp-1", Role: "Senior Engineer", Company: "Engines Ltd",
				Period: types.Period{Start: "2019-01", End: "present"},
				Tasks:  []string{"Built the layout engine", "Kept both renderers aligned"}},
			{ID: "exp-2", Role: "Engineer", Company: "Startup",
				Period: types.Period{Start: "2016-05", End: "2018-12"},
				Tasks:  []string{"Shipped the first version"}},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Degree: "BSc Mathematics", School: "University", Period: types.Period{Start: "2012-09", End: "2016-06"}},
		},
		Skills:    []string{"Go", "SQL", "Docker", "Postgres", "Testing"},
		Languages: []types.LanguageEntry{{ID: "lang-1", Name: "English", Level: "native"}},
	}
}

func computeAll(t *testing.T, cfg types.ThemeConfig, r *types.Resume) (theme.Resolved, pagination.Plan, *Geometry) {
	t.Helper()
	resolved := theme.Resolve(cfg)
	est := estimate.New(resolved)
	plan := pagination.Paginate(types.CanonicalSectionOrder(), est.SectionHeights(r),
		pagination.Budget{First: resolved.BudgetFull(), Rest: resolved.BudgetMini()})
	return resolved, plan, Compute(resolved, r, plan)
}

func TestFramesAreNonNegative(t *testing.T) {
	for _, side := range []string{"left", "right", "none"} {
		_, _, g := computeAll(t, types.ThemeConfig{SidebarSide: side}, sampleResume())
		for _, placed := range g.Fields {
			f := placed.Frame
			if f.X < 0 || f.Y < 0 || f.W < 0 || f.H < 0 {
				t.Errorf("side=%s: %s has negative frame %+v", side, placed.Path, f)
			}
		}
	}
}

func TestFramesStayInsideHorizontalBounds(t *testing.T) {
	resolved, _, g := computeAll(t, types.ThemeConfig{}, sampleResume())

	for _, placed := range g.Fields {
		assert.GreaterOrEqual(t, placed.Frame.X, resolved.Margin.Left, "%s", placed.Path)
		assert.LessOrEqual(t, placed.Frame.Right(), resolved.PageW-resolved.Margin.Right+0.001, "%s", placed.Path)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	cfg := types.ThemeConfig{SidebarSide: "right", FontScale: 1.1}
	r := sampleResume()

	_, _, first := computeAll(t, cfg, r)
	_, _, second := computeAll(t, cfg, r)

	require.True(t, reflect.DeepEqual(first, second), "two identical runs produced different geometry")
}

func TestIdentityFieldsOnFirstPageOnly(t *testing.T) {
	_, plan, g := computeAll(t, types.ThemeConfig{}, sampleResume())
	require.GreaterOrEqual(t, plan.PageCount(), 1)

	for _, path := range []string{
		types.PathPhoto, types.PathFirstName, types.PathLastName, types.PathTitle,
		types.PathEmail, types.PathPhone, types.PathLocation, types.PathWebsite,
	} {
		placed, ok := g.Frame(path)
		require.True(t, ok, "missing %s", path)
		assert.Equal(t, 0, placed.Page, "%s belongs to the full-header page", path)
	}
}

func TestNoPhotoFrameWithoutPhoto(t *testing.T) {
	r := sampleResume()
	r.Personal.Photo = ""

	_, _, g := computeAll(t, types.ThemeConfig{}, r)

	_, ok := g.Frame(types.PathPhoto)
	assert.False(t, ok, "photo frame placed with no photo set")

	// Without the photo the name block starts at the band origin.
	first, ok := g.Frame(types.PathFirstName)
	require.True(t, ok)
	assert.Equal(t, g.Pages[0].Band.X, first.Frame.X)
}

func TestEntryFieldsStackDownward(t *testing.T) {
	_, _, g := computeAll(t, types.ThemeConfig{}, sampleResume())

	role, _ := g.Frame(types.ExperienceFieldPath("exp-1", "role"))
	company, _ := g.Frame(types.ExperienceFieldPath("exp-1", "company"))
	period, _ := g.Frame(types.ExperienceFieldPath("exp-1", "period"))
	task0, _ := g.Frame(types.TaskPath("exp-1", 0))
	task1, _ := g.Frame(types.TaskPath("exp-1", 1))
	nextRole, _ := g.Frame(types.ExperienceFieldPath("exp-2", "role"))

	assert.Equal(t, role.Frame.Bottom(), company.Frame.Y)
	assert.Equal(t, company.Frame.Bottom(), period.Frame.Y)
	assert.Equal(t, period.Frame.Bottom(), task0.Frame.Y)
	assert.Equal(t, task0.Frame.Bottom(), task1.Frame.Y)
	assert.Greater(t, nextRole.Frame.Y, task1.Frame.Bottom(), "entry gap separates entries")
}

func TestSidebarRouting(t *testing.T) {
	resolved, _, g := computeAll(t, types.ThemeConfig{SidebarSide: "left"}, sampleResume())

	skills, ok := g.Frame(types.PathSkills)
	require.True(t, ok)
	assert.Equal(t, resolved.SidebarX, skills.Frame.X)
	assert.Equal(t, resolved.SidebarW, skills.Frame.W)

	summary, ok := g.Frame(types.PathSummary)
	require.True(t, ok)
	assert.Equal(t, resolved.MainX, summary.Frame.X)
	assert.Equal(t, resolved.MainW, summary.Frame.W)

	// Sidebar and main flow independently from the same top.
	languages, _ := g.Frame(types.PathLanguages)
	assert.Equal(t, resolved.SidebarX, languages.Frame.X)
}

func TestSingleColumnLayout(t *testing.T) {
	resolved, _, g := computeAll(t, types.ThemeConfig{SidebarSide: "none"}, sampleResume())

	skills, ok := g.Frame(types.PathSkills)
	require.True(t, ok)
	assert.Equal(t, resolved.MainX, skills.Frame.X)
	assert.Equal(t, resolved.MainW, skills.Frame.W)

	for _, pg := range g.Pages {
		assert.Nil(t, pg.Sidebar, "no sidebar band in single-column layout")
	}
}

func TestSectionAdvanceMatchesEstimate(t *testing.T) {
	r := sampleResume()
	cfg := types.ThemeConfig{SidebarSide: "none"}
	resolved, _, g := computeAll(t, cfg, r)
	est := estimate.New(resolved)

	// In a single column the distance between consecutive section headings
	// equals the leading section's estimated height, so pagination budgets
	// and layout cursors agree by construction.
	require.GreaterOrEqual(t, len(g.Pages[0].Headings), 2)
	first := g.Pages[0].Headings[0]
	second := g.Pages[0].Headings[1]
	assert.InDelta(t, est.Section(first.Kind, r), second.Frame.Y-first.Frame.Y, 0.001)
}

func TestFallbackPageScaffold(t *testing.T) {
	r := &types.Resume{}
	_, plan, g := computeAll(t, types.ThemeConfig{}, r)

	require.Equal(t, 1, plan.PageCount())
	require.Len(t, g.Pages, 1)

	// All five headings are laid out as a scaffold, but no section fields.
	assert.Len(t, g.Pages[0].Headings, len(types.CanonicalSectionOrder()))
	for _, placed := range g.Fields {
		assert.True(t, strings.HasPrefix(placed.Path, "personal."),
			"unexpected non-identity field %s on fallback page", placed.Path)
	}
}

func TestMultiPageLayout(t *testing.T) {
	r := sampleResume()
	long := strings.Repeat("built and maintained a large subsystem end to end ", 6)
	r.Experience = nil
	for i := 0; i < 8; i++ {
		r.Experience = append(r.Experience, types.ExperienceEntry{
			ID:    "exp-" + string(rune('a'+i)),
			Role:  "Engineer",
			Tasks: []string{long, long, long, long},
		})
	}

	resolved, plan, g := computeAll(t, types.ThemeConfig{}, r)
	require.Greater(t, plan.PageCount(), 1, "content was expected to overflow onto a second page")
	require.Len(t, g.Pages, plan.PageCount())

	// Later pages carry the mini header and their first section starts
	// right below it.
	pg := g.Pages[1]
	assert.Equal(t, pagination.HeaderMini, pg.Header)
	assert.Equal(t, resolved.HeaderMiniH, pg.Band.H)
	require.NotEmpty(t, pg.Headings)
	assert.Equal(t, pg.Band.Bottom()+resolved.HeaderGap, pg.Headings[0].Frame.Y)

	// Every field's page index points at a real page.
	for _, placed := range g.Fields {
		assert.Less(t, placed.Page, plan.PageCount(), "%s", placed.Path)
	}
}

func TestFrameLookup(t *testing.T) {
	_, _, g := computeAll(t, types.ThemeConfig{}, sampleResume())

	placed, ok := g.Frame(types.PathSummary)
	require.True(t, ok)
	assert.Equal(t, types.PathSummary, placed.Path)

	_, ok = g.Frame("experience.ghost.role")
	assert.False(t, ok)
}
