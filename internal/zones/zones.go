// Package zones derives the flat catalog of editable field zones the
// interactive overlay places over the rendered page. A zone pairs the
// content-tree path of one field with the frame the layout calculator
// assigned to it. Zones are never patched in place: every content or theme
// change rebuilds the whole catalog, so a zone can never describe a stale
// layout.
package zones

import (
	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/types"
)

// Kind classifies what the overlay should render inside a zone's editor.
type Kind string

const (
	// KindText is a single-line text field.
	KindText Kind = "text"
	// KindMultiline is a wrapping text block.
	KindMultiline Kind = "multiline"
	// KindPhoto is the photo well.
	KindPhoto Kind = "photo"
	// KindList is an aggregate block edited as a list (skills, languages).
	KindList Kind = "list"
)

// Zone is one editable hit-region. ID and Path are equal under the
// canonical path grammar; both are kept on the wire so the overlay can
// treat the identifier as opaque.
type Zone struct {
	ID    string         `json:"id"`
	Path  string         `json:"path"`
	Kind  Kind           `json:"kind"`
	Page  int            `json:"page"`
	Frame geometry.Frame `json:"frame"`
}

// Build walks the content tree in layout order and emits one zone per
// addressable field, copying each frame verbatim from the layout geometry.
// Fields the layout did not place (absent photo, empty sections) yield no
// zone.
func Build(g *layout.Geometry, r *types.Resume) []Zone {
	var zs []Zone
	add := func(path string, kind Kind) {
		placed, ok := g.Frame(path)
		if !ok {
			return
		}
		zs = append(zs, Zone{ID: path, Path: path, Kind: kind, Page: placed.Page, Frame: placed.Frame})
	}

	if r.Personal.Photo != "" {
		add(types.PathPhoto, KindPhoto)
	}
	add(types.PathFirstName, KindText)
	add(types.PathLastName, KindText)
	add(types.PathTitle, KindText)
	add(types.PathEmail, KindText)
	add(types.PathPhone, KindText)
	add(types.PathLocation, KindText)
	add(types.PathWebsite, KindText)

	add(types.PathSummary, KindMultiline)

	for i := range r.Experience {
		entry := &r.Experience[i]
		add(types.ExperienceFieldPath(entry.ID, "role"), KindText)
		add(types.ExperienceFieldPath(entry.ID, "company"), KindText)
		add(types.ExperienceFieldPath(entry.ID, "period"), KindText)
		for j := range entry.Tasks {
			add(types.TaskPath(entry.ID, j), KindMultiline)
		}
	}

	for i := range r.Education {
		entry := &r.Education[i]
		add(types.EducationFieldPath(entry.ID, "degree"), KindText)
		add(types.EducationFieldPath(entry.ID, "school"), KindText)
		add(types.EducationFieldPath(entry.ID, "period"), KindText)
	}

	add(types.PathSkills, KindList)
	add(types.PathLanguages, KindList)

	return zs
}

// Scale returns a copy of the catalog with every frame multiplied by the
// overlay's zoom factor. Factors at or below zero are treated as 1 so a
// missing zoom can never collapse the catalog.
func Scale(zs []Zone, factor float64) []Zone {
	if factor <= 0 {
		factor = 1
	}
	out := make([]Zone, len(zs))
	for i, z := range zs {
		z.Frame = z.Frame.Scale(factor)
		out[i] = z
	}
	return out
}

// At returns the topmost zone containing the point on the given page, in
// overlay coordinates. The walk is backwards so later-placed zones win,
// matching the stacking order of the overlay's hit-targets.
func At(zs []Zone, page int, p geometry.Point) (Zone, bool) {
	for i := len(zs) - 1; i >= 0; i-- {
		if zs[i].Page == page && zs[i].Frame.Contains(p) {
			return zs[i], true
		}
	}
	return Zone{}, false
}
