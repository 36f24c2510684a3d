// Package geometry provides the unit conversions, paper constants and
// rectangle primitives shared by the layout engine and the PDF renderer.
//
// All on-screen geometry is expressed in device pixels at 96 DPI; print
// geometry is expressed in points at 72 per inch. Both renderers convert
// through the same constants so a frame computed once maps to the same
// physical position everywhere.
package geometry

import "math"

// Conversion factors between the three unit systems.
const (
	PxPerInch = 96.0
	PtPerInch = 72.0
	MmPerInch = 25.4

	PxPerMm = PxPerInch / MmPerInch
	PtPerMm = PtPerInch / MmPerInch
	PtPerPx = PtPerInch / PxPerInch
)

// MmToPx converts millimeters to device pixels.
func MmToPx(mm float64) float64 {
	return mm * PxPerMm
}

// PxToMm converts device pixels to millimeters.
func PxToMm(px float64) float64 {
	return px / PxPerMm
}

// MmToPt converts millimeters to print points.
func MmToPt(mm float64) float64 {
	return mm * PtPerMm
}

// PtToMm converts print points to millimeters.
func PtToMm(pt float64) float64 {
	return pt / PtPerMm
}

// PxToPt converts device pixels to print points.
func PxToPt(px float64) float64 {
	return px * PtPerPx
}

// PtToPx converts print points to device pixels.
func PtToPx(pt float64) float64 {
	return pt / PtPerPx
}

// Paper is a physical page format. Dimensions are stored in millimeters;
// pixel and point dimensions are derived, never stored.
type Paper struct {
	Name     string
	WidthMm  float64
	HeightMm float64
}

// The two supported page formats.
var (
	PaperA4     = Paper{Name: "a4", WidthMm: 210, HeightMm: 297}
	PaperLetter = Paper{Name: "letter", WidthMm: 215.9, HeightMm: 279.4}
)

// PaperByName resolves a paper format token. Unknown tokens fall back to A4,
// matching the theme resolver's never-fail contract.
func PaperByName(name string) Paper {
	switch name {
	case PaperLetter.Name:
		return PaperLetter
	default:
		return PaperA4
	}
}

// WidthPx returns the page width in whole device pixels.
// A4 is 794px wide at 96 DPI, Letter 816px.
func (p Paper) WidthPx() float64 {
	return math.Round(MmToPx(p.WidthMm))
}

// HeightPx returns the page height in whole device pixels.
// A4 is 1123px tall at 96 DPI, Letter 1056px.
func (p Paper) HeightPx() float64 {
	return math.Round(MmToPx(p.HeightMm))
}

// WidthPt returns the page width in print points.
func (p Paper) WidthPt() float64 {
	return MmToPt(p.WidthMm)
}

// HeightPt returns the page height in print points.
func (p Paper) HeightPt() float64 {
	return MmToPt(p.HeightMm)
}
