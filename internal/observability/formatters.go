// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/geometry"
	"github.com/jonathan/resume-studio/internal/pagination"
	"github.com/jonathan/resume-studio/internal/theme"
	"github.com/jonathan/resume-studio/internal/zones"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTheme outputs a human-readable summary of the resolved theme.
func (p *Printer) PrintTheme(t theme.Resolved) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Paper:    %s (%.0f × %.0f px)\n", t.PaperName, t.PageW, t.PageH))
	sb.WriteString(fmt.Sprintf("Fonts:    %s / %s (scale %.2f)\n", t.HeadingFont, t.BodyFont, t.FontScale))
	sb.WriteString(fmt.Sprintf("Accent:   %s\n", t.Accent))
	if t.SidebarSide == "none" {
		sb.WriteString("Sidebar:  none\n")
	} else {
		sb.WriteString(fmt.Sprintf("Sidebar:  %s (%.0f px wide)\n", t.SidebarSide, t.SidebarW))
	}
	sb.WriteString(fmt.Sprintf("Margins:  %.0f px, header %.0f px full / %.0f px mini",
		t.Margin.Top, t.HeaderFullH, t.HeaderMiniH))

	p.printBox("RESOLVED THEME", sb.String())
}

// PrintPlan outputs the page plan: one line per page with its header mode
// and assigned sections.
func (p *Printer) PrintPlan(plan pagination.Plan) {
	var sb strings.Builder

	for _, page := range plan.Pages {
		kinds := make([]string, 0, len(page.Sections))
		for _, kind := range page.Sections {
			kinds = append(kinds, string(kind))
		}
		sections := "(empty)"
		if len(kinds) > 0 {
			sections = strings.Join(kinds, ", ")
		}
		sb.WriteString(fmt.Sprintf("Page %d [%s]: %s\n", page.Index+1, page.Header, sections))
	}

	p.printBox(fmt.Sprintf("PAGE PLAN (%d pages)", plan.PageCount()), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintZones outputs the first zones of the catalog with their frames.
func (p *Printer) PrintZones(zs []zones.Zone) {
	if len(zs) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(zs), maxItemsToShow)
	for i := 0; i < count; i++ {
		z := zs[i]
		sb.WriteString(fmt.Sprintf("p%d %-9s %s\n", z.Page+1, z.Kind, z.Path))
	}
	if len(zs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(zs)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("FIELD ZONES (%d)", len(zs)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the full computed snapshot: theme, plan and zones.
func (p *Printer) PrintResult(result *engine.Result) {
	if result == nil {
		return
	}
	p.PrintTheme(result.Theme)
	p.PrintPlan(result.Plan)
	p.PrintZones(result.Zones)
}

// FormatFrame renders a frame as "x,y w×h" in whole pixels for log lines.
func FormatFrame(f geometry.Frame) string {
	return fmt.Sprintf("%.0f,%.0f %.0f×%.0f", f.X, f.Y, f.W, f.H)
}
