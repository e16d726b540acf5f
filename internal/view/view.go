// Package view renders grade snapshots for the terminal.
package view

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/snapshot"
)

// Color palette: restrained, gradebook-like
var (
	accent  = lipgloss.Color("#8B5CF6")
	success = lipgloss.Color("#22C55E")
	warn    = lipgloss.Color("#F97316")
	danger  = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dim)

	dimStyle = lipgloss.NewStyle().
			Foreground(dim)

	highStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	midStyle = lipgloss.NewStyle().
			Foreground(warn)

	lowStyle = lipgloss.NewStyle().
			Foreground(danger)
)

// gradeStyle picks a style by where the grade sits in the ladder.
func gradeStyle(g grading.Grade, levels []grading.Level) lipgloss.Style {
	v, ok := g.Numeric()
	if !ok {
		return dimStyle
	}
	if len(levels) > 0 && v >= levels[len(levels)-1].Score {
		return highStyle
	}
	if len(levels) > 0 && v >= levels[0].Score {
		return midStyle
	}
	return lowStyle
}

// RenderStudent renders one student's rows with per-level glyph
// strings and the evaluated grade.
func RenderStudent(snap *snapshot.Snapshot, email string) string {
	rows := snap.RowsForStudent(email)
	if len(rows) == 0 {
		return dimStyle.Render("no grade rows for "+email) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(email))
	b.WriteString("\n\n")

	currentUnit := ""
	for _, r := range rows {
		if r.Unit != currentUnit {
			currentUnit = r.Unit
			b.WriteString(headerStyle.Render(currentUnit))
			b.WriteString("\n")
		}

		var attempts []string
		for _, lvl := range snap.Levels {
			marks := r.Attempts[lvl.ShortCode]
			if len(marks) == 0 {
				continue
			}
			attempts = append(attempts, fmt.Sprintf("%s %s", lvl.ShortCode, grading.GlyphString(marks, snap.Symbols)))
		}
		detail := strings.Join(attempts, "  ")
		if detail == "" {
			detail = dimStyle.Render("no attempts")
		}

		grade := gradeStyle(r.Grade, snap.Levels).Render(r.Grade.Display())
		fmt.Fprintf(&b, "  %-6s %-34s %s  %s\n", r.SkillNumber, truncate(r.Descriptor, 34), grade, detail)
	}

	if avgs := studentAverages(snap, email); avgs != "" {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Unit averages"))
		b.WriteString("\n")
		b.WriteString(avgs)
	}
	return b.String()
}

// RenderAll renders every student, separated by blank lines.
func RenderAll(snap *snapshot.Snapshot) string {
	var parts []string
	for _, email := range snap.Students() {
		parts = append(parts, RenderStudent(snap, email))
	}
	if len(parts) == 0 {
		return dimStyle.Render("gradebook is empty: add students and skills, then populate") + "\n"
	}
	return strings.Join(parts, "\n")
}

func studentAverages(snap *snapshot.Snapshot, email string) string {
	var b strings.Builder
	for _, avg := range snap.UnitAverages() {
		if avg.StudentEmail != email {
			continue
		}
		fmt.Fprintf(&b, "  %-20s %.2f %s\n",
			truncate(avg.Unit, 20),
			avg.Average,
			dimStyle.Render(fmt.Sprintf("(%d of %d graded)", avg.Graded, avg.Total)))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
