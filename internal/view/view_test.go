package view

import (
	"strings"
	"testing"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/snapshot"
)

func testSnapshot() *snapshot.Snapshot {
	symbols := grading.NewSymbolTable(grading.DefaultSymbols())
	levels := grading.DefaultLevels()
	fb := grading.DefaultFallbacks()

	rows := []snapshot.Row{
		{
			StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.1", Descriptor: "Solve equations",
			Attempts: map[string][]string{"B": {"1", "1"}},
		},
		{
			StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.2", Descriptor: "Graph lines",
			Attempts: map[string][]string{},
		},
	}
	for i := range rows {
		rows[i].Grade = grading.Evaluate(rows[i].Attempts, symbols, levels, fb)
	}
	return &snapshot.Snapshot{Symbols: symbols, Levels: levels, Fallbacks: fb, Rows: rows}
}

func TestRenderStudent(t *testing.T) {
	out := RenderStudent(testSnapshot(), "ada@school.org")

	for _, want := range []string{"ada@school.org", "Unit 1", "1.1", "Solve equations", "no attempts", "Unit averages"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderStudentUnknown(t *testing.T) {
	out := RenderStudent(testSnapshot(), "nobody@school.org")
	if !strings.Contains(out, "no grade rows") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRenderAllEmpty(t *testing.T) {
	snap := &snapshot.Snapshot{
		Symbols: grading.NewSymbolTable(grading.DefaultSymbols()),
		Levels:  grading.DefaultLevels(),
	}
	if out := RenderAll(snap); !strings.Contains(out, "empty") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	got := truncate("a very long descriptor indeed", 10)
	if len(got) > 12 {
		t.Errorf("truncate kept %d bytes: %q", len(got), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
