package snapshot

import (
	"context"
	"strings"
	"testing"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/store"
)

// fakeConfigRepo serves a fixed grading configuration.
type fakeConfigRepo struct {
	symbols []grading.Symbol
	levels  []grading.Level
	fb      grading.Fallbacks
}

func (f *fakeConfigRepo) Seed(ctx context.Context, symbols []grading.Symbol, levels []grading.Level, fb grading.Fallbacks) error {
	return nil
}
func (f *fakeConfigRepo) Symbols(ctx context.Context) ([]grading.Symbol, error) {
	return f.symbols, nil
}
func (f *fakeConfigRepo) Levels(ctx context.Context) ([]grading.Level, error) { return f.levels, nil }
func (f *fakeConfigRepo) Fallbacks(ctx context.Context) (grading.Fallbacks, error) {
	return f.fb, nil
}

// fakeGradebookRepo serves fixed grade rows.
type fakeGradebookRepo struct {
	rows []store.GradeRow
}

func (f *fakeGradebookRepo) AddStudent(ctx context.Context, s store.Student) error { return nil }
func (f *fakeGradebookRepo) Students(ctx context.Context) ([]store.Student, error) {
	return nil, nil
}
func (f *fakeGradebookRepo) AddSkill(ctx context.Context, sk store.Skill) error { return nil }
func (f *fakeGradebookRepo) Skills(ctx context.Context) ([]store.Skill, error)  { return nil, nil }
func (f *fakeGradebookRepo) EnsureRows(ctx context.Context) (int, error)        { return 0, nil }
func (f *fakeGradebookRepo) Rows(ctx context.Context) ([]store.GradeRow, error) {
	return f.rows, nil
}
func (f *fakeGradebookRepo) RowsForStudent(ctx context.Context, email string) ([]store.GradeRow, error) {
	return nil, nil
}
func (f *fakeGradebookRepo) RecordAttempt(ctx context.Context, rowID int, levelCode, mark string) error {
	return nil
}

func defaultConfig() *fakeConfigRepo {
	return &fakeConfigRepo{
		symbols: grading.DefaultSymbols(),
		levels:  grading.DefaultLevels(),
		fb:      grading.DefaultFallbacks(),
	}
}

func TestLoadEvaluatesRows(t *testing.T) {
	gradebook := &fakeGradebookRepo{rows: []store.GradeRow{
		{
			StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.1", Descriptor: "Solve",
			Attempts: map[string][]string{"B": {"1", "1"}},
		},
		{
			StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.2", Descriptor: "Graph",
			Attempts: map[string][]string{"M": {"1", "1"}},
		},
		{
			StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.3", Descriptor: "Factor",
			Attempts: map[string][]string{},
		},
	}}

	snap, err := NewReader(defaultConfig(), gradebook).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(snap.Rows))
	}

	wantDisplay := []string{"2", "4", "-"}
	for i, want := range wantDisplay {
		if got := snap.Rows[i].Grade.Display(); got != want {
			t.Errorf("row %d grade = %q, want %q", i, got, want)
		}
	}
}

func TestLoadRequiresConfiguration(t *testing.T) {
	empty := &fakeConfigRepo{}
	_, err := NewReader(empty, &fakeGradebookRepo{}).Load(context.Background())
	if err == nil {
		t.Fatal("expected error with empty grading configuration")
	}
}

func TestUnitAverages(t *testing.T) {
	gradebook := &fakeGradebookRepo{rows: []store.GradeRow{
		// Unit 1: a 2 and a 4, plus an ungraded row that must not
		// drag the mean down.
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.1", Descriptor: "Solve",
			Attempts: map[string][]string{"B": {"1", "1"}}},
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.2", Descriptor: "Graph",
			Attempts: map[string][]string{"M": {"1", "1"}}},
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.3", Descriptor: "Factor",
			Attempts: map[string][]string{}},
		// Unit 2: only a fallback score, which does count.
		{StudentEmail: "ada@school.org", Unit: "Unit 2", SkillNumber: "2.1", Descriptor: "Ratios",
			Attempts: map[string][]string{"B": {"X", "1", "X"}}},
		// A second student with nothing graded: no average at all.
		{StudentEmail: "bob@school.org", Unit: "Unit 1", SkillNumber: "1.1", Descriptor: "Solve",
			Attempts: map[string][]string{}},
	}}

	snap, err := NewReader(defaultConfig(), gradebook).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	avgs := snap.UnitAverages()
	if len(avgs) != 2 {
		t.Fatalf("got %d averages, want 2: %+v", len(avgs), avgs)
	}

	u1 := avgs[0]
	if u1.Unit != "Unit 1" || u1.StudentEmail != "ada@school.org" {
		t.Fatalf("first average = %+v", u1)
	}
	if u1.Average != 3 {
		t.Errorf("unit 1 average = %v, want 3", u1.Average)
	}
	if u1.Graded != 2 || u1.Total != 3 {
		t.Errorf("unit 1 graded/total = %d/%d, want 2/3", u1.Graded, u1.Total)
	}
	if !strings.Contains(u1.Breakdown, "1.3 Factor: -") {
		t.Errorf("breakdown should list ungraded rows: %q", u1.Breakdown)
	}

	u2 := avgs[1]
	if u2.Unit != "Unit 2" || u2.Average != 1 {
		t.Errorf("unit 2 average = %+v, want fallback score 1", u2)
	}
}
