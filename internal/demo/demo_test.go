package demo

import (
	"context"
	"fmt"
	"testing"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/store"
)

type fakeConfigRepo struct {
	symbols []grading.Symbol
	levels  []grading.Level
}

func (f *fakeConfigRepo) Seed(ctx context.Context, symbols []grading.Symbol, levels []grading.Level, fb grading.Fallbacks) error {
	return nil
}
func (f *fakeConfigRepo) Symbols(ctx context.Context) ([]grading.Symbol, error) {
	return f.symbols, nil
}
func (f *fakeConfigRepo) Levels(ctx context.Context) ([]grading.Level, error) { return f.levels, nil }
func (f *fakeConfigRepo) Fallbacks(ctx context.Context) (grading.Fallbacks, error) {
	return grading.DefaultFallbacks(), nil
}

// memGradebook is a tiny in-memory gradebook for seeding tests.
type memGradebook struct {
	students []store.Student
	skills   []store.Skill
	rows     []store.GradeRow
}

func (m *memGradebook) AddStudent(ctx context.Context, s store.Student) error {
	m.students = append(m.students, s)
	return nil
}
func (m *memGradebook) Students(ctx context.Context) ([]store.Student, error) {
	return m.students, nil
}
func (m *memGradebook) AddSkill(ctx context.Context, sk store.Skill) error {
	m.skills = append(m.skills, sk)
	return nil
}
func (m *memGradebook) Skills(ctx context.Context) ([]store.Skill, error) { return m.skills, nil }
func (m *memGradebook) EnsureRows(ctx context.Context) (int, error) {
	created := 0
	for _, stu := range m.students {
		for _, sk := range m.skills {
			if m.find(stu.Email, sk) != nil {
				continue
			}
			m.rows = append(m.rows, store.GradeRow{
				ID:           len(m.rows) + 1,
				StudentEmail: stu.Email,
				Unit:         sk.Unit,
				SkillNumber:  sk.Number,
				Descriptor:   sk.Descriptor,
				Attempts:     map[string][]string{},
			})
			created++
		}
	}
	return created, nil
}
func (m *memGradebook) find(email string, sk store.Skill) *store.GradeRow {
	for i := range m.rows {
		r := &m.rows[i]
		if r.StudentEmail == email && r.Unit == sk.Unit && r.SkillNumber == sk.Number {
			return r
		}
	}
	return nil
}
func (m *memGradebook) Rows(ctx context.Context) ([]store.GradeRow, error) { return m.rows, nil }
func (m *memGradebook) RowsForStudent(ctx context.Context, email string) ([]store.GradeRow, error) {
	var out []store.GradeRow
	for _, r := range m.rows {
		if r.StudentEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memGradebook) RecordAttempt(ctx context.Context, rowID int, levelCode, mark string) error {
	if rowID < 1 || rowID > len(m.rows) {
		return fmt.Errorf("row %d not found", rowID)
	}
	row := &m.rows[rowID-1]
	row.Attempts[levelCode] = append(row.Attempts[levelCode], mark)
	return nil
}

func TestSeedDeterministic(t *testing.T) {
	ctx := context.Background()
	config := &fakeConfigRepo{symbols: grading.DefaultSymbols(), levels: grading.DefaultLevels()}

	run := func() (Stats, *memGradebook) {
		gradebook := &memGradebook{}
		stats, err := NewSeeder(config, gradebook, 42).Seed(ctx, 4)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return stats, gradebook
	}

	stats1, gb1 := run()
	stats2, gb2 := run()

	if stats1.Students != 4 {
		t.Fatalf("students = %d, want 4", stats1.Students)
	}
	if stats1.Rows != 4*len(demoSkills) {
		t.Fatalf("rows = %d, want %d", stats1.Rows, 4*len(demoSkills))
	}
	if stats1 != stats2 {
		t.Fatalf("same seed produced different stats: %+v vs %+v", stats1, stats2)
	}
	for i := range gb1.rows {
		a, b := gb1.rows[i], gb2.rows[i]
		if a.StudentEmail != b.StudentEmail || fmt.Sprint(a.Attempts) != fmt.Sprint(b.Attempts) {
			t.Fatalf("row %d differs between runs", i)
		}
	}
}

func TestSeedMarksAreKnownSymbols(t *testing.T) {
	ctx := context.Background()
	config := &fakeConfigRepo{symbols: grading.DefaultSymbols(), levels: grading.DefaultLevels()}
	gradebook := &memGradebook{}

	stats, err := NewSeeder(config, gradebook, 7).Seed(ctx, 3)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if stats.Attempts == 0 {
		t.Fatal("no attempts written")
	}

	table := grading.NewSymbolTable(grading.DefaultSymbols())
	levels := map[string]bool{}
	for _, lvl := range grading.DefaultLevels() {
		levels[lvl.ShortCode] = true
	}
	for _, row := range gradebook.rows {
		for code, marks := range row.Attempts {
			if !levels[code] {
				t.Fatalf("attempt recorded for unknown level %q", code)
			}
			if len(marks) > 5 {
				t.Fatalf("row %d level %s got %d attempts, cap is 5", row.ID, code, len(marks))
			}
			for _, mark := range marks {
				if !table.Known(mark) {
					t.Fatalf("unknown symbol %q written", mark)
				}
			}
		}
	}
}

func TestSeedRequiresConfiguration(t *testing.T) {
	gradebook := &memGradebook{}
	_, err := NewSeeder(&fakeConfigRepo{}, gradebook, 1).Seed(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error for empty configuration")
	}
}
