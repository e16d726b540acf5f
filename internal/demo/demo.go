// Package demo seeds the gradebook with plausible fake data so the
// view and sync paths can be exercised without a real class.
package demo

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/store"
)

var firstNames = []string{
	"Ada", "Bo", "Cam", "Dee", "Eli", "Fin", "Gus", "Ida", "Jo", "Kai",
	"Lee", "Mia", "Ned", "Osa", "Pia", "Quinn", "Rio", "Sol", "Tia", "Uma",
}

var lastNames = []string{
	"Larkin", "Brook", "Chen", "Diaz", "Egan", "Frost", "Gray", "Hale",
	"Iver", "Jones", "Kim", "Lopez", "Mori", "Nand", "Ortiz", "Pike",
	"Reyes", "Shaw", "Tran", "Voss",
}

var demoSkills = []store.Skill{
	{Unit: "Unit 1", Number: "1.1", Descriptor: "Solve one-step equations"},
	{Unit: "Unit 1", Number: "1.2", Descriptor: "Solve multi-step equations"},
	{Unit: "Unit 1", Number: "1.3", Descriptor: "Graph linear equations"},
	{Unit: "Unit 2", Number: "2.1", Descriptor: "Compute unit rates"},
	{Unit: "Unit 2", Number: "2.2", Descriptor: "Solve proportions"},
	{Unit: "Unit 2", Number: "2.3", Descriptor: "Percent increase and decrease"},
}

// Stats reports what a seeding run produced.
type Stats struct {
	Students int
	Skills   int
	Rows     int
	Attempts int
}

// Seeder writes demo data through the normal gradebook repository, so
// seeded rows behave exactly like hand-entered ones.
type Seeder struct {
	config    store.GradingConfigRepo
	gradebook store.GradebookRepo
	rng       *rand.Rand

	// Round-robin cursors over the symbol pools, so every configured
	// symbol shows up in the seeded data.
	passIdx int
	missIdx int
}

// NewSeeder creates a Seeder. The seed fixes the generated data, so
// repeated runs with the same seed produce the same gradebook.
func NewSeeder(config store.GradingConfigRepo, gradebook store.GradebookRepo, seed int64) *Seeder {
	return &Seeder{
		config:    config,
		gradebook: gradebook,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Seed adds n demo students, the demo skill list, and attempt history
// for every row. The grading configuration must already be seeded.
func (s *Seeder) Seed(ctx context.Context, n int) (Stats, error) {
	var stats Stats

	symbols, err := s.config.Symbols(ctx)
	if err != nil {
		return stats, err
	}
	levels, err := s.config.Levels(ctx)
	if err != nil {
		return stats, err
	}
	if len(symbols) == 0 || len(levels) == 0 {
		return stats, fmt.Errorf("grading configuration not set up: run setup first")
	}
	table := grading.NewSymbolTable(symbols)

	var pass, miss []string
	for _, sym := range table.Symbols() {
		if sym.Mastery {
			pass = append(pass, sym.Character)
		} else {
			miss = append(miss, sym.Character)
		}
	}
	if len(pass) == 0 || len(miss) == 0 {
		return stats, fmt.Errorf("need at least one mastery and one non-mastery symbol")
	}
	sort.Strings(pass)
	sort.Strings(miss)

	for i := 0; i < n; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s%d@school.example", strings.ToLower(first), strings.ToLower(last), i+1)
		if err := s.gradebook.AddStudent(ctx, store.Student{
			Email:     email,
			FirstName: first,
			LastName:  last,
		}); err != nil {
			return stats, err
		}
		stats.Students++
	}

	for _, sk := range demoSkills {
		if err := s.gradebook.AddSkill(ctx, sk); err != nil {
			return stats, err
		}
		stats.Skills++
	}

	created, err := s.gradebook.EnsureRows(ctx)
	if err != nil {
		return stats, err
	}
	stats.Rows = created

	rows, err := s.gradebook.Rows(ctx)
	if err != nil {
		return stats, err
	}

	ability := make(map[string]float64)
	for _, row := range rows {
		// A few rows stay untouched so the ungraded path shows up.
		if s.rng.Float64() < 0.05 {
			continue
		}

		p, ok := ability[row.StudentEmail]
		if !ok {
			p = 0.25 + 0.7*s.rng.Float64()
			ability[row.StudentEmail] = p
		}

		wrote, err := s.fillRow(ctx, row.ID, p, levels, pass, miss)
		if err != nil {
			return stats, err
		}
		stats.Attempts += wrote
	}
	return stats, nil
}

// fillRow writes attempts level by level. A student only moves up
// after earning the streak below, with a small leak so the data isn't
// perfectly tidy.
func (s *Seeder) fillRow(ctx context.Context, rowID int, p float64, levels []grading.Level, pass, miss []string) (int, error) {
	wrote := 0
	qualified := true
	for _, lvl := range levels {
		if !qualified && s.rng.Float64() > 0.1 {
			break
		}

		slots := lvl.DefaultAttempts
		if slots <= 0 {
			slots = 5
		}
		count := 2 + s.rng.Intn(3)
		if count > slots {
			count = slots
		}

		streak := 0
		best := 0
		for i := 0; i < count; i++ {
			var mark string
			if s.rng.Float64() < p {
				mark = pass[s.passIdx%len(pass)]
				s.passIdx++
				streak++
				if streak > best {
					best = streak
				}
			} else {
				mark = miss[s.missIdx%len(miss)]
				s.missIdx++
				streak = 0
			}
			if err := s.gradebook.RecordAttempt(ctx, rowID, lvl.ShortCode, mark); err != nil {
				return wrote, err
			}
			wrote++
		}

		qualified = lvl.RequiredStreak > 0 && best >= lvl.RequiredStreak
	}
	return wrote, nil
}
