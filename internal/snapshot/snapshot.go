// Package snapshot assembles a point-in-time view of the gradebook:
// every grade row evaluated against the current symbol and level
// configuration, plus per-unit averages.
package snapshot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/store"
)

// Row is one evaluated grade row.
type Row struct {
	StudentEmail string
	Unit         string
	SkillNumber  string
	Descriptor   string
	Attempts     map[string][]string
	Grade        grading.Grade
}

// UnitAverage is the mean of one student's numeric grades in a unit.
// Ungraded rows are excluded from the mean but still listed in the
// breakdown; fallback scores count like any other number.
type UnitAverage struct {
	StudentEmail string
	Unit         string
	Average      float64
	Graded       int
	Total        int
	// Breakdown is a line-itemized "skill: grade" summary suitable
	// for a SIS result comment.
	Breakdown string
}

// Snapshot holds the evaluated gradebook for one run.
type Snapshot struct {
	Symbols   *grading.SymbolTable
	Levels    []grading.Level
	Fallbacks grading.Fallbacks
	Rows      []Row

	byKey map[string]int
}

func rowKey(email, unit, skillNumber string) string {
	return email + "\x00" + unit + "\x00" + skillNumber
}

// Row looks up one evaluated row by student, unit, and skill number.
func (s *Snapshot) Row(email, unit, skillNumber string) (Row, bool) {
	i, ok := s.byKey[rowKey(email, unit, skillNumber)]
	if !ok {
		return Row{}, false
	}
	return s.Rows[i], true
}

// Reader loads snapshots from the store.
type Reader struct {
	config    store.GradingConfigRepo
	gradebook store.GradebookRepo
}

// NewReader creates a Reader over the given repositories.
func NewReader(config store.GradingConfigRepo, gradebook store.GradebookRepo) *Reader {
	return &Reader{config: config, gradebook: gradebook}
}

// Load reads the grading configuration and every grade row, evaluating
// each row's grade. The configuration must have been seeded; an empty
// symbol or level table is a configuration error, not an empty result.
func (r *Reader) Load(ctx context.Context) (*Snapshot, error) {
	symbols, err := r.config.Symbols(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := r.config.Levels(ctx)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 || len(levels) == 0 {
		return nil, fmt.Errorf("grading configuration not set up: run setup first")
	}
	fb, err := r.config.Fallbacks(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.gradebook.Rows(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Symbols:   grading.NewSymbolTable(symbols),
		Levels:    levels,
		Fallbacks: fb,
		Rows:      make([]Row, 0, len(rows)),
		byKey:     make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		snap.byKey[rowKey(row.StudentEmail, row.Unit, row.SkillNumber)] = len(snap.Rows)
		snap.Rows = append(snap.Rows, Row{
			StudentEmail: row.StudentEmail,
			Unit:         row.Unit,
			SkillNumber:  row.SkillNumber,
			Descriptor:   row.Descriptor,
			Attempts:     row.Attempts,
			Grade:        grading.Evaluate(row.Attempts, snap.Symbols, snap.Levels, snap.Fallbacks),
		})
	}
	return snap, nil
}

// RowsForStudent filters the snapshot to one student.
func (s *Snapshot) RowsForStudent(email string) []Row {
	var out []Row
	for _, r := range s.Rows {
		if r.StudentEmail == email {
			out = append(out, r)
		}
	}
	return out
}

// Students returns the distinct student emails in row order.
func (s *Snapshot) Students() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rows {
		if !seen[r.StudentEmail] {
			seen[r.StudentEmail] = true
			out = append(out, r.StudentEmail)
		}
	}
	return out
}

// Units returns the distinct units, sorted.
func (s *Snapshot) Units() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.Rows {
		if !seen[r.Unit] {
			seen[r.Unit] = true
			out = append(out, r.Unit)
		}
	}
	sort.Strings(out)
	return out
}

// UnitAverages computes every (student, unit) average in the snapshot.
// Pairs whose rows are all ungraded are omitted entirely: there is
// nothing to average and nothing worth posting.
func (s *Snapshot) UnitAverages() []UnitAverage {
	var out []UnitAverage
	for _, email := range s.Students() {
		rows := s.RowsForStudent(email)
		for _, unit := range s.Units() {
			avg, ok := unitAverage(email, unit, rows)
			if ok {
				out = append(out, avg)
			}
		}
	}
	return out
}

func unitAverage(email, unit string, rows []Row) (UnitAverage, bool) {
	var sum float64
	var breakdown strings.Builder
	avg := UnitAverage{StudentEmail: email, Unit: unit}

	for _, r := range rows {
		if r.Unit != unit {
			continue
		}
		avg.Total++
		if breakdown.Len() > 0 {
			breakdown.WriteByte('\n')
		}
		fmt.Fprintf(&breakdown, "%s %s: %s", r.SkillNumber, r.Descriptor, r.Grade.Display())
		if v, ok := r.Grade.Numeric(); ok {
			sum += v
			avg.Graded++
		}
	}

	if avg.Graded == 0 {
		return UnitAverage{}, false
	}
	avg.Average = sum / float64(avg.Graded)
	avg.Breakdown = breakdown.String()
	return avg, true
}
