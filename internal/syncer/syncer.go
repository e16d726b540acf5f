// Package syncer reconciles evaluated grades against the sync ledger
// and pushes changed scores to the SIS.
package syncer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/thinkle/sbgsync/internal/idgen"
	"github.com/thinkle/sbgsync/internal/oneroster"
	"github.com/thinkle/sbgsync/internal/registry"
	"github.com/thinkle/sbgsync/internal/snapshot"
	"github.com/thinkle/sbgsync/internal/store"
)

// RowError records one failed row in a batch sync.
type RowError struct {
	StudentEmail string
	Unit         string
	Skill        string
	Err          error
}

func (e RowError) String() string {
	return fmt.Sprintf("%s %s / %s: %v", e.StudentEmail, e.Unit, e.Skill, e.Err)
}

// Summary aggregates a batch sync outcome.
type Summary struct {
	Attempted int
	Synced    int
	Skipped   int
	Errors    []RowError
}

// Syncer pushes grades for one class. Create one per invocation:
// lookups are bulk-loaded once and the in-memory ledger mirror is only
// coherent for the life of the run.
type Syncer struct {
	api    oneroster.API
	gate   *oneroster.AccessGate
	ledger store.LedgerRepo
	class  store.ClassConfig

	studentsByEmail map[string]store.RosterStudent
	assignments     map[string]store.Assignment
	posted          map[string]postedGrade
}

// postedGrade mirrors one ledger row in memory: what the SIS last
// received for a student on an assignment.
type postedGrade struct {
	score   string
	comment string
}

// New creates an unloaded Syncer. Call Load before syncing.
func New(api oneroster.API, gate *oneroster.AccessGate, ledger store.LedgerRepo, class store.ClassConfig) *Syncer {
	return &Syncer{
		api:    api,
		gate:   gate,
		ledger: ledger,
		class:  class,
	}
}

func assignmentKey(unit, skill string) string {
	return unit + "|||" + skill
}

func ledgerKey(studentID, assignmentID string) string {
	return studentID + "_" + assignmentID
}

// Load bulk-reads the roster mirror, the assignment registry, and the
// ledger so each row sync is an O(1) lookup plus at most one HTTP call.
func (s *Syncer) Load(ctx context.Context, classes store.ClassRepo, assignments store.AssignmentRepo) error {
	roster, err := classes.Roster(ctx, s.class.ClassID)
	if err != nil {
		return err
	}
	s.studentsByEmail = make(map[string]store.RosterStudent, len(roster))
	for _, st := range roster {
		if st.Email != "" {
			s.studentsByEmail[st.Email] = st
		}
	}

	all, err := assignments.All(ctx, s.class.ClassID)
	if err != nil {
		return err
	}
	s.assignments = make(map[string]store.Assignment, len(all))
	for _, a := range all {
		s.assignments[assignmentKey(a.Unit, a.Skill)] = a
	}

	entries, err := s.ledger.All(ctx)
	if err != nil {
		return err
	}
	s.posted = make(map[string]postedGrade, len(entries))
	for _, e := range entries {
		s.posted[ledgerKey(e.StudentID, e.AssignmentID)] = postedGrade{score: e.Score, comment: e.Comment}
	}
	return nil
}

// FormatScore renders a score the way the ledger stores it, so change
// detection compares exact text.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// MaybeSync posts one grade unless the ledger shows it already synced
// with the same score and comment. Returns whether a remote post
// happened.
func (s *Syncer) MaybeSync(ctx context.Context, studentEmail, unit, skill string, score float64, comment string) (bool, error) {
	student, ok := s.studentsByEmail[studentEmail]
	if !ok {
		return false, fmt.Errorf("student %q not on the mirrored roster", studentEmail)
	}
	a, ok := s.assignments[assignmentKey(unit, skill)]
	if !ok || a.ExternalID == "" {
		return false, fmt.Errorf("no SIS assignment for %s / %s: stage and create it first", unit, skill)
	}

	text := FormatScore(score)
	key := ledgerKey(student.SourcedID, a.ExternalID)
	if prev, ok := s.posted[key]; ok && prev.score == text && prev.comment == comment {
		return false, nil
	}

	if err := s.gate.RequireLineItem(ctx, a.ExternalID); err != nil {
		return false, err
	}

	now := time.Now()
	result := oneroster.Result{
		SourcedID:   idgen.BuildResultID(a.ExternalID, student.SourcedID, now.UnixMilli()),
		LineItem:    oneroster.Ref{SourcedID: a.ExternalID},
		Student:     oneroster.Ref{SourcedID: student.SourcedID},
		Score:       score,
		ScoreStatus: "fully graded",
		ScoreDate:   now.Format("2006-01-02"),
		Comment:     comment,
	}
	if err := s.api.PutResult(ctx, result); err != nil {
		return false, err
	}

	// Update the in-memory mirror first so a persistence failure can't
	// cause a duplicate post later in this run.
	s.posted[key] = postedGrade{score: text, comment: comment}
	if err := s.ledger.Put(ctx, store.SyncedGrade{
		StudentID:    student.SourcedID,
		AssignmentID: a.ExternalID,
		Score:        text,
		Comment:      comment,
		SyncedAt:     now,
	}); err != nil {
		return true, fmt.Errorf("grade posted but ledger update failed: %w", err)
	}
	return true, nil
}

// SyncSkills pushes every graded snapshot row through MaybeSync.
// Ungraded rows are not attempted. Row failures are collected and the
// batch continues.
func (s *Syncer) SyncSkills(ctx context.Context, snap *snapshot.Snapshot) Summary {
	var sum Summary
	for _, row := range snap.Rows {
		score, ok := row.Grade.Numeric()
		if !ok {
			continue
		}
		sum.Attempted++
		skill := row.SkillNumber + " " + row.Descriptor
		synced, err := s.MaybeSync(ctx, row.StudentEmail, row.Unit, skill, score, "")
		switch {
		case err != nil:
			sum.Errors = append(sum.Errors, RowError{
				StudentEmail: row.StudentEmail, Unit: row.Unit, Skill: skill, Err: err,
			})
		case synced:
			sum.Synced++
		default:
			sum.Skipped++
		}
	}
	return sum
}

// SyncUnitAverages pushes one aggregate grade per (student, unit),
// with the per-skill breakdown as the result comment.
func (s *Syncer) SyncUnitAverages(ctx context.Context, snap *snapshot.Snapshot) Summary {
	var sum Summary
	for _, avg := range snap.UnitAverages() {
		sum.Attempted++
		synced, err := s.MaybeSync(ctx, avg.StudentEmail, avg.Unit, registry.UnitAverageSkill, avg.Average, avg.Breakdown)
		switch {
		case err != nil:
			sum.Errors = append(sum.Errors, RowError{
				StudentEmail: avg.StudentEmail, Unit: avg.Unit, Skill: registry.UnitAverageSkill, Err: err,
			})
		case synced:
			sum.Synced++
		default:
			sum.Skipped++
		}
	}
	return sum
}
