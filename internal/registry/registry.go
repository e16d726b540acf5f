// Package registry manages the assignment registry: staging one row
// per gradable target and creating the matching SIS line items.
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/thinkle/sbgsync/internal/idgen"
	"github.com/thinkle/sbgsync/internal/oneroster"
	"github.com/thinkle/sbgsync/internal/store"
)

// UnitAverageSkill is the pseudo-skill used for one-per-unit aggregate
// assignments. It lives in the same registry namespace as real skills,
// so a unit can have both per-skill columns and an average column.
const UnitAverageSkill = "Unit Average"

// RowError records one failed row in a batch.
type RowError struct {
	Unit  string
	Skill string
	Err   error
}

func (e RowError) String() string {
	return fmt.Sprintf("%s / %s: %v", e.Unit, e.Skill, e.Err)
}

// Summary aggregates a batch outcome. One bad row never aborts the
// batch, so callers get full counts plus per-row detail.
type Summary struct {
	Created int
	Skipped int
	Errors  []RowError
}

// Registry stages and creates assignments for one class.
type Registry struct {
	assignments store.AssignmentRepo
}

// New creates a Registry over the assignment repository.
func New(assignments store.AssignmentRepo) *Registry {
	return &Registry{assignments: assignments}
}

// SkillLabel is the registry key for a skill: number plus descriptor,
// matching how grade rows are reported.
func SkillLabel(sk store.Skill) string {
	return sk.Number + " " + sk.Descriptor
}

// StageSkills upserts one registry row per skill. Existing rows are
// refreshed in place, never duplicated.
func (r *Registry) StageSkills(ctx context.Context, class store.ClassConfig, skills []store.Skill, due time.Time) (Summary, error) {
	var sum Summary
	for _, sk := range skills {
		created, err := r.assignments.Upsert(ctx, store.Assignment{
			ClassID:  class.ClassID,
			Unit:     sk.Unit,
			Skill:    SkillLabel(sk),
			Title:    idgen.BuildTitle(sk.Unit, sk.Number, sk.Descriptor),
			Category: class.CategoryID,
			DueDate:  due,
			MinValue: 0,
			MaxValue: 4,
		})
		if err != nil {
			sum.Errors = append(sum.Errors, RowError{Unit: sk.Unit, Skill: SkillLabel(sk), Err: err})
			continue
		}
		if created {
			sum.Created++
		} else {
			sum.Skipped++
		}
	}
	return sum, nil
}

// StageUnitAverages upserts one pseudo-skill registry row per unit.
func (r *Registry) StageUnitAverages(ctx context.Context, class store.ClassConfig, units []string, due time.Time) (Summary, error) {
	var sum Summary
	for _, unit := range units {
		created, err := r.assignments.Upsert(ctx, store.Assignment{
			ClassID:  class.ClassID,
			Unit:     unit,
			Skill:    UnitAverageSkill,
			Title:    idgen.BuildTitle(unit, "Avg", ""),
			Category: class.CategoryID,
			DueDate:  due,
			MinValue: 0,
			MaxValue: 4,
		})
		if err != nil {
			sum.Errors = append(sum.Errors, RowError{Unit: unit, Skill: UnitAverageSkill, Err: err})
			continue
		}
		if created {
			sum.Created++
		} else {
			sum.Skipped++
		}
	}
	return sum, nil
}

// CreateMissing walks the staged rows without a SIS line item and
// creates each one remotely. Rows missing a required field are
// skipped; remote failures are collected and the batch continues.
func (r *Registry) CreateMissing(ctx context.Context, api oneroster.API, gate *oneroster.AccessGate, class store.ClassConfig) (Summary, error) {
	var sum Summary

	if err := gate.RequireClass(ctx, class.ClassID); err != nil {
		return sum, err
	}

	pending, err := r.assignments.Pending(ctx, class.ClassID)
	if err != nil {
		return sum, err
	}

	for _, a := range pending {
		if a.Category == "" || a.DueDate.IsZero() {
			sum.Skipped++
			continue
		}

		id := idgen.BuildAssignmentID(class.ClassID, a.Unit, a.Skill)
		if critical := idgen.CriticalViolations(idgen.ValidateID(id)); len(critical) > 0 {
			sum.Errors = append(sum.Errors, RowError{
				Unit: a.Unit, Skill: a.Skill,
				Err: fmt.Errorf("invalid assignment id %q: %s", id, critical[0]),
			})
			continue
		}

		li := oneroster.LineItem{
			SourcedID:      id,
			Title:          a.Title,
			Description:    fmt.Sprintf("%s: %s", a.Unit, a.Skill),
			AssignDate:     a.CreatedAt.Format("2006-01-02"),
			DueDate:        a.DueDate.Format("2006-01-02"),
			Class:          oneroster.Ref{SourcedID: class.ClassID},
			Category:       oneroster.Ref{SourcedID: a.Category},
			ResultValueMin: a.MinValue,
			ResultValueMax: a.MaxValue,
			Metadata: map[string]any{
				"unit":  a.Unit,
				"skill": a.Skill,
			},
		}
		if class.GradingPeriodID != "" {
			li.GradingPeriod = oneroster.Ref{SourcedID: class.GradingPeriodID}
		}

		if err := api.PutLineItem(ctx, li); err != nil {
			sum.Errors = append(sum.Errors, RowError{Unit: a.Unit, Skill: a.Skill, Err: err})
			continue
		}
		gate.HintLineItemClass(id, class.ClassID)

		payload := map[string]any{
			"sourcedId": id,
			"title":     a.Title,
			"dueDate":   li.DueDate,
		}
		if err := r.assignments.MarkCreated(ctx, a.ID, id, payload); err != nil {
			sum.Errors = append(sum.Errors, RowError{Unit: a.Unit, Skill: a.Skill, Err: err})
			continue
		}
		sum.Created++
	}
	return sum, nil
}
