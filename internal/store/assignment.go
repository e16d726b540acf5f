package store

import (
	"context"
	"fmt"

	"github.com/thinkle/sbgsync/ent"
	"github.com/thinkle/sbgsync/ent/assignment"
)

// assignmentRepo implements AssignmentRepo using the ent client.
type assignmentRepo struct {
	client *ent.Client
}

func (r *assignmentRepo) Upsert(ctx context.Context, a Assignment) (bool, error) {
	existing, err := r.client.Assignment.Query().
		Where(
			assignment.ClassID(a.ClassID),
			assignment.Unit(a.Unit),
			assignment.Skill(a.Skill),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("query assignment: %w", err)
	}

	if existing != nil {
		upd := existing.Update().
			SetTitle(a.Title).
			SetCategory(a.Category).
			SetMinValue(a.MinValue).
			SetMaxValue(a.MaxValue)
		if !a.DueDate.IsZero() {
			upd = upd.SetDueDate(a.DueDate)
		}
		if a.ExternalID != "" {
			upd = upd.SetExternalID(a.ExternalID)
		}
		if a.Payload != nil {
			upd = upd.SetPayload(a.Payload)
		}
		if _, err := upd.Save(ctx); err != nil {
			return false, fmt.Errorf("update assignment: %w", err)
		}
		return false, nil
	}

	create := r.client.Assignment.Create().
		SetClassID(a.ClassID).
		SetUnit(a.Unit).
		SetSkill(a.Skill).
		SetExternalID(a.ExternalID).
		SetTitle(a.Title).
		SetCategory(a.Category).
		SetMinValue(a.MinValue).
		SetMaxValue(a.MaxValue)
	if !a.DueDate.IsZero() {
		create = create.SetDueDate(a.DueDate)
	}
	if a.Payload != nil {
		create = create.SetPayload(a.Payload)
	}
	if _, err := create.Save(ctx); err != nil {
		return false, fmt.Errorf("create assignment: %w", err)
	}
	return true, nil
}

func (r *assignmentRepo) Find(ctx context.Context, classID, unit, skill string) (*Assignment, error) {
	row, err := r.client.Assignment.Query().
		Where(
			assignment.ClassID(classID),
			assignment.Unit(unit),
			assignment.Skill(skill),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query assignment: %w", err)
	}
	a := entAssignmentToAssignment(row)
	return &a, nil
}

func (r *assignmentRepo) All(ctx context.Context, classID string) ([]Assignment, error) {
	rows, err := r.client.Assignment.Query().
		Where(assignment.ClassID(classID)).
		Order(ent.Asc(assignment.FieldUnit), ent.Asc(assignment.FieldSkill)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	out := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, entAssignmentToAssignment(row))
	}
	return out, nil
}

func (r *assignmentRepo) Pending(ctx context.Context, classID string) ([]Assignment, error) {
	rows, err := r.client.Assignment.Query().
		Where(
			assignment.ClassID(classID),
			assignment.ExternalID(""),
		).
		Order(ent.Asc(assignment.FieldUnit), ent.Asc(assignment.FieldSkill)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending assignments: %w", err)
	}
	out := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, entAssignmentToAssignment(row))
	}
	return out, nil
}

func (r *assignmentRepo) MarkCreated(ctx context.Context, id int, externalID string, payload map[string]any) error {
	upd := r.client.Assignment.UpdateOneID(id).SetExternalID(externalID)
	if payload != nil {
		upd = upd.SetPayload(payload)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("mark assignment %d created: %w", id, err)
	}
	return nil
}

func entAssignmentToAssignment(row *ent.Assignment) Assignment {
	return Assignment{
		ID:         row.ID,
		ClassID:    row.ClassID,
		Unit:       row.Unit,
		Skill:      row.Skill,
		ExternalID: row.ExternalID,
		Title:      row.Title,
		Category:   row.Category,
		DueDate:    row.DueDate,
		MinValue:   row.MinValue,
		MaxValue:   row.MaxValue,
		CreatedAt:  row.CreatedAt,
		Payload:    row.Payload,
	}
}
