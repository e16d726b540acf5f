package store

import (
	"context"
	"fmt"

	"github.com/thinkle/sbgsync/ent"
	"github.com/thinkle/sbgsync/ent/classconfig"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
)

// classRepo implements ClassRepo using the ent client.
type classRepo struct {
	client *ent.Client
}

func (r *classRepo) SaveClass(ctx context.Context, c ClassConfig) error {
	existing, err := r.client.ClassConfig.Query().
		Where(classconfig.ClassID(c.ClassID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query class config: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetClassTitle(c.ClassTitle).
			SetCourseID(c.CourseID).
			SetCategoryID(c.CategoryID).
			SetCategoryTitle(c.CategoryTitle).
			SetGradingPeriodID(c.GradingPeriodID).
			SetActive(c.Active).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update class config: %w", err)
		}
		return nil
	}

	_, err = r.client.ClassConfig.Create().
		SetClassID(c.ClassID).
		SetClassTitle(c.ClassTitle).
		SetCourseID(c.CourseID).
		SetCategoryID(c.CategoryID).
		SetCategoryTitle(c.CategoryTitle).
		SetGradingPeriodID(c.GradingPeriodID).
		SetActive(c.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create class config: %w", err)
	}
	return nil
}

func (r *classRepo) Class(ctx context.Context, classID string) (*ClassConfig, error) {
	row, err := r.client.ClassConfig.Query().
		Where(classconfig.ClassID(classID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query class config: %w", err)
	}
	c := entClassToClass(row)
	return &c, nil
}

func (r *classRepo) Classes(ctx context.Context) ([]ClassConfig, error) {
	rows, err := r.client.ClassConfig.Query().
		Order(ent.Asc(classconfig.FieldClassTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query class configs: %w", err)
	}
	out := make([]ClassConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, entClassToClass(row))
	}
	return out, nil
}

// ReplaceRoster deletes the mirrored enrollments for classID and
// inserts the given set in a single transaction, so a partial refresh
// never leaves the mirror half-empty.
func (r *classRepo) ReplaceRoster(ctx context.Context, classID string, students []RosterStudent) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin roster tx: %w", err)
	}

	if _, err := tx.RosterStudent.Delete().
		Where(rosterstudent.ClassID(classID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear roster: %w", err)
	}

	for _, s := range students {
		_, err := tx.RosterStudent.Create().
			SetClassID(classID).
			SetSourcedID(s.SourcedID).
			SetEmail(s.Email).
			SetGivenName(s.GivenName).
			SetFamilyName(s.FamilyName).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert roster student %q: %w", s.SourcedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster tx: %w", err)
	}
	return nil
}

func (r *classRepo) Roster(ctx context.Context, classID string) ([]RosterStudent, error) {
	rows, err := r.client.RosterStudent.Query().
		Where(rosterstudent.ClassID(classID)).
		Order(ent.Asc(rosterstudent.FieldFamilyName), ent.Asc(rosterstudent.FieldSourcedID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	out := make([]RosterStudent, 0, len(rows))
	for _, row := range rows {
		out = append(out, entRosterToRoster(row))
	}
	return out, nil
}

func (r *classRepo) RosterByEmail(ctx context.Context, email string) (*RosterStudent, error) {
	row, err := r.client.RosterStudent.Query().
		Where(rosterstudent.Email(email)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query roster by email: %w", err)
	}
	s := entRosterToRoster(row)
	return &s, nil
}

func entClassToClass(row *ent.ClassConfig) ClassConfig {
	return ClassConfig{
		ID:              row.ID,
		ClassID:         row.ClassID,
		ClassTitle:      row.ClassTitle,
		CourseID:        row.CourseID,
		CategoryID:      row.CategoryID,
		CategoryTitle:   row.CategoryTitle,
		GradingPeriodID: row.GradingPeriodID,
		Active:          row.Active,
	}
}

func entRosterToRoster(row *ent.RosterStudent) RosterStudent {
	return RosterStudent{
		ID:         row.ID,
		ClassID:    row.ClassID,
		SourcedID:  row.SourcedID,
		Email:      row.Email,
		GivenName:  row.GivenName,
		FamilyName: row.FamilyName,
	}
}
