package store

import (
	"context"
	"fmt"

	"github.com/thinkle/sbgsync/ent"
	"github.com/thinkle/sbgsync/ent/graderow"
	"github.com/thinkle/sbgsync/ent/skill"
	"github.com/thinkle/sbgsync/ent/student"
)

// gradebookRepo implements GradebookRepo using the ent client.
type gradebookRepo struct {
	client *ent.Client
}

func (r *gradebookRepo) AddStudent(ctx context.Context, s Student) error {
	exists, err := r.client.Student.Query().
		Where(student.Email(s.Email)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check student: %w", err)
	}
	if exists {
		return nil
	}
	_, err = r.client.Student.Create().
		SetEmail(s.Email).
		SetFirstName(s.FirstName).
		SetLastName(s.LastName).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add student %q: %w", s.Email, err)
	}
	return nil
}

func (r *gradebookRepo) Students(ctx context.Context) ([]Student, error) {
	rows, err := r.client.Student.Query().
		Order(ent.Asc(student.FieldLastName), ent.Asc(student.FieldEmail)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	out := make([]Student, 0, len(rows))
	for _, s := range rows {
		out = append(out, Student{ID: s.ID, Email: s.Email, FirstName: s.FirstName, LastName: s.LastName})
	}
	return out, nil
}

func (r *gradebookRepo) AddSkill(ctx context.Context, sk Skill) error {
	exists, err := r.client.Skill.Query().
		Where(
			skill.Unit(sk.Unit),
			skill.Number(sk.Number),
			skill.Descriptor(sk.Descriptor),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check skill: %w", err)
	}
	if exists {
		return nil
	}
	_, err = r.client.Skill.Create().
		SetUnit(sk.Unit).
		SetNumber(sk.Number).
		SetDescriptor(sk.Descriptor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add skill %s %s: %w", sk.Unit, sk.Number, err)
	}
	return nil
}

func (r *gradebookRepo) Skills(ctx context.Context) ([]Skill, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(skill.FieldUnit), ent.Asc(skill.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	out := make([]Skill, 0, len(rows))
	for _, s := range rows {
		out = append(out, Skill{ID: s.ID, Unit: s.Unit, Number: s.Number, Descriptor: s.Descriptor})
	}
	return out, nil
}

// EnsureRows walks the student x skill grid and creates any missing
// grade rows with empty attempt maps. Existing rows are untouched, so
// the operation is safe to repeat after roster or skill changes.
func (r *gradebookRepo) EnsureRows(ctx context.Context) (int, error) {
	students, err := r.Students(ctx)
	if err != nil {
		return 0, err
	}
	skills, err := r.Skills(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, st := range students {
		for _, sk := range skills {
			exists, err := r.client.GradeRow.Query().
				Where(
					graderow.StudentEmail(st.Email),
					graderow.Unit(sk.Unit),
					graderow.SkillNumber(sk.Number),
					graderow.Descriptor(sk.Descriptor),
				).
				Exist(ctx)
			if err != nil {
				return created, fmt.Errorf("check grade row: %w", err)
			}
			if exists {
				continue
			}
			_, err = r.client.GradeRow.Create().
				SetStudentEmail(st.Email).
				SetUnit(sk.Unit).
				SetSkillNumber(sk.Number).
				SetDescriptor(sk.Descriptor).
				SetAttempts(map[string][]string{}).
				Save(ctx)
			if err != nil {
				return created, fmt.Errorf("create grade row: %w", err)
			}
			created++
		}
	}
	return created, nil
}

func (r *gradebookRepo) Rows(ctx context.Context) ([]GradeRow, error) {
	rows, err := r.client.GradeRow.Query().
		Order(
			ent.Asc(graderow.FieldStudentEmail),
			ent.Asc(graderow.FieldUnit),
			ent.Asc(graderow.FieldSkillNumber),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade rows: %w", err)
	}
	return entRowsToRows(rows), nil
}

func (r *gradebookRepo) RowsForStudent(ctx context.Context, email string) ([]GradeRow, error) {
	rows, err := r.client.GradeRow.Query().
		Where(graderow.StudentEmail(email)).
		Order(ent.Asc(graderow.FieldUnit), ent.Asc(graderow.FieldSkillNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade rows for %q: %w", email, err)
	}
	return entRowsToRows(rows), nil
}

func (r *gradebookRepo) RecordAttempt(ctx context.Context, rowID int, levelCode, mark string) error {
	row, err := r.client.GradeRow.Get(ctx, rowID)
	if err != nil {
		return fmt.Errorf("get grade row %d: %w", rowID, err)
	}
	attempts := row.Attempts
	if attempts == nil {
		attempts = map[string][]string{}
	}
	attempts[levelCode] = append(attempts[levelCode], mark)
	_, err = row.Update().SetAttempts(attempts).Save(ctx)
	if err != nil {
		return fmt.Errorf("update grade row %d: %w", rowID, err)
	}
	return nil
}

func entRowsToRows(rows []*ent.GradeRow) []GradeRow {
	out := make([]GradeRow, 0, len(rows))
	for _, gr := range rows {
		out = append(out, GradeRow{
			ID:           gr.ID,
			StudentEmail: gr.StudentEmail,
			Unit:         gr.Unit,
			SkillNumber:  gr.SkillNumber,
			Descriptor:   gr.Descriptor,
			Attempts:     gr.Attempts,
		})
	}
	return out
}
