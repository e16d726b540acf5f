// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/graderow"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// GradeRowUpdate is the builder for updating GradeRow entities.
type GradeRowUpdate struct {
	config
	hooks    []Hook
	mutation *GradeRowMutation
}

// Where appends a list predicates to the GradeRowUpdate builder.
func (_u *GradeRowUpdate) Where(ps ...predicate.GradeRow) *GradeRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentEmail sets the "student_email" field.
func (_u *GradeRowUpdate) SetStudentEmail(v string) *GradeRowUpdate {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *GradeRowUpdate) SetNillableStudentEmail(v *string) *GradeRowUpdate {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *GradeRowUpdate) SetUnit(v string) *GradeRowUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *GradeRowUpdate) SetNillableUnit(v *string) *GradeRowUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSkillNumber sets the "skill_number" field.
func (_u *GradeRowUpdate) SetSkillNumber(v string) *GradeRowUpdate {
	_u.mutation.SetSkillNumber(v)
	return _u
}

// SetNillableSkillNumber sets the "skill_number" field if the given value is not nil.
func (_u *GradeRowUpdate) SetNillableSkillNumber(v *string) *GradeRowUpdate {
	if v != nil {
		_u.SetSkillNumber(*v)
	}
	return _u
}

// SetDescriptor sets the "descriptor" field.
func (_u *GradeRowUpdate) SetDescriptor(v string) *GradeRowUpdate {
	_u.mutation.SetDescriptor(v)
	return _u
}

// SetNillableDescriptor sets the "descriptor" field if the given value is not nil.
func (_u *GradeRowUpdate) SetNillableDescriptor(v *string) *GradeRowUpdate {
	if v != nil {
		_u.SetDescriptor(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GradeRowUpdate) SetAttempts(v map[string][]string) *GradeRowUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// Mutation returns the GradeRowMutation object of the builder.
func (_u *GradeRowUpdate) Mutation() *GradeRowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeRowUpdate) check() error {
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := graderow.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "GradeRow.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := graderow.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "GradeRow.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillNumber(); ok {
		if err := graderow.SkillNumberValidator(v); err != nil {
			return &ValidationError{Name: "skill_number", err: fmt.Errorf(`ent: validator failed for field "GradeRow.skill_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Descriptor(); ok {
		if err := graderow.DescriptorValidator(v); err != nil {
			return &ValidationError{Name: "descriptor", err: fmt.Errorf(`ent: validator failed for field "GradeRow.descriptor": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderow.Table, graderow.Columns, sqlgraph.NewFieldSpec(graderow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(graderow.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(graderow.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillNumber(); ok {
		_spec.SetField(graderow.FieldSkillNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descriptor(); ok {
		_spec.SetField(graderow.FieldDescriptor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(graderow.FieldAttempts, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeRowUpdateOne is the builder for updating a single GradeRow entity.
type GradeRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeRowMutation
}

// SetStudentEmail sets the "student_email" field.
func (_u *GradeRowUpdateOne) SetStudentEmail(v string) *GradeRowUpdateOne {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *GradeRowUpdateOne) SetNillableStudentEmail(v *string) *GradeRowUpdateOne {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *GradeRowUpdateOne) SetUnit(v string) *GradeRowUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *GradeRowUpdateOne) SetNillableUnit(v *string) *GradeRowUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSkillNumber sets the "skill_number" field.
func (_u *GradeRowUpdateOne) SetSkillNumber(v string) *GradeRowUpdateOne {
	_u.mutation.SetSkillNumber(v)
	return _u
}

// SetNillableSkillNumber sets the "skill_number" field if the given value is not nil.
func (_u *GradeRowUpdateOne) SetNillableSkillNumber(v *string) *GradeRowUpdateOne {
	if v != nil {
		_u.SetSkillNumber(*v)
	}
	return _u
}

// SetDescriptor sets the "descriptor" field.
func (_u *GradeRowUpdateOne) SetDescriptor(v string) *GradeRowUpdateOne {
	_u.mutation.SetDescriptor(v)
	return _u
}

// SetNillableDescriptor sets the "descriptor" field if the given value is not nil.
func (_u *GradeRowUpdateOne) SetNillableDescriptor(v *string) *GradeRowUpdateOne {
	if v != nil {
		_u.SetDescriptor(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *GradeRowUpdateOne) SetAttempts(v map[string][]string) *GradeRowUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// Mutation returns the GradeRowMutation object of the builder.
func (_u *GradeRowUpdateOne) Mutation() *GradeRowMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeRowUpdate builder.
func (_u *GradeRowUpdateOne) Where(ps ...predicate.GradeRow) *GradeRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeRowUpdateOne) Select(field string, fields ...string) *GradeRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeRow entity.
func (_u *GradeRowUpdateOne) Save(ctx context.Context) (*GradeRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeRowUpdateOne) SaveX(ctx context.Context) *GradeRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeRowUpdateOne) check() error {
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := graderow.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "GradeRow.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := graderow.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "GradeRow.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillNumber(); ok {
		if err := graderow.SkillNumberValidator(v); err != nil {
			return &ValidationError{Name: "skill_number", err: fmt.Errorf(`ent: validator failed for field "GradeRow.skill_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Descriptor(); ok {
		if err := graderow.DescriptorValidator(v); err != nil {
			return &ValidationError{Name: "descriptor", err: fmt.Errorf(`ent: validator failed for field "GradeRow.descriptor": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeRowUpdateOne) sqlSave(ctx context.Context) (_node *GradeRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderow.Table, graderow.Columns, sqlgraph.NewFieldSpec(graderow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graderow.FieldID)
		for _, f := range fields {
			if !graderow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graderow.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(graderow.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(graderow.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillNumber(); ok {
		_spec.SetField(graderow.FieldSkillNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descriptor(); ok {
		_spec.SetField(graderow.FieldDescriptor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(graderow.FieldAttempts, field.TypeJSON, value)
	}
	_node = &GradeRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
