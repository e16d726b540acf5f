// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/assignment"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *AssignmentUpdate) SetClassID(v string) *AssignmentUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableClassID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AssignmentUpdate) SetUnit(v string) *AssignmentUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableUnit(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AssignmentUpdate) SetSkill(v string) *AssignmentUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableSkill(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *AssignmentUpdate) SetExternalID(v string) *AssignmentUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableExternalID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssignmentUpdate) SetTitle(v string) *AssignmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableTitle(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AssignmentUpdate) SetCategory(v string) *AssignmentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableCategory(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AssignmentUpdate) SetDueDate(v time.Time) *AssignmentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDueDate(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *AssignmentUpdate) ClearDueDate() *AssignmentUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *AssignmentUpdate) SetMinValue(v float64) *AssignmentUpdate {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableMinValue(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *AssignmentUpdate) AddMinValue(v float64) *AssignmentUpdate {
	_u.mutation.AddMinValue(v)
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *AssignmentUpdate) SetMaxValue(v float64) *AssignmentUpdate {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableMaxValue(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *AssignmentUpdate) AddMaxValue(v float64) *AssignmentUpdate {
	_u.mutation.AddMaxValue(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AssignmentUpdate) SetPayload(v map[string]interface{}) *AssignmentUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AssignmentUpdate) ClearPayload() *AssignmentUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := assignment.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.class_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := assignment.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Assignment.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := assignment.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Assignment.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assignment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assignment.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(assignment.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(assignment.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(assignment.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(assignment.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(assignment.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(assignment.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(assignment.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(assignment.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(assignment.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(assignment.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(assignment.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(assignment.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetClassID sets the "class_id" field.
func (_u *AssignmentUpdateOne) SetClassID(v string) *AssignmentUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableClassID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AssignmentUpdateOne) SetUnit(v string) *AssignmentUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableUnit(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *AssignmentUpdateOne) SetSkill(v string) *AssignmentUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableSkill(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *AssignmentUpdateOne) SetExternalID(v string) *AssignmentUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableExternalID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssignmentUpdateOne) SetTitle(v string) *AssignmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableTitle(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AssignmentUpdateOne) SetCategory(v string) *AssignmentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableCategory(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *AssignmentUpdateOne) SetDueDate(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDueDate(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *AssignmentUpdateOne) ClearDueDate() *AssignmentUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetMinValue sets the "min_value" field.
func (_u *AssignmentUpdateOne) SetMinValue(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetMinValue()
	_u.mutation.SetMinValue(v)
	return _u
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableMinValue(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetMinValue(*v)
	}
	return _u
}

// AddMinValue adds value to the "min_value" field.
func (_u *AssignmentUpdateOne) AddMinValue(v float64) *AssignmentUpdateOne {
	_u.mutation.AddMinValue(v)
	return _u
}

// SetMaxValue sets the "max_value" field.
func (_u *AssignmentUpdateOne) SetMaxValue(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetMaxValue()
	_u.mutation.SetMaxValue(v)
	return _u
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableMaxValue(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetMaxValue(*v)
	}
	return _u
}

// AddMaxValue adds value to the "max_value" field.
func (_u *AssignmentUpdateOne) AddMaxValue(v float64) *AssignmentUpdateOne {
	_u.mutation.AddMaxValue(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AssignmentUpdateOne) SetPayload(v map[string]interface{}) *AssignmentUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AssignmentUpdateOne) ClearPayload() *AssignmentUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := assignment.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.class_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := assignment.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Assignment.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := assignment.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Assignment.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assignment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assignment.title": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(assignment.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(assignment.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(assignment.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(assignment.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(assignment.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(assignment.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MinValue(); ok {
		_spec.SetField(assignment.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinValue(); ok {
		_spec.AddField(assignment.FieldMinValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxValue(); ok {
		_spec.SetField(assignment.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxValue(); ok {
		_spec.AddField(assignment.FieldMaxValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(assignment.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(assignment.FieldPayload, field.TypeJSON)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
