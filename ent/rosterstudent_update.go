// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/predicate"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
)

// RosterStudentUpdate is the builder for updating RosterStudent entities.
type RosterStudentUpdate struct {
	config
	hooks    []Hook
	mutation *RosterStudentMutation
}

// Where appends a list predicates to the RosterStudentUpdate builder.
func (_u *RosterStudentUpdate) Where(ps ...predicate.RosterStudent) *RosterStudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *RosterStudentUpdate) SetClassID(v string) *RosterStudentUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *RosterStudentUpdate) SetNillableClassID(v *string) *RosterStudentUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetSourcedID sets the "sourced_id" field.
func (_u *RosterStudentUpdate) SetSourcedID(v string) *RosterStudentUpdate {
	_u.mutation.SetSourcedID(v)
	return _u
}

// SetNillableSourcedID sets the "sourced_id" field if the given value is not nil.
func (_u *RosterStudentUpdate) SetNillableSourcedID(v *string) *RosterStudentUpdate {
	if v != nil {
		_u.SetSourcedID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *RosterStudentUpdate) SetEmail(v string) *RosterStudentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *RosterStudentUpdate) SetNillableEmail(v *string) *RosterStudentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetGivenName sets the "given_name" field.
func (_u *RosterStudentUpdate) SetGivenName(v string) *RosterStudentUpdate {
	_u.mutation.SetGivenName(v)
	return _u
}

// SetNillableGivenName sets the "given_name" field if the given value is not nil.
func (_u *RosterStudentUpdate) SetNillableGivenName(v *string) *RosterStudentUpdate {
	if v != nil {
		_u.SetGivenName(*v)
	}
	return _u
}

// SetFamilyName sets the "family_name" field.
func (_u *RosterStudentUpdate) SetFamilyName(v string) *RosterStudentUpdate {
	_u.mutation.SetFamilyName(v)
	return _u
}

// SetNillableFamilyName sets the "family_name" field if the given value is not nil.
func (_u *RosterStudentUpdate) SetNillableFamilyName(v *string) *RosterStudentUpdate {
	if v != nil {
		_u.SetFamilyName(*v)
	}
	return _u
}

// Mutation returns the RosterStudentMutation object of the builder.
func (_u *RosterStudentUpdate) Mutation() *RosterStudentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RosterStudentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RosterStudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RosterStudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RosterStudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RosterStudentUpdate) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := rosterstudent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.class_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcedID(); ok {
		if err := rosterstudent.SourcedIDValidator(v); err != nil {
			return &ValidationError{Name: "sourced_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.sourced_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RosterStudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rosterstudent.Table, rosterstudent.Columns, sqlgraph.NewFieldSpec(rosterstudent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(rosterstudent.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcedID(); ok {
		_spec.SetField(rosterstudent.FieldSourcedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(rosterstudent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenName(); ok {
		_spec.SetField(rosterstudent.FieldGivenName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FamilyName(); ok {
		_spec.SetField(rosterstudent.FieldFamilyName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rosterstudent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RosterStudentUpdateOne is the builder for updating a single RosterStudent entity.
type RosterStudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RosterStudentMutation
}

// SetClassID sets the "class_id" field.
func (_u *RosterStudentUpdateOne) SetClassID(v string) *RosterStudentUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *RosterStudentUpdateOne) SetNillableClassID(v *string) *RosterStudentUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetSourcedID sets the "sourced_id" field.
func (_u *RosterStudentUpdateOne) SetSourcedID(v string) *RosterStudentUpdateOne {
	_u.mutation.SetSourcedID(v)
	return _u
}

// SetNillableSourcedID sets the "sourced_id" field if the given value is not nil.
func (_u *RosterStudentUpdateOne) SetNillableSourcedID(v *string) *RosterStudentUpdateOne {
	if v != nil {
		_u.SetSourcedID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *RosterStudentUpdateOne) SetEmail(v string) *RosterStudentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *RosterStudentUpdateOne) SetNillableEmail(v *string) *RosterStudentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetGivenName sets the "given_name" field.
func (_u *RosterStudentUpdateOne) SetGivenName(v string) *RosterStudentUpdateOne {
	_u.mutation.SetGivenName(v)
	return _u
}

// SetNillableGivenName sets the "given_name" field if the given value is not nil.
func (_u *RosterStudentUpdateOne) SetNillableGivenName(v *string) *RosterStudentUpdateOne {
	if v != nil {
		_u.SetGivenName(*v)
	}
	return _u
}

// SetFamilyName sets the "family_name" field.
func (_u *RosterStudentUpdateOne) SetFamilyName(v string) *RosterStudentUpdateOne {
	_u.mutation.SetFamilyName(v)
	return _u
}

// SetNillableFamilyName sets the "family_name" field if the given value is not nil.
func (_u *RosterStudentUpdateOne) SetNillableFamilyName(v *string) *RosterStudentUpdateOne {
	if v != nil {
		_u.SetFamilyName(*v)
	}
	return _u
}

// Mutation returns the RosterStudentMutation object of the builder.
func (_u *RosterStudentUpdateOne) Mutation() *RosterStudentMutation {
	return _u.mutation
}

// Where appends a list predicates to the RosterStudentUpdate builder.
func (_u *RosterStudentUpdateOne) Where(ps ...predicate.RosterStudent) *RosterStudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RosterStudentUpdateOne) Select(field string, fields ...string) *RosterStudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RosterStudent entity.
func (_u *RosterStudentUpdateOne) Save(ctx context.Context) (*RosterStudent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RosterStudentUpdateOne) SaveX(ctx context.Context) *RosterStudent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RosterStudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RosterStudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RosterStudentUpdateOne) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := rosterstudent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.class_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcedID(); ok {
		if err := rosterstudent.SourcedIDValidator(v); err != nil {
			return &ValidationError{Name: "sourced_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.sourced_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RosterStudentUpdateOne) sqlSave(ctx context.Context) (_node *RosterStudent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rosterstudent.Table, rosterstudent.Columns, sqlgraph.NewFieldSpec(rosterstudent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RosterStudent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rosterstudent.FieldID)
		for _, f := range fields {
			if !rosterstudent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rosterstudent.FieldID {
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
		_spec.SetField(rosterstudent.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcedID(); ok {
		_spec.SetField(rosterstudent.FieldSourcedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(rosterstudent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenName(); ok {
		_spec.SetField(rosterstudent.FieldGivenName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FamilyName(); ok {
		_spec.SetField(rosterstudent.FieldFamilyName, field.TypeString, value)
	}
	_node = &RosterStudent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rosterstudent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
