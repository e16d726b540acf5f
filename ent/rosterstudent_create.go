// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
)

// RosterStudentCreate is the builder for creating a RosterStudent entity.
type RosterStudentCreate struct {
	config
	mutation *RosterStudentMutation
	hooks    []Hook
}

// SetClassID sets the "class_id" field.
func (_c *RosterStudentCreate) SetClassID(v string) *RosterStudentCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetSourcedID sets the "sourced_id" field.
func (_c *RosterStudentCreate) SetSourcedID(v string) *RosterStudentCreate {
	_c.mutation.SetSourcedID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *RosterStudentCreate) SetEmail(v string) *RosterStudentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *RosterStudentCreate) SetNillableEmail(v *string) *RosterStudentCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetGivenName sets the "given_name" field.
func (_c *RosterStudentCreate) SetGivenName(v string) *RosterStudentCreate {
	_c.mutation.SetGivenName(v)
	return _c
}

// SetNillableGivenName sets the "given_name" field if the given value is not nil.
func (_c *RosterStudentCreate) SetNillableGivenName(v *string) *RosterStudentCreate {
	if v != nil {
		_c.SetGivenName(*v)
	}
	return _c
}

// SetFamilyName sets the "family_name" field.
func (_c *RosterStudentCreate) SetFamilyName(v string) *RosterStudentCreate {
	_c.mutation.SetFamilyName(v)
	return _c
}

// SetNillableFamilyName sets the "family_name" field if the given value is not nil.
func (_c *RosterStudentCreate) SetNillableFamilyName(v *string) *RosterStudentCreate {
	if v != nil {
		_c.SetFamilyName(*v)
	}
	return _c
}

// Mutation returns the RosterStudentMutation object of the builder.
func (_c *RosterStudentCreate) Mutation() *RosterStudentMutation {
	return _c.mutation
}

// Save creates the RosterStudent in the database.
func (_c *RosterStudentCreate) Save(ctx context.Context) (*RosterStudent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RosterStudentCreate) SaveX(ctx context.Context) *RosterStudent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RosterStudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RosterStudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RosterStudentCreate) defaults() {
	if _, ok := _c.mutation.Email(); !ok {
		v := rosterstudent.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.GivenName(); !ok {
		v := rosterstudent.DefaultGivenName
		_c.mutation.SetGivenName(v)
	}
	if _, ok := _c.mutation.FamilyName(); !ok {
		v := rosterstudent.DefaultFamilyName
		_c.mutation.SetFamilyName(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RosterStudentCreate) check() error {
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "RosterStudent.class_id"`)}
	}
	if v, ok := _c.mutation.ClassID(); ok {
		if err := rosterstudent.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.class_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcedID(); !ok {
		return &ValidationError{Name: "sourced_id", err: errors.New(`ent: missing required field "RosterStudent.sourced_id"`)}
	}
	if v, ok := _c.mutation.SourcedID(); ok {
		if err := rosterstudent.SourcedIDValidator(v); err != nil {
			return &ValidationError{Name: "sourced_id", err: fmt.Errorf(`ent: validator failed for field "RosterStudent.sourced_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "RosterStudent.email"`)}
	}
	if _, ok := _c.mutation.GivenName(); !ok {
		return &ValidationError{Name: "given_name", err: errors.New(`ent: missing required field "RosterStudent.given_name"`)}
	}
	if _, ok := _c.mutation.FamilyName(); !ok {
		return &ValidationError{Name: "family_name", err: errors.New(`ent: missing required field "RosterStudent.family_name"`)}
	}
	return nil
}

func (_c *RosterStudentCreate) sqlSave(ctx context.Context) (*RosterStudent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RosterStudentCreate) createSpec() (*RosterStudent, *sqlgraph.CreateSpec) {
	var (
		_node = &RosterStudent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rosterstudent.Table, sqlgraph.NewFieldSpec(rosterstudent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(rosterstudent.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.SourcedID(); ok {
		_spec.SetField(rosterstudent.FieldSourcedID, field.TypeString, value)
		_node.SourcedID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(rosterstudent.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.GivenName(); ok {
		_spec.SetField(rosterstudent.FieldGivenName, field.TypeString, value)
		_node.GivenName = value
	}
	if value, ok := _c.mutation.FamilyName(); ok {
		_spec.SetField(rosterstudent.FieldFamilyName, field.TypeString, value)
		_node.FamilyName = value
	}
	return _node, _spec
}

// RosterStudentCreateBulk is the builder for creating many RosterStudent entities in bulk.
type RosterStudentCreateBulk struct {
	config
	err      error
	builders []*RosterStudentCreate
}

// Save creates the RosterStudent entities in the database.
func (_c *RosterStudentCreateBulk) Save(ctx context.Context) ([]*RosterStudent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RosterStudent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RosterStudentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RosterStudentCreateBulk) SaveX(ctx context.Context) []*RosterStudent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RosterStudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RosterStudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
