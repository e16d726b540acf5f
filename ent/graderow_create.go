// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/graderow"
)

// GradeRowCreate is the builder for creating a GradeRow entity.
type GradeRowCreate struct {
	config
	mutation *GradeRowMutation
	hooks    []Hook
}

// SetStudentEmail sets the "student_email" field.
func (_c *GradeRowCreate) SetStudentEmail(v string) *GradeRowCreate {
	_c.mutation.SetStudentEmail(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *GradeRowCreate) SetUnit(v string) *GradeRowCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetSkillNumber sets the "skill_number" field.
func (_c *GradeRowCreate) SetSkillNumber(v string) *GradeRowCreate {
	_c.mutation.SetSkillNumber(v)
	return _c
}

// SetDescriptor sets the "descriptor" field.
func (_c *GradeRowCreate) SetDescriptor(v string) *GradeRowCreate {
	_c.mutation.SetDescriptor(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *GradeRowCreate) SetAttempts(v map[string][]string) *GradeRowCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// Mutation returns the GradeRowMutation object of the builder.
func (_c *GradeRowCreate) Mutation() *GradeRowMutation {
	return _c.mutation
}

// Save creates the GradeRow in the database.
func (_c *GradeRowCreate) Save(ctx context.Context) (*GradeRow, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeRowCreate) SaveX(ctx context.Context) *GradeRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeRowCreate) check() error {
	if _, ok := _c.mutation.StudentEmail(); !ok {
		return &ValidationError{Name: "student_email", err: errors.New(`ent: missing required field "GradeRow.student_email"`)}
	}
	if v, ok := _c.mutation.StudentEmail(); ok {
		if err := graderow.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`ent: validator failed for field "GradeRow.student_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "GradeRow.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := graderow.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "GradeRow.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillNumber(); !ok {
		return &ValidationError{Name: "skill_number", err: errors.New(`ent: missing required field "GradeRow.skill_number"`)}
	}
	if v, ok := _c.mutation.SkillNumber(); ok {
		if err := graderow.SkillNumberValidator(v); err != nil {
			return &ValidationError{Name: "skill_number", err: fmt.Errorf(`ent: validator failed for field "GradeRow.skill_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Descriptor(); !ok {
		return &ValidationError{Name: "descriptor", err: errors.New(`ent: missing required field "GradeRow.descriptor"`)}
	}
	if v, ok := _c.mutation.Descriptor(); ok {
		if err := graderow.DescriptorValidator(v); err != nil {
			return &ValidationError{Name: "descriptor", err: fmt.Errorf(`ent: validator failed for field "GradeRow.descriptor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "GradeRow.attempts"`)}
	}
	return nil
}

func (_c *GradeRowCreate) sqlSave(ctx context.Context) (*GradeRow, error) {
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

func (_c *GradeRowCreate) createSpec() (*GradeRow, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graderow.Table, sqlgraph.NewFieldSpec(graderow.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentEmail(); ok {
		_spec.SetField(graderow.FieldStudentEmail, field.TypeString, value)
		_node.StudentEmail = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(graderow.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.SkillNumber(); ok {
		_spec.SetField(graderow.FieldSkillNumber, field.TypeString, value)
		_node.SkillNumber = value
	}
	if value, ok := _c.mutation.Descriptor(); ok {
		_spec.SetField(graderow.FieldDescriptor, field.TypeString, value)
		_node.Descriptor = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(graderow.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	return _node, _spec
}

// GradeRowCreateBulk is the builder for creating many GradeRow entities in bulk.
type GradeRowCreateBulk struct {
	config
	err      error
	builders []*GradeRowCreate
}

// Save creates the GradeRow entities in the database.
func (_c *GradeRowCreateBulk) Save(ctx context.Context) ([]*GradeRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeRowMutation)
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
func (_c *GradeRowCreateBulk) SaveX(ctx context.Context) []*GradeRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
