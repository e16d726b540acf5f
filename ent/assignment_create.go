// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/assignment"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetClassID sets the "class_id" field.
func (_c *AssignmentCreate) SetClassID(v string) *AssignmentCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *AssignmentCreate) SetUnit(v string) *AssignmentCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *AssignmentCreate) SetSkill(v string) *AssignmentCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *AssignmentCreate) SetExternalID(v string) *AssignmentCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableExternalID(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *AssignmentCreate) SetTitle(v string) *AssignmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AssignmentCreate) SetCategory(v string) *AssignmentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCategory(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *AssignmentCreate) SetDueDate(v time.Time) *AssignmentCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableDueDate(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetMinValue sets the "min_value" field.
func (_c *AssignmentCreate) SetMinValue(v float64) *AssignmentCreate {
	_c.mutation.SetMinValue(v)
	return _c
}

// SetNillableMinValue sets the "min_value" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableMinValue(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetMinValue(*v)
	}
	return _c
}

// SetMaxValue sets the "max_value" field.
func (_c *AssignmentCreate) SetMaxValue(v float64) *AssignmentCreate {
	_c.mutation.SetMaxValue(v)
	return _c
}

// SetNillableMaxValue sets the "max_value" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableMaxValue(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetMaxValue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentCreate) SetCreatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCreatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AssignmentCreate) SetPayload(v map[string]interface{}) *AssignmentCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.ExternalID(); !ok {
		v := assignment.DefaultExternalID
		_c.mutation.SetExternalID(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := assignment.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.MinValue(); !ok {
		v := assignment.DefaultMinValue
		_c.mutation.SetMinValue(v)
	}
	if _, ok := _c.mutation.MaxValue(); !ok {
		v := assignment.DefaultMaxValue
		_c.mutation.SetMaxValue(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "Assignment.class_id"`)}
	}
	if v, ok := _c.mutation.ClassID(); ok {
		if err := assignment.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.class_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "Assignment.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := assignment.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Assignment.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "Assignment.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := assignment.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Assignment.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Assignment.external_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Assignment.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := assignment.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Assignment.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Assignment.category"`)}
	}
	if _, ok := _c.mutation.MinValue(); !ok {
		return &ValidationError{Name: "min_value", err: errors.New(`ent: missing required field "Assignment.min_value"`)}
	}
	if _, ok := _c.mutation.MaxValue(); !ok {
		return &ValidationError{Name: "max_value", err: errors.New(`ent: missing required field "Assignment.max_value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assignment.created_at"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(assignment.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(assignment.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(assignment.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(assignment.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(assignment.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.MinValue(); ok {
		_spec.SetField(assignment.FieldMinValue, field.TypeFloat64, value)
		_node.MinValue = value
	}
	if value, ok := _c.mutation.MaxValue(); ok {
		_spec.SetField(assignment.FieldMaxValue, field.TypeFloat64, value)
		_node.MaxValue = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(assignment.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
