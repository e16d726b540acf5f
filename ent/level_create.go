// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/level"
)

// LevelCreate is the builder for creating a Level entity.
type LevelCreate struct {
	config
	mutation *LevelMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LevelCreate) SetName(v string) *LevelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetShortCode sets the "short_code" field.
func (_c *LevelCreate) SetShortCode(v string) *LevelCreate {
	_c.mutation.SetShortCode(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LevelCreate) SetPosition(v int) *LevelCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetRequiredStreak sets the "required_streak" field.
func (_c *LevelCreate) SetRequiredStreak(v int) *LevelCreate {
	_c.mutation.SetRequiredStreak(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *LevelCreate) SetScore(v float64) *LevelCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDefaultAttempts sets the "default_attempts" field.
func (_c *LevelCreate) SetDefaultAttempts(v int) *LevelCreate {
	_c.mutation.SetDefaultAttempts(v)
	return _c
}

// SetNillableDefaultAttempts sets the "default_attempts" field if the given value is not nil.
func (_c *LevelCreate) SetNillableDefaultAttempts(v *int) *LevelCreate {
	if v != nil {
		_c.SetDefaultAttempts(*v)
	}
	return _c
}

// Mutation returns the LevelMutation object of the builder.
func (_c *LevelCreate) Mutation() *LevelMutation {
	return _c.mutation
}

// Save creates the Level in the database.
func (_c *LevelCreate) Save(ctx context.Context) (*Level, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelCreate) SaveX(ctx context.Context) *Level {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelCreate) defaults() {
	if _, ok := _c.mutation.DefaultAttempts(); !ok {
		v := level.DefaultDefaultAttempts
		_c.mutation.SetDefaultAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Level.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := level.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Level.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShortCode(); !ok {
		return &ValidationError{Name: "short_code", err: errors.New(`ent: missing required field "Level.short_code"`)}
	}
	if v, ok := _c.mutation.ShortCode(); ok {
		if err := level.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Level.short_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Level.position"`)}
	}
	if _, ok := _c.mutation.RequiredStreak(); !ok {
		return &ValidationError{Name: "required_streak", err: errors.New(`ent: missing required field "Level.required_streak"`)}
	}
	if v, ok := _c.mutation.RequiredStreak(); ok {
		if err := level.RequiredStreakValidator(v); err != nil {
			return &ValidationError{Name: "required_streak", err: fmt.Errorf(`ent: validator failed for field "Level.required_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Level.score"`)}
	}
	if _, ok := _c.mutation.DefaultAttempts(); !ok {
		return &ValidationError{Name: "default_attempts", err: errors.New(`ent: missing required field "Level.default_attempts"`)}
	}
	return nil
}

func (_c *LevelCreate) sqlSave(ctx context.Context) (*Level, error) {
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

func (_c *LevelCreate) createSpec() (*Level, *sqlgraph.CreateSpec) {
	var (
		_node = &Level{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(level.Table, sqlgraph.NewFieldSpec(level.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(level.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ShortCode(); ok {
		_spec.SetField(level.FieldShortCode, field.TypeString, value)
		_node.ShortCode = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(level.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.RequiredStreak(); ok {
		_spec.SetField(level.FieldRequiredStreak, field.TypeInt, value)
		_node.RequiredStreak = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(level.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.DefaultAttempts(); ok {
		_spec.SetField(level.FieldDefaultAttempts, field.TypeInt, value)
		_node.DefaultAttempts = value
	}
	return _node, _spec
}

// LevelCreateBulk is the builder for creating many Level entities in bulk.
type LevelCreateBulk struct {
	config
	err      error
	builders []*LevelCreate
}

// Save creates the Level entities in the database.
func (_c *LevelCreateBulk) Save(ctx context.Context) ([]*Level, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Level, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelMutation)
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
func (_c *LevelCreateBulk) SaveX(ctx context.Context) []*Level {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
