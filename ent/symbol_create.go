// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/symbol"
)

// SymbolCreate is the builder for creating a Symbol entity.
type SymbolCreate struct {
	config
	mutation *SymbolMutation
	hooks    []Hook
}

// SetCharacter sets the "character" field.
func (_c *SymbolCreate) SetCharacter(v string) *SymbolCreate {
	_c.mutation.SetCharacter(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *SymbolCreate) SetMastery(v bool) *SymbolCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetGlyph sets the "glyph" field.
func (_c *SymbolCreate) SetGlyph(v string) *SymbolCreate {
	_c.mutation.SetGlyph(v)
	return _c
}

// SetNillableGlyph sets the "glyph" field if the given value is not nil.
func (_c *SymbolCreate) SetNillableGlyph(v *string) *SymbolCreate {
	if v != nil {
		_c.SetGlyph(*v)
	}
	return _c
}

// Mutation returns the SymbolMutation object of the builder.
func (_c *SymbolCreate) Mutation() *SymbolMutation {
	return _c.mutation
}

// Save creates the Symbol in the database.
func (_c *SymbolCreate) Save(ctx context.Context) (*Symbol, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SymbolCreate) SaveX(ctx context.Context) *Symbol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SymbolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SymbolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SymbolCreate) defaults() {
	if _, ok := _c.mutation.Glyph(); !ok {
		v := symbol.DefaultGlyph
		_c.mutation.SetGlyph(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SymbolCreate) check() error {
	if _, ok := _c.mutation.Character(); !ok {
		return &ValidationError{Name: "character", err: errors.New(`ent: missing required field "Symbol.character"`)}
	}
	if v, ok := _c.mutation.Character(); ok {
		if err := symbol.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "Symbol.character": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Symbol.mastery"`)}
	}
	if _, ok := _c.mutation.Glyph(); !ok {
		return &ValidationError{Name: "glyph", err: errors.New(`ent: missing required field "Symbol.glyph"`)}
	}
	return nil
}

func (_c *SymbolCreate) sqlSave(ctx context.Context) (*Symbol, error) {
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

func (_c *SymbolCreate) createSpec() (*Symbol, *sqlgraph.CreateSpec) {
	var (
		_node = &Symbol{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(symbol.Table, sqlgraph.NewFieldSpec(symbol.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Character(); ok {
		_spec.SetField(symbol.FieldCharacter, field.TypeString, value)
		_node.Character = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(symbol.FieldMastery, field.TypeBool, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Glyph(); ok {
		_spec.SetField(symbol.FieldGlyph, field.TypeString, value)
		_node.Glyph = value
	}
	return _node, _spec
}

// SymbolCreateBulk is the builder for creating many Symbol entities in bulk.
type SymbolCreateBulk struct {
	config
	err      error
	builders []*SymbolCreate
}

// Save creates the Symbol entities in the database.
func (_c *SymbolCreateBulk) Save(ctx context.Context) ([]*Symbol, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Symbol, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SymbolMutation)
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
func (_c *SymbolCreateBulk) SaveX(ctx context.Context) []*Symbol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SymbolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SymbolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
