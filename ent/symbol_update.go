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
	"github.com/thinkle/sbgsync/ent/symbol"
)

// SymbolUpdate is the builder for updating Symbol entities.
type SymbolUpdate struct {
	config
	hooks    []Hook
	mutation *SymbolMutation
}

// Where appends a list predicates to the SymbolUpdate builder.
func (_u *SymbolUpdate) Where(ps ...predicate.Symbol) *SymbolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCharacter sets the "character" field.
func (_u *SymbolUpdate) SetCharacter(v string) *SymbolUpdate {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *SymbolUpdate) SetNillableCharacter(v *string) *SymbolUpdate {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SymbolUpdate) SetMastery(v bool) *SymbolUpdate {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SymbolUpdate) SetNillableMastery(v *bool) *SymbolUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetGlyph sets the "glyph" field.
func (_u *SymbolUpdate) SetGlyph(v string) *SymbolUpdate {
	_u.mutation.SetGlyph(v)
	return _u
}

// SetNillableGlyph sets the "glyph" field if the given value is not nil.
func (_u *SymbolUpdate) SetNillableGlyph(v *string) *SymbolUpdate {
	if v != nil {
		_u.SetGlyph(*v)
	}
	return _u
}

// Mutation returns the SymbolMutation object of the builder.
func (_u *SymbolUpdate) Mutation() *SymbolMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SymbolUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SymbolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SymbolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SymbolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SymbolUpdate) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := symbol.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "Symbol.character": %w`, err)}
		}
	}
	return nil
}

func (_u *SymbolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(symbol.Table, symbol.Columns, sqlgraph.NewFieldSpec(symbol.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(symbol.FieldCharacter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(symbol.FieldMastery, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Glyph(); ok {
		_spec.SetField(symbol.FieldGlyph, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{symbol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SymbolUpdateOne is the builder for updating a single Symbol entity.
type SymbolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SymbolMutation
}

// SetCharacter sets the "character" field.
func (_u *SymbolUpdateOne) SetCharacter(v string) *SymbolUpdateOne {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *SymbolUpdateOne) SetNillableCharacter(v *string) *SymbolUpdateOne {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *SymbolUpdateOne) SetMastery(v bool) *SymbolUpdateOne {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *SymbolUpdateOne) SetNillableMastery(v *bool) *SymbolUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetGlyph sets the "glyph" field.
func (_u *SymbolUpdateOne) SetGlyph(v string) *SymbolUpdateOne {
	_u.mutation.SetGlyph(v)
	return _u
}

// SetNillableGlyph sets the "glyph" field if the given value is not nil.
func (_u *SymbolUpdateOne) SetNillableGlyph(v *string) *SymbolUpdateOne {
	if v != nil {
		_u.SetGlyph(*v)
	}
	return _u
}

// Mutation returns the SymbolMutation object of the builder.
func (_u *SymbolUpdateOne) Mutation() *SymbolMutation {
	return _u.mutation
}

// Where appends a list predicates to the SymbolUpdate builder.
func (_u *SymbolUpdateOne) Where(ps ...predicate.Symbol) *SymbolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SymbolUpdateOne) Select(field string, fields ...string) *SymbolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Symbol entity.
func (_u *SymbolUpdateOne) Save(ctx context.Context) (*Symbol, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SymbolUpdateOne) SaveX(ctx context.Context) *Symbol {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SymbolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SymbolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SymbolUpdateOne) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := symbol.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "Symbol.character": %w`, err)}
		}
	}
	return nil
}

func (_u *SymbolUpdateOne) sqlSave(ctx context.Context) (_node *Symbol, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(symbol.Table, symbol.Columns, sqlgraph.NewFieldSpec(symbol.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Symbol.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, symbol.FieldID)
		for _, f := range fields {
			if !symbol.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != symbol.FieldID {
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
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(symbol.FieldCharacter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(symbol.FieldMastery, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Glyph(); ok {
		_spec.SetField(symbol.FieldGlyph, field.TypeString, value)
	}
	_node = &Symbol{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{symbol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
