// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/level"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// LevelUpdate is the builder for updating Level entities.
type LevelUpdate struct {
	config
	hooks    []Hook
	mutation *LevelMutation
}

// Where appends a list predicates to the LevelUpdate builder.
func (_u *LevelUpdate) Where(ps ...predicate.Level) *LevelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LevelUpdate) SetName(v string) *LevelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableName(v *string) *LevelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetShortCode sets the "short_code" field.
func (_u *LevelUpdate) SetShortCode(v string) *LevelUpdate {
	_u.mutation.SetShortCode(v)
	return _u
}

// SetNillableShortCode sets the "short_code" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableShortCode(v *string) *LevelUpdate {
	if v != nil {
		_u.SetShortCode(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LevelUpdate) SetPosition(v int) *LevelUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LevelUpdate) SetNillablePosition(v *int) *LevelUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LevelUpdate) AddPosition(v int) *LevelUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRequiredStreak sets the "required_streak" field.
func (_u *LevelUpdate) SetRequiredStreak(v int) *LevelUpdate {
	_u.mutation.ResetRequiredStreak()
	_u.mutation.SetRequiredStreak(v)
	return _u
}

// SetNillableRequiredStreak sets the "required_streak" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableRequiredStreak(v *int) *LevelUpdate {
	if v != nil {
		_u.SetRequiredStreak(*v)
	}
	return _u
}

// AddRequiredStreak adds value to the "required_streak" field.
func (_u *LevelUpdate) AddRequiredStreak(v int) *LevelUpdate {
	_u.mutation.AddRequiredStreak(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *LevelUpdate) SetScore(v float64) *LevelUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableScore(v *float64) *LevelUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LevelUpdate) AddScore(v float64) *LevelUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDefaultAttempts sets the "default_attempts" field.
func (_u *LevelUpdate) SetDefaultAttempts(v int) *LevelUpdate {
	_u.mutation.ResetDefaultAttempts()
	_u.mutation.SetDefaultAttempts(v)
	return _u
}

// SetNillableDefaultAttempts sets the "default_attempts" field if the given value is not nil.
func (_u *LevelUpdate) SetNillableDefaultAttempts(v *int) *LevelUpdate {
	if v != nil {
		_u.SetDefaultAttempts(*v)
	}
	return _u
}

// AddDefaultAttempts adds value to the "default_attempts" field.
func (_u *LevelUpdate) AddDefaultAttempts(v int) *LevelUpdate {
	_u.mutation.AddDefaultAttempts(v)
	return _u
}

// Mutation returns the LevelMutation object of the builder.
func (_u *LevelUpdate) Mutation() *LevelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := level.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Level.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShortCode(); ok {
		if err := level.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Level.short_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredStreak(); ok {
		if err := level.RequiredStreakValidator(v); err != nil {
			return &ValidationError{Name: "required_streak", err: fmt.Errorf(`ent: validator failed for field "Level.required_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(level.Table, level.Columns, sqlgraph.NewFieldSpec(level.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(level.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortCode(); ok {
		_spec.SetField(level.FieldShortCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(level.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(level.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredStreak(); ok {
		_spec.SetField(level.FieldRequiredStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredStreak(); ok {
		_spec.AddField(level.FieldRequiredStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(level.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(level.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DefaultAttempts(); ok {
		_spec.SetField(level.FieldDefaultAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultAttempts(); ok {
		_spec.AddField(level.FieldDefaultAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{level.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelUpdateOne is the builder for updating a single Level entity.
type LevelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelMutation
}

// SetName sets the "name" field.
func (_u *LevelUpdateOne) SetName(v string) *LevelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableName(v *string) *LevelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetShortCode sets the "short_code" field.
func (_u *LevelUpdateOne) SetShortCode(v string) *LevelUpdateOne {
	_u.mutation.SetShortCode(v)
	return _u
}

// SetNillableShortCode sets the "short_code" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableShortCode(v *string) *LevelUpdateOne {
	if v != nil {
		_u.SetShortCode(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LevelUpdateOne) SetPosition(v int) *LevelUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillablePosition(v *int) *LevelUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LevelUpdateOne) AddPosition(v int) *LevelUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRequiredStreak sets the "required_streak" field.
func (_u *LevelUpdateOne) SetRequiredStreak(v int) *LevelUpdateOne {
	_u.mutation.ResetRequiredStreak()
	_u.mutation.SetRequiredStreak(v)
	return _u
}

// SetNillableRequiredStreak sets the "required_streak" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableRequiredStreak(v *int) *LevelUpdateOne {
	if v != nil {
		_u.SetRequiredStreak(*v)
	}
	return _u
}

// AddRequiredStreak adds value to the "required_streak" field.
func (_u *LevelUpdateOne) AddRequiredStreak(v int) *LevelUpdateOne {
	_u.mutation.AddRequiredStreak(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *LevelUpdateOne) SetScore(v float64) *LevelUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableScore(v *float64) *LevelUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LevelUpdateOne) AddScore(v float64) *LevelUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDefaultAttempts sets the "default_attempts" field.
func (_u *LevelUpdateOne) SetDefaultAttempts(v int) *LevelUpdateOne {
	_u.mutation.ResetDefaultAttempts()
	_u.mutation.SetDefaultAttempts(v)
	return _u
}

// SetNillableDefaultAttempts sets the "default_attempts" field if the given value is not nil.
func (_u *LevelUpdateOne) SetNillableDefaultAttempts(v *int) *LevelUpdateOne {
	if v != nil {
		_u.SetDefaultAttempts(*v)
	}
	return _u
}

// AddDefaultAttempts adds value to the "default_attempts" field.
func (_u *LevelUpdateOne) AddDefaultAttempts(v int) *LevelUpdateOne {
	_u.mutation.AddDefaultAttempts(v)
	return _u
}

// Mutation returns the LevelMutation object of the builder.
func (_u *LevelUpdateOne) Mutation() *LevelMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelUpdate builder.
func (_u *LevelUpdateOne) Where(ps ...predicate.Level) *LevelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelUpdateOne) Select(field string, fields ...string) *LevelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Level entity.
func (_u *LevelUpdateOne) Save(ctx context.Context) (*Level, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelUpdateOne) SaveX(ctx context.Context) *Level {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := level.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Level.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShortCode(); ok {
		if err := level.ShortCodeValidator(v); err != nil {
			return &ValidationError{Name: "short_code", err: fmt.Errorf(`ent: validator failed for field "Level.short_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredStreak(); ok {
		if err := level.RequiredStreakValidator(v); err != nil {
			return &ValidationError{Name: "required_streak", err: fmt.Errorf(`ent: validator failed for field "Level.required_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelUpdateOne) sqlSave(ctx context.Context) (_node *Level, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(level.Table, level.Columns, sqlgraph.NewFieldSpec(level.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Level.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, level.FieldID)
		for _, f := range fields {
			if !level.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != level.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(level.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortCode(); ok {
		_spec.SetField(level.FieldShortCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(level.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(level.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredStreak(); ok {
		_spec.SetField(level.FieldRequiredStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredStreak(); ok {
		_spec.AddField(level.FieldRequiredStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(level.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(level.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DefaultAttempts(); ok {
		_spec.SetField(level.FieldDefaultAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultAttempts(); ok {
		_spec.AddField(level.FieldDefaultAttempts, field.TypeInt, value)
	}
	_node = &Level{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{level.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
