// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/apilogevent"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// APILogEventUpdate is the builder for updating APILogEvent entities.
type APILogEventUpdate struct {
	config
	hooks    []Hook
	mutation *APILogEventMutation
}

// Where appends a list predicates to the APILogEventUpdate builder.
func (_u *APILogEventUpdate) Where(ps ...predicate.APILogEvent) *APILogEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *APILogEventUpdate) SetRunID(v string) *APILogEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableRunID(v *string) *APILogEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *APILogEventUpdate) SetMethod(v string) *APILogEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableMethod(v *string) *APILogEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *APILogEventUpdate) SetEndpoint(v string) *APILogEventUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableEndpoint(v *string) *APILogEventUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *APILogEventUpdate) SetStatus(v int) *APILogEventUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableStatus(v *int) *APILogEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *APILogEventUpdate) AddStatus(v int) *APILogEventUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *APILogEventUpdate) SetLatencyMs(v int64) *APILogEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableLatencyMs(v *int64) *APILogEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *APILogEventUpdate) AddLatencyMs(v int64) *APILogEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *APILogEventUpdate) SetSuccess(v bool) *APILogEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableSuccess(v *bool) *APILogEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *APILogEventUpdate) SetErrorMessage(v string) *APILogEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *APILogEventUpdate) SetNillableErrorMessage(v *string) *APILogEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the APILogEventMutation object of the builder.
func (_u *APILogEventUpdate) Mutation() *APILogEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APILogEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APILogEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APILogEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APILogEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APILogEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := apilogevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := apilogevent.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := apilogevent.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.endpoint": %w`, err)}
		}
	}
	return nil
}

func (_u *APILogEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apilogevent.Table, apilogevent.Columns, sqlgraph.NewFieldSpec(apilogevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(apilogevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apilogevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(apilogevent.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(apilogevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(apilogevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(apilogevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(apilogevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(apilogevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(apilogevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apilogevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APILogEventUpdateOne is the builder for updating a single APILogEvent entity.
type APILogEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APILogEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *APILogEventUpdateOne) SetRunID(v string) *APILogEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableRunID(v *string) *APILogEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *APILogEventUpdateOne) SetMethod(v string) *APILogEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableMethod(v *string) *APILogEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *APILogEventUpdateOne) SetEndpoint(v string) *APILogEventUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableEndpoint(v *string) *APILogEventUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *APILogEventUpdateOne) SetStatus(v int) *APILogEventUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableStatus(v *int) *APILogEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *APILogEventUpdateOne) AddStatus(v int) *APILogEventUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *APILogEventUpdateOne) SetLatencyMs(v int64) *APILogEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableLatencyMs(v *int64) *APILogEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *APILogEventUpdateOne) AddLatencyMs(v int64) *APILogEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *APILogEventUpdateOne) SetSuccess(v bool) *APILogEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableSuccess(v *bool) *APILogEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *APILogEventUpdateOne) SetErrorMessage(v string) *APILogEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *APILogEventUpdateOne) SetNillableErrorMessage(v *string) *APILogEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the APILogEventMutation object of the builder.
func (_u *APILogEventUpdateOne) Mutation() *APILogEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the APILogEventUpdate builder.
func (_u *APILogEventUpdateOne) Where(ps ...predicate.APILogEvent) *APILogEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APILogEventUpdateOne) Select(field string, fields ...string) *APILogEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APILogEvent entity.
func (_u *APILogEventUpdateOne) Save(ctx context.Context) (*APILogEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APILogEventUpdateOne) SaveX(ctx context.Context) *APILogEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APILogEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APILogEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APILogEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := apilogevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := apilogevent.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := apilogevent.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "APILogEvent.endpoint": %w`, err)}
		}
	}
	return nil
}

func (_u *APILogEventUpdateOne) sqlSave(ctx context.Context) (_node *APILogEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apilogevent.Table, apilogevent.Columns, sqlgraph.NewFieldSpec(apilogevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APILogEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apilogevent.FieldID)
		for _, f := range fields {
			if !apilogevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apilogevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(apilogevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apilogevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(apilogevent.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(apilogevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(apilogevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(apilogevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(apilogevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(apilogevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(apilogevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &APILogEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apilogevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
