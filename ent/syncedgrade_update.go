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
	"github.com/thinkle/sbgsync/ent/predicate"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// SyncedGradeUpdate is the builder for updating SyncedGrade entities.
type SyncedGradeUpdate struct {
	config
	hooks    []Hook
	mutation *SyncedGradeMutation
}

// Where appends a list predicates to the SyncedGradeUpdate builder.
func (_u *SyncedGradeUpdate) Where(ps ...predicate.SyncedGrade) *SyncedGradeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SyncedGradeUpdate) SetStudentID(v string) *SyncedGradeUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SyncedGradeUpdate) SetNillableStudentID(v *string) *SyncedGradeUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SyncedGradeUpdate) SetAssignmentID(v string) *SyncedGradeUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SyncedGradeUpdate) SetNillableAssignmentID(v *string) *SyncedGradeUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SyncedGradeUpdate) SetScore(v string) *SyncedGradeUpdate {
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SyncedGradeUpdate) SetNillableScore(v *string) *SyncedGradeUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *SyncedGradeUpdate) SetComment(v string) *SyncedGradeUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *SyncedGradeUpdate) SetNillableComment(v *string) *SyncedGradeUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetSyncedAt sets the "synced_at" field.
func (_u *SyncedGradeUpdate) SetSyncedAt(v time.Time) *SyncedGradeUpdate {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *SyncedGradeUpdate) SetNillableSyncedAt(v *time.Time) *SyncedGradeUpdate {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// Mutation returns the SyncedGradeMutation object of the builder.
func (_u *SyncedGradeUpdate) Mutation() *SyncedGradeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncedGradeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncedGradeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncedGradeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncedGradeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncedGradeUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := syncedgrade.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := syncedgrade.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := syncedgrade.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.score": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncedGradeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncedgrade.Table, syncedgrade.Columns, sqlgraph.NewFieldSpec(syncedgrade.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(syncedgrade.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(syncedgrade.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(syncedgrade.FieldScore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(syncedgrade.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(syncedgrade.FieldSyncedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncedgrade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncedGradeUpdateOne is the builder for updating a single SyncedGrade entity.
type SyncedGradeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncedGradeMutation
}

// SetStudentID sets the "student_id" field.
func (_u *SyncedGradeUpdateOne) SetStudentID(v string) *SyncedGradeUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SyncedGradeUpdateOne) SetNillableStudentID(v *string) *SyncedGradeUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SyncedGradeUpdateOne) SetAssignmentID(v string) *SyncedGradeUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SyncedGradeUpdateOne) SetNillableAssignmentID(v *string) *SyncedGradeUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SyncedGradeUpdateOne) SetScore(v string) *SyncedGradeUpdateOne {
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SyncedGradeUpdateOne) SetNillableScore(v *string) *SyncedGradeUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *SyncedGradeUpdateOne) SetComment(v string) *SyncedGradeUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *SyncedGradeUpdateOne) SetNillableComment(v *string) *SyncedGradeUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetSyncedAt sets the "synced_at" field.
func (_u *SyncedGradeUpdateOne) SetSyncedAt(v time.Time) *SyncedGradeUpdateOne {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *SyncedGradeUpdateOne) SetNillableSyncedAt(v *time.Time) *SyncedGradeUpdateOne {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// Mutation returns the SyncedGradeMutation object of the builder.
func (_u *SyncedGradeUpdateOne) Mutation() *SyncedGradeMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncedGradeUpdate builder.
func (_u *SyncedGradeUpdateOne) Where(ps ...predicate.SyncedGrade) *SyncedGradeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncedGradeUpdateOne) Select(field string, fields ...string) *SyncedGradeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncedGrade entity.
func (_u *SyncedGradeUpdateOne) Save(ctx context.Context) (*SyncedGrade, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncedGradeUpdateOne) SaveX(ctx context.Context) *SyncedGrade {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncedGradeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncedGradeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncedGradeUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := syncedgrade.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := syncedgrade.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := syncedgrade.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.score": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncedGradeUpdateOne) sqlSave(ctx context.Context) (_node *SyncedGrade, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncedgrade.Table, syncedgrade.Columns, sqlgraph.NewFieldSpec(syncedgrade.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncedGrade.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncedgrade.FieldID)
		for _, f := range fields {
			if !syncedgrade.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncedgrade.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(syncedgrade.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(syncedgrade.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(syncedgrade.FieldScore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(syncedgrade.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(syncedgrade.FieldSyncedAt, field.TypeTime, value)
	}
	_node = &SyncedGrade{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncedgrade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
