// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// SyncedGradeCreate is the builder for creating a SyncedGrade entity.
type SyncedGradeCreate struct {
	config
	mutation *SyncedGradeMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *SyncedGradeCreate) SetStudentID(v string) *SyncedGradeCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *SyncedGradeCreate) SetAssignmentID(v string) *SyncedGradeCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SyncedGradeCreate) SetScore(v string) *SyncedGradeCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *SyncedGradeCreate) SetComment(v string) *SyncedGradeCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *SyncedGradeCreate) SetNillableComment(v *string) *SyncedGradeCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSyncedAt sets the "synced_at" field.
func (_c *SyncedGradeCreate) SetSyncedAt(v time.Time) *SyncedGradeCreate {
	_c.mutation.SetSyncedAt(v)
	return _c
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_c *SyncedGradeCreate) SetNillableSyncedAt(v *time.Time) *SyncedGradeCreate {
	if v != nil {
		_c.SetSyncedAt(*v)
	}
	return _c
}

// Mutation returns the SyncedGradeMutation object of the builder.
func (_c *SyncedGradeCreate) Mutation() *SyncedGradeMutation {
	return _c.mutation
}

// Save creates the SyncedGrade in the database.
func (_c *SyncedGradeCreate) Save(ctx context.Context) (*SyncedGrade, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncedGradeCreate) SaveX(ctx context.Context) *SyncedGrade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncedGradeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncedGradeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncedGradeCreate) defaults() {
	if _, ok := _c.mutation.Comment(); !ok {
		v := syncedgrade.DefaultComment
		_c.mutation.SetComment(v)
	}
	if _, ok := _c.mutation.SyncedAt(); !ok {
		v := syncedgrade.DefaultSyncedAt()
		_c.mutation.SetSyncedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncedGradeCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "SyncedGrade.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := syncedgrade.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "SyncedGrade.assignment_id"`)}
	}
	if v, ok := _c.mutation.AssignmentID(); ok {
		if err := syncedgrade.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.assignment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SyncedGrade.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := syncedgrade.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "SyncedGrade.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comment(); !ok {
		return &ValidationError{Name: "comment", err: errors.New(`ent: missing required field "SyncedGrade.comment"`)}
	}
	if _, ok := _c.mutation.SyncedAt(); !ok {
		return &ValidationError{Name: "synced_at", err: errors.New(`ent: missing required field "SyncedGrade.synced_at"`)}
	}
	return nil
}

func (_c *SyncedGradeCreate) sqlSave(ctx context.Context) (*SyncedGrade, error) {
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

func (_c *SyncedGradeCreate) createSpec() (*SyncedGrade, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncedGrade{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncedgrade.Table, sqlgraph.NewFieldSpec(syncedgrade.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(syncedgrade.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(syncedgrade.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(syncedgrade.FieldScore, field.TypeString, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(syncedgrade.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.SyncedAt(); ok {
		_spec.SetField(syncedgrade.FieldSyncedAt, field.TypeTime, value)
		_node.SyncedAt = value
	}
	return _node, _spec
}

// SyncedGradeCreateBulk is the builder for creating many SyncedGrade entities in bulk.
type SyncedGradeCreateBulk struct {
	config
	err      error
	builders []*SyncedGradeCreate
}

// Save creates the SyncedGrade entities in the database.
func (_c *SyncedGradeCreateBulk) Save(ctx context.Context) ([]*SyncedGrade, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncedGrade, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncedGradeMutation)
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
func (_c *SyncedGradeCreateBulk) SaveX(ctx context.Context) []*SyncedGrade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncedGradeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncedGradeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
