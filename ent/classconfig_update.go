// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/classconfig"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ClassConfigUpdate is the builder for updating ClassConfig entities.
type ClassConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ClassConfigMutation
}

// Where appends a list predicates to the ClassConfigUpdate builder.
func (_u *ClassConfigUpdate) Where(ps ...predicate.ClassConfig) *ClassConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *ClassConfigUpdate) SetClassID(v string) *ClassConfigUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableClassID(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetClassTitle sets the "class_title" field.
func (_u *ClassConfigUpdate) SetClassTitle(v string) *ClassConfigUpdate {
	_u.mutation.SetClassTitle(v)
	return _u
}

// SetNillableClassTitle sets the "class_title" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableClassTitle(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetClassTitle(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ClassConfigUpdate) SetCourseID(v string) *ClassConfigUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableCourseID(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ClassConfigUpdate) SetCategoryID(v string) *ClassConfigUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableCategoryID(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetCategoryTitle sets the "category_title" field.
func (_u *ClassConfigUpdate) SetCategoryTitle(v string) *ClassConfigUpdate {
	_u.mutation.SetCategoryTitle(v)
	return _u
}

// SetNillableCategoryTitle sets the "category_title" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableCategoryTitle(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetCategoryTitle(*v)
	}
	return _u
}

// SetGradingPeriodID sets the "grading_period_id" field.
func (_u *ClassConfigUpdate) SetGradingPeriodID(v string) *ClassConfigUpdate {
	_u.mutation.SetGradingPeriodID(v)
	return _u
}

// SetNillableGradingPeriodID sets the "grading_period_id" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableGradingPeriodID(v *string) *ClassConfigUpdate {
	if v != nil {
		_u.SetGradingPeriodID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ClassConfigUpdate) SetActive(v bool) *ClassConfigUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ClassConfigUpdate) SetNillableActive(v *bool) *ClassConfigUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ClassConfigMutation object of the builder.
func (_u *ClassConfigUpdate) Mutation() *ClassConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClassConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClassConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassConfigUpdate) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := classconfig.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ClassConfig.class_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classconfig.Table, classconfig.Columns, sqlgraph.NewFieldSpec(classconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(classconfig.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassTitle(); ok {
		_spec.SetField(classconfig.FieldClassTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(classconfig.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(classconfig.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryTitle(); ok {
		_spec.SetField(classconfig.FieldCategoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradingPeriodID(); ok {
		_spec.SetField(classconfig.FieldGradingPeriodID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(classconfig.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClassConfigUpdateOne is the builder for updating a single ClassConfig entity.
type ClassConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClassConfigMutation
}

// SetClassID sets the "class_id" field.
func (_u *ClassConfigUpdateOne) SetClassID(v string) *ClassConfigUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableClassID(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetClassTitle sets the "class_title" field.
func (_u *ClassConfigUpdateOne) SetClassTitle(v string) *ClassConfigUpdateOne {
	_u.mutation.SetClassTitle(v)
	return _u
}

// SetNillableClassTitle sets the "class_title" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableClassTitle(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetClassTitle(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ClassConfigUpdateOne) SetCourseID(v string) *ClassConfigUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableCourseID(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ClassConfigUpdateOne) SetCategoryID(v string) *ClassConfigUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableCategoryID(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetCategoryTitle sets the "category_title" field.
func (_u *ClassConfigUpdateOne) SetCategoryTitle(v string) *ClassConfigUpdateOne {
	_u.mutation.SetCategoryTitle(v)
	return _u
}

// SetNillableCategoryTitle sets the "category_title" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableCategoryTitle(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetCategoryTitle(*v)
	}
	return _u
}

// SetGradingPeriodID sets the "grading_period_id" field.
func (_u *ClassConfigUpdateOne) SetGradingPeriodID(v string) *ClassConfigUpdateOne {
	_u.mutation.SetGradingPeriodID(v)
	return _u
}

// SetNillableGradingPeriodID sets the "grading_period_id" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableGradingPeriodID(v *string) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetGradingPeriodID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ClassConfigUpdateOne) SetActive(v bool) *ClassConfigUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ClassConfigUpdateOne) SetNillableActive(v *bool) *ClassConfigUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ClassConfigMutation object of the builder.
func (_u *ClassConfigUpdateOne) Mutation() *ClassConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClassConfigUpdate builder.
func (_u *ClassConfigUpdateOne) Where(ps ...predicate.ClassConfig) *ClassConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClassConfigUpdateOne) Select(field string, fields ...string) *ClassConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClassConfig entity.
func (_u *ClassConfigUpdateOne) Save(ctx context.Context) (*ClassConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClassConfigUpdateOne) SaveX(ctx context.Context) *ClassConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClassConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClassConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClassConfigUpdateOne) check() error {
	if v, ok := _u.mutation.ClassID(); ok {
		if err := classconfig.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ClassConfig.class_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ClassConfigUpdateOne) sqlSave(ctx context.Context) (_node *ClassConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(classconfig.Table, classconfig.Columns, sqlgraph.NewFieldSpec(classconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClassConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, classconfig.FieldID)
		for _, f := range fields {
			if !classconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != classconfig.FieldID {
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
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(classconfig.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassTitle(); ok {
		_spec.SetField(classconfig.FieldClassTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(classconfig.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(classconfig.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryTitle(); ok {
		_spec.SetField(classconfig.FieldCategoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradingPeriodID(); ok {
		_spec.SetField(classconfig.FieldGradingPeriodID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(classconfig.FieldActive, field.TypeBool, value)
	}
	_node = &ClassConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{classconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
