// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/sbgsync/ent/classconfig"
)

// ClassConfigCreate is the builder for creating a ClassConfig entity.
type ClassConfigCreate struct {
	config
	mutation *ClassConfigMutation
	hooks    []Hook
}

// SetClassID sets the "class_id" field.
func (_c *ClassConfigCreate) SetClassID(v string) *ClassConfigCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetClassTitle sets the "class_title" field.
func (_c *ClassConfigCreate) SetClassTitle(v string) *ClassConfigCreate {
	_c.mutation.SetClassTitle(v)
	return _c
}

// SetNillableClassTitle sets the "class_title" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableClassTitle(v *string) *ClassConfigCreate {
	if v != nil {
		_c.SetClassTitle(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *ClassConfigCreate) SetCourseID(v string) *ClassConfigCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableCourseID(v *string) *ClassConfigCreate {
	if v != nil {
		_c.SetCourseID(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ClassConfigCreate) SetCategoryID(v string) *ClassConfigCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableCategoryID(v *string) *ClassConfigCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetCategoryTitle sets the "category_title" field.
func (_c *ClassConfigCreate) SetCategoryTitle(v string) *ClassConfigCreate {
	_c.mutation.SetCategoryTitle(v)
	return _c
}

// SetNillableCategoryTitle sets the "category_title" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableCategoryTitle(v *string) *ClassConfigCreate {
	if v != nil {
		_c.SetCategoryTitle(*v)
	}
	return _c
}

// SetGradingPeriodID sets the "grading_period_id" field.
func (_c *ClassConfigCreate) SetGradingPeriodID(v string) *ClassConfigCreate {
	_c.mutation.SetGradingPeriodID(v)
	return _c
}

// SetNillableGradingPeriodID sets the "grading_period_id" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableGradingPeriodID(v *string) *ClassConfigCreate {
	if v != nil {
		_c.SetGradingPeriodID(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ClassConfigCreate) SetActive(v bool) *ClassConfigCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ClassConfigCreate) SetNillableActive(v *bool) *ClassConfigCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the ClassConfigMutation object of the builder.
func (_c *ClassConfigCreate) Mutation() *ClassConfigMutation {
	return _c.mutation
}

// Save creates the ClassConfig in the database.
func (_c *ClassConfigCreate) Save(ctx context.Context) (*ClassConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClassConfigCreate) SaveX(ctx context.Context) *ClassConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClassConfigCreate) defaults() {
	if _, ok := _c.mutation.ClassTitle(); !ok {
		v := classconfig.DefaultClassTitle
		_c.mutation.SetClassTitle(v)
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		v := classconfig.DefaultCourseID
		_c.mutation.SetCourseID(v)
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		v := classconfig.DefaultCategoryID
		_c.mutation.SetCategoryID(v)
	}
	if _, ok := _c.mutation.CategoryTitle(); !ok {
		v := classconfig.DefaultCategoryTitle
		_c.mutation.SetCategoryTitle(v)
	}
	if _, ok := _c.mutation.GradingPeriodID(); !ok {
		v := classconfig.DefaultGradingPeriodID
		_c.mutation.SetGradingPeriodID(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := classconfig.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClassConfigCreate) check() error {
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "ClassConfig.class_id"`)}
	}
	if v, ok := _c.mutation.ClassID(); ok {
		if err := classconfig.ClassIDValidator(v); err != nil {
			return &ValidationError{Name: "class_id", err: fmt.Errorf(`ent: validator failed for field "ClassConfig.class_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClassTitle(); !ok {
		return &ValidationError{Name: "class_title", err: errors.New(`ent: missing required field "ClassConfig.class_title"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ClassConfig.course_id"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "ClassConfig.category_id"`)}
	}
	if _, ok := _c.mutation.CategoryTitle(); !ok {
		return &ValidationError{Name: "category_title", err: errors.New(`ent: missing required field "ClassConfig.category_title"`)}
	}
	if _, ok := _c.mutation.GradingPeriodID(); !ok {
		return &ValidationError{Name: "grading_period_id", err: errors.New(`ent: missing required field "ClassConfig.grading_period_id"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ClassConfig.active"`)}
	}
	return nil
}

func (_c *ClassConfigCreate) sqlSave(ctx context.Context) (*ClassConfig, error) {
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

func (_c *ClassConfigCreate) createSpec() (*ClassConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ClassConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(classconfig.Table, sqlgraph.NewFieldSpec(classconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(classconfig.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.ClassTitle(); ok {
		_spec.SetField(classconfig.FieldClassTitle, field.TypeString, value)
		_node.ClassTitle = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(classconfig.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(classconfig.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.CategoryTitle(); ok {
		_spec.SetField(classconfig.FieldCategoryTitle, field.TypeString, value)
		_node.CategoryTitle = value
	}
	if value, ok := _c.mutation.GradingPeriodID(); ok {
		_spec.SetField(classconfig.FieldGradingPeriodID, field.TypeString, value)
		_node.GradingPeriodID = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(classconfig.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ClassConfigCreateBulk is the builder for creating many ClassConfig entities in bulk.
type ClassConfigCreateBulk struct {
	config
	err      error
	builders []*ClassConfigCreate
}

// Save creates the ClassConfig entities in the database.
func (_c *ClassConfigCreateBulk) Save(ctx context.Context) ([]*ClassConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClassConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClassConfigMutation)
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
func (_c *ClassConfigCreateBulk) SaveX(ctx context.Context) []*ClassConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClassConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClassConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
