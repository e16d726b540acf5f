// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/classconfig"
)

// ClassConfig is the model entity for the ClassConfig schema.
type ClassConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SIS sourcedId of the class section
	ClassID string `json:"class_id,omitempty"`
	// ClassTitle holds the value of the "class_title" field.
	ClassTitle string `json:"class_title,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// CategoryTitle holds the value of the "category_title" field.
	CategoryTitle string `json:"category_title,omitempty"`
	// GradingPeriodID holds the value of the "grading_period_id" field.
	GradingPeriodID string `json:"grading_period_id,omitempty"`
	// Active holds the value of the "active" field.
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClassConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case classconfig.FieldActive:
			values[i] = new(sql.NullBool)
		case classconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case classconfig.FieldClassID, classconfig.FieldClassTitle, classconfig.FieldCourseID, classconfig.FieldCategoryID, classconfig.FieldCategoryTitle, classconfig.FieldGradingPeriodID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClassConfig fields.
func (_m *ClassConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case classconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case classconfig.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				_m.ClassID = value.String
			}
		case classconfig.FieldClassTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_title", values[i])
			} else if value.Valid {
				_m.ClassTitle = value.String
			}
		case classconfig.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case classconfig.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case classconfig.FieldCategoryTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_title", values[i])
			} else if value.Valid {
				_m.CategoryTitle = value.String
			}
		case classconfig.FieldGradingPeriodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grading_period_id", values[i])
			} else if value.Valid {
				_m.GradingPeriodID = value.String
			}
		case classconfig.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClassConfig.
// This includes values selected through modifiers, order, etc.
func (_m *ClassConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ClassConfig.
// Note that you need to call ClassConfig.Unwrap() before calling this method if this ClassConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClassConfig) Update() *ClassConfigUpdateOne {
	return NewClassConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClassConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClassConfig) Unwrap() *ClassConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClassConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClassConfig) String() string {
	var builder strings.Builder
	builder.WriteString("ClassConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("class_id=")
	builder.WriteString(_m.ClassID)
	builder.WriteString(", ")
	builder.WriteString("class_title=")
	builder.WriteString(_m.ClassTitle)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("category_title=")
	builder.WriteString(_m.CategoryTitle)
	builder.WriteString(", ")
	builder.WriteString("grading_period_id=")
	builder.WriteString(_m.GradingPeriodID)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// ClassConfigs is a parsable slice of ClassConfig.
type ClassConfigs []*ClassConfig
