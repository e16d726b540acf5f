// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/graderow"
)

// GradeRow is the model entity for the GradeRow schema.
type GradeRow struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentEmail holds the value of the "student_email" field.
	StudentEmail string `json:"student_email,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// SkillNumber holds the value of the "skill_number" field.
	SkillNumber string `json:"skill_number,omitempty"`
	// Descriptor holds the value of the "descriptor" field.
	Descriptor string `json:"descriptor,omitempty"`
	// Attempt marks keyed by level short code
	Attempts     map[string][]string `json:"attempts,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graderow.FieldAttempts:
			values[i] = new([]byte)
		case graderow.FieldID:
			values[i] = new(sql.NullInt64)
		case graderow.FieldStudentEmail, graderow.FieldUnit, graderow.FieldSkillNumber, graderow.FieldDescriptor:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeRow fields.
func (_m *GradeRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graderow.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case graderow.FieldStudentEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_email", values[i])
			} else if value.Valid {
				_m.StudentEmail = value.String
			}
		case graderow.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case graderow.FieldSkillNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_number", values[i])
			} else if value.Valid {
				_m.SkillNumber = value.String
			}
		case graderow.FieldDescriptor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descriptor", values[i])
			} else if value.Valid {
				_m.Descriptor = value.String
			}
		case graderow.FieldAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attempts); err != nil {
					return fmt.Errorf("unmarshal field attempts: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradeRow.
// This includes values selected through modifiers, order, etc.
func (_m *GradeRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradeRow.
// Note that you need to call GradeRow.Unwrap() before calling this method if this GradeRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeRow) Update() *GradeRowUpdateOne {
	return NewGradeRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeRow) Unwrap() *GradeRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeRow) String() string {
	var builder strings.Builder
	builder.WriteString("GradeRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_email=")
	builder.WriteString(_m.StudentEmail)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("skill_number=")
	builder.WriteString(_m.SkillNumber)
	builder.WriteString(", ")
	builder.WriteString("descriptor=")
	builder.WriteString(_m.Descriptor)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteByte(')')
	return builder.String()
}

// GradeRows is a parsable slice of GradeRow.
type GradeRows []*GradeRow
