// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
)

// RosterStudent is the model entity for the RosterStudent schema.
type RosterStudent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClassID holds the value of the "class_id" field.
	ClassID string `json:"class_id,omitempty"`
	// SIS sourcedId of the student
	SourcedID string `json:"sourced_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// GivenName holds the value of the "given_name" field.
	GivenName string `json:"given_name,omitempty"`
	// FamilyName holds the value of the "family_name" field.
	FamilyName   string `json:"family_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RosterStudent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rosterstudent.FieldID:
			values[i] = new(sql.NullInt64)
		case rosterstudent.FieldClassID, rosterstudent.FieldSourcedID, rosterstudent.FieldEmail, rosterstudent.FieldGivenName, rosterstudent.FieldFamilyName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RosterStudent fields.
func (_m *RosterStudent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rosterstudent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rosterstudent.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				_m.ClassID = value.String
			}
		case rosterstudent.FieldSourcedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sourced_id", values[i])
			} else if value.Valid {
				_m.SourcedID = value.String
			}
		case rosterstudent.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case rosterstudent.FieldGivenName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field given_name", values[i])
			} else if value.Valid {
				_m.GivenName = value.String
			}
		case rosterstudent.FieldFamilyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_name", values[i])
			} else if value.Valid {
				_m.FamilyName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RosterStudent.
// This includes values selected through modifiers, order, etc.
func (_m *RosterStudent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RosterStudent.
// Note that you need to call RosterStudent.Unwrap() before calling this method if this RosterStudent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RosterStudent) Update() *RosterStudentUpdateOne {
	return NewRosterStudentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RosterStudent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RosterStudent) Unwrap() *RosterStudent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RosterStudent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RosterStudent) String() string {
	var builder strings.Builder
	builder.WriteString("RosterStudent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("class_id=")
	builder.WriteString(_m.ClassID)
	builder.WriteString(", ")
	builder.WriteString("sourced_id=")
	builder.WriteString(_m.SourcedID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("given_name=")
	builder.WriteString(_m.GivenName)
	builder.WriteString(", ")
	builder.WriteString("family_name=")
	builder.WriteString(_m.FamilyName)
	builder.WriteByte(')')
	return builder.String()
}

// RosterStudents is a parsable slice of RosterStudent.
type RosterStudents []*RosterStudent
