// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// SyncedGrade is the model entity for the SyncedGrade schema.
type SyncedGrade struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SIS sourcedId of the student
	StudentID string `json:"student_id,omitempty"`
	// SIS sourcedId of the line item
	AssignmentID string `json:"assignment_id,omitempty"`
	// Score as posted, kept as text to compare exactly
	Score string `json:"score,omitempty"`
	// Result comment as posted
	Comment string `json:"comment,omitempty"`
	// SyncedAt holds the value of the "synced_at" field.
	SyncedAt     time.Time `json:"synced_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncedGrade) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncedgrade.FieldID:
			values[i] = new(sql.NullInt64)
		case syncedgrade.FieldStudentID, syncedgrade.FieldAssignmentID, syncedgrade.FieldScore, syncedgrade.FieldComment:
			values[i] = new(sql.NullString)
		case syncedgrade.FieldSyncedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncedGrade fields.
func (_m *SyncedGrade) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncedgrade.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syncedgrade.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case syncedgrade.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.String
			}
		case syncedgrade.FieldScore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.String
			}
		case syncedgrade.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case syncedgrade.FieldSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field synced_at", values[i])
			} else if value.Valid {
				_m.SyncedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncedGrade.
// This includes values selected through modifiers, order, etc.
func (_m *SyncedGrade) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncedGrade.
// Note that you need to call SyncedGrade.Unwrap() before calling this method if this SyncedGrade
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncedGrade) Update() *SyncedGradeUpdateOne {
	return NewSyncedGradeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncedGrade entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncedGrade) Unwrap() *SyncedGrade {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncedGrade is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncedGrade) String() string {
	var builder strings.Builder
	builder.WriteString("SyncedGrade(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(_m.AssignmentID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(_m.Score)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("synced_at=")
	builder.WriteString(_m.SyncedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncedGrades is a parsable slice of SyncedGrade.
type SyncedGrades []*SyncedGrade
