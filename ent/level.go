// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/level"
)

// Level is the model entity for the Level schema.
type Level struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Single-letter label used in column headers
	ShortCode string `json:"short_code,omitempty"`
	// Rank within the ladder, lowest first
	Position int `json:"position,omitempty"`
	// Consecutive successes needed to earn this level
	RequiredStreak int `json:"required_streak,omitempty"`
	// Numeric grade awarded at this level
	Score float64 `json:"score,omitempty"`
	// Attempt slots allotted per skill at this level
	DefaultAttempts int `json:"default_attempts,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Level) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case level.FieldScore:
			values[i] = new(sql.NullFloat64)
		case level.FieldID, level.FieldPosition, level.FieldRequiredStreak, level.FieldDefaultAttempts:
			values[i] = new(sql.NullInt64)
		case level.FieldName, level.FieldShortCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Level fields.
func (_m *Level) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case level.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case level.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case level.FieldShortCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_code", values[i])
			} else if value.Valid {
				_m.ShortCode = value.String
			}
		case level.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case level.FieldRequiredStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_streak", values[i])
			} else if value.Valid {
				_m.RequiredStreak = int(value.Int64)
			}
		case level.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case level.FieldDefaultAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_attempts", values[i])
			} else if value.Valid {
				_m.DefaultAttempts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Level.
// This includes values selected through modifiers, order, etc.
func (_m *Level) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Level.
// Note that you need to call Level.Unwrap() before calling this method if this Level
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Level) Update() *LevelUpdateOne {
	return NewLevelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Level entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Level) Unwrap() *Level {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Level is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Level) String() string {
	var builder strings.Builder
	builder.WriteString("Level(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("short_code=")
	builder.WriteString(_m.ShortCode)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("required_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredStreak))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("default_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultAttempts))
	builder.WriteByte(')')
	return builder.String()
}

// Levels is a parsable slice of Level.
type Levels []*Level
