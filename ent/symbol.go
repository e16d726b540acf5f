// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/symbol"
)

// Symbol is the model entity for the Symbol schema.
type Symbol struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Shorthand mark entered for an attempt, e.g. 1, X, Xo
	Character string `json:"character,omitempty"`
	// Whether the mark counts toward a streak
	Mastery bool `json:"mastery,omitempty"`
	// Emoji shown in place of the raw mark
	Glyph        string `json:"glyph,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Symbol) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case symbol.FieldMastery:
			values[i] = new(sql.NullBool)
		case symbol.FieldID:
			values[i] = new(sql.NullInt64)
		case symbol.FieldCharacter, symbol.FieldGlyph:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Symbol fields.
func (_m *Symbol) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case symbol.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case symbol.FieldCharacter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field character", values[i])
			} else if value.Valid {
				_m.Character = value.String
			}
		case symbol.FieldMastery:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Bool
			}
		case symbol.FieldGlyph:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field glyph", values[i])
			} else if value.Valid {
				_m.Glyph = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Symbol.
// This includes values selected through modifiers, order, etc.
func (_m *Symbol) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Symbol.
// Note that you need to call Symbol.Unwrap() before calling this method if this Symbol
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Symbol) Update() *SymbolUpdateOne {
	return NewSymbolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Symbol entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Symbol) Unwrap() *Symbol {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Symbol is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Symbol) String() string {
	var builder strings.Builder
	builder.WriteString("Symbol(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("character=")
	builder.WriteString(_m.Character)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("glyph=")
	builder.WriteString(_m.Glyph)
	builder.WriteByte(')')
	return builder.String()
}

// Symbols is a parsable slice of Symbol.
type Symbols []*Symbol
