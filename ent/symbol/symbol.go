// Code generated by ent, DO NOT EDIT.

package symbol

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the symbol type in the database.
	Label = "symbol"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCharacter holds the string denoting the character field in the database.
	FieldCharacter = "character"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldGlyph holds the string denoting the glyph field in the database.
	FieldGlyph = "glyph"
	// Table holds the table name of the symbol in the database.
	Table = "symbols"
)

// Columns holds all SQL columns for symbol fields.
var Columns = []string{
	FieldID,
	FieldCharacter,
	FieldMastery,
	FieldGlyph,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CharacterValidator is a validator for the "character" field. It is called by the builders before save.
	CharacterValidator func(string) error
	// DefaultGlyph holds the default value on creation for the "glyph" field.
	DefaultGlyph string
)

// OrderOption defines the ordering options for the Symbol queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCharacter orders the results by the character field.
func ByCharacter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacter, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByGlyph orders the results by the glyph field.
func ByGlyph(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlyph, opts...).ToFunc()
}
