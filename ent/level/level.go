// Code generated by ent, DO NOT EDIT.

package level

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the level type in the database.
	Label = "level"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldShortCode holds the string denoting the short_code field in the database.
	FieldShortCode = "short_code"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldRequiredStreak holds the string denoting the required_streak field in the database.
	FieldRequiredStreak = "required_streak"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldDefaultAttempts holds the string denoting the default_attempts field in the database.
	FieldDefaultAttempts = "default_attempts"
	// Table holds the table name of the level in the database.
	Table = "levels"
)

// Columns holds all SQL columns for level fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldShortCode,
	FieldPosition,
	FieldRequiredStreak,
	FieldScore,
	FieldDefaultAttempts,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ShortCodeValidator is a validator for the "short_code" field. It is called by the builders before save.
	ShortCodeValidator func(string) error
	// RequiredStreakValidator is a validator for the "required_streak" field. It is called by the builders before save.
	RequiredStreakValidator func(int) error
	// DefaultDefaultAttempts holds the default value on creation for the "default_attempts" field.
	DefaultDefaultAttempts int
)

// OrderOption defines the ordering options for the Level queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByShortCode orders the results by the short_code field.
func ByShortCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortCode, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByRequiredStreak orders the results by the required_streak field.
func ByRequiredStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredStreak, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDefaultAttempts orders the results by the default_attempts field.
func ByDefaultAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAttempts, opts...).ToFunc()
}
