// Code generated by ent, DO NOT EDIT.

package rosterstudent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rosterstudent type in the database.
	Label = "roster_student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldSourcedID holds the string denoting the sourced_id field in the database.
	FieldSourcedID = "sourced_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldGivenName holds the string denoting the given_name field in the database.
	FieldGivenName = "given_name"
	// FieldFamilyName holds the string denoting the family_name field in the database.
	FieldFamilyName = "family_name"
	// Table holds the table name of the rosterstudent in the database.
	Table = "roster_students"
)

// Columns holds all SQL columns for rosterstudent fields.
var Columns = []string{
	FieldID,
	FieldClassID,
	FieldSourcedID,
	FieldEmail,
	FieldGivenName,
	FieldFamilyName,
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
	// ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	ClassIDValidator func(string) error
	// SourcedIDValidator is a validator for the "sourced_id" field. It is called by the builders before save.
	SourcedIDValidator func(string) error
	// DefaultEmail holds the default value on creation for the "email" field.
	DefaultEmail string
	// DefaultGivenName holds the default value on creation for the "given_name" field.
	DefaultGivenName string
	// DefaultFamilyName holds the default value on creation for the "family_name" field.
	DefaultFamilyName string
)

// OrderOption defines the ordering options for the RosterStudent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// BySourcedID orders the results by the sourced_id field.
func BySourcedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcedID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByGivenName orders the results by the given_name field.
func ByGivenName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenName, opts...).ToFunc()
}

// ByFamilyName orders the results by the family_name field.
func ByFamilyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilyName, opts...).ToFunc()
}
