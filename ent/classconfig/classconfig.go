// Code generated by ent, DO NOT EDIT.

package classconfig

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the classconfig type in the database.
	Label = "class_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldClassTitle holds the string denoting the class_title field in the database.
	FieldClassTitle = "class_title"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldCategoryTitle holds the string denoting the category_title field in the database.
	FieldCategoryTitle = "category_title"
	// FieldGradingPeriodID holds the string denoting the grading_period_id field in the database.
	FieldGradingPeriodID = "grading_period_id"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the classconfig in the database.
	Table = "class_configs"
)

// Columns holds all SQL columns for classconfig fields.
var Columns = []string{
	FieldID,
	FieldClassID,
	FieldClassTitle,
	FieldCourseID,
	FieldCategoryID,
	FieldCategoryTitle,
	FieldGradingPeriodID,
	FieldActive,
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
	// DefaultClassTitle holds the default value on creation for the "class_title" field.
	DefaultClassTitle string
	// DefaultCourseID holds the default value on creation for the "course_id" field.
	DefaultCourseID string
	// DefaultCategoryID holds the default value on creation for the "category_id" field.
	DefaultCategoryID string
	// DefaultCategoryTitle holds the default value on creation for the "category_title" field.
	DefaultCategoryTitle string
	// DefaultGradingPeriodID holds the default value on creation for the "grading_period_id" field.
	DefaultGradingPeriodID string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// OrderOption defines the ordering options for the ClassConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// ByClassTitle orders the results by the class_title field.
func ByClassTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassTitle, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByCategoryTitle orders the results by the category_title field.
func ByCategoryTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryTitle, opts...).ToFunc()
}

// ByGradingPeriodID orders the results by the grading_period_id field.
func ByGradingPeriodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradingPeriodID, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
