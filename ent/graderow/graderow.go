// Code generated by ent, DO NOT EDIT.

package graderow

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graderow type in the database.
	Label = "grade_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentEmail holds the string denoting the student_email field in the database.
	FieldStudentEmail = "student_email"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldSkillNumber holds the string denoting the skill_number field in the database.
	FieldSkillNumber = "skill_number"
	// FieldDescriptor holds the string denoting the descriptor field in the database.
	FieldDescriptor = "descriptor"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// Table holds the table name of the graderow in the database.
	Table = "grade_rows"
)

// Columns holds all SQL columns for graderow fields.
var Columns = []string{
	FieldID,
	FieldStudentEmail,
	FieldUnit,
	FieldSkillNumber,
	FieldDescriptor,
	FieldAttempts,
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
	// StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	StudentEmailValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
	// SkillNumberValidator is a validator for the "skill_number" field. It is called by the builders before save.
	SkillNumberValidator func(string) error
	// DescriptorValidator is a validator for the "descriptor" field. It is called by the builders before save.
	DescriptorValidator func(string) error
)

// OrderOption defines the ordering options for the GradeRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentEmail orders the results by the student_email field.
func ByStudentEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentEmail, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// BySkillNumber orders the results by the skill_number field.
func BySkillNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillNumber, opts...).ToFunc()
}

// ByDescriptor orders the results by the descriptor field.
func ByDescriptor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptor, opts...).ToFunc()
}
