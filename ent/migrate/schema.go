// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APILogEventsColumns holds the columns for the "api_log_events" table.
	APILogEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// APILogEventsTable holds the schema information for the "api_log_events" table.
	APILogEventsTable = &schema.Table{
		Name:       "api_log_events",
		Columns:    APILogEventsColumns,
		PrimaryKey: []*schema.Column{APILogEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apilogevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{APILogEventsColumns[1]},
			},
			{
				Name:    "apilogevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APILogEventsColumns[2]},
			},
			{
				Name:    "apilogevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{APILogEventsColumns[3]},
			},
			{
				Name:    "apilogevent_endpoint",
				Unique:  false,
				Columns: []*schema.Column{APILogEventsColumns[5]},
			},
			{
				Name:    "apilogevent_success",
				Unique:  false,
				Columns: []*schema.Column{APILogEventsColumns[8]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_id", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "min_value", Type: field.TypeFloat64, Default: 0},
		{Name: "max_value", Type: field.TypeFloat64, Default: 4},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_class_id_unit_skill",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[1], AssignmentsColumns[2], AssignmentsColumns[3]},
			},
			{
				Name:    "assignment_external_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[4]},
			},
		},
	}
	// ClassConfigsColumns holds the columns for the "class_configs" table.
	ClassConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_id", Type: field.TypeString, Unique: true},
		{Name: "class_title", Type: field.TypeString, Default: ""},
		{Name: "course_id", Type: field.TypeString, Default: ""},
		{Name: "category_id", Type: field.TypeString, Default: ""},
		{Name: "category_title", Type: field.TypeString, Default: ""},
		{Name: "grading_period_id", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ClassConfigsTable holds the schema information for the "class_configs" table.
	ClassConfigsTable = &schema.Table{
		Name:       "class_configs",
		Columns:    ClassConfigsColumns,
		PrimaryKey: []*schema.Column{ClassConfigsColumns[0]},
	}
	// GradeRowsColumns holds the columns for the "grade_rows" table.
	GradeRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_email", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString},
		{Name: "skill_number", Type: field.TypeString},
		{Name: "descriptor", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeJSON},
	}
	// GradeRowsTable holds the schema information for the "grade_rows" table.
	GradeRowsTable = &schema.Table{
		Name:       "grade_rows",
		Columns:    GradeRowsColumns,
		PrimaryKey: []*schema.Column{GradeRowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graderow_student_email_unit_skill_number_descriptor",
				Unique:  true,
				Columns: []*schema.Column{GradeRowsColumns[1], GradeRowsColumns[2], GradeRowsColumns[3], GradeRowsColumns[4]},
			},
			{
				Name:    "graderow_student_email",
				Unique:  false,
				Columns: []*schema.Column{GradeRowsColumns[1]},
			},
			{
				Name:    "graderow_unit",
				Unique:  false,
				Columns: []*schema.Column{GradeRowsColumns[2]},
			},
		},
	}
	// LevelsColumns holds the columns for the "levels" table.
	LevelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "short_code", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt, Unique: true},
		{Name: "required_streak", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "default_attempts", Type: field.TypeInt, Default: 5},
	}
	// LevelsTable holds the schema information for the "levels" table.
	LevelsTable = &schema.Table{
		Name:       "levels",
		Columns:    LevelsColumns,
		PrimaryKey: []*schema.Column{LevelsColumns[0]},
	}
	// RosterStudentsColumns holds the columns for the "roster_students" table.
	RosterStudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_id", Type: field.TypeString},
		{Name: "sourced_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "given_name", Type: field.TypeString, Default: ""},
		{Name: "family_name", Type: field.TypeString, Default: ""},
	}
	// RosterStudentsTable holds the schema information for the "roster_students" table.
	RosterStudentsTable = &schema.Table{
		Name:       "roster_students",
		Columns:    RosterStudentsColumns,
		PrimaryKey: []*schema.Column{RosterStudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rosterstudent_class_id_sourced_id",
				Unique:  true,
				Columns: []*schema.Column{RosterStudentsColumns[1], RosterStudentsColumns[2]},
			},
			{
				Name:    "rosterstudent_class_id",
				Unique:  false,
				Columns: []*schema.Column{RosterStudentsColumns[1]},
			},
			{
				Name:    "rosterstudent_email",
				Unique:  false,
				Columns: []*schema.Column{RosterStudentsColumns[3]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Default: ""},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit", Type: field.TypeString},
		{Name: "number", Type: field.TypeString},
		{Name: "descriptor", Type: field.TypeString},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_unit_number_descriptor",
				Unique:  true,
				Columns: []*schema.Column{SkillsColumns[1], SkillsColumns[2], SkillsColumns[3]},
			},
			{
				Name:    "skill_unit",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[1]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString, Default: ""},
		{Name: "last_name", Type: field.TypeString, Default: ""},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
	}
	// SymbolsColumns holds the columns for the "symbols" table.
	SymbolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "character", Type: field.TypeString, Unique: true},
		{Name: "mastery", Type: field.TypeBool},
		{Name: "glyph", Type: field.TypeString, Default: ""},
	}
	// SymbolsTable holds the schema information for the "symbols" table.
	SymbolsTable = &schema.Table{
		Name:       "symbols",
		Columns:    SymbolsColumns,
		PrimaryKey: []*schema.Column{SymbolsColumns[0]},
	}
	// SyncedGradesColumns holds the columns for the "synced_grades" table.
	SyncedGradesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString, Default: ""},
		{Name: "synced_at", Type: field.TypeTime},
	}
	// SyncedGradesTable holds the schema information for the "synced_grades" table.
	SyncedGradesTable = &schema.Table{
		Name:       "synced_grades",
		Columns:    SyncedGradesColumns,
		PrimaryKey: []*schema.Column{SyncedGradesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncedgrade_student_id_assignment_id",
				Unique:  true,
				Columns: []*schema.Column{SyncedGradesColumns[1], SyncedGradesColumns[2]},
			},
			{
				Name:    "syncedgrade_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{SyncedGradesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APILogEventsTable,
		AssignmentsTable,
		ClassConfigsTable,
		GradeRowsTable,
		LevelsTable,
		RosterStudentsTable,
		SettingsTable,
		SkillsTable,
		StudentsTable,
		SymbolsTable,
		SyncedGradesTable,
	}
)

func init() {
}
