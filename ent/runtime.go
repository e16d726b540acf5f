// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/thinkle/sbgsync/ent/apilogevent"
	"github.com/thinkle/sbgsync/ent/assignment"
	"github.com/thinkle/sbgsync/ent/classconfig"
	"github.com/thinkle/sbgsync/ent/graderow"
	"github.com/thinkle/sbgsync/ent/level"
	"github.com/thinkle/sbgsync/ent/rosterstudent"
	"github.com/thinkle/sbgsync/ent/schema"
	"github.com/thinkle/sbgsync/ent/setting"
	"github.com/thinkle/sbgsync/ent/skill"
	"github.com/thinkle/sbgsync/ent/student"
	"github.com/thinkle/sbgsync/ent/symbol"
	"github.com/thinkle/sbgsync/ent/syncedgrade"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apilogeventMixin := schema.APILogEvent{}.Mixin()
	apilogeventMixinFields0 := apilogeventMixin[0].Fields()
	_ = apilogeventMixinFields0
	apilogeventFields := schema.APILogEvent{}.Fields()
	_ = apilogeventFields
	// apilogeventDescTimestamp is the schema descriptor for timestamp field.
	apilogeventDescTimestamp := apilogeventMixinFields0[1].Descriptor()
	// apilogevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apilogevent.DefaultTimestamp = apilogeventDescTimestamp.Default.(func() time.Time)
	// apilogeventDescRunID is the schema descriptor for run_id field.
	apilogeventDescRunID := apilogeventFields[0].Descriptor()
	// apilogevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	apilogevent.RunIDValidator = apilogeventDescRunID.Validators[0].(func(string) error)
	// apilogeventDescMethod is the schema descriptor for method field.
	apilogeventDescMethod := apilogeventFields[1].Descriptor()
	// apilogevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apilogevent.MethodValidator = apilogeventDescMethod.Validators[0].(func(string) error)
	// apilogeventDescEndpoint is the schema descriptor for endpoint field.
	apilogeventDescEndpoint := apilogeventFields[2].Descriptor()
	// apilogevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	apilogevent.EndpointValidator = apilogeventDescEndpoint.Validators[0].(func(string) error)
	// apilogeventDescStatus is the schema descriptor for status field.
	apilogeventDescStatus := apilogeventFields[3].Descriptor()
	// apilogevent.DefaultStatus holds the default value on creation for the status field.
	apilogevent.DefaultStatus = apilogeventDescStatus.Default.(int)
	// apilogeventDescLatencyMs is the schema descriptor for latency_ms field.
	apilogeventDescLatencyMs := apilogeventFields[4].Descriptor()
	// apilogevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apilogevent.DefaultLatencyMs = apilogeventDescLatencyMs.Default.(int64)
	// apilogeventDescErrorMessage is the schema descriptor for error_message field.
	apilogeventDescErrorMessage := apilogeventFields[6].Descriptor()
	// apilogevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apilogevent.DefaultErrorMessage = apilogeventDescErrorMessage.Default.(string)
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescClassID is the schema descriptor for class_id field.
	assignmentDescClassID := assignmentFields[0].Descriptor()
	// assignment.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	assignment.ClassIDValidator = assignmentDescClassID.Validators[0].(func(string) error)
	// assignmentDescUnit is the schema descriptor for unit field.
	assignmentDescUnit := assignmentFields[1].Descriptor()
	// assignment.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	assignment.UnitValidator = assignmentDescUnit.Validators[0].(func(string) error)
	// assignmentDescSkill is the schema descriptor for skill field.
	assignmentDescSkill := assignmentFields[2].Descriptor()
	// assignment.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	assignment.SkillValidator = assignmentDescSkill.Validators[0].(func(string) error)
	// assignmentDescExternalID is the schema descriptor for external_id field.
	assignmentDescExternalID := assignmentFields[3].Descriptor()
	// assignment.DefaultExternalID holds the default value on creation for the external_id field.
	assignment.DefaultExternalID = assignmentDescExternalID.Default.(string)
	// assignmentDescTitle is the schema descriptor for title field.
	assignmentDescTitle := assignmentFields[4].Descriptor()
	// assignment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assignment.TitleValidator = assignmentDescTitle.Validators[0].(func(string) error)
	// assignmentDescCategory is the schema descriptor for category field.
	assignmentDescCategory := assignmentFields[5].Descriptor()
	// assignment.DefaultCategory holds the default value on creation for the category field.
	assignment.DefaultCategory = assignmentDescCategory.Default.(string)
	// assignmentDescMinValue is the schema descriptor for min_value field.
	assignmentDescMinValue := assignmentFields[7].Descriptor()
	// assignment.DefaultMinValue holds the default value on creation for the min_value field.
	assignment.DefaultMinValue = assignmentDescMinValue.Default.(float64)
	// assignmentDescMaxValue is the schema descriptor for max_value field.
	assignmentDescMaxValue := assignmentFields[8].Descriptor()
	// assignment.DefaultMaxValue holds the default value on creation for the max_value field.
	assignment.DefaultMaxValue = assignmentDescMaxValue.Default.(float64)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[9].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	classconfigFields := schema.ClassConfig{}.Fields()
	_ = classconfigFields
	// classconfigDescClassID is the schema descriptor for class_id field.
	classconfigDescClassID := classconfigFields[0].Descriptor()
	// classconfig.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	classconfig.ClassIDValidator = classconfigDescClassID.Validators[0].(func(string) error)
	// classconfigDescClassTitle is the schema descriptor for class_title field.
	classconfigDescClassTitle := classconfigFields[1].Descriptor()
	// classconfig.DefaultClassTitle holds the default value on creation for the class_title field.
	classconfig.DefaultClassTitle = classconfigDescClassTitle.Default.(string)
	// classconfigDescCourseID is the schema descriptor for course_id field.
	classconfigDescCourseID := classconfigFields[2].Descriptor()
	// classconfig.DefaultCourseID holds the default value on creation for the course_id field.
	classconfig.DefaultCourseID = classconfigDescCourseID.Default.(string)
	// classconfigDescCategoryID is the schema descriptor for category_id field.
	classconfigDescCategoryID := classconfigFields[3].Descriptor()
	// classconfig.DefaultCategoryID holds the default value on creation for the category_id field.
	classconfig.DefaultCategoryID = classconfigDescCategoryID.Default.(string)
	// classconfigDescCategoryTitle is the schema descriptor for category_title field.
	classconfigDescCategoryTitle := classconfigFields[4].Descriptor()
	// classconfig.DefaultCategoryTitle holds the default value on creation for the category_title field.
	classconfig.DefaultCategoryTitle = classconfigDescCategoryTitle.Default.(string)
	// classconfigDescGradingPeriodID is the schema descriptor for grading_period_id field.
	classconfigDescGradingPeriodID := classconfigFields[5].Descriptor()
	// classconfig.DefaultGradingPeriodID holds the default value on creation for the grading_period_id field.
	classconfig.DefaultGradingPeriodID = classconfigDescGradingPeriodID.Default.(string)
	// classconfigDescActive is the schema descriptor for active field.
	classconfigDescActive := classconfigFields[6].Descriptor()
	// classconfig.DefaultActive holds the default value on creation for the active field.
	classconfig.DefaultActive = classconfigDescActive.Default.(bool)
	graderowFields := schema.GradeRow{}.Fields()
	_ = graderowFields
	// graderowDescStudentEmail is the schema descriptor for student_email field.
	graderowDescStudentEmail := graderowFields[0].Descriptor()
	// graderow.StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	graderow.StudentEmailValidator = graderowDescStudentEmail.Validators[0].(func(string) error)
	// graderowDescUnit is the schema descriptor for unit field.
	graderowDescUnit := graderowFields[1].Descriptor()
	// graderow.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	graderow.UnitValidator = graderowDescUnit.Validators[0].(func(string) error)
	// graderowDescSkillNumber is the schema descriptor for skill_number field.
	graderowDescSkillNumber := graderowFields[2].Descriptor()
	// graderow.SkillNumberValidator is a validator for the "skill_number" field. It is called by the builders before save.
	graderow.SkillNumberValidator = graderowDescSkillNumber.Validators[0].(func(string) error)
	// graderowDescDescriptor is the schema descriptor for descriptor field.
	graderowDescDescriptor := graderowFields[3].Descriptor()
	// graderow.DescriptorValidator is a validator for the "descriptor" field. It is called by the builders before save.
	graderow.DescriptorValidator = graderowDescDescriptor.Validators[0].(func(string) error)
	levelFields := schema.Level{}.Fields()
	_ = levelFields
	// levelDescName is the schema descriptor for name field.
	levelDescName := levelFields[0].Descriptor()
	// level.NameValidator is a validator for the "name" field. It is called by the builders before save.
	level.NameValidator = levelDescName.Validators[0].(func(string) error)
	// levelDescShortCode is the schema descriptor for short_code field.
	levelDescShortCode := levelFields[1].Descriptor()
	// level.ShortCodeValidator is a validator for the "short_code" field. It is called by the builders before save.
	level.ShortCodeValidator = levelDescShortCode.Validators[0].(func(string) error)
	// levelDescRequiredStreak is the schema descriptor for required_streak field.
	levelDescRequiredStreak := levelFields[3].Descriptor()
	// level.RequiredStreakValidator is a validator for the "required_streak" field. It is called by the builders before save.
	level.RequiredStreakValidator = levelDescRequiredStreak.Validators[0].(func(int) error)
	// levelDescDefaultAttempts is the schema descriptor for default_attempts field.
	levelDescDefaultAttempts := levelFields[5].Descriptor()
	// level.DefaultDefaultAttempts holds the default value on creation for the default_attempts field.
	level.DefaultDefaultAttempts = levelDescDefaultAttempts.Default.(int)
	rosterstudentFields := schema.RosterStudent{}.Fields()
	_ = rosterstudentFields
	// rosterstudentDescClassID is the schema descriptor for class_id field.
	rosterstudentDescClassID := rosterstudentFields[0].Descriptor()
	// rosterstudent.ClassIDValidator is a validator for the "class_id" field. It is called by the builders before save.
	rosterstudent.ClassIDValidator = rosterstudentDescClassID.Validators[0].(func(string) error)
	// rosterstudentDescSourcedID is the schema descriptor for sourced_id field.
	rosterstudentDescSourcedID := rosterstudentFields[1].Descriptor()
	// rosterstudent.SourcedIDValidator is a validator for the "sourced_id" field. It is called by the builders before save.
	rosterstudent.SourcedIDValidator = rosterstudentDescSourcedID.Validators[0].(func(string) error)
	// rosterstudentDescEmail is the schema descriptor for email field.
	rosterstudentDescEmail := rosterstudentFields[2].Descriptor()
	// rosterstudent.DefaultEmail holds the default value on creation for the email field.
	rosterstudent.DefaultEmail = rosterstudentDescEmail.Default.(string)
	// rosterstudentDescGivenName is the schema descriptor for given_name field.
	rosterstudentDescGivenName := rosterstudentFields[3].Descriptor()
	// rosterstudent.DefaultGivenName holds the default value on creation for the given_name field.
	rosterstudent.DefaultGivenName = rosterstudentDescGivenName.Default.(string)
	// rosterstudentDescFamilyName is the schema descriptor for family_name field.
	rosterstudentDescFamilyName := rosterstudentFields[4].Descriptor()
	// rosterstudent.DefaultFamilyName holds the default value on creation for the family_name field.
	rosterstudent.DefaultFamilyName = rosterstudentDescFamilyName.Default.(string)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.DefaultValue holds the default value on creation for the value field.
	setting.DefaultValue = settingDescValue.Default.(string)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescUnit is the schema descriptor for unit field.
	skillDescUnit := skillFields[0].Descriptor()
	// skill.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	skill.UnitValidator = skillDescUnit.Validators[0].(func(string) error)
	// skillDescNumber is the schema descriptor for number field.
	skillDescNumber := skillFields[1].Descriptor()
	// skill.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	skill.NumberValidator = skillDescNumber.Validators[0].(func(string) error)
	// skillDescDescriptor is the schema descriptor for descriptor field.
	skillDescDescriptor := skillFields[2].Descriptor()
	// skill.DescriptorValidator is a validator for the "descriptor" field. It is called by the builders before save.
	skill.DescriptorValidator = skillDescDescriptor.Validators[0].(func(string) error)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescEmail is the schema descriptor for email field.
	studentDescEmail := studentFields[0].Descriptor()
	// student.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	student.EmailValidator = studentDescEmail.Validators[0].(func(string) error)
	// studentDescFirstName is the schema descriptor for first_name field.
	studentDescFirstName := studentFields[1].Descriptor()
	// student.DefaultFirstName holds the default value on creation for the first_name field.
	student.DefaultFirstName = studentDescFirstName.Default.(string)
	// studentDescLastName is the schema descriptor for last_name field.
	studentDescLastName := studentFields[2].Descriptor()
	// student.DefaultLastName holds the default value on creation for the last_name field.
	student.DefaultLastName = studentDescLastName.Default.(string)
	symbolFields := schema.Symbol{}.Fields()
	_ = symbolFields
	// symbolDescCharacter is the schema descriptor for character field.
	symbolDescCharacter := symbolFields[0].Descriptor()
	// symbol.CharacterValidator is a validator for the "character" field. It is called by the builders before save.
	symbol.CharacterValidator = symbolDescCharacter.Validators[0].(func(string) error)
	// symbolDescGlyph is the schema descriptor for glyph field.
	symbolDescGlyph := symbolFields[2].Descriptor()
	// symbol.DefaultGlyph holds the default value on creation for the glyph field.
	symbol.DefaultGlyph = symbolDescGlyph.Default.(string)
	syncedgradeFields := schema.SyncedGrade{}.Fields()
	_ = syncedgradeFields
	// syncedgradeDescStudentID is the schema descriptor for student_id field.
	syncedgradeDescStudentID := syncedgradeFields[0].Descriptor()
	// syncedgrade.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	syncedgrade.StudentIDValidator = syncedgradeDescStudentID.Validators[0].(func(string) error)
	// syncedgradeDescAssignmentID is the schema descriptor for assignment_id field.
	syncedgradeDescAssignmentID := syncedgradeFields[1].Descriptor()
	// syncedgrade.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	syncedgrade.AssignmentIDValidator = syncedgradeDescAssignmentID.Validators[0].(func(string) error)
	// syncedgradeDescScore is the schema descriptor for score field.
	syncedgradeDescScore := syncedgradeFields[2].Descriptor()
	// syncedgrade.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	syncedgrade.ScoreValidator = syncedgradeDescScore.Validators[0].(func(string) error)
	// syncedgradeDescComment is the schema descriptor for comment field.
	syncedgradeDescComment := syncedgradeFields[3].Descriptor()
	// syncedgrade.DefaultComment holds the default value on creation for the comment field.
	syncedgrade.DefaultComment = syncedgradeDescComment.Default.(string)
	// syncedgradeDescSyncedAt is the schema descriptor for synced_at field.
	syncedgradeDescSyncedAt := syncedgradeFields[4].Descriptor()
	// syncedgrade.DefaultSyncedAt holds the default value on creation for the synced_at field.
	syncedgrade.DefaultSyncedAt = syncedgradeDescSyncedAt.Default.(func() time.Time)
}
