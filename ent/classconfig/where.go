// Code generated by ent, DO NOT EDIT.

package classconfig

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldID, id))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldClassID, v))
}

// ClassTitle applies equality check predicate on the "class_title" field. It's identical to ClassTitleEQ.
func ClassTitle(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldClassTitle, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCourseID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryTitle applies equality check predicate on the "category_title" field. It's identical to CategoryTitleEQ.
func CategoryTitle(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCategoryTitle, v))
}

// GradingPeriodID applies equality check predicate on the "grading_period_id" field. It's identical to GradingPeriodIDEQ.
func GradingPeriodID(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldGradingPeriodID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldActive, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldClassID, v))
}

// ClassTitleEQ applies the EQ predicate on the "class_title" field.
func ClassTitleEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldClassTitle, v))
}

// ClassTitleNEQ applies the NEQ predicate on the "class_title" field.
func ClassTitleNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldClassTitle, v))
}

// ClassTitleIn applies the In predicate on the "class_title" field.
func ClassTitleIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldClassTitle, vs...))
}

// ClassTitleNotIn applies the NotIn predicate on the "class_title" field.
func ClassTitleNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldClassTitle, vs...))
}

// ClassTitleGT applies the GT predicate on the "class_title" field.
func ClassTitleGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldClassTitle, v))
}

// ClassTitleGTE applies the GTE predicate on the "class_title" field.
func ClassTitleGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldClassTitle, v))
}

// ClassTitleLT applies the LT predicate on the "class_title" field.
func ClassTitleLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldClassTitle, v))
}

// ClassTitleLTE applies the LTE predicate on the "class_title" field.
func ClassTitleLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldClassTitle, v))
}

// ClassTitleContains applies the Contains predicate on the "class_title" field.
func ClassTitleContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldClassTitle, v))
}

// ClassTitleHasPrefix applies the HasPrefix predicate on the "class_title" field.
func ClassTitleHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldClassTitle, v))
}

// ClassTitleHasSuffix applies the HasSuffix predicate on the "class_title" field.
func ClassTitleHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldClassTitle, v))
}

// ClassTitleEqualFold applies the EqualFold predicate on the "class_title" field.
func ClassTitleEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldClassTitle, v))
}

// ClassTitleContainsFold applies the ContainsFold predicate on the "class_title" field.
func ClassTitleContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldClassTitle, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldCourseID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldCategoryID, v))
}

// CategoryTitleEQ applies the EQ predicate on the "category_title" field.
func CategoryTitleEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldCategoryTitle, v))
}

// CategoryTitleNEQ applies the NEQ predicate on the "category_title" field.
func CategoryTitleNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldCategoryTitle, v))
}

// CategoryTitleIn applies the In predicate on the "category_title" field.
func CategoryTitleIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldCategoryTitle, vs...))
}

// CategoryTitleNotIn applies the NotIn predicate on the "category_title" field.
func CategoryTitleNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldCategoryTitle, vs...))
}

// CategoryTitleGT applies the GT predicate on the "category_title" field.
func CategoryTitleGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldCategoryTitle, v))
}

// CategoryTitleGTE applies the GTE predicate on the "category_title" field.
func CategoryTitleGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldCategoryTitle, v))
}

// CategoryTitleLT applies the LT predicate on the "category_title" field.
func CategoryTitleLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldCategoryTitle, v))
}

// CategoryTitleLTE applies the LTE predicate on the "category_title" field.
func CategoryTitleLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldCategoryTitle, v))
}

// CategoryTitleContains applies the Contains predicate on the "category_title" field.
func CategoryTitleContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldCategoryTitle, v))
}

// CategoryTitleHasPrefix applies the HasPrefix predicate on the "category_title" field.
func CategoryTitleHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldCategoryTitle, v))
}

// CategoryTitleHasSuffix applies the HasSuffix predicate on the "category_title" field.
func CategoryTitleHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldCategoryTitle, v))
}

// CategoryTitleEqualFold applies the EqualFold predicate on the "category_title" field.
func CategoryTitleEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldCategoryTitle, v))
}

// CategoryTitleContainsFold applies the ContainsFold predicate on the "category_title" field.
func CategoryTitleContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldCategoryTitle, v))
}

// GradingPeriodIDEQ applies the EQ predicate on the "grading_period_id" field.
func GradingPeriodIDEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldGradingPeriodID, v))
}

// GradingPeriodIDNEQ applies the NEQ predicate on the "grading_period_id" field.
func GradingPeriodIDNEQ(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldGradingPeriodID, v))
}

// GradingPeriodIDIn applies the In predicate on the "grading_period_id" field.
func GradingPeriodIDIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldIn(FieldGradingPeriodID, vs...))
}

// GradingPeriodIDNotIn applies the NotIn predicate on the "grading_period_id" field.
func GradingPeriodIDNotIn(vs ...string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNotIn(FieldGradingPeriodID, vs...))
}

// GradingPeriodIDGT applies the GT predicate on the "grading_period_id" field.
func GradingPeriodIDGT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGT(FieldGradingPeriodID, v))
}

// GradingPeriodIDGTE applies the GTE predicate on the "grading_period_id" field.
func GradingPeriodIDGTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldGTE(FieldGradingPeriodID, v))
}

// GradingPeriodIDLT applies the LT predicate on the "grading_period_id" field.
func GradingPeriodIDLT(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLT(FieldGradingPeriodID, v))
}

// GradingPeriodIDLTE applies the LTE predicate on the "grading_period_id" field.
func GradingPeriodIDLTE(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldLTE(FieldGradingPeriodID, v))
}

// GradingPeriodIDContains applies the Contains predicate on the "grading_period_id" field.
func GradingPeriodIDContains(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContains(FieldGradingPeriodID, v))
}

// GradingPeriodIDHasPrefix applies the HasPrefix predicate on the "grading_period_id" field.
func GradingPeriodIDHasPrefix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasPrefix(FieldGradingPeriodID, v))
}

// GradingPeriodIDHasSuffix applies the HasSuffix predicate on the "grading_period_id" field.
func GradingPeriodIDHasSuffix(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldHasSuffix(FieldGradingPeriodID, v))
}

// GradingPeriodIDEqualFold applies the EqualFold predicate on the "grading_period_id" field.
func GradingPeriodIDEqualFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEqualFold(FieldGradingPeriodID, v))
}

// GradingPeriodIDContainsFold applies the ContainsFold predicate on the "grading_period_id" field.
func GradingPeriodIDContainsFold(v string) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldContainsFold(FieldGradingPeriodID, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ClassConfig {
	return predicate.ClassConfig(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClassConfig) predicate.ClassConfig {
	return predicate.ClassConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClassConfig) predicate.ClassConfig {
	return predicate.ClassConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClassConfig) predicate.ClassConfig {
	return predicate.ClassConfig(sql.NotPredicates(p))
}
