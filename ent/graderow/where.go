// Code generated by ent, DO NOT EDIT.

package graderow

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLTE(FieldID, id))
}

// StudentEmail applies equality check predicate on the "student_email" field. It's identical to StudentEmailEQ.
func StudentEmail(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldStudentEmail, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldUnit, v))
}

// SkillNumber applies equality check predicate on the "skill_number" field. It's identical to SkillNumberEQ.
func SkillNumber(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldSkillNumber, v))
}

// Descriptor applies equality check predicate on the "descriptor" field. It's identical to DescriptorEQ.
func Descriptor(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldDescriptor, v))
}

// StudentEmailEQ applies the EQ predicate on the "student_email" field.
func StudentEmailEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldStudentEmail, v))
}

// StudentEmailNEQ applies the NEQ predicate on the "student_email" field.
func StudentEmailNEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNEQ(FieldStudentEmail, v))
}

// StudentEmailIn applies the In predicate on the "student_email" field.
func StudentEmailIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldIn(FieldStudentEmail, vs...))
}

// StudentEmailNotIn applies the NotIn predicate on the "student_email" field.
func StudentEmailNotIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNotIn(FieldStudentEmail, vs...))
}

// StudentEmailGT applies the GT predicate on the "student_email" field.
func StudentEmailGT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGT(FieldStudentEmail, v))
}

// StudentEmailGTE applies the GTE predicate on the "student_email" field.
func StudentEmailGTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGTE(FieldStudentEmail, v))
}

// StudentEmailLT applies the LT predicate on the "student_email" field.
func StudentEmailLT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLT(FieldStudentEmail, v))
}

// StudentEmailLTE applies the LTE predicate on the "student_email" field.
func StudentEmailLTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLTE(FieldStudentEmail, v))
}

// StudentEmailContains applies the Contains predicate on the "student_email" field.
func StudentEmailContains(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContains(FieldStudentEmail, v))
}

// StudentEmailHasPrefix applies the HasPrefix predicate on the "student_email" field.
func StudentEmailHasPrefix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasPrefix(FieldStudentEmail, v))
}

// StudentEmailHasSuffix applies the HasSuffix predicate on the "student_email" field.
func StudentEmailHasSuffix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasSuffix(FieldStudentEmail, v))
}

// StudentEmailEqualFold applies the EqualFold predicate on the "student_email" field.
func StudentEmailEqualFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEqualFold(FieldStudentEmail, v))
}

// StudentEmailContainsFold applies the ContainsFold predicate on the "student_email" field.
func StudentEmailContainsFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContainsFold(FieldStudentEmail, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContainsFold(FieldUnit, v))
}

// SkillNumberEQ applies the EQ predicate on the "skill_number" field.
func SkillNumberEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldSkillNumber, v))
}

// SkillNumberNEQ applies the NEQ predicate on the "skill_number" field.
func SkillNumberNEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNEQ(FieldSkillNumber, v))
}

// SkillNumberIn applies the In predicate on the "skill_number" field.
func SkillNumberIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldIn(FieldSkillNumber, vs...))
}

// SkillNumberNotIn applies the NotIn predicate on the "skill_number" field.
func SkillNumberNotIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNotIn(FieldSkillNumber, vs...))
}

// SkillNumberGT applies the GT predicate on the "skill_number" field.
func SkillNumberGT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGT(FieldSkillNumber, v))
}

// SkillNumberGTE applies the GTE predicate on the "skill_number" field.
func SkillNumberGTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGTE(FieldSkillNumber, v))
}

// SkillNumberLT applies the LT predicate on the "skill_number" field.
func SkillNumberLT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLT(FieldSkillNumber, v))
}

// SkillNumberLTE applies the LTE predicate on the "skill_number" field.
func SkillNumberLTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLTE(FieldSkillNumber, v))
}

// SkillNumberContains applies the Contains predicate on the "skill_number" field.
func SkillNumberContains(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContains(FieldSkillNumber, v))
}

// SkillNumberHasPrefix applies the HasPrefix predicate on the "skill_number" field.
func SkillNumberHasPrefix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasPrefix(FieldSkillNumber, v))
}

// SkillNumberHasSuffix applies the HasSuffix predicate on the "skill_number" field.
func SkillNumberHasSuffix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasSuffix(FieldSkillNumber, v))
}

// SkillNumberEqualFold applies the EqualFold predicate on the "skill_number" field.
func SkillNumberEqualFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEqualFold(FieldSkillNumber, v))
}

// SkillNumberContainsFold applies the ContainsFold predicate on the "skill_number" field.
func SkillNumberContainsFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContainsFold(FieldSkillNumber, v))
}

// DescriptorEQ applies the EQ predicate on the "descriptor" field.
func DescriptorEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEQ(FieldDescriptor, v))
}

// DescriptorNEQ applies the NEQ predicate on the "descriptor" field.
func DescriptorNEQ(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNEQ(FieldDescriptor, v))
}

// DescriptorIn applies the In predicate on the "descriptor" field.
func DescriptorIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldIn(FieldDescriptor, vs...))
}

// DescriptorNotIn applies the NotIn predicate on the "descriptor" field.
func DescriptorNotIn(vs ...string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldNotIn(FieldDescriptor, vs...))
}

// DescriptorGT applies the GT predicate on the "descriptor" field.
func DescriptorGT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGT(FieldDescriptor, v))
}

// DescriptorGTE applies the GTE predicate on the "descriptor" field.
func DescriptorGTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldGTE(FieldDescriptor, v))
}

// DescriptorLT applies the LT predicate on the "descriptor" field.
func DescriptorLT(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLT(FieldDescriptor, v))
}

// DescriptorLTE applies the LTE predicate on the "descriptor" field.
func DescriptorLTE(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldLTE(FieldDescriptor, v))
}

// DescriptorContains applies the Contains predicate on the "descriptor" field.
func DescriptorContains(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContains(FieldDescriptor, v))
}

// DescriptorHasPrefix applies the HasPrefix predicate on the "descriptor" field.
func DescriptorHasPrefix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasPrefix(FieldDescriptor, v))
}

// DescriptorHasSuffix applies the HasSuffix predicate on the "descriptor" field.
func DescriptorHasSuffix(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldHasSuffix(FieldDescriptor, v))
}

// DescriptorEqualFold applies the EqualFold predicate on the "descriptor" field.
func DescriptorEqualFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldEqualFold(FieldDescriptor, v))
}

// DescriptorContainsFold applies the ContainsFold predicate on the "descriptor" field.
func DescriptorContainsFold(v string) predicate.GradeRow {
	return predicate.GradeRow(sql.FieldContainsFold(FieldDescriptor, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeRow) predicate.GradeRow {
	return predicate.GradeRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeRow) predicate.GradeRow {
	return predicate.GradeRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeRow) predicate.GradeRow {
	return predicate.GradeRow(sql.NotPredicates(p))
}
