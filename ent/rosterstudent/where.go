// Code generated by ent, DO NOT EDIT.

package rosterstudent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldID, id))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldClassID, v))
}

// SourcedID applies equality check predicate on the "sourced_id" field. It's identical to SourcedIDEQ.
func SourcedID(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldSourcedID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldEmail, v))
}

// GivenName applies equality check predicate on the "given_name" field. It's identical to GivenNameEQ.
func GivenName(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldGivenName, v))
}

// FamilyName applies equality check predicate on the "family_name" field. It's identical to FamilyNameEQ.
func FamilyName(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldFamilyName, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContainsFold(FieldClassID, v))
}

// SourcedIDEQ applies the EQ predicate on the "sourced_id" field.
func SourcedIDEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldSourcedID, v))
}

// SourcedIDNEQ applies the NEQ predicate on the "sourced_id" field.
func SourcedIDNEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldSourcedID, v))
}

// SourcedIDIn applies the In predicate on the "sourced_id" field.
func SourcedIDIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldSourcedID, vs...))
}

// SourcedIDNotIn applies the NotIn predicate on the "sourced_id" field.
func SourcedIDNotIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldSourcedID, vs...))
}

// SourcedIDGT applies the GT predicate on the "sourced_id" field.
func SourcedIDGT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldSourcedID, v))
}

// SourcedIDGTE applies the GTE predicate on the "sourced_id" field.
func SourcedIDGTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldSourcedID, v))
}

// SourcedIDLT applies the LT predicate on the "sourced_id" field.
func SourcedIDLT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldSourcedID, v))
}

// SourcedIDLTE applies the LTE predicate on the "sourced_id" field.
func SourcedIDLTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldSourcedID, v))
}

// SourcedIDContains applies the Contains predicate on the "sourced_id" field.
func SourcedIDContains(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContains(FieldSourcedID, v))
}

// SourcedIDHasPrefix applies the HasPrefix predicate on the "sourced_id" field.
func SourcedIDHasPrefix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasPrefix(FieldSourcedID, v))
}

// SourcedIDHasSuffix applies the HasSuffix predicate on the "sourced_id" field.
func SourcedIDHasSuffix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasSuffix(FieldSourcedID, v))
}

// SourcedIDEqualFold applies the EqualFold predicate on the "sourced_id" field.
func SourcedIDEqualFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEqualFold(FieldSourcedID, v))
}

// SourcedIDContainsFold applies the ContainsFold predicate on the "sourced_id" field.
func SourcedIDContainsFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContainsFold(FieldSourcedID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContainsFold(FieldEmail, v))
}

// GivenNameEQ applies the EQ predicate on the "given_name" field.
func GivenNameEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldGivenName, v))
}

// GivenNameNEQ applies the NEQ predicate on the "given_name" field.
func GivenNameNEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldGivenName, v))
}

// GivenNameIn applies the In predicate on the "given_name" field.
func GivenNameIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldGivenName, vs...))
}

// GivenNameNotIn applies the NotIn predicate on the "given_name" field.
func GivenNameNotIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldGivenName, vs...))
}

// GivenNameGT applies the GT predicate on the "given_name" field.
func GivenNameGT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldGivenName, v))
}

// GivenNameGTE applies the GTE predicate on the "given_name" field.
func GivenNameGTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldGivenName, v))
}

// GivenNameLT applies the LT predicate on the "given_name" field.
func GivenNameLT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldGivenName, v))
}

// GivenNameLTE applies the LTE predicate on the "given_name" field.
func GivenNameLTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldGivenName, v))
}

// GivenNameContains applies the Contains predicate on the "given_name" field.
func GivenNameContains(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContains(FieldGivenName, v))
}

// GivenNameHasPrefix applies the HasPrefix predicate on the "given_name" field.
func GivenNameHasPrefix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasPrefix(FieldGivenName, v))
}

// GivenNameHasSuffix applies the HasSuffix predicate on the "given_name" field.
func GivenNameHasSuffix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasSuffix(FieldGivenName, v))
}

// GivenNameEqualFold applies the EqualFold predicate on the "given_name" field.
func GivenNameEqualFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEqualFold(FieldGivenName, v))
}

// GivenNameContainsFold applies the ContainsFold predicate on the "given_name" field.
func GivenNameContainsFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContainsFold(FieldGivenName, v))
}

// FamilyNameEQ applies the EQ predicate on the "family_name" field.
func FamilyNameEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEQ(FieldFamilyName, v))
}

// FamilyNameNEQ applies the NEQ predicate on the "family_name" field.
func FamilyNameNEQ(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNEQ(FieldFamilyName, v))
}

// FamilyNameIn applies the In predicate on the "family_name" field.
func FamilyNameIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldIn(FieldFamilyName, vs...))
}

// FamilyNameNotIn applies the NotIn predicate on the "family_name" field.
func FamilyNameNotIn(vs ...string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldNotIn(FieldFamilyName, vs...))
}

// FamilyNameGT applies the GT predicate on the "family_name" field.
func FamilyNameGT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGT(FieldFamilyName, v))
}

// FamilyNameGTE applies the GTE predicate on the "family_name" field.
func FamilyNameGTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldGTE(FieldFamilyName, v))
}

// FamilyNameLT applies the LT predicate on the "family_name" field.
func FamilyNameLT(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLT(FieldFamilyName, v))
}

// FamilyNameLTE applies the LTE predicate on the "family_name" field.
func FamilyNameLTE(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldLTE(FieldFamilyName, v))
}

// FamilyNameContains applies the Contains predicate on the "family_name" field.
func FamilyNameContains(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContains(FieldFamilyName, v))
}

// FamilyNameHasPrefix applies the HasPrefix predicate on the "family_name" field.
func FamilyNameHasPrefix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasPrefix(FieldFamilyName, v))
}

// FamilyNameHasSuffix applies the HasSuffix predicate on the "family_name" field.
func FamilyNameHasSuffix(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldHasSuffix(FieldFamilyName, v))
}

// FamilyNameEqualFold applies the EqualFold predicate on the "family_name" field.
func FamilyNameEqualFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldEqualFold(FieldFamilyName, v))
}

// FamilyNameContainsFold applies the ContainsFold predicate on the "family_name" field.
func FamilyNameContainsFold(v string) predicate.RosterStudent {
	return predicate.RosterStudent(sql.FieldContainsFold(FieldFamilyName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RosterStudent) predicate.RosterStudent {
	return predicate.RosterStudent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RosterStudent) predicate.RosterStudent {
	return predicate.RosterStudent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RosterStudent) predicate.RosterStudent {
	return predicate.RosterStudent(sql.NotPredicates(p))
}
