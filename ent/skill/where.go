// Code generated by ent, DO NOT EDIT.

package skill

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldID, id))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUnit, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldNumber, v))
}

// Descriptor applies equality check predicate on the "descriptor" field. It's identical to DescriptorEQ.
func Descriptor(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDescriptor, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldUnit, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldNumber, v))
}

// DescriptorEQ applies the EQ predicate on the "descriptor" field.
func DescriptorEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEQ(FieldDescriptor, v))
}

// DescriptorNEQ applies the NEQ predicate on the "descriptor" field.
func DescriptorNEQ(v string) predicate.Skill {
	return predicate.Skill(sql.FieldNEQ(FieldDescriptor, v))
}

// DescriptorIn applies the In predicate on the "descriptor" field.
func DescriptorIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldIn(FieldDescriptor, vs...))
}

// DescriptorNotIn applies the NotIn predicate on the "descriptor" field.
func DescriptorNotIn(vs ...string) predicate.Skill {
	return predicate.Skill(sql.FieldNotIn(FieldDescriptor, vs...))
}

// DescriptorGT applies the GT predicate on the "descriptor" field.
func DescriptorGT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGT(FieldDescriptor, v))
}

// DescriptorGTE applies the GTE predicate on the "descriptor" field.
func DescriptorGTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldGTE(FieldDescriptor, v))
}

// DescriptorLT applies the LT predicate on the "descriptor" field.
func DescriptorLT(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLT(FieldDescriptor, v))
}

// DescriptorLTE applies the LTE predicate on the "descriptor" field.
func DescriptorLTE(v string) predicate.Skill {
	return predicate.Skill(sql.FieldLTE(FieldDescriptor, v))
}

// DescriptorContains applies the Contains predicate on the "descriptor" field.
func DescriptorContains(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContains(FieldDescriptor, v))
}

// DescriptorHasPrefix applies the HasPrefix predicate on the "descriptor" field.
func DescriptorHasPrefix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasPrefix(FieldDescriptor, v))
}

// DescriptorHasSuffix applies the HasSuffix predicate on the "descriptor" field.
func DescriptorHasSuffix(v string) predicate.Skill {
	return predicate.Skill(sql.FieldHasSuffix(FieldDescriptor, v))
}

// DescriptorEqualFold applies the EqualFold predicate on the "descriptor" field.
func DescriptorEqualFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldEqualFold(FieldDescriptor, v))
}

// DescriptorContainsFold applies the ContainsFold predicate on the "descriptor" field.
func DescriptorContainsFold(v string) predicate.Skill {
	return predicate.Skill(sql.FieldContainsFold(FieldDescriptor, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Skill) predicate.Skill {
	return predicate.Skill(sql.NotPredicates(p))
}
