// Code generated by ent, DO NOT EDIT.

package symbol

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldID, id))
}

// Character applies equality check predicate on the "character" field. It's identical to CharacterEQ.
func Character(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldCharacter, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v bool) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldMastery, v))
}

// Glyph applies equality check predicate on the "glyph" field. It's identical to GlyphEQ.
func Glyph(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldGlyph, v))
}

// CharacterEQ applies the EQ predicate on the "character" field.
func CharacterEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldCharacter, v))
}

// CharacterNEQ applies the NEQ predicate on the "character" field.
func CharacterNEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldCharacter, v))
}

// CharacterIn applies the In predicate on the "character" field.
func CharacterIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldCharacter, vs...))
}

// CharacterNotIn applies the NotIn predicate on the "character" field.
func CharacterNotIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldCharacter, vs...))
}

// CharacterGT applies the GT predicate on the "character" field.
func CharacterGT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldCharacter, v))
}

// CharacterGTE applies the GTE predicate on the "character" field.
func CharacterGTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldCharacter, v))
}

// CharacterLT applies the LT predicate on the "character" field.
func CharacterLT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldCharacter, v))
}

// CharacterLTE applies the LTE predicate on the "character" field.
func CharacterLTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldCharacter, v))
}

// CharacterContains applies the Contains predicate on the "character" field.
func CharacterContains(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContains(FieldCharacter, v))
}

// CharacterHasPrefix applies the HasPrefix predicate on the "character" field.
func CharacterHasPrefix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasPrefix(FieldCharacter, v))
}

// CharacterHasSuffix applies the HasSuffix predicate on the "character" field.
func CharacterHasSuffix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasSuffix(FieldCharacter, v))
}

// CharacterEqualFold applies the EqualFold predicate on the "character" field.
func CharacterEqualFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEqualFold(FieldCharacter, v))
}

// CharacterContainsFold applies the ContainsFold predicate on the "character" field.
func CharacterContainsFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContainsFold(FieldCharacter, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v bool) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v bool) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldMastery, v))
}

// GlyphEQ applies the EQ predicate on the "glyph" field.
func GlyphEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldGlyph, v))
}

// GlyphNEQ applies the NEQ predicate on the "glyph" field.
func GlyphNEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldGlyph, v))
}

// GlyphIn applies the In predicate on the "glyph" field.
func GlyphIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldGlyph, vs...))
}

// GlyphNotIn applies the NotIn predicate on the "glyph" field.
func GlyphNotIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldGlyph, vs...))
}

// GlyphGT applies the GT predicate on the "glyph" field.
func GlyphGT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldGlyph, v))
}

// GlyphGTE applies the GTE predicate on the "glyph" field.
func GlyphGTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldGlyph, v))
}

// GlyphLT applies the LT predicate on the "glyph" field.
func GlyphLT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldGlyph, v))
}

// GlyphLTE applies the LTE predicate on the "glyph" field.
func GlyphLTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldGlyph, v))
}

// GlyphContains applies the Contains predicate on the "glyph" field.
func GlyphContains(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContains(FieldGlyph, v))
}

// GlyphHasPrefix applies the HasPrefix predicate on the "glyph" field.
func GlyphHasPrefix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasPrefix(FieldGlyph, v))
}

// GlyphHasSuffix applies the HasSuffix predicate on the "glyph" field.
func GlyphHasSuffix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasSuffix(FieldGlyph, v))
}

// GlyphEqualFold applies the EqualFold predicate on the "glyph" field.
func GlyphEqualFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEqualFold(FieldGlyph, v))
}

// GlyphContainsFold applies the ContainsFold predicate on the "glyph" field.
func GlyphContainsFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContainsFold(FieldGlyph, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.NotPredicates(p))
}
