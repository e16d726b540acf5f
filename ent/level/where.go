// Code generated by ent, DO NOT EDIT.

package level

import (
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldName, v))
}

// ShortCode applies equality check predicate on the "short_code" field. It's identical to ShortCodeEQ.
func ShortCode(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldShortCode, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldPosition, v))
}

// RequiredStreak applies equality check predicate on the "required_streak" field. It's identical to RequiredStreakEQ.
func RequiredStreak(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldRequiredStreak, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldScore, v))
}

// DefaultAttempts applies equality check predicate on the "default_attempts" field. It's identical to DefaultAttemptsEQ.
func DefaultAttempts(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldDefaultAttempts, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Level {
	return predicate.Level(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Level {
	return predicate.Level(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Level {
	return predicate.Level(sql.FieldContainsFold(FieldName, v))
}

// ShortCodeEQ applies the EQ predicate on the "short_code" field.
func ShortCodeEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldShortCode, v))
}

// ShortCodeNEQ applies the NEQ predicate on the "short_code" field.
func ShortCodeNEQ(v string) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldShortCode, v))
}

// ShortCodeIn applies the In predicate on the "short_code" field.
func ShortCodeIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldShortCode, vs...))
}

// ShortCodeNotIn applies the NotIn predicate on the "short_code" field.
func ShortCodeNotIn(vs ...string) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldShortCode, vs...))
}

// ShortCodeGT applies the GT predicate on the "short_code" field.
func ShortCodeGT(v string) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldShortCode, v))
}

// ShortCodeGTE applies the GTE predicate on the "short_code" field.
func ShortCodeGTE(v string) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldShortCode, v))
}

// ShortCodeLT applies the LT predicate on the "short_code" field.
func ShortCodeLT(v string) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldShortCode, v))
}

// ShortCodeLTE applies the LTE predicate on the "short_code" field.
func ShortCodeLTE(v string) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldShortCode, v))
}

// ShortCodeContains applies the Contains predicate on the "short_code" field.
func ShortCodeContains(v string) predicate.Level {
	return predicate.Level(sql.FieldContains(FieldShortCode, v))
}

// ShortCodeHasPrefix applies the HasPrefix predicate on the "short_code" field.
func ShortCodeHasPrefix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasPrefix(FieldShortCode, v))
}

// ShortCodeHasSuffix applies the HasSuffix predicate on the "short_code" field.
func ShortCodeHasSuffix(v string) predicate.Level {
	return predicate.Level(sql.FieldHasSuffix(FieldShortCode, v))
}

// ShortCodeEqualFold applies the EqualFold predicate on the "short_code" field.
func ShortCodeEqualFold(v string) predicate.Level {
	return predicate.Level(sql.FieldEqualFold(FieldShortCode, v))
}

// ShortCodeContainsFold applies the ContainsFold predicate on the "short_code" field.
func ShortCodeContainsFold(v string) predicate.Level {
	return predicate.Level(sql.FieldContainsFold(FieldShortCode, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldPosition, v))
}

// RequiredStreakEQ applies the EQ predicate on the "required_streak" field.
func RequiredStreakEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldRequiredStreak, v))
}

// RequiredStreakNEQ applies the NEQ predicate on the "required_streak" field.
func RequiredStreakNEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldRequiredStreak, v))
}

// RequiredStreakIn applies the In predicate on the "required_streak" field.
func RequiredStreakIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldRequiredStreak, vs...))
}

// RequiredStreakNotIn applies the NotIn predicate on the "required_streak" field.
func RequiredStreakNotIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldRequiredStreak, vs...))
}

// RequiredStreakGT applies the GT predicate on the "required_streak" field.
func RequiredStreakGT(v int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldRequiredStreak, v))
}

// RequiredStreakGTE applies the GTE predicate on the "required_streak" field.
func RequiredStreakGTE(v int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldRequiredStreak, v))
}

// RequiredStreakLT applies the LT predicate on the "required_streak" field.
func RequiredStreakLT(v int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldRequiredStreak, v))
}

// RequiredStreakLTE applies the LTE predicate on the "required_streak" field.
func RequiredStreakLTE(v int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldRequiredStreak, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldScore, v))
}

// DefaultAttemptsEQ applies the EQ predicate on the "default_attempts" field.
func DefaultAttemptsEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldEQ(FieldDefaultAttempts, v))
}

// DefaultAttemptsNEQ applies the NEQ predicate on the "default_attempts" field.
func DefaultAttemptsNEQ(v int) predicate.Level {
	return predicate.Level(sql.FieldNEQ(FieldDefaultAttempts, v))
}

// DefaultAttemptsIn applies the In predicate on the "default_attempts" field.
func DefaultAttemptsIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldIn(FieldDefaultAttempts, vs...))
}

// DefaultAttemptsNotIn applies the NotIn predicate on the "default_attempts" field.
func DefaultAttemptsNotIn(vs ...int) predicate.Level {
	return predicate.Level(sql.FieldNotIn(FieldDefaultAttempts, vs...))
}

// DefaultAttemptsGT applies the GT predicate on the "default_attempts" field.
func DefaultAttemptsGT(v int) predicate.Level {
	return predicate.Level(sql.FieldGT(FieldDefaultAttempts, v))
}

// DefaultAttemptsGTE applies the GTE predicate on the "default_attempts" field.
func DefaultAttemptsGTE(v int) predicate.Level {
	return predicate.Level(sql.FieldGTE(FieldDefaultAttempts, v))
}

// DefaultAttemptsLT applies the LT predicate on the "default_attempts" field.
func DefaultAttemptsLT(v int) predicate.Level {
	return predicate.Level(sql.FieldLT(FieldDefaultAttempts, v))
}

// DefaultAttemptsLTE applies the LTE predicate on the "default_attempts" field.
func DefaultAttemptsLTE(v int) predicate.Level {
	return predicate.Level(sql.FieldLTE(FieldDefaultAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Level) predicate.Level {
	return predicate.Level(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Level) predicate.Level {
	return predicate.Level(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Level) predicate.Level {
	return predicate.Level(sql.NotPredicates(p))
}
