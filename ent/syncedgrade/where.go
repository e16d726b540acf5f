// Code generated by ent, DO NOT EDIT.

package syncedgrade

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/sbgsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldStudentID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldAssignmentID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldScore, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldComment, v))
}

// SyncedAt applies equality check predicate on the "synced_at" field. It's identical to SyncedAtEQ.
func SyncedAt(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldSyncedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContainsFold(FieldStudentID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContainsFold(FieldAssignmentID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldScore, v))
}

// ScoreContains applies the Contains predicate on the "score" field.
func ScoreContains(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContains(FieldScore, v))
}

// ScoreHasPrefix applies the HasPrefix predicate on the "score" field.
func ScoreHasPrefix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasPrefix(FieldScore, v))
}

// ScoreHasSuffix applies the HasSuffix predicate on the "score" field.
func ScoreHasSuffix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasSuffix(FieldScore, v))
}

// ScoreEqualFold applies the EqualFold predicate on the "score" field.
func ScoreEqualFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEqualFold(FieldScore, v))
}

// ScoreContainsFold applies the ContainsFold predicate on the "score" field.
func ScoreContainsFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContainsFold(FieldScore, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldHasSuffix(FieldComment, v))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldContainsFold(FieldComment, v))
}

// SyncedAtEQ applies the EQ predicate on the "synced_at" field.
func SyncedAtEQ(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldEQ(FieldSyncedAt, v))
}

// SyncedAtNEQ applies the NEQ predicate on the "synced_at" field.
func SyncedAtNEQ(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNEQ(FieldSyncedAt, v))
}

// SyncedAtIn applies the In predicate on the "synced_at" field.
func SyncedAtIn(vs ...time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldIn(FieldSyncedAt, vs...))
}

// SyncedAtNotIn applies the NotIn predicate on the "synced_at" field.
func SyncedAtNotIn(vs ...time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldNotIn(FieldSyncedAt, vs...))
}

// SyncedAtGT applies the GT predicate on the "synced_at" field.
func SyncedAtGT(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGT(FieldSyncedAt, v))
}

// SyncedAtGTE applies the GTE predicate on the "synced_at" field.
func SyncedAtGTE(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldGTE(FieldSyncedAt, v))
}

// SyncedAtLT applies the LT predicate on the "synced_at" field.
func SyncedAtLT(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLT(FieldSyncedAt, v))
}

// SyncedAtLTE applies the LTE predicate on the "synced_at" field.
func SyncedAtLTE(v time.Time) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.FieldLTE(FieldSyncedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncedGrade) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncedGrade) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncedGrade) predicate.SyncedGrade {
	return predicate.SyncedGrade(sql.NotPredicates(p))
}
