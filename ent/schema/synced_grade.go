package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncedGrade is the sync ledger: the last score and comment posted to
// the SIS for one student on one assignment. A grade is re-posted only
// when the computed score or comment differs from the ledger entry.
type SyncedGrade struct {
	ent.Schema
}

func (SyncedGrade) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("SIS sourcedId of the student"),
		field.String("assignment_id").
			NotEmpty().
			Comment("SIS sourcedId of the line item"),
		field.String("score").
			NotEmpty().
			Comment("Score as posted, kept as text to compare exactly"),
		field.String("comment").
			Default("").
			Comment("Result comment as posted"),
		field.Time("synced_at").
			Default(time.Now),
	}
}

func (SyncedGrade) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "assignment_id").Unique(),
		index.Fields("assignment_id"),
	}
}
