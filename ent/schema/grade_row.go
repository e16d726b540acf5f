package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradeRow holds one student's attempt history for one skill. Attempts
// are stored per level short code as ordered mark slices, so a row is
// the full input to mastery evaluation.
type GradeRow struct {
	ent.Schema
}

func (GradeRow) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_email").
			NotEmpty(),
		field.String("unit").
			NotEmpty(),
		field.String("skill_number").
			NotEmpty(),
		field.String("descriptor").
			NotEmpty(),
		field.JSON("attempts", map[string][]string{}).
			Comment("Attempt marks keyed by level short code"),
	}
}

func (GradeRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_email", "unit", "skill_number", "descriptor").Unique(),
		index.Fields("student_email"),
		index.Fields("unit"),
	}
}
