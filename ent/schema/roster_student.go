package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RosterStudent mirrors a student enrollment pulled from the SIS.
// Refreshing a class replaces all of its rows, so the mirror never
// accumulates stale enrollments.
type RosterStudent struct {
	ent.Schema
}

func (RosterStudent) Fields() []ent.Field {
	return []ent.Field{
		field.String("class_id").
			NotEmpty(),
		field.String("sourced_id").
			NotEmpty().
			Comment("SIS sourcedId of the student"),
		field.String("email").
			Default(""),
		field.String("given_name").
			Default(""),
		field.String("family_name").
			Default(""),
	}
}

func (RosterStudent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("class_id", "sourced_id").Unique(),
		index.Fields("class_id"),
		index.Fields("email"),
	}
}
