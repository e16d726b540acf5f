package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is a gradable learning target within a unit.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit").
			NotEmpty(),
		field.String("number").
			NotEmpty().
			Comment("Short ordinal label like 3.2"),
		field.String("descriptor").
			NotEmpty().
			Comment("Human-readable skill statement"),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit", "number", "descriptor").Unique(),
		index.Fields("unit"),
	}
}
