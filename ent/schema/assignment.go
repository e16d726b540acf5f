package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment is a registry row tying a unit/skill pair to its SIS
// line item. Rows are staged locally first; external_id is filled in
// once the line item exists remotely.
type Assignment struct {
	ent.Schema
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("class_id").
			NotEmpty(),
		field.String("unit").
			NotEmpty(),
		field.String("skill").
			NotEmpty().
			Comment("Skill label, or the unit-average pseudo-skill"),
		field.String("external_id").
			Default("").
			Comment("Deterministic SIS line item sourcedId, empty while staged"),
		field.String("title").
			NotEmpty(),
		field.String("category").
			Default(""),
		field.Time("due_date").
			Optional(),
		field.Float("min_value").
			Default(0),
		field.Float("max_value").
			Default(4),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Line item body as last sent to the SIS"),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("class_id", "unit", "skill").Unique(),
		index.Fields("external_id"),
	}
}
