package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Level is one rung of the mastery ladder. Levels are ordered by
// position; a streak at a higher position always outranks a streak at
// a lower one.
type Level struct {
	ent.Schema
}

func (Level) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("short_code").
			NotEmpty().
			Unique().
			Comment("Single-letter label used in column headers"),
		field.Int("position").
			Unique().
			Comment("Rank within the ladder, lowest first"),
		field.Int("required_streak").
			Positive().
			Comment("Consecutive successes needed to earn this level"),
		field.Float("score").
			Comment("Numeric grade awarded at this level"),
		field.Int("default_attempts").
			Default(5).
			Comment("Attempt slots allotted per skill at this level"),
	}
}
