package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Symbol maps a shorthand attempt mark to its mastery meaning and
// display glyph.
type Symbol struct {
	ent.Schema
}

func (Symbol) Fields() []ent.Field {
	return []ent.Field{
		field.String("character").
			NotEmpty().
			Unique().
			Comment("Shorthand mark entered for an attempt, e.g. 1, X, Xo"),
		field.Bool("mastery").
			Comment("Whether the mark counts toward a streak"),
		field.String("glyph").
			Default("").
			Comment("Emoji shown in place of the raw mark"),
	}
}
