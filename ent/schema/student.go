package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Student is a gradebook roster entry, keyed by email.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("first_name").
			Default(""),
		field.String("last_name").
			Default(""),
	}
}
