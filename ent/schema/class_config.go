package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ClassConfig mirrors one SIS class section the teacher has linked:
// which course it belongs to and which grading category and period
// new line items should use.
type ClassConfig struct {
	ent.Schema
}

func (ClassConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("class_id").
			NotEmpty().
			Unique().
			Comment("SIS sourcedId of the class section"),
		field.String("class_title").
			Default(""),
		field.String("course_id").
			Default(""),
		field.String("category_id").
			Default(""),
		field.String("category_title").
			Default(""),
		field.String("grading_period_id").
			Default(""),
		field.Bool("active").
			Default(true),
	}
}
