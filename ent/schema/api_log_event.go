package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APILogEvent records every SIS API call for audit and debugging.
type APILogEvent struct {
	ent.Schema
}

func (APILogEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APILogEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Groups calls made by a single command invocation"),
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.String("endpoint").
			NotEmpty().
			Comment("Request path with the base URL stripped"),
		field.Int("status").
			Default(0).
			Comment("HTTP status for failed calls that got a response, 0 otherwise"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (APILogEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("endpoint"),
		index.Fields("success"),
	}
}
