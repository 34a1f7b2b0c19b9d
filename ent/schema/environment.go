package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Environment holds the schema definition for the Environment entity.
// Environments are ordered per project; a config may carry one variant
// per environment.
type Environment struct {
	ent.Schema
}

// Mixin of the Environment.
func (Environment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Environment.
func (Environment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("order").
			Default(0), // Display position within the project
		field.Bool("require_proposals").
			Default(false), // Gates variant edits when the project also requires proposals
	}
}

// Edges of the Environment.
func (Environment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("environments").
			Unique().
			Required().
			Field("project_id"),
		edge.To("variants", ConfigVariant.Type),
		edge.To("sdk_keys", SdkKey.Type),
	}
}

// Indexes of the Environment.
func (Environment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
	}
}
