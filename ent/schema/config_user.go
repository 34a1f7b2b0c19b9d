package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConfigUser holds the schema definition for the ConfigUser entity.
// Per-config role assignment; maintainers review proposals, editors
// submit them.
type ConfigUser struct {
	ent.Schema
}

// Mixin of the ConfigUser.
func (ConfigUser) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ConfigUser.
func (ConfigUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("config_id").
			NotEmpty(),
		field.String("email").
			NotEmpty(), // Lowercased before write
		field.Enum("role").
			Values("editor", "maintainer").
			Default("editor"),
	}
}

// Edges of the ConfigUser.
func (ConfigUser) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", ConfigItem.Type).
			Ref("users").
			Unique().
			Required().
			Field("config_id"),
	}
}

// Indexes of the ConfigUser.
func (ConfigUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("config_id", "email").
			Unique(),
		index.Fields("email"),
	}
}
