package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Workspace holds the schema definition for the Workspace entity.
// Top-level tenancy unit: every project, member and admin API key
// belongs to exactly one workspace.
type Workspace struct {
	ent.Schema
}

// Mixin of the Workspace.
func (Workspace) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Bool("auto_add_new_users").
			Default(false), // First-login users join as members when enabled
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", WorkspaceMember.Type),
		edge.To("projects", Project.Type),
		edge.To("api_keys", AdminApiKey.Type),
	}
}
