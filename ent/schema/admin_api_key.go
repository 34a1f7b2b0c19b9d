package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdminApiKey holds the schema definition for the AdminApiKey entity.
// Workspace-scoped machine credential for the management API. Only the
// argon2id hash is stored; prefix and suffix exist for display lists.
type AdminApiKey struct {
	ent.Schema
}

// Mixin of the AdminApiKey.
func (AdminApiKey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AdminApiKey.
func (AdminApiKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("key_hash").
			NotEmpty().
			Sensitive(), // PHC-formatted argon2id hash
		field.String("key_prefix").
			NotEmpty().
			Immutable(),
		field.String("key_suffix").
			NotEmpty().
			Immutable(),
		field.Bool("all_projects").
			Default(true), // When false, access is limited to the projects edge
		field.String("created_by").
			NotEmpty(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AdminApiKey.
func (AdminApiKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("api_keys").
			Unique().
			Required().
			Immutable().
			Field("workspace_id"),
		edge.To("scopes", AdminApiKeyScope.Type),
		edge.To("projects", Project.Type),
	}
}

// Indexes of the AdminApiKey.
func (AdminApiKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
	}
}
