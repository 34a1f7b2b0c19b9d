package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdminApiKeyScope holds the schema definition for the AdminApiKeyScope
// entity. One row per scope granted to an admin API key. Values come
// from the closed resource:access set validated in the domain layer;
// kept as a string column because scope tokens contain a colon.
type AdminApiKeyScope struct {
	ent.Schema
}

// Mixin of the AdminApiKeyScope.
func (AdminApiKeyScope) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Scopes are replaced wholesale, never updated in place
	}
}

// Fields of the AdminApiKeyScope.
func (AdminApiKeyScope) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("key_id").
			NotEmpty().
			Immutable(),
		field.String("scope").
			NotEmpty().
			Immutable(), // e.g. "config:write", "project:read"
	}
}

// Edges of the AdminApiKeyScope.
func (AdminApiKeyScope) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("key", AdminApiKey.Type).
			Ref("scopes").
			Unique().
			Required().
			Immutable().
			Field("key_id"),
	}
}

// Indexes of the AdminApiKeyScope.
func (AdminApiKeyScope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_id", "scope").
			Unique(),
	}
}
