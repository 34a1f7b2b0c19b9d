package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SdkKey holds the schema definition for the SdkKey entity.
// Read-only credential for the SDK plane, scoped to one environment of
// one project. Hashed with plain SHA-256: verification sits on the hot
// read path and the token carries enough entropy to make brute force
// irrelevant.
type SdkKey struct {
	ent.Schema
}

// Mixin of the SdkKey.
func (SdkKey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SdkKey.
func (SdkKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.String("environment_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("key_hash").
			NotEmpty().
			Sensitive(),
		field.String("key_prefix").
			NotEmpty().
			Immutable(),
		field.String("key_suffix").
			NotEmpty().
			Immutable(),
		field.String("created_by").
			NotEmpty(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SdkKey.
func (SdkKey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sdk_keys").
			Unique().
			Required().
			Immutable().
			Field("project_id"),
		edge.From("environment", Environment.Type).
			Ref("sdk_keys").
			Unique().
			Required().
			Immutable().
			Field("environment_id"),
	}
}

// Indexes of the SdkKey.
func (SdkKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "environment_id"),
	}
}
