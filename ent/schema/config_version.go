package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
)

// ConfigVersion holds the schema definition for the ConfigVersion entity.
// Append-only snapshot of the config base state, written in the same
// transaction as the edit that produced it. Hard-delete is NOT allowed
// while the config exists.
type ConfigVersion struct {
	ent.Schema
}

// Mixin of the ConfigVersion.
func (ConfigVersion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the ConfigVersion.
func (ConfigVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("config_id").
			NotEmpty().
			Immutable(),
		field.Int("version").
			Positive().
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.JSON("value", json.RawMessage{}).
			Immutable(),
		field.JSON("schema", json.RawMessage{}).
			Optional().
			Immutable(),
		field.JSON("overrides", []override.Override{}).
			Optional().
			Immutable(),
		field.JSON("members", []domain.ConfigMember{}).
			Optional().
			Immutable(), // Config member list at snapshot time
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.String("proposal_id").
			Optional().
			Immutable(), // Set when the version was produced by an approved proposal
	}
}

// Edges of the ConfigVersion.
func (ConfigVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", ConfigItem.Type).
			Ref("versions").
			Unique().
			Required().
			Immutable().
			Field("config_id"),
	}
}

// Indexes of the ConfigVersion.
func (ConfigVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("config_id", "version").
			Unique(),
	}
}
