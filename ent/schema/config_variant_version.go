package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"replane.io/replane/internal/override"
)

// ConfigVariantVersion holds the schema definition for the
// ConfigVariantVersion entity. Append-only snapshot of a variant,
// written in the same transaction as the variant edit.
type ConfigVariantVersion struct {
	ent.Schema
}

// Mixin of the ConfigVariantVersion.
func (ConfigVariantVersion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the ConfigVariantVersion.
func (ConfigVariantVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("variant_id").
			NotEmpty().
			Immutable(),
		field.String("config_id").
			NotEmpty().
			Immutable(),
		field.String("environment_id").
			NotEmpty().
			Immutable(),
		field.Int("version").
			Positive().
			Immutable(),
		field.JSON("value", json.RawMessage{}).
			Immutable(),
		field.JSON("schema", json.RawMessage{}).
			Optional().
			Immutable(),
		field.Bool("use_base_schema").
			Default(false).
			Immutable(),
		field.JSON("overrides", []override.Override{}).
			Optional().
			Immutable(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.String("proposal_id").
			Optional().
			Immutable(),
	}
}

// Edges of the ConfigVariantVersion.
func (ConfigVariantVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("variant", ConfigVariant.Type).
			Ref("versions").
			Unique().
			Required().
			Immutable().
			Field("variant_id"),
	}
}

// Indexes of the ConfigVariantVersion.
func (ConfigVariantVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("variant_id", "version").
			Unique(),
		index.Fields("config_id", "environment_id"),
	}
}
