package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"replane.io/replane/internal/override"
)

// ConfigVariant holds the schema definition for the ConfigVariant entity.
// Per-environment specialization of a config. Variants are created
// lazily: environments without a row fall back to the config base state.
type ConfigVariant struct {
	ent.Schema
}

// Mixin of the ConfigVariant.
func (ConfigVariant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ConfigVariant.
func (ConfigVariant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("config_id").
			NotEmpty(),
		field.String("environment_id").
			NotEmpty(),
		field.Int("version").
			Default(1).
			Positive(),
		field.JSON("value", json.RawMessage{}),
		field.JSON("schema", json.RawMessage{}).
			Optional(), // Variant-local JSON Schema; ignored when use_base_schema is set
		field.Bool("use_base_schema").
			Default(false),
		field.JSON("overrides", []override.Override{}).
			Optional(),
	}
}

// Edges of the ConfigVariant.
func (ConfigVariant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", ConfigItem.Type).
			Ref("variants").
			Unique().
			Required().
			Field("config_id"),
		edge.From("environment", Environment.Type).
			Ref("variants").
			Unique().
			Required().
			Field("environment_id"),
		edge.To("versions", ConfigVariantVersion.Type),
	}
}

// Indexes of the ConfigVariant.
func (ConfigVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("config_id", "environment_id").
			Unique(),
	}
}
