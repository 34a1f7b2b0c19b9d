package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"replane.io/replane/internal/override"
)

// ConfigItem holds the schema definition for a config. The entity is not
// named Config because entc reserves the lowercase package name "config";
// the table stays "configs". Rows carry the live base state; every
// accepted edit bumps version and appends an immutable ConfigVersion
// snapshot.
type ConfigItem struct {
	ent.Schema
}

// Annotations of the ConfigItem.
func (ConfigItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "configs"},
	}
}

// Mixin of the ConfigItem.
func (ConfigItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ConfigItem.
func (ConfigItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty(),
		field.String("name").
			NotEmpty().
			Immutable(), // Referenced by SDKs and overrides; cannot change after creation
		field.String("description").
			Optional(),
		field.Int("version").
			Default(1).
			Positive(),
		field.JSON("value", json.RawMessage{}),
		field.JSON("schema", json.RawMessage{}).
			Optional(), // JSON Schema; null disables validation
		field.JSON("overrides", []override.Override{}).
			Optional(),
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the ConfigItem.
func (ConfigItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("configs").
			Unique().
			Required().
			Field("project_id"),
		edge.To("variants", ConfigVariant.Type),
		edge.To("versions", ConfigVersion.Type),
		edge.To("proposals", ConfigProposal.Type),
		edge.To("users", ConfigUser.Type),
	}
}

// Indexes of the ConfigItem.
func (ConfigItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
	}
}
