package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// Review policy lives here: require_proposals gates direct config
// edits, allow_self_approvals controls whether authors may approve
// their own proposals.
type Project struct {
	ent.Schema
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Bool("require_proposals").
			Default(false),
		field.Bool("allow_self_approvals").
			Default(true),
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("projects").
			Unique().
			Required().
			Field("workspace_id"),
		edge.To("environments", Environment.Type),
		edge.To("configs", ConfigItem.Type),
		edge.To("users", ProjectUser.Type),
		edge.To("sdk_keys", SdkKey.Type),
		edge.From("api_keys", AdminApiKey.Type).
			Ref("projects"),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").
			Unique(),
	}
}
