package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkspaceMember holds the schema definition for the WorkspaceMember entity.
// Membership is keyed by normalized email; users exist only as members.
type WorkspaceMember struct {
	ent.Schema
}

// Mixin of the WorkspaceMember.
func (WorkspaceMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the WorkspaceMember.
func (WorkspaceMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			NotEmpty(),
		field.String("email").
			NotEmpty(), // Lowercased before write
		field.String("name").
			Optional(),
		field.Enum("role").
			Values("admin", "member").
			Default("member"),
	}
}

// Edges of the WorkspaceMember.
func (WorkspaceMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("members").
			Unique().
			Required().
			Field("workspace_id"),
	}
}

// Indexes of the WorkspaceMember.
func (WorkspaceMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "email").
			Unique(),
		index.Fields("email"),
	}
}
