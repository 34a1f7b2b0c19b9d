package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectUser holds the schema definition for the ProjectUser entity.
// Per-project role assignment; admins manage settings and membership,
// maintainers edit any config in the project.
type ProjectUser struct {
	ent.Schema
}

// Mixin of the ProjectUser.
func (ProjectUser) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ProjectUser.
func (ProjectUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty(),
		field.String("email").
			NotEmpty(), // Lowercased before write
		field.Enum("role").
			Values("admin", "maintainer").
			Default("maintainer"),
	}
}

// Edges of the ProjectUser.
func (ProjectUser) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("users").
			Unique().
			Required().
			Field("project_id"),
	}
}

// Indexes of the ProjectUser.
func (ProjectUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "email").
			Unique(),
		index.Fields("email"),
	}
}
