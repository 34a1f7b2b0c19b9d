package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only compliance records. Hard-delete is NOT allowed. Scoping
// columns are plain strings, not edges, so entries survive deletion of
// what they describe.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // UUIDv7: time-ordered, tie-breaks the keyset cursor
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "config_updated", "config_proposal_approved"
		field.String("actor").
			NotEmpty().
			Immutable(), // Email, API key display name, or "superuser"
		field.String("workspace_id").
			Optional().
			Immutable(),
		field.String("project_id").
			Optional().
			Immutable(),
		field.String("config_id").
			Optional().
			Immutable(),
		field.String("environment_id").
			Optional().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional(), // Action-specific payload (versions, names, reasons)
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at", "id"),
		index.Fields("config_id", "created_at", "id"),
		index.Fields("actor"),
	}
}
