package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"replane.io/replane/internal/domain"
)

// ConfigProposal holds the schema definition for the ConfigProposal
// entity. Simple review flow: pending → approved or pending → rejected.
// Approving applies the proposed state to the config; any accepted edit
// to the config rejects the remaining pending proposals.
type ConfigProposal struct {
	ent.Schema
}

// Mixin of the ConfigProposal.
func (ConfigProposal) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ConfigProposal.
func (ConfigProposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("config_id").
			NotEmpty().
			Immutable(),
		field.String("author").
			NotEmpty().
			Immutable(), // Submitter's email
		field.String("message").
			Optional().
			Immutable(), // Author's motivation for reviewers
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Int("base_version").
			Positive().
			Immutable(), // Config version the proposal was written against
		field.Bool("is_delete").
			Default(false).
			Immutable(), // Proposes deleting the config instead of editing it
		field.JSON("original", domain.ConfigState{}).
			Optional().
			Immutable(), // Base state captured when the proposal was written
		field.JSON("proposed", domain.ConfigState{}).
			Optional().
			Immutable(), // Full replacement base state; empty for deletes
		field.JSON("variants", []domain.ProposalVariant{}).
			Optional().
			Immutable(), // Per-environment variant changes, before and after
		field.String("reviewer").
			Optional(), // Set when approved or rejected explicitly
		field.Enum("rejection_reason").
			Values("rejected_explicitly", "rejected_by_config_edit", "rejected_by_other_approval").
			Optional(),
		field.String("rejected_in_favor_of").
			Optional(), // Proposal whose approval caused a rejected_by_other_approval
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ConfigProposal.
func (ConfigProposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("config", ConfigItem.Type).
			Ref("proposals").
			Unique().
			Required().
			Immutable().
			Field("config_id"),
	}
}

// Indexes of the ConfigProposal.
func (ConfigProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("config_id", "status"),
		index.Fields("author"),
	}
}
