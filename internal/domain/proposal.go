package domain

import (
	"encoding/json"

	"replane.io/replane/internal/override"
)

// ConfigState captures the mutable fields of a config at a point in time.
// Proposals store two of these: the snapshot taken at creation and the
// proposed replacement.
type ConfigState struct {
	Description string              `json:"description"`
	Value       json.RawMessage     `json:"value"`
	Schema      json.RawMessage     `json:"schema,omitempty"`
	Overrides   []override.Override `json:"overrides"`
	Members     []ConfigMember      `json:"members"`
}

// VariantState is the (value, schema, useBaseSchema, overrides) triple
// of one environment variant.
type VariantState struct {
	Value         json.RawMessage     `json:"value"`
	Schema        json.RawMessage     `json:"schema,omitempty"`
	UseBaseSchema bool                `json:"useBaseSchema"`
	Overrides     []override.Override `json:"overrides"`
}

// ProposalVariant pairs a variant's state before and after the proposed
// change. Original is nil and BaseVersion zero when the environment had
// no variant yet.
type ProposalVariant struct {
	EnvironmentID string        `json:"environmentId"`
	BaseVersion   int           `json:"baseVersion"`
	Original      *VariantState `json:"original,omitempty"`
	Proposed      VariantState  `json:"proposed"`
}

// Rejection reasons persisted on terminal proposals.
const (
	RejectedExplicitly      = "rejected_explicitly"
	RejectedByConfigEdit    = "rejected_by_config_edit"
	RejectedByOtherApproval = "rejected_by_other_approval"
)

// ApproverRole classifies who may approve a proposal. It is derived when a
// proposal is rendered, never stored.
type ApproverRole string

const (
	// ApproverMaintainer: deletes, description, member or schema changes.
	ApproverMaintainer ApproverRole = "maintainer"
	// ApproverEditor: value and/or override changes only.
	ApproverEditor ApproverRole = "editor"
)
