package approval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name            string
		projectRequires bool
		change          Change
		wantRequired    bool
		wantReason      string
	}{
		{
			name:            "project does not require proposals",
			projectRequires: false,
			change:          Change{BaseValue: true, Delete: true},
			wantRequired:    false,
		},
		{
			name:            "base value change is gated",
			projectRequires: true,
			change:          Change{BaseValue: true},
			wantRequired:    true,
			wantReason:      "default value",
		},
		{
			name:            "delete is gated",
			projectRequires: true,
			change:          Change{Delete: true},
			wantRequired:    true,
			wantReason:      "config deletion",
		},
		{
			name:            "variant edit in gated environment",
			projectRequires: true,
			change: Change{Variants: []VariantChange{
				{EnvironmentID: "env-1", EnvironmentName: "Production", RequireProposals: true, Value: true},
			}},
			wantRequired: true,
			wantReason:   `environment "Production"`,
		},
		{
			name:            "variant edit in ungated environment passes",
			projectRequires: true,
			change: Change{Variants: []VariantChange{
				{EnvironmentID: "env-2", EnvironmentName: "Development", RequireProposals: false, Value: true},
			}},
			wantRequired: false,
		},
		{
			name:            "untouched gated environment does not trip the gate",
			projectRequires: true,
			change: Change{Variants: []VariantChange{
				{EnvironmentID: "env-1", EnvironmentName: "Production", RequireProposals: true},
				{EnvironmentID: "env-2", EnvironmentName: "Development", Overrides: true},
			}},
			wantRequired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, required := Required(tt.projectRequires, tt.change)
			assert.Equal(t, tt.wantRequired, required)
			if tt.wantRequired {
				assert.Equal(t, tt.wantReason, reason)
			}
		})
	}
}

func TestReviewerRole(t *testing.T) {
	assert.Equal(t, domain.ApproverEditor, ReviewerRole(Change{BaseValue: true, BaseOverrides: true}))
	assert.Equal(t, domain.ApproverMaintainer, ReviewerRole(Change{Delete: true}))
	assert.Equal(t, domain.ApproverMaintainer, ReviewerRole(Change{BaseDescription: true}))
	assert.Equal(t, domain.ApproverMaintainer, ReviewerRole(Change{Members: true}))
	assert.Equal(t, domain.ApproverMaintainer, ReviewerRole(Change{BaseSchema: true}))
	assert.Equal(t, domain.ApproverMaintainer, ReviewerRole(Change{
		Variants: []VariantChange{{EnvironmentID: "env-1", Schema: true}},
	}))
	assert.Equal(t, domain.ApproverEditor, ReviewerRole(Change{
		Variants: []VariantChange{{EnvironmentID: "env-1", Value: true, Overrides: true}},
	}))
}

func TestDiffStates(t *testing.T) {
	base := domain.ConfigState{
		Description: "greeting text",
		Value:       json.RawMessage(`{"text":"hi"}`),
		Schema:      json.RawMessage(`{"type":"object"}`),
		Members:     []domain.ConfigMember{{Email: "a@example.com", Role: domain.ConfigRoleEditor}},
	}

	t.Run("identical states diff to empty", func(t *testing.T) {
		ch := DiffStates(base, base)
		assert.True(t, ch.Empty())
	})

	t.Run("key order does not count as an edit", func(t *testing.T) {
		reordered := base
		reordered.Value = json.RawMessage(`{ "text" : "hi" }`)
		ch := DiffStates(base, reordered)
		assert.False(t, ch.BaseValue)
	})

	t.Run("value change detected", func(t *testing.T) {
		to := base
		to.Value = json.RawMessage(`{"text":"bye"}`)
		ch := DiffStates(base, to)
		assert.True(t, ch.BaseValue)
		assert.False(t, ch.BaseSchema)
		assert.False(t, ch.Members)
	})

	t.Run("nil schema equals absent schema", func(t *testing.T) {
		from, to := base, base
		from.Schema = nil
		to.Schema = json.RawMessage(`null`)
		ch := DiffStates(from, to)
		assert.False(t, ch.BaseSchema)
	})

	t.Run("member role change detected", func(t *testing.T) {
		to := base
		to.Members = []domain.ConfigMember{{Email: "a@example.com", Role: domain.ConfigRoleMaintainer}}
		ch := DiffStates(base, to)
		assert.True(t, ch.Members)
	})

	t.Run("override change detected", func(t *testing.T) {
		to := base
		to.Overrides = []override.Override{{Name: "beta", Value: json.RawMessage(`true`)}}
		ch := DiffStates(base, to)
		assert.True(t, ch.BaseOverrides)
	})
}

func TestDiffVariants(t *testing.T) {
	envs := map[string]EnvironmentInfo{
		"env-1": {Name: "Production", RequireProposals: true},
	}

	t.Run("new variant counts as value change", func(t *testing.T) {
		vcs := DiffVariants([]domain.ProposalVariant{{
			EnvironmentID: "env-1",
			Proposed:      domain.VariantState{Value: json.RawMessage(`1`)},
		}}, envs)
		require.Len(t, vcs, 1)
		assert.True(t, vcs[0].Value)
		assert.True(t, vcs[0].RequireProposals)
		assert.Equal(t, "Production", vcs[0].EnvironmentName)
	})

	t.Run("use_base_schema flip counts as schema change", func(t *testing.T) {
		orig := &domain.VariantState{Value: json.RawMessage(`1`), UseBaseSchema: true}
		vcs := DiffVariants([]domain.ProposalVariant{{
			EnvironmentID: "env-1",
			Original:      orig,
			Proposed:      domain.VariantState{Value: json.RawMessage(`1`), UseBaseSchema: false},
		}}, envs)
		require.Len(t, vcs, 1)
		assert.False(t, vcs[0].Value)
		assert.True(t, vcs[0].Schema)
	})
}
