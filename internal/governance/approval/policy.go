// Package approval decides when a config change must go through the
// proposal workflow instead of a direct edit, and which config role a
// reviewer needs to approve it.
//
// Both decisions are pure functions of a Change, the structured diff
// between the current state and the requested one. Services compute
// the Change under the open transaction and never persist it.
package approval

import (
	"fmt"
	"strings"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/store"
)

// Change is the structured diff of one edit operation. Base* fields
// describe the config's default variant; Variants lists the touched
// per-environment variants.
type Change struct {
	Delete bool

	BaseDescription bool
	BaseValue       bool
	BaseSchema      bool
	BaseOverrides   bool
	Members         bool

	Variants []VariantChange
}

// VariantChange records what an edit touches in one environment.
type VariantChange struct {
	EnvironmentID    string
	EnvironmentName  string
	RequireProposals bool

	Value     bool
	Schema    bool
	Overrides bool
}

// Empty reports whether the change touches nothing.
func (c Change) Empty() bool {
	if c.Delete || c.BaseDescription || c.BaseValue || c.BaseSchema || c.BaseOverrides || c.Members {
		return false
	}
	for _, v := range c.Variants {
		if v.Value || v.Schema || v.Overrides {
			return false
		}
	}
	return true
}

// touchesBase reports whether the config's default variant or metadata
// changes.
func (c Change) touchesBase() bool {
	return c.Delete || c.BaseDescription || c.BaseValue || c.BaseSchema || c.BaseOverrides || c.Members
}

// Required evaluates the proposal gate for a direct user edit.
//
// The project-level flag gates every change to the config's base state.
// Variant edits are gated per environment: only environments whose own
// require_proposals flag is set force a proposal, so a team can review
// Production while iterating freely on Development. The returned reason
// names the gated field for the error message.
func Required(projectRequires bool, ch Change) (reason string, required bool) {
	if !projectRequires {
		return "", false
	}
	if ch.Delete {
		return "config deletion", true
	}
	if ch.touchesBase() {
		var fields []string
		if ch.BaseValue {
			fields = append(fields, "value")
		}
		if ch.BaseSchema {
			fields = append(fields, "schema")
		}
		if ch.BaseDescription {
			fields = append(fields, "description")
		}
		if ch.BaseOverrides {
			fields = append(fields, "overrides")
		}
		if ch.Members {
			fields = append(fields, "members")
		}
		return "default " + strings.Join(fields, ", "), true
	}
	for _, v := range ch.Variants {
		if !v.RequireProposals {
			continue
		}
		if v.Value || v.Schema || v.Overrides {
			name := v.EnvironmentName
			if name == "" {
				name = v.EnvironmentID
			}
			return fmt.Sprintf("environment %q", name), true
		}
	}
	return "", false
}

// ReviewerRole classifies who may approve a proposal carrying this
// change. Deletes, schema, description and membership changes need a
// config maintainer; value and override changes are open to editors.
func ReviewerRole(ch Change) domain.ApproverRole {
	if ch.Delete || ch.BaseSchema || ch.BaseDescription || ch.Members {
		return domain.ApproverMaintainer
	}
	for _, v := range ch.Variants {
		if v.Schema {
			return domain.ApproverMaintainer
		}
	}
	return domain.ApproverEditor
}

// DiffStates computes the base-field part of a Change between two
// config states. JSON fields compare canonically so key order and
// whitespace differences do not count as edits.
func DiffStates(from, to domain.ConfigState) Change {
	return Change{
		BaseDescription: from.Description != to.Description,
		BaseValue:       !store.JSONEqual(orNull(from.Value), orNull(to.Value)),
		BaseSchema:      !store.JSONEqual(orNull(from.Schema), orNull(to.Schema)),
		BaseOverrides:   !sameOverrides(from.Overrides, to.Overrides),
		Members:         !domain.SameMembers(from.Members, to.Members),
	}
}

// DiffVariants computes the per-environment part of a Change.
func DiffVariants(vars []domain.ProposalVariant, envs map[string]EnvironmentInfo) []VariantChange {
	out := make([]VariantChange, 0, len(vars))
	for _, pv := range vars {
		vc := VariantChange{EnvironmentID: pv.EnvironmentID}
		if info, ok := envs[pv.EnvironmentID]; ok {
			vc.EnvironmentName = info.Name
			vc.RequireProposals = info.RequireProposals
		}
		if pv.Original == nil {
			vc.Value = true
			vc.Schema = !store.JSONEqual(orNull(nil), orNull(pv.Proposed.Schema)) || pv.Proposed.UseBaseSchema
			vc.Overrides = len(pv.Proposed.Overrides) > 0
		} else {
			vc.Value = !store.JSONEqual(orNull(pv.Original.Value), orNull(pv.Proposed.Value))
			vc.Schema = !store.JSONEqual(orNull(pv.Original.Schema), orNull(pv.Proposed.Schema)) ||
				pv.Original.UseBaseSchema != pv.Proposed.UseBaseSchema
			vc.Overrides = !sameOverrides(pv.Original.Overrides, pv.Proposed.Overrides)
		}
		out = append(out, vc)
	}
	return out
}

// EnvironmentInfo is the slice of an environment the gate needs.
type EnvironmentInfo struct {
	Name             string
	RequireProposals bool
}

func sameOverrides(a, b []override.Override) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ja, err := canonicalOverride(a[i])
		if err != nil {
			return false
		}
		jb, err := canonicalOverride(b[i])
		if err != nil {
			return false
		}
		if ja != jb {
			return false
		}
	}
	return true
}

func canonicalOverride(o override.Override) (string, error) {
	raw, err := store.MarshalCanonical(o)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func orNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
