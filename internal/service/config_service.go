// Package service implements the transactional core of the config
// editing engine. Every operation runs inside the caller's transaction
// and performs the full edit protocol: optimistic version check,
// schema and override validation, live-row write, immutable snapshot,
// audit record, and invalidation of stale proposals.
//
// Authorization is NOT done here; use cases gate through the
// permission checker before calling in.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/approval"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/override"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/schemaval"
	"replane.io/replane/internal/store"
)

// ConfigService executes atomic config edits. Stateless; safe to share.
type ConfigService struct{}

// NewConfigService returns the config edit engine.
func NewConfigService() *ConfigService {
	return &ConfigService{}
}

// CreateConfigParams describes a new config in an existing project.
type CreateConfigParams struct {
	Project     *ent.Project
	Name        string
	Description string
	Value       json.RawMessage
	Schema      json.RawMessage
	Overrides   []override.Override
	Members     []domain.ConfigMember
	Actor       string
}

// Create inserts the config at version 1 with its first snapshot.
func (s *ConfigService) Create(ctx context.Context, tx *ent.Tx, p CreateConfigParams) (*ent.ConfigItem, error) {
	if p.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "config name is required")
	}

	taken, err := tx.ConfigItem.Query().
		Where(entconfig.ProjectID(p.Project.ID), entconfig.Name(p.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check config name: %w", err)
	}
	if taken {
		return nil, apperrors.BadRequest(apperrors.CodeNameTaken,
			fmt.Sprintf("config %q already exists in this project", p.Name))
	}

	value, schema, err := validateAndCanonicalize(p.Value, p.Schema, p.Overrides, p.Project.ID)
	if err != nil {
		return nil, err
	}

	now := store.Now()
	create := tx.ConfigItem.Create().
		SetID(store.NewID()).
		SetProjectID(p.Project.ID).
		SetName(p.Name).
		SetDescription(p.Description).
		SetVersion(1).
		SetValue(value).
		SetOverrides(p.Overrides).
		SetCreatedBy(p.Actor).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if schema != nil {
		create.SetSchema(schema)
	}
	cfg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}

	members := normalizeMembers(p.Members)
	for _, m := range members {
		if _, err := tx.ConfigUser.Create().
			SetID(store.NewID()).
			SetConfigID(cfg.ID).
			SetEmail(m.Email).
			SetRole(configuser.Role(m.Role)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("create config user: %w", err)
		}
	}

	if err := s.snapshotConfig(ctx, tx, cfg, members, p.Actor, ""); err != nil {
		return nil, err
	}

	if err := audit.Record(ctx, tx, audit.Entry{
		Action:      audit.ActionConfigCreated,
		Actor:       p.Actor,
		WorkspaceID: p.Project.WorkspaceID,
		ProjectID:   p.Project.ID,
		ConfigID:    cfg.ID,
		Details:     map[string]interface{}{"name": cfg.Name},
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateConfigParams is a full replacement of the config base state.
// ProposalID is set when the edit applies an approved proposal: the
// proposal gate is skipped, the snapshot links back to the proposal,
// and remaining pending proposals reject as rejected_by_other_approval
// instead of rejected_by_config_edit.
type UpdateConfigParams struct {
	ConfigID    string
	PrevVersion int
	State       domain.ConfigState
	Identity    domain.Identity
	Actor       string
	ProposalID  string

	// auditAction overrides the default config_updated entry; used by
	// the restore path.
	auditAction string
}

// Update performs a direct edit of the config base state.
func (s *ConfigService) Update(ctx context.Context, tx *ent.Tx, p UpdateConfigParams) (*ent.ConfigItem, error) {
	cfg, project, err := s.lockConfig(ctx, tx, p.ConfigID)
	if err != nil {
		return nil, err
	}
	if cfg.Version != p.PrevVersion {
		return nil, apperrors.ErrConfigVersionMismatch(cfg.Version, p.PrevVersion)
	}

	currentMembers, err := s.configMembers(ctx, tx, cfg.ID)
	if err != nil {
		return nil, err
	}
	current := stateOf(cfg, currentMembers)
	desired := p.State
	desired.Members = normalizeMembers(desired.Members)

	change := approval.DiffStates(current, desired)
	if err := s.gate(project, p.Identity, p.ProposalID, change); err != nil {
		return nil, err
	}

	value, schema, err := validateAndCanonicalize(desired.Value, desired.Schema, desired.Overrides, project.ID)
	if err != nil {
		return nil, err
	}

	added, removed := domain.DiffMembers(currentMembers, desired.Members)
	if err := s.applyMemberDiff(ctx, tx, cfg.ID, added, removed); err != nil {
		return nil, err
	}

	update := tx.ConfigItem.UpdateOneID(cfg.ID).
		SetVersion(cfg.Version + 1).
		SetDescription(desired.Description).
		SetValue(value).
		SetOverrides(desired.Overrides).
		SetUpdatedAt(store.Now())
	if schema != nil {
		update.SetSchema(schema)
	} else {
		update.ClearSchema()
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update config: %w", err)
	}

	if err := s.snapshotConfig(ctx, tx, updated, desired.Members, p.Actor, p.ProposalID); err != nil {
		return nil, err
	}

	action := p.auditAction
	if action == "" {
		action = audit.ActionConfigUpdated
	}
	if err := audit.Record(ctx, tx, audit.Entry{
		Action:      action,
		Actor:       p.Actor,
		WorkspaceID: project.WorkspaceID,
		ProjectID:   project.ID,
		ConfigID:    cfg.ID,
		Details: map[string]interface{}{
			"version":    updated.Version,
			"proposalId": nilIfEmpty(p.ProposalID),
		},
	}); err != nil {
		return nil, err
	}
	if len(added) > 0 || len(removed) > 0 {
		if err := audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionConfigMembersChanged,
			Actor:       p.Actor,
			WorkspaceID: project.WorkspaceID,
			ProjectID:   project.ID,
			ConfigID:    cfg.ID,
			Details:     map[string]interface{}{"added": added, "removed": removed},
		}); err != nil {
			return nil, err
		}
	}

	if err := s.invalidateProposals(ctx, tx, project, cfg.ID, p.Actor, p.ProposalID); err != nil {
		return nil, err
	}
	return updated, nil
}

// PatchVariantParams edits one environment's variant. A missing variant
// row is created on first edit; PrevVersion must then be zero.
type PatchVariantParams struct {
	ConfigID      string
	EnvironmentID string
	PrevVersion   int
	State         domain.VariantState
	Identity      domain.Identity
	Actor         string
	ProposalID    string

	auditAction string
}

// PatchVariant upserts the per-environment variant of a config.
func (s *ConfigService) PatchVariant(ctx context.Context, tx *ent.Tx, p PatchVariantParams) (*ent.ConfigVariant, error) {
	cfg, project, err := s.lockConfig(ctx, tx, p.ConfigID)
	if err != nil {
		return nil, err
	}

	env, err := tx.Environment.Query().
		Where(environment.ID(p.EnvironmentID), environment.ProjectID(project.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
		}
		return nil, fmt.Errorf("load environment: %w", err)
	}

	variant, err := tx.ConfigVariant.Query().
		Where(configvariant.ConfigID(cfg.ID), configvariant.EnvironmentID(env.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load variant: %w", err)
	}

	prev := 0
	var original *domain.VariantState
	if variant != nil {
		prev = variant.Version
		st := variantStateOf(variant)
		original = &st
	}
	if prev != p.PrevVersion {
		return nil, apperrors.ErrConfigVersionMismatch(prev, p.PrevVersion)
	}

	change := approval.Change{Variants: approval.DiffVariants(
		[]domain.ProposalVariant{{EnvironmentID: env.ID, Original: original, Proposed: p.State}},
		map[string]approval.EnvironmentInfo{env.ID: {Name: env.Name, RequireProposals: env.RequireProposals}},
	)}
	if err := s.gate(project, p.Identity, p.ProposalID, change); err != nil {
		return nil, err
	}

	// Effective schema: the variant's own, or the config default when
	// use_base_schema is set. Both empty means validation is skipped.
	effectiveSchema := p.State.Schema
	if p.State.UseBaseSchema {
		effectiveSchema = cfg.Schema
	}
	if err := schemaval.Check(effectiveSchema, p.State.Value); err != nil {
		return nil, err
	}
	if err := validateOverrides(p.State.Overrides, project.ID); err != nil {
		return nil, err
	}
	value, err := store.CanonicalJSON(p.State.Value)
	if err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "value is not valid JSON")
	}
	schema, err := canonicalSchema(p.State.Schema)
	if err != nil {
		return nil, err
	}

	now := store.Now()
	if variant == nil {
		create := tx.ConfigVariant.Create().
			SetID(store.NewID()).
			SetConfigID(cfg.ID).
			SetEnvironmentID(env.ID).
			SetVersion(1).
			SetValue(value).
			SetUseBaseSchema(p.State.UseBaseSchema).
			SetOverrides(p.State.Overrides).
			SetCreatedAt(now).
			SetUpdatedAt(now)
		if schema != nil {
			create.SetSchema(schema)
		}
		variant, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create variant: %w", err)
		}
	} else {
		update := tx.ConfigVariant.UpdateOneID(variant.ID).
			SetVersion(variant.Version + 1).
			SetValue(value).
			SetUseBaseSchema(p.State.UseBaseSchema).
			SetOverrides(p.State.Overrides).
			SetUpdatedAt(now)
		if schema != nil {
			update.SetSchema(schema)
		} else {
			update.ClearSchema()
		}
		variant, err = update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update variant: %w", err)
		}
	}

	if err := s.snapshotVariant(ctx, tx, variant, p.Actor, p.ProposalID); err != nil {
		return nil, err
	}

	action := p.auditAction
	if action == "" {
		action = audit.ActionVariantUpdated
	}
	if err := audit.Record(ctx, tx, audit.Entry{
		Action:        action,
		Actor:         p.Actor,
		WorkspaceID:   project.WorkspaceID,
		ProjectID:     project.ID,
		ConfigID:      cfg.ID,
		EnvironmentID: env.ID,
		Details: map[string]interface{}{
			"version":    variant.Version,
			"proposalId": nilIfEmpty(p.ProposalID),
		},
	}); err != nil {
		return nil, err
	}

	if err := s.invalidateProposals(ctx, tx, project, cfg.ID, p.Actor, p.ProposalID); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteConfigParams removes a config and everything hanging off it.
type DeleteConfigParams struct {
	ConfigID   string
	Identity   domain.Identity
	Actor      string
	ProposalID string
}

// Delete removes the config with its variants, versions, proposals and
// member roster. The audit entry carries the full pre-deletion state;
// it is the only durable trace left.
func (s *ConfigService) Delete(ctx context.Context, tx *ent.Tx, p DeleteConfigParams) error {
	cfg, project, err := s.lockConfig(ctx, tx, p.ConfigID)
	if err != nil {
		return err
	}

	if err := s.gate(project, p.Identity, p.ProposalID, approval.Change{Delete: true}); err != nil {
		return err
	}

	members, err := s.configMembers(ctx, tx, cfg.ID)
	if err != nil {
		return err
	}
	variants, err := tx.ConfigVariant.Query().
		Where(configvariant.ConfigID(cfg.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load variants: %w", err)
	}
	variantDump := make([]map[string]interface{}, 0, len(variants))
	for _, v := range variants {
		variantDump = append(variantDump, map[string]interface{}{
			"environmentId": v.EnvironmentID,
			"value":         json.RawMessage(v.Value),
			"schema":        json.RawMessage(v.Schema),
			"useBaseSchema": v.UseBaseSchema,
			"overrides":     v.Overrides,
			"version":       v.Version,
		})
	}

	if _, err := tx.ConfigVariantVersion.Delete().
		Where(configvariantversion.ConfigID(cfg.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete variant versions: %w", err)
	}
	if _, err := tx.ConfigVariant.Delete().
		Where(configvariant.ConfigID(cfg.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	if _, err := tx.ConfigVersion.Delete().
		Where(configversion.ConfigID(cfg.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete versions: %w", err)
	}
	if _, err := tx.ConfigProposal.Delete().
		Where(configproposal.ConfigID(cfg.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete proposals: %w", err)
	}
	if _, err := tx.ConfigUser.Delete().
		Where(configuser.ConfigID(cfg.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete config users: %w", err)
	}
	if err := tx.ConfigItem.DeleteOneID(cfg.ID).Exec(ctx); err != nil {
		return fmt.Errorf("delete config: %w", err)
	}

	return audit.Record(ctx, tx, audit.Entry{
		Action:      audit.ActionConfigDeleted,
		Actor:       p.Actor,
		WorkspaceID: project.WorkspaceID,
		ProjectID:   project.ID,
		ConfigID:    cfg.ID,
		Details: map[string]interface{}{
			"name":        cfg.Name,
			"description": cfg.Description,
			"value":       json.RawMessage(cfg.Value),
			"schema":      json.RawMessage(cfg.Schema),
			"overrides":   cfg.Overrides,
			"members":     members,
			"variants":    variantDump,
			"version":     cfg.Version,
			"proposalId":  nilIfEmpty(p.ProposalID),
		},
	})
}

// RestoreVersionParams rolls the config base state back to a snapshot.
type RestoreVersionParams struct {
	ConfigID    string
	Version     int
	PrevVersion int
	Identity    domain.Identity
	Actor       string
}

// RestoreVersion re-applies snapshot Version as a NEW version. History
// stays append-only: restoring v2 over v5 produces v6 with v2's state.
func (s *ConfigService) RestoreVersion(ctx context.Context, tx *ent.Tx, p RestoreVersionParams) (*ent.ConfigItem, error) {
	snap, err := tx.ConfigVersion.Query().
		Where(configversion.ConfigID(p.ConfigID), configversion.Version(p.Version)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeVersionNotFound, "config version not found")
		}
		return nil, fmt.Errorf("load config version: %w", err)
	}

	return s.Update(ctx, tx, UpdateConfigParams{
		ConfigID:    p.ConfigID,
		PrevVersion: p.PrevVersion,
		State: domain.ConfigState{
			Description: snap.Description,
			Value:       snap.Value,
			Schema:      snap.Schema,
			Overrides:   snap.Overrides,
			Members:     snap.Members,
		},
		Identity:    p.Identity,
		Actor:       p.Actor,
		auditAction: audit.ActionConfigVersionRestored,
	})
}

// RestoreVariantVersionParams rolls one variant back to a snapshot.
type RestoreVariantVersionParams struct {
	ConfigID      string
	EnvironmentID string
	Version       int
	PrevVersion   int
	Identity      domain.Identity
	Actor         string
}

// RestoreVariantVersion re-applies a variant snapshot as a new variant
// version.
func (s *ConfigService) RestoreVariantVersion(ctx context.Context, tx *ent.Tx, p RestoreVariantVersionParams) (*ent.ConfigVariant, error) {
	snap, err := tx.ConfigVariantVersion.Query().
		Where(
			configvariantversion.ConfigID(p.ConfigID),
			configvariantversion.EnvironmentID(p.EnvironmentID),
			configvariantversion.Version(p.Version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeVersionNotFound, "variant version not found")
		}
		return nil, fmt.Errorf("load variant version: %w", err)
	}

	return s.PatchVariant(ctx, tx, PatchVariantParams{
		ConfigID:      p.ConfigID,
		EnvironmentID: p.EnvironmentID,
		PrevVersion:   p.PrevVersion,
		State: domain.VariantState{
			Value:         snap.Value,
			Schema:        snap.Schema,
			UseBaseSchema: snap.UseBaseSchema,
			Overrides:     snap.Overrides,
		},
		Identity:    p.Identity,
		Actor:       p.Actor,
		auditAction: audit.ActionVariantVersionRestored,
	})
}

// gate enforces the proposal requirement for direct user edits. API
// keys and proposal-driven applies bypass it.
func (s *ConfigService) gate(project *ent.Project, id domain.Identity, proposalID string, ch approval.Change) error {
	if proposalID != "" {
		return nil
	}
	if _, isUser := id.(domain.User); !isUser {
		return nil
	}
	if reason, required := approval.Required(project.RequireProposals, ch); required {
		return apperrors.ErrApprovalRequired(reason)
	}
	return nil
}

// lockConfig re-reads the config and its project under the open
// transaction. Every mutation starts here so concurrent edits serialize
// on the row.
func (s *ConfigService) lockConfig(ctx context.Context, tx *ent.Tx, configID string) (*ent.ConfigItem, *ent.Project, error) {
	cfg, err := tx.ConfigItem.Query().
		Where(entconfig.ID(configID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.NotFound(apperrors.CodeConfigNotFound, "config not found")
		}
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	project, err := tx.Project.Get(ctx, cfg.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("load project: %w", err)
	}
	return cfg, project, nil
}

func (s *ConfigService) configMembers(ctx context.Context, tx *ent.Tx, configID string) ([]domain.ConfigMember, error) {
	rows, err := tx.ConfigUser.Query().
		Where(configuser.ConfigID(configID)).
		Order(ent.Asc(configuser.FieldEmail)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config members: %w", err)
	}
	members := make([]domain.ConfigMember, 0, len(rows))
	for _, r := range rows {
		members = append(members, domain.ConfigMember{Email: r.Email, Role: string(r.Role)})
	}
	return members, nil
}

func (s *ConfigService) applyMemberDiff(ctx context.Context, tx *ent.Tx, configID string, added, removed []domain.ConfigMember) error {
	now := store.Now()
	for _, m := range removed {
		if _, err := tx.ConfigUser.Delete().
			Where(configuser.ConfigID(configID), configuser.Email(m.Email)).
			Exec(ctx); err != nil {
			return fmt.Errorf("remove config user: %w", err)
		}
	}
	for _, m := range added {
		if _, err := tx.ConfigUser.Create().
			SetID(store.NewID()).
			SetConfigID(configID).
			SetEmail(m.Email).
			SetRole(configuser.Role(m.Role)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx); err != nil {
			return fmt.Errorf("add config user: %w", err)
		}
	}
	return nil
}

// snapshotConfig appends the immutable version row mirroring the live
// config state.
func (s *ConfigService) snapshotConfig(ctx context.Context, tx *ent.Tx, cfg *ent.ConfigItem, members []domain.ConfigMember, actor, proposalID string) error {
	create := tx.ConfigVersion.Create().
		SetID(store.NewID()).
		SetConfigID(cfg.ID).
		SetVersion(cfg.Version).
		SetDescription(cfg.Description).
		SetValue(cfg.Value).
		SetOverrides(cfg.Overrides).
		SetMembers(members).
		SetCreatedBy(actor).
		SetCreatedAt(store.Now())
	if len(cfg.Schema) > 0 {
		create.SetSchema(cfg.Schema)
	}
	if proposalID != "" {
		create.SetProposalID(proposalID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("snapshot config v%d: %w", cfg.Version, err)
	}
	return nil
}

func (s *ConfigService) snapshotVariant(ctx context.Context, tx *ent.Tx, v *ent.ConfigVariant, actor, proposalID string) error {
	create := tx.ConfigVariantVersion.Create().
		SetID(store.NewID()).
		SetVariantID(v.ID).
		SetConfigID(v.ConfigID).
		SetEnvironmentID(v.EnvironmentID).
		SetVersion(v.Version).
		SetValue(v.Value).
		SetUseBaseSchema(v.UseBaseSchema).
		SetOverrides(v.Overrides).
		SetCreatedBy(actor).
		SetCreatedAt(store.Now())
	if len(v.Schema) > 0 {
		create.SetSchema(v.Schema)
	}
	if proposalID != "" {
		create.SetProposalID(proposalID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("snapshot variant v%d: %w", v.Version, err)
	}
	return nil
}

// invalidateProposals mass-rejects every proposal left pending after a
// successful edit. The proposal whose approval caused the edit (if
// any) is excluded; its siblings record which proposal beat them.
func (s *ConfigService) invalidateProposals(ctx context.Context, tx *ent.Tx, project *ent.Project, configID, actor, approvedProposalID string) error {
	reason := domain.RejectedByConfigEdit
	if approvedProposalID != "" {
		reason = domain.RejectedByOtherApproval
	}
	return rejectPendingProposals(ctx, tx, rejectPendingParams{
		Project:   project,
		ConfigID:  configID,
		Reason:    reason,
		ExcludeID: approvedProposalID,
		InFavorOf: approvedProposalID,
		Actor:     actor,
	})
}

// stateOf builds the comparable state of a live config row.
func stateOf(cfg *ent.ConfigItem, members []domain.ConfigMember) domain.ConfigState {
	return domain.ConfigState{
		Description: cfg.Description,
		Value:       cfg.Value,
		Schema:      cfg.Schema,
		Overrides:   cfg.Overrides,
		Members:     members,
	}
}

func variantStateOf(v *ent.ConfigVariant) domain.VariantState {
	return domain.VariantState{
		Value:         v.Value,
		Schema:        v.Schema,
		UseBaseSchema: v.UseBaseSchema,
		Overrides:     v.Overrides,
	}
}

// validateAndCanonicalize runs the full write-side validation of a base
// state: schema compiles, value conforms, overrides are well-formed and
// reference only same-project configs. Returns canonical JSON for both
// value and schema so snapshot diffs are byte-stable.
func validateAndCanonicalize(value, schema json.RawMessage, overrides []override.Override, projectID string) (json.RawMessage, json.RawMessage, error) {
	if err := schemaval.Check(schema, value); err != nil {
		return nil, nil, err
	}
	if err := validateOverrides(overrides, projectID); err != nil {
		return nil, nil, err
	}
	cvalue, err := store.CanonicalJSON(value)
	if err != nil {
		return nil, nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "value is not valid JSON")
	}
	cschema, err := canonicalSchema(schema)
	if err != nil {
		return nil, nil, err
	}
	return cvalue, cschema, nil
}

func canonicalSchema(schema json.RawMessage) (json.RawMessage, error) {
	if schemaval.IsEmpty(schema) {
		return nil, nil
	}
	c, err := store.CanonicalJSON(schema)
	if err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "schema is not valid JSON")
	}
	return c, nil
}

func validateOverrides(overrides []override.Override, projectID string) error {
	if err := override.ValidateReferences(overrides, projectID); err != nil {
		return apperrors.BadRequest(apperrors.CodeOverrideReferenceBroken, err.Error())
	}
	if err := override.Validate(overrides, projectID); err != nil {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error())
	}
	return nil
}

func normalizeMembers(members []domain.ConfigMember) []domain.ConfigMember {
	out := make([]domain.ConfigMember, 0, len(members))
	for _, m := range members {
		out = append(out, domain.ConfigMember{Email: domain.NormalizeEmail(m.Email), Role: m.Role})
	}
	return out
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
