package service

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/approval"
	"replane.io/replane/internal/governance/audit"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

// ProposalService runs the review workflow. A proposal is an immutable
// intent to change or delete a config, anchored to the config version
// it was written against. Approving applies it through ConfigService
// inside the same transaction; any other accepted edit rejects it.
type ProposalService struct {
	configs *ConfigService
}

// NewProposalService wires the workflow to the edit engine.
func NewProposalService(configs *ConfigService) *ProposalService {
	return &ProposalService{configs: configs}
}

// CreateProposalParams captures the author's intent. Variants may be
// empty for base-only changes; Proposed is ignored for deletes.
type CreateProposalParams struct {
	ConfigID    string
	BaseVersion int
	IsDelete    bool
	Message     string
	Proposed    domain.ConfigState
	Variants    []domain.ProposalVariant
	Author      string
}

// Create stores a pending proposal after validating it the same way a
// direct edit would be, so reviewers never look at a change that could
// not apply.
func (s *ProposalService) Create(ctx context.Context, tx *ent.Tx, p CreateProposalParams) (*ent.ConfigProposal, error) {
	cfg, project, err := s.configs.lockConfig(ctx, tx, p.ConfigID)
	if err != nil {
		return nil, err
	}
	if cfg.Version != p.BaseVersion {
		return nil, apperrors.ErrConfigVersionMismatch(cfg.Version, p.BaseVersion)
	}

	members, err := s.configs.configMembers(ctx, tx, cfg.ID)
	if err != nil {
		return nil, err
	}
	original := stateOf(cfg, members)

	proposed := p.Proposed
	variants := make([]domain.ProposalVariant, 0, len(p.Variants))
	if !p.IsDelete {
		proposed.Members = normalizeMembers(proposed.Members)
		if _, _, err := validateAndCanonicalize(proposed.Value, proposed.Schema, proposed.Overrides, project.ID); err != nil {
			return nil, err
		}

		for _, pv := range p.Variants {
			env, err := tx.Environment.Query().
				Where(environment.ID(pv.EnvironmentID), environment.ProjectID(project.ID)).
				Only(ctx)
			if err != nil {
				if ent.IsNotFound(err) {
					return nil, apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
				}
				return nil, fmt.Errorf("load environment: %w", err)
			}
			if err := validateOverrides(pv.Proposed.Overrides, project.ID); err != nil {
				return nil, err
			}

			entry := domain.ProposalVariant{EnvironmentID: env.ID, Proposed: pv.Proposed}
			variant, err := tx.ConfigVariant.Query().
				Where(configvariant.ConfigID(cfg.ID), configvariant.EnvironmentID(env.ID)).
				Only(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("load variant: %w", err)
			}
			if variant != nil {
				st := variantStateOf(variant)
				entry.Original = &st
				entry.BaseVersion = variant.Version
			}
			variants = append(variants, entry)
		}
	}

	now := store.Now()
	create := tx.ConfigProposal.Create().
		SetID(store.NewID()).
		SetConfigID(cfg.ID).
		SetAuthor(domain.NormalizeEmail(p.Author)).
		SetStatus(configproposal.StatusPending).
		SetBaseVersion(p.BaseVersion).
		SetIsDelete(p.IsDelete).
		SetOriginal(original).
		SetVariants(variants).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if p.Message != "" {
		create.SetMessage(p.Message)
	}
	if !p.IsDelete {
		create.SetProposed(proposed)
	}
	prop, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	if err := audit.Record(ctx, tx, audit.Entry{
		Action:      proposalAuditAction(prop, audit.ActionProposalCreated, audit.ActionVariantProposalCreated),
		Actor:       prop.Author,
		WorkspaceID: project.WorkspaceID,
		ProjectID:   project.ID,
		ConfigID:    cfg.ID,
		Details: map[string]interface{}{
			"proposalId":  prop.ID,
			"baseVersion": prop.BaseVersion,
			"isDelete":    prop.IsDelete,
		},
	}); err != nil {
		return nil, err
	}
	return prop, nil
}

// Approve transitions the proposal to approved and applies it. The
// status flips BEFORE the edit so snapshots written by the apply carry
// the proposal id; a failing apply rolls the whole transaction back,
// leaving the proposal pending.
func (s *ProposalService) Approve(ctx context.Context, tx *ent.Tx, proposalID string, reviewer domain.User) (*ent.ConfigProposal, error) {
	prop, err := s.pending(ctx, tx, proposalID)
	if err != nil {
		return nil, err
	}
	cfg, project, err := s.configs.lockConfig(ctx, tx, prop.ConfigID)
	if err != nil {
		return nil, err
	}

	if prop.Author == reviewer.Email && !project.AllowSelfApprovals {
		return nil, apperrors.Forbidden(apperrors.CodeSelfApprovalForbidden,
			"authors may not approve their own proposals in this project")
	}
	// Stale proposals are rejected on every config edit, so a version
	// mismatch here means the invariant broke upstream.
	if cfg.Version != prop.BaseVersion {
		return nil, apperrors.ErrConfigVersionMismatch(cfg.Version, prop.BaseVersion)
	}

	now := store.Now()
	prop, err = tx.ConfigProposal.UpdateOneID(prop.ID).
		SetStatus(configproposal.StatusApproved).
		SetReviewer(reviewer.Email).
		SetResolvedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve proposal: %w", err)
	}

	if err := audit.Record(ctx, tx, audit.Entry{
		Action:      proposalAuditAction(prop, audit.ActionProposalApproved, audit.ActionVariantProposalApproved),
		Actor:       reviewer.Email,
		WorkspaceID: project.WorkspaceID,
		ProjectID:   project.ID,
		ConfigID:    cfg.ID,
		Details:     map[string]interface{}{"proposalId": prop.ID, "author": prop.Author},
	}); err != nil {
		return nil, err
	}

	if prop.IsDelete {
		if err := s.configs.Delete(ctx, tx, DeleteConfigParams{
			ConfigID:   cfg.ID,
			Identity:   reviewer,
			Actor:      reviewer.Email,
			ProposalID: prop.ID,
		}); err != nil {
			return nil, err
		}
		return prop, nil
	}

	if _, err := s.configs.Update(ctx, tx, UpdateConfigParams{
		ConfigID:    cfg.ID,
		PrevVersion: prop.BaseVersion,
		State:       prop.Proposed,
		Identity:    reviewer,
		Actor:       reviewer.Email,
		ProposalID:  prop.ID,
	}); err != nil {
		return nil, err
	}
	for _, pv := range prop.Variants {
		if _, err := s.configs.PatchVariant(ctx, tx, PatchVariantParams{
			ConfigID:      cfg.ID,
			EnvironmentID: pv.EnvironmentID,
			PrevVersion:   pv.BaseVersion,
			State:         pv.Proposed,
			Identity:      reviewer,
			Actor:         reviewer.Email,
			ProposalID:    prop.ID,
		}); err != nil {
			return nil, err
		}
	}
	return prop, nil
}

// Reject terminates the proposal explicitly.
func (s *ProposalService) Reject(ctx context.Context, tx *ent.Tx, proposalID string, reviewer domain.User) (*ent.ConfigProposal, error) {
	prop, err := s.pending(ctx, tx, proposalID)
	if err != nil {
		return nil, err
	}
	cfg, project, err := s.configs.lockConfig(ctx, tx, prop.ConfigID)
	if err != nil {
		return nil, err
	}

	now := store.Now()
	prop, err = tx.ConfigProposal.UpdateOneID(prop.ID).
		SetStatus(configproposal.StatusRejected).
		SetReviewer(reviewer.Email).
		SetRejectionReason(configproposal.RejectionReason(domain.RejectedExplicitly)).
		SetResolvedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject proposal: %w", err)
	}

	if err := audit.Record(ctx, tx, audit.Entry{
		Action:      proposalAuditAction(prop, audit.ActionProposalRejected, audit.ActionVariantProposalRejected),
		Actor:       reviewer.Email,
		WorkspaceID: project.WorkspaceID,
		ProjectID:   project.ID,
		ConfigID:    cfg.ID,
		Details: map[string]interface{}{
			"proposalId": prop.ID,
			"reason":     domain.RejectedExplicitly,
		},
	}); err != nil {
		return nil, err
	}
	return prop, nil
}

// Classify derives the reviewer role required to approve the proposal.
// Derived on render, never stored.
func (s *ProposalService) Classify(prop *ent.ConfigProposal) domain.ApproverRole {
	return approval.ReviewerRole(proposalChange(prop))
}

func (s *ProposalService) pending(ctx context.Context, tx *ent.Tx, proposalID string) (*ent.ConfigProposal, error) {
	prop, err := tx.ConfigProposal.Query().
		Where(configproposal.ID(proposalID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeProposalNotFound, "proposal not found")
		}
		return nil, fmt.Errorf("load proposal: %w", err)
	}
	if prop.Status != configproposal.StatusPending {
		return nil, apperrors.BadRequest(apperrors.CodeProposalNotPending,
			fmt.Sprintf("proposal is already %s", prop.Status))
	}
	return prop, nil
}

// proposalChange reconstructs the structured diff a proposal carries.
func proposalChange(prop *ent.ConfigProposal) approval.Change {
	if prop.IsDelete {
		return approval.Change{Delete: true}
	}
	ch := approval.DiffStates(prop.Original, prop.Proposed)
	ch.Variants = approval.DiffVariants(prop.Variants, nil)
	return ch
}

// proposalAuditAction picks the config-level or variant-level action
// name: proposals that only touch environment variants audit under the
// variant-proposal actions.
func proposalAuditAction(prop *ent.ConfigProposal, configAction, variantAction string) string {
	if prop.IsDelete {
		return configAction
	}
	ch := approval.DiffStates(prop.Original, prop.Proposed)
	if !ch.Empty() {
		return configAction
	}
	if len(prop.Variants) > 0 {
		return variantAction
	}
	return configAction
}

type rejectPendingParams struct {
	Project   *ent.Project
	ConfigID  string
	Reason    string
	ExcludeID string
	InFavorOf string
	Actor     string
}

// rejectPendingProposals enforces the no-stale-proposal invariant: it
// terminates every pending proposal for the config in one pass. Called
// by ConfigService after each successful edit, before commit.
func rejectPendingProposals(ctx context.Context, tx *ent.Tx, p rejectPendingParams) error {
	q := tx.ConfigProposal.Query().
		Where(
			configproposal.ConfigID(p.ConfigID),
			configproposal.StatusEQ(configproposal.StatusPending),
		)
	if p.ExcludeID != "" {
		q = q.Where(configproposal.IDNEQ(p.ExcludeID))
	}
	pendings, err := q.All(ctx)
	if err != nil {
		return fmt.Errorf("load pending proposals: %w", err)
	}

	now := store.Now()
	for _, prop := range pendings {
		update := tx.ConfigProposal.UpdateOneID(prop.ID).
			SetStatus(configproposal.StatusRejected).
			SetRejectionReason(configproposal.RejectionReason(p.Reason)).
			SetResolvedAt(now).
			SetUpdatedAt(now)
		if p.InFavorOf != "" {
			update.SetRejectedInFavorOf(p.InFavorOf)
		}
		if _, err := update.Save(ctx); err != nil {
			return fmt.Errorf("reject stale proposal %s: %w", prop.ID, err)
		}

		if err := audit.Record(ctx, tx, audit.Entry{
			Action:      proposalAuditAction(prop, audit.ActionProposalRejected, audit.ActionVariantProposalRejected),
			Actor:       p.Actor,
			WorkspaceID: p.Project.WorkspaceID,
			ProjectID:   p.Project.ID,
			ConfigID:    p.ConfigID,
			Details: map[string]interface{}{
				"proposalId": prop.ID,
				"reason":     p.Reason,
				"inFavorOf":  nilIfEmpty(p.InFavorOf),
			},
		}); err != nil {
			return err
		}
	}
	return nil
}
