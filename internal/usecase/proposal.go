package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/service"
)

// CreateProposalInput describes a change submitted for review.
type CreateProposalInput struct {
	ConfigID    string
	BaseVersion int
	IsDelete    bool
	Message     string
	Proposed    domain.ConfigState
	Variants    []domain.ProposalVariant
}

func (u *UseCases) CreateProposal(ctx context.Context, id domain.Identity, in CreateProposalInput) (*ent.ConfigProposal, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	var prop *ent.ConfigProposal
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		cfg, proj, err := loadConfigWithProject(ctx, tx, in.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanEditConfig(ctx, id, proj, cfg); err != nil {
			return err
		}
		prop, err = u.proposals.Create(ctx, tx, service.CreateProposalParams{
			ConfigID:    in.ConfigID,
			BaseVersion: in.BaseVersion,
			IsDelete:    in.IsDelete,
			Message:     in.Message,
			Proposed:    in.Proposed,
			Variants:    in.Variants,
			Author:      user.Email,
		})
		return err
	})
	return prop, err
}

// ProposalView pairs a proposal with the role its approval demands.
type ProposalView struct {
	Proposal     *ent.ConfigProposal
	ApproverRole domain.ApproverRole
}

func (u *UseCases) GetProposal(ctx context.Context, id domain.Identity, proposalID string) (*ProposalView, error) {
	var view ProposalView
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		prop, err := loadProposal(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		_, proj, err := loadConfigWithProject(ctx, tx, prop.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		view.Proposal = prop
		view.ApproverRole = u.proposals.Classify(prop)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ApproveProposal applies a pending proposal. The reviewer must hold
// the role the change class demands.
func (u *UseCases) ApproveProposal(ctx context.Context, id domain.Identity, proposalID string) (*ent.ConfigProposal, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	var (
		prop      *ent.ConfigProposal
		projectID string
	)
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		pending, err := loadProposal(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		cfg, proj, err := loadConfigWithProject(ctx, tx, pending.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		if err := u.requireApproverRole(ctx, perm, proj, cfg, user, u.proposals.Classify(pending)); err != nil {
			return err
		}
		projectID = proj.ID
		prop, err = u.proposals.Approve(ctx, tx, proposalID, user)
		return err
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return prop, err
}

// RejectProposal closes a pending proposal without applying it.
func (u *UseCases) RejectProposal(ctx context.Context, id domain.Identity, proposalID string) (*ent.ConfigProposal, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	var prop *ent.ConfigProposal
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		pending, err := loadProposal(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		cfg, proj, err := loadConfigWithProject(ctx, tx, pending.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		if err := u.requireApproverRole(ctx, perm, proj, cfg, user, u.proposals.Classify(pending)); err != nil {
			return err
		}
		prop, err = u.proposals.Reject(ctx, tx, proposalID, user)
		return err
	})
	return prop, err
}

// ListPendingProposals returns the pending reviews of one config, or of
// a whole project when configID is empty.
func (u *UseCases) ListPendingProposals(ctx context.Context, id domain.Identity, projectID, configID string) ([]*ent.ConfigProposal, error) {
	var out []*ent.ConfigProposal
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		var proj *ent.Project
		var err error
		if configID != "" {
			_, proj, err = loadConfigWithProject(ctx, tx, configID)
		} else {
			proj, err = loadProject(ctx, tx, projectID)
		}
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		q := tx.ConfigProposal.Query().
			Where(configproposal.StatusEQ(configproposal.StatusPending))
		if configID != "" {
			q = q.Where(configproposal.ConfigID(configID))
		} else {
			q = q.Where(configproposal.HasConfigWith(entconfig.ProjectID(projectID)))
		}
		out, err = q.Order(ent.Desc(configproposal.FieldCreatedAt)).All(ctx)
		if err != nil {
			return fmt.Errorf("list proposals: %w", err)
		}
		return nil
	})
	return out, err
}

// ClassifyProposal derives the approver role a proposal demands.
func (u *UseCases) ClassifyProposal(prop *ent.ConfigProposal) domain.ApproverRole {
	return u.proposals.Classify(prop)
}

// requireApproverRole checks that the reviewer holds the demanded role:
// config maintainers and project admins or maintainers review
// everything; config editors review value-level changes only.
func (u *UseCases) requireApproverRole(ctx context.Context, perm *permission.Checker, proj *ent.Project, cfg *ent.ConfigItem, reviewer domain.User, need domain.ApproverRole) error {
	projRole, hasProjRole, err := perm.ProjectRole(ctx, proj.ID, reviewer.Email)
	if err != nil {
		return err
	}
	if hasProjRole && (projRole == "admin" || projRole == "maintainer") {
		return nil
	}
	cfgRole, hasCfgRole, err := perm.ConfigRole(ctx, cfg.ID, reviewer.Email)
	if err != nil {
		return err
	}
	if hasCfgRole {
		if cfgRole == "maintainer" {
			return nil
		}
		if cfgRole == "editor" && need == domain.ApproverEditor {
			return nil
		}
	}
	return apperrors.ErrForbidden("insufficient role to review this proposal")
}

func loadProposal(ctx context.Context, tx *ent.Tx, proposalID string) (*ent.ConfigProposal, error) {
	prop, err := tx.ConfigProposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeProposalNotFound, "proposal not found")
		}
		return nil, fmt.Errorf("load proposal: %w", err)
	}
	return prop, nil
}
