package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/permission"
	"replane.io/replane/internal/service"
)

// CreateConfigInput is the management-surface shape of a new config.
type CreateConfigInput struct {
	ProjectID   string
	Name        string
	Description string
	Value       json.RawMessage
	Schema      json.RawMessage
	Overrides   []override.Override
	Members     []domain.ConfigMember
}

func (u *UseCases) CreateConfig(ctx context.Context, id domain.Identity, in CreateConfigInput) (*ent.ConfigItem, error) {
	var cfg *ent.ConfigItem
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, in.ProjectID)
		if err != nil {
			return err
		}
		if err := perm.CanCreateConfig(ctx, id, proj); err != nil {
			return err
		}
		cfg, err = u.configs.Create(ctx, tx, service.CreateConfigParams{
			Project:     proj,
			Name:        in.Name,
			Description: in.Description,
			Value:       in.Value,
			Schema:      in.Schema,
			Overrides:   in.Overrides,
			Members:     in.Members,
			Actor:       domain.ActorID(id),
		})
		return err
	})
	if err == nil {
		u.invalidateReplica(in.ProjectID)
	}
	return cfg, err
}

// ConfigView is a config with its variants, members and the count of
// proposals still awaiting review.
type ConfigView struct {
	Config           *ent.ConfigItem
	Variants         []*ent.ConfigVariant
	Members          []*ent.ConfigUser
	PendingProposals int
}

func (u *UseCases) GetConfig(ctx context.Context, id domain.Identity, configID string) (*ConfigView, error) {
	var view ConfigView
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		cfg, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		view.Config = cfg
		view.Variants, err = tx.ConfigVariant.Query().
			Where(configvariant.ConfigID(configID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load variants: %w", err)
		}
		view.Members, err = tx.ConfigUser.Query().
			Where(configuser.ConfigID(configID)).
			Order(ent.Asc(configuser.FieldEmail)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load members: %w", err)
		}
		view.PendingProposals, err = tx.ConfigProposal.Query().
			Where(
				configproposal.ConfigID(configID),
				configproposal.StatusEQ(configproposal.StatusPending),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count pending proposals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *UseCases) ListConfigs(ctx context.Context, id domain.Identity, projectID string) ([]*ent.ConfigItem, error) {
	var out []*ent.ConfigItem
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		out, err = tx.ConfigItem.Query().
			Where(entconfig.ProjectID(projectID)).
			Order(ent.Asc(entconfig.FieldName)).
			All(ctx)
		return err
	})
	return out, err
}

// UpdateConfigInput is a full replacement of the base state guarded by
// the submitted previous version.
type UpdateConfigInput struct {
	ConfigID    string
	PrevVersion int
	State       domain.ConfigState
}

func (u *UseCases) UpdateConfig(ctx context.Context, id domain.Identity, in UpdateConfigInput) (*ent.ConfigItem, error) {
	var (
		cfg       *ent.ConfigItem
		projectID string
	)
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, proj, err := loadConfigWithProject(ctx, tx, in.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanEditConfig(ctx, id, proj, current); err != nil {
			return err
		}
		projectID = proj.ID
		cfg, err = u.configs.Update(ctx, tx, service.UpdateConfigParams{
			ConfigID:    in.ConfigID,
			PrevVersion: in.PrevVersion,
			State:       in.State,
			Identity:    id,
			Actor:       domain.ActorID(id),
		})
		return err
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return cfg, err
}

func (u *UseCases) DeleteConfig(ctx context.Context, id domain.Identity, configID string) error {
	var projectID string
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanManageConfig(ctx, id, proj, current); err != nil {
			return err
		}
		projectID = proj.ID
		return u.configs.Delete(ctx, tx, service.DeleteConfigParams{
			ConfigID: configID,
			Identity: id,
			Actor:    domain.ActorID(id),
		})
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return err
}

// PatchVariantInput edits one environment's variant of a config.
type PatchVariantInput struct {
	ConfigID      string
	EnvironmentID string
	PrevVersion   int
	State         domain.VariantState
}

func (u *UseCases) PatchConfigVariant(ctx context.Context, id domain.Identity, in PatchVariantInput) (*ent.ConfigVariant, error) {
	var (
		variant   *ent.ConfigVariant
		projectID string
	)
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, proj, err := loadConfigWithProject(ctx, tx, in.ConfigID)
		if err != nil {
			return err
		}
		if err := perm.CanEditConfig(ctx, id, proj, current); err != nil {
			return err
		}
		projectID = proj.ID
		variant, err = u.configs.PatchVariant(ctx, tx, service.PatchVariantParams{
			ConfigID:      in.ConfigID,
			EnvironmentID: in.EnvironmentID,
			PrevVersion:   in.PrevVersion,
			State:         in.State,
			Identity:      id,
			Actor:         domain.ActorID(id),
		})
		return err
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return variant, err
}

// RestoreConfigVersion re-applies a snapshot as a new version. User
// identities only; the result goes through the same gate as an edit.
func (u *UseCases) RestoreConfigVersion(ctx context.Context, id domain.Identity, configID string, version, prevVersion int) (*ent.ConfigItem, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	var (
		cfg       *ent.ConfigItem
		projectID string
	)
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanEditConfig(ctx, id, proj, current); err != nil {
			return err
		}
		projectID = proj.ID
		cfg, err = u.configs.RestoreVersion(ctx, tx, service.RestoreVersionParams{
			ConfigID:    configID,
			Version:     version,
			PrevVersion: prevVersion,
			Identity:    id,
			Actor:       user.Email,
		})
		return err
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return cfg, err
}

func (u *UseCases) RestoreConfigVariantVersion(ctx context.Context, id domain.Identity, configID, environmentID string, version, prevVersion int) (*ent.ConfigVariant, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	var (
		variant   *ent.ConfigVariant
		projectID string
	)
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanEditConfig(ctx, id, proj, current); err != nil {
			return err
		}
		projectID = proj.ID
		variant, err = u.configs.RestoreVariantVersion(ctx, tx, service.RestoreVariantVersionParams{
			ConfigID:      configID,
			EnvironmentID: environmentID,
			Version:       version,
			PrevVersion:   prevVersion,
			Identity:      id,
			Actor:         user.Email,
		})
		return err
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return variant, err
}
