package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

// CreateEnvironment appends an environment to the project's display
// order.
func (u *UseCases) CreateEnvironment(ctx context.Context, id domain.Identity, projectID, name string) (*ent.Environment, error) {
	if name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "environment name is required")
	}
	var env *ent.Environment
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageEnvironments(ctx, id, proj); err != nil {
			return err
		}
		taken, err := tx.Environment.Query().
			Where(environment.ProjectID(projectID), environment.Name(name)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check environment name: %w", err)
		}
		if taken {
			return apperrors.BadRequest(apperrors.CodeNameTaken,
				fmt.Sprintf("environment %q already exists in this project", name))
		}
		order, err := tx.Environment.Query().
			Where(environment.ProjectID(projectID)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count environments: %w", err)
		}
		now := store.Now()
		env, err = tx.Environment.Create().
			SetID(store.NewID()).
			SetProjectID(projectID).
			SetName(name).
			SetOrder(order).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create environment: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:        audit.ActionEnvironmentCreated,
			Actor:         domain.ActorID(id),
			WorkspaceID:   proj.WorkspaceID,
			ProjectID:     projectID,
			EnvironmentID: env.ID,
			Details:       map[string]interface{}{"name": name},
		})
	})
	return env, err
}

// UpdateEnvironmentParams carries the mutable environment fields.
type UpdateEnvironmentParams struct {
	Name             *string
	Order            *int
	RequireProposals *bool
}

func (u *UseCases) UpdateEnvironment(ctx context.Context, id domain.Identity, projectID, environmentID string, p UpdateEnvironmentParams) (*ent.Environment, error) {
	var env *ent.Environment
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageEnvironments(ctx, id, proj); err != nil {
			return err
		}
		current, err := tx.Environment.Query().
			Where(environment.ID(environmentID), environment.ProjectID(projectID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
			}
			return fmt.Errorf("load environment: %w", err)
		}
		update := tx.Environment.UpdateOne(current).SetUpdatedAt(store.Now())
		if p.Name != nil {
			if *p.Name == "" {
				return apperrors.BadRequest(apperrors.CodeInvalidRequest, "environment name is required")
			}
			if *p.Name != current.Name {
				taken, err := tx.Environment.Query().
					Where(environment.ProjectID(projectID), environment.Name(*p.Name)).
					Exist(ctx)
				if err != nil {
					return fmt.Errorf("check environment name: %w", err)
				}
				if taken {
					return apperrors.BadRequest(apperrors.CodeNameTaken,
						fmt.Sprintf("environment %q already exists in this project", *p.Name))
				}
			}
			update.SetName(*p.Name)
		}
		if p.Order != nil {
			update.SetOrder(*p.Order)
		}
		if p.RequireProposals != nil {
			update.SetRequireProposals(*p.RequireProposals)
		}
		env, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("update environment: %w", err)
		}
		return nil
	})
	return env, err
}

// DeleteEnvironment removes an environment with its variants, variant
// history and SDK keys. The project keeps at least one environment.
func (u *UseCases) DeleteEnvironment(ctx context.Context, id domain.Identity, projectID, environmentID string) error {
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageEnvironments(ctx, id, proj); err != nil {
			return err
		}
		env, err := tx.Environment.Query().
			Where(environment.ID(environmentID), environment.ProjectID(projectID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
			}
			return fmt.Errorf("load environment: %w", err)
		}
		siblings, err := tx.Environment.Query().
			Where(environment.ProjectID(projectID), environment.IDNEQ(environmentID)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count environments: %w", err)
		}
		if siblings == 0 {
			return apperrors.BadRequest(apperrors.CodeLastEnvironment, "a project must keep at least one environment")
		}
		if _, err := tx.ConfigVariantVersion.Delete().
			Where(configvariantversion.EnvironmentID(environmentID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete variant versions: %w", err)
		}
		if _, err := tx.ConfigVariant.Delete().
			Where(configvariant.EnvironmentID(environmentID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete variants: %w", err)
		}
		if _, err := tx.SdkKey.Delete().
			Where(sdkkey.EnvironmentID(environmentID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete sdk keys: %w", err)
		}
		if err := tx.Environment.DeleteOne(env).Exec(ctx); err != nil {
			return fmt.Errorf("delete environment: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:        audit.ActionEnvironmentDeleted,
			Actor:         domain.ActorID(id),
			WorkspaceID:   proj.WorkspaceID,
			ProjectID:     projectID,
			EnvironmentID: environmentID,
			Details:       map[string]interface{}{"name": env.Name},
		})
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return err
}
