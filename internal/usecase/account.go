package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
)

// DeleteUserAccount removes every membership the calling user holds.
// It refuses while the user is the last admin of any workspace or
// project they belong to; those need a successor first.
func (u *UseCases) DeleteUserAccount(ctx context.Context, id domain.Identity) error {
	user, err := domain.RequireUser(id)
	if err != nil {
		return err
	}
	return u.inTx(ctx, func(tx *ent.Tx, _ *permission.Checker) error {
		wsMemberships, err := tx.WorkspaceMember.Query().
			Where(workspacemember.Email(user.Email)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list workspace memberships: %w", err)
		}
		for _, m := range wsMemberships {
			if m.Role == workspacemember.RoleAdmin {
				if err := requireAnotherWorkspaceAdmin(ctx, tx, m.WorkspaceID, user.Email); err != nil {
					if apperrors.IsCode(err, apperrors.CodeLastAdmin) {
						return apperrors.BadRequest(apperrors.CodeLastAdmin,
							"transfer workspace admin rights before deleting the account")
					}
					return err
				}
			}
		}

		projMemberships, err := tx.ProjectUser.Query().
			Where(projectuser.Email(user.Email)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list project memberships: %w", err)
		}
		for _, m := range projMemberships {
			if m.Role == projectuser.RoleAdmin {
				if err := requireAnotherProjectAdmin(ctx, tx, m.ProjectID, user.Email); err != nil {
					if apperrors.IsCode(err, apperrors.CodeLastAdmin) {
						return apperrors.BadRequest(apperrors.CodeLastAdmin,
							"transfer project admin rights before deleting the account")
					}
					return err
				}
			}
		}

		if _, err := tx.ConfigUser.Delete().
			Where(configuser.Email(user.Email)).
			Exec(ctx); err != nil {
			return fmt.Errorf("remove config memberships: %w", err)
		}
		if _, err := tx.ProjectUser.Delete().
			Where(projectuser.Email(user.Email)).
			Exec(ctx); err != nil {
			return fmt.Errorf("remove project memberships: %w", err)
		}
		if _, err := tx.WorkspaceMember.Delete().
			Where(workspacemember.Email(user.Email)).
			Exec(ctx); err != nil {
			return fmt.Errorf("remove workspace memberships: %w", err)
		}

		for _, m := range wsMemberships {
			if err := audit.Record(ctx, tx, audit.Entry{
				Action:      audit.ActionUserAccountDeleted,
				Actor:       user.Email,
				WorkspaceID: m.WorkspaceID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
