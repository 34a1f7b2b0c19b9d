package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/workspace"
	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

// CreateWorkspace opens a new tenant. The creator becomes its first
// admin; API keys cannot create workspaces.
func (u *UseCases) CreateWorkspace(ctx context.Context, id domain.Identity, name string) (*ent.Workspace, error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "workspace name is required")
	}

	var ws *ent.Workspace
	err = u.inTx(ctx, func(tx *ent.Tx, _ *permission.Checker) error {
		now := store.Now()
		ws, err = tx.Workspace.Create().
			SetID(store.NewID()).
			SetName(name).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create workspace: %w", err)
		}
		if _, err := tx.WorkspaceMember.Create().
			SetID(store.NewID()).
			SetWorkspaceID(ws.ID).
			SetEmail(user.Email).
			SetName(user.Name).
			SetRole(workspacemember.RoleAdmin).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx); err != nil {
			return fmt.Errorf("create workspace member: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceCreated,
			Actor:       user.Email,
			WorkspaceID: ws.ID,
			Details:     map[string]interface{}{"name": name},
		})
	})
	return ws, err
}

// UpdateWorkspaceParams carries the mutable workspace fields; nil means
// keep as is.
type UpdateWorkspaceParams struct {
	Name            *string
	AutoAddNewUsers *bool
}

func (u *UseCases) UpdateWorkspace(ctx context.Context, id domain.Identity, workspaceID string, p UpdateWorkspaceParams) (*ent.Workspace, error) {
	var ws *ent.Workspace
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		update := tx.Workspace.UpdateOneID(workspaceID).SetUpdatedAt(store.Now())
		if p.Name != nil {
			if *p.Name == "" {
				return apperrors.BadRequest(apperrors.CodeInvalidRequest, "workspace name is required")
			}
			update.SetName(*p.Name)
		}
		if p.AutoAddNewUsers != nil {
			update.SetAutoAddNewUsers(*p.AutoAddNewUsers)
		}
		var err error
		ws, err = update.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeWorkspaceNotFound, "workspace not found")
			}
			return fmt.Errorf("update workspace: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceUpdated,
			Actor:       domain.ActorID(id),
			WorkspaceID: ws.ID,
			Details:     map[string]interface{}{"name": ws.Name, "autoAddNewUsers": ws.AutoAddNewUsers},
		})
	})
	return ws, err
}

// DeleteWorkspace tears down the tenant and everything under it.
func (u *UseCases) DeleteWorkspace(ctx context.Context, id domain.Identity, workspaceID string) error {
	user, err := domain.RequireUser(id)
	if err != nil {
		return err
	}
	return u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		projectIDs, err := tx.Project.Query().
			Where(project.WorkspaceID(workspaceID)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		for _, pid := range projectIDs {
			if err := deleteProjectContents(ctx, tx, pid); err != nil {
				return err
			}
		}
		keyIDs, err := tx.AdminApiKey.Query().
			Where(adminapikey.WorkspaceID(workspaceID)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("list admin keys: %w", err)
		}
		if len(keyIDs) > 0 {
			if _, err := tx.AdminApiKeyScope.Delete().
				Where(adminapikeyscope.KeyIDIn(keyIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("delete admin key scopes: %w", err)
			}
			if _, err := tx.AdminApiKey.Delete().
				Where(adminapikey.IDIn(keyIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("delete admin keys: %w", err)
			}
		}
		if _, err := tx.WorkspaceMember.Delete().
			Where(workspacemember.WorkspaceID(workspaceID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete workspace members: %w", err)
		}
		if err := tx.Workspace.DeleteOneID(workspaceID).Exec(ctx); err != nil {
			return fmt.Errorf("delete workspace: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceDeleted,
			Actor:       user.Email,
			WorkspaceID: workspaceID,
		})
	})
}

func (u *UseCases) GetWorkspace(ctx context.Context, id domain.Identity, workspaceID string) (*ent.Workspace, []*ent.WorkspaceMember, error) {
	var (
		ws      *ent.Workspace
		members []*ent.WorkspaceMember
	)
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanReadWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		var err error
		ws, err = tx.Workspace.Get(ctx, workspaceID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeWorkspaceNotFound, "workspace not found")
			}
			return fmt.Errorf("load workspace: %w", err)
		}
		members, err = tx.WorkspaceMember.Query().
			Where(workspacemember.WorkspaceID(workspaceID)).
			Order(ent.Asc(workspacemember.FieldEmail)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load members: %w", err)
		}
		return nil
	})
	return ws, members, err
}

// ListWorkspaces returns the workspaces visible to the caller: the ones
// the user is a member of, or the single workspace an API key belongs to.
func (u *UseCases) ListWorkspaces(ctx context.Context, id domain.Identity) ([]*ent.Workspace, error) {
	switch v := id.(type) {
	case domain.User:
		memberships, err := u.client.WorkspaceMember.Query().
			Where(workspacemember.Email(domain.NormalizeEmail(v.Email))).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list memberships: %w", err)
		}
		ids := make([]string, 0, len(memberships))
		for _, m := range memberships {
			ids = append(ids, m.WorkspaceID)
		}
		if len(ids) == 0 {
			return []*ent.Workspace{}, nil
		}
		return u.client.Workspace.Query().
			Where(workspace.IDIn(ids...)).
			All(ctx)
	case domain.APIKey:
		ws, err := u.client.Workspace.Get(ctx, v.WorkspaceID)
		if err != nil {
			return nil, fmt.Errorf("load workspace: %w", err)
		}
		return []*ent.Workspace{ws}, nil
	default:
		return nil, apperrors.ErrForbidden("no workspace access")
	}
}

// AddWorkspaceMember adds or reactivates a member.
func (u *UseCases) AddWorkspaceMember(ctx context.Context, id domain.Identity, workspaceID, email, name string, role workspacemember.Role) (*ent.WorkspaceMember, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "member email is required")
	}
	var member *ent.WorkspaceMember
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		exists, err := tx.WorkspaceMember.Query().
			Where(workspacemember.WorkspaceID(workspaceID), workspacemember.Email(email)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check member: %w", err)
		}
		if exists {
			return apperrors.BadRequest(apperrors.CodeNameTaken, "already a member")
		}
		now := store.Now()
		member, err = tx.WorkspaceMember.Create().
			SetID(store.NewID()).
			SetWorkspaceID(workspaceID).
			SetEmail(email).
			SetName(name).
			SetRole(role).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceMemberAdded,
			Actor:       domain.ActorID(id),
			WorkspaceID: workspaceID,
			Details:     map[string]interface{}{"email": email, "role": string(role)},
		})
	})
	return member, err
}

// RemoveWorkspaceMember drops a membership. The last admin stays.
func (u *UseCases) RemoveWorkspaceMember(ctx context.Context, id domain.Identity, workspaceID, email string) error {
	email = domain.NormalizeEmail(email)
	return u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		member, err := tx.WorkspaceMember.Query().
			Where(workspacemember.WorkspaceID(workspaceID), workspacemember.Email(email)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeMemberNotFound, "member not found")
			}
			return fmt.Errorf("load member: %w", err)
		}
		if member.Role == workspacemember.RoleAdmin {
			if err := requireAnotherWorkspaceAdmin(ctx, tx, workspaceID, email); err != nil {
				return err
			}
		}
		if err := tx.WorkspaceMember.DeleteOne(member).Exec(ctx); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceMemberRemoved,
			Actor:       domain.ActorID(id),
			WorkspaceID: workspaceID,
			Details:     map[string]interface{}{"email": email},
		})
	})
}

// ChangeWorkspaceMemberRole flips a member between admin and member.
func (u *UseCases) ChangeWorkspaceMemberRole(ctx context.Context, id domain.Identity, workspaceID, email string, role workspacemember.Role) (*ent.WorkspaceMember, error) {
	email = domain.NormalizeEmail(email)
	var member *ent.WorkspaceMember
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		current, err := tx.WorkspaceMember.Query().
			Where(workspacemember.WorkspaceID(workspaceID), workspacemember.Email(email)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeMemberNotFound, "member not found")
			}
			return fmt.Errorf("load member: %w", err)
		}
		if current.Role == workspacemember.RoleAdmin && role != workspacemember.RoleAdmin {
			if err := requireAnotherWorkspaceAdmin(ctx, tx, workspaceID, email); err != nil {
				return err
			}
		}
		member, err = tx.WorkspaceMember.UpdateOne(current).
			SetRole(role).
			SetUpdatedAt(store.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("change member role: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionWorkspaceMemberRoleChanged,
			Actor:       domain.ActorID(id),
			WorkspaceID: workspaceID,
			Details:     map[string]interface{}{"email": email, "role": string(role)},
		})
	})
	return member, err
}

func requireAnotherWorkspaceAdmin(ctx context.Context, tx *ent.Tx, workspaceID, exceptEmail string) error {
	n, err := tx.WorkspaceMember.Query().
		Where(
			workspacemember.WorkspaceID(workspaceID),
			workspacemember.RoleEQ(workspacemember.RoleAdmin),
			workspacemember.EmailNEQ(exceptEmail),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n == 0 {
		return apperrors.BadRequest(apperrors.CodeLastAdmin, "a workspace must keep at least one admin")
	}
	return nil
}
