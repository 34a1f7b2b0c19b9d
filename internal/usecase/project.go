package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

// CreateProjectParams describes a new project. Environments defaults to
// a single "Production" environment; Admins defaults to the creating
// user. Toggle defaults come from runtime configuration when nil.
type CreateProjectParams struct {
	WorkspaceID        string
	Name               string
	Description        string
	Environments       []string
	Admins             []string
	RequireProposals   *bool
	AllowSelfApprovals *bool
}

func (u *UseCases) CreateProject(ctx context.Context, id domain.Identity, p CreateProjectParams) (*ent.Project, error) {
	if p.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "project name is required")
	}
	if key, ok := id.(domain.APIKey); ok {
		if !domain.HasScope(key, domain.ScopeProjectWrite) {
			return nil, apperrors.ErrForbidden("missing project:write scope")
		}
		if key.WorkspaceID != p.WorkspaceID {
			return nil, apperrors.NotFound(apperrors.CodeWorkspaceNotFound, "workspace not found")
		}
	}

	requireProposals := u.cfg.Proposals.RequireDefault
	if p.RequireProposals != nil {
		requireProposals = *p.RequireProposals
	}
	allowSelf := u.cfg.Proposals.AllowSelfApprovalsDefault
	if p.AllowSelfApprovals != nil {
		allowSelf = *p.AllowSelfApprovals
	}

	admins := make([]string, 0, len(p.Admins))
	for _, email := range p.Admins {
		if e := domain.NormalizeEmail(email); e != "" {
			admins = append(admins, e)
		}
	}
	if user, ok := id.(domain.User); ok {
		admins = appendUnique(admins, domain.NormalizeEmail(user.Email))
	}
	if len(admins) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "a project needs at least one admin")
	}

	envNames := p.Environments
	if len(envNames) == 0 {
		envNames = []string{"Production"}
	}

	var proj *ent.Project
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if _, ok := id.(domain.User); ok {
			if err := perm.CanManageWorkspace(ctx, id, p.WorkspaceID); err != nil {
				return err
			}
		}
		taken, err := tx.Project.Query().
			Where(project.WorkspaceID(p.WorkspaceID), project.Name(p.Name)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check project name: %w", err)
		}
		if taken {
			return apperrors.BadRequest(apperrors.CodeNameTaken,
				fmt.Sprintf("project %q already exists in this workspace", p.Name))
		}

		now := store.Now()
		proj, err = tx.Project.Create().
			SetID(store.NewID()).
			SetWorkspaceID(p.WorkspaceID).
			SetName(p.Name).
			SetDescription(p.Description).
			SetRequireProposals(requireProposals).
			SetAllowSelfApprovals(allowSelf).
			SetCreatedBy(domain.ActorID(id)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		for i, name := range envNames {
			if _, err := tx.Environment.Create().
				SetID(store.NewID()).
				SetProjectID(proj.ID).
				SetName(name).
				SetOrder(i).
				SetCreatedAt(now).
				SetUpdatedAt(now).
				Save(ctx); err != nil {
				return fmt.Errorf("create environment: %w", err)
			}
		}
		for _, email := range admins {
			if _, err := tx.ProjectUser.Create().
				SetID(store.NewID()).
				SetProjectID(proj.ID).
				SetEmail(email).
				SetRole(projectuser.RoleAdmin).
				SetCreatedAt(now).
				SetUpdatedAt(now).
				Save(ctx); err != nil {
				return fmt.Errorf("create project user: %w", err)
			}
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionProjectCreated,
			Actor:       domain.ActorID(id),
			WorkspaceID: p.WorkspaceID,
			ProjectID:   proj.ID,
			Details:     map[string]interface{}{"name": p.Name, "environments": envNames},
		})
	})
	return proj, err
}

// UpdateProjectParams carries the mutable project fields; nil keeps.
type UpdateProjectParams struct {
	Name               *string
	Description        *string
	RequireProposals   *bool
	AllowSelfApprovals *bool
}

func (u *UseCases) UpdateProject(ctx context.Context, id domain.Identity, projectID string, p UpdateProjectParams) (*ent.Project, error) {
	var proj *ent.Project
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		current, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageProject(ctx, id, current); err != nil {
			return err
		}
		update := tx.Project.UpdateOneID(projectID).SetUpdatedAt(store.Now())
		if p.Name != nil {
			if *p.Name == "" {
				return apperrors.BadRequest(apperrors.CodeInvalidRequest, "project name is required")
			}
			if *p.Name != current.Name {
				taken, err := tx.Project.Query().
					Where(project.WorkspaceID(current.WorkspaceID), project.Name(*p.Name)).
					Exist(ctx)
				if err != nil {
					return fmt.Errorf("check project name: %w", err)
				}
				if taken {
					return apperrors.BadRequest(apperrors.CodeNameTaken,
						fmt.Sprintf("project %q already exists in this workspace", *p.Name))
				}
			}
			update.SetName(*p.Name)
		}
		if p.Description != nil {
			update.SetDescription(*p.Description)
		}
		if p.RequireProposals != nil {
			update.SetRequireProposals(*p.RequireProposals)
		}
		if p.AllowSelfApprovals != nil {
			update.SetAllowSelfApprovals(*p.AllowSelfApprovals)
		}
		proj, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionProjectUpdated,
			Actor:       domain.ActorID(id),
			WorkspaceID: proj.WorkspaceID,
			ProjectID:   proj.ID,
			Details: map[string]interface{}{
				"name":               proj.Name,
				"requireProposals":   proj.RequireProposals,
				"allowSelfApprovals": proj.AllowSelfApprovals,
			},
		})
	})
	return proj, err
}

// DeleteProject removes the project and its contents. Project admin
// users only; the workspace keeps at least one project.
func (u *UseCases) DeleteProject(ctx context.Context, id domain.Identity, projectID string) error {
	user, err := domain.RequireUser(id)
	if err != nil {
		return err
	}
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanDeleteProject(ctx, id, proj); err != nil {
			return err
		}
		siblings, err := tx.Project.Query().
			Where(project.WorkspaceID(proj.WorkspaceID), project.IDNEQ(projectID)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count projects: %w", err)
		}
		if siblings == 0 {
			return apperrors.BadRequest(apperrors.CodeLastProject, "a workspace must keep at least one project")
		}
		if err := deleteProjectContents(ctx, tx, projectID); err != nil {
			return err
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionProjectDeleted,
			Actor:       user.Email,
			WorkspaceID: proj.WorkspaceID,
			ProjectID:   projectID,
			Details:     map[string]interface{}{"name": proj.Name},
		})
	})
	if err == nil {
		u.invalidateReplica(projectID)
	}
	return err
}

// ProjectView is a project with its environments and users.
type ProjectView struct {
	Project      *ent.Project
	Environments []*ent.Environment
	Users        []*ent.ProjectUser
}

func (u *UseCases) GetProject(ctx context.Context, id domain.Identity, projectID string) (*ProjectView, error) {
	var view ProjectView
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanReadProject(ctx, id, proj); err != nil {
			return err
		}
		view.Project = proj
		view.Environments, err = tx.Environment.Query().
			Where(environment.ProjectID(projectID)).
			Order(ent.Asc(environment.FieldOrder), ent.Asc(environment.FieldName)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load environments: %w", err)
		}
		view.Users, err = tx.ProjectUser.Query().
			Where(projectuser.ProjectID(projectID)).
			Order(ent.Asc(projectuser.FieldEmail)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load project users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListProjects returns the projects of a workspace the caller can read.
func (u *UseCases) ListProjects(ctx context.Context, id domain.Identity, workspaceID string) ([]*ent.Project, error) {
	var out []*ent.Project
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanReadWorkspace(ctx, id, workspaceID); err != nil {
			return err
		}
		all, err := tx.Project.Query().
			Where(project.WorkspaceID(workspaceID)).
			Order(ent.Asc(project.FieldName)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		for _, proj := range all {
			if err := perm.CanReadProject(ctx, id, proj); err == nil {
				out = append(out, proj)
			}
		}
		return nil
	})
	return out, err
}

// SetProjectUser adds a project user or changes their role.
func (u *UseCases) SetProjectUser(ctx context.Context, id domain.Identity, projectID, email string, role projectuser.Role) (*ent.ProjectUser, error) {
	if _, err := domain.RequireUser(id); err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "email is required")
	}
	var pu *ent.ProjectUser
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageProjectUsers(ctx, id, proj); err != nil {
			return err
		}
		now := store.Now()
		current, err := tx.ProjectUser.Query().
			Where(projectuser.ProjectID(projectID), projectuser.Email(email)).
			Only(ctx)
		switch {
		case err == nil:
			if current.Role == projectuser.RoleAdmin && role != projectuser.RoleAdmin {
				if err := requireAnotherProjectAdmin(ctx, tx, projectID, email); err != nil {
					return err
				}
			}
			pu, err = tx.ProjectUser.UpdateOne(current).
				SetRole(role).
				SetUpdatedAt(now).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update project user: %w", err)
			}
		case ent.IsNotFound(err):
			pu, err = tx.ProjectUser.Create().
				SetID(store.NewID()).
				SetProjectID(projectID).
				SetEmail(email).
				SetRole(role).
				SetCreatedAt(now).
				SetUpdatedAt(now).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create project user: %w", err)
			}
		default:
			return fmt.Errorf("load project user: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionProjectMembersChanged,
			Actor:       domain.ActorID(id),
			WorkspaceID: proj.WorkspaceID,
			ProjectID:   projectID,
			Details:     map[string]interface{}{"email": email, "role": string(role)},
		})
	})
	return pu, err
}

// RemoveProjectUser drops a project membership. The last admin stays.
func (u *UseCases) RemoveProjectUser(ctx context.Context, id domain.Identity, projectID, email string) error {
	if _, err := domain.RequireUser(id); err != nil {
		return err
	}
	email = domain.NormalizeEmail(email)
	return u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageProjectUsers(ctx, id, proj); err != nil {
			return err
		}
		current, err := tx.ProjectUser.Query().
			Where(projectuser.ProjectID(projectID), projectuser.Email(email)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeMemberNotFound, "project user not found")
			}
			return fmt.Errorf("load project user: %w", err)
		}
		if current.Role == projectuser.RoleAdmin {
			if err := requireAnotherProjectAdmin(ctx, tx, projectID, email); err != nil {
				return err
			}
		}
		if err := tx.ProjectUser.DeleteOne(current).Exec(ctx); err != nil {
			return fmt.Errorf("remove project user: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionProjectMembersChanged,
			Actor:       domain.ActorID(id),
			WorkspaceID: proj.WorkspaceID,
			ProjectID:   projectID,
			Details:     map[string]interface{}{"email": email, "removed": true},
		})
	})
}

func requireAnotherProjectAdmin(ctx context.Context, tx *ent.Tx, projectID, exceptEmail string) error {
	n, err := tx.ProjectUser.Query().
		Where(
			projectuser.ProjectID(projectID),
			projectuser.RoleEQ(projectuser.RoleAdmin),
			projectuser.EmailNEQ(exceptEmail),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count project admins: %w", err)
	}
	if n == 0 {
		return apperrors.BadRequest(apperrors.CodeLastAdmin, "a project must keep at least one admin")
	}
	return nil
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
