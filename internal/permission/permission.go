// Package permission derives allow/deny decisions for management
// operations. A decision is a pure function of the identity, the
// action, and role rows looked up inside the caller's transaction.
//
// Failed read checks surface as NotFound so callers cannot probe for
// the existence of entities they cannot see; failed write checks on
// visible entities surface as Forbidden.
package permission

import (
	"context"

	"replane.io/replane/ent"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
)

// Checker answers permission questions against one open transaction.
type Checker struct {
	tx *ent.Tx
}

// NewChecker binds a checker to the transaction of the current use case.
func NewChecker(tx *ent.Tx) *Checker {
	return &Checker{tx: tx}
}

// CanReadWorkspace: workspace members, keys bound to the workspace.
func (c *Checker) CanReadWorkspace(ctx context.Context, id domain.Identity, workspaceID string) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if caller.WorkspaceID == workspaceID {
			return nil
		}
	case domain.User:
		ok, err := c.isWorkspaceMember(ctx, workspaceID, caller.Email)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return apperrors.NotFound(apperrors.CodeWorkspaceNotFound, "workspace not found")
}

// CanManageWorkspace: workspace admins; keys need member:write.
func (c *Checker) CanManageWorkspace(ctx context.Context, id domain.Identity, workspaceID string) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if caller.WorkspaceID == workspaceID && domain.HasScope(id, domain.ScopeMemberWrite) {
			return nil
		}
	case domain.User:
		role, ok, err := c.workspaceRole(ctx, workspaceID, caller.Email)
		if err != nil {
			return err
		}
		if ok && role == domain.WorkspaceRoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden("workspace admin role required")
}

// CanReadProject: workspace members, keys with project:read and access
// to this project.
func (c *Checker) CanReadProject(ctx context.Context, id domain.Identity, project *ent.Project) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if domain.HasScope(id, domain.ScopeProjectRead) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
	case domain.User:
		ok, err := c.isWorkspaceMember(ctx, project.WorkspaceID, caller.Email)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
}

// CanReadConfigs: like CanReadProject, but config:read is enough for keys.
func (c *Checker) CanReadConfigs(ctx context.Context, id domain.Identity, project *ent.Project) error {
	if _, ok := id.(domain.APIKey); ok {
		if (domain.HasScope(id, domain.ScopeProjectRead) || domain.HasScope(id, domain.ScopeConfigRead)) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
		return apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
	}
	return c.CanReadProject(ctx, id, project)
}

// CanManageProject: project admins, keys with project:write and access.
func (c *Checker) CanManageProject(ctx context.Context, id domain.Identity, project *ent.Project) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if domain.HasScope(id, domain.ScopeProjectWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
	case domain.User:
		role, ok, err := c.projectRole(ctx, project.ID, caller.Email)
		if err != nil {
			return err
		}
		if ok && role == domain.ProjectRoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden("project admin role required")
}

// CanDeleteProject: project admins only; API keys cannot delete projects.
func (c *Checker) CanDeleteProject(ctx context.Context, id domain.Identity, project *ent.Project) error {
	if _, ok := id.(domain.APIKey); ok {
		return apperrors.Forbidden(apperrors.CodeUserIdentityRequired, "project deletion requires a user identity")
	}
	return c.CanManageProject(ctx, id, project)
}

// CanManageProjectUsers: project admins only, never API keys.
func (c *Checker) CanManageProjectUsers(ctx context.Context, id domain.Identity, project *ent.Project) error {
	if _, ok := id.(domain.APIKey); ok {
		return apperrors.Forbidden(apperrors.CodeUserIdentityRequired, "project membership changes require a user identity")
	}
	return c.CanManageProject(ctx, id, project)
}

// CanCreateConfig: project admins and maintainers, keys with config:write.
func (c *Checker) CanCreateConfig(ctx context.Context, id domain.Identity, project *ent.Project) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if domain.HasScope(id, domain.ScopeConfigWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
	case domain.User:
		_, ok, err := c.projectRole(ctx, project.ID, caller.Email)
		if err != nil {
			return err
		}
		if ok {
			return nil // both admin and maintainer may create
		}
	}
	return apperrors.ErrForbidden("project admin or maintainer role required")
}

// CanEditConfig guards value and description edits: config editors and
// maintainers, project admins, keys with config:write.
func (c *Checker) CanEditConfig(ctx context.Context, id domain.Identity, project *ent.Project, cfg *ent.ConfigItem) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if domain.HasScope(id, domain.ScopeConfigWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
	case domain.User:
		_, isMember, err := c.configRole(ctx, cfg.ID, caller.Email)
		if err != nil {
			return err
		}
		if isMember {
			return nil // both editor and maintainer may edit values
		}
		role, ok, err := c.projectRole(ctx, project.ID, caller.Email)
		if err != nil {
			return err
		}
		if ok && role == domain.ProjectRoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden("config editor role required")
}

// CanManageConfig guards schema, member and delete operations: config
// maintainers, project admins, keys with config:write.
func (c *Checker) CanManageConfig(ctx context.Context, id domain.Identity, project *ent.Project, cfg *ent.ConfigItem) error {
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.APIKey:
		if domain.HasScope(id, domain.ScopeConfigWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
	case domain.User:
		role, isMember, err := c.configRole(ctx, cfg.ID, caller.Email)
		if err != nil {
			return err
		}
		if isMember && role == domain.ConfigRoleMaintainer {
			return nil
		}
		prole, ok, err := c.projectRole(ctx, project.ID, caller.Email)
		if err != nil {
			return err
		}
		if ok && prole == domain.ProjectRoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden("config maintainer role required")
}

// CanManageEnvironments: project admins, keys with environment:write.
func (c *Checker) CanManageEnvironments(ctx context.Context, id domain.Identity, project *ent.Project) error {
	if _, ok := id.(domain.APIKey); ok {
		if domain.HasScope(id, domain.ScopeEnvironmentWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
		return apperrors.ErrForbidden("environment:write scope required")
	}
	return c.CanManageProject(ctx, id, project)
}

// CanManageSDKKeys: project admins, keys with sdk_key:write.
func (c *Checker) CanManageSDKKeys(ctx context.Context, id domain.Identity, project *ent.Project) error {
	if _, ok := id.(domain.APIKey); ok {
		if domain.HasScope(id, domain.ScopeSdkKeyWrite) &&
			domain.HasProjectAccess(id, project.ID, project.WorkspaceID) {
			return nil
		}
		return apperrors.ErrForbidden("sdk_key:write scope required")
	}
	return c.CanManageProject(ctx, id, project)
}

// CanManageAdminKeys: workspace admins only, never API keys.
func (c *Checker) CanManageAdminKeys(ctx context.Context, id domain.Identity, workspaceID string) error {
	if _, ok := id.(domain.APIKey); ok {
		return apperrors.Forbidden(apperrors.CodeUserIdentityRequired, "admin API key management requires a user identity")
	}
	switch caller := id.(type) {
	case domain.Superuser:
		return nil
	case domain.User:
		role, ok, err := c.workspaceRole(ctx, workspaceID, caller.Email)
		if err != nil {
			return err
		}
		if ok && role == domain.WorkspaceRoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden("workspace admin role required")
}

// ProjectRole exposes the caller's project role for approver checks.
// The bool reports membership.
func (c *Checker) ProjectRole(ctx context.Context, projectID, email string) (string, bool, error) {
	return c.projectRole(ctx, projectID, email)
}

// ConfigRole exposes the caller's config role for approver checks.
func (c *Checker) ConfigRole(ctx context.Context, configID, email string) (string, bool, error) {
	return c.configRole(ctx, configID, email)
}

func (c *Checker) isWorkspaceMember(ctx context.Context, workspaceID, email string) (bool, error) {
	_, ok, err := c.workspaceRole(ctx, workspaceID, email)
	return ok, err
}

func (c *Checker) workspaceRole(ctx context.Context, workspaceID, email string) (string, bool, error) {
	m, err := c.tx.WorkspaceMember.Query().
		Where(
			workspacemember.WorkspaceID(workspaceID),
			workspacemember.Email(domain.NormalizeEmail(email)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(m.Role), true, nil
}

func (c *Checker) projectRole(ctx context.Context, projectID, email string) (string, bool, error) {
	u, err := c.tx.ProjectUser.Query().
		Where(
			projectuser.ProjectID(projectID),
			projectuser.Email(domain.NormalizeEmail(email)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(u.Role), true, nil
}

func (c *Checker) configRole(ctx context.Context, configID, email string) (string, bool, error) {
	u, err := c.tx.ConfigUser.Query().
		Where(
			configuser.ConfigID(configID),
			configuser.Email(domain.NormalizeEmail(email)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(u.Role), true, nil
}
