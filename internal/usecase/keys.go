package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"replane.io/replane/ent"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
	"replane.io/replane/internal/token"
)

// CreateAdminKeyInput describes a new workspace admin API key.
// ProjectIDs empty means the key reaches every project.
type CreateAdminKeyInput struct {
	WorkspaceID string
	Name        string
	Description string
	Scopes      []domain.Scope
	ProjectIDs  []string
	ExpiresAt   *time.Time
}

// CreatedKey pairs a stored key row with the raw token. The raw token
// is shown exactly once; only its hash survives.
type CreatedKey[T any] struct {
	Key      T
	RawToken string
}

// CreateAdminKey mints a workspace admin API key. Workspace admin
// users only.
func (u *UseCases) CreateAdminKey(ctx context.Context, id domain.Identity, in CreateAdminKeyInput) (*CreatedKey[*ent.AdminApiKey], error) {
	user, err := domain.RequireUser(id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "key name is required")
	}
	if len(in.Scopes) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "at least one scope is required")
	}
	for _, s := range in.Scopes {
		if !domain.ValidScope(s) {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidScope, fmt.Sprintf("unknown scope %q", s))
		}
	}

	keyID := store.NewID()
	raw, err := token.Generate(token.AdminPrefix, uuid.MustParse(keyID))
	if err != nil {
		return nil, err
	}
	hash, err := u.adminHasher.Hash(raw)
	if err != nil {
		return nil, err
	}
	prefix, suffix := token.DisplayParts(raw)

	var key *ent.AdminApiKey
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageAdminKeys(ctx, id, in.WorkspaceID); err != nil {
			return err
		}
		for _, pid := range in.ProjectIDs {
			proj, err := loadProject(ctx, tx, pid)
			if err != nil {
				return err
			}
			if proj.WorkspaceID != in.WorkspaceID {
				return apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
			}
		}
		now := store.Now()
		create := tx.AdminApiKey.Create().
			SetID(keyID).
			SetWorkspaceID(in.WorkspaceID).
			SetName(in.Name).
			SetDescription(in.Description).
			SetKeyHash(hash).
			SetKeyPrefix(prefix).
			SetKeySuffix(suffix).
			SetAllProjects(len(in.ProjectIDs) == 0).
			SetCreatedBy(user.Email).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			AddProjectIDs(in.ProjectIDs...)
		if in.ExpiresAt != nil {
			create.SetExpiresAt(*in.ExpiresAt)
		}
		var err error
		key, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create admin key: %w", err)
		}
		for _, s := range in.Scopes {
			if _, err := tx.AdminApiKeyScope.Create().
				SetID(store.NewID()).
				SetKeyID(keyID).
				SetScope(string(s)).
				Save(ctx); err != nil {
				return fmt.Errorf("create key scope: %w", err)
			}
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionAdminKeyCreated,
			Actor:       user.Email,
			WorkspaceID: in.WorkspaceID,
			Details:     map[string]interface{}{"keyId": keyID, "name": in.Name},
		})
	})
	if err != nil {
		return nil, err
	}
	return &CreatedKey[*ent.AdminApiKey]{Key: key, RawToken: raw}, nil
}

// DeleteAdminKey revokes a key. The verifier's TTL bounds how long a
// cached verification survives the revocation.
func (u *UseCases) DeleteAdminKey(ctx context.Context, id domain.Identity, workspaceID, keyID string) error {
	user, err := domain.RequireUser(id)
	if err != nil {
		return err
	}
	return u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageAdminKeys(ctx, id, workspaceID); err != nil {
			return err
		}
		key, err := tx.AdminApiKey.Query().
			Where(adminapikey.ID(keyID), adminapikey.WorkspaceID(workspaceID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeKeyNotFound, "key not found")
			}
			return fmt.Errorf("load admin key: %w", err)
		}
		if _, err := tx.AdminApiKeyScope.Delete().
			Where(adminapikeyscope.KeyID(keyID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete key scopes: %w", err)
		}
		if err := tx.AdminApiKey.DeleteOne(key).Exec(ctx); err != nil {
			return fmt.Errorf("delete admin key: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:      audit.ActionAdminKeyDeleted,
			Actor:       user.Email,
			WorkspaceID: workspaceID,
			Details:     map[string]interface{}{"keyId": keyID, "name": key.Name},
		})
	})
}

// ListAdminKeys returns the workspace's keys with scopes and project
// restrictions loaded. Raw tokens are long gone; rows carry only the
// display prefix and suffix.
func (u *UseCases) ListAdminKeys(ctx context.Context, id domain.Identity, workspaceID string) ([]*ent.AdminApiKey, error) {
	var keys []*ent.AdminApiKey
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		if err := perm.CanManageAdminKeys(ctx, id, workspaceID); err != nil {
			return err
		}
		var err error
		keys, err = tx.AdminApiKey.Query().
			Where(adminapikey.WorkspaceID(workspaceID)).
			WithScopes().
			WithProjects().
			Order(ent.Asc(adminapikey.FieldName)).
			All(ctx)
		return err
	})
	return keys, err
}

// CreateSDKKeyInput describes a new environment-bound SDK key.
type CreateSDKKeyInput struct {
	ProjectID     string
	EnvironmentID string
	Name          string
	Description   string
}

// CreateSDKKey mints an SDK read key bound to one environment.
func (u *UseCases) CreateSDKKey(ctx context.Context, id domain.Identity, in CreateSDKKeyInput) (*CreatedKey[*ent.SdkKey], error) {
	if in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "key name is required")
	}
	keyID := store.NewID()
	raw, err := token.Generate(token.SDKPrefix, uuid.MustParse(keyID))
	if err != nil {
		return nil, err
	}
	hash, err := u.sdkHasher.Hash(raw)
	if err != nil {
		return nil, err
	}
	prefix, suffix := token.DisplayParts(raw)

	var key *ent.SdkKey
	err = u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, in.ProjectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageSDKKeys(ctx, id, proj); err != nil {
			return err
		}
		envOK, err := tx.Environment.Query().
			Where(environment.ID(in.EnvironmentID), environment.ProjectID(in.ProjectID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check environment: %w", err)
		}
		if !envOK {
			return apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
		}
		now := store.Now()
		key, err = tx.SdkKey.Create().
			SetID(keyID).
			SetProjectID(in.ProjectID).
			SetEnvironmentID(in.EnvironmentID).
			SetName(in.Name).
			SetDescription(in.Description).
			SetKeyHash(hash).
			SetKeyPrefix(prefix).
			SetKeySuffix(suffix).
			SetCreatedBy(domain.ActorID(id)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create sdk key: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:        audit.ActionSdkKeyCreated,
			Actor:         domain.ActorID(id),
			WorkspaceID:   proj.WorkspaceID,
			ProjectID:     in.ProjectID,
			EnvironmentID: in.EnvironmentID,
			Details:       map[string]interface{}{"keyId": keyID, "name": in.Name},
		})
	})
	if err != nil {
		return nil, err
	}
	return &CreatedKey[*ent.SdkKey]{Key: key, RawToken: raw}, nil
}

// UpdateSDKKeyParams renames or re-describes a key; the credential
// itself never changes.
type UpdateSDKKeyParams struct {
	Name        *string
	Description *string
}

func (u *UseCases) UpdateSDKKey(ctx context.Context, id domain.Identity, projectID, keyID string, p UpdateSDKKeyParams) (*ent.SdkKey, error) {
	var key *ent.SdkKey
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageSDKKeys(ctx, id, proj); err != nil {
			return err
		}
		current, err := tx.SdkKey.Query().
			Where(sdkkey.ID(keyID), sdkkey.ProjectID(projectID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeKeyNotFound, "key not found")
			}
			return fmt.Errorf("load sdk key: %w", err)
		}
		update := tx.SdkKey.UpdateOne(current).SetUpdatedAt(store.Now())
		if p.Name != nil {
			if *p.Name == "" {
				return apperrors.BadRequest(apperrors.CodeInvalidRequest, "key name is required")
			}
			update.SetName(*p.Name)
		}
		if p.Description != nil {
			update.SetDescription(*p.Description)
		}
		key, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("update sdk key: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:        audit.ActionSdkKeyUpdated,
			Actor:         domain.ActorID(id),
			WorkspaceID:   proj.WorkspaceID,
			ProjectID:     projectID,
			EnvironmentID: key.EnvironmentID,
			Details:       map[string]interface{}{"keyId": keyID, "name": key.Name},
		})
	})
	return key, err
}

func (u *UseCases) DeleteSDKKey(ctx context.Context, id domain.Identity, projectID, keyID string) error {
	return u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageSDKKeys(ctx, id, proj); err != nil {
			return err
		}
		key, err := tx.SdkKey.Query().
			Where(sdkkey.ID(keyID), sdkkey.ProjectID(projectID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeKeyNotFound, "key not found")
			}
			return fmt.Errorf("load sdk key: %w", err)
		}
		if err := tx.SdkKey.DeleteOne(key).Exec(ctx); err != nil {
			return fmt.Errorf("delete sdk key: %w", err)
		}
		return audit.Record(ctx, tx, audit.Entry{
			Action:        audit.ActionSdkKeyDeleted,
			Actor:         domain.ActorID(id),
			WorkspaceID:   proj.WorkspaceID,
			ProjectID:     projectID,
			EnvironmentID: key.EnvironmentID,
			Details:       map[string]interface{}{"keyId": keyID, "name": key.Name},
		})
	})
}

func (u *UseCases) ListSDKKeys(ctx context.Context, id domain.Identity, projectID string) ([]*ent.SdkKey, error) {
	var keys []*ent.SdkKey
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanManageSDKKeys(ctx, id, proj); err != nil {
			return err
		}
		keys, err = tx.SdkKey.Query().
			Where(sdkkey.ProjectID(projectID)).
			Order(ent.Asc(sdkkey.FieldName)).
			All(ctx)
		return err
	})
	return keys, err
}
