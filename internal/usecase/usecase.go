// Package usecase implements one function per management operation.
// Each method validates input, gates through the permission checker,
// runs the mutation inside a single transaction, and leaves an audit
// trail. Use cases never render HTTP; handlers translate.
package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/internal/config"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/replica"
	"replane.io/replane/internal/service"
	"replane.io/replane/internal/store"
	"replane.io/replane/internal/token"
)

// UseCases bundles the management operations over one ent client.
type UseCases struct {
	client    *ent.Client
	cfg       *config.Config
	configs   *service.ConfigService
	proposals *service.ProposalService

	adminHasher token.Hasher
	sdkHasher   token.Hasher

	// replica is invalidated after every committed config mutation.
	// Optional: nil when the SDK surface is not mounted.
	replica *replica.Service
}

func New(client *ent.Client, cfg *config.Config, rep *replica.Service) *UseCases {
	configs := service.NewConfigService()
	return &UseCases{
		client:    client,
		cfg:       cfg,
		configs:   configs,
		proposals: service.NewProposalService(configs),
		adminHasher: token.NewArgon2Hasher(token.Argon2Params{
			MemoryCost:  cfg.Security.AdminKeyHashMemoryCost,
			TimeCost:    cfg.Security.AdminKeyHashTimeCost,
			Parallelism: cfg.Security.AdminKeyHashParallelism,
		}),
		sdkHasher: token.SHA256Hasher{},
		replica:   rep,
	}
}

// inTx runs fn in one transaction with a permission checker bound to it.
func (u *UseCases) inTx(ctx context.Context, fn func(tx *ent.Tx, perm *permission.Checker) error) error {
	return store.WithTx(ctx, u.client, func(tx *ent.Tx) error {
		return fn(tx, permission.NewChecker(tx))
	})
}

func (u *UseCases) invalidateReplica(projectID string) {
	if u.replica != nil {
		u.replica.Invalidate(projectID)
	}
}

func loadProject(ctx context.Context, tx *ent.Tx, projectID string) (*ent.Project, error) {
	p, err := tx.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
		}
		return nil, fmt.Errorf("load project: %w", err)
	}
	return p, nil
}

func loadConfigWithProject(ctx context.Context, tx *ent.Tx, configID string) (*ent.ConfigItem, *ent.Project, error) {
	cfg, err := tx.ConfigItem.Get(ctx, configID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.NotFound(apperrors.CodeConfigNotFound, "config not found")
		}
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	proj, err := loadProject(ctx, tx, cfg.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return cfg, proj, nil
}

// deleteProjectContents removes everything owned by a project. Audit
// rows survive; they reference ids, not rows.
func deleteProjectContents(ctx context.Context, tx *ent.Tx, projectID string) error {
	configIDs, err := tx.ConfigItem.Query().
		Where(entconfig.ProjectID(projectID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list configs: %w", err)
	}
	if len(configIDs) > 0 {
		steps := []func() (int, error){
			func() (int, error) {
				return tx.ConfigVariantVersion.Delete().Where(configvariantversion.ConfigIDIn(configIDs...)).Exec(ctx)
			},
			func() (int, error) {
				return tx.ConfigVariant.Delete().Where(configvariant.ConfigIDIn(configIDs...)).Exec(ctx)
			},
			func() (int, error) {
				return tx.ConfigVersion.Delete().Where(configversion.ConfigIDIn(configIDs...)).Exec(ctx)
			},
			func() (int, error) {
				return tx.ConfigProposal.Delete().Where(configproposal.ConfigIDIn(configIDs...)).Exec(ctx)
			},
			func() (int, error) {
				return tx.ConfigUser.Delete().Where(configuser.ConfigIDIn(configIDs...)).Exec(ctx)
			},
			func() (int, error) {
				return tx.ConfigItem.Delete().Where(entconfig.IDIn(configIDs...)).Exec(ctx)
			},
		}
		for _, step := range steps {
			if _, err := step(); err != nil {
				return fmt.Errorf("delete project contents: %w", err)
			}
		}
	}
	if _, err := tx.SdkKey.Delete().Where(sdkkey.ProjectID(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete sdk keys: %w", err)
	}
	if _, err := tx.Environment.Delete().Where(environment.ProjectID(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete environments: %w", err)
	}
	if _, err := tx.ProjectUser.Delete().Where(projectuser.ProjectID(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete project users: %w", err)
	}
	if err := tx.Project.DeleteOneID(projectID).Exec(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
