package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/permission"
)

const defaultVersionPageSize = 50

// VersionPage is one keyset page of snapshots, newest first. NextBefore
// is zero when the history is exhausted.
type VersionPage[T any] struct {
	Items      []T
	NextBefore int
}

// ListConfigVersions pages through base-state snapshots, version
// descending. before == 0 starts at the newest.
func (u *UseCases) ListConfigVersions(ctx context.Context, id domain.Identity, configID string, before, limit int) (*VersionPage[*ent.ConfigVersion], error) {
	if limit <= 0 || limit > 200 {
		limit = defaultVersionPageSize
	}
	var page VersionPage[*ent.ConfigVersion]
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		_, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		q := tx.ConfigVersion.Query().
			Where(configversion.ConfigID(configID))
		if before > 0 {
			q = q.Where(configversion.VersionLT(before))
		}
		page.Items, err = q.
			Order(ent.Desc(configversion.FieldVersion)).
			Limit(limit + 1).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list config versions: %w", err)
		}
		if len(page.Items) > limit {
			page.Items = page.Items[:limit]
			page.NextBefore = page.Items[limit-1].Version
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListConfigVariantVersions pages through one environment's variant
// snapshots, version descending.
func (u *UseCases) ListConfigVariantVersions(ctx context.Context, id domain.Identity, configID, environmentID string, before, limit int) (*VersionPage[*ent.ConfigVariantVersion], error) {
	if limit <= 0 || limit > 200 {
		limit = defaultVersionPageSize
	}
	var page VersionPage[*ent.ConfigVariantVersion]
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		_, proj, err := loadConfigWithProject(ctx, tx, configID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		q := tx.ConfigVariantVersion.Query().
			Where(
				configvariantversion.ConfigID(configID),
				configvariantversion.EnvironmentID(environmentID),
			)
		if before > 0 {
			q = q.Where(configvariantversion.VersionLT(before))
		}
		page.Items, err = q.
			Order(ent.Desc(configvariantversion.FieldVersion)).
			Limit(limit + 1).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list variant versions: %w", err)
		}
		if len(page.Items) > limit {
			page.Items = page.Items[:limit]
			page.NextBefore = page.Items[limit-1].Version
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
