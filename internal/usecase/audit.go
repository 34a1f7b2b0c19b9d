package usecase

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/ent/auditlog"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/permission"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

const defaultAuditPageSize = 50

// AuditPage is one keyset page of audit entries, newest first.
// NextCursor is empty when the trail is exhausted.
type AuditPage struct {
	Items      []*ent.AuditLog
	NextCursor string
}

// ListProjectAudit pages the project's audit trail.
func (u *UseCases) ListProjectAudit(ctx context.Context, id domain.Identity, projectID, cursor string, limit int) (*AuditPage, error) {
	load := func(ctx context.Context, tx *ent.Tx) (*ent.Project, error) {
		return loadProject(ctx, tx, projectID)
	}
	return u.listAudit(ctx, id, load, auditlog.ProjectID(projectID), cursor, limit)
}

// ListConfigAudit pages the trail of a single config.
func (u *UseCases) ListConfigAudit(ctx context.Context, id domain.Identity, configID, cursor string, limit int) (*AuditPage, error) {
	load := func(ctx context.Context, tx *ent.Tx) (*ent.Project, error) {
		_, proj, err := loadConfigWithProject(ctx, tx, configID)
		return proj, err
	}
	return u.listAudit(ctx, id, load, auditlog.ConfigID(configID), cursor, limit)
}

func (u *UseCases) listAudit(ctx context.Context, id domain.Identity, load func(context.Context, *ent.Tx) (*ent.Project, error), scope predicate.AuditLog, cursor string, limit int) (*AuditPage, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultAuditPageSize
	}
	var after *store.Cursor
	if cursor != "" {
		c, err := store.DecodeCursor(cursor)
		if err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidCursor, "malformed cursor")
		}
		after = &c
	}

	var page AuditPage
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := load(ctx, tx)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		q := tx.AuditLog.Query().Where(scope)
		if after != nil {
			q = q.Where(auditlog.Or(
				auditlog.CreatedAtLT(after.CreatedAt),
				auditlog.And(
					auditlog.CreatedAtEQ(after.CreatedAt),
					auditlog.IDLT(after.ID),
				),
			))
		}
		page.Items, err = q.
			Order(ent.Desc(auditlog.FieldCreatedAt), ent.Desc(auditlog.FieldID)).
			Limit(limit + 1).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list audit entries: %w", err)
		}
		if len(page.Items) > limit {
			page.Items = page.Items[:limit]
			last := page.Items[limit-1]
			page.NextCursor = store.EncodeCursor(last.CreatedAt, last.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
