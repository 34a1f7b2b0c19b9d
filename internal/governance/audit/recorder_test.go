package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/ent/auditlog"
	"replane.io/replane/internal/testutil"
)

func TestRecord_WritesScopedEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_record")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	err = Record(ctx, tx, Entry{
		Action:      ActionConfigUpdated,
		Actor:       "alice@example.com",
		WorkspaceID: "ws-1",
		ProjectID:   "proj-1",
		ConfigID:    "cfg-1",
		Details:     map[string]interface{}{"version": 2},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	row, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ(ActionConfigUpdated)).
		Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", row.Actor)
	assert.Equal(t, "ws-1", row.WorkspaceID)
	assert.Equal(t, "proj-1", row.ProjectID)
	assert.Equal(t, "cfg-1", row.ConfigID)
	assert.Empty(t, row.EnvironmentID)
	assert.EqualValues(t, 2, row.Details["version"])
	assert.False(t, row.CreatedAt.IsZero())
	assert.NotEmpty(t, row.ID)
}

func TestRecord_RollsBackWithTransaction(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_rollback")
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	require.NoError(t, Record(ctx, tx, Entry{
		Action: ActionProjectDeleted,
		Actor:  "bob@example.com",
	}))
	require.NoError(t, tx.Rollback())

	n, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "an aborted transaction must leave no audit trace")
}
