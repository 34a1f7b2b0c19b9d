package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/ent"
	"replane.io/replane/ent/auditlog"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/governance/audit"
	"replane.io/replane/internal/override"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
	"replane.io/replane/internal/testutil"
)

// testWorld seeds one workspace, project and environment.
type testWorld struct {
	client      *ent.Client
	workspace   *ent.Workspace
	project     *ent.Project
	environment *ent.Environment
}

func newTestWorld(t *testing.T, prefix string) *testWorld {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetID(store.NewID()).
		SetName("acme").
		Save(ctx)
	require.NoError(t, err)

	project, err := client.Project.Create().
		SetID(store.NewID()).
		SetWorkspaceID(ws.ID).
		SetName("p1").
		SetCreatedBy("owner@acme.test").
		Save(ctx)
	require.NoError(t, err)

	env, err := client.Environment.Create().
		SetID(store.NewID()).
		SetProjectID(project.ID).
		SetName("Production").
		SetOrder(0).
		Save(ctx)
	require.NoError(t, err)

	return &testWorld{client: client, workspace: ws, project: project, environment: env}
}

func (w *testWorld) setRequireProposals(t *testing.T, require_, allowSelf bool) {
	t.Helper()
	p, err := w.client.Project.UpdateOneID(w.project.ID).
		SetRequireProposals(require_).
		SetAllowSelfApprovals(allowSelf).
		Save(context.Background())
	require.NoError(t, err)
	w.project = p
}

func (w *testWorld) createConfig(t *testing.T, svc *ConfigService, p CreateConfigParams) *ent.ConfigItem {
	t.Helper()
	if p.Project == nil {
		p.Project = w.project
	}
	if p.Actor == "" {
		p.Actor = "owner@acme.test"
	}
	var cfg *ent.ConfigItem
	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		var err error
		cfg, err = svc.Create(context.Background(), tx, p)
		return err
	})
	require.NoError(t, err)
	return cfg
}

var greetingSchema = json.RawMessage(`{"type":"object","required":["text"],"properties":{"text":{"type":"string"}}}`)

func TestConfigService_CreateAndSnapshot(t *testing.T) {
	w := newTestWorld(t, "cfg_create")
	svc := NewConfigService()
	ctx := context.Background()

	cfg := w.createConfig(t, svc, CreateConfigParams{
		Name:   "greeting",
		Value:  json.RawMessage(`{"text":"hi"}`),
		Schema: greetingSchema,
	})
	assert.Equal(t, 1, cfg.Version)
	assert.JSONEq(t, `{"text":"hi"}`, string(cfg.Value))

	snaps, err := w.client.ConfigVersion.Query().
		Where(configversion.ConfigID(cfg.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, 1, snaps[0].Version)
	assert.JSONEq(t, `{"text":"hi"}`, string(snaps[0].Value))

	entries, err := w.client.AuditLog.Query().
		Where(auditlog.ConfigID(cfg.ID), auditlog.Action(audit.ActionConfigCreated)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConfigService_SchemaRejectsBadValue(t *testing.T) {
	w := newTestWorld(t, "cfg_schema")
	svc := NewConfigService()

	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		_, err := svc.Create(context.Background(), tx, CreateConfigParams{
			Project: w.project,
			Name:    "greeting",
			Value:   json.RawMessage(`{"text":42}`),
			Schema:  greetingSchema,
			Actor:   "owner@acme.test",
		})
		return err
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSchemaValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Message, "schema")
}

func TestConfigService_DuplicateName(t *testing.T) {
	w := newTestWorld(t, "cfg_dup")
	svc := NewConfigService()

	w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})
	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		_, err := svc.Create(context.Background(), tx, CreateConfigParams{
			Project: w.project,
			Name:    "greeting",
			Value:   json.RawMessage(`2`),
			Actor:   "owner@acme.test",
		})
		return err
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNameTaken))
}

func TestConfigService_OptimisticConflict(t *testing.T) {
	w := newTestWorld(t, "cfg_conflict")
	svc := NewConfigService()
	ctx := context.Background()
	user := domain.User{Email: "a@acme.test"}

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})

	// Caller A commits against version 1.
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State:       domain.ConfigState{Description: "A", Value: json.RawMessage(`{"text":"hi"}`)},
			Identity:    user,
			Actor:       user.Email,
		})
		return err
	})
	require.NoError(t, err)

	// Caller B still holds prevVersion 1.
	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State:       domain.ConfigState{Description: "B", Value: json.RawMessage(`{"text":"hi"}`)},
			Identity:    user,
			Actor:       user.Email,
		})
		return err
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConfigVersionMismatch, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestConfigService_IdenticalUpdateStillBumps(t *testing.T) {
	w := newTestWorld(t, "cfg_noop")
	svc := NewConfigService()
	ctx := context.Background()

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})

	// Pinned semantics: a same-state update is still an observable edit.
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State:       domain.ConfigState{Value: json.RawMessage(`{"text":"hi"}`)},
			Identity:    domain.User{Email: "a@acme.test"},
			Actor:       "a@acme.test",
		})
		return err
	})
	require.NoError(t, err)

	got, err := w.client.ConfigItem.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

func TestConfigService_UpdateDiffsMembers(t *testing.T) {
	w := newTestWorld(t, "cfg_members")
	svc := NewConfigService()
	ctx := context.Background()

	cfg := w.createConfig(t, svc, CreateConfigParams{
		Name:    "greeting",
		Value:   json.RawMessage(`1`),
		Members: []domain.ConfigMember{{Email: "Old@acme.test", Role: domain.ConfigRoleEditor}},
	})

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State: domain.ConfigState{
				Value:   json.RawMessage(`1`),
				Members: []domain.ConfigMember{{Email: "new@acme.test", Role: domain.ConfigRoleMaintainer}},
			},
			Identity: domain.User{Email: "a@acme.test"},
			Actor:    "a@acme.test",
		})
		return err
	})
	require.NoError(t, err)

	members, err := w.client.ConfigUser.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "new@acme.test", members[0].Email)

	changed, err := w.client.AuditLog.Query().
		Where(auditlog.ConfigID(cfg.ID), auditlog.Action(audit.ActionConfigMembersChanged)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}

func TestConfigService_ApprovalGate(t *testing.T) {
	w := newTestWorld(t, "cfg_gate")
	svc := NewConfigService()
	ctx := context.Background()

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})
	w.setRequireProposals(t, true, true)

	update := func(id domain.Identity) error {
		return store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
			_, err := svc.Update(ctx, tx, UpdateConfigParams{
				ConfigID:    cfg.ID,
				PrevVersion: 1,
				State:       domain.ConfigState{Value: json.RawMessage(`{"text":"bye"}`)},
				Identity:    id,
				Actor:       domain.ActorID(id),
			})
			return err
		})
	}

	// Users hit the gate.
	err := update(domain.User{Email: "a@acme.test"})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeApprovalRequired, appErr.Code)
	assert.Contains(t, appErr.Message, "value")

	// API keys bypass it.
	err = update(domain.APIKey{KeyID: "k1", WorkspaceID: w.workspace.ID, Scopes: []domain.Scope{domain.ScopeConfigWrite}})
	require.NoError(t, err)
}

func TestConfigService_CrossProjectReferenceRejected(t *testing.T) {
	w := newTestWorld(t, "cfg_xref")
	svc := NewConfigService()

	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		_, err := svc.Create(context.Background(), tx, CreateConfigParams{
			Project: w.project,
			Name:    "gated",
			Value:   json.RawMessage(`false`),
			Overrides: []override.Override{{
				Name:  "beta",
				Value: json.RawMessage(`true`),
				Conditions: []override.Condition{{
					Operator: override.OpEquals,
					Property: "cohort",
					Value:    override.ReferenceTo("some-other-project", "cohorts"),
				}},
			}},
			Actor: "owner@acme.test",
		})
		return err
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeOverrideReferenceBroken))
}

func TestConfigService_DeleteCascadesAndAudits(t *testing.T) {
	w := newTestWorld(t, "cfg_delete")
	svc := NewConfigService()
	ctx := context.Background()
	user := domain.User{Email: "a@acme.test"}

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.PatchVariant(ctx, tx, PatchVariantParams{
			ConfigID:      cfg.ID,
			EnvironmentID: w.environment.ID,
			PrevVersion:   0,
			State:         domain.VariantState{Value: json.RawMessage(`{"text":"prod"}`), UseBaseSchema: true},
			Identity:      user,
			Actor:         user.Email,
		})
		return err
	})
	require.NoError(t, err)

	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		return svc.Delete(ctx, tx, DeleteConfigParams{ConfigID: cfg.ID, Identity: user, Actor: user.Email})
	})
	require.NoError(t, err)

	for name, n := range map[string]int{
		"configs":          w.client.ConfigItem.Query().CountX(ctx),
		"variants":         w.client.ConfigVariant.Query().CountX(ctx),
		"versions":         w.client.ConfigVersion.Query().CountX(ctx),
		"variant versions": w.client.ConfigVariantVersion.Query().CountX(ctx),
		"proposals":        w.client.ConfigProposal.Query().CountX(ctx),
		"config users":     w.client.ConfigUser.Query().CountX(ctx),
	} {
		assert.Zero(t, n, name)
	}

	// The audit entry keeps the pre-deletion state.
	entry, err := w.client.AuditLog.Query().
		Where(auditlog.ConfigID(cfg.ID), auditlog.Action(audit.ActionConfigDeleted)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "greeting", entry.Details["name"])
	assert.NotNil(t, entry.Details["variants"])
}

func TestConfigService_DeleteGatedByRequireProposals(t *testing.T) {
	w := newTestWorld(t, "cfg_delete_gate")
	svc := NewConfigService()
	ctx := context.Background()

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})
	w.setRequireProposals(t, true, true)

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		return svc.Delete(ctx, tx, DeleteConfigParams{
			ConfigID: cfg.ID,
			Identity: domain.User{Email: "a@acme.test"},
			Actor:    "a@acme.test",
		})
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeApprovalRequired))
}

func TestConfigService_RestoreVersion(t *testing.T) {
	w := newTestWorld(t, "cfg_restore")
	svc := NewConfigService()
	ctx := context.Background()
	user := domain.User{Email: "a@acme.test"}

	cfg := w.createConfig(t, svc, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"v1"}`)})
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State:       domain.ConfigState{Value: json.RawMessage(`{"text":"v2"}`)},
			Identity:    user,
			Actor:       user.Email,
		})
		return err
	})
	require.NoError(t, err)

	// Restoring v1 appends v3 carrying v1's state.
	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.RestoreVersion(ctx, tx, RestoreVersionParams{
			ConfigID:    cfg.ID,
			Version:     1,
			PrevVersion: 2,
			Identity:    user,
			Actor:       user.Email,
		})
		return err
	})
	require.NoError(t, err)

	got, err := w.client.ConfigItem.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Version)
	assert.JSONEq(t, `{"text":"v1"}`, string(got.Value))

	// Version rows cover 1..3 with no gaps.
	versions, err := w.client.ConfigVersion.Query().
		Where(configversion.ConfigID(cfg.ID)).
		Order(ent.Asc(configversion.FieldVersion)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	for i, v := range versions {
		assert.Equal(t, i+1, v.Version)
	}
}

func TestConfigService_VariantVersioning(t *testing.T) {
	w := newTestWorld(t, "cfg_variant")
	svc := NewConfigService()
	ctx := context.Background()
	user := domain.User{Email: "a@acme.test"}

	cfg := w.createConfig(t, svc, CreateConfigParams{
		Name:   "greeting",
		Value:  json.RawMessage(`{"text":"hi"}`),
		Schema: greetingSchema,
	})

	// use_base_schema applies the config's default schema to the
	// variant value.
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.PatchVariant(ctx, tx, PatchVariantParams{
			ConfigID:      cfg.ID,
			EnvironmentID: w.environment.ID,
			PrevVersion:   0,
			State:         domain.VariantState{Value: json.RawMessage(`{"text":7}`), UseBaseSchema: true},
			Identity:      user,
			Actor:         user.Email,
		})
		return err
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeSchemaValidationFailed))

	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.PatchVariant(ctx, tx, PatchVariantParams{
			ConfigID:      cfg.ID,
			EnvironmentID: w.environment.ID,
			PrevVersion:   0,
			State:         domain.VariantState{Value: json.RawMessage(`{"text":"prod"}`), UseBaseSchema: true},
			Identity:      user,
			Actor:         user.Email,
		})
		return err
	})
	require.NoError(t, err)

	// Stale prev version on the variant conflicts.
	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := svc.PatchVariant(ctx, tx, PatchVariantParams{
			ConfigID:      cfg.ID,
			EnvironmentID: w.environment.ID,
			PrevVersion:   0,
			State:         domain.VariantState{Value: json.RawMessage(`{"text":"again"}`), UseBaseSchema: true},
			Identity:      user,
			Actor:         user.Email,
		})
		return err
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigVersionMismatch))

	// Variant edits do not bump the config version.
	got, err := w.client.ConfigItem.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
}

func TestConfigService_EditRejectsPendingProposals(t *testing.T) {
	w := newTestWorld(t, "cfg_bulkreject")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()
	user := domain.User{Email: "author@acme.test"}

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})

	for _, text := range []string{"p1", "p2"} {
		err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
			_, err := proposals.Create(ctx, tx, CreateProposalParams{
				ConfigID:    cfg.ID,
				BaseVersion: 1,
				Proposed:    domain.ConfigState{Value: json.RawMessage(`{"text":"` + text + `"}`)},
				Author:      user.Email,
			})
			return err
		})
		require.NoError(t, err)
	}

	// Direct edit by an admin invalidates both.
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := configs.Update(ctx, tx, UpdateConfigParams{
			ConfigID:    cfg.ID,
			PrevVersion: 1,
			State:       domain.ConfigState{Value: json.RawMessage(`{"text":"direct"}`)},
			Identity:    user,
			Actor:       user.Email,
		})
		return err
	})
	require.NoError(t, err)

	rejected, err := w.client.ConfigProposal.Query().
		Where(configproposal.StatusEQ(configproposal.StatusRejected)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rejected, 2)
	for _, p := range rejected {
		assert.Equal(t, configproposal.RejectionReason(domain.RejectedByConfigEdit), p.RejectionReason)
		assert.NotNil(t, p.ResolvedAt)
	}
}
