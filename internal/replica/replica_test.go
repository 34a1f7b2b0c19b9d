package replica

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/ent"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/store"
	"replane.io/replane/internal/testutil"
)

type fixture struct {
	client *ent.Client
	proj   *ent.Project
	env    *ent.Environment
}

func newFixture(t *testing.T, prefix string) *fixture {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	ctx := context.Background()

	ws, err := client.Workspace.Create().SetID(store.NewID()).SetName("acme").Save(ctx)
	require.NoError(t, err)
	proj, err := client.Project.Create().
		SetID(store.NewID()).SetWorkspaceID(ws.ID).SetName("p1").SetCreatedBy("o@acme.test").
		Save(ctx)
	require.NoError(t, err)
	env, err := client.Environment.Create().
		SetID(store.NewID()).SetProjectID(proj.ID).SetName("Production").SetOrder(0).
		Save(ctx)
	require.NoError(t, err)
	return &fixture{client: client, proj: proj, env: env}
}

func (f *fixture) addConfig(t *testing.T, name string, value string, overrides []override.Override) *ent.ConfigItem {
	t.Helper()
	cfg, err := f.client.ConfigItem.Create().
		SetID(store.NewID()).
		SetProjectID(f.proj.ID).
		SetName(name).
		SetVersion(1).
		SetValue(json.RawMessage(value)).
		SetOverrides(overrides).
		SetCreatedBy("o@acme.test").
		Save(context.Background())
	require.NoError(t, err)
	return cfg
}

func TestReplica_VariantShadowsBase(t *testing.T) {
	f := newFixture(t, "replica_variant")
	ctx := context.Background()

	base := f.addConfig(t, "greeting", `{"text":"hi"}`, nil)
	f.addConfig(t, "plain", `42`, nil)

	_, err := f.client.ConfigVariant.Create().
		SetID(store.NewID()).
		SetConfigID(base.ID).
		SetEnvironmentID(f.env.ID).
		SetVersion(3).
		SetValue(json.RawMessage(`{"text":"prod"}`)).
		SetUseBaseSchema(true).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(f.client, 16, time.Minute)
	got, err := svc.GetProjectConfigs(ctx, f.proj.ID, f.env.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "greeting", got[0].Name)
	assert.JSONEq(t, `{"text":"prod"}`, string(got[0].Value))
	assert.Equal(t, 3, got[0].Version)

	assert.Equal(t, "plain", got[1].Name)
	assert.JSONEq(t, `42`, string(got[1].Value))
	assert.Equal(t, 1, got[1].Version)
}

func TestReplica_ResolvesReferences(t *testing.T) {
	f := newFixture(t, "replica_refs")
	ctx := context.Background()

	f.addConfig(t, "rollout", `{"cohort":"beta"}`, nil)
	f.addConfig(t, "banner", `{"show":false}`, []override.Override{{
		Name: "beta users",
		Conditions: []override.Condition{{
			Operator: override.OpEquals,
			Property: "cohort",
			Value:    override.ReferenceTo(f.proj.ID, "rollout", override.K("cohort")),
		}},
		Value: json.RawMessage(`{"show":true}`),
	}})
	f.addConfig(t, "dangling", `1`, []override.Override{{
		Name: "missing ref",
		Conditions: []override.Condition{{
			Operator: override.OpEquals,
			Property: "x",
			Value:    override.ReferenceTo(f.proj.ID, "no-such-config", override.K("y")),
		}},
		Value: json.RawMessage(`2`),
	}})

	svc := NewService(f.client, 16, time.Minute)
	got, err := svc.GetProjectConfigs(ctx, f.proj.ID, f.env.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	banner := got[0]
	require.Equal(t, "banner", banner.Name)
	cond := banner.Overrides[0].Conditions[0]
	require.NotNil(t, cond.Value)
	assert.Equal(t, override.OperandLiteral, cond.Value.Type)
	assert.JSONEq(t, `"beta"`, string(cond.Value.Value))

	dangling := got[1]
	require.Equal(t, "dangling", dangling.Name)
	cond = dangling.Overrides[0].Conditions[0]
	assert.Equal(t, override.OperandLiteral, cond.Value.Type)
	assert.JSONEq(t, `null`, string(cond.Value.Value))
}

func TestReplica_CacheAndInvalidate(t *testing.T) {
	f := newFixture(t, "replica_cache")
	ctx := context.Background()

	cfg := f.addConfig(t, "greeting", `1`, nil)

	svc := NewService(f.client, 16, time.Minute)
	got, err := svc.GetProjectConfigs(ctx, f.proj.ID, f.env.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `1`, string(got[0].Value))

	// A write behind the cache stays invisible until invalidation.
	err = f.client.ConfigItem.UpdateOneID(cfg.ID).
		SetVersion(2).
		SetValue(json.RawMessage(`2`)).
		Exec(ctx)
	require.NoError(t, err)

	got, err = svc.GetProjectConfigs(ctx, f.proj.ID, f.env.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `1`, string(got[0].Value))

	svc.Invalidate(f.proj.ID)
	got, err = svc.GetProjectConfigs(ctx, f.proj.ID, f.env.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `2`, string(got[0].Value))
	assert.Equal(t, 2, got[0].Version)
}

func TestReplica_UnknownEnvironment(t *testing.T) {
	f := newFixture(t, "replica_env")
	svc := NewService(f.client, 16, time.Minute)

	_, err := svc.GetProjectConfigs(context.Background(), f.proj.ID, store.NewID())
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEnvironmentNotFound))
}
