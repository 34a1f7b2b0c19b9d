package sdkauth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/ent"
	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
	"replane.io/replane/internal/testutil"
	"replane.io/replane/internal/token"
)

var testArgon = token.Argon2Params{MemoryCost: 8 * 1024, TimeCost: 1, Parallelism: 1}

type keyFixture struct {
	client *ent.Client
	ws     *ent.Workspace
	proj   *ent.Project
	env    *ent.Environment
}

func newKeyFixture(t *testing.T, prefix string) *keyFixture {
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
	return &keyFixture{client: client, ws: ws, proj: proj, env: env}
}

func (f *keyFixture) mintSDKKey(t *testing.T) (raw string) {
	t.Helper()
	id := store.NewID()
	raw, err := token.Generate(token.SDKPrefix, uuid.MustParse(id))
	require.NoError(t, err)
	hash, err := token.SHA256Hasher{}.Hash(raw)
	require.NoError(t, err)
	_, err = f.client.SdkKey.Create().
		SetID(id).
		SetProjectID(f.proj.ID).
		SetEnvironmentID(f.env.ID).
		SetName("ci").
		SetKeyHash(hash).
		SetKeyPrefix(raw[:9]).
		SetKeySuffix(raw[len(raw)-4:]).
		SetCreatedBy("o@acme.test").
		Save(context.Background())
	require.NoError(t, err)
	return raw
}

func (f *keyFixture) mintAdminKey(t *testing.T, expires *time.Time, scopes ...domain.Scope) (raw, keyID string) {
	t.Helper()
	id := store.NewID()
	raw, err := token.Generate(token.AdminPrefix, uuid.MustParse(id))
	require.NoError(t, err)
	hash, err := token.NewArgon2Hasher(testArgon).Hash(raw)
	require.NoError(t, err)
	create := f.client.AdminApiKey.Create().
		SetID(id).
		SetWorkspaceID(f.ws.ID).
		SetName("automation").
		SetKeyHash(hash).
		SetKeyPrefix(raw[:10]).
		SetKeySuffix(raw[len(raw)-4:]).
		SetCreatedBy("o@acme.test")
	if expires != nil {
		create.SetExpiresAt(*expires)
	}
	_, err = create.Save(context.Background())
	require.NoError(t, err)
	for _, s := range scopes {
		_, err = f.client.AdminApiKeyScope.Create().
			SetID(store.NewID()).
			SetKeyID(id).
			SetScope(string(s)).
			Save(context.Background())
		require.NoError(t, err)
	}
	return raw, id
}

func (f *keyFixture) verifier() *Verifier {
	return NewVerifier(f.client, nil, token.NewArgon2Hasher(testArgon), 64, time.Minute)
}

func TestVerifier_SDKKey(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_sdk")
	raw := f.mintSDKKey(t)

	res, err := f.verifier().Verify(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, res.Binding)
	assert.Equal(t, f.proj.ID, res.Binding.ProjectID)
	assert.Equal(t, f.env.ID, res.Binding.EnvironmentID)
	assert.Nil(t, res.Identity)
}

func TestVerifier_AdminKey(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_admin")
	raw, keyID := f.mintAdminKey(t, nil, domain.ScopeConfigWrite)

	res, err := f.verifier().Verify(context.Background(), raw)
	require.NoError(t, err)
	key, ok := res.Identity.(domain.APIKey)
	require.True(t, ok)
	assert.Equal(t, keyID, key.KeyID)
	assert.Equal(t, f.ws.ID, key.WorkspaceID)
	assert.Nil(t, key.ProjectIDs)
	assert.Equal(t, []domain.Scope{domain.ScopeConfigWrite}, key.Scopes)
}

func TestVerifier_Rejections(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_reject")
	v := f.verifier()
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	expired, _ := f.mintAdminKey(t, &past)

	// Right shape, unknown id.
	unknown, err := token.Generate(token.SDKPrefix, uuid.New())
	require.NoError(t, err)

	// Known id, wrong secret bytes.
	good := f.mintSDKKey(t)
	_, id, err := token.Parse(good)
	require.NoError(t, err)
	forged, err := token.Generate(token.SDKPrefix, id)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":       "not-a-token",
		"wrong prefix":  "zz_" + good[len("rp_"):],
		"unknown key":   unknown,
		"forged secret": forged,
		"expired admin": expired,
	} {
		_, err := v.Verify(ctx, raw)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken), "%s: %v", name, err)
	}
}

func TestVerifier_CachesWithinTTL(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_cache")
	v := f.verifier()
	ctx := context.Background()

	raw := f.mintSDKKey(t)
	res, err := v.Verify(ctx, raw)
	require.NoError(t, err)
	keyID := res.Binding.KeyID

	// A server-side delete stays invisible to this verifier until the
	// cached future expires.
	require.NoError(t, f.client.SdkKey.DeleteOneID(keyID).Exec(ctx))
	res, err = v.Verify(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, keyID, res.Binding.KeyID)

	// A fresh verifier sees the delete at once.
	_, err = f.verifier().Verify(ctx, raw)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestVerifier_FailedLookupNotCached(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_nocache")
	v := f.verifier()
	ctx := context.Background()

	id := store.NewID()
	raw, err := token.Generate(token.SDKPrefix, uuid.MustParse(id))
	require.NoError(t, err)

	_, err = v.Verify(ctx, raw)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))

	// The key appears afterwards; the earlier failure must not linger.
	hash, err := token.SHA256Hasher{}.Hash(raw)
	require.NoError(t, err)
	_, err = f.client.SdkKey.Create().
		SetID(id).
		SetProjectID(f.proj.ID).
		SetEnvironmentID(f.env.ID).
		SetName("late").
		SetKeyHash(hash).
		SetKeyPrefix(raw[:9]).
		SetKeySuffix(raw[len(raw)-4:]).
		SetCreatedBy("o@acme.test").
		Save(ctx)
	require.NoError(t, err)

	res, err := v.Verify(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, id, res.Binding.KeyID)
}

func TestVerifier_CoalescesConcurrentCalls(t *testing.T) {
	f := newKeyFixture(t, "sdkauth_burst")
	v := f.verifier()
	raw := f.mintSDKKey(t)

	var wg sync.WaitGroup
	results := make([]*Binding, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := v.Verify(context.Background(), raw)
			if err == nil {
				results[i] = res.Binding
			}
		}(i)
	}
	wg.Wait()

	for i, b := range results {
		require.NotNil(t, b, "call %d", i)
		assert.Equal(t, f.proj.ID, b.ProjectID)
	}
}
