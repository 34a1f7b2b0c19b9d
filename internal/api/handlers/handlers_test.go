package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/internal/api/middleware"
	"replane.io/replane/internal/config"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/replica"
	"replane.io/replane/internal/sdkauth"
	"replane.io/replane/internal/testutil"
	"replane.io/replane/internal/token"
	"replane.io/replane/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSession = middleware.SessionConfig{
	SigningKey: []byte("0123456789abcdef0123456789abcdef"),
	Issuer:     "replane-test",
	ExpiresIn:  time.Hour,
}

type fixture struct {
	router *gin.Engine
	uc     *usecase.UseCases
}

func newFixture(t *testing.T, prefix string) *fixture {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)

	cfg := &config.Config{}
	cfg.Proposals.AllowSelfApprovalsDefault = true
	cfg.Security.AdminKeyHashMemoryCost = 8 * 1024
	cfg.Security.AdminKeyHashTimeCost = 1
	cfg.Security.AdminKeyHashParallelism = 1

	rep := replica.NewService(client, 64, time.Minute)
	uc := usecase.New(client, cfg, rep)
	verifier := sdkauth.NewVerifier(client, nil, token.NewArgon2Hasher(token.Argon2Params{
		MemoryCost:  cfg.Security.AdminKeyHashMemoryCost,
		TimeCost:    cfg.Security.AdminKeyHashTimeCost,
		Parallelism: cfg.Security.AdminKeyHashParallelism,
	}), 64, time.Minute)

	srv := NewServer(ServerDeps{UseCases: uc, Verifier: verifier, Replica: rep})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	api := r.Group("/api/v1", middleware.Authenticate(testSession, verifier), middleware.RequireIdentity())
	srv.RegisterManagement(api)
	srv.RegisterSDK(r.Group("/sdk"))
	r.GET("/healthz", srv.GetLiveness)

	return &fixture{router: r, uc: uc}
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sessionFor(t *testing.T, user domain.User) string {
	t.Helper()
	raw, _, err := middleware.GenerateSessionToken(testSession, user)
	require.NoError(t, err)
	return raw
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestManagementFlowOverHTTP(t *testing.T) {
	f := newFixture(t, "http_mgmt")
	alice := sessionFor(t, domain.User{Email: "alice@acme.test", Name: "Alice"})

	w := f.do(t, http.MethodPost, "/api/v1/workspaces", alice, gin.H{"name": "acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ws struct {
		ID string `json:"id"`
	}
	decode(t, w, &ws)

	w = f.do(t, http.MethodPost, "/api/v1/workspaces/"+ws.ID+"/projects", alice, gin.H{
		"name": "storefront",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var proj struct {
		ID string `json:"id"`
	}
	decode(t, w, &proj)

	w = f.do(t, http.MethodPost, "/api/v1/projects/"+proj.ID+"/configs", alice, gin.H{
		"name":  "checkout",
		"value": gin.H{"enabled": true},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cfg struct {
		ID      string `json:"id"`
		Version int    `json:"version"`
	}
	decode(t, w, &cfg)
	assert.Equal(t, 1, cfg.Version)

	// Stale prevVersion surfaces as a version-mismatch conflict.
	w = f.do(t, http.MethodPut, "/api/v1/configs/"+cfg.ID, alice, gin.H{
		"prevVersion": 9,
		"value":       gin.H{"enabled": false},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIG_VERSION_MISMATCH")

	w = f.do(t, http.MethodPut, "/api/v1/configs/"+cfg.ID, alice, gin.H{
		"prevVersion": 1,
		"value":       gin.H{"enabled": false},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &cfg)
	assert.Equal(t, 2, cfg.Version)

	// Anonymous and garbage credentials never reach the use cases.
	w = f.do(t, http.MethodGet, "/api/v1/workspaces", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSDKSurfaceOverHTTP(t *testing.T) {
	f := newFixture(t, "http_sdk")
	ctx := context.Background()
	alice := domain.User{Email: "alice@acme.test", Name: "Alice"}

	ws, err := f.uc.CreateWorkspace(ctx, alice, "acme")
	require.NoError(t, err)
	proj, err := f.uc.CreateProject(ctx, alice, usecase.CreateProjectParams{
		WorkspaceID:  ws.ID,
		Name:         "storefront",
		Environments: []string{"Production", "Staging"},
	})
	require.NoError(t, err)
	view, err := f.uc.GetProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	require.Len(t, view.Environments, 2)
	prod, staging := view.Environments[0], view.Environments[1]

	_, err = f.uc.CreateConfig(ctx, alice, usecase.CreateConfigInput{
		ProjectID: proj.ID,
		Name:      "checkout",
		Value:     json.RawMessage(`{"enabled":true}`),
	})
	require.NoError(t, err)

	key, err := f.uc.CreateSDKKey(ctx, alice, usecase.CreateSDKKeyInput{
		ProjectID:     proj.ID,
		EnvironmentID: prod.ID,
		Name:          "prod reader",
	})
	require.NoError(t, err)

	sdkURL := func(envID string) string {
		return "/sdk/configs?projectId=" + proj.ID + "&environmentId=" + envID
	}

	w := f.do(t, http.MethodGet, sdkURL(prod.ID), key.RawToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var payload struct {
		Configs []replica.ResolvedConfig `json:"configs"`
	}
	decode(t, w, &payload)
	require.Len(t, payload.Configs, 1)
	assert.Equal(t, "checkout", payload.Configs[0].Name)
	assert.JSONEq(t, `{"enabled":true}`, string(payload.Configs[0].Value))

	// The key is bound to Production; Staging is off limits.
	w = f.do(t, http.MethodGet, sdkURL(staging.ID), key.RawToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin keys with config read scope reach any project environment.
	adminKey, err := f.uc.CreateAdminKey(ctx, alice, usecase.CreateAdminKeyInput{
		WorkspaceID: ws.ID,
		Name:        "ci",
		Scopes:      []domain.Scope{domain.ScopeConfigRead},
	})
	require.NoError(t, err)
	w = f.do(t, http.MethodGet, sdkURL(staging.ID), adminKey.RawToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Missing credentials.
	w = f.do(t, http.MethodGet, sdkURL(prod.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthLiveness(t *testing.T) {
	f := newFixture(t, "http_health")
	w := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
