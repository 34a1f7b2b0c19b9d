package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/ent"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/config"
	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/testutil"
)

var (
	alice = domain.User{Email: "alice@acme.test", Name: "Alice"}
	bob   = domain.User{Email: "bob@acme.test", Name: "Bob"}
	carol = domain.User{Email: "carol@acme.test", Name: "Carol"}
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Proposals.RequireDefault = false
	cfg.Proposals.AllowSelfApprovalsDefault = true
	cfg.Security.AdminKeyHashMemoryCost = 8 * 1024
	cfg.Security.AdminKeyHashTimeCost = 1
	cfg.Security.AdminKeyHashParallelism = 1
	return cfg
}

func newUseCases(t *testing.T, prefix string) *UseCases {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	return New(client, testConfig(), nil)
}

// seedTenant creates a workspace owned by alice with one project.
func seedTenant(t *testing.T, u *UseCases) (*ent.Workspace, *ent.Project) {
	t.Helper()
	ctx := context.Background()
	ws, err := u.CreateWorkspace(ctx, alice, "acme")
	require.NoError(t, err)
	proj, err := u.CreateProject(ctx, alice, CreateProjectParams{
		WorkspaceID: ws.ID,
		Name:        "storefront",
	})
	require.NoError(t, err)
	return ws, proj
}

func TestCreateWorkspace(t *testing.T) {
	u := newUseCases(t, "uc_ws_create")
	ctx := context.Background()

	ws, err := u.CreateWorkspace(ctx, alice, "acme")
	require.NoError(t, err)

	got, members, err := u.GetWorkspace(ctx, alice, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Name)
	require.Len(t, members, 1)
	assert.Equal(t, alice.Email, members[0].Email)
	assert.Equal(t, workspacemember.RoleAdmin, members[0].Role)

	// API keys cannot open tenants.
	_, err = u.CreateWorkspace(ctx, domain.APIKey{KeyID: "k"}, "rogue")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUserIdentityRequired))
}

func TestWorkspaceLastAdminGuard(t *testing.T) {
	u := newUseCases(t, "uc_ws_guard")
	ctx := context.Background()
	ws, _ := seedTenant(t, u)

	_, err := u.ChangeWorkspaceMemberRole(ctx, alice, ws.ID, alice.Email, workspacemember.RoleMember)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastAdmin))

	err = u.RemoveWorkspaceMember(ctx, alice, ws.ID, alice.Email)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastAdmin))

	// With a second admin the demotion goes through.
	_, err = u.AddWorkspaceMember(ctx, alice, ws.ID, bob.Email, bob.Name, workspacemember.RoleAdmin)
	require.NoError(t, err)
	_, err = u.ChangeWorkspaceMemberRole(ctx, alice, ws.ID, alice.Email, workspacemember.RoleMember)
	require.NoError(t, err)
}

func TestCreateProjectDefaults(t *testing.T) {
	u := newUseCases(t, "uc_proj_create")
	ctx := context.Background()
	ws, err := u.CreateWorkspace(ctx, alice, "acme")
	require.NoError(t, err)

	proj, err := u.CreateProject(ctx, alice, CreateProjectParams{
		WorkspaceID: ws.ID,
		Name:        "storefront",
	})
	require.NoError(t, err)
	assert.False(t, proj.RequireProposals)
	assert.True(t, proj.AllowSelfApprovals)

	view, err := u.GetProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	require.Len(t, view.Environments, 1)
	assert.Equal(t, "Production", view.Environments[0].Name)
	require.Len(t, view.Users, 1)
	assert.Equal(t, alice.Email, view.Users[0].Email)
	assert.Equal(t, projectuser.RoleAdmin, view.Users[0].Role)

	// Duplicate name within the workspace.
	_, err = u.CreateProject(ctx, alice, CreateProjectParams{WorkspaceID: ws.ID, Name: "storefront"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNameTaken))
}

func TestDeleteProjectGuards(t *testing.T) {
	u := newUseCases(t, "uc_proj_delete")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	// The only project cannot go.
	err := u.DeleteProject(ctx, alice, proj.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastProject))

	_, err = u.CreateProject(ctx, alice, CreateProjectParams{
		WorkspaceID: proj.WorkspaceID,
		Name:        "billing",
	})
	require.NoError(t, err)

	// API keys cannot delete projects at all.
	err = u.DeleteProject(ctx, domain.APIKey{KeyID: "k", WorkspaceID: proj.WorkspaceID}, proj.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUserIdentityRequired))

	require.NoError(t, u.DeleteProject(ctx, alice, proj.ID))
	_, err = u.GetProject(ctx, alice, proj.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProjectNotFound))
}

func TestEnvironmentLifecycle(t *testing.T) {
	u := newUseCases(t, "uc_env")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	view, err := u.GetProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	prodID := view.Environments[0].ID

	// Last environment is protected.
	err = u.DeleteEnvironment(ctx, alice, proj.ID, prodID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastEnvironment))

	staging, err := u.CreateEnvironment(ctx, alice, proj.ID, "Staging")
	require.NoError(t, err)
	assert.Equal(t, 1, staging.Order)

	_, err = u.CreateEnvironment(ctx, alice, proj.ID, "Staging")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNameTaken))

	flagged, err := u.UpdateEnvironment(ctx, alice, proj.ID, staging.ID, UpdateEnvironmentParams{
		RequireProposals: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, flagged.RequireProposals)

	require.NoError(t, u.DeleteEnvironment(ctx, alice, proj.ID, staging.ID))
}

func TestProjectUserGuards(t *testing.T) {
	u := newUseCases(t, "uc_proj_users")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	// alice is the only project admin.
	err := u.RemoveProjectUser(ctx, alice, proj.ID, alice.Email)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastAdmin))

	_, err = u.SetProjectUser(ctx, alice, proj.ID, bob.Email, projectuser.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, u.RemoveProjectUser(ctx, alice, proj.ID, alice.Email))
}

func TestAdminKeyLifecycle(t *testing.T) {
	u := newUseCases(t, "uc_admin_keys")
	ctx := context.Background()
	ws, proj := seedTenant(t, u)

	created, err := u.CreateAdminKey(ctx, alice, CreateAdminKeyInput{
		WorkspaceID: ws.ID,
		Name:        "ci",
		Scopes:      []domain.Scope{domain.ScopeConfigWrite},
		ProjectIDs:  []string{proj.ID},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.RawToken, "rpa_"))

	keys, err := u.ListAdminKeys(ctx, alice, ws.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.False(t, keys[0].AllProjects)
	assert.NotContains(t, keys[0].KeyHash, created.RawToken)
	assert.True(t, strings.HasPrefix(created.RawToken, keys[0].KeyPrefix))
	assert.True(t, strings.HasSuffix(created.RawToken, keys[0].KeySuffix))

	_, err = u.CreateAdminKey(ctx, alice, CreateAdminKeyInput{
		WorkspaceID: ws.ID,
		Name:        "bad",
		Scopes:      []domain.Scope{"no:such"},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidScope))

	// Only workspace admin users mint keys.
	_, err = u.CreateAdminKey(ctx, bob, CreateAdminKeyInput{
		WorkspaceID: ws.ID,
		Name:        "stolen",
		Scopes:      []domain.Scope{domain.ScopeConfigRead},
	})
	require.Error(t, err)

	require.NoError(t, u.DeleteAdminKey(ctx, alice, ws.ID, created.Key.ID))
	keys, err = u.ListAdminKeys(ctx, alice, ws.ID)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSDKKeyLifecycle(t *testing.T) {
	u := newUseCases(t, "uc_sdk_keys")
	ctx := context.Background()
	_, proj := seedTenant(t, u)
	view, err := u.GetProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	envID := view.Environments[0].ID

	created, err := u.CreateSDKKey(ctx, alice, CreateSDKKeyInput{
		ProjectID:     proj.ID,
		EnvironmentID: envID,
		Name:          "web",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.RawToken, "rp_"))

	renamed, err := u.UpdateSDKKey(ctx, alice, proj.ID, created.Key.ID, UpdateSDKKeyParams{
		Name: strPtr("web-prod"),
	})
	require.NoError(t, err)
	assert.Equal(t, "web-prod", renamed.Name)

	require.NoError(t, u.DeleteSDKKey(ctx, alice, proj.ID, created.Key.ID))
	keys, err := u.ListSDKKeys(ctx, alice, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestProposalApproverRoles(t *testing.T) {
	u := newUseCases(t, "uc_prop_roles")
	ctx := context.Background()
	ws, proj := seedTenant(t, u)
	_, err := u.UpdateProject(ctx, alice, proj.ID, UpdateProjectParams{
		RequireProposals: boolPtr(true),
	})
	require.NoError(t, err)
	for _, reviewer := range []domain.User{bob, carol} {
		_, err = u.AddWorkspaceMember(ctx, alice, ws.ID, reviewer.Email, reviewer.Name, workspacemember.RoleMember)
		require.NoError(t, err)
	}

	cfg, err := u.CreateConfig(ctx, alice, CreateConfigInput{
		ProjectID: proj.ID,
		Name:      "greeting",
		Value:     json.RawMessage(`{"text":"hi"}`),
		Members: []domain.ConfigMember{
			{Email: bob.Email, Role: domain.ConfigRoleEditor},
			{Email: carol.Email, Role: domain.ConfigRoleMaintainer},
		},
	})
	require.NoError(t, err)

	// A schema change demands a maintainer.
	prop, err := u.CreateProposal(ctx, alice, CreateProposalInput{
		ConfigID:    cfg.ID,
		BaseVersion: 1,
		Proposed: domain.ConfigState{
			Value:  json.RawMessage(`{"text":"hi"}`),
			Schema: json.RawMessage(`{"type":"object"}`),
		},
	})
	require.NoError(t, err)

	view, err := u.GetProposal(ctx, alice, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApproverMaintainer, view.ApproverRole)

	_, err = u.ApproveProposal(ctx, bob, prop.ID)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = u.ApproveProposal(ctx, carol, prop.ID)
	require.NoError(t, err)

	// A value-only change is reviewable by an editor.
	prop, err = u.CreateProposal(ctx, alice, CreateProposalInput{
		ConfigID:    cfg.ID,
		BaseVersion: 2,
		Proposed: domain.ConfigState{
			Value:  json.RawMessage(`{"text":"bye"}`),
			Schema: json.RawMessage(`{"type":"object"}`),
		},
	})
	require.NoError(t, err)
	view, err = u.GetProposal(ctx, alice, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApproverEditor, view.ApproverRole)

	_, err = u.ApproveProposal(ctx, bob, prop.ID)
	require.NoError(t, err)
}

func TestListPendingProposals(t *testing.T) {
	u := newUseCases(t, "uc_prop_list")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	cfg, err := u.CreateConfig(ctx, alice, CreateConfigInput{
		ProjectID: proj.ID,
		Name:      "greeting",
		Value:     json.RawMessage(`1`),
	})
	require.NoError(t, err)

	_, err = u.CreateProposal(ctx, alice, CreateProposalInput{
		ConfigID:    cfg.ID,
		BaseVersion: 1,
		Proposed:    domain.ConfigState{Value: json.RawMessage(`2`)},
	})
	require.NoError(t, err)

	byProject, err := u.ListPendingProposals(ctx, alice, proj.ID, "")
	require.NoError(t, err)
	assert.Len(t, byProject, 1)

	byConfig, err := u.ListPendingProposals(ctx, alice, proj.ID, cfg.ID)
	require.NoError(t, err)
	assert.Len(t, byConfig, 1)
}

func TestAuditPagination(t *testing.T) {
	u := newUseCases(t, "uc_audit")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	cfg, err := u.CreateConfig(ctx, alice, CreateConfigInput{
		ProjectID: proj.ID,
		Name:      "greeting",
		Value:     json.RawMessage(`0`),
	})
	require.NoError(t, err)
	for v := 1; v <= 5; v++ {
		_, err := u.UpdateConfig(ctx, alice, UpdateConfigInput{
			ConfigID:    cfg.ID,
			PrevVersion: v,
			State:       domain.ConfigState{Value: json.RawMessage(`1`)},
		})
		require.NoError(t, err)
	}

	var seen []string
	cursor := ""
	for {
		page, err := u.ListConfigAudit(ctx, alice, cfg.ID, cursor, 2)
		require.NoError(t, err)
		for _, e := range page.Items {
			seen = append(seen, e.ID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	// create + 5 updates.
	assert.Len(t, seen, 6)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i-1], seen[i], "newest first, no duplicates")
	}

	_, err = u.ListProjectAudit(ctx, alice, proj.ID, "not-a-cursor", 10)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCursor))
}

func TestExportProject(t *testing.T) {
	u := newUseCases(t, "uc_export")
	ctx := context.Background()
	_, proj := seedTenant(t, u)

	cfg, err := u.CreateConfig(ctx, alice, CreateConfigInput{
		ProjectID: proj.ID,
		Name:      "greeting",
		Value:     json.RawMessage(`{"text":"hi"}`),
		Members:   []domain.ConfigMember{{Email: bob.Email, Role: domain.ConfigRoleEditor}},
	})
	require.NoError(t, err)

	view, err := u.GetProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	_, err = u.PatchConfigVariant(ctx, alice, PatchVariantInput{
		ConfigID:      cfg.ID,
		EnvironmentID: view.Environments[0].ID,
		PrevVersion:   0,
		State: domain.VariantState{
			Value:         json.RawMessage(`{"text":"prod"}`),
			UseBaseSchema: true,
		},
	})
	require.NoError(t, err)

	dump, err := u.ExportProject(ctx, alice, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "storefront", dump.Project.Name)
	require.Len(t, dump.Environments, 1)
	require.Len(t, dump.Configs, 1)
	assert.JSONEq(t, `{"text":"hi"}`, string(dump.Configs[0].Value))
	require.Len(t, dump.Configs[0].Variants, 1)
	assert.JSONEq(t, `{"text":"prod"}`, string(dump.Configs[0].Variants[0].Value))
	require.Len(t, dump.Configs[0].Members, 1)

	// The dump is one valid JSON document.
	raw, err := json.Marshal(dump)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestDeleteUserAccount(t *testing.T) {
	u := newUseCases(t, "uc_account")
	ctx := context.Background()
	ws, proj := seedTenant(t, u)

	// alice is last admin everywhere.
	err := u.DeleteUserAccount(ctx, alice)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeLastAdmin))

	_, err = u.AddWorkspaceMember(ctx, alice, ws.ID, bob.Email, bob.Name, workspacemember.RoleAdmin)
	require.NoError(t, err)
	_, err = u.SetProjectUser(ctx, alice, proj.ID, bob.Email, projectuser.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, u.DeleteUserAccount(ctx, alice))

	_, members, err := u.GetWorkspace(ctx, bob, ws.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, bob.Email, members[0].Email)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
