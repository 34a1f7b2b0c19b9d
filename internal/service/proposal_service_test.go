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
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/store"
)

func createProposal(t *testing.T, w *testWorld, svc *ProposalService, p CreateProposalParams) *ent.ConfigProposal {
	t.Helper()
	var prop *ent.ConfigProposal
	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		var err error
		prop, err = svc.Create(context.Background(), tx, p)
		return err
	})
	require.NoError(t, err)
	return prop
}

func TestProposalService_CreateCapturesOriginal(t *testing.T) {
	w := newTestWorld(t, "prop_create")
	configs := NewConfigService()
	proposals := NewProposalService(configs)

	cfg := w.createConfig(t, configs, CreateConfigParams{
		Name:    "greeting",
		Value:   json.RawMessage(`{"text":"hi"}`),
		Members: []domain.ConfigMember{{Email: "e@acme.test", Role: domain.ConfigRoleEditor}},
	})

	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID:    cfg.ID,
		BaseVersion: 1,
		Message:     "tighten the copy",
		Proposed:    domain.ConfigState{Value: json.RawMessage(`{"text":"bye"}`)},
		Author:      "Author@acme.test",
	})

	assert.Equal(t, configproposal.StatusPending, prop.Status)
	assert.Equal(t, "author@acme.test", prop.Author)
	assert.Equal(t, 1, prop.BaseVersion)
	assert.JSONEq(t, `{"text":"hi"}`, string(prop.Original.Value))
	require.Len(t, prop.Original.Members, 1)
	assert.Equal(t, "e@acme.test", prop.Original.Members[0].Email)
	assert.JSONEq(t, `{"text":"bye"}`, string(prop.Proposed.Value))
	assert.Equal(t, "tighten the copy", prop.Message)
}

func TestProposalService_CreateStaleBase(t *testing.T) {
	w := newTestWorld(t, "prop_stale")
	configs := NewConfigService()
	proposals := NewProposalService(configs)

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})

	err := store.WithTx(context.Background(), w.client, func(tx *ent.Tx) error {
		_, err := proposals.Create(context.Background(), tx, CreateProposalParams{
			ConfigID:    cfg.ID,
			BaseVersion: 7,
			Proposed:    domain.ConfigState{Value: json.RawMessage(`2`)},
			Author:      "a@acme.test",
		})
		return err
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigVersionMismatch))
}

func TestProposalService_ApprovalFlow(t *testing.T) {
	w := newTestWorld(t, "prop_approve")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()
	w.setRequireProposals(t, true, false)

	author := domain.User{Email: "u1@acme.test"}
	admin := domain.User{Email: "u2@acme.test"}

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})

	// Advance the config to version 3 like the long-lived fixture the
	// workflow usually sees.
	apiKey := domain.APIKey{KeyID: "k", WorkspaceID: w.workspace.ID, Scopes: []domain.Scope{domain.ScopeConfigWrite}}
	for v := 1; v <= 2; v++ {
		err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
			_, err := configs.Update(ctx, tx, UpdateConfigParams{
				ConfigID:    cfg.ID,
				PrevVersion: v,
				State:       domain.ConfigState{Value: json.RawMessage(`{"text":"hi"}`)},
				Identity:    apiKey,
				Actor:       domain.ActorID(apiKey),
			})
			return err
		})
		require.NoError(t, err)
	}

	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID:    cfg.ID,
		BaseVersion: 3,
		Proposed:    domain.ConfigState{Value: json.RawMessage(`{"text":"bye"}`)},
		Author:      author.Email,
	})

	// Self-approval is disabled for this project.
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, prop.ID, author)
		return err
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSelfApprovalForbidden, appErr.Code)
	assert.Equal(t, 403, appErr.HTTPStatus)

	err = store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, prop.ID, admin)
		return err
	})
	require.NoError(t, err)

	got, err := w.client.ConfigProposal.Get(ctx, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, configproposal.StatusApproved, got.Status)
	assert.Equal(t, admin.Email, got.Reviewer)
	require.NotNil(t, got.ResolvedAt)

	liveCfg, err := w.client.ConfigItem.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, liveCfg.Version)
	assert.JSONEq(t, `{"text":"bye"}`, string(liveCfg.Value))

	// Snapshot v4 links back to the proposal.
	snap, err := w.client.ConfigVersion.Query().
		Where(configversion.ConfigID(cfg.ID), configversion.Version(4)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, prop.ID, snap.ProposalID)

	// Audit order: proposal approved, then config updated.
	entries, err := w.client.AuditLog.Query().
		Where(auditlog.ConfigID(cfg.ID), auditlog.ActionIn(
			audit.ActionProposalApproved, audit.ActionConfigUpdated,
		)).
		Order(ent.Asc(auditlog.FieldID)).
		All(ctx)
	require.NoError(t, err)
	var actions []string
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	require.NotEmpty(t, actions)
	assert.Equal(t, audit.ActionProposalApproved, actions[len(actions)-2])
	assert.Equal(t, audit.ActionConfigUpdated, actions[len(actions)-1])
}

func TestProposalService_SelfApprovalAllowed(t *testing.T) {
	w := newTestWorld(t, "prop_selfok")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()
	w.setRequireProposals(t, true, true)
	author := domain.User{Email: "solo@acme.test"}

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})
	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID:    cfg.ID,
		BaseVersion: 1,
		Proposed:    domain.ConfigState{Value: json.RawMessage(`2`)},
		Author:      author.Email,
	})

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, prop.ID, author)
		return err
	})
	require.NoError(t, err)
}

func TestProposalService_ApproveRejectsSiblings(t *testing.T) {
	w := newTestWorld(t, "prop_siblings")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})

	winner := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID: cfg.ID, BaseVersion: 1,
		Proposed: domain.ConfigState{Value: json.RawMessage(`2`)},
		Author:   "a@acme.test",
	})
	loser := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID: cfg.ID, BaseVersion: 1,
		Proposed: domain.ConfigState{Value: json.RawMessage(`3`)},
		Author:   "b@acme.test",
	})

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, winner.ID, domain.User{Email: "admin@acme.test"})
		return err
	})
	require.NoError(t, err)

	got, err := w.client.ConfigProposal.Get(ctx, loser.ID)
	require.NoError(t, err)
	assert.Equal(t, configproposal.StatusRejected, got.Status)
	assert.Equal(t, configproposal.RejectionReason(domain.RejectedByOtherApproval), got.RejectionReason)
	assert.Equal(t, winner.ID, got.RejectedInFavorOf)
}

func TestProposalService_RejectIsSticky(t *testing.T) {
	w := newTestWorld(t, "prop_reject")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`1`)})
	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID: cfg.ID, BaseVersion: 1,
		Proposed: domain.ConfigState{Value: json.RawMessage(`2`)},
		Author:   "a@acme.test",
	})

	reviewer := domain.User{Email: "r@acme.test"}
	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Reject(ctx, tx, prop.ID, reviewer)
		return err
	})
	require.NoError(t, err)

	// Rejection leaves the config untouched.
	liveCfg, err := w.client.ConfigItem.Get(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liveCfg.Version)
	assert.JSONEq(t, `1`, string(liveCfg.Value))

	// Terminal states accept no second transition.
	for _, attempt := range []func(tx *ent.Tx) error{
		func(tx *ent.Tx) error { _, err := proposals.Approve(ctx, tx, prop.ID, reviewer); return err },
		func(tx *ent.Tx) error { _, err := proposals.Reject(ctx, tx, prop.ID, reviewer); return err },
	} {
		err := store.WithTx(ctx, w.client, attempt)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeProposalNotPending))
	}
}

func TestProposalService_DeleteProposal(t *testing.T) {
	w := newTestWorld(t, "prop_delete")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()
	w.setRequireProposals(t, true, true)

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "doomed", Value: json.RawMessage(`1`)})
	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID: cfg.ID, BaseVersion: 1, IsDelete: true, Author: "a@acme.test",
	})
	assert.Equal(t, domain.ApproverMaintainer, proposals.Classify(prop))

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, prop.ID, domain.User{Email: "a@acme.test"})
		return err
	})
	require.NoError(t, err)

	assert.Zero(t, w.client.ConfigItem.Query().CountX(ctx))
}

func TestProposalService_VariantProposal(t *testing.T) {
	w := newTestWorld(t, "prop_variant")
	configs := NewConfigService()
	proposals := NewProposalService(configs)
	ctx := context.Background()

	cfg := w.createConfig(t, configs, CreateConfigParams{Name: "greeting", Value: json.RawMessage(`{"text":"hi"}`)})

	prop := createProposal(t, w, proposals, CreateProposalParams{
		ConfigID:    cfg.ID,
		BaseVersion: 1,
		Proposed:    domain.ConfigState{Value: json.RawMessage(`{"text":"hi"}`)},
		Variants: []domain.ProposalVariant{{
			EnvironmentID: w.environment.ID,
			Proposed:      domain.VariantState{Value: json.RawMessage(`{"text":"prod"}`), UseBaseSchema: true},
		}},
		Author: "a@acme.test",
	})

	// Value-only changes are approvable by editors.
	assert.Equal(t, domain.ApproverEditor, proposals.Classify(prop))

	err := store.WithTx(ctx, w.client, func(tx *ent.Tx) error {
		_, err := proposals.Approve(ctx, tx, prop.ID, domain.User{Email: "admin@acme.test"})
		return err
	})
	require.NoError(t, err)

	variants, err := w.client.ConfigVariant.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.JSONEq(t, `{"text":"prod"}`, string(variants[0].Value))
}
