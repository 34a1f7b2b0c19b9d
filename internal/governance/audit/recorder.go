// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT
// allowed. Entries are written inside the same transaction as the
// change they describe, so an aborted use case leaves no trace.
package audit

import (
	"context"
	"fmt"

	"replane.io/replane/ent"
	"replane.io/replane/internal/store"
)

// Actions form a closed set; handlers and dashboards key off them.
const (
	ActionWorkspaceCreated = "workspace_created"
	ActionWorkspaceUpdated = "workspace_updated"
	ActionWorkspaceDeleted = "workspace_deleted"

	ActionWorkspaceMemberAdded       = "workspace_member_added"
	ActionWorkspaceMemberRemoved     = "workspace_member_removed"
	ActionWorkspaceMemberRoleChanged = "workspace_member_role_changed"

	ActionProjectCreated        = "project_created"
	ActionProjectUpdated        = "project_updated"
	ActionProjectDeleted        = "project_deleted"
	ActionProjectMembersChanged = "project_members_changed"

	ActionEnvironmentCreated = "environment_created"
	ActionEnvironmentDeleted = "environment_deleted"

	ActionConfigCreated         = "config_created"
	ActionConfigUpdated         = "config_updated"
	ActionConfigDeleted         = "config_deleted"
	ActionConfigVersionRestored = "config_version_restored"
	ActionConfigMembersChanged  = "config_members_changed"

	ActionVariantUpdated         = "config_variant_updated"
	ActionVariantVersionRestored = "config_variant_version_restored"

	ActionProposalCreated  = "config_proposal_created"
	ActionProposalApproved = "config_proposal_approved"
	ActionProposalRejected = "config_proposal_rejected"

	ActionVariantProposalCreated  = "config_variant_proposal_created"
	ActionVariantProposalApproved = "config_variant_proposal_approved"
	ActionVariantProposalRejected = "config_variant_proposal_rejected"

	ActionSdkKeyCreated = "sdk_key_created"
	ActionSdkKeyUpdated = "sdk_key_updated"
	ActionSdkKeyDeleted = "sdk_key_deleted"

	ActionAdminKeyCreated = "admin_api_key_created"
	ActionAdminKeyDeleted = "admin_api_key_deleted"

	ActionUserAccountDeleted = "user_account_deleted"
)

// Entry is one auditable event. Scoping ids are optional; set the ones
// that exist for the action.
type Entry struct {
	Action        string
	Actor         string
	WorkspaceID   string
	ProjectID     string
	ConfigID      string
	EnvironmentID string
	Details       map[string]interface{}
}

// Record appends one entry within the caller's transaction.
func Record(ctx context.Context, tx *ent.Tx, e Entry) error {
	create := tx.AuditLog.Create().
		SetID(store.NewID()).
		SetAction(e.Action).
		SetActor(e.Actor).
		SetCreatedAt(store.Now())
	if e.WorkspaceID != "" {
		create.SetWorkspaceID(e.WorkspaceID)
	}
	if e.ProjectID != "" {
		create.SetProjectID(e.ProjectID)
	}
	if e.ConfigID != "" {
		create.SetConfigID(e.ConfigID)
	}
	if e.EnvironmentID != "" {
		create.SetEnvironmentID(e.EnvironmentID)
	}
	if e.Details != nil {
		create.SetDetails(e.Details)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
