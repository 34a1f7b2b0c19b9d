// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/auditlog"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/ent/workspace"
	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminApiKey          = "AdminApiKey"
	TypeAdminApiKeyScope     = "AdminApiKeyScope"
	TypeAuditLog             = "AuditLog"
	TypeConfigItem           = "ConfigItem"
	TypeConfigProposal       = "ConfigProposal"
	TypeConfigUser           = "ConfigUser"
	TypeConfigVariant        = "ConfigVariant"
	TypeConfigVariantVersion = "ConfigVariantVersion"
	TypeConfigVersion        = "ConfigVersion"
	TypeEnvironment          = "Environment"
	TypeProject              = "Project"
	TypeProjectUser          = "ProjectUser"
	TypeSdkKey               = "SdkKey"
	TypeWorkspace            = "Workspace"
	TypeWorkspaceMember      = "WorkspaceMember"
)

// AdminApiKeyMutation represents an operation that mutates the AdminApiKey nodes in the graph.
type AdminApiKeyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	description      *string
	key_hash         *string
	key_prefix       *string
	key_suffix       *string
	all_projects     *bool
	created_by       *string
	expires_at       *time.Time
	last_used_at     *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	scopes           map[string]struct{}
	removedscopes    map[string]struct{}
	clearedscopes    bool
	projects         map[string]struct{}
	removedprojects  map[string]struct{}
	clearedprojects  bool
	done             bool
	oldValue         func(context.Context) (*AdminApiKey, error)
	predicates       []predicate.AdminApiKey
}

var _ ent.Mutation = (*AdminApiKeyMutation)(nil)

// adminapikeyOption allows management of the mutation configuration using functional options.
type adminapikeyOption func(*AdminApiKeyMutation)

// newAdminApiKeyMutation creates new mutation for the AdminApiKey entity.
func newAdminApiKeyMutation(c config, op Op, opts ...adminapikeyOption) *AdminApiKeyMutation {
	m := &AdminApiKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminApiKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminApiKeyID sets the ID field of the mutation.
func withAdminApiKeyID(id string) adminapikeyOption {
	return func(m *AdminApiKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminApiKey
		)
		m.oldValue = func(ctx context.Context) (*AdminApiKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminApiKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminApiKey sets the old AdminApiKey of the mutation.
func withAdminApiKey(node *AdminApiKey) adminapikeyOption {
	return func(m *AdminApiKeyMutation) {
		m.oldValue = func(context.Context) (*AdminApiKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminApiKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminApiKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminApiKey entities.
func (m *AdminApiKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminApiKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminApiKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminApiKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminApiKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminApiKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminApiKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdminApiKeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdminApiKeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdminApiKeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AdminApiKeyMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AdminApiKeyMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AdminApiKeyMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *AdminApiKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AdminApiKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AdminApiKeyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AdminApiKeyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AdminApiKeyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AdminApiKeyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[adminapikey.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AdminApiKeyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[adminapikey.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AdminApiKeyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, adminapikey.FieldDescription)
}

// SetKeyHash sets the "key_hash" field.
func (m *AdminApiKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *AdminApiKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *AdminApiKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetKeyPrefix sets the "key_prefix" field.
func (m *AdminApiKeyMutation) SetKeyPrefix(s string) {
	m.key_prefix = &s
}

// KeyPrefix returns the value of the "key_prefix" field in the mutation.
func (m *AdminApiKeyMutation) KeyPrefix() (r string, exists bool) {
	v := m.key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPrefix returns the old "key_prefix" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPrefix: %w", err)
	}
	return oldValue.KeyPrefix, nil
}

// ResetKeyPrefix resets all changes to the "key_prefix" field.
func (m *AdminApiKeyMutation) ResetKeyPrefix() {
	m.key_prefix = nil
}

// SetKeySuffix sets the "key_suffix" field.
func (m *AdminApiKeyMutation) SetKeySuffix(s string) {
	m.key_suffix = &s
}

// KeySuffix returns the value of the "key_suffix" field in the mutation.
func (m *AdminApiKeyMutation) KeySuffix() (r string, exists bool) {
	v := m.key_suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeySuffix returns the old "key_suffix" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldKeySuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeySuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeySuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeySuffix: %w", err)
	}
	return oldValue.KeySuffix, nil
}

// ResetKeySuffix resets all changes to the "key_suffix" field.
func (m *AdminApiKeyMutation) ResetKeySuffix() {
	m.key_suffix = nil
}

// SetAllProjects sets the "all_projects" field.
func (m *AdminApiKeyMutation) SetAllProjects(b bool) {
	m.all_projects = &b
}

// AllProjects returns the value of the "all_projects" field in the mutation.
func (m *AdminApiKeyMutation) AllProjects() (r bool, exists bool) {
	v := m.all_projects
	if v == nil {
		return
	}
	return *v, true
}

// OldAllProjects returns the old "all_projects" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldAllProjects(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllProjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllProjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllProjects: %w", err)
	}
	return oldValue.AllProjects, nil
}

// ResetAllProjects resets all changes to the "all_projects" field.
func (m *AdminApiKeyMutation) ResetAllProjects() {
	m.all_projects = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *AdminApiKeyMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AdminApiKeyMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AdminApiKeyMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AdminApiKeyMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AdminApiKeyMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *AdminApiKeyMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[adminapikey.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *AdminApiKeyMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[adminapikey.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AdminApiKeyMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, adminapikey.FieldExpiresAt)
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *AdminApiKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *AdminApiKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the AdminApiKey entity.
// If the AdminApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *AdminApiKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[adminapikey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *AdminApiKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[adminapikey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *AdminApiKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, adminapikey.FieldLastUsedAt)
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AdminApiKeyMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[adminapikey.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AdminApiKeyMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AdminApiKeyMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AdminApiKeyMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddScopeIDs adds the "scopes" edge to the AdminApiKeyScope entity by ids.
func (m *AdminApiKeyMutation) AddScopeIDs(ids ...string) {
	if m.scopes == nil {
		m.scopes = make(map[string]struct{})
	}
	for i := range ids {
		m.scopes[ids[i]] = struct{}{}
	}
}

// ClearScopes clears the "scopes" edge to the AdminApiKeyScope entity.
func (m *AdminApiKeyMutation) ClearScopes() {
	m.clearedscopes = true
}

// ScopesCleared reports if the "scopes" edge to the AdminApiKeyScope entity was cleared.
func (m *AdminApiKeyMutation) ScopesCleared() bool {
	return m.clearedscopes
}

// RemoveScopeIDs removes the "scopes" edge to the AdminApiKeyScope entity by IDs.
func (m *AdminApiKeyMutation) RemoveScopeIDs(ids ...string) {
	if m.removedscopes == nil {
		m.removedscopes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scopes, ids[i])
		m.removedscopes[ids[i]] = struct{}{}
	}
}

// RemovedScopes returns the removed IDs of the "scopes" edge to the AdminApiKeyScope entity.
func (m *AdminApiKeyMutation) RemovedScopesIDs() (ids []string) {
	for id := range m.removedscopes {
		ids = append(ids, id)
	}
	return
}

// ScopesIDs returns the "scopes" edge IDs in the mutation.
func (m *AdminApiKeyMutation) ScopesIDs() (ids []string) {
	for id := range m.scopes {
		ids = append(ids, id)
	}
	return
}

// ResetScopes resets all changes to the "scopes" edge.
func (m *AdminApiKeyMutation) ResetScopes() {
	m.scopes = nil
	m.clearedscopes = false
	m.removedscopes = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *AdminApiKeyMutation) AddProjectIDs(ids ...string) {
	if m.projects == nil {
		m.projects = make(map[string]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *AdminApiKeyMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *AdminApiKeyMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *AdminApiKeyMutation) RemoveProjectIDs(ids ...string) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *AdminApiKeyMutation) RemovedProjectsIDs() (ids []string) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *AdminApiKeyMutation) ProjectsIDs() (ids []string) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *AdminApiKeyMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// Where appends a list predicates to the AdminApiKeyMutation builder.
func (m *AdminApiKeyMutation) Where(ps ...predicate.AdminApiKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminApiKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminApiKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminApiKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminApiKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminApiKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminApiKey).
func (m *AdminApiKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminApiKeyMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, adminapikey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adminapikey.FieldUpdatedAt)
	}
	if m.workspace != nil {
		fields = append(fields, adminapikey.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, adminapikey.FieldName)
	}
	if m.description != nil {
		fields = append(fields, adminapikey.FieldDescription)
	}
	if m.key_hash != nil {
		fields = append(fields, adminapikey.FieldKeyHash)
	}
	if m.key_prefix != nil {
		fields = append(fields, adminapikey.FieldKeyPrefix)
	}
	if m.key_suffix != nil {
		fields = append(fields, adminapikey.FieldKeySuffix)
	}
	if m.all_projects != nil {
		fields = append(fields, adminapikey.FieldAllProjects)
	}
	if m.created_by != nil {
		fields = append(fields, adminapikey.FieldCreatedBy)
	}
	if m.expires_at != nil {
		fields = append(fields, adminapikey.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, adminapikey.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminApiKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminapikey.FieldCreatedAt:
		return m.CreatedAt()
	case adminapikey.FieldUpdatedAt:
		return m.UpdatedAt()
	case adminapikey.FieldWorkspaceID:
		return m.WorkspaceID()
	case adminapikey.FieldName:
		return m.Name()
	case adminapikey.FieldDescription:
		return m.Description()
	case adminapikey.FieldKeyHash:
		return m.KeyHash()
	case adminapikey.FieldKeyPrefix:
		return m.KeyPrefix()
	case adminapikey.FieldKeySuffix:
		return m.KeySuffix()
	case adminapikey.FieldAllProjects:
		return m.AllProjects()
	case adminapikey.FieldCreatedBy:
		return m.CreatedBy()
	case adminapikey.FieldExpiresAt:
		return m.ExpiresAt()
	case adminapikey.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminApiKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminapikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adminapikey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case adminapikey.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case adminapikey.FieldName:
		return m.OldName(ctx)
	case adminapikey.FieldDescription:
		return m.OldDescription(ctx)
	case adminapikey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case adminapikey.FieldKeyPrefix:
		return m.OldKeyPrefix(ctx)
	case adminapikey.FieldKeySuffix:
		return m.OldKeySuffix(ctx)
	case adminapikey.FieldAllProjects:
		return m.OldAllProjects(ctx)
	case adminapikey.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case adminapikey.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case adminapikey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminApiKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminApiKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminapikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adminapikey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case adminapikey.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case adminapikey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case adminapikey.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case adminapikey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case adminapikey.FieldKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPrefix(v)
		return nil
	case adminapikey.FieldKeySuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeySuffix(v)
		return nil
	case adminapikey.FieldAllProjects:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllProjects(v)
		return nil
	case adminapikey.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case adminapikey.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case adminapikey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminApiKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminApiKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminApiKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminApiKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminApiKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminApiKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adminapikey.FieldDescription) {
		fields = append(fields, adminapikey.FieldDescription)
	}
	if m.FieldCleared(adminapikey.FieldExpiresAt) {
		fields = append(fields, adminapikey.FieldExpiresAt)
	}
	if m.FieldCleared(adminapikey.FieldLastUsedAt) {
		fields = append(fields, adminapikey.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminApiKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminApiKeyMutation) ClearField(name string) error {
	switch name {
	case adminapikey.FieldDescription:
		m.ClearDescription()
		return nil
	case adminapikey.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case adminapikey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminApiKeyMutation) ResetField(name string) error {
	switch name {
	case adminapikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adminapikey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case adminapikey.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case adminapikey.FieldName:
		m.ResetName()
		return nil
	case adminapikey.FieldDescription:
		m.ResetDescription()
		return nil
	case adminapikey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case adminapikey.FieldKeyPrefix:
		m.ResetKeyPrefix()
		return nil
	case adminapikey.FieldKeySuffix:
		m.ResetKeySuffix()
		return nil
	case adminapikey.FieldAllProjects:
		m.ResetAllProjects()
		return nil
	case adminapikey.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case adminapikey.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case adminapikey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminApiKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workspace != nil {
		edges = append(edges, adminapikey.EdgeWorkspace)
	}
	if m.scopes != nil {
		edges = append(edges, adminapikey.EdgeScopes)
	}
	if m.projects != nil {
		edges = append(edges, adminapikey.EdgeProjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminApiKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case adminapikey.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case adminapikey.EdgeScopes:
		ids := make([]ent.Value, 0, len(m.scopes))
		for id := range m.scopes {
			ids = append(ids, id)
		}
		return ids
	case adminapikey.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminApiKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedscopes != nil {
		edges = append(edges, adminapikey.EdgeScopes)
	}
	if m.removedprojects != nil {
		edges = append(edges, adminapikey.EdgeProjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminApiKeyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case adminapikey.EdgeScopes:
		ids := make([]ent.Value, 0, len(m.removedscopes))
		for id := range m.removedscopes {
			ids = append(ids, id)
		}
		return ids
	case adminapikey.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminApiKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkspace {
		edges = append(edges, adminapikey.EdgeWorkspace)
	}
	if m.clearedscopes {
		edges = append(edges, adminapikey.EdgeScopes)
	}
	if m.clearedprojects {
		edges = append(edges, adminapikey.EdgeProjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminApiKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case adminapikey.EdgeWorkspace:
		return m.clearedworkspace
	case adminapikey.EdgeScopes:
		return m.clearedscopes
	case adminapikey.EdgeProjects:
		return m.clearedprojects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminApiKeyMutation) ClearEdge(name string) error {
	switch name {
	case adminapikey.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminApiKeyMutation) ResetEdge(name string) error {
	switch name {
	case adminapikey.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case adminapikey.EdgeScopes:
		m.ResetScopes()
		return nil
	case adminapikey.EdgeProjects:
		m.ResetProjects()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKey edge %s", name)
}

// AdminApiKeyScopeMutation represents an operation that mutates the AdminApiKeyScope nodes in the graph.
type AdminApiKeyScopeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	scope         *string
	clearedFields map[string]struct{}
	key           *string
	clearedkey    bool
	done          bool
	oldValue      func(context.Context) (*AdminApiKeyScope, error)
	predicates    []predicate.AdminApiKeyScope
}

var _ ent.Mutation = (*AdminApiKeyScopeMutation)(nil)

// adminapikeyscopeOption allows management of the mutation configuration using functional options.
type adminapikeyscopeOption func(*AdminApiKeyScopeMutation)

// newAdminApiKeyScopeMutation creates new mutation for the AdminApiKeyScope entity.
func newAdminApiKeyScopeMutation(c config, op Op, opts ...adminapikeyscopeOption) *AdminApiKeyScopeMutation {
	m := &AdminApiKeyScopeMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminApiKeyScope,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminApiKeyScopeID sets the ID field of the mutation.
func withAdminApiKeyScopeID(id string) adminapikeyscopeOption {
	return func(m *AdminApiKeyScopeMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminApiKeyScope
		)
		m.oldValue = func(ctx context.Context) (*AdminApiKeyScope, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminApiKeyScope.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminApiKeyScope sets the old AdminApiKeyScope of the mutation.
func withAdminApiKeyScope(node *AdminApiKeyScope) adminapikeyscopeOption {
	return func(m *AdminApiKeyScopeMutation) {
		m.oldValue = func(context.Context) (*AdminApiKeyScope, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminApiKeyScopeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminApiKeyScopeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminApiKeyScope entities.
func (m *AdminApiKeyScopeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminApiKeyScopeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminApiKeyScopeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminApiKeyScope.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminApiKeyScopeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminApiKeyScopeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminApiKeyScope entity.
// If the AdminApiKeyScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyScopeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminApiKeyScopeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetKeyID sets the "key_id" field.
func (m *AdminApiKeyScopeMutation) SetKeyID(s string) {
	m.key = &s
}

// KeyID returns the value of the "key_id" field in the mutation.
func (m *AdminApiKeyScopeMutation) KeyID() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyID returns the old "key_id" field's value of the AdminApiKeyScope entity.
// If the AdminApiKeyScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyScopeMutation) OldKeyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyID: %w", err)
	}
	return oldValue.KeyID, nil
}

// ResetKeyID resets all changes to the "key_id" field.
func (m *AdminApiKeyScopeMutation) ResetKeyID() {
	m.key = nil
}

// SetScope sets the "scope" field.
func (m *AdminApiKeyScopeMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *AdminApiKeyScopeMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the AdminApiKeyScope entity.
// If the AdminApiKeyScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminApiKeyScopeMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *AdminApiKeyScopeMutation) ResetScope() {
	m.scope = nil
}

// ClearKey clears the "key" edge to the AdminApiKey entity.
func (m *AdminApiKeyScopeMutation) ClearKey() {
	m.clearedkey = true
	m.clearedFields[adminapikeyscope.FieldKeyID] = struct{}{}
}

// KeyCleared reports if the "key" edge to the AdminApiKey entity was cleared.
func (m *AdminApiKeyScopeMutation) KeyCleared() bool {
	return m.clearedkey
}

// KeyIDs returns the "key" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KeyID instead. It exists only for internal usage by the builders.
func (m *AdminApiKeyScopeMutation) KeyIDs() (ids []string) {
	if id := m.key; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKey resets all changes to the "key" edge.
func (m *AdminApiKeyScopeMutation) ResetKey() {
	m.key = nil
	m.clearedkey = false
}

// Where appends a list predicates to the AdminApiKeyScopeMutation builder.
func (m *AdminApiKeyScopeMutation) Where(ps ...predicate.AdminApiKeyScope) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminApiKeyScopeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminApiKeyScopeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminApiKeyScope, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminApiKeyScopeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminApiKeyScopeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminApiKeyScope).
func (m *AdminApiKeyScopeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminApiKeyScopeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, adminapikeyscope.FieldCreatedAt)
	}
	if m.key != nil {
		fields = append(fields, adminapikeyscope.FieldKeyID)
	}
	if m.scope != nil {
		fields = append(fields, adminapikeyscope.FieldScope)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminApiKeyScopeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminapikeyscope.FieldCreatedAt:
		return m.CreatedAt()
	case adminapikeyscope.FieldKeyID:
		return m.KeyID()
	case adminapikeyscope.FieldScope:
		return m.Scope()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminApiKeyScopeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminapikeyscope.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adminapikeyscope.FieldKeyID:
		return m.OldKeyID(ctx)
	case adminapikeyscope.FieldScope:
		return m.OldScope(ctx)
	}
	return nil, fmt.Errorf("unknown AdminApiKeyScope field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminApiKeyScopeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminapikeyscope.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adminapikeyscope.FieldKeyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyID(v)
		return nil
	case adminapikeyscope.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	}
	return fmt.Errorf("unknown AdminApiKeyScope field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminApiKeyScopeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminApiKeyScopeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminApiKeyScopeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminApiKeyScope numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminApiKeyScopeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminApiKeyScopeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminApiKeyScopeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminApiKeyScope nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminApiKeyScopeMutation) ResetField(name string) error {
	switch name {
	case adminapikeyscope.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adminapikeyscope.FieldKeyID:
		m.ResetKeyID()
		return nil
	case adminapikeyscope.FieldScope:
		m.ResetScope()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKeyScope field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminApiKeyScopeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.key != nil {
		edges = append(edges, adminapikeyscope.EdgeKey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminApiKeyScopeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case adminapikeyscope.EdgeKey:
		if id := m.key; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminApiKeyScopeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminApiKeyScopeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminApiKeyScopeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedkey {
		edges = append(edges, adminapikeyscope.EdgeKey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminApiKeyScopeMutation) EdgeCleared(name string) bool {
	switch name {
	case adminapikeyscope.EdgeKey:
		return m.clearedkey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminApiKeyScopeMutation) ClearEdge(name string) error {
	switch name {
	case adminapikeyscope.EdgeKey:
		m.ClearKey()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKeyScope unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminApiKeyScopeMutation) ResetEdge(name string) error {
	switch name {
	case adminapikeyscope.EdgeKey:
		m.ResetKey()
		return nil
	}
	return fmt.Errorf("unknown AdminApiKeyScope edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	action         *string
	actor          *string
	workspace_id   *string
	project_id     *string
	config_id      *string
	environment_id *string
	details        *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditLog, error)
	predicates     []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AuditLogMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AuditLogMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *AuditLogMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[auditlog.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *AuditLogMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AuditLogMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, auditlog.FieldWorkspaceID)
}

// SetProjectID sets the "project_id" field.
func (m *AuditLogMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AuditLogMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *AuditLogMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[auditlog.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *AuditLogMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AuditLogMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, auditlog.FieldProjectID)
}

// SetConfigID sets the "config_id" field.
func (m *AuditLogMutation) SetConfigID(s string) {
	m.config_id = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *AuditLogMutation) ConfigID() (r string, exists bool) {
	v := m.config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ClearConfigID clears the value of the "config_id" field.
func (m *AuditLogMutation) ClearConfigID() {
	m.config_id = nil
	m.clearedFields[auditlog.FieldConfigID] = struct{}{}
}

// ConfigIDCleared returns if the "config_id" field was cleared in this mutation.
func (m *AuditLogMutation) ConfigIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldConfigID]
	return ok
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *AuditLogMutation) ResetConfigID() {
	m.config_id = nil
	delete(m.clearedFields, auditlog.FieldConfigID)
}

// SetEnvironmentID sets the "environment_id" field.
func (m *AuditLogMutation) SetEnvironmentID(s string) {
	m.environment_id = &s
}

// EnvironmentID returns the value of the "environment_id" field in the mutation.
func (m *AuditLogMutation) EnvironmentID() (r string, exists bool) {
	v := m.environment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironmentID returns the old "environment_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEnvironmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironmentID: %w", err)
	}
	return oldValue.EnvironmentID, nil
}

// ClearEnvironmentID clears the value of the "environment_id" field.
func (m *AuditLogMutation) ClearEnvironmentID() {
	m.environment_id = nil
	m.clearedFields[auditlog.FieldEnvironmentID] = struct{}{}
}

// EnvironmentIDCleared returns if the "environment_id" field was cleared in this mutation.
func (m *AuditLogMutation) EnvironmentIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldEnvironmentID]
	return ok
}

// ResetEnvironmentID resets all changes to the "environment_id" field.
func (m *AuditLogMutation) ResetEnvironmentID() {
	m.environment_id = nil
	delete(m.clearedFields, auditlog.FieldEnvironmentID)
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.workspace_id != nil {
		fields = append(fields, auditlog.FieldWorkspaceID)
	}
	if m.project_id != nil {
		fields = append(fields, auditlog.FieldProjectID)
	}
	if m.config_id != nil {
		fields = append(fields, auditlog.FieldConfigID)
	}
	if m.environment_id != nil {
		fields = append(fields, auditlog.FieldEnvironmentID)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldWorkspaceID:
		return m.WorkspaceID()
	case auditlog.FieldProjectID:
		return m.ProjectID()
	case auditlog.FieldConfigID:
		return m.ConfigID()
	case auditlog.FieldEnvironmentID:
		return m.EnvironmentID()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case auditlog.FieldProjectID:
		return m.OldProjectID(ctx)
	case auditlog.FieldConfigID:
		return m.OldConfigID(ctx)
	case auditlog.FieldEnvironmentID:
		return m.OldEnvironmentID(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case auditlog.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case auditlog.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case auditlog.FieldEnvironmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironmentID(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldWorkspaceID) {
		fields = append(fields, auditlog.FieldWorkspaceID)
	}
	if m.FieldCleared(auditlog.FieldProjectID) {
		fields = append(fields, auditlog.FieldProjectID)
	}
	if m.FieldCleared(auditlog.FieldConfigID) {
		fields = append(fields, auditlog.FieldConfigID)
	}
	if m.FieldCleared(auditlog.FieldEnvironmentID) {
		fields = append(fields, auditlog.FieldEnvironmentID)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case auditlog.FieldProjectID:
		m.ClearProjectID()
		return nil
	case auditlog.FieldConfigID:
		m.ClearConfigID()
		return nil
	case auditlog.FieldEnvironmentID:
		m.ClearEnvironmentID()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case auditlog.FieldProjectID:
		m.ResetProjectID()
		return nil
	case auditlog.FieldConfigID:
		m.ResetConfigID()
		return nil
	case auditlog.FieldEnvironmentID:
		m.ResetEnvironmentID()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// ConfigItemMutation represents an operation that mutates the ConfigItem nodes in the graph.
type ConfigItemMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	description      *string
	version          *int
	addversion       *int
	value            *json.RawMessage
	appendvalue      json.RawMessage
	schema           *json.RawMessage
	appendschema     json.RawMessage
	overrides        *[]override.Override
	appendoverrides  []override.Override
	created_by       *string
	clearedFields    map[string]struct{}
	project          *string
	clearedproject   bool
	variants         map[string]struct{}
	removedvariants  map[string]struct{}
	clearedvariants  bool
	versions         map[string]struct{}
	removedversions  map[string]struct{}
	clearedversions  bool
	proposals        map[string]struct{}
	removedproposals map[string]struct{}
	clearedproposals bool
	users            map[string]struct{}
	removedusers     map[string]struct{}
	clearedusers     bool
	done             bool
	oldValue         func(context.Context) (*ConfigItem, error)
	predicates       []predicate.ConfigItem
}

var _ ent.Mutation = (*ConfigItemMutation)(nil)

// configitemOption allows management of the mutation configuration using functional options.
type configitemOption func(*ConfigItemMutation)

// newConfigItemMutation creates new mutation for the ConfigItem entity.
func newConfigItemMutation(c config, op Op, opts ...configitemOption) *ConfigItemMutation {
	m := &ConfigItemMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigItemID sets the ID field of the mutation.
func withConfigItemID(id string) configitemOption {
	return func(m *ConfigItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigItem
		)
		m.oldValue = func(ctx context.Context) (*ConfigItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigItem sets the old ConfigItem of the mutation.
func withConfigItem(node *ConfigItem) configitemOption {
	return func(m *ConfigItemMutation) {
		m.oldValue = func(context.Context) (*ConfigItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigItem entities.
func (m *ConfigItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConfigItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *ConfigItemMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ConfigItemMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ConfigItemMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *ConfigItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConfigItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConfigItemMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ConfigItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ConfigItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ConfigItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[configitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ConfigItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[configitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ConfigItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, configitem.FieldDescription)
}

// SetVersion sets the "version" field.
func (m *ConfigItemMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ConfigItemMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ConfigItemMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ConfigItemMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ConfigItemMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetValue sets the "value" field.
func (m *ConfigItemMutation) SetValue(jm json.RawMessage) {
	m.value = &jm
	m.appendvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ConfigItemMutation) Value() (r json.RawMessage, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AppendValue adds jm to the "value" field.
func (m *ConfigItemMutation) AppendValue(jm json.RawMessage) {
	m.appendvalue = append(m.appendvalue, jm...)
}

// AppendedValue returns the list of values that were appended to the "value" field in this mutation.
func (m *ConfigItemMutation) AppendedValue() (json.RawMessage, bool) {
	if len(m.appendvalue) == 0 {
		return nil, false
	}
	return m.appendvalue, true
}

// ResetValue resets all changes to the "value" field.
func (m *ConfigItemMutation) ResetValue() {
	m.value = nil
	m.appendvalue = nil
}

// SetSchema sets the "schema" field.
func (m *ConfigItemMutation) SetSchema(jm json.RawMessage) {
	m.schema = &jm
	m.appendschema = nil
}

// Schema returns the value of the "schema" field in the mutation.
func (m *ConfigItemMutation) Schema() (r json.RawMessage, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// AppendSchema adds jm to the "schema" field.
func (m *ConfigItemMutation) AppendSchema(jm json.RawMessage) {
	m.appendschema = append(m.appendschema, jm...)
}

// AppendedSchema returns the list of values that were appended to the "schema" field in this mutation.
func (m *ConfigItemMutation) AppendedSchema() (json.RawMessage, bool) {
	if len(m.appendschema) == 0 {
		return nil, false
	}
	return m.appendschema, true
}

// ClearSchema clears the value of the "schema" field.
func (m *ConfigItemMutation) ClearSchema() {
	m.schema = nil
	m.appendschema = nil
	m.clearedFields[configitem.FieldSchema] = struct{}{}
}

// SchemaCleared returns if the "schema" field was cleared in this mutation.
func (m *ConfigItemMutation) SchemaCleared() bool {
	_, ok := m.clearedFields[configitem.FieldSchema]
	return ok
}

// ResetSchema resets all changes to the "schema" field.
func (m *ConfigItemMutation) ResetSchema() {
	m.schema = nil
	m.appendschema = nil
	delete(m.clearedFields, configitem.FieldSchema)
}

// SetOverrides sets the "overrides" field.
func (m *ConfigItemMutation) SetOverrides(o []override.Override) {
	m.overrides = &o
	m.appendoverrides = nil
}

// Overrides returns the value of the "overrides" field in the mutation.
func (m *ConfigItemMutation) Overrides() (r []override.Override, exists bool) {
	v := m.overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrides returns the old "overrides" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldOverrides(ctx context.Context) (v []override.Override, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrides: %w", err)
	}
	return oldValue.Overrides, nil
}

// AppendOverrides adds o to the "overrides" field.
func (m *ConfigItemMutation) AppendOverrides(o []override.Override) {
	m.appendoverrides = append(m.appendoverrides, o...)
}

// AppendedOverrides returns the list of values that were appended to the "overrides" field in this mutation.
func (m *ConfigItemMutation) AppendedOverrides() ([]override.Override, bool) {
	if len(m.appendoverrides) == 0 {
		return nil, false
	}
	return m.appendoverrides, true
}

// ClearOverrides clears the value of the "overrides" field.
func (m *ConfigItemMutation) ClearOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	m.clearedFields[configitem.FieldOverrides] = struct{}{}
}

// OverridesCleared returns if the "overrides" field was cleared in this mutation.
func (m *ConfigItemMutation) OverridesCleared() bool {
	_, ok := m.clearedFields[configitem.FieldOverrides]
	return ok
}

// ResetOverrides resets all changes to the "overrides" field.
func (m *ConfigItemMutation) ResetOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	delete(m.clearedFields, configitem.FieldOverrides)
}

// SetCreatedBy sets the "created_by" field.
func (m *ConfigItemMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ConfigItemMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ConfigItemMutation) ResetCreatedBy() {
	m.created_by = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ConfigItemMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[configitem.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ConfigItemMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ConfigItemMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ConfigItemMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by ids.
func (m *ConfigItemMutation) AddVariantIDs(ids ...string) {
	if m.variants == nil {
		m.variants = make(map[string]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the ConfigVariant entity.
func (m *ConfigItemMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the ConfigVariant entity was cleared.
func (m *ConfigItemMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the ConfigVariant entity by IDs.
func (m *ConfigItemMutation) RemoveVariantIDs(ids ...string) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the ConfigVariant entity.
func (m *ConfigItemMutation) RemovedVariantsIDs() (ids []string) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *ConfigItemMutation) VariantsIDs() (ids []string) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *ConfigItemMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// AddVersionIDs adds the "versions" edge to the ConfigVersion entity by ids.
func (m *ConfigItemMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the ConfigVersion entity.
func (m *ConfigItemMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the ConfigVersion entity was cleared.
func (m *ConfigItemMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the ConfigVersion entity by IDs.
func (m *ConfigItemMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the ConfigVersion entity.
func (m *ConfigItemMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *ConfigItemMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *ConfigItemMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddProposalIDs adds the "proposals" edge to the ConfigProposal entity by ids.
func (m *ConfigItemMutation) AddProposalIDs(ids ...string) {
	if m.proposals == nil {
		m.proposals = make(map[string]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the ConfigProposal entity.
func (m *ConfigItemMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the ConfigProposal entity was cleared.
func (m *ConfigItemMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the ConfigProposal entity by IDs.
func (m *ConfigItemMutation) RemoveProposalIDs(ids ...string) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the ConfigProposal entity.
func (m *ConfigItemMutation) RemovedProposalsIDs() (ids []string) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *ConfigItemMutation) ProposalsIDs() (ids []string) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *ConfigItemMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// AddUserIDs adds the "users" edge to the ConfigUser entity by ids.
func (m *ConfigItemMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the ConfigUser entity.
func (m *ConfigItemMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the ConfigUser entity was cleared.
func (m *ConfigItemMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the ConfigUser entity by IDs.
func (m *ConfigItemMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the ConfigUser entity.
func (m *ConfigItemMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *ConfigItemMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *ConfigItemMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// Where appends a list predicates to the ConfigItemMutation builder.
func (m *ConfigItemMutation) Where(ps ...predicate.ConfigItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigItem).
func (m *ConfigItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, configitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, configitem.FieldUpdatedAt)
	}
	if m.project != nil {
		fields = append(fields, configitem.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, configitem.FieldName)
	}
	if m.description != nil {
		fields = append(fields, configitem.FieldDescription)
	}
	if m.version != nil {
		fields = append(fields, configitem.FieldVersion)
	}
	if m.value != nil {
		fields = append(fields, configitem.FieldValue)
	}
	if m.schema != nil {
		fields = append(fields, configitem.FieldSchema)
	}
	if m.overrides != nil {
		fields = append(fields, configitem.FieldOverrides)
	}
	if m.created_by != nil {
		fields = append(fields, configitem.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configitem.FieldCreatedAt:
		return m.CreatedAt()
	case configitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case configitem.FieldProjectID:
		return m.ProjectID()
	case configitem.FieldName:
		return m.Name()
	case configitem.FieldDescription:
		return m.Description()
	case configitem.FieldVersion:
		return m.Version()
	case configitem.FieldValue:
		return m.Value()
	case configitem.FieldSchema:
		return m.Schema()
	case configitem.FieldOverrides:
		return m.Overrides()
	case configitem.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case configitem.FieldProjectID:
		return m.OldProjectID(ctx)
	case configitem.FieldName:
		return m.OldName(ctx)
	case configitem.FieldDescription:
		return m.OldDescription(ctx)
	case configitem.FieldVersion:
		return m.OldVersion(ctx)
	case configitem.FieldValue:
		return m.OldValue(ctx)
	case configitem.FieldSchema:
		return m.OldSchema(ctx)
	case configitem.FieldOverrides:
		return m.OldOverrides(ctx)
	case configitem.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case configitem.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case configitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case configitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case configitem.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case configitem.FieldValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case configitem.FieldSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case configitem.FieldOverrides:
		v, ok := value.([]override.Override)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrides(v)
		return nil
	case configitem.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigItemMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, configitem.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case configitem.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case configitem.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(configitem.FieldDescription) {
		fields = append(fields, configitem.FieldDescription)
	}
	if m.FieldCleared(configitem.FieldSchema) {
		fields = append(fields, configitem.FieldSchema)
	}
	if m.FieldCleared(configitem.FieldOverrides) {
		fields = append(fields, configitem.FieldOverrides)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigItemMutation) ClearField(name string) error {
	switch name {
	case configitem.FieldDescription:
		m.ClearDescription()
		return nil
	case configitem.FieldSchema:
		m.ClearSchema()
		return nil
	case configitem.FieldOverrides:
		m.ClearOverrides()
		return nil
	}
	return fmt.Errorf("unknown ConfigItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigItemMutation) ResetField(name string) error {
	switch name {
	case configitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case configitem.FieldProjectID:
		m.ResetProjectID()
		return nil
	case configitem.FieldName:
		m.ResetName()
		return nil
	case configitem.FieldDescription:
		m.ResetDescription()
		return nil
	case configitem.FieldVersion:
		m.ResetVersion()
		return nil
	case configitem.FieldValue:
		m.ResetValue()
		return nil
	case configitem.FieldSchema:
		m.ResetSchema()
		return nil
	case configitem.FieldOverrides:
		m.ResetOverrides()
		return nil
	case configitem.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown ConfigItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, configitem.EdgeProject)
	}
	if m.variants != nil {
		edges = append(edges, configitem.EdgeVariants)
	}
	if m.versions != nil {
		edges = append(edges, configitem.EdgeVersions)
	}
	if m.proposals != nil {
		edges = append(edges, configitem.EdgeProposals)
	}
	if m.users != nil {
		edges = append(edges, configitem.EdgeUsers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configitem.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case configitem.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedvariants != nil {
		edges = append(edges, configitem.EdgeVariants)
	}
	if m.removedversions != nil {
		edges = append(edges, configitem.EdgeVersions)
	}
	if m.removedproposals != nil {
		edges = append(edges, configitem.EdgeProposals)
	}
	if m.removedusers != nil {
		edges = append(edges, configitem.EdgeUsers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case configitem.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	case configitem.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, configitem.EdgeProject)
	}
	if m.clearedvariants {
		edges = append(edges, configitem.EdgeVariants)
	}
	if m.clearedversions {
		edges = append(edges, configitem.EdgeVersions)
	}
	if m.clearedproposals {
		edges = append(edges, configitem.EdgeProposals)
	}
	if m.clearedusers {
		edges = append(edges, configitem.EdgeUsers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigItemMutation) EdgeCleared(name string) bool {
	switch name {
	case configitem.EdgeProject:
		return m.clearedproject
	case configitem.EdgeVariants:
		return m.clearedvariants
	case configitem.EdgeVersions:
		return m.clearedversions
	case configitem.EdgeProposals:
		return m.clearedproposals
	case configitem.EdgeUsers:
		return m.clearedusers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigItemMutation) ClearEdge(name string) error {
	switch name {
	case configitem.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ConfigItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigItemMutation) ResetEdge(name string) error {
	switch name {
	case configitem.EdgeProject:
		m.ResetProject()
		return nil
	case configitem.EdgeVariants:
		m.ResetVariants()
		return nil
	case configitem.EdgeVersions:
		m.ResetVersions()
		return nil
	case configitem.EdgeProposals:
		m.ResetProposals()
		return nil
	case configitem.EdgeUsers:
		m.ResetUsers()
		return nil
	}
	return fmt.Errorf("unknown ConfigItem edge %s", name)
}

// ConfigProposalMutation represents an operation that mutates the ConfigProposal nodes in the graph.
type ConfigProposalMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	author               *string
	message              *string
	status               *configproposal.Status
	base_version         *int
	addbase_version      *int
	is_delete            *bool
	original             *domain.ConfigState
	proposed             *domain.ConfigState
	variants             *[]domain.ProposalVariant
	appendvariants       []domain.ProposalVariant
	reviewer             *string
	rejection_reason     *configproposal.RejectionReason
	rejected_in_favor_of *string
	resolved_at          *time.Time
	clearedFields        map[string]struct{}
	_config              *string
	cleared_config       bool
	done                 bool
	oldValue             func(context.Context) (*ConfigProposal, error)
	predicates           []predicate.ConfigProposal
}

var _ ent.Mutation = (*ConfigProposalMutation)(nil)

// configproposalOption allows management of the mutation configuration using functional options.
type configproposalOption func(*ConfigProposalMutation)

// newConfigProposalMutation creates new mutation for the ConfigProposal entity.
func newConfigProposalMutation(c config, op Op, opts ...configproposalOption) *ConfigProposalMutation {
	m := &ConfigProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigProposalID sets the ID field of the mutation.
func withConfigProposalID(id string) configproposalOption {
	return func(m *ConfigProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigProposal
		)
		m.oldValue = func(ctx context.Context) (*ConfigProposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigProposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigProposal sets the old ConfigProposal of the mutation.
func withConfigProposal(node *ConfigProposal) configproposalOption {
	return func(m *ConfigProposalMutation) {
		m.oldValue = func(context.Context) (*ConfigProposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigProposal entities.
func (m *ConfigProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigProposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConfigProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *ConfigProposalMutation) SetConfigID(s string) {
	m._config = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *ConfigProposalMutation) ConfigID() (r string, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *ConfigProposalMutation) ResetConfigID() {
	m._config = nil
}

// SetAuthor sets the "author" field.
func (m *ConfigProposalMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ConfigProposalMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *ConfigProposalMutation) ResetAuthor() {
	m.author = nil
}

// SetMessage sets the "message" field.
func (m *ConfigProposalMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ConfigProposalMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *ConfigProposalMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[configproposal.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *ConfigProposalMutation) MessageCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *ConfigProposalMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, configproposal.FieldMessage)
}

// SetStatus sets the "status" field.
func (m *ConfigProposalMutation) SetStatus(c configproposal.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConfigProposalMutation) Status() (r configproposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldStatus(ctx context.Context) (v configproposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConfigProposalMutation) ResetStatus() {
	m.status = nil
}

// SetBaseVersion sets the "base_version" field.
func (m *ConfigProposalMutation) SetBaseVersion(i int) {
	m.base_version = &i
	m.addbase_version = nil
}

// BaseVersion returns the value of the "base_version" field in the mutation.
func (m *ConfigProposalMutation) BaseVersion() (r int, exists bool) {
	v := m.base_version
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseVersion returns the old "base_version" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldBaseVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseVersion: %w", err)
	}
	return oldValue.BaseVersion, nil
}

// AddBaseVersion adds i to the "base_version" field.
func (m *ConfigProposalMutation) AddBaseVersion(i int) {
	if m.addbase_version != nil {
		*m.addbase_version += i
	} else {
		m.addbase_version = &i
	}
}

// AddedBaseVersion returns the value that was added to the "base_version" field in this mutation.
func (m *ConfigProposalMutation) AddedBaseVersion() (r int, exists bool) {
	v := m.addbase_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseVersion resets all changes to the "base_version" field.
func (m *ConfigProposalMutation) ResetBaseVersion() {
	m.base_version = nil
	m.addbase_version = nil
}

// SetIsDelete sets the "is_delete" field.
func (m *ConfigProposalMutation) SetIsDelete(b bool) {
	m.is_delete = &b
}

// IsDelete returns the value of the "is_delete" field in the mutation.
func (m *ConfigProposalMutation) IsDelete() (r bool, exists bool) {
	v := m.is_delete
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDelete returns the old "is_delete" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldIsDelete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDelete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDelete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDelete: %w", err)
	}
	return oldValue.IsDelete, nil
}

// ResetIsDelete resets all changes to the "is_delete" field.
func (m *ConfigProposalMutation) ResetIsDelete() {
	m.is_delete = nil
}

// SetOriginal sets the "original" field.
func (m *ConfigProposalMutation) SetOriginal(ds domain.ConfigState) {
	m.original = &ds
}

// Original returns the value of the "original" field in the mutation.
func (m *ConfigProposalMutation) Original() (r domain.ConfigState, exists bool) {
	v := m.original
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginal returns the old "original" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldOriginal(ctx context.Context) (v domain.ConfigState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginal: %w", err)
	}
	return oldValue.Original, nil
}

// ClearOriginal clears the value of the "original" field.
func (m *ConfigProposalMutation) ClearOriginal() {
	m.original = nil
	m.clearedFields[configproposal.FieldOriginal] = struct{}{}
}

// OriginalCleared returns if the "original" field was cleared in this mutation.
func (m *ConfigProposalMutation) OriginalCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldOriginal]
	return ok
}

// ResetOriginal resets all changes to the "original" field.
func (m *ConfigProposalMutation) ResetOriginal() {
	m.original = nil
	delete(m.clearedFields, configproposal.FieldOriginal)
}

// SetProposed sets the "proposed" field.
func (m *ConfigProposalMutation) SetProposed(ds domain.ConfigState) {
	m.proposed = &ds
}

// Proposed returns the value of the "proposed" field in the mutation.
func (m *ConfigProposalMutation) Proposed() (r domain.ConfigState, exists bool) {
	v := m.proposed
	if v == nil {
		return
	}
	return *v, true
}

// OldProposed returns the old "proposed" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldProposed(ctx context.Context) (v domain.ConfigState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposed: %w", err)
	}
	return oldValue.Proposed, nil
}

// ClearProposed clears the value of the "proposed" field.
func (m *ConfigProposalMutation) ClearProposed() {
	m.proposed = nil
	m.clearedFields[configproposal.FieldProposed] = struct{}{}
}

// ProposedCleared returns if the "proposed" field was cleared in this mutation.
func (m *ConfigProposalMutation) ProposedCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldProposed]
	return ok
}

// ResetProposed resets all changes to the "proposed" field.
func (m *ConfigProposalMutation) ResetProposed() {
	m.proposed = nil
	delete(m.clearedFields, configproposal.FieldProposed)
}

// SetVariants sets the "variants" field.
func (m *ConfigProposalMutation) SetVariants(dv []domain.ProposalVariant) {
	m.variants = &dv
	m.appendvariants = nil
}

// Variants returns the value of the "variants" field in the mutation.
func (m *ConfigProposalMutation) Variants() (r []domain.ProposalVariant, exists bool) {
	v := m.variants
	if v == nil {
		return
	}
	return *v, true
}

// OldVariants returns the old "variants" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldVariants(ctx context.Context) (v []domain.ProposalVariant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariants: %w", err)
	}
	return oldValue.Variants, nil
}

// AppendVariants adds dv to the "variants" field.
func (m *ConfigProposalMutation) AppendVariants(dv []domain.ProposalVariant) {
	m.appendvariants = append(m.appendvariants, dv...)
}

// AppendedVariants returns the list of values that were appended to the "variants" field in this mutation.
func (m *ConfigProposalMutation) AppendedVariants() ([]domain.ProposalVariant, bool) {
	if len(m.appendvariants) == 0 {
		return nil, false
	}
	return m.appendvariants, true
}

// ClearVariants clears the value of the "variants" field.
func (m *ConfigProposalMutation) ClearVariants() {
	m.variants = nil
	m.appendvariants = nil
	m.clearedFields[configproposal.FieldVariants] = struct{}{}
}

// VariantsCleared returns if the "variants" field was cleared in this mutation.
func (m *ConfigProposalMutation) VariantsCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldVariants]
	return ok
}

// ResetVariants resets all changes to the "variants" field.
func (m *ConfigProposalMutation) ResetVariants() {
	m.variants = nil
	m.appendvariants = nil
	delete(m.clearedFields, configproposal.FieldVariants)
}

// SetReviewer sets the "reviewer" field.
func (m *ConfigProposalMutation) SetReviewer(s string) {
	m.reviewer = &s
}

// Reviewer returns the value of the "reviewer" field in the mutation.
func (m *ConfigProposalMutation) Reviewer() (r string, exists bool) {
	v := m.reviewer
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewer returns the old "reviewer" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldReviewer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewer: %w", err)
	}
	return oldValue.Reviewer, nil
}

// ClearReviewer clears the value of the "reviewer" field.
func (m *ConfigProposalMutation) ClearReviewer() {
	m.reviewer = nil
	m.clearedFields[configproposal.FieldReviewer] = struct{}{}
}

// ReviewerCleared returns if the "reviewer" field was cleared in this mutation.
func (m *ConfigProposalMutation) ReviewerCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldReviewer]
	return ok
}

// ResetReviewer resets all changes to the "reviewer" field.
func (m *ConfigProposalMutation) ResetReviewer() {
	m.reviewer = nil
	delete(m.clearedFields, configproposal.FieldReviewer)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *ConfigProposalMutation) SetRejectionReason(cr configproposal.RejectionReason) {
	m.rejection_reason = &cr
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *ConfigProposalMutation) RejectionReason() (r configproposal.RejectionReason, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldRejectionReason(ctx context.Context) (v configproposal.RejectionReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *ConfigProposalMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[configproposal.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *ConfigProposalMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *ConfigProposalMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, configproposal.FieldRejectionReason)
}

// SetRejectedInFavorOf sets the "rejected_in_favor_of" field.
func (m *ConfigProposalMutation) SetRejectedInFavorOf(s string) {
	m.rejected_in_favor_of = &s
}

// RejectedInFavorOf returns the value of the "rejected_in_favor_of" field in the mutation.
func (m *ConfigProposalMutation) RejectedInFavorOf() (r string, exists bool) {
	v := m.rejected_in_favor_of
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedInFavorOf returns the old "rejected_in_favor_of" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldRejectedInFavorOf(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedInFavorOf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedInFavorOf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedInFavorOf: %w", err)
	}
	return oldValue.RejectedInFavorOf, nil
}

// ClearRejectedInFavorOf clears the value of the "rejected_in_favor_of" field.
func (m *ConfigProposalMutation) ClearRejectedInFavorOf() {
	m.rejected_in_favor_of = nil
	m.clearedFields[configproposal.FieldRejectedInFavorOf] = struct{}{}
}

// RejectedInFavorOfCleared returns if the "rejected_in_favor_of" field was cleared in this mutation.
func (m *ConfigProposalMutation) RejectedInFavorOfCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldRejectedInFavorOf]
	return ok
}

// ResetRejectedInFavorOf resets all changes to the "rejected_in_favor_of" field.
func (m *ConfigProposalMutation) ResetRejectedInFavorOf() {
	m.rejected_in_favor_of = nil
	delete(m.clearedFields, configproposal.FieldRejectedInFavorOf)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ConfigProposalMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ConfigProposalMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ConfigProposal entity.
// If the ConfigProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigProposalMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ConfigProposalMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[configproposal.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ConfigProposalMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[configproposal.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ConfigProposalMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, configproposal.FieldResolvedAt)
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (m *ConfigProposalMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[configproposal.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the ConfigItem entity was cleared.
func (m *ConfigProposalMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *ConfigProposalMutation) ConfigIDs() (ids []string) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *ConfigProposalMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// Where appends a list predicates to the ConfigProposalMutation builder.
func (m *ConfigProposalMutation) Where(ps ...predicate.ConfigProposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigProposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigProposal).
func (m *ConfigProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigProposalMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, configproposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, configproposal.FieldUpdatedAt)
	}
	if m._config != nil {
		fields = append(fields, configproposal.FieldConfigID)
	}
	if m.author != nil {
		fields = append(fields, configproposal.FieldAuthor)
	}
	if m.message != nil {
		fields = append(fields, configproposal.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, configproposal.FieldStatus)
	}
	if m.base_version != nil {
		fields = append(fields, configproposal.FieldBaseVersion)
	}
	if m.is_delete != nil {
		fields = append(fields, configproposal.FieldIsDelete)
	}
	if m.original != nil {
		fields = append(fields, configproposal.FieldOriginal)
	}
	if m.proposed != nil {
		fields = append(fields, configproposal.FieldProposed)
	}
	if m.variants != nil {
		fields = append(fields, configproposal.FieldVariants)
	}
	if m.reviewer != nil {
		fields = append(fields, configproposal.FieldReviewer)
	}
	if m.rejection_reason != nil {
		fields = append(fields, configproposal.FieldRejectionReason)
	}
	if m.rejected_in_favor_of != nil {
		fields = append(fields, configproposal.FieldRejectedInFavorOf)
	}
	if m.resolved_at != nil {
		fields = append(fields, configproposal.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configproposal.FieldCreatedAt:
		return m.CreatedAt()
	case configproposal.FieldUpdatedAt:
		return m.UpdatedAt()
	case configproposal.FieldConfigID:
		return m.ConfigID()
	case configproposal.FieldAuthor:
		return m.Author()
	case configproposal.FieldMessage:
		return m.Message()
	case configproposal.FieldStatus:
		return m.Status()
	case configproposal.FieldBaseVersion:
		return m.BaseVersion()
	case configproposal.FieldIsDelete:
		return m.IsDelete()
	case configproposal.FieldOriginal:
		return m.Original()
	case configproposal.FieldProposed:
		return m.Proposed()
	case configproposal.FieldVariants:
		return m.Variants()
	case configproposal.FieldReviewer:
		return m.Reviewer()
	case configproposal.FieldRejectionReason:
		return m.RejectionReason()
	case configproposal.FieldRejectedInFavorOf:
		return m.RejectedInFavorOf()
	case configproposal.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configproposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configproposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case configproposal.FieldConfigID:
		return m.OldConfigID(ctx)
	case configproposal.FieldAuthor:
		return m.OldAuthor(ctx)
	case configproposal.FieldMessage:
		return m.OldMessage(ctx)
	case configproposal.FieldStatus:
		return m.OldStatus(ctx)
	case configproposal.FieldBaseVersion:
		return m.OldBaseVersion(ctx)
	case configproposal.FieldIsDelete:
		return m.OldIsDelete(ctx)
	case configproposal.FieldOriginal:
		return m.OldOriginal(ctx)
	case configproposal.FieldProposed:
		return m.OldProposed(ctx)
	case configproposal.FieldVariants:
		return m.OldVariants(ctx)
	case configproposal.FieldReviewer:
		return m.OldReviewer(ctx)
	case configproposal.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case configproposal.FieldRejectedInFavorOf:
		return m.OldRejectedInFavorOf(ctx)
	case configproposal.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigProposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configproposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configproposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case configproposal.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case configproposal.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case configproposal.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case configproposal.FieldStatus:
		v, ok := value.(configproposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case configproposal.FieldBaseVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseVersion(v)
		return nil
	case configproposal.FieldIsDelete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDelete(v)
		return nil
	case configproposal.FieldOriginal:
		v, ok := value.(domain.ConfigState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginal(v)
		return nil
	case configproposal.FieldProposed:
		v, ok := value.(domain.ConfigState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposed(v)
		return nil
	case configproposal.FieldVariants:
		v, ok := value.([]domain.ProposalVariant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariants(v)
		return nil
	case configproposal.FieldReviewer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewer(v)
		return nil
	case configproposal.FieldRejectionReason:
		v, ok := value.(configproposal.RejectionReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case configproposal.FieldRejectedInFavorOf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedInFavorOf(v)
		return nil
	case configproposal.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigProposalMutation) AddedFields() []string {
	var fields []string
	if m.addbase_version != nil {
		fields = append(fields, configproposal.FieldBaseVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case configproposal.FieldBaseVersion:
		return m.AddedBaseVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case configproposal.FieldBaseVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(configproposal.FieldMessage) {
		fields = append(fields, configproposal.FieldMessage)
	}
	if m.FieldCleared(configproposal.FieldOriginal) {
		fields = append(fields, configproposal.FieldOriginal)
	}
	if m.FieldCleared(configproposal.FieldProposed) {
		fields = append(fields, configproposal.FieldProposed)
	}
	if m.FieldCleared(configproposal.FieldVariants) {
		fields = append(fields, configproposal.FieldVariants)
	}
	if m.FieldCleared(configproposal.FieldReviewer) {
		fields = append(fields, configproposal.FieldReviewer)
	}
	if m.FieldCleared(configproposal.FieldRejectionReason) {
		fields = append(fields, configproposal.FieldRejectionReason)
	}
	if m.FieldCleared(configproposal.FieldRejectedInFavorOf) {
		fields = append(fields, configproposal.FieldRejectedInFavorOf)
	}
	if m.FieldCleared(configproposal.FieldResolvedAt) {
		fields = append(fields, configproposal.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigProposalMutation) ClearField(name string) error {
	switch name {
	case configproposal.FieldMessage:
		m.ClearMessage()
		return nil
	case configproposal.FieldOriginal:
		m.ClearOriginal()
		return nil
	case configproposal.FieldProposed:
		m.ClearProposed()
		return nil
	case configproposal.FieldVariants:
		m.ClearVariants()
		return nil
	case configproposal.FieldReviewer:
		m.ClearReviewer()
		return nil
	case configproposal.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case configproposal.FieldRejectedInFavorOf:
		m.ClearRejectedInFavorOf()
		return nil
	case configproposal.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigProposalMutation) ResetField(name string) error {
	switch name {
	case configproposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configproposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case configproposal.FieldConfigID:
		m.ResetConfigID()
		return nil
	case configproposal.FieldAuthor:
		m.ResetAuthor()
		return nil
	case configproposal.FieldMessage:
		m.ResetMessage()
		return nil
	case configproposal.FieldStatus:
		m.ResetStatus()
		return nil
	case configproposal.FieldBaseVersion:
		m.ResetBaseVersion()
		return nil
	case configproposal.FieldIsDelete:
		m.ResetIsDelete()
		return nil
	case configproposal.FieldOriginal:
		m.ResetOriginal()
		return nil
	case configproposal.FieldProposed:
		m.ResetProposed()
		return nil
	case configproposal.FieldVariants:
		m.ResetVariants()
		return nil
	case configproposal.FieldReviewer:
		m.ResetReviewer()
		return nil
	case configproposal.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case configproposal.FieldRejectedInFavorOf:
		m.ResetRejectedInFavorOf()
		return nil
	case configproposal.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._config != nil {
		edges = append(edges, configproposal.EdgeConfig)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configproposal.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_config {
		edges = append(edges, configproposal.EdgeConfig)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case configproposal.EdgeConfig:
		return m.cleared_config
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigProposalMutation) ClearEdge(name string) error {
	switch name {
	case configproposal.EdgeConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigProposalMutation) ResetEdge(name string) error {
	switch name {
	case configproposal.EdgeConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigProposal edge %s", name)
}

// ConfigUserMutation represents an operation that mutates the ConfigUser nodes in the graph.
type ConfigUserMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	email          *string
	role           *configuser.Role
	clearedFields  map[string]struct{}
	_config        *string
	cleared_config bool
	done           bool
	oldValue       func(context.Context) (*ConfigUser, error)
	predicates     []predicate.ConfigUser
}

var _ ent.Mutation = (*ConfigUserMutation)(nil)

// configuserOption allows management of the mutation configuration using functional options.
type configuserOption func(*ConfigUserMutation)

// newConfigUserMutation creates new mutation for the ConfigUser entity.
func newConfigUserMutation(c config, op Op, opts ...configuserOption) *ConfigUserMutation {
	m := &ConfigUserMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigUserID sets the ID field of the mutation.
func withConfigUserID(id string) configuserOption {
	return func(m *ConfigUserMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigUser
		)
		m.oldValue = func(ctx context.Context) (*ConfigUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigUser sets the old ConfigUser of the mutation.
func withConfigUser(node *ConfigUser) configuserOption {
	return func(m *ConfigUserMutation) {
		m.oldValue = func(context.Context) (*ConfigUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigUser entities.
func (m *ConfigUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigUser entity.
// If the ConfigUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigUser entity.
// If the ConfigUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConfigUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *ConfigUserMutation) SetConfigID(s string) {
	m._config = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *ConfigUserMutation) ConfigID() (r string, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the ConfigUser entity.
// If the ConfigUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigUserMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *ConfigUserMutation) ResetConfigID() {
	m._config = nil
}

// SetEmail sets the "email" field.
func (m *ConfigUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ConfigUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ConfigUser entity.
// If the ConfigUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ConfigUserMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *ConfigUserMutation) SetRole(c configuser.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConfigUserMutation) Role() (r configuser.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ConfigUser entity.
// If the ConfigUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigUserMutation) OldRole(ctx context.Context) (v configuser.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConfigUserMutation) ResetRole() {
	m.role = nil
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (m *ConfigUserMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[configuser.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the ConfigItem entity was cleared.
func (m *ConfigUserMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *ConfigUserMutation) ConfigIDs() (ids []string) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *ConfigUserMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// Where appends a list predicates to the ConfigUserMutation builder.
func (m *ConfigUserMutation) Where(ps ...predicate.ConfigUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigUser).
func (m *ConfigUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigUserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, configuser.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, configuser.FieldUpdatedAt)
	}
	if m._config != nil {
		fields = append(fields, configuser.FieldConfigID)
	}
	if m.email != nil {
		fields = append(fields, configuser.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, configuser.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configuser.FieldCreatedAt:
		return m.CreatedAt()
	case configuser.FieldUpdatedAt:
		return m.UpdatedAt()
	case configuser.FieldConfigID:
		return m.ConfigID()
	case configuser.FieldEmail:
		return m.Email()
	case configuser.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configuser.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case configuser.FieldConfigID:
		return m.OldConfigID(ctx)
	case configuser.FieldEmail:
		return m.OldEmail(ctx)
	case configuser.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configuser.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case configuser.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case configuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case configuser.FieldRole:
		v, ok := value.(configuser.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConfigUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigUserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigUserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConfigUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigUserMutation) ResetField(name string) error {
	switch name {
	case configuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configuser.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case configuser.FieldConfigID:
		m.ResetConfigID()
		return nil
	case configuser.FieldEmail:
		m.ResetEmail()
		return nil
	case configuser.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown ConfigUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._config != nil {
		edges = append(edges, configuser.EdgeConfig)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigUserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configuser.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_config {
		edges = append(edges, configuser.EdgeConfig)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigUserMutation) EdgeCleared(name string) bool {
	switch name {
	case configuser.EdgeConfig:
		return m.cleared_config
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigUserMutation) ClearEdge(name string) error {
	switch name {
	case configuser.EdgeConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigUserMutation) ResetEdge(name string) error {
	switch name {
	case configuser.EdgeConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigUser edge %s", name)
}

// ConfigVariantMutation represents an operation that mutates the ConfigVariant nodes in the graph.
type ConfigVariantMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	version            *int
	addversion         *int
	value              *json.RawMessage
	appendvalue        json.RawMessage
	schema             *json.RawMessage
	appendschema       json.RawMessage
	use_base_schema    *bool
	overrides          *[]override.Override
	appendoverrides    []override.Override
	clearedFields      map[string]struct{}
	_config            *string
	cleared_config     bool
	environment        *string
	clearedenvironment bool
	versions           map[string]struct{}
	removedversions    map[string]struct{}
	clearedversions    bool
	done               bool
	oldValue           func(context.Context) (*ConfigVariant, error)
	predicates         []predicate.ConfigVariant
}

var _ ent.Mutation = (*ConfigVariantMutation)(nil)

// configvariantOption allows management of the mutation configuration using functional options.
type configvariantOption func(*ConfigVariantMutation)

// newConfigVariantMutation creates new mutation for the ConfigVariant entity.
func newConfigVariantMutation(c config, op Op, opts ...configvariantOption) *ConfigVariantMutation {
	m := &ConfigVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigVariantID sets the ID field of the mutation.
func withConfigVariantID(id string) configvariantOption {
	return func(m *ConfigVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigVariant
		)
		m.oldValue = func(ctx context.Context) (*ConfigVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigVariant sets the old ConfigVariant of the mutation.
func withConfigVariant(node *ConfigVariant) configvariantOption {
	return func(m *ConfigVariantMutation) {
		m.oldValue = func(context.Context) (*ConfigVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigVariant entities.
func (m *ConfigVariantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigVariantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigVariantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConfigVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *ConfigVariantMutation) SetConfigID(s string) {
	m._config = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *ConfigVariantMutation) ConfigID() (r string, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *ConfigVariantMutation) ResetConfigID() {
	m._config = nil
}

// SetEnvironmentID sets the "environment_id" field.
func (m *ConfigVariantMutation) SetEnvironmentID(s string) {
	m.environment = &s
}

// EnvironmentID returns the value of the "environment_id" field in the mutation.
func (m *ConfigVariantMutation) EnvironmentID() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironmentID returns the old "environment_id" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldEnvironmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironmentID: %w", err)
	}
	return oldValue.EnvironmentID, nil
}

// ResetEnvironmentID resets all changes to the "environment_id" field.
func (m *ConfigVariantMutation) ResetEnvironmentID() {
	m.environment = nil
}

// SetVersion sets the "version" field.
func (m *ConfigVariantMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ConfigVariantMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ConfigVariantMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ConfigVariantMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ConfigVariantMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetValue sets the "value" field.
func (m *ConfigVariantMutation) SetValue(jm json.RawMessage) {
	m.value = &jm
	m.appendvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ConfigVariantMutation) Value() (r json.RawMessage, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AppendValue adds jm to the "value" field.
func (m *ConfigVariantMutation) AppendValue(jm json.RawMessage) {
	m.appendvalue = append(m.appendvalue, jm...)
}

// AppendedValue returns the list of values that were appended to the "value" field in this mutation.
func (m *ConfigVariantMutation) AppendedValue() (json.RawMessage, bool) {
	if len(m.appendvalue) == 0 {
		return nil, false
	}
	return m.appendvalue, true
}

// ResetValue resets all changes to the "value" field.
func (m *ConfigVariantMutation) ResetValue() {
	m.value = nil
	m.appendvalue = nil
}

// SetSchema sets the "schema" field.
func (m *ConfigVariantMutation) SetSchema(jm json.RawMessage) {
	m.schema = &jm
	m.appendschema = nil
}

// Schema returns the value of the "schema" field in the mutation.
func (m *ConfigVariantMutation) Schema() (r json.RawMessage, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// AppendSchema adds jm to the "schema" field.
func (m *ConfigVariantMutation) AppendSchema(jm json.RawMessage) {
	m.appendschema = append(m.appendschema, jm...)
}

// AppendedSchema returns the list of values that were appended to the "schema" field in this mutation.
func (m *ConfigVariantMutation) AppendedSchema() (json.RawMessage, bool) {
	if len(m.appendschema) == 0 {
		return nil, false
	}
	return m.appendschema, true
}

// ClearSchema clears the value of the "schema" field.
func (m *ConfigVariantMutation) ClearSchema() {
	m.schema = nil
	m.appendschema = nil
	m.clearedFields[configvariant.FieldSchema] = struct{}{}
}

// SchemaCleared returns if the "schema" field was cleared in this mutation.
func (m *ConfigVariantMutation) SchemaCleared() bool {
	_, ok := m.clearedFields[configvariant.FieldSchema]
	return ok
}

// ResetSchema resets all changes to the "schema" field.
func (m *ConfigVariantMutation) ResetSchema() {
	m.schema = nil
	m.appendschema = nil
	delete(m.clearedFields, configvariant.FieldSchema)
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (m *ConfigVariantMutation) SetUseBaseSchema(b bool) {
	m.use_base_schema = &b
}

// UseBaseSchema returns the value of the "use_base_schema" field in the mutation.
func (m *ConfigVariantMutation) UseBaseSchema() (r bool, exists bool) {
	v := m.use_base_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldUseBaseSchema returns the old "use_base_schema" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldUseBaseSchema(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseBaseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseBaseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseBaseSchema: %w", err)
	}
	return oldValue.UseBaseSchema, nil
}

// ResetUseBaseSchema resets all changes to the "use_base_schema" field.
func (m *ConfigVariantMutation) ResetUseBaseSchema() {
	m.use_base_schema = nil
}

// SetOverrides sets the "overrides" field.
func (m *ConfigVariantMutation) SetOverrides(o []override.Override) {
	m.overrides = &o
	m.appendoverrides = nil
}

// Overrides returns the value of the "overrides" field in the mutation.
func (m *ConfigVariantMutation) Overrides() (r []override.Override, exists bool) {
	v := m.overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrides returns the old "overrides" field's value of the ConfigVariant entity.
// If the ConfigVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantMutation) OldOverrides(ctx context.Context) (v []override.Override, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrides: %w", err)
	}
	return oldValue.Overrides, nil
}

// AppendOverrides adds o to the "overrides" field.
func (m *ConfigVariantMutation) AppendOverrides(o []override.Override) {
	m.appendoverrides = append(m.appendoverrides, o...)
}

// AppendedOverrides returns the list of values that were appended to the "overrides" field in this mutation.
func (m *ConfigVariantMutation) AppendedOverrides() ([]override.Override, bool) {
	if len(m.appendoverrides) == 0 {
		return nil, false
	}
	return m.appendoverrides, true
}

// ClearOverrides clears the value of the "overrides" field.
func (m *ConfigVariantMutation) ClearOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	m.clearedFields[configvariant.FieldOverrides] = struct{}{}
}

// OverridesCleared returns if the "overrides" field was cleared in this mutation.
func (m *ConfigVariantMutation) OverridesCleared() bool {
	_, ok := m.clearedFields[configvariant.FieldOverrides]
	return ok
}

// ResetOverrides resets all changes to the "overrides" field.
func (m *ConfigVariantMutation) ResetOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	delete(m.clearedFields, configvariant.FieldOverrides)
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (m *ConfigVariantMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[configvariant.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the ConfigItem entity was cleared.
func (m *ConfigVariantMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *ConfigVariantMutation) ConfigIDs() (ids []string) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *ConfigVariantMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// ClearEnvironment clears the "environment" edge to the Environment entity.
func (m *ConfigVariantMutation) ClearEnvironment() {
	m.clearedenvironment = true
	m.clearedFields[configvariant.FieldEnvironmentID] = struct{}{}
}

// EnvironmentCleared reports if the "environment" edge to the Environment entity was cleared.
func (m *ConfigVariantMutation) EnvironmentCleared() bool {
	return m.clearedenvironment
}

// EnvironmentIDs returns the "environment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvironmentID instead. It exists only for internal usage by the builders.
func (m *ConfigVariantMutation) EnvironmentIDs() (ids []string) {
	if id := m.environment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvironment resets all changes to the "environment" edge.
func (m *ConfigVariantMutation) ResetEnvironment() {
	m.environment = nil
	m.clearedenvironment = false
}

// AddVersionIDs adds the "versions" edge to the ConfigVariantVersion entity by ids.
func (m *ConfigVariantMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the ConfigVariantVersion entity.
func (m *ConfigVariantMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the ConfigVariantVersion entity was cleared.
func (m *ConfigVariantMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the ConfigVariantVersion entity by IDs.
func (m *ConfigVariantMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the ConfigVariantVersion entity.
func (m *ConfigVariantMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *ConfigVariantMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *ConfigVariantMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the ConfigVariantMutation builder.
func (m *ConfigVariantMutation) Where(ps ...predicate.ConfigVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigVariant).
func (m *ConfigVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigVariantMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, configvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, configvariant.FieldUpdatedAt)
	}
	if m._config != nil {
		fields = append(fields, configvariant.FieldConfigID)
	}
	if m.environment != nil {
		fields = append(fields, configvariant.FieldEnvironmentID)
	}
	if m.version != nil {
		fields = append(fields, configvariant.FieldVersion)
	}
	if m.value != nil {
		fields = append(fields, configvariant.FieldValue)
	}
	if m.schema != nil {
		fields = append(fields, configvariant.FieldSchema)
	}
	if m.use_base_schema != nil {
		fields = append(fields, configvariant.FieldUseBaseSchema)
	}
	if m.overrides != nil {
		fields = append(fields, configvariant.FieldOverrides)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configvariant.FieldCreatedAt:
		return m.CreatedAt()
	case configvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	case configvariant.FieldConfigID:
		return m.ConfigID()
	case configvariant.FieldEnvironmentID:
		return m.EnvironmentID()
	case configvariant.FieldVersion:
		return m.Version()
	case configvariant.FieldValue:
		return m.Value()
	case configvariant.FieldSchema:
		return m.Schema()
	case configvariant.FieldUseBaseSchema:
		return m.UseBaseSchema()
	case configvariant.FieldOverrides:
		return m.Overrides()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case configvariant.FieldConfigID:
		return m.OldConfigID(ctx)
	case configvariant.FieldEnvironmentID:
		return m.OldEnvironmentID(ctx)
	case configvariant.FieldVersion:
		return m.OldVersion(ctx)
	case configvariant.FieldValue:
		return m.OldValue(ctx)
	case configvariant.FieldSchema:
		return m.OldSchema(ctx)
	case configvariant.FieldUseBaseSchema:
		return m.OldUseBaseSchema(ctx)
	case configvariant.FieldOverrides:
		return m.OldOverrides(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case configvariant.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case configvariant.FieldEnvironmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironmentID(v)
		return nil
	case configvariant.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case configvariant.FieldValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case configvariant.FieldSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case configvariant.FieldUseBaseSchema:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseBaseSchema(v)
		return nil
	case configvariant.FieldOverrides:
		v, ok := value.([]override.Override)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrides(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigVariantMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, configvariant.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigVariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case configvariant.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case configvariant.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(configvariant.FieldSchema) {
		fields = append(fields, configvariant.FieldSchema)
	}
	if m.FieldCleared(configvariant.FieldOverrides) {
		fields = append(fields, configvariant.FieldOverrides)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigVariantMutation) ClearField(name string) error {
	switch name {
	case configvariant.FieldSchema:
		m.ClearSchema()
		return nil
	case configvariant.FieldOverrides:
		m.ClearOverrides()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigVariantMutation) ResetField(name string) error {
	switch name {
	case configvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case configvariant.FieldConfigID:
		m.ResetConfigID()
		return nil
	case configvariant.FieldEnvironmentID:
		m.ResetEnvironmentID()
		return nil
	case configvariant.FieldVersion:
		m.ResetVersion()
		return nil
	case configvariant.FieldValue:
		m.ResetValue()
		return nil
	case configvariant.FieldSchema:
		m.ResetSchema()
		return nil
	case configvariant.FieldUseBaseSchema:
		m.ResetUseBaseSchema()
		return nil
	case configvariant.FieldOverrides:
		m.ResetOverrides()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m._config != nil {
		edges = append(edges, configvariant.EdgeConfig)
	}
	if m.environment != nil {
		edges = append(edges, configvariant.EdgeEnvironment)
	}
	if m.versions != nil {
		edges = append(edges, configvariant.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigVariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configvariant.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	case configvariant.EdgeEnvironment:
		if id := m.environment; id != nil {
			return []ent.Value{*id}
		}
	case configvariant.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedversions != nil {
		edges = append(edges, configvariant.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigVariantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case configvariant.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleared_config {
		edges = append(edges, configvariant.EdgeConfig)
	}
	if m.clearedenvironment {
		edges = append(edges, configvariant.EdgeEnvironment)
	}
	if m.clearedversions {
		edges = append(edges, configvariant.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigVariantMutation) EdgeCleared(name string) bool {
	switch name {
	case configvariant.EdgeConfig:
		return m.cleared_config
	case configvariant.EdgeEnvironment:
		return m.clearedenvironment
	case configvariant.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigVariantMutation) ClearEdge(name string) error {
	switch name {
	case configvariant.EdgeConfig:
		m.ClearConfig()
		return nil
	case configvariant.EdgeEnvironment:
		m.ClearEnvironment()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigVariantMutation) ResetEdge(name string) error {
	switch name {
	case configvariant.EdgeConfig:
		m.ResetConfig()
		return nil
	case configvariant.EdgeEnvironment:
		m.ResetEnvironment()
		return nil
	case configvariant.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariant edge %s", name)
}

// ConfigVariantVersionMutation represents an operation that mutates the ConfigVariantVersion nodes in the graph.
type ConfigVariantVersionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	config_id       *string
	environment_id  *string
	version         *int
	addversion      *int
	value           *json.RawMessage
	appendvalue     json.RawMessage
	schema          *json.RawMessage
	appendschema    json.RawMessage
	use_base_schema *bool
	overrides       *[]override.Override
	appendoverrides []override.Override
	created_by      *string
	proposal_id     *string
	clearedFields   map[string]struct{}
	variant         *string
	clearedvariant  bool
	done            bool
	oldValue        func(context.Context) (*ConfigVariantVersion, error)
	predicates      []predicate.ConfigVariantVersion
}

var _ ent.Mutation = (*ConfigVariantVersionMutation)(nil)

// configvariantversionOption allows management of the mutation configuration using functional options.
type configvariantversionOption func(*ConfigVariantVersionMutation)

// newConfigVariantVersionMutation creates new mutation for the ConfigVariantVersion entity.
func newConfigVariantVersionMutation(c config, op Op, opts ...configvariantversionOption) *ConfigVariantVersionMutation {
	m := &ConfigVariantVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigVariantVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigVariantVersionID sets the ID field of the mutation.
func withConfigVariantVersionID(id string) configvariantversionOption {
	return func(m *ConfigVariantVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigVariantVersion
		)
		m.oldValue = func(ctx context.Context) (*ConfigVariantVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigVariantVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigVariantVersion sets the old ConfigVariantVersion of the mutation.
func withConfigVariantVersion(node *ConfigVariantVersion) configvariantversionOption {
	return func(m *ConfigVariantVersionMutation) {
		m.oldValue = func(context.Context) (*ConfigVariantVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigVariantVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigVariantVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigVariantVersion entities.
func (m *ConfigVariantVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigVariantVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigVariantVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigVariantVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigVariantVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigVariantVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigVariantVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetVariantID sets the "variant_id" field.
func (m *ConfigVariantVersionMutation) SetVariantID(s string) {
	m.variant = &s
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *ConfigVariantVersionMutation) VariantID() (r string, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldVariantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *ConfigVariantVersionMutation) ResetVariantID() {
	m.variant = nil
}

// SetConfigID sets the "config_id" field.
func (m *ConfigVariantVersionMutation) SetConfigID(s string) {
	m.config_id = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *ConfigVariantVersionMutation) ConfigID() (r string, exists bool) {
	v := m.config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *ConfigVariantVersionMutation) ResetConfigID() {
	m.config_id = nil
}

// SetEnvironmentID sets the "environment_id" field.
func (m *ConfigVariantVersionMutation) SetEnvironmentID(s string) {
	m.environment_id = &s
}

// EnvironmentID returns the value of the "environment_id" field in the mutation.
func (m *ConfigVariantVersionMutation) EnvironmentID() (r string, exists bool) {
	v := m.environment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironmentID returns the old "environment_id" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldEnvironmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironmentID: %w", err)
	}
	return oldValue.EnvironmentID, nil
}

// ResetEnvironmentID resets all changes to the "environment_id" field.
func (m *ConfigVariantVersionMutation) ResetEnvironmentID() {
	m.environment_id = nil
}

// SetVersion sets the "version" field.
func (m *ConfigVariantVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ConfigVariantVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ConfigVariantVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ConfigVariantVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ConfigVariantVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetValue sets the "value" field.
func (m *ConfigVariantVersionMutation) SetValue(jm json.RawMessage) {
	m.value = &jm
	m.appendvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ConfigVariantVersionMutation) Value() (r json.RawMessage, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AppendValue adds jm to the "value" field.
func (m *ConfigVariantVersionMutation) AppendValue(jm json.RawMessage) {
	m.appendvalue = append(m.appendvalue, jm...)
}

// AppendedValue returns the list of values that were appended to the "value" field in this mutation.
func (m *ConfigVariantVersionMutation) AppendedValue() (json.RawMessage, bool) {
	if len(m.appendvalue) == 0 {
		return nil, false
	}
	return m.appendvalue, true
}

// ResetValue resets all changes to the "value" field.
func (m *ConfigVariantVersionMutation) ResetValue() {
	m.value = nil
	m.appendvalue = nil
}

// SetSchema sets the "schema" field.
func (m *ConfigVariantVersionMutation) SetSchema(jm json.RawMessage) {
	m.schema = &jm
	m.appendschema = nil
}

// Schema returns the value of the "schema" field in the mutation.
func (m *ConfigVariantVersionMutation) Schema() (r json.RawMessage, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// AppendSchema adds jm to the "schema" field.
func (m *ConfigVariantVersionMutation) AppendSchema(jm json.RawMessage) {
	m.appendschema = append(m.appendschema, jm...)
}

// AppendedSchema returns the list of values that were appended to the "schema" field in this mutation.
func (m *ConfigVariantVersionMutation) AppendedSchema() (json.RawMessage, bool) {
	if len(m.appendschema) == 0 {
		return nil, false
	}
	return m.appendschema, true
}

// ClearSchema clears the value of the "schema" field.
func (m *ConfigVariantVersionMutation) ClearSchema() {
	m.schema = nil
	m.appendschema = nil
	m.clearedFields[configvariantversion.FieldSchema] = struct{}{}
}

// SchemaCleared returns if the "schema" field was cleared in this mutation.
func (m *ConfigVariantVersionMutation) SchemaCleared() bool {
	_, ok := m.clearedFields[configvariantversion.FieldSchema]
	return ok
}

// ResetSchema resets all changes to the "schema" field.
func (m *ConfigVariantVersionMutation) ResetSchema() {
	m.schema = nil
	m.appendschema = nil
	delete(m.clearedFields, configvariantversion.FieldSchema)
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (m *ConfigVariantVersionMutation) SetUseBaseSchema(b bool) {
	m.use_base_schema = &b
}

// UseBaseSchema returns the value of the "use_base_schema" field in the mutation.
func (m *ConfigVariantVersionMutation) UseBaseSchema() (r bool, exists bool) {
	v := m.use_base_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldUseBaseSchema returns the old "use_base_schema" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldUseBaseSchema(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseBaseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseBaseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseBaseSchema: %w", err)
	}
	return oldValue.UseBaseSchema, nil
}

// ResetUseBaseSchema resets all changes to the "use_base_schema" field.
func (m *ConfigVariantVersionMutation) ResetUseBaseSchema() {
	m.use_base_schema = nil
}

// SetOverrides sets the "overrides" field.
func (m *ConfigVariantVersionMutation) SetOverrides(o []override.Override) {
	m.overrides = &o
	m.appendoverrides = nil
}

// Overrides returns the value of the "overrides" field in the mutation.
func (m *ConfigVariantVersionMutation) Overrides() (r []override.Override, exists bool) {
	v := m.overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrides returns the old "overrides" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldOverrides(ctx context.Context) (v []override.Override, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrides: %w", err)
	}
	return oldValue.Overrides, nil
}

// AppendOverrides adds o to the "overrides" field.
func (m *ConfigVariantVersionMutation) AppendOverrides(o []override.Override) {
	m.appendoverrides = append(m.appendoverrides, o...)
}

// AppendedOverrides returns the list of values that were appended to the "overrides" field in this mutation.
func (m *ConfigVariantVersionMutation) AppendedOverrides() ([]override.Override, bool) {
	if len(m.appendoverrides) == 0 {
		return nil, false
	}
	return m.appendoverrides, true
}

// ClearOverrides clears the value of the "overrides" field.
func (m *ConfigVariantVersionMutation) ClearOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	m.clearedFields[configvariantversion.FieldOverrides] = struct{}{}
}

// OverridesCleared returns if the "overrides" field was cleared in this mutation.
func (m *ConfigVariantVersionMutation) OverridesCleared() bool {
	_, ok := m.clearedFields[configvariantversion.FieldOverrides]
	return ok
}

// ResetOverrides resets all changes to the "overrides" field.
func (m *ConfigVariantVersionMutation) ResetOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	delete(m.clearedFields, configvariantversion.FieldOverrides)
}

// SetCreatedBy sets the "created_by" field.
func (m *ConfigVariantVersionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ConfigVariantVersionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ConfigVariantVersionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *ConfigVariantVersionMutation) SetProposalID(s string) {
	m.proposal_id = &s
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *ConfigVariantVersionMutation) ProposalID() (r string, exists bool) {
	v := m.proposal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the ConfigVariantVersion entity.
// If the ConfigVariantVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVariantVersionMutation) OldProposalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ClearProposalID clears the value of the "proposal_id" field.
func (m *ConfigVariantVersionMutation) ClearProposalID() {
	m.proposal_id = nil
	m.clearedFields[configvariantversion.FieldProposalID] = struct{}{}
}

// ProposalIDCleared returns if the "proposal_id" field was cleared in this mutation.
func (m *ConfigVariantVersionMutation) ProposalIDCleared() bool {
	_, ok := m.clearedFields[configvariantversion.FieldProposalID]
	return ok
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *ConfigVariantVersionMutation) ResetProposalID() {
	m.proposal_id = nil
	delete(m.clearedFields, configvariantversion.FieldProposalID)
}

// ClearVariant clears the "variant" edge to the ConfigVariant entity.
func (m *ConfigVariantVersionMutation) ClearVariant() {
	m.clearedvariant = true
	m.clearedFields[configvariantversion.FieldVariantID] = struct{}{}
}

// VariantCleared reports if the "variant" edge to the ConfigVariant entity was cleared.
func (m *ConfigVariantVersionMutation) VariantCleared() bool {
	return m.clearedvariant
}

// VariantIDs returns the "variant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VariantID instead. It exists only for internal usage by the builders.
func (m *ConfigVariantVersionMutation) VariantIDs() (ids []string) {
	if id := m.variant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVariant resets all changes to the "variant" edge.
func (m *ConfigVariantVersionMutation) ResetVariant() {
	m.variant = nil
	m.clearedvariant = false
}

// Where appends a list predicates to the ConfigVariantVersionMutation builder.
func (m *ConfigVariantVersionMutation) Where(ps ...predicate.ConfigVariantVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigVariantVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigVariantVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigVariantVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigVariantVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigVariantVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigVariantVersion).
func (m *ConfigVariantVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigVariantVersionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, configvariantversion.FieldCreatedAt)
	}
	if m.variant != nil {
		fields = append(fields, configvariantversion.FieldVariantID)
	}
	if m.config_id != nil {
		fields = append(fields, configvariantversion.FieldConfigID)
	}
	if m.environment_id != nil {
		fields = append(fields, configvariantversion.FieldEnvironmentID)
	}
	if m.version != nil {
		fields = append(fields, configvariantversion.FieldVersion)
	}
	if m.value != nil {
		fields = append(fields, configvariantversion.FieldValue)
	}
	if m.schema != nil {
		fields = append(fields, configvariantversion.FieldSchema)
	}
	if m.use_base_schema != nil {
		fields = append(fields, configvariantversion.FieldUseBaseSchema)
	}
	if m.overrides != nil {
		fields = append(fields, configvariantversion.FieldOverrides)
	}
	if m.created_by != nil {
		fields = append(fields, configvariantversion.FieldCreatedBy)
	}
	if m.proposal_id != nil {
		fields = append(fields, configvariantversion.FieldProposalID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigVariantVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configvariantversion.FieldCreatedAt:
		return m.CreatedAt()
	case configvariantversion.FieldVariantID:
		return m.VariantID()
	case configvariantversion.FieldConfigID:
		return m.ConfigID()
	case configvariantversion.FieldEnvironmentID:
		return m.EnvironmentID()
	case configvariantversion.FieldVersion:
		return m.Version()
	case configvariantversion.FieldValue:
		return m.Value()
	case configvariantversion.FieldSchema:
		return m.Schema()
	case configvariantversion.FieldUseBaseSchema:
		return m.UseBaseSchema()
	case configvariantversion.FieldOverrides:
		return m.Overrides()
	case configvariantversion.FieldCreatedBy:
		return m.CreatedBy()
	case configvariantversion.FieldProposalID:
		return m.ProposalID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigVariantVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configvariantversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configvariantversion.FieldVariantID:
		return m.OldVariantID(ctx)
	case configvariantversion.FieldConfigID:
		return m.OldConfigID(ctx)
	case configvariantversion.FieldEnvironmentID:
		return m.OldEnvironmentID(ctx)
	case configvariantversion.FieldVersion:
		return m.OldVersion(ctx)
	case configvariantversion.FieldValue:
		return m.OldValue(ctx)
	case configvariantversion.FieldSchema:
		return m.OldSchema(ctx)
	case configvariantversion.FieldUseBaseSchema:
		return m.OldUseBaseSchema(ctx)
	case configvariantversion.FieldOverrides:
		return m.OldOverrides(ctx)
	case configvariantversion.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case configvariantversion.FieldProposalID:
		return m.OldProposalID(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigVariantVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVariantVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configvariantversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configvariantversion.FieldVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case configvariantversion.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case configvariantversion.FieldEnvironmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironmentID(v)
		return nil
	case configvariantversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case configvariantversion.FieldValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case configvariantversion.FieldSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case configvariantversion.FieldUseBaseSchema:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseBaseSchema(v)
		return nil
	case configvariantversion.FieldOverrides:
		v, ok := value.([]override.Override)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrides(v)
		return nil
	case configvariantversion.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case configvariantversion.FieldProposalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigVariantVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, configvariantversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigVariantVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case configvariantversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVariantVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case configvariantversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigVariantVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(configvariantversion.FieldSchema) {
		fields = append(fields, configvariantversion.FieldSchema)
	}
	if m.FieldCleared(configvariantversion.FieldOverrides) {
		fields = append(fields, configvariantversion.FieldOverrides)
	}
	if m.FieldCleared(configvariantversion.FieldProposalID) {
		fields = append(fields, configvariantversion.FieldProposalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigVariantVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigVariantVersionMutation) ClearField(name string) error {
	switch name {
	case configvariantversion.FieldSchema:
		m.ClearSchema()
		return nil
	case configvariantversion.FieldOverrides:
		m.ClearOverrides()
		return nil
	case configvariantversion.FieldProposalID:
		m.ClearProposalID()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigVariantVersionMutation) ResetField(name string) error {
	switch name {
	case configvariantversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configvariantversion.FieldVariantID:
		m.ResetVariantID()
		return nil
	case configvariantversion.FieldConfigID:
		m.ResetConfigID()
		return nil
	case configvariantversion.FieldEnvironmentID:
		m.ResetEnvironmentID()
		return nil
	case configvariantversion.FieldVersion:
		m.ResetVersion()
		return nil
	case configvariantversion.FieldValue:
		m.ResetValue()
		return nil
	case configvariantversion.FieldSchema:
		m.ResetSchema()
		return nil
	case configvariantversion.FieldUseBaseSchema:
		m.ResetUseBaseSchema()
		return nil
	case configvariantversion.FieldOverrides:
		m.ResetOverrides()
		return nil
	case configvariantversion.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case configvariantversion.FieldProposalID:
		m.ResetProposalID()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigVariantVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.variant != nil {
		edges = append(edges, configvariantversion.EdgeVariant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigVariantVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configvariantversion.EdgeVariant:
		if id := m.variant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigVariantVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigVariantVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigVariantVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvariant {
		edges = append(edges, configvariantversion.EdgeVariant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigVariantVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case configvariantversion.EdgeVariant:
		return m.clearedvariant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigVariantVersionMutation) ClearEdge(name string) error {
	switch name {
	case configvariantversion.EdgeVariant:
		m.ClearVariant()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigVariantVersionMutation) ResetEdge(name string) error {
	switch name {
	case configvariantversion.EdgeVariant:
		m.ResetVariant()
		return nil
	}
	return fmt.Errorf("unknown ConfigVariantVersion edge %s", name)
}

// ConfigVersionMutation represents an operation that mutates the ConfigVersion nodes in the graph.
type ConfigVersionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	version         *int
	addversion      *int
	description     *string
	value           *json.RawMessage
	appendvalue     json.RawMessage
	schema          *json.RawMessage
	appendschema    json.RawMessage
	overrides       *[]override.Override
	appendoverrides []override.Override
	members         *[]domain.ConfigMember
	appendmembers   []domain.ConfigMember
	created_by      *string
	proposal_id     *string
	clearedFields   map[string]struct{}
	_config         *string
	cleared_config  bool
	done            bool
	oldValue        func(context.Context) (*ConfigVersion, error)
	predicates      []predicate.ConfigVersion
}

var _ ent.Mutation = (*ConfigVersionMutation)(nil)

// configversionOption allows management of the mutation configuration using functional options.
type configversionOption func(*ConfigVersionMutation)

// newConfigVersionMutation creates new mutation for the ConfigVersion entity.
func newConfigVersionMutation(c config, op Op, opts ...configversionOption) *ConfigVersionMutation {
	m := &ConfigVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigVersionID sets the ID field of the mutation.
func withConfigVersionID(id string) configversionOption {
	return func(m *ConfigVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigVersion
		)
		m.oldValue = func(ctx context.Context) (*ConfigVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigVersion sets the old ConfigVersion of the mutation.
func withConfigVersion(node *ConfigVersion) configversionOption {
	return func(m *ConfigVersionMutation) {
		m.oldValue = func(context.Context) (*ConfigVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigVersion entities.
func (m *ConfigVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConfigVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetConfigID sets the "config_id" field.
func (m *ConfigVersionMutation) SetConfigID(s string) {
	m._config = &s
}

// ConfigID returns the value of the "config_id" field in the mutation.
func (m *ConfigVersionMutation) ConfigID() (r string, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigID returns the old "config_id" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigID: %w", err)
	}
	return oldValue.ConfigID, nil
}

// ResetConfigID resets all changes to the "config_id" field.
func (m *ConfigVersionMutation) ResetConfigID() {
	m._config = nil
}

// SetVersion sets the "version" field.
func (m *ConfigVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ConfigVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ConfigVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ConfigVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ConfigVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDescription sets the "description" field.
func (m *ConfigVersionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ConfigVersionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ConfigVersionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[configversion.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ConfigVersionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[configversion.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ConfigVersionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, configversion.FieldDescription)
}

// SetValue sets the "value" field.
func (m *ConfigVersionMutation) SetValue(jm json.RawMessage) {
	m.value = &jm
	m.appendvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ConfigVersionMutation) Value() (r json.RawMessage, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AppendValue adds jm to the "value" field.
func (m *ConfigVersionMutation) AppendValue(jm json.RawMessage) {
	m.appendvalue = append(m.appendvalue, jm...)
}

// AppendedValue returns the list of values that were appended to the "value" field in this mutation.
func (m *ConfigVersionMutation) AppendedValue() (json.RawMessage, bool) {
	if len(m.appendvalue) == 0 {
		return nil, false
	}
	return m.appendvalue, true
}

// ResetValue resets all changes to the "value" field.
func (m *ConfigVersionMutation) ResetValue() {
	m.value = nil
	m.appendvalue = nil
}

// SetSchema sets the "schema" field.
func (m *ConfigVersionMutation) SetSchema(jm json.RawMessage) {
	m.schema = &jm
	m.appendschema = nil
}

// Schema returns the value of the "schema" field in the mutation.
func (m *ConfigVersionMutation) Schema() (r json.RawMessage, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// AppendSchema adds jm to the "schema" field.
func (m *ConfigVersionMutation) AppendSchema(jm json.RawMessage) {
	m.appendschema = append(m.appendschema, jm...)
}

// AppendedSchema returns the list of values that were appended to the "schema" field in this mutation.
func (m *ConfigVersionMutation) AppendedSchema() (json.RawMessage, bool) {
	if len(m.appendschema) == 0 {
		return nil, false
	}
	return m.appendschema, true
}

// ClearSchema clears the value of the "schema" field.
func (m *ConfigVersionMutation) ClearSchema() {
	m.schema = nil
	m.appendschema = nil
	m.clearedFields[configversion.FieldSchema] = struct{}{}
}

// SchemaCleared returns if the "schema" field was cleared in this mutation.
func (m *ConfigVersionMutation) SchemaCleared() bool {
	_, ok := m.clearedFields[configversion.FieldSchema]
	return ok
}

// ResetSchema resets all changes to the "schema" field.
func (m *ConfigVersionMutation) ResetSchema() {
	m.schema = nil
	m.appendschema = nil
	delete(m.clearedFields, configversion.FieldSchema)
}

// SetOverrides sets the "overrides" field.
func (m *ConfigVersionMutation) SetOverrides(o []override.Override) {
	m.overrides = &o
	m.appendoverrides = nil
}

// Overrides returns the value of the "overrides" field in the mutation.
func (m *ConfigVersionMutation) Overrides() (r []override.Override, exists bool) {
	v := m.overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrides returns the old "overrides" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldOverrides(ctx context.Context) (v []override.Override, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrides: %w", err)
	}
	return oldValue.Overrides, nil
}

// AppendOverrides adds o to the "overrides" field.
func (m *ConfigVersionMutation) AppendOverrides(o []override.Override) {
	m.appendoverrides = append(m.appendoverrides, o...)
}

// AppendedOverrides returns the list of values that were appended to the "overrides" field in this mutation.
func (m *ConfigVersionMutation) AppendedOverrides() ([]override.Override, bool) {
	if len(m.appendoverrides) == 0 {
		return nil, false
	}
	return m.appendoverrides, true
}

// ClearOverrides clears the value of the "overrides" field.
func (m *ConfigVersionMutation) ClearOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	m.clearedFields[configversion.FieldOverrides] = struct{}{}
}

// OverridesCleared returns if the "overrides" field was cleared in this mutation.
func (m *ConfigVersionMutation) OverridesCleared() bool {
	_, ok := m.clearedFields[configversion.FieldOverrides]
	return ok
}

// ResetOverrides resets all changes to the "overrides" field.
func (m *ConfigVersionMutation) ResetOverrides() {
	m.overrides = nil
	m.appendoverrides = nil
	delete(m.clearedFields, configversion.FieldOverrides)
}

// SetMembers sets the "members" field.
func (m *ConfigVersionMutation) SetMembers(dm []domain.ConfigMember) {
	m.members = &dm
	m.appendmembers = nil
}

// Members returns the value of the "members" field in the mutation.
func (m *ConfigVersionMutation) Members() (r []domain.ConfigMember, exists bool) {
	v := m.members
	if v == nil {
		return
	}
	return *v, true
}

// OldMembers returns the old "members" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldMembers(ctx context.Context) (v []domain.ConfigMember, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembers: %w", err)
	}
	return oldValue.Members, nil
}

// AppendMembers adds dm to the "members" field.
func (m *ConfigVersionMutation) AppendMembers(dm []domain.ConfigMember) {
	m.appendmembers = append(m.appendmembers, dm...)
}

// AppendedMembers returns the list of values that were appended to the "members" field in this mutation.
func (m *ConfigVersionMutation) AppendedMembers() ([]domain.ConfigMember, bool) {
	if len(m.appendmembers) == 0 {
		return nil, false
	}
	return m.appendmembers, true
}

// ClearMembers clears the value of the "members" field.
func (m *ConfigVersionMutation) ClearMembers() {
	m.members = nil
	m.appendmembers = nil
	m.clearedFields[configversion.FieldMembers] = struct{}{}
}

// MembersCleared returns if the "members" field was cleared in this mutation.
func (m *ConfigVersionMutation) MembersCleared() bool {
	_, ok := m.clearedFields[configversion.FieldMembers]
	return ok
}

// ResetMembers resets all changes to the "members" field.
func (m *ConfigVersionMutation) ResetMembers() {
	m.members = nil
	m.appendmembers = nil
	delete(m.clearedFields, configversion.FieldMembers)
}

// SetCreatedBy sets the "created_by" field.
func (m *ConfigVersionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ConfigVersionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ConfigVersionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *ConfigVersionMutation) SetProposalID(s string) {
	m.proposal_id = &s
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *ConfigVersionMutation) ProposalID() (r string, exists bool) {
	v := m.proposal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the ConfigVersion entity.
// If the ConfigVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigVersionMutation) OldProposalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ClearProposalID clears the value of the "proposal_id" field.
func (m *ConfigVersionMutation) ClearProposalID() {
	m.proposal_id = nil
	m.clearedFields[configversion.FieldProposalID] = struct{}{}
}

// ProposalIDCleared returns if the "proposal_id" field was cleared in this mutation.
func (m *ConfigVersionMutation) ProposalIDCleared() bool {
	_, ok := m.clearedFields[configversion.FieldProposalID]
	return ok
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *ConfigVersionMutation) ResetProposalID() {
	m.proposal_id = nil
	delete(m.clearedFields, configversion.FieldProposalID)
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (m *ConfigVersionMutation) ClearConfig() {
	m.cleared_config = true
	m.clearedFields[configversion.FieldConfigID] = struct{}{}
}

// ConfigCleared reports if the "config" edge to the ConfigItem entity was cleared.
func (m *ConfigVersionMutation) ConfigCleared() bool {
	return m.cleared_config
}

// ConfigIDs returns the "config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConfigID instead. It exists only for internal usage by the builders.
func (m *ConfigVersionMutation) ConfigIDs() (ids []string) {
	if id := m._config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConfig resets all changes to the "config" edge.
func (m *ConfigVersionMutation) ResetConfig() {
	m._config = nil
	m.cleared_config = false
}

// Where appends a list predicates to the ConfigVersionMutation builder.
func (m *ConfigVersionMutation) Where(ps ...predicate.ConfigVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigVersion).
func (m *ConfigVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigVersionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, configversion.FieldCreatedAt)
	}
	if m._config != nil {
		fields = append(fields, configversion.FieldConfigID)
	}
	if m.version != nil {
		fields = append(fields, configversion.FieldVersion)
	}
	if m.description != nil {
		fields = append(fields, configversion.FieldDescription)
	}
	if m.value != nil {
		fields = append(fields, configversion.FieldValue)
	}
	if m.schema != nil {
		fields = append(fields, configversion.FieldSchema)
	}
	if m.overrides != nil {
		fields = append(fields, configversion.FieldOverrides)
	}
	if m.members != nil {
		fields = append(fields, configversion.FieldMembers)
	}
	if m.created_by != nil {
		fields = append(fields, configversion.FieldCreatedBy)
	}
	if m.proposal_id != nil {
		fields = append(fields, configversion.FieldProposalID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configversion.FieldCreatedAt:
		return m.CreatedAt()
	case configversion.FieldConfigID:
		return m.ConfigID()
	case configversion.FieldVersion:
		return m.Version()
	case configversion.FieldDescription:
		return m.Description()
	case configversion.FieldValue:
		return m.Value()
	case configversion.FieldSchema:
		return m.Schema()
	case configversion.FieldOverrides:
		return m.Overrides()
	case configversion.FieldMembers:
		return m.Members()
	case configversion.FieldCreatedBy:
		return m.CreatedBy()
	case configversion.FieldProposalID:
		return m.ProposalID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configversion.FieldConfigID:
		return m.OldConfigID(ctx)
	case configversion.FieldVersion:
		return m.OldVersion(ctx)
	case configversion.FieldDescription:
		return m.OldDescription(ctx)
	case configversion.FieldValue:
		return m.OldValue(ctx)
	case configversion.FieldSchema:
		return m.OldSchema(ctx)
	case configversion.FieldOverrides:
		return m.OldOverrides(ctx)
	case configversion.FieldMembers:
		return m.OldMembers(ctx)
	case configversion.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case configversion.FieldProposalID:
		return m.OldProposalID(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configversion.FieldConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigID(v)
		return nil
	case configversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case configversion.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case configversion.FieldValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case configversion.FieldSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	case configversion.FieldOverrides:
		v, ok := value.([]override.Override)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrides(v)
		return nil
	case configversion.FieldMembers:
		v, ok := value.([]domain.ConfigMember)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembers(v)
		return nil
	case configversion.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case configversion.FieldProposalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, configversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case configversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case configversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(configversion.FieldDescription) {
		fields = append(fields, configversion.FieldDescription)
	}
	if m.FieldCleared(configversion.FieldSchema) {
		fields = append(fields, configversion.FieldSchema)
	}
	if m.FieldCleared(configversion.FieldOverrides) {
		fields = append(fields, configversion.FieldOverrides)
	}
	if m.FieldCleared(configversion.FieldMembers) {
		fields = append(fields, configversion.FieldMembers)
	}
	if m.FieldCleared(configversion.FieldProposalID) {
		fields = append(fields, configversion.FieldProposalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigVersionMutation) ClearField(name string) error {
	switch name {
	case configversion.FieldDescription:
		m.ClearDescription()
		return nil
	case configversion.FieldSchema:
		m.ClearSchema()
		return nil
	case configversion.FieldOverrides:
		m.ClearOverrides()
		return nil
	case configversion.FieldMembers:
		m.ClearMembers()
		return nil
	case configversion.FieldProposalID:
		m.ClearProposalID()
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigVersionMutation) ResetField(name string) error {
	switch name {
	case configversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configversion.FieldConfigID:
		m.ResetConfigID()
		return nil
	case configversion.FieldVersion:
		m.ResetVersion()
		return nil
	case configversion.FieldDescription:
		m.ResetDescription()
		return nil
	case configversion.FieldValue:
		m.ResetValue()
		return nil
	case configversion.FieldSchema:
		m.ResetSchema()
		return nil
	case configversion.FieldOverrides:
		m.ResetOverrides()
		return nil
	case configversion.FieldMembers:
		m.ResetMembers()
		return nil
	case configversion.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case configversion.FieldProposalID:
		m.ResetProposalID()
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._config != nil {
		edges = append(edges, configversion.EdgeConfig)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case configversion.EdgeConfig:
		if id := m._config; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_config {
		edges = append(edges, configversion.EdgeConfig)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case configversion.EdgeConfig:
		return m.cleared_config
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigVersionMutation) ClearEdge(name string) error {
	switch name {
	case configversion.EdgeConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigVersionMutation) ResetEdge(name string) error {
	switch name {
	case configversion.EdgeConfig:
		m.ResetConfig()
		return nil
	}
	return fmt.Errorf("unknown ConfigVersion edge %s", name)
}

// EnvironmentMutation represents an operation that mutates the Environment nodes in the graph.
type EnvironmentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	_order            *int
	add_order         *int
	require_proposals *bool
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	variants          map[string]struct{}
	removedvariants   map[string]struct{}
	clearedvariants   bool
	sdk_keys          map[string]struct{}
	removedsdk_keys   map[string]struct{}
	clearedsdk_keys   bool
	done              bool
	oldValue          func(context.Context) (*Environment, error)
	predicates        []predicate.Environment
}

var _ ent.Mutation = (*EnvironmentMutation)(nil)

// environmentOption allows management of the mutation configuration using functional options.
type environmentOption func(*EnvironmentMutation)

// newEnvironmentMutation creates new mutation for the Environment entity.
func newEnvironmentMutation(c config, op Op, opts ...environmentOption) *EnvironmentMutation {
	m := &EnvironmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvironment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvironmentID sets the ID field of the mutation.
func withEnvironmentID(id string) environmentOption {
	return func(m *EnvironmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Environment
		)
		m.oldValue = func(ctx context.Context) (*Environment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Environment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvironment sets the old Environment of the mutation.
func withEnvironment(node *Environment) environmentOption {
	return func(m *EnvironmentMutation) {
		m.oldValue = func(context.Context) (*Environment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvironmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvironmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Environment entities.
func (m *EnvironmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvironmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvironmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Environment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EnvironmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnvironmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnvironmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnvironmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnvironmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EnvironmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *EnvironmentMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EnvironmentMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EnvironmentMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *EnvironmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EnvironmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EnvironmentMutation) ResetName() {
	m.name = nil
}

// SetOrder sets the "order" field.
func (m *EnvironmentMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *EnvironmentMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *EnvironmentMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *EnvironmentMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *EnvironmentMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetRequireProposals sets the "require_proposals" field.
func (m *EnvironmentMutation) SetRequireProposals(b bool) {
	m.require_proposals = &b
}

// RequireProposals returns the value of the "require_proposals" field in the mutation.
func (m *EnvironmentMutation) RequireProposals() (r bool, exists bool) {
	v := m.require_proposals
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireProposals returns the old "require_proposals" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldRequireProposals(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireProposals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireProposals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireProposals: %w", err)
	}
	return oldValue.RequireProposals, nil
}

// ResetRequireProposals resets all changes to the "require_proposals" field.
func (m *EnvironmentMutation) ResetRequireProposals() {
	m.require_proposals = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EnvironmentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[environment.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EnvironmentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EnvironmentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EnvironmentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by ids.
func (m *EnvironmentMutation) AddVariantIDs(ids ...string) {
	if m.variants == nil {
		m.variants = make(map[string]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the ConfigVariant entity.
func (m *EnvironmentMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the ConfigVariant entity was cleared.
func (m *EnvironmentMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the ConfigVariant entity by IDs.
func (m *EnvironmentMutation) RemoveVariantIDs(ids ...string) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the ConfigVariant entity.
func (m *EnvironmentMutation) RemovedVariantsIDs() (ids []string) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *EnvironmentMutation) VariantsIDs() (ids []string) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *EnvironmentMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// AddSdkKeyIDs adds the "sdk_keys" edge to the SdkKey entity by ids.
func (m *EnvironmentMutation) AddSdkKeyIDs(ids ...string) {
	if m.sdk_keys == nil {
		m.sdk_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.sdk_keys[ids[i]] = struct{}{}
	}
}

// ClearSdkKeys clears the "sdk_keys" edge to the SdkKey entity.
func (m *EnvironmentMutation) ClearSdkKeys() {
	m.clearedsdk_keys = true
}

// SdkKeysCleared reports if the "sdk_keys" edge to the SdkKey entity was cleared.
func (m *EnvironmentMutation) SdkKeysCleared() bool {
	return m.clearedsdk_keys
}

// RemoveSdkKeyIDs removes the "sdk_keys" edge to the SdkKey entity by IDs.
func (m *EnvironmentMutation) RemoveSdkKeyIDs(ids ...string) {
	if m.removedsdk_keys == nil {
		m.removedsdk_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sdk_keys, ids[i])
		m.removedsdk_keys[ids[i]] = struct{}{}
	}
}

// RemovedSdkKeys returns the removed IDs of the "sdk_keys" edge to the SdkKey entity.
func (m *EnvironmentMutation) RemovedSdkKeysIDs() (ids []string) {
	for id := range m.removedsdk_keys {
		ids = append(ids, id)
	}
	return
}

// SdkKeysIDs returns the "sdk_keys" edge IDs in the mutation.
func (m *EnvironmentMutation) SdkKeysIDs() (ids []string) {
	for id := range m.sdk_keys {
		ids = append(ids, id)
	}
	return
}

// ResetSdkKeys resets all changes to the "sdk_keys" edge.
func (m *EnvironmentMutation) ResetSdkKeys() {
	m.sdk_keys = nil
	m.clearedsdk_keys = false
	m.removedsdk_keys = nil
}

// Where appends a list predicates to the EnvironmentMutation builder.
func (m *EnvironmentMutation) Where(ps ...predicate.Environment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvironmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvironmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Environment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvironmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvironmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Environment).
func (m *EnvironmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvironmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, environment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, environment.FieldUpdatedAt)
	}
	if m.project != nil {
		fields = append(fields, environment.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, environment.FieldName)
	}
	if m._order != nil {
		fields = append(fields, environment.FieldOrder)
	}
	if m.require_proposals != nil {
		fields = append(fields, environment.FieldRequireProposals)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvironmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case environment.FieldCreatedAt:
		return m.CreatedAt()
	case environment.FieldUpdatedAt:
		return m.UpdatedAt()
	case environment.FieldProjectID:
		return m.ProjectID()
	case environment.FieldName:
		return m.Name()
	case environment.FieldOrder:
		return m.Order()
	case environment.FieldRequireProposals:
		return m.RequireProposals()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvironmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case environment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case environment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case environment.FieldProjectID:
		return m.OldProjectID(ctx)
	case environment.FieldName:
		return m.OldName(ctx)
	case environment.FieldOrder:
		return m.OldOrder(ctx)
	case environment.FieldRequireProposals:
		return m.OldRequireProposals(ctx)
	}
	return nil, fmt.Errorf("unknown Environment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case environment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case environment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case environment.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case environment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case environment.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case environment.FieldRequireProposals:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireProposals(v)
		return nil
	}
	return fmt.Errorf("unknown Environment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvironmentMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, environment.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvironmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case environment.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case environment.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Environment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvironmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvironmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvironmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Environment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvironmentMutation) ResetField(name string) error {
	switch name {
	case environment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case environment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case environment.FieldProjectID:
		m.ResetProjectID()
		return nil
	case environment.FieldName:
		m.ResetName()
		return nil
	case environment.FieldOrder:
		m.ResetOrder()
		return nil
	case environment.FieldRequireProposals:
		m.ResetRequireProposals()
		return nil
	}
	return fmt.Errorf("unknown Environment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvironmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, environment.EdgeProject)
	}
	if m.variants != nil {
		edges = append(edges, environment.EdgeVariants)
	}
	if m.sdk_keys != nil {
		edges = append(edges, environment.EdgeSdkKeys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvironmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case environment.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case environment.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	case environment.EdgeSdkKeys:
		ids := make([]ent.Value, 0, len(m.sdk_keys))
		for id := range m.sdk_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvironmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedvariants != nil {
		edges = append(edges, environment.EdgeVariants)
	}
	if m.removedsdk_keys != nil {
		edges = append(edges, environment.EdgeSdkKeys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvironmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case environment.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	case environment.EdgeSdkKeys:
		ids := make([]ent.Value, 0, len(m.removedsdk_keys))
		for id := range m.removedsdk_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvironmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, environment.EdgeProject)
	}
	if m.clearedvariants {
		edges = append(edges, environment.EdgeVariants)
	}
	if m.clearedsdk_keys {
		edges = append(edges, environment.EdgeSdkKeys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvironmentMutation) EdgeCleared(name string) bool {
	switch name {
	case environment.EdgeProject:
		return m.clearedproject
	case environment.EdgeVariants:
		return m.clearedvariants
	case environment.EdgeSdkKeys:
		return m.clearedsdk_keys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvironmentMutation) ClearEdge(name string) error {
	switch name {
	case environment.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Environment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvironmentMutation) ResetEdge(name string) error {
	switch name {
	case environment.EdgeProject:
		m.ResetProject()
		return nil
	case environment.EdgeVariants:
		m.ResetVariants()
		return nil
	case environment.EdgeSdkKeys:
		m.ResetSdkKeys()
		return nil
	}
	return fmt.Errorf("unknown Environment edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	name                 *string
	description          *string
	require_proposals    *bool
	allow_self_approvals *bool
	created_by           *string
	clearedFields        map[string]struct{}
	workspace            *string
	clearedworkspace     bool
	environments         map[string]struct{}
	removedenvironments  map[string]struct{}
	clearedenvironments  bool
	configs              map[string]struct{}
	removedconfigs       map[string]struct{}
	clearedconfigs       bool
	users                map[string]struct{}
	removedusers         map[string]struct{}
	clearedusers         bool
	sdk_keys             map[string]struct{}
	removedsdk_keys      map[string]struct{}
	clearedsdk_keys      bool
	api_keys             map[string]struct{}
	removedapi_keys      map[string]struct{}
	clearedapi_keys      bool
	done                 bool
	oldValue             func(context.Context) (*Project, error)
	predicates           []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ProjectMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ProjectMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ProjectMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetRequireProposals sets the "require_proposals" field.
func (m *ProjectMutation) SetRequireProposals(b bool) {
	m.require_proposals = &b
}

// RequireProposals returns the value of the "require_proposals" field in the mutation.
func (m *ProjectMutation) RequireProposals() (r bool, exists bool) {
	v := m.require_proposals
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireProposals returns the old "require_proposals" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRequireProposals(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireProposals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireProposals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireProposals: %w", err)
	}
	return oldValue.RequireProposals, nil
}

// ResetRequireProposals resets all changes to the "require_proposals" field.
func (m *ProjectMutation) ResetRequireProposals() {
	m.require_proposals = nil
}

// SetAllowSelfApprovals sets the "allow_self_approvals" field.
func (m *ProjectMutation) SetAllowSelfApprovals(b bool) {
	m.allow_self_approvals = &b
}

// AllowSelfApprovals returns the value of the "allow_self_approvals" field in the mutation.
func (m *ProjectMutation) AllowSelfApprovals() (r bool, exists bool) {
	v := m.allow_self_approvals
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowSelfApprovals returns the old "allow_self_approvals" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAllowSelfApprovals(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowSelfApprovals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowSelfApprovals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowSelfApprovals: %w", err)
	}
	return oldValue.AllowSelfApprovals, nil
}

// ResetAllowSelfApprovals resets all changes to the "allow_self_approvals" field.
func (m *ProjectMutation) ResetAllowSelfApprovals() {
	m.allow_self_approvals = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ProjectMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ProjectMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ProjectMutation) ResetCreatedBy() {
	m.created_by = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ProjectMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[project.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ProjectMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ProjectMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddEnvironmentIDs adds the "environments" edge to the Environment entity by ids.
func (m *ProjectMutation) AddEnvironmentIDs(ids ...string) {
	if m.environments == nil {
		m.environments = make(map[string]struct{})
	}
	for i := range ids {
		m.environments[ids[i]] = struct{}{}
	}
}

// ClearEnvironments clears the "environments" edge to the Environment entity.
func (m *ProjectMutation) ClearEnvironments() {
	m.clearedenvironments = true
}

// EnvironmentsCleared reports if the "environments" edge to the Environment entity was cleared.
func (m *ProjectMutation) EnvironmentsCleared() bool {
	return m.clearedenvironments
}

// RemoveEnvironmentIDs removes the "environments" edge to the Environment entity by IDs.
func (m *ProjectMutation) RemoveEnvironmentIDs(ids ...string) {
	if m.removedenvironments == nil {
		m.removedenvironments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.environments, ids[i])
		m.removedenvironments[ids[i]] = struct{}{}
	}
}

// RemovedEnvironments returns the removed IDs of the "environments" edge to the Environment entity.
func (m *ProjectMutation) RemovedEnvironmentsIDs() (ids []string) {
	for id := range m.removedenvironments {
		ids = append(ids, id)
	}
	return
}

// EnvironmentsIDs returns the "environments" edge IDs in the mutation.
func (m *ProjectMutation) EnvironmentsIDs() (ids []string) {
	for id := range m.environments {
		ids = append(ids, id)
	}
	return
}

// ResetEnvironments resets all changes to the "environments" edge.
func (m *ProjectMutation) ResetEnvironments() {
	m.environments = nil
	m.clearedenvironments = false
	m.removedenvironments = nil
}

// AddConfigIDs adds the "configs" edge to the ConfigItem entity by ids.
func (m *ProjectMutation) AddConfigIDs(ids ...string) {
	if m.configs == nil {
		m.configs = make(map[string]struct{})
	}
	for i := range ids {
		m.configs[ids[i]] = struct{}{}
	}
}

// ClearConfigs clears the "configs" edge to the ConfigItem entity.
func (m *ProjectMutation) ClearConfigs() {
	m.clearedconfigs = true
}

// ConfigsCleared reports if the "configs" edge to the ConfigItem entity was cleared.
func (m *ProjectMutation) ConfigsCleared() bool {
	return m.clearedconfigs
}

// RemoveConfigIDs removes the "configs" edge to the ConfigItem entity by IDs.
func (m *ProjectMutation) RemoveConfigIDs(ids ...string) {
	if m.removedconfigs == nil {
		m.removedconfigs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.configs, ids[i])
		m.removedconfigs[ids[i]] = struct{}{}
	}
}

// RemovedConfigs returns the removed IDs of the "configs" edge to the ConfigItem entity.
func (m *ProjectMutation) RemovedConfigsIDs() (ids []string) {
	for id := range m.removedconfigs {
		ids = append(ids, id)
	}
	return
}

// ConfigsIDs returns the "configs" edge IDs in the mutation.
func (m *ProjectMutation) ConfigsIDs() (ids []string) {
	for id := range m.configs {
		ids = append(ids, id)
	}
	return
}

// ResetConfigs resets all changes to the "configs" edge.
func (m *ProjectMutation) ResetConfigs() {
	m.configs = nil
	m.clearedconfigs = false
	m.removedconfigs = nil
}

// AddUserIDs adds the "users" edge to the ProjectUser entity by ids.
func (m *ProjectMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the ProjectUser entity.
func (m *ProjectMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the ProjectUser entity was cleared.
func (m *ProjectMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the ProjectUser entity by IDs.
func (m *ProjectMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the ProjectUser entity.
func (m *ProjectMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *ProjectMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *ProjectMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddSdkKeyIDs adds the "sdk_keys" edge to the SdkKey entity by ids.
func (m *ProjectMutation) AddSdkKeyIDs(ids ...string) {
	if m.sdk_keys == nil {
		m.sdk_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.sdk_keys[ids[i]] = struct{}{}
	}
}

// ClearSdkKeys clears the "sdk_keys" edge to the SdkKey entity.
func (m *ProjectMutation) ClearSdkKeys() {
	m.clearedsdk_keys = true
}

// SdkKeysCleared reports if the "sdk_keys" edge to the SdkKey entity was cleared.
func (m *ProjectMutation) SdkKeysCleared() bool {
	return m.clearedsdk_keys
}

// RemoveSdkKeyIDs removes the "sdk_keys" edge to the SdkKey entity by IDs.
func (m *ProjectMutation) RemoveSdkKeyIDs(ids ...string) {
	if m.removedsdk_keys == nil {
		m.removedsdk_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sdk_keys, ids[i])
		m.removedsdk_keys[ids[i]] = struct{}{}
	}
}

// RemovedSdkKeys returns the removed IDs of the "sdk_keys" edge to the SdkKey entity.
func (m *ProjectMutation) RemovedSdkKeysIDs() (ids []string) {
	for id := range m.removedsdk_keys {
		ids = append(ids, id)
	}
	return
}

// SdkKeysIDs returns the "sdk_keys" edge IDs in the mutation.
func (m *ProjectMutation) SdkKeysIDs() (ids []string) {
	for id := range m.sdk_keys {
		ids = append(ids, id)
	}
	return
}

// ResetSdkKeys resets all changes to the "sdk_keys" edge.
func (m *ProjectMutation) ResetSdkKeys() {
	m.sdk_keys = nil
	m.clearedsdk_keys = false
	m.removedsdk_keys = nil
}

// AddAPIKeyIDs adds the "api_keys" edge to the AdminApiKey entity by ids.
func (m *ProjectMutation) AddAPIKeyIDs(ids ...string) {
	if m.api_keys == nil {
		m.api_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.api_keys[ids[i]] = struct{}{}
	}
}

// ClearAPIKeys clears the "api_keys" edge to the AdminApiKey entity.
func (m *ProjectMutation) ClearAPIKeys() {
	m.clearedapi_keys = true
}

// APIKeysCleared reports if the "api_keys" edge to the AdminApiKey entity was cleared.
func (m *ProjectMutation) APIKeysCleared() bool {
	return m.clearedapi_keys
}

// RemoveAPIKeyIDs removes the "api_keys" edge to the AdminApiKey entity by IDs.
func (m *ProjectMutation) RemoveAPIKeyIDs(ids ...string) {
	if m.removedapi_keys == nil {
		m.removedapi_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.api_keys, ids[i])
		m.removedapi_keys[ids[i]] = struct{}{}
	}
}

// RemovedAPIKeys returns the removed IDs of the "api_keys" edge to the AdminApiKey entity.
func (m *ProjectMutation) RemovedAPIKeysIDs() (ids []string) {
	for id := range m.removedapi_keys {
		ids = append(ids, id)
	}
	return
}

// APIKeysIDs returns the "api_keys" edge IDs in the mutation.
func (m *ProjectMutation) APIKeysIDs() (ids []string) {
	for id := range m.api_keys {
		ids = append(ids, id)
	}
	return
}

// ResetAPIKeys resets all changes to the "api_keys" edge.
func (m *ProjectMutation) ResetAPIKeys() {
	m.api_keys = nil
	m.clearedapi_keys = false
	m.removedapi_keys = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.workspace != nil {
		fields = append(fields, project.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.require_proposals != nil {
		fields = append(fields, project.FieldRequireProposals)
	}
	if m.allow_self_approvals != nil {
		fields = append(fields, project.FieldAllowSelfApprovals)
	}
	if m.created_by != nil {
		fields = append(fields, project.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldWorkspaceID:
		return m.WorkspaceID()
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldRequireProposals:
		return m.RequireProposals()
	case project.FieldAllowSelfApprovals:
		return m.AllowSelfApprovals()
	case project.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldRequireProposals:
		return m.OldRequireProposals(ctx)
	case project.FieldAllowSelfApprovals:
		return m.OldAllowSelfApprovals(ctx)
	case project.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldRequireProposals:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireProposals(v)
		return nil
	case project.FieldAllowSelfApprovals:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowSelfApprovals(v)
		return nil
	case project.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldRequireProposals:
		m.ResetRequireProposals()
		return nil
	case project.FieldAllowSelfApprovals:
		m.ResetAllowSelfApprovals()
		return nil
	case project.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.workspace != nil {
		edges = append(edges, project.EdgeWorkspace)
	}
	if m.environments != nil {
		edges = append(edges, project.EdgeEnvironments)
	}
	if m.configs != nil {
		edges = append(edges, project.EdgeConfigs)
	}
	if m.users != nil {
		edges = append(edges, project.EdgeUsers)
	}
	if m.sdk_keys != nil {
		edges = append(edges, project.EdgeSdkKeys)
	}
	if m.api_keys != nil {
		edges = append(edges, project.EdgeAPIKeys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeEnvironments:
		ids := make([]ent.Value, 0, len(m.environments))
		for id := range m.environments {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeConfigs:
		ids := make([]ent.Value, 0, len(m.configs))
		for id := range m.configs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSdkKeys:
		ids := make([]ent.Value, 0, len(m.sdk_keys))
		for id := range m.sdk_keys {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.api_keys))
		for id := range m.api_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedenvironments != nil {
		edges = append(edges, project.EdgeEnvironments)
	}
	if m.removedconfigs != nil {
		edges = append(edges, project.EdgeConfigs)
	}
	if m.removedusers != nil {
		edges = append(edges, project.EdgeUsers)
	}
	if m.removedsdk_keys != nil {
		edges = append(edges, project.EdgeSdkKeys)
	}
	if m.removedapi_keys != nil {
		edges = append(edges, project.EdgeAPIKeys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeEnvironments:
		ids := make([]ent.Value, 0, len(m.removedenvironments))
		for id := range m.removedenvironments {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeConfigs:
		ids := make([]ent.Value, 0, len(m.removedconfigs))
		for id := range m.removedconfigs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSdkKeys:
		ids := make([]ent.Value, 0, len(m.removedsdk_keys))
		for id := range m.removedsdk_keys {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.removedapi_keys))
		for id := range m.removedapi_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedworkspace {
		edges = append(edges, project.EdgeWorkspace)
	}
	if m.clearedenvironments {
		edges = append(edges, project.EdgeEnvironments)
	}
	if m.clearedconfigs {
		edges = append(edges, project.EdgeConfigs)
	}
	if m.clearedusers {
		edges = append(edges, project.EdgeUsers)
	}
	if m.clearedsdk_keys {
		edges = append(edges, project.EdgeSdkKeys)
	}
	if m.clearedapi_keys {
		edges = append(edges, project.EdgeAPIKeys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeWorkspace:
		return m.clearedworkspace
	case project.EdgeEnvironments:
		return m.clearedenvironments
	case project.EdgeConfigs:
		return m.clearedconfigs
	case project.EdgeUsers:
		return m.clearedusers
	case project.EdgeSdkKeys:
		return m.clearedsdk_keys
	case project.EdgeAPIKeys:
		return m.clearedapi_keys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case project.EdgeEnvironments:
		m.ResetEnvironments()
		return nil
	case project.EdgeConfigs:
		m.ResetConfigs()
		return nil
	case project.EdgeUsers:
		m.ResetUsers()
		return nil
	case project.EdgeSdkKeys:
		m.ResetSdkKeys()
		return nil
	case project.EdgeAPIKeys:
		m.ResetAPIKeys()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectUserMutation represents an operation that mutates the ProjectUser nodes in the graph.
type ProjectUserMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	email          *string
	role           *projectuser.Role
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*ProjectUser, error)
	predicates     []predicate.ProjectUser
}

var _ ent.Mutation = (*ProjectUserMutation)(nil)

// projectuserOption allows management of the mutation configuration using functional options.
type projectuserOption func(*ProjectUserMutation)

// newProjectUserMutation creates new mutation for the ProjectUser entity.
func newProjectUserMutation(c config, op Op, opts ...projectuserOption) *ProjectUserMutation {
	m := &ProjectUserMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectUserID sets the ID field of the mutation.
func withProjectUserID(id string) projectuserOption {
	return func(m *ProjectUserMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectUser
		)
		m.oldValue = func(ctx context.Context) (*ProjectUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectUser sets the old ProjectUser of the mutation.
func withProjectUser(node *ProjectUser) projectuserOption {
	return func(m *ProjectUserMutation) {
		m.oldValue = func(context.Context) (*ProjectUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectUser entities.
func (m *ProjectUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectUser entity.
// If the ProjectUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectUser entity.
// If the ProjectUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *ProjectUserMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectUserMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectUser entity.
// If the ProjectUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectUserMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectUserMutation) ResetProjectID() {
	m.project = nil
}

// SetEmail sets the "email" field.
func (m *ProjectUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProjectUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ProjectUser entity.
// If the ProjectUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ProjectUserMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *ProjectUserMutation) SetRole(pr projectuser.Role) {
	m.role = &pr
}

// Role returns the value of the "role" field in the mutation.
func (m *ProjectUserMutation) Role() (r projectuser.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ProjectUser entity.
// If the ProjectUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectUserMutation) OldRole(ctx context.Context) (v projectuser.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ProjectUserMutation) ResetRole() {
	m.role = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectUserMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[projectuser.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectUserMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectUserMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectUserMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProjectUserMutation builder.
func (m *ProjectUserMutation) Where(ps ...predicate.ProjectUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectUser).
func (m *ProjectUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectUserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, projectuser.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectuser.FieldUpdatedAt)
	}
	if m.project != nil {
		fields = append(fields, projectuser.FieldProjectID)
	}
	if m.email != nil {
		fields = append(fields, projectuser.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, projectuser.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectuser.FieldCreatedAt:
		return m.CreatedAt()
	case projectuser.FieldUpdatedAt:
		return m.UpdatedAt()
	case projectuser.FieldProjectID:
		return m.ProjectID()
	case projectuser.FieldEmail:
		return m.Email()
	case projectuser.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectuser.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case projectuser.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectuser.FieldEmail:
		return m.OldEmail(ctx)
	case projectuser.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectuser.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case projectuser.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case projectuser.FieldRole:
		v, ok := value.(projectuser.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectUserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectUserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectUserMutation) ResetField(name string) error {
	switch name {
	case projectuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectuser.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case projectuser.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectuser.FieldEmail:
		m.ResetEmail()
		return nil
	case projectuser.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown ProjectUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, projectuser.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectUserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectuser.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, projectuser.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectUserMutation) EdgeCleared(name string) bool {
	switch name {
	case projectuser.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectUserMutation) ClearEdge(name string) error {
	switch name {
	case projectuser.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectUserMutation) ResetEdge(name string) error {
	switch name {
	case projectuser.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectUser edge %s", name)
}

// SdkKeyMutation represents an operation that mutates the SdkKey nodes in the graph.
type SdkKeyMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	description        *string
	key_hash           *string
	key_prefix         *string
	key_suffix         *string
	created_by         *string
	last_used_at       *time.Time
	clearedFields      map[string]struct{}
	project            *string
	clearedproject     bool
	environment        *string
	clearedenvironment bool
	done               bool
	oldValue           func(context.Context) (*SdkKey, error)
	predicates         []predicate.SdkKey
}

var _ ent.Mutation = (*SdkKeyMutation)(nil)

// sdkkeyOption allows management of the mutation configuration using functional options.
type sdkkeyOption func(*SdkKeyMutation)

// newSdkKeyMutation creates new mutation for the SdkKey entity.
func newSdkKeyMutation(c config, op Op, opts ...sdkkeyOption) *SdkKeyMutation {
	m := &SdkKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeSdkKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSdkKeyID sets the ID field of the mutation.
func withSdkKeyID(id string) sdkkeyOption {
	return func(m *SdkKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *SdkKey
		)
		m.oldValue = func(ctx context.Context) (*SdkKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SdkKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSdkKey sets the old SdkKey of the mutation.
func withSdkKey(node *SdkKey) sdkkeyOption {
	return func(m *SdkKeyMutation) {
		m.oldValue = func(context.Context) (*SdkKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SdkKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SdkKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SdkKey entities.
func (m *SdkKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SdkKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SdkKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SdkKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SdkKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SdkKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SdkKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SdkKeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SdkKeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SdkKeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *SdkKeyMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SdkKeyMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SdkKeyMutation) ResetProjectID() {
	m.project = nil
}

// SetEnvironmentID sets the "environment_id" field.
func (m *SdkKeyMutation) SetEnvironmentID(s string) {
	m.environment = &s
}

// EnvironmentID returns the value of the "environment_id" field in the mutation.
func (m *SdkKeyMutation) EnvironmentID() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironmentID returns the old "environment_id" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldEnvironmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironmentID: %w", err)
	}
	return oldValue.EnvironmentID, nil
}

// ResetEnvironmentID resets all changes to the "environment_id" field.
func (m *SdkKeyMutation) ResetEnvironmentID() {
	m.environment = nil
}

// SetName sets the "name" field.
func (m *SdkKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SdkKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SdkKeyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SdkKeyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SdkKeyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SdkKeyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sdkkey.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SdkKeyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sdkkey.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SdkKeyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sdkkey.FieldDescription)
}

// SetKeyHash sets the "key_hash" field.
func (m *SdkKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *SdkKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *SdkKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetKeyPrefix sets the "key_prefix" field.
func (m *SdkKeyMutation) SetKeyPrefix(s string) {
	m.key_prefix = &s
}

// KeyPrefix returns the value of the "key_prefix" field in the mutation.
func (m *SdkKeyMutation) KeyPrefix() (r string, exists bool) {
	v := m.key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPrefix returns the old "key_prefix" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPrefix: %w", err)
	}
	return oldValue.KeyPrefix, nil
}

// ResetKeyPrefix resets all changes to the "key_prefix" field.
func (m *SdkKeyMutation) ResetKeyPrefix() {
	m.key_prefix = nil
}

// SetKeySuffix sets the "key_suffix" field.
func (m *SdkKeyMutation) SetKeySuffix(s string) {
	m.key_suffix = &s
}

// KeySuffix returns the value of the "key_suffix" field in the mutation.
func (m *SdkKeyMutation) KeySuffix() (r string, exists bool) {
	v := m.key_suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeySuffix returns the old "key_suffix" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldKeySuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeySuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeySuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeySuffix: %w", err)
	}
	return oldValue.KeySuffix, nil
}

// ResetKeySuffix resets all changes to the "key_suffix" field.
func (m *SdkKeyMutation) ResetKeySuffix() {
	m.key_suffix = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *SdkKeyMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *SdkKeyMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *SdkKeyMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *SdkKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *SdkKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the SdkKey entity.
// If the SdkKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SdkKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *SdkKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[sdkkey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *SdkKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[sdkkey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *SdkKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, sdkkey.FieldLastUsedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SdkKeyMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[sdkkey.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SdkKeyMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SdkKeyMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SdkKeyMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearEnvironment clears the "environment" edge to the Environment entity.
func (m *SdkKeyMutation) ClearEnvironment() {
	m.clearedenvironment = true
	m.clearedFields[sdkkey.FieldEnvironmentID] = struct{}{}
}

// EnvironmentCleared reports if the "environment" edge to the Environment entity was cleared.
func (m *SdkKeyMutation) EnvironmentCleared() bool {
	return m.clearedenvironment
}

// EnvironmentIDs returns the "environment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EnvironmentID instead. It exists only for internal usage by the builders.
func (m *SdkKeyMutation) EnvironmentIDs() (ids []string) {
	if id := m.environment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEnvironment resets all changes to the "environment" edge.
func (m *SdkKeyMutation) ResetEnvironment() {
	m.environment = nil
	m.clearedenvironment = false
}

// Where appends a list predicates to the SdkKeyMutation builder.
func (m *SdkKeyMutation) Where(ps ...predicate.SdkKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SdkKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SdkKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SdkKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SdkKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SdkKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SdkKey).
func (m *SdkKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SdkKeyMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, sdkkey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sdkkey.FieldUpdatedAt)
	}
	if m.project != nil {
		fields = append(fields, sdkkey.FieldProjectID)
	}
	if m.environment != nil {
		fields = append(fields, sdkkey.FieldEnvironmentID)
	}
	if m.name != nil {
		fields = append(fields, sdkkey.FieldName)
	}
	if m.description != nil {
		fields = append(fields, sdkkey.FieldDescription)
	}
	if m.key_hash != nil {
		fields = append(fields, sdkkey.FieldKeyHash)
	}
	if m.key_prefix != nil {
		fields = append(fields, sdkkey.FieldKeyPrefix)
	}
	if m.key_suffix != nil {
		fields = append(fields, sdkkey.FieldKeySuffix)
	}
	if m.created_by != nil {
		fields = append(fields, sdkkey.FieldCreatedBy)
	}
	if m.last_used_at != nil {
		fields = append(fields, sdkkey.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SdkKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sdkkey.FieldCreatedAt:
		return m.CreatedAt()
	case sdkkey.FieldUpdatedAt:
		return m.UpdatedAt()
	case sdkkey.FieldProjectID:
		return m.ProjectID()
	case sdkkey.FieldEnvironmentID:
		return m.EnvironmentID()
	case sdkkey.FieldName:
		return m.Name()
	case sdkkey.FieldDescription:
		return m.Description()
	case sdkkey.FieldKeyHash:
		return m.KeyHash()
	case sdkkey.FieldKeyPrefix:
		return m.KeyPrefix()
	case sdkkey.FieldKeySuffix:
		return m.KeySuffix()
	case sdkkey.FieldCreatedBy:
		return m.CreatedBy()
	case sdkkey.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SdkKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sdkkey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sdkkey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sdkkey.FieldProjectID:
		return m.OldProjectID(ctx)
	case sdkkey.FieldEnvironmentID:
		return m.OldEnvironmentID(ctx)
	case sdkkey.FieldName:
		return m.OldName(ctx)
	case sdkkey.FieldDescription:
		return m.OldDescription(ctx)
	case sdkkey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case sdkkey.FieldKeyPrefix:
		return m.OldKeyPrefix(ctx)
	case sdkkey.FieldKeySuffix:
		return m.OldKeySuffix(ctx)
	case sdkkey.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case sdkkey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SdkKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SdkKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sdkkey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sdkkey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sdkkey.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case sdkkey.FieldEnvironmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironmentID(v)
		return nil
	case sdkkey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sdkkey.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sdkkey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case sdkkey.FieldKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPrefix(v)
		return nil
	case sdkkey.FieldKeySuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeySuffix(v)
		return nil
	case sdkkey.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case sdkkey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SdkKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SdkKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SdkKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SdkKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SdkKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SdkKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sdkkey.FieldDescription) {
		fields = append(fields, sdkkey.FieldDescription)
	}
	if m.FieldCleared(sdkkey.FieldLastUsedAt) {
		fields = append(fields, sdkkey.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SdkKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SdkKeyMutation) ClearField(name string) error {
	switch name {
	case sdkkey.FieldDescription:
		m.ClearDescription()
		return nil
	case sdkkey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown SdkKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SdkKeyMutation) ResetField(name string) error {
	switch name {
	case sdkkey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sdkkey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sdkkey.FieldProjectID:
		m.ResetProjectID()
		return nil
	case sdkkey.FieldEnvironmentID:
		m.ResetEnvironmentID()
		return nil
	case sdkkey.FieldName:
		m.ResetName()
		return nil
	case sdkkey.FieldDescription:
		m.ResetDescription()
		return nil
	case sdkkey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case sdkkey.FieldKeyPrefix:
		m.ResetKeyPrefix()
		return nil
	case sdkkey.FieldKeySuffix:
		m.ResetKeySuffix()
		return nil
	case sdkkey.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case sdkkey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown SdkKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SdkKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, sdkkey.EdgeProject)
	}
	if m.environment != nil {
		edges = append(edges, sdkkey.EdgeEnvironment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SdkKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sdkkey.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case sdkkey.EdgeEnvironment:
		if id := m.environment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SdkKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SdkKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SdkKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, sdkkey.EdgeProject)
	}
	if m.clearedenvironment {
		edges = append(edges, sdkkey.EdgeEnvironment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SdkKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case sdkkey.EdgeProject:
		return m.clearedproject
	case sdkkey.EdgeEnvironment:
		return m.clearedenvironment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SdkKeyMutation) ClearEdge(name string) error {
	switch name {
	case sdkkey.EdgeProject:
		m.ClearProject()
		return nil
	case sdkkey.EdgeEnvironment:
		m.ClearEnvironment()
		return nil
	}
	return fmt.Errorf("unknown SdkKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SdkKeyMutation) ResetEdge(name string) error {
	switch name {
	case sdkkey.EdgeProject:
		m.ResetProject()
		return nil
	case sdkkey.EdgeEnvironment:
		m.ResetEnvironment()
		return nil
	}
	return fmt.Errorf("unknown SdkKey edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	auto_add_new_users *bool
	clearedFields      map[string]struct{}
	members            map[string]struct{}
	removedmembers     map[string]struct{}
	clearedmembers     bool
	projects           map[string]struct{}
	removedprojects    map[string]struct{}
	clearedprojects    bool
	api_keys           map[string]struct{}
	removedapi_keys    map[string]struct{}
	clearedapi_keys    bool
	done               bool
	oldValue           func(context.Context) (*Workspace, error)
	predicates         []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetAutoAddNewUsers sets the "auto_add_new_users" field.
func (m *WorkspaceMutation) SetAutoAddNewUsers(b bool) {
	m.auto_add_new_users = &b
}

// AutoAddNewUsers returns the value of the "auto_add_new_users" field in the mutation.
func (m *WorkspaceMutation) AutoAddNewUsers() (r bool, exists bool) {
	v := m.auto_add_new_users
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoAddNewUsers returns the old "auto_add_new_users" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldAutoAddNewUsers(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoAddNewUsers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoAddNewUsers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoAddNewUsers: %w", err)
	}
	return oldValue.AutoAddNewUsers, nil
}

// ResetAutoAddNewUsers resets all changes to the "auto_add_new_users" field.
func (m *WorkspaceMutation) ResetAutoAddNewUsers() {
	m.auto_add_new_users = nil
}

// AddMemberIDs adds the "members" edge to the WorkspaceMember entity by ids.
func (m *WorkspaceMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the WorkspaceMember entity.
func (m *WorkspaceMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the WorkspaceMember entity was cleared.
func (m *WorkspaceMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the WorkspaceMember entity by IDs.
func (m *WorkspaceMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the WorkspaceMember entity.
func (m *WorkspaceMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *WorkspaceMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *WorkspaceMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *WorkspaceMutation) AddProjectIDs(ids ...string) {
	if m.projects == nil {
		m.projects = make(map[string]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *WorkspaceMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *WorkspaceMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *WorkspaceMutation) RemoveProjectIDs(ids ...string) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *WorkspaceMutation) RemovedProjectsIDs() (ids []string) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *WorkspaceMutation) ProjectsIDs() (ids []string) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *WorkspaceMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// AddAPIKeyIDs adds the "api_keys" edge to the AdminApiKey entity by ids.
func (m *WorkspaceMutation) AddAPIKeyIDs(ids ...string) {
	if m.api_keys == nil {
		m.api_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.api_keys[ids[i]] = struct{}{}
	}
}

// ClearAPIKeys clears the "api_keys" edge to the AdminApiKey entity.
func (m *WorkspaceMutation) ClearAPIKeys() {
	m.clearedapi_keys = true
}

// APIKeysCleared reports if the "api_keys" edge to the AdminApiKey entity was cleared.
func (m *WorkspaceMutation) APIKeysCleared() bool {
	return m.clearedapi_keys
}

// RemoveAPIKeyIDs removes the "api_keys" edge to the AdminApiKey entity by IDs.
func (m *WorkspaceMutation) RemoveAPIKeyIDs(ids ...string) {
	if m.removedapi_keys == nil {
		m.removedapi_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.api_keys, ids[i])
		m.removedapi_keys[ids[i]] = struct{}{}
	}
}

// RemovedAPIKeys returns the removed IDs of the "api_keys" edge to the AdminApiKey entity.
func (m *WorkspaceMutation) RemovedAPIKeysIDs() (ids []string) {
	for id := range m.removedapi_keys {
		ids = append(ids, id)
	}
	return
}

// APIKeysIDs returns the "api_keys" edge IDs in the mutation.
func (m *WorkspaceMutation) APIKeysIDs() (ids []string) {
	for id := range m.api_keys {
		ids = append(ids, id)
	}
	return
}

// ResetAPIKeys resets all changes to the "api_keys" edge.
func (m *WorkspaceMutation) ResetAPIKeys() {
	m.api_keys = nil
	m.clearedapi_keys = false
	m.removedapi_keys = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.auto_add_new_users != nil {
		fields = append(fields, workspace.FieldAutoAddNewUsers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldAutoAddNewUsers:
		return m.AutoAddNewUsers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldAutoAddNewUsers:
		return m.OldAutoAddNewUsers(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldAutoAddNewUsers:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoAddNewUsers(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldAutoAddNewUsers:
		m.ResetAutoAddNewUsers()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.members != nil {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.projects != nil {
		edges = append(edges, workspace.EdgeProjects)
	}
	if m.api_keys != nil {
		edges = append(edges, workspace.EdgeAPIKeys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.api_keys))
		for id := range m.api_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmembers != nil {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.removedprojects != nil {
		edges = append(edges, workspace.EdgeProjects)
	}
	if m.removedapi_keys != nil {
		edges = append(edges, workspace.EdgeAPIKeys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.removedapi_keys))
		for id := range m.removedapi_keys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmembers {
		edges = append(edges, workspace.EdgeMembers)
	}
	if m.clearedprojects {
		edges = append(edges, workspace.EdgeProjects)
	}
	if m.clearedapi_keys {
		edges = append(edges, workspace.EdgeAPIKeys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeMembers:
		return m.clearedmembers
	case workspace.EdgeProjects:
		return m.clearedprojects
	case workspace.EdgeAPIKeys:
		return m.clearedapi_keys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeMembers:
		m.ResetMembers()
		return nil
	case workspace.EdgeProjects:
		m.ResetProjects()
		return nil
	case workspace.EdgeAPIKeys:
		m.ResetAPIKeys()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}

// WorkspaceMemberMutation represents an operation that mutates the WorkspaceMember nodes in the graph.
type WorkspaceMemberMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	email            *string
	name             *string
	role             *workspacemember.Role
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*WorkspaceMember, error)
	predicates       []predicate.WorkspaceMember
}

var _ ent.Mutation = (*WorkspaceMemberMutation)(nil)

// workspacememberOption allows management of the mutation configuration using functional options.
type workspacememberOption func(*WorkspaceMemberMutation)

// newWorkspaceMemberMutation creates new mutation for the WorkspaceMember entity.
func newWorkspaceMemberMutation(c config, op Op, opts ...workspacememberOption) *WorkspaceMemberMutation {
	m := &WorkspaceMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspaceMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceMemberID sets the ID field of the mutation.
func withWorkspaceMemberID(id string) workspacememberOption {
	return func(m *WorkspaceMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkspaceMember
		)
		m.oldValue = func(ctx context.Context) (*WorkspaceMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkspaceMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspaceMember sets the old WorkspaceMember of the mutation.
func withWorkspaceMember(node *WorkspaceMember) workspacememberOption {
	return func(m *WorkspaceMemberMutation) {
		m.oldValue = func(context.Context) (*WorkspaceMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkspaceMember entities.
func (m *WorkspaceMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkspaceMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkspaceMemberMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkspaceMemberMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkspaceMemberMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetEmail sets the "email" field.
func (m *WorkspaceMemberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *WorkspaceMemberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *WorkspaceMemberMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *WorkspaceMemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *WorkspaceMemberMutation) ClearName() {
	m.name = nil
	m.clearedFields[workspacemember.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *WorkspaceMemberMutation) NameCleared() bool {
	_, ok := m.clearedFields[workspacemember.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMemberMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, workspacemember.FieldName)
}

// SetRole sets the "role" field.
func (m *WorkspaceMemberMutation) SetRole(w workspacemember.Role) {
	m.role = &w
}

// Role returns the value of the "role" field in the mutation.
func (m *WorkspaceMemberMutation) Role() (r workspacemember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the WorkspaceMember entity.
// If the WorkspaceMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMemberMutation) OldRole(ctx context.Context) (v workspacemember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *WorkspaceMemberMutation) ResetRole() {
	m.role = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *WorkspaceMemberMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[workspacemember.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *WorkspaceMemberMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMemberMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *WorkspaceMemberMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the WorkspaceMemberMutation builder.
func (m *WorkspaceMemberMutation) Where(ps ...predicate.WorkspaceMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkspaceMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkspaceMember).
func (m *WorkspaceMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMemberMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, workspacemember.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspacemember.FieldUpdatedAt)
	}
	if m.workspace != nil {
		fields = append(fields, workspacemember.FieldWorkspaceID)
	}
	if m.email != nil {
		fields = append(fields, workspacemember.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, workspacemember.FieldName)
	}
	if m.role != nil {
		fields = append(fields, workspacemember.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspacemember.FieldCreatedAt:
		return m.CreatedAt()
	case workspacemember.FieldUpdatedAt:
		return m.UpdatedAt()
	case workspacemember.FieldWorkspaceID:
		return m.WorkspaceID()
	case workspacemember.FieldEmail:
		return m.Email()
	case workspacemember.FieldName:
		return m.Name()
	case workspacemember.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspacemember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspacemember.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workspacemember.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workspacemember.FieldEmail:
		return m.OldEmail(ctx)
	case workspacemember.FieldName:
		return m.OldName(ctx)
	case workspacemember.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspacemember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspacemember.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workspacemember.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workspacemember.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case workspacemember.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspacemember.FieldRole:
		v, ok := value.(workspacemember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkspaceMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspacemember.FieldName) {
		fields = append(fields, workspacemember.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMemberMutation) ClearField(name string) error {
	switch name {
	case workspacemember.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMemberMutation) ResetField(name string) error {
	switch name {
	case workspacemember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspacemember.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workspacemember.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workspacemember.FieldEmail:
		m.ResetEmail()
		return nil
	case workspacemember.FieldName:
		m.ResetName()
		return nil
	case workspacemember.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, workspacemember.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspacemember.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, workspacemember.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case workspacemember.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMemberMutation) ClearEdge(name string) error {
	switch name {
	case workspacemember.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMemberMutation) ResetEdge(name string) error {
	switch name {
	case workspacemember.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown WorkspaceMember edge %s", name)
}
