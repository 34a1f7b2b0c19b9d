// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/workspace"
)

// AdminApiKeyCreate is the builder for creating a AdminApiKey entity.
type AdminApiKeyCreate struct {
	config
	mutation *AdminApiKeyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminApiKeyCreate) SetCreatedAt(v time.Time) *AdminApiKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableCreatedAt(v *time.Time) *AdminApiKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdminApiKeyCreate) SetUpdatedAt(v time.Time) *AdminApiKeyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableUpdatedAt(v *time.Time) *AdminApiKeyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AdminApiKeyCreate) SetWorkspaceID(v string) *AdminApiKeyCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AdminApiKeyCreate) SetName(v string) *AdminApiKeyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AdminApiKeyCreate) SetDescription(v string) *AdminApiKeyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableDescription(v *string) *AdminApiKeyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKeyHash sets the "key_hash" field.
func (_c *AdminApiKeyCreate) SetKeyHash(v string) *AdminApiKeyCreate {
	_c.mutation.SetKeyHash(v)
	return _c
}

// SetKeyPrefix sets the "key_prefix" field.
func (_c *AdminApiKeyCreate) SetKeyPrefix(v string) *AdminApiKeyCreate {
	_c.mutation.SetKeyPrefix(v)
	return _c
}

// SetKeySuffix sets the "key_suffix" field.
func (_c *AdminApiKeyCreate) SetKeySuffix(v string) *AdminApiKeyCreate {
	_c.mutation.SetKeySuffix(v)
	return _c
}

// SetAllProjects sets the "all_projects" field.
func (_c *AdminApiKeyCreate) SetAllProjects(v bool) *AdminApiKeyCreate {
	_c.mutation.SetAllProjects(v)
	return _c
}

// SetNillableAllProjects sets the "all_projects" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableAllProjects(v *bool) *AdminApiKeyCreate {
	if v != nil {
		_c.SetAllProjects(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AdminApiKeyCreate) SetCreatedBy(v string) *AdminApiKeyCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AdminApiKeyCreate) SetExpiresAt(v time.Time) *AdminApiKeyCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableExpiresAt(v *time.Time) *AdminApiKeyCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *AdminApiKeyCreate) SetLastUsedAt(v time.Time) *AdminApiKeyCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *AdminApiKeyCreate) SetNillableLastUsedAt(v *time.Time) *AdminApiKeyCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdminApiKeyCreate) SetID(v string) *AdminApiKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AdminApiKeyCreate) SetWorkspace(v *Workspace) *AdminApiKeyCreate {
	return _c.SetWorkspaceID(v.ID)
}

// AddScopeIDs adds the "scopes" edge to the AdminApiKeyScope entity by IDs.
func (_c *AdminApiKeyCreate) AddScopeIDs(ids ...string) *AdminApiKeyCreate {
	_c.mutation.AddScopeIDs(ids...)
	return _c
}

// AddScopes adds the "scopes" edges to the AdminApiKeyScope entity.
func (_c *AdminApiKeyCreate) AddScopes(v ...*AdminApiKeyScope) *AdminApiKeyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScopeIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *AdminApiKeyCreate) AddProjectIDs(ids ...string) *AdminApiKeyCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *AdminApiKeyCreate) AddProjects(v ...*Project) *AdminApiKeyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// Mutation returns the AdminApiKeyMutation object of the builder.
func (_c *AdminApiKeyCreate) Mutation() *AdminApiKeyMutation {
	return _c.mutation
}

// Save creates the AdminApiKey in the database.
func (_c *AdminApiKeyCreate) Save(ctx context.Context) (*AdminApiKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminApiKeyCreate) SaveX(ctx context.Context) *AdminApiKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminApiKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminApiKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminApiKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminapikey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adminapikey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AllProjects(); !ok {
		v := adminapikey.DefaultAllProjects
		_c.mutation.SetAllProjects(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminApiKeyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminApiKey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdminApiKey.updated_at"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AdminApiKey.workspace_id"`)}
	}
	if v, ok := _c.mutation.WorkspaceID(); ok {
		if err := adminapikey.WorkspaceIDValidator(v); err != nil {
			return &ValidationError{Name: "workspace_id", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.workspace_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AdminApiKey.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := adminapikey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyHash(); !ok {
		return &ValidationError{Name: "key_hash", err: errors.New(`ent: missing required field "AdminApiKey.key_hash"`)}
	}
	if v, ok := _c.mutation.KeyHash(); ok {
		if err := adminapikey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.key_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyPrefix(); !ok {
		return &ValidationError{Name: "key_prefix", err: errors.New(`ent: missing required field "AdminApiKey.key_prefix"`)}
	}
	if v, ok := _c.mutation.KeyPrefix(); ok {
		if err := adminapikey.KeyPrefixValidator(v); err != nil {
			return &ValidationError{Name: "key_prefix", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.key_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeySuffix(); !ok {
		return &ValidationError{Name: "key_suffix", err: errors.New(`ent: missing required field "AdminApiKey.key_suffix"`)}
	}
	if v, ok := _c.mutation.KeySuffix(); ok {
		if err := adminapikey.KeySuffixValidator(v); err != nil {
			return &ValidationError{Name: "key_suffix", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.key_suffix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllProjects(); !ok {
		return &ValidationError{Name: "all_projects", err: errors.New(`ent: missing required field "AdminApiKey.all_projects"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "AdminApiKey.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := adminapikey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.created_by": %w`, err)}
		}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AdminApiKey.workspace"`)}
	}
	return nil
}

func (_c *AdminApiKeyCreate) sqlSave(ctx context.Context) (*AdminApiKey, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AdminApiKey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminApiKeyCreate) createSpec() (*AdminApiKey, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminApiKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminapikey.Table, sqlgraph.NewFieldSpec(adminapikey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminapikey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adminapikey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(adminapikey.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(adminapikey.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.KeyHash(); ok {
		_spec.SetField(adminapikey.FieldKeyHash, field.TypeString, value)
		_node.KeyHash = value
	}
	if value, ok := _c.mutation.KeyPrefix(); ok {
		_spec.SetField(adminapikey.FieldKeyPrefix, field.TypeString, value)
		_node.KeyPrefix = value
	}
	if value, ok := _c.mutation.KeySuffix(); ok {
		_spec.SetField(adminapikey.FieldKeySuffix, field.TypeString, value)
		_node.KeySuffix = value
	}
	if value, ok := _c.mutation.AllProjects(); ok {
		_spec.SetField(adminapikey.FieldAllProjects, field.TypeBool, value)
		_node.AllProjects = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(adminapikey.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(adminapikey.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(adminapikey.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adminapikey.WorkspaceTable,
			Columns: []string{adminapikey.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScopesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   adminapikey.ScopesTable,
			Columns: []string{adminapikey.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adminapikeyscope.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   adminapikey.ProjectsTable,
			Columns: adminapikey.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdminApiKeyCreateBulk is the builder for creating many AdminApiKey entities in bulk.
type AdminApiKeyCreateBulk struct {
	config
	err      error
	builders []*AdminApiKeyCreate
}

// Save creates the AdminApiKey entities in the database.
func (_c *AdminApiKeyCreateBulk) Save(ctx context.Context) ([]*AdminApiKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminApiKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminApiKeyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdminApiKeyCreateBulk) SaveX(ctx context.Context) []*AdminApiKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminApiKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminApiKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
