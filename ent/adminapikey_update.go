// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/ent/project"
)

// AdminApiKeyUpdate is the builder for updating AdminApiKey entities.
type AdminApiKeyUpdate struct {
	config
	hooks    []Hook
	mutation *AdminApiKeyMutation
}

// Where appends a list predicates to the AdminApiKeyUpdate builder.
func (_u *AdminApiKeyUpdate) Where(ps ...predicate.AdminApiKey) *AdminApiKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdminApiKeyUpdate) SetUpdatedAt(v time.Time) *AdminApiKeyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AdminApiKeyUpdate) SetName(v string) *AdminApiKeyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableName(v *string) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AdminApiKeyUpdate) SetDescription(v string) *AdminApiKeyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableDescription(v *string) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AdminApiKeyUpdate) ClearDescription() *AdminApiKeyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *AdminApiKeyUpdate) SetKeyHash(v string) *AdminApiKeyUpdate {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableKeyHash(v *string) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetAllProjects sets the "all_projects" field.
func (_u *AdminApiKeyUpdate) SetAllProjects(v bool) *AdminApiKeyUpdate {
	_u.mutation.SetAllProjects(v)
	return _u
}

// SetNillableAllProjects sets the "all_projects" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableAllProjects(v *bool) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetAllProjects(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AdminApiKeyUpdate) SetCreatedBy(v string) *AdminApiKeyUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableCreatedBy(v *string) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AdminApiKeyUpdate) SetExpiresAt(v time.Time) *AdminApiKeyUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableExpiresAt(v *time.Time) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AdminApiKeyUpdate) ClearExpiresAt() *AdminApiKeyUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AdminApiKeyUpdate) SetLastUsedAt(v time.Time) *AdminApiKeyUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *AdminApiKeyUpdate) SetNillableLastUsedAt(v *time.Time) *AdminApiKeyUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *AdminApiKeyUpdate) ClearLastUsedAt() *AdminApiKeyUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddScopeIDs adds the "scopes" edge to the AdminApiKeyScope entity by IDs.
func (_u *AdminApiKeyUpdate) AddScopeIDs(ids ...string) *AdminApiKeyUpdate {
	_u.mutation.AddScopeIDs(ids...)
	return _u
}

// AddScopes adds the "scopes" edges to the AdminApiKeyScope entity.
func (_u *AdminApiKeyUpdate) AddScopes(v ...*AdminApiKeyScope) *AdminApiKeyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScopeIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *AdminApiKeyUpdate) AddProjectIDs(ids ...string) *AdminApiKeyUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *AdminApiKeyUpdate) AddProjects(v ...*Project) *AdminApiKeyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// Mutation returns the AdminApiKeyMutation object of the builder.
func (_u *AdminApiKeyUpdate) Mutation() *AdminApiKeyMutation {
	return _u.mutation
}

// ClearScopes clears all "scopes" edges to the AdminApiKeyScope entity.
func (_u *AdminApiKeyUpdate) ClearScopes() *AdminApiKeyUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// RemoveScopeIDs removes the "scopes" edge to AdminApiKeyScope entities by IDs.
func (_u *AdminApiKeyUpdate) RemoveScopeIDs(ids ...string) *AdminApiKeyUpdate {
	_u.mutation.RemoveScopeIDs(ids...)
	return _u
}

// RemoveScopes removes "scopes" edges to AdminApiKeyScope entities.
func (_u *AdminApiKeyUpdate) RemoveScopes(v ...*AdminApiKeyScope) *AdminApiKeyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScopeIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *AdminApiKeyUpdate) ClearProjects() *AdminApiKeyUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *AdminApiKeyUpdate) RemoveProjectIDs(ids ...string) *AdminApiKeyUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *AdminApiKeyUpdate) RemoveProjects(v ...*Project) *AdminApiKeyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminApiKeyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminApiKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminApiKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminApiKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdminApiKeyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adminapikey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminApiKeyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := adminapikey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHash(); ok {
		if err := adminapikey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.key_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := adminapikey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.created_by": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminApiKey.workspace"`)
	}
	return nil
}

func (_u *AdminApiKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminapikey.Table, adminapikey.Columns, sqlgraph.NewFieldSpec(adminapikey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adminapikey.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(adminapikey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(adminapikey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(adminapikey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(adminapikey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllProjects(); ok {
		_spec.SetField(adminapikey.FieldAllProjects, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(adminapikey.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(adminapikey.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(adminapikey.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(adminapikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(adminapikey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.ScopesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScopesIDs(); len(nodes) > 0 && !_u.mutation.ScopesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScopesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminapikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminApiKeyUpdateOne is the builder for updating a single AdminApiKey entity.
type AdminApiKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminApiKeyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdminApiKeyUpdateOne) SetUpdatedAt(v time.Time) *AdminApiKeyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AdminApiKeyUpdateOne) SetName(v string) *AdminApiKeyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableName(v *string) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AdminApiKeyUpdateOne) SetDescription(v string) *AdminApiKeyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableDescription(v *string) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AdminApiKeyUpdateOne) ClearDescription() *AdminApiKeyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *AdminApiKeyUpdateOne) SetKeyHash(v string) *AdminApiKeyUpdateOne {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableKeyHash(v *string) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetAllProjects sets the "all_projects" field.
func (_u *AdminApiKeyUpdateOne) SetAllProjects(v bool) *AdminApiKeyUpdateOne {
	_u.mutation.SetAllProjects(v)
	return _u
}

// SetNillableAllProjects sets the "all_projects" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableAllProjects(v *bool) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetAllProjects(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AdminApiKeyUpdateOne) SetCreatedBy(v string) *AdminApiKeyUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableCreatedBy(v *string) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AdminApiKeyUpdateOne) SetExpiresAt(v time.Time) *AdminApiKeyUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableExpiresAt(v *time.Time) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AdminApiKeyUpdateOne) ClearExpiresAt() *AdminApiKeyUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *AdminApiKeyUpdateOne) SetLastUsedAt(v time.Time) *AdminApiKeyUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *AdminApiKeyUpdateOne) SetNillableLastUsedAt(v *time.Time) *AdminApiKeyUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *AdminApiKeyUpdateOne) ClearLastUsedAt() *AdminApiKeyUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddScopeIDs adds the "scopes" edge to the AdminApiKeyScope entity by IDs.
func (_u *AdminApiKeyUpdateOne) AddScopeIDs(ids ...string) *AdminApiKeyUpdateOne {
	_u.mutation.AddScopeIDs(ids...)
	return _u
}

// AddScopes adds the "scopes" edges to the AdminApiKeyScope entity.
func (_u *AdminApiKeyUpdateOne) AddScopes(v ...*AdminApiKeyScope) *AdminApiKeyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScopeIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *AdminApiKeyUpdateOne) AddProjectIDs(ids ...string) *AdminApiKeyUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *AdminApiKeyUpdateOne) AddProjects(v ...*Project) *AdminApiKeyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// Mutation returns the AdminApiKeyMutation object of the builder.
func (_u *AdminApiKeyUpdateOne) Mutation() *AdminApiKeyMutation {
	return _u.mutation
}

// ClearScopes clears all "scopes" edges to the AdminApiKeyScope entity.
func (_u *AdminApiKeyUpdateOne) ClearScopes() *AdminApiKeyUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// RemoveScopeIDs removes the "scopes" edge to AdminApiKeyScope entities by IDs.
func (_u *AdminApiKeyUpdateOne) RemoveScopeIDs(ids ...string) *AdminApiKeyUpdateOne {
	_u.mutation.RemoveScopeIDs(ids...)
	return _u
}

// RemoveScopes removes "scopes" edges to AdminApiKeyScope entities.
func (_u *AdminApiKeyUpdateOne) RemoveScopes(v ...*AdminApiKeyScope) *AdminApiKeyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScopeIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *AdminApiKeyUpdateOne) ClearProjects() *AdminApiKeyUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *AdminApiKeyUpdateOne) RemoveProjectIDs(ids ...string) *AdminApiKeyUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *AdminApiKeyUpdateOne) RemoveProjects(v ...*Project) *AdminApiKeyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// Where appends a list predicates to the AdminApiKeyUpdate builder.
func (_u *AdminApiKeyUpdateOne) Where(ps ...predicate.AdminApiKey) *AdminApiKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminApiKeyUpdateOne) Select(field string, fields ...string) *AdminApiKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminApiKey entity.
func (_u *AdminApiKeyUpdateOne) Save(ctx context.Context) (*AdminApiKey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminApiKeyUpdateOne) SaveX(ctx context.Context) *AdminApiKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminApiKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminApiKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdminApiKeyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adminapikey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminApiKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := adminapikey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHash(); ok {
		if err := adminapikey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.key_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := adminapikey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "AdminApiKey.created_by": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminApiKey.workspace"`)
	}
	return nil
}

func (_u *AdminApiKeyUpdateOne) sqlSave(ctx context.Context) (_node *AdminApiKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminapikey.Table, adminapikey.Columns, sqlgraph.NewFieldSpec(adminapikey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminApiKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adminapikey.FieldID)
		for _, f := range fields {
			if !adminapikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adminapikey.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adminapikey.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(adminapikey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(adminapikey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(adminapikey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(adminapikey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllProjects(); ok {
		_spec.SetField(adminapikey.FieldAllProjects, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(adminapikey.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(adminapikey.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(adminapikey.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(adminapikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(adminapikey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.ScopesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScopesIDs(); len(nodes) > 0 && !_u.mutation.ScopesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScopesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AdminApiKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminapikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
