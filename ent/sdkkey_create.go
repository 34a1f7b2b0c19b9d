// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/sdkkey"
)

// SdkKeyCreate is the builder for creating a SdkKey entity.
type SdkKeyCreate struct {
	config
	mutation *SdkKeyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SdkKeyCreate) SetCreatedAt(v time.Time) *SdkKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SdkKeyCreate) SetNillableCreatedAt(v *time.Time) *SdkKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SdkKeyCreate) SetUpdatedAt(v time.Time) *SdkKeyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SdkKeyCreate) SetNillableUpdatedAt(v *time.Time) *SdkKeyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SdkKeyCreate) SetProjectID(v string) *SdkKeyCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetEnvironmentID sets the "environment_id" field.
func (_c *SdkKeyCreate) SetEnvironmentID(v string) *SdkKeyCreate {
	_c.mutation.SetEnvironmentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SdkKeyCreate) SetName(v string) *SdkKeyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SdkKeyCreate) SetDescription(v string) *SdkKeyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SdkKeyCreate) SetNillableDescription(v *string) *SdkKeyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKeyHash sets the "key_hash" field.
func (_c *SdkKeyCreate) SetKeyHash(v string) *SdkKeyCreate {
	_c.mutation.SetKeyHash(v)
	return _c
}

// SetKeyPrefix sets the "key_prefix" field.
func (_c *SdkKeyCreate) SetKeyPrefix(v string) *SdkKeyCreate {
	_c.mutation.SetKeyPrefix(v)
	return _c
}

// SetKeySuffix sets the "key_suffix" field.
func (_c *SdkKeyCreate) SetKeySuffix(v string) *SdkKeyCreate {
	_c.mutation.SetKeySuffix(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SdkKeyCreate) SetCreatedBy(v string) *SdkKeyCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *SdkKeyCreate) SetLastUsedAt(v time.Time) *SdkKeyCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *SdkKeyCreate) SetNillableLastUsedAt(v *time.Time) *SdkKeyCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SdkKeyCreate) SetID(v string) *SdkKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SdkKeyCreate) SetProject(v *Project) *SdkKeyCreate {
	return _c.SetProjectID(v.ID)
}

// SetEnvironment sets the "environment" edge to the Environment entity.
func (_c *SdkKeyCreate) SetEnvironment(v *Environment) *SdkKeyCreate {
	return _c.SetEnvironmentID(v.ID)
}

// Mutation returns the SdkKeyMutation object of the builder.
func (_c *SdkKeyCreate) Mutation() *SdkKeyMutation {
	return _c.mutation
}

// Save creates the SdkKey in the database.
func (_c *SdkKeyCreate) Save(ctx context.Context) (*SdkKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SdkKeyCreate) SaveX(ctx context.Context) *SdkKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SdkKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SdkKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SdkKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sdkkey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sdkkey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SdkKeyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SdkKey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SdkKey.updated_at"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SdkKey.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := sdkkey.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "SdkKey.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnvironmentID(); !ok {
		return &ValidationError{Name: "environment_id", err: errors.New(`ent: missing required field "SdkKey.environment_id"`)}
	}
	if v, ok := _c.mutation.EnvironmentID(); ok {
		if err := sdkkey.EnvironmentIDValidator(v); err != nil {
			return &ValidationError{Name: "environment_id", err: fmt.Errorf(`ent: validator failed for field "SdkKey.environment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SdkKey.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sdkkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SdkKey.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyHash(); !ok {
		return &ValidationError{Name: "key_hash", err: errors.New(`ent: missing required field "SdkKey.key_hash"`)}
	}
	if v, ok := _c.mutation.KeyHash(); ok {
		if err := sdkkey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "SdkKey.key_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyPrefix(); !ok {
		return &ValidationError{Name: "key_prefix", err: errors.New(`ent: missing required field "SdkKey.key_prefix"`)}
	}
	if v, ok := _c.mutation.KeyPrefix(); ok {
		if err := sdkkey.KeyPrefixValidator(v); err != nil {
			return &ValidationError{Name: "key_prefix", err: fmt.Errorf(`ent: validator failed for field "SdkKey.key_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeySuffix(); !ok {
		return &ValidationError{Name: "key_suffix", err: errors.New(`ent: missing required field "SdkKey.key_suffix"`)}
	}
	if v, ok := _c.mutation.KeySuffix(); ok {
		if err := sdkkey.KeySuffixValidator(v); err != nil {
			return &ValidationError{Name: "key_suffix", err: fmt.Errorf(`ent: validator failed for field "SdkKey.key_suffix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "SdkKey.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := sdkkey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "SdkKey.created_by": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "SdkKey.project"`)}
	}
	if len(_c.mutation.EnvironmentIDs()) == 0 {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required edge "SdkKey.environment"`)}
	}
	return nil
}

func (_c *SdkKeyCreate) sqlSave(ctx context.Context) (*SdkKey, error) {
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
			return nil, fmt.Errorf("unexpected SdkKey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SdkKeyCreate) createSpec() (*SdkKey, *sqlgraph.CreateSpec) {
	var (
		_node = &SdkKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sdkkey.Table, sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sdkkey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sdkkey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sdkkey.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sdkkey.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.KeyHash(); ok {
		_spec.SetField(sdkkey.FieldKeyHash, field.TypeString, value)
		_node.KeyHash = value
	}
	if value, ok := _c.mutation.KeyPrefix(); ok {
		_spec.SetField(sdkkey.FieldKeyPrefix, field.TypeString, value)
		_node.KeyPrefix = value
	}
	if value, ok := _c.mutation.KeySuffix(); ok {
		_spec.SetField(sdkkey.FieldKeySuffix, field.TypeString, value)
		_node.KeySuffix = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(sdkkey.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(sdkkey.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdkkey.ProjectTable,
			Columns: []string{sdkkey.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnvironmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdkkey.EnvironmentTable,
			Columns: []string{sdkkey.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EnvironmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SdkKeyCreateBulk is the builder for creating many SdkKey entities in bulk.
type SdkKeyCreateBulk struct {
	config
	err      error
	builders []*SdkKeyCreate
}

// Save creates the SdkKey entities in the database.
func (_c *SdkKeyCreateBulk) Save(ctx context.Context) ([]*SdkKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SdkKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SdkKeyMutation)
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
func (_c *SdkKeyCreateBulk) SaveX(ctx context.Context) []*SdkKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SdkKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SdkKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
