// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/override"
)

// ConfigVariantCreate is the builder for creating a ConfigVariant entity.
type ConfigVariantCreate struct {
	config
	mutation *ConfigVariantMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConfigVariantCreate) SetCreatedAt(v time.Time) *ConfigVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConfigVariantCreate) SetNillableCreatedAt(v *time.Time) *ConfigVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConfigVariantCreate) SetUpdatedAt(v time.Time) *ConfigVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConfigVariantCreate) SetNillableUpdatedAt(v *time.Time) *ConfigVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *ConfigVariantCreate) SetConfigID(v string) *ConfigVariantCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetEnvironmentID sets the "environment_id" field.
func (_c *ConfigVariantCreate) SetEnvironmentID(v string) *ConfigVariantCreate {
	_c.mutation.SetEnvironmentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ConfigVariantCreate) SetVersion(v int) *ConfigVariantCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ConfigVariantCreate) SetNillableVersion(v *int) *ConfigVariantCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *ConfigVariantCreate) SetValue(v json.RawMessage) *ConfigVariantCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSchema sets the "schema" field.
func (_c *ConfigVariantCreate) SetSchema(v json.RawMessage) *ConfigVariantCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (_c *ConfigVariantCreate) SetUseBaseSchema(v bool) *ConfigVariantCreate {
	_c.mutation.SetUseBaseSchema(v)
	return _c
}

// SetNillableUseBaseSchema sets the "use_base_schema" field if the given value is not nil.
func (_c *ConfigVariantCreate) SetNillableUseBaseSchema(v *bool) *ConfigVariantCreate {
	if v != nil {
		_c.SetUseBaseSchema(*v)
	}
	return _c
}

// SetOverrides sets the "overrides" field.
func (_c *ConfigVariantCreate) SetOverrides(v []override.Override) *ConfigVariantCreate {
	_c.mutation.SetOverrides(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ConfigVariantCreate) SetID(v string) *ConfigVariantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_c *ConfigVariantCreate) SetConfig(v *ConfigItem) *ConfigVariantCreate {
	return _c.SetConfigID(v.ID)
}

// SetEnvironment sets the "environment" edge to the Environment entity.
func (_c *ConfigVariantCreate) SetEnvironment(v *Environment) *ConfigVariantCreate {
	return _c.SetEnvironmentID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the ConfigVariantVersion entity by IDs.
func (_c *ConfigVariantCreate) AddVersionIDs(ids ...string) *ConfigVariantCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the ConfigVariantVersion entity.
func (_c *ConfigVariantCreate) AddVersions(v ...*ConfigVariantVersion) *ConfigVariantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the ConfigVariantMutation object of the builder.
func (_c *ConfigVariantCreate) Mutation() *ConfigVariantMutation {
	return _c.mutation
}

// Save creates the ConfigVariant in the database.
func (_c *ConfigVariantCreate) Save(ctx context.Context) (*ConfigVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfigVariantCreate) SaveX(ctx context.Context) *ConfigVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfigVariantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := configvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := configvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := configvariant.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UseBaseSchema(); !ok {
		v := configvariant.DefaultUseBaseSchema
		_c.mutation.SetUseBaseSchema(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfigVariantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConfigVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConfigVariant.updated_at"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "ConfigVariant.config_id"`)}
	}
	if v, ok := _c.mutation.ConfigID(); ok {
		if err := configvariant.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.config_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnvironmentID(); !ok {
		return &ValidationError{Name: "environment_id", err: errors.New(`ent: missing required field "ConfigVariant.environment_id"`)}
	}
	if v, ok := _c.mutation.EnvironmentID(); ok {
		if err := configvariant.EnvironmentIDValidator(v); err != nil {
			return &ValidationError{Name: "environment_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.environment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ConfigVariant.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := configvariant.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ConfigVariant.value"`)}
	}
	if _, ok := _c.mutation.UseBaseSchema(); !ok {
		return &ValidationError{Name: "use_base_schema", err: errors.New(`ent: missing required field "ConfigVariant.use_base_schema"`)}
	}
	if len(_c.mutation.ConfigIDs()) == 0 {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required edge "ConfigVariant.config"`)}
	}
	if len(_c.mutation.EnvironmentIDs()) == 0 {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required edge "ConfigVariant.environment"`)}
	}
	return nil
}

func (_c *ConfigVariantCreate) sqlSave(ctx context.Context) (*ConfigVariant, error) {
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
			return nil, fmt.Errorf("unexpected ConfigVariant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfigVariantCreate) createSpec() (*ConfigVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfigVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(configvariant.Table, sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(configvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(configvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(configvariant.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(configvariant.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(configvariant.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.UseBaseSchema(); ok {
		_spec.SetField(configvariant.FieldUseBaseSchema, field.TypeBool, value)
		_node.UseBaseSchema = value
	}
	if value, ok := _c.mutation.Overrides(); ok {
		_spec.SetField(configvariant.FieldOverrides, field.TypeJSON, value)
		_node.Overrides = value
	}
	if nodes := _c.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.ConfigTable,
			Columns: []string{configvariant.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnvironmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.EnvironmentTable,
			Columns: []string{configvariant.EnvironmentColumn},
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
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConfigVariantCreateBulk is the builder for creating many ConfigVariant entities in bulk.
type ConfigVariantCreateBulk struct {
	config
	err      error
	builders []*ConfigVariantCreate
}

// Save creates the ConfigVariant entities in the database.
func (_c *ConfigVariantCreateBulk) Save(ctx context.Context) ([]*ConfigVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfigVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfigVariantMutation)
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
func (_c *ConfigVariantCreateBulk) SaveX(ctx context.Context) []*ConfigVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
