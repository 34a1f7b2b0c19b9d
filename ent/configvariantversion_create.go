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
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/internal/override"
)

// ConfigVariantVersionCreate is the builder for creating a ConfigVariantVersion entity.
type ConfigVariantVersionCreate struct {
	config
	mutation *ConfigVariantVersionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConfigVariantVersionCreate) SetCreatedAt(v time.Time) *ConfigVariantVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConfigVariantVersionCreate) SetNillableCreatedAt(v *time.Time) *ConfigVariantVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVariantID sets the "variant_id" field.
func (_c *ConfigVariantVersionCreate) SetVariantID(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *ConfigVariantVersionCreate) SetConfigID(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetEnvironmentID sets the "environment_id" field.
func (_c *ConfigVariantVersionCreate) SetEnvironmentID(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetEnvironmentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ConfigVariantVersionCreate) SetVersion(v int) *ConfigVariantVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ConfigVariantVersionCreate) SetValue(v json.RawMessage) *ConfigVariantVersionCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSchema sets the "schema" field.
func (_c *ConfigVariantVersionCreate) SetSchema(v json.RawMessage) *ConfigVariantVersionCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (_c *ConfigVariantVersionCreate) SetUseBaseSchema(v bool) *ConfigVariantVersionCreate {
	_c.mutation.SetUseBaseSchema(v)
	return _c
}

// SetNillableUseBaseSchema sets the "use_base_schema" field if the given value is not nil.
func (_c *ConfigVariantVersionCreate) SetNillableUseBaseSchema(v *bool) *ConfigVariantVersionCreate {
	if v != nil {
		_c.SetUseBaseSchema(*v)
	}
	return _c
}

// SetOverrides sets the "overrides" field.
func (_c *ConfigVariantVersionCreate) SetOverrides(v []override.Override) *ConfigVariantVersionCreate {
	_c.mutation.SetOverrides(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ConfigVariantVersionCreate) SetCreatedBy(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *ConfigVariantVersionCreate) SetProposalID(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_c *ConfigVariantVersionCreate) SetNillableProposalID(v *string) *ConfigVariantVersionCreate {
	if v != nil {
		_c.SetProposalID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConfigVariantVersionCreate) SetID(v string) *ConfigVariantVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetVariant sets the "variant" edge to the ConfigVariant entity.
func (_c *ConfigVariantVersionCreate) SetVariant(v *ConfigVariant) *ConfigVariantVersionCreate {
	return _c.SetVariantID(v.ID)
}

// Mutation returns the ConfigVariantVersionMutation object of the builder.
func (_c *ConfigVariantVersionCreate) Mutation() *ConfigVariantVersionMutation {
	return _c.mutation
}

// Save creates the ConfigVariantVersion in the database.
func (_c *ConfigVariantVersionCreate) Save(ctx context.Context) (*ConfigVariantVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfigVariantVersionCreate) SaveX(ctx context.Context) *ConfigVariantVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVariantVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVariantVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfigVariantVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := configvariantversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UseBaseSchema(); !ok {
		v := configvariantversion.DefaultUseBaseSchema
		_c.mutation.SetUseBaseSchema(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfigVariantVersionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConfigVariantVersion.created_at"`)}
	}
	if _, ok := _c.mutation.VariantID(); !ok {
		return &ValidationError{Name: "variant_id", err: errors.New(`ent: missing required field "ConfigVariantVersion.variant_id"`)}
	}
	if v, ok := _c.mutation.VariantID(); ok {
		if err := configvariantversion.VariantIDValidator(v); err != nil {
			return &ValidationError{Name: "variant_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariantVersion.variant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "ConfigVariantVersion.config_id"`)}
	}
	if v, ok := _c.mutation.ConfigID(); ok {
		if err := configvariantversion.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariantVersion.config_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnvironmentID(); !ok {
		return &ValidationError{Name: "environment_id", err: errors.New(`ent: missing required field "ConfigVariantVersion.environment_id"`)}
	}
	if v, ok := _c.mutation.EnvironmentID(); ok {
		if err := configvariantversion.EnvironmentIDValidator(v); err != nil {
			return &ValidationError{Name: "environment_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariantVersion.environment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ConfigVariantVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := configvariantversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigVariantVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ConfigVariantVersion.value"`)}
	}
	if _, ok := _c.mutation.UseBaseSchema(); !ok {
		return &ValidationError{Name: "use_base_schema", err: errors.New(`ent: missing required field "ConfigVariantVersion.use_base_schema"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ConfigVariantVersion.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := configvariantversion.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ConfigVariantVersion.created_by": %w`, err)}
		}
	}
	if len(_c.mutation.VariantIDs()) == 0 {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required edge "ConfigVariantVersion.variant"`)}
	}
	return nil
}

func (_c *ConfigVariantVersionCreate) sqlSave(ctx context.Context) (*ConfigVariantVersion, error) {
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
			return nil, fmt.Errorf("unexpected ConfigVariantVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfigVariantVersionCreate) createSpec() (*ConfigVariantVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfigVariantVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(configvariantversion.Table, sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(configvariantversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ConfigID(); ok {
		_spec.SetField(configvariantversion.FieldConfigID, field.TypeString, value)
		_node.ConfigID = value
	}
	if value, ok := _c.mutation.EnvironmentID(); ok {
		_spec.SetField(configvariantversion.FieldEnvironmentID, field.TypeString, value)
		_node.EnvironmentID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(configvariantversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(configvariantversion.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(configvariantversion.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.UseBaseSchema(); ok {
		_spec.SetField(configvariantversion.FieldUseBaseSchema, field.TypeBool, value)
		_node.UseBaseSchema = value
	}
	if value, ok := _c.mutation.Overrides(); ok {
		_spec.SetField(configvariantversion.FieldOverrides, field.TypeJSON, value)
		_node.Overrides = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(configvariantversion.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ProposalID(); ok {
		_spec.SetField(configvariantversion.FieldProposalID, field.TypeString, value)
		_node.ProposalID = value
	}
	if nodes := _c.mutation.VariantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariantversion.VariantTable,
			Columns: []string{configvariantversion.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VariantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConfigVariantVersionCreateBulk is the builder for creating many ConfigVariantVersion entities in bulk.
type ConfigVariantVersionCreateBulk struct {
	config
	err      error
	builders []*ConfigVariantVersionCreate
}

// Save creates the ConfigVariantVersion entities in the database.
func (_c *ConfigVariantVersionCreateBulk) Save(ctx context.Context) ([]*ConfigVariantVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfigVariantVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfigVariantVersionMutation)
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
func (_c *ConfigVariantVersionCreateBulk) SaveX(ctx context.Context) []*ConfigVariantVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVariantVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVariantVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
