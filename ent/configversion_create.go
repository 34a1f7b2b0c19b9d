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
	"replane.io/replane/ent/configversion"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
)

// ConfigVersionCreate is the builder for creating a ConfigVersion entity.
type ConfigVersionCreate struct {
	config
	mutation *ConfigVersionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConfigVersionCreate) SetCreatedAt(v time.Time) *ConfigVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConfigVersionCreate) SetNillableCreatedAt(v *time.Time) *ConfigVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *ConfigVersionCreate) SetConfigID(v string) *ConfigVersionCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ConfigVersionCreate) SetVersion(v int) *ConfigVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ConfigVersionCreate) SetDescription(v string) *ConfigVersionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ConfigVersionCreate) SetNillableDescription(v *string) *ConfigVersionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *ConfigVersionCreate) SetValue(v json.RawMessage) *ConfigVersionCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSchema sets the "schema" field.
func (_c *ConfigVersionCreate) SetSchema(v json.RawMessage) *ConfigVersionCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetOverrides sets the "overrides" field.
func (_c *ConfigVersionCreate) SetOverrides(v []override.Override) *ConfigVersionCreate {
	_c.mutation.SetOverrides(v)
	return _c
}

// SetMembers sets the "members" field.
func (_c *ConfigVersionCreate) SetMembers(v []domain.ConfigMember) *ConfigVersionCreate {
	_c.mutation.SetMembers(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ConfigVersionCreate) SetCreatedBy(v string) *ConfigVersionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *ConfigVersionCreate) SetProposalID(v string) *ConfigVersionCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_c *ConfigVersionCreate) SetNillableProposalID(v *string) *ConfigVersionCreate {
	if v != nil {
		_c.SetProposalID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConfigVersionCreate) SetID(v string) *ConfigVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_c *ConfigVersionCreate) SetConfig(v *ConfigItem) *ConfigVersionCreate {
	return _c.SetConfigID(v.ID)
}

// Mutation returns the ConfigVersionMutation object of the builder.
func (_c *ConfigVersionCreate) Mutation() *ConfigVersionMutation {
	return _c.mutation
}

// Save creates the ConfigVersion in the database.
func (_c *ConfigVersionCreate) Save(ctx context.Context) (*ConfigVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfigVersionCreate) SaveX(ctx context.Context) *ConfigVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfigVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := configversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfigVersionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConfigVersion.created_at"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "ConfigVersion.config_id"`)}
	}
	if v, ok := _c.mutation.ConfigID(); ok {
		if err := configversion.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVersion.config_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ConfigVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := configversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ConfigVersion.value"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ConfigVersion.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := configversion.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ConfigVersion.created_by": %w`, err)}
		}
	}
	if len(_c.mutation.ConfigIDs()) == 0 {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required edge "ConfigVersion.config"`)}
	}
	return nil
}

func (_c *ConfigVersionCreate) sqlSave(ctx context.Context) (*ConfigVersion, error) {
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
			return nil, fmt.Errorf("unexpected ConfigVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfigVersionCreate) createSpec() (*ConfigVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfigVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(configversion.Table, sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(configversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(configversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(configversion.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(configversion.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(configversion.FieldSchema, field.TypeJSON, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.Overrides(); ok {
		_spec.SetField(configversion.FieldOverrides, field.TypeJSON, value)
		_node.Overrides = value
	}
	if value, ok := _c.mutation.Members(); ok {
		_spec.SetField(configversion.FieldMembers, field.TypeJSON, value)
		_node.Members = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(configversion.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ProposalID(); ok {
		_spec.SetField(configversion.FieldProposalID, field.TypeString, value)
		_node.ProposalID = value
	}
	if nodes := _c.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configversion.ConfigTable,
			Columns: []string{configversion.ConfigColumn},
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
	return _node, _spec
}

// ConfigVersionCreateBulk is the builder for creating many ConfigVersion entities in bulk.
type ConfigVersionCreateBulk struct {
	config
	err      error
	builders []*ConfigVersionCreate
}

// Save creates the ConfigVersion entities in the database.
func (_c *ConfigVersionCreateBulk) Save(ctx context.Context) ([]*ConfigVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfigVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfigVersionMutation)
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
func (_c *ConfigVersionCreateBulk) SaveX(ctx context.Context) []*ConfigVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
