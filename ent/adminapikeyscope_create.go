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
)

// AdminApiKeyScopeCreate is the builder for creating a AdminApiKeyScope entity.
type AdminApiKeyScopeCreate struct {
	config
	mutation *AdminApiKeyScopeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminApiKeyScopeCreate) SetCreatedAt(v time.Time) *AdminApiKeyScopeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminApiKeyScopeCreate) SetNillableCreatedAt(v *time.Time) *AdminApiKeyScopeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetKeyID sets the "key_id" field.
func (_c *AdminApiKeyScopeCreate) SetKeyID(v string) *AdminApiKeyScopeCreate {
	_c.mutation.SetKeyID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *AdminApiKeyScopeCreate) SetScope(v string) *AdminApiKeyScopeCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AdminApiKeyScopeCreate) SetID(v string) *AdminApiKeyScopeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetKey sets the "key" edge to the AdminApiKey entity.
func (_c *AdminApiKeyScopeCreate) SetKey(v *AdminApiKey) *AdminApiKeyScopeCreate {
	return _c.SetKeyID(v.ID)
}

// Mutation returns the AdminApiKeyScopeMutation object of the builder.
func (_c *AdminApiKeyScopeCreate) Mutation() *AdminApiKeyScopeMutation {
	return _c.mutation
}

// Save creates the AdminApiKeyScope in the database.
func (_c *AdminApiKeyScopeCreate) Save(ctx context.Context) (*AdminApiKeyScope, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminApiKeyScopeCreate) SaveX(ctx context.Context) *AdminApiKeyScope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminApiKeyScopeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminApiKeyScopeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminApiKeyScopeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminapikeyscope.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminApiKeyScopeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminApiKeyScope.created_at"`)}
	}
	if _, ok := _c.mutation.KeyID(); !ok {
		return &ValidationError{Name: "key_id", err: errors.New(`ent: missing required field "AdminApiKeyScope.key_id"`)}
	}
	if v, ok := _c.mutation.KeyID(); ok {
		if err := adminapikeyscope.KeyIDValidator(v); err != nil {
			return &ValidationError{Name: "key_id", err: fmt.Errorf(`ent: validator failed for field "AdminApiKeyScope.key_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "AdminApiKeyScope.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := adminapikeyscope.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "AdminApiKeyScope.scope": %w`, err)}
		}
	}
	if len(_c.mutation.KeyIDs()) == 0 {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required edge "AdminApiKeyScope.key"`)}
	}
	return nil
}

func (_c *AdminApiKeyScopeCreate) sqlSave(ctx context.Context) (*AdminApiKeyScope, error) {
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
			return nil, fmt.Errorf("unexpected AdminApiKeyScope.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminApiKeyScopeCreate) createSpec() (*AdminApiKeyScope, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminApiKeyScope{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminapikeyscope.Table, sqlgraph.NewFieldSpec(adminapikeyscope.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminapikeyscope.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(adminapikeyscope.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if nodes := _c.mutation.KeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adminapikeyscope.KeyTable,
			Columns: []string{adminapikeyscope.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(adminapikey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KeyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AdminApiKeyScopeCreateBulk is the builder for creating many AdminApiKeyScope entities in bulk.
type AdminApiKeyScopeCreateBulk struct {
	config
	err      error
	builders []*AdminApiKeyScopeCreate
}

// Save creates the AdminApiKeyScope entities in the database.
func (_c *AdminApiKeyScopeCreateBulk) Save(ctx context.Context) ([]*AdminApiKeyScope, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminApiKeyScope, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminApiKeyScopeMutation)
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
func (_c *AdminApiKeyScopeCreateBulk) SaveX(ctx context.Context) []*AdminApiKeyScope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminApiKeyScopeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminApiKeyScopeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
