// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/predicate"
)

// ConfigVariantVersionUpdate is the builder for updating ConfigVariantVersion entities.
type ConfigVariantVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigVariantVersionMutation
}

// Where appends a list predicates to the ConfigVariantVersionUpdate builder.
func (_u *ConfigVariantVersionUpdate) Where(ps ...predicate.ConfigVariantVersion) *ConfigVariantVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ConfigVariantVersionMutation object of the builder.
func (_u *ConfigVariantVersionUpdate) Mutation() *ConfigVariantVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigVariantVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVariantVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigVariantVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVariantVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVariantVersionUpdate) check() error {
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariantVersion.variant"`)
	}
	return nil
}

func (_u *ConfigVariantVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configvariantversion.Table, configvariantversion.Columns, sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configvariantversion.FieldSchema, field.TypeJSON)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configvariantversion.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.ProposalIDCleared() {
		_spec.ClearField(configvariantversion.FieldProposalID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configvariantversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigVariantVersionUpdateOne is the builder for updating a single ConfigVariantVersion entity.
type ConfigVariantVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigVariantVersionMutation
}

// Mutation returns the ConfigVariantVersionMutation object of the builder.
func (_u *ConfigVariantVersionUpdateOne) Mutation() *ConfigVariantVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfigVariantVersionUpdate builder.
func (_u *ConfigVariantVersionUpdateOne) Where(ps ...predicate.ConfigVariantVersion) *ConfigVariantVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigVariantVersionUpdateOne) Select(field string, fields ...string) *ConfigVariantVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigVariantVersion entity.
func (_u *ConfigVariantVersionUpdateOne) Save(ctx context.Context) (*ConfigVariantVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVariantVersionUpdateOne) SaveX(ctx context.Context) *ConfigVariantVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigVariantVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVariantVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVariantVersionUpdateOne) check() error {
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariantVersion.variant"`)
	}
	return nil
}

func (_u *ConfigVariantVersionUpdateOne) sqlSave(ctx context.Context) (_node *ConfigVariantVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configvariantversion.Table, configvariantversion.Columns, sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigVariantVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configvariantversion.FieldID)
		for _, f := range fields {
			if !configvariantversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configvariantversion.FieldID {
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
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configvariantversion.FieldSchema, field.TypeJSON)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configvariantversion.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.ProposalIDCleared() {
		_spec.ClearField(configvariantversion.FieldProposalID, field.TypeString)
	}
	_node = &ConfigVariantVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configvariantversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
