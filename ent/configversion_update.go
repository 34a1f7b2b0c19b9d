// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/predicate"
)

// ConfigVersionUpdate is the builder for updating ConfigVersion entities.
type ConfigVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigVersionMutation
}

// Where appends a list predicates to the ConfigVersionUpdate builder.
func (_u *ConfigVersionUpdate) Where(ps ...predicate.ConfigVersion) *ConfigVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ConfigVersionMutation object of the builder.
func (_u *ConfigVersionUpdate) Mutation() *ConfigVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVersionUpdate) check() error {
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVersion.config"`)
	}
	return nil
}

func (_u *ConfigVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configversion.Table, configversion.Columns, sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(configversion.FieldDescription, field.TypeString)
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configversion.FieldSchema, field.TypeJSON)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configversion.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.MembersCleared() {
		_spec.ClearField(configversion.FieldMembers, field.TypeJSON)
	}
	if _u.mutation.ProposalIDCleared() {
		_spec.ClearField(configversion.FieldProposalID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigVersionUpdateOne is the builder for updating a single ConfigVersion entity.
type ConfigVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigVersionMutation
}

// Mutation returns the ConfigVersionMutation object of the builder.
func (_u *ConfigVersionUpdateOne) Mutation() *ConfigVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfigVersionUpdate builder.
func (_u *ConfigVersionUpdateOne) Where(ps ...predicate.ConfigVersion) *ConfigVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigVersionUpdateOne) Select(field string, fields ...string) *ConfigVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigVersion entity.
func (_u *ConfigVersionUpdateOne) Save(ctx context.Context) (*ConfigVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVersionUpdateOne) SaveX(ctx context.Context) *ConfigVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVersionUpdateOne) check() error {
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVersion.config"`)
	}
	return nil
}

func (_u *ConfigVersionUpdateOne) sqlSave(ctx context.Context) (_node *ConfigVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configversion.Table, configversion.Columns, sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configversion.FieldID)
		for _, f := range fields {
			if !configversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configversion.FieldID {
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
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(configversion.FieldDescription, field.TypeString)
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configversion.FieldSchema, field.TypeJSON)
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configversion.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.MembersCleared() {
		_spec.ClearField(configversion.FieldMembers, field.TypeJSON)
	}
	if _u.mutation.ProposalIDCleared() {
		_spec.ClearField(configversion.FieldProposalID, field.TypeString)
	}
	_node = &ConfigVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
