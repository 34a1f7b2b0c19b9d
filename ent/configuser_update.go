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
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/predicate"
)

// ConfigUserUpdate is the builder for updating ConfigUser entities.
type ConfigUserUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigUserMutation
}

// Where appends a list predicates to the ConfigUserUpdate builder.
func (_u *ConfigUserUpdate) Where(ps ...predicate.ConfigUser) *ConfigUserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigUserUpdate) SetUpdatedAt(v time.Time) *ConfigUserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *ConfigUserUpdate) SetConfigID(v string) *ConfigUserUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *ConfigUserUpdate) SetNillableConfigID(v *string) *ConfigUserUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ConfigUserUpdate) SetEmail(v string) *ConfigUserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ConfigUserUpdate) SetNillableEmail(v *string) *ConfigUserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ConfigUserUpdate) SetRole(v configuser.Role) *ConfigUserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConfigUserUpdate) SetNillableRole(v *configuser.Role) *ConfigUserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_u *ConfigUserUpdate) SetConfig(v *ConfigItem) *ConfigUserUpdate {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the ConfigUserMutation object of the builder.
func (_u *ConfigUserUpdate) Mutation() *ConfigUserMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (_u *ConfigUserUpdate) ClearConfig() *ConfigUserUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigUserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigUserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigUserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigUserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigUserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configuser.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigUserUpdate) check() error {
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := configuser.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.config_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := configuser.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := configuser.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.role": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigUser.config"`)
	}
	return nil
}

func (_u *ConfigUserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configuser.Table, configuser.Columns, sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configuser.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(configuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(configuser.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.ConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configuser.ConfigTable,
			Columns: []string{configuser.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configuser.ConfigTable,
			Columns: []string{configuser.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigUserUpdateOne is the builder for updating a single ConfigUser entity.
type ConfigUserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigUserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigUserUpdateOne) SetUpdatedAt(v time.Time) *ConfigUserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *ConfigUserUpdateOne) SetConfigID(v string) *ConfigUserUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *ConfigUserUpdateOne) SetNillableConfigID(v *string) *ConfigUserUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ConfigUserUpdateOne) SetEmail(v string) *ConfigUserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ConfigUserUpdateOne) SetNillableEmail(v *string) *ConfigUserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ConfigUserUpdateOne) SetRole(v configuser.Role) *ConfigUserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConfigUserUpdateOne) SetNillableRole(v *configuser.Role) *ConfigUserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_u *ConfigUserUpdateOne) SetConfig(v *ConfigItem) *ConfigUserUpdateOne {
	return _u.SetConfigID(v.ID)
}

// Mutation returns the ConfigUserMutation object of the builder.
func (_u *ConfigUserUpdateOne) Mutation() *ConfigUserMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (_u *ConfigUserUpdateOne) ClearConfig() *ConfigUserUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// Where appends a list predicates to the ConfigUserUpdate builder.
func (_u *ConfigUserUpdateOne) Where(ps ...predicate.ConfigUser) *ConfigUserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigUserUpdateOne) Select(field string, fields ...string) *ConfigUserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigUser entity.
func (_u *ConfigUserUpdateOne) Save(ctx context.Context) (*ConfigUser, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigUserUpdateOne) SaveX(ctx context.Context) *ConfigUser {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigUserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigUserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigUserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configuser.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigUserUpdateOne) check() error {
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := configuser.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.config_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := configuser.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := configuser.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConfigUser.role": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigUser.config"`)
	}
	return nil
}

func (_u *ConfigUserUpdateOne) sqlSave(ctx context.Context) (_node *ConfigUser, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configuser.Table, configuser.Columns, sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigUser.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configuser.FieldID)
		for _, f := range fields {
			if !configuser.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configuser.FieldID {
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
		_spec.SetField(configuser.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(configuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(configuser.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.ConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configuser.ConfigTable,
			Columns: []string{configuser.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configuser.ConfigTable,
			Columns: []string{configuser.ConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConfigUser{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
