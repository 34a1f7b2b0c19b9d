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
	"replane.io/replane/ent/predicate"
	"replane.io/replane/ent/sdkkey"
)

// SdkKeyUpdate is the builder for updating SdkKey entities.
type SdkKeyUpdate struct {
	config
	hooks    []Hook
	mutation *SdkKeyMutation
}

// Where appends a list predicates to the SdkKeyUpdate builder.
func (_u *SdkKeyUpdate) Where(ps ...predicate.SdkKey) *SdkKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SdkKeyUpdate) SetUpdatedAt(v time.Time) *SdkKeyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SdkKeyUpdate) SetName(v string) *SdkKeyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SdkKeyUpdate) SetNillableName(v *string) *SdkKeyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SdkKeyUpdate) SetDescription(v string) *SdkKeyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SdkKeyUpdate) SetNillableDescription(v *string) *SdkKeyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SdkKeyUpdate) ClearDescription() *SdkKeyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *SdkKeyUpdate) SetKeyHash(v string) *SdkKeyUpdate {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *SdkKeyUpdate) SetNillableKeyHash(v *string) *SdkKeyUpdate {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SdkKeyUpdate) SetCreatedBy(v string) *SdkKeyUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SdkKeyUpdate) SetNillableCreatedBy(v *string) *SdkKeyUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *SdkKeyUpdate) SetLastUsedAt(v time.Time) *SdkKeyUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *SdkKeyUpdate) SetNillableLastUsedAt(v *time.Time) *SdkKeyUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *SdkKeyUpdate) ClearLastUsedAt() *SdkKeyUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the SdkKeyMutation object of the builder.
func (_u *SdkKeyUpdate) Mutation() *SdkKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SdkKeyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SdkKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SdkKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SdkKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SdkKeyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sdkkey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SdkKeyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sdkkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SdkKey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHash(); ok {
		if err := sdkkey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "SdkKey.key_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := sdkkey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "SdkKey.created_by": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SdkKey.project"`)
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SdkKey.environment"`)
	}
	return nil
}

func (_u *SdkKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sdkkey.Table, sdkkey.Columns, sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sdkkey.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sdkkey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sdkkey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sdkkey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(sdkkey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(sdkkey.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(sdkkey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(sdkkey.FieldLastUsedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sdkkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SdkKeyUpdateOne is the builder for updating a single SdkKey entity.
type SdkKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SdkKeyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SdkKeyUpdateOne) SetUpdatedAt(v time.Time) *SdkKeyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SdkKeyUpdateOne) SetName(v string) *SdkKeyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SdkKeyUpdateOne) SetNillableName(v *string) *SdkKeyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SdkKeyUpdateOne) SetDescription(v string) *SdkKeyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SdkKeyUpdateOne) SetNillableDescription(v *string) *SdkKeyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SdkKeyUpdateOne) ClearDescription() *SdkKeyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetKeyHash sets the "key_hash" field.
func (_u *SdkKeyUpdateOne) SetKeyHash(v string) *SdkKeyUpdateOne {
	_u.mutation.SetKeyHash(v)
	return _u
}

// SetNillableKeyHash sets the "key_hash" field if the given value is not nil.
func (_u *SdkKeyUpdateOne) SetNillableKeyHash(v *string) *SdkKeyUpdateOne {
	if v != nil {
		_u.SetKeyHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SdkKeyUpdateOne) SetCreatedBy(v string) *SdkKeyUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SdkKeyUpdateOne) SetNillableCreatedBy(v *string) *SdkKeyUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *SdkKeyUpdateOne) SetLastUsedAt(v time.Time) *SdkKeyUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *SdkKeyUpdateOne) SetNillableLastUsedAt(v *time.Time) *SdkKeyUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *SdkKeyUpdateOne) ClearLastUsedAt() *SdkKeyUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// Mutation returns the SdkKeyMutation object of the builder.
func (_u *SdkKeyUpdateOne) Mutation() *SdkKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the SdkKeyUpdate builder.
func (_u *SdkKeyUpdateOne) Where(ps ...predicate.SdkKey) *SdkKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SdkKeyUpdateOne) Select(field string, fields ...string) *SdkKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SdkKey entity.
func (_u *SdkKeyUpdateOne) Save(ctx context.Context) (*SdkKey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SdkKeyUpdateOne) SaveX(ctx context.Context) *SdkKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SdkKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SdkKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SdkKeyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sdkkey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SdkKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sdkkey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SdkKey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyHash(); ok {
		if err := sdkkey.KeyHashValidator(v); err != nil {
			return &ValidationError{Name: "key_hash", err: fmt.Errorf(`ent: validator failed for field "SdkKey.key_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := sdkkey.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "SdkKey.created_by": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SdkKey.project"`)
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SdkKey.environment"`)
	}
	return nil
}

func (_u *SdkKeyUpdateOne) sqlSave(ctx context.Context) (_node *SdkKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sdkkey.Table, sdkkey.Columns, sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SdkKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sdkkey.FieldID)
		for _, f := range fields {
			if !sdkkey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sdkkey.FieldID {
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
		_spec.SetField(sdkkey.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sdkkey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sdkkey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sdkkey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyHash(); ok {
		_spec.SetField(sdkkey.FieldKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(sdkkey.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(sdkkey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(sdkkey.FieldLastUsedAt, field.TypeTime)
	}
	_node = &SdkKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sdkkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
