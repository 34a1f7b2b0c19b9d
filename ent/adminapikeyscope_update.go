// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/predicate"
)

// AdminApiKeyScopeUpdate is the builder for updating AdminApiKeyScope entities.
type AdminApiKeyScopeUpdate struct {
	config
	hooks    []Hook
	mutation *AdminApiKeyScopeMutation
}

// Where appends a list predicates to the AdminApiKeyScopeUpdate builder.
func (_u *AdminApiKeyScopeUpdate) Where(ps ...predicate.AdminApiKeyScope) *AdminApiKeyScopeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AdminApiKeyScopeMutation object of the builder.
func (_u *AdminApiKeyScopeUpdate) Mutation() *AdminApiKeyScopeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminApiKeyScopeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminApiKeyScopeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminApiKeyScopeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminApiKeyScopeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminApiKeyScopeUpdate) check() error {
	if _u.mutation.KeyCleared() && len(_u.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminApiKeyScope.key"`)
	}
	return nil
}

func (_u *AdminApiKeyScopeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminapikeyscope.Table, adminapikeyscope.Columns, sqlgraph.NewFieldSpec(adminapikeyscope.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminapikeyscope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminApiKeyScopeUpdateOne is the builder for updating a single AdminApiKeyScope entity.
type AdminApiKeyScopeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminApiKeyScopeMutation
}

// Mutation returns the AdminApiKeyScopeMutation object of the builder.
func (_u *AdminApiKeyScopeUpdateOne) Mutation() *AdminApiKeyScopeMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdminApiKeyScopeUpdate builder.
func (_u *AdminApiKeyScopeUpdateOne) Where(ps ...predicate.AdminApiKeyScope) *AdminApiKeyScopeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminApiKeyScopeUpdateOne) Select(field string, fields ...string) *AdminApiKeyScopeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminApiKeyScope entity.
func (_u *AdminApiKeyScopeUpdateOne) Save(ctx context.Context) (*AdminApiKeyScope, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminApiKeyScopeUpdateOne) SaveX(ctx context.Context) *AdminApiKeyScope {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminApiKeyScopeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminApiKeyScopeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminApiKeyScopeUpdateOne) check() error {
	if _u.mutation.KeyCleared() && len(_u.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminApiKeyScope.key"`)
	}
	return nil
}

func (_u *AdminApiKeyScopeUpdateOne) sqlSave(ctx context.Context) (_node *AdminApiKeyScope, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminapikeyscope.Table, adminapikeyscope.Columns, sqlgraph.NewFieldSpec(adminapikeyscope.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminApiKeyScope.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adminapikeyscope.FieldID)
		for _, f := range fields {
			if !adminapikeyscope.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adminapikeyscope.FieldID {
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
	_node = &AdminApiKeyScope{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminapikeyscope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
