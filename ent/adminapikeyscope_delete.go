// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/predicate"
)

// AdminApiKeyScopeDelete is the builder for deleting a AdminApiKeyScope entity.
type AdminApiKeyScopeDelete struct {
	config
	hooks    []Hook
	mutation *AdminApiKeyScopeMutation
}

// Where appends a list predicates to the AdminApiKeyScopeDelete builder.
func (_d *AdminApiKeyScopeDelete) Where(ps ...predicate.AdminApiKeyScope) *AdminApiKeyScopeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdminApiKeyScopeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdminApiKeyScopeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdminApiKeyScopeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adminapikeyscope.Table, sqlgraph.NewFieldSpec(adminapikeyscope.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdminApiKeyScopeDeleteOne is the builder for deleting a single AdminApiKeyScope entity.
type AdminApiKeyScopeDeleteOne struct {
	_d *AdminApiKeyScopeDelete
}

// Where appends a list predicates to the AdminApiKeyScopeDelete builder.
func (_d *AdminApiKeyScopeDeleteOne) Where(ps ...predicate.AdminApiKeyScope) *AdminApiKeyScopeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdminApiKeyScopeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adminapikeyscope.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdminApiKeyScopeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
