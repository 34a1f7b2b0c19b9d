// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/predicate"
)

// ConfigVariantVersionDelete is the builder for deleting a ConfigVariantVersion entity.
type ConfigVariantVersionDelete struct {
	config
	hooks    []Hook
	mutation *ConfigVariantVersionMutation
}

// Where appends a list predicates to the ConfigVariantVersionDelete builder.
func (_d *ConfigVariantVersionDelete) Where(ps ...predicate.ConfigVariantVersion) *ConfigVariantVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConfigVariantVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfigVariantVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConfigVariantVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(configvariantversion.Table, sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString))
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

// ConfigVariantVersionDeleteOne is the builder for deleting a single ConfigVariantVersion entity.
type ConfigVariantVersionDeleteOne struct {
	_d *ConfigVariantVersionDelete
}

// Where appends a list predicates to the ConfigVariantVersionDelete builder.
func (_d *ConfigVariantVersionDeleteOne) Where(ps ...predicate.ConfigVariantVersion) *ConfigVariantVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConfigVariantVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{configvariantversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConfigVariantVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
