// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/internal/domain"
)

// ConfigProposalCreate is the builder for creating a ConfigProposal entity.
type ConfigProposalCreate struct {
	config
	mutation *ConfigProposalMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConfigProposalCreate) SetCreatedAt(v time.Time) *ConfigProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableCreatedAt(v *time.Time) *ConfigProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConfigProposalCreate) SetUpdatedAt(v time.Time) *ConfigProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableUpdatedAt(v *time.Time) *ConfigProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *ConfigProposalCreate) SetConfigID(v string) *ConfigProposalCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ConfigProposalCreate) SetAuthor(v string) *ConfigProposalCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ConfigProposalCreate) SetMessage(v string) *ConfigProposalCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableMessage(v *string) *ConfigProposalCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConfigProposalCreate) SetStatus(v configproposal.Status) *ConfigProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableStatus(v *configproposal.Status) *ConfigProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBaseVersion sets the "base_version" field.
func (_c *ConfigProposalCreate) SetBaseVersion(v int) *ConfigProposalCreate {
	_c.mutation.SetBaseVersion(v)
	return _c
}

// SetIsDelete sets the "is_delete" field.
func (_c *ConfigProposalCreate) SetIsDelete(v bool) *ConfigProposalCreate {
	_c.mutation.SetIsDelete(v)
	return _c
}

// SetNillableIsDelete sets the "is_delete" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableIsDelete(v *bool) *ConfigProposalCreate {
	if v != nil {
		_c.SetIsDelete(*v)
	}
	return _c
}

// SetOriginal sets the "original" field.
func (_c *ConfigProposalCreate) SetOriginal(v domain.ConfigState) *ConfigProposalCreate {
	_c.mutation.SetOriginal(v)
	return _c
}

// SetNillableOriginal sets the "original" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableOriginal(v *domain.ConfigState) *ConfigProposalCreate {
	if v != nil {
		_c.SetOriginal(*v)
	}
	return _c
}

// SetProposed sets the "proposed" field.
func (_c *ConfigProposalCreate) SetProposed(v domain.ConfigState) *ConfigProposalCreate {
	_c.mutation.SetProposed(v)
	return _c
}

// SetNillableProposed sets the "proposed" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableProposed(v *domain.ConfigState) *ConfigProposalCreate {
	if v != nil {
		_c.SetProposed(*v)
	}
	return _c
}

// SetVariants sets the "variants" field.
func (_c *ConfigProposalCreate) SetVariants(v []domain.ProposalVariant) *ConfigProposalCreate {
	_c.mutation.SetVariants(v)
	return _c
}

// SetReviewer sets the "reviewer" field.
func (_c *ConfigProposalCreate) SetReviewer(v string) *ConfigProposalCreate {
	_c.mutation.SetReviewer(v)
	return _c
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableReviewer(v *string) *ConfigProposalCreate {
	if v != nil {
		_c.SetReviewer(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *ConfigProposalCreate) SetRejectionReason(v configproposal.RejectionReason) *ConfigProposalCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableRejectionReason(v *configproposal.RejectionReason) *ConfigProposalCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetRejectedInFavorOf sets the "rejected_in_favor_of" field.
func (_c *ConfigProposalCreate) SetRejectedInFavorOf(v string) *ConfigProposalCreate {
	_c.mutation.SetRejectedInFavorOf(v)
	return _c
}

// SetNillableRejectedInFavorOf sets the "rejected_in_favor_of" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableRejectedInFavorOf(v *string) *ConfigProposalCreate {
	if v != nil {
		_c.SetRejectedInFavorOf(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ConfigProposalCreate) SetResolvedAt(v time.Time) *ConfigProposalCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ConfigProposalCreate) SetNillableResolvedAt(v *time.Time) *ConfigProposalCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConfigProposalCreate) SetID(v string) *ConfigProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_c *ConfigProposalCreate) SetConfig(v *ConfigItem) *ConfigProposalCreate {
	return _c.SetConfigID(v.ID)
}

// Mutation returns the ConfigProposalMutation object of the builder.
func (_c *ConfigProposalCreate) Mutation() *ConfigProposalMutation {
	return _c.mutation
}

// Save creates the ConfigProposal in the database.
func (_c *ConfigProposalCreate) Save(ctx context.Context) (*ConfigProposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfigProposalCreate) SaveX(ctx context.Context) *ConfigProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfigProposalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := configproposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := configproposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := configproposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDelete(); !ok {
		v := configproposal.DefaultIsDelete
		_c.mutation.SetIsDelete(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfigProposalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConfigProposal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConfigProposal.updated_at"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "ConfigProposal.config_id"`)}
	}
	if v, ok := _c.mutation.ConfigID(); ok {
		if err := configproposal.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.config_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "ConfigProposal.author"`)}
	}
	if v, ok := _c.mutation.Author(); ok {
		if err := configproposal.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.author": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConfigProposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := configproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseVersion(); !ok {
		return &ValidationError{Name: "base_version", err: errors.New(`ent: missing required field "ConfigProposal.base_version"`)}
	}
	if v, ok := _c.mutation.BaseVersion(); ok {
		if err := configproposal.BaseVersionValidator(v); err != nil {
			return &ValidationError{Name: "base_version", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.base_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDelete(); !ok {
		return &ValidationError{Name: "is_delete", err: errors.New(`ent: missing required field "ConfigProposal.is_delete"`)}
	}
	if v, ok := _c.mutation.RejectionReason(); ok {
		if err := configproposal.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.rejection_reason": %w`, err)}
		}
	}
	if len(_c.mutation.ConfigIDs()) == 0 {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required edge "ConfigProposal.config"`)}
	}
	return nil
}

func (_c *ConfigProposalCreate) sqlSave(ctx context.Context) (*ConfigProposal, error) {
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
			return nil, fmt.Errorf("unexpected ConfigProposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConfigProposalCreate) createSpec() (*ConfigProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfigProposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(configproposal.Table, sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(configproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(configproposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(configproposal.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(configproposal.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(configproposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BaseVersion(); ok {
		_spec.SetField(configproposal.FieldBaseVersion, field.TypeInt, value)
		_node.BaseVersion = value
	}
	if value, ok := _c.mutation.IsDelete(); ok {
		_spec.SetField(configproposal.FieldIsDelete, field.TypeBool, value)
		_node.IsDelete = value
	}
	if value, ok := _c.mutation.Original(); ok {
		_spec.SetField(configproposal.FieldOriginal, field.TypeJSON, value)
		_node.Original = value
	}
	if value, ok := _c.mutation.Proposed(); ok {
		_spec.SetField(configproposal.FieldProposed, field.TypeJSON, value)
		_node.Proposed = value
	}
	if value, ok := _c.mutation.Variants(); ok {
		_spec.SetField(configproposal.FieldVariants, field.TypeJSON, value)
		_node.Variants = value
	}
	if value, ok := _c.mutation.Reviewer(); ok {
		_spec.SetField(configproposal.FieldReviewer, field.TypeString, value)
		_node.Reviewer = value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(configproposal.FieldRejectionReason, field.TypeEnum, value)
		_node.RejectionReason = value
	}
	if value, ok := _c.mutation.RejectedInFavorOf(); ok {
		_spec.SetField(configproposal.FieldRejectedInFavorOf, field.TypeString, value)
		_node.RejectedInFavorOf = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(configproposal.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.ConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configproposal.ConfigTable,
			Columns: []string{configproposal.ConfigColumn},
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

// ConfigProposalCreateBulk is the builder for creating many ConfigProposal entities in bulk.
type ConfigProposalCreateBulk struct {
	config
	err      error
	builders []*ConfigProposalCreate
}

// Save creates the ConfigProposal entities in the database.
func (_c *ConfigProposalCreateBulk) Save(ctx context.Context) ([]*ConfigProposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfigProposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfigProposalMutation)
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
func (_c *ConfigProposalCreateBulk) SaveX(ctx context.Context) []*ConfigProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
