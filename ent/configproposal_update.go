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
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/predicate"
)

// ConfigProposalUpdate is the builder for updating ConfigProposal entities.
type ConfigProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigProposalMutation
}

// Where appends a list predicates to the ConfigProposalUpdate builder.
func (_u *ConfigProposalUpdate) Where(ps ...predicate.ConfigProposal) *ConfigProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigProposalUpdate) SetUpdatedAt(v time.Time) *ConfigProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConfigProposalUpdate) SetStatus(v configproposal.Status) *ConfigProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConfigProposalUpdate) SetNillableStatus(v *configproposal.Status) *ConfigProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *ConfigProposalUpdate) SetReviewer(v string) *ConfigProposalUpdate {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *ConfigProposalUpdate) SetNillableReviewer(v *string) *ConfigProposalUpdate {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *ConfigProposalUpdate) ClearReviewer() *ConfigProposalUpdate {
	_u.mutation.ClearReviewer()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ConfigProposalUpdate) SetRejectionReason(v configproposal.RejectionReason) *ConfigProposalUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ConfigProposalUpdate) SetNillableRejectionReason(v *configproposal.RejectionReason) *ConfigProposalUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ConfigProposalUpdate) ClearRejectionReason() *ConfigProposalUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetRejectedInFavorOf sets the "rejected_in_favor_of" field.
func (_u *ConfigProposalUpdate) SetRejectedInFavorOf(v string) *ConfigProposalUpdate {
	_u.mutation.SetRejectedInFavorOf(v)
	return _u
}

// SetNillableRejectedInFavorOf sets the "rejected_in_favor_of" field if the given value is not nil.
func (_u *ConfigProposalUpdate) SetNillableRejectedInFavorOf(v *string) *ConfigProposalUpdate {
	if v != nil {
		_u.SetRejectedInFavorOf(*v)
	}
	return _u
}

// ClearRejectedInFavorOf clears the value of the "rejected_in_favor_of" field.
func (_u *ConfigProposalUpdate) ClearRejectedInFavorOf() *ConfigProposalUpdate {
	_u.mutation.ClearRejectedInFavorOf()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConfigProposalUpdate) SetResolvedAt(v time.Time) *ConfigProposalUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConfigProposalUpdate) SetNillableResolvedAt(v *time.Time) *ConfigProposalUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConfigProposalUpdate) ClearResolvedAt() *ConfigProposalUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConfigProposalMutation object of the builder.
func (_u *ConfigProposalUpdate) Mutation() *ConfigProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configproposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigProposalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := configproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionReason(); ok {
		if err := configproposal.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.rejection_reason": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigProposal.config"`)
	}
	return nil
}

func (_u *ConfigProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configproposal.Table, configproposal.Columns, sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(configproposal.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(configproposal.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OriginalCleared() {
		_spec.ClearField(configproposal.FieldOriginal, field.TypeJSON)
	}
	if _u.mutation.ProposedCleared() {
		_spec.ClearField(configproposal.FieldProposed, field.TypeJSON)
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(configproposal.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(configproposal.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(configproposal.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(configproposal.FieldRejectionReason, field.TypeEnum, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(configproposal.FieldRejectionReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.RejectedInFavorOf(); ok {
		_spec.SetField(configproposal.FieldRejectedInFavorOf, field.TypeString, value)
	}
	if _u.mutation.RejectedInFavorOfCleared() {
		_spec.ClearField(configproposal.FieldRejectedInFavorOf, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(configproposal.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(configproposal.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigProposalUpdateOne is the builder for updating a single ConfigProposal entity.
type ConfigProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigProposalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigProposalUpdateOne) SetUpdatedAt(v time.Time) *ConfigProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConfigProposalUpdateOne) SetStatus(v configproposal.Status) *ConfigProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConfigProposalUpdateOne) SetNillableStatus(v *configproposal.Status) *ConfigProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *ConfigProposalUpdateOne) SetReviewer(v string) *ConfigProposalUpdateOne {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *ConfigProposalUpdateOne) SetNillableReviewer(v *string) *ConfigProposalUpdateOne {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *ConfigProposalUpdateOne) ClearReviewer() *ConfigProposalUpdateOne {
	_u.mutation.ClearReviewer()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ConfigProposalUpdateOne) SetRejectionReason(v configproposal.RejectionReason) *ConfigProposalUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ConfigProposalUpdateOne) SetNillableRejectionReason(v *configproposal.RejectionReason) *ConfigProposalUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ConfigProposalUpdateOne) ClearRejectionReason() *ConfigProposalUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetRejectedInFavorOf sets the "rejected_in_favor_of" field.
func (_u *ConfigProposalUpdateOne) SetRejectedInFavorOf(v string) *ConfigProposalUpdateOne {
	_u.mutation.SetRejectedInFavorOf(v)
	return _u
}

// SetNillableRejectedInFavorOf sets the "rejected_in_favor_of" field if the given value is not nil.
func (_u *ConfigProposalUpdateOne) SetNillableRejectedInFavorOf(v *string) *ConfigProposalUpdateOne {
	if v != nil {
		_u.SetRejectedInFavorOf(*v)
	}
	return _u
}

// ClearRejectedInFavorOf clears the value of the "rejected_in_favor_of" field.
func (_u *ConfigProposalUpdateOne) ClearRejectedInFavorOf() *ConfigProposalUpdateOne {
	_u.mutation.ClearRejectedInFavorOf()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConfigProposalUpdateOne) SetResolvedAt(v time.Time) *ConfigProposalUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConfigProposalUpdateOne) SetNillableResolvedAt(v *time.Time) *ConfigProposalUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConfigProposalUpdateOne) ClearResolvedAt() *ConfigProposalUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConfigProposalMutation object of the builder.
func (_u *ConfigProposalUpdateOne) Mutation() *ConfigProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfigProposalUpdate builder.
func (_u *ConfigProposalUpdateOne) Where(ps ...predicate.ConfigProposal) *ConfigProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigProposalUpdateOne) Select(field string, fields ...string) *ConfigProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigProposal entity.
func (_u *ConfigProposalUpdateOne) Save(ctx context.Context) (*ConfigProposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigProposalUpdateOne) SaveX(ctx context.Context) *ConfigProposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configproposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigProposalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := configproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RejectionReason(); ok {
		if err := configproposal.RejectionReasonValidator(v); err != nil {
			return &ValidationError{Name: "rejection_reason", err: fmt.Errorf(`ent: validator failed for field "ConfigProposal.rejection_reason": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigProposal.config"`)
	}
	return nil
}

func (_u *ConfigProposalUpdateOne) sqlSave(ctx context.Context) (_node *ConfigProposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configproposal.Table, configproposal.Columns, sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configproposal.FieldID)
		for _, f := range fields {
			if !configproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configproposal.FieldID {
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
		_spec.SetField(configproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(configproposal.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(configproposal.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.OriginalCleared() {
		_spec.ClearField(configproposal.FieldOriginal, field.TypeJSON)
	}
	if _u.mutation.ProposedCleared() {
		_spec.ClearField(configproposal.FieldProposed, field.TypeJSON)
	}
	if _u.mutation.VariantsCleared() {
		_spec.ClearField(configproposal.FieldVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(configproposal.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(configproposal.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(configproposal.FieldRejectionReason, field.TypeEnum, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(configproposal.FieldRejectionReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.RejectedInFavorOf(); ok {
		_spec.SetField(configproposal.FieldRejectedInFavorOf, field.TypeString, value)
	}
	if _u.mutation.RejectedInFavorOfCleared() {
		_spec.ClearField(configproposal.FieldRejectedInFavorOf, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(configproposal.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(configproposal.FieldResolvedAt, field.TypeTime)
	}
	_node = &ConfigProposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
