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
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/sdkkey"
)

// EnvironmentUpdate is the builder for updating Environment entities.
type EnvironmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnvironmentMutation
}

// Where appends a list predicates to the EnvironmentUpdate builder.
func (_u *EnvironmentUpdate) Where(ps ...predicate.Environment) *EnvironmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnvironmentUpdate) SetUpdatedAt(v time.Time) *EnvironmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EnvironmentUpdate) SetProjectID(v string) *EnvironmentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableProjectID(v *string) *EnvironmentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnvironmentUpdate) SetName(v string) *EnvironmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableName(v *string) *EnvironmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *EnvironmentUpdate) SetOrder(v int) *EnvironmentUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableOrder(v *int) *EnvironmentUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *EnvironmentUpdate) AddOrder(v int) *EnvironmentUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetRequireProposals sets the "require_proposals" field.
func (_u *EnvironmentUpdate) SetRequireProposals(v bool) *EnvironmentUpdate {
	_u.mutation.SetRequireProposals(v)
	return _u
}

// SetNillableRequireProposals sets the "require_proposals" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableRequireProposals(v *bool) *EnvironmentUpdate {
	if v != nil {
		_u.SetRequireProposals(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *EnvironmentUpdate) SetProject(v *Project) *EnvironmentUpdate {
	return _u.SetProjectID(v.ID)
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by IDs.
func (_u *EnvironmentUpdate) AddVariantIDs(ids ...string) *EnvironmentUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ConfigVariant entity.
func (_u *EnvironmentUpdate) AddVariants(v ...*ConfigVariant) *EnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddSdkKeyIDs adds the "sdk_keys" edge to the SdkKey entity by IDs.
func (_u *EnvironmentUpdate) AddSdkKeyIDs(ids ...string) *EnvironmentUpdate {
	_u.mutation.AddSdkKeyIDs(ids...)
	return _u
}

// AddSdkKeys adds the "sdk_keys" edges to the SdkKey entity.
func (_u *EnvironmentUpdate) AddSdkKeys(v ...*SdkKey) *EnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSdkKeyIDs(ids...)
}

// Mutation returns the EnvironmentMutation object of the builder.
func (_u *EnvironmentUpdate) Mutation() *EnvironmentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *EnvironmentUpdate) ClearProject() *EnvironmentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearVariants clears all "variants" edges to the ConfigVariant entity.
func (_u *EnvironmentUpdate) ClearVariants() *EnvironmentUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ConfigVariant entities by IDs.
func (_u *EnvironmentUpdate) RemoveVariantIDs(ids ...string) *EnvironmentUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ConfigVariant entities.
func (_u *EnvironmentUpdate) RemoveVariants(v ...*ConfigVariant) *EnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearSdkKeys clears all "sdk_keys" edges to the SdkKey entity.
func (_u *EnvironmentUpdate) ClearSdkKeys() *EnvironmentUpdate {
	_u.mutation.ClearSdkKeys()
	return _u
}

// RemoveSdkKeyIDs removes the "sdk_keys" edge to SdkKey entities by IDs.
func (_u *EnvironmentUpdate) RemoveSdkKeyIDs(ids ...string) *EnvironmentUpdate {
	_u.mutation.RemoveSdkKeyIDs(ids...)
	return _u
}

// RemoveSdkKeys removes "sdk_keys" edges to SdkKey entities.
func (_u *EnvironmentUpdate) RemoveSdkKeys(v ...*SdkKey) *EnvironmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSdkKeyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvironmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvironmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvironmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := environment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := environment.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Environment.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := environment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Environment.name": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Environment.project"`)
	}
	return nil
}

func (_u *EnvironmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environment.Table, environment.Columns, sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(environment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(environment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(environment.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(environment.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireProposals(); ok {
		_spec.SetField(environment.FieldRequireProposals, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   environment.ProjectTable,
			Columns: []string{environment.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   environment.ProjectTable,
			Columns: []string{environment.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SdkKeysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSdkKeysIDs(); len(nodes) > 0 && !_u.mutation.SdkKeysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SdkKeysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvironmentUpdateOne is the builder for updating a single Environment entity.
type EnvironmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvironmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnvironmentUpdateOne) SetUpdatedAt(v time.Time) *EnvironmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EnvironmentUpdateOne) SetProjectID(v string) *EnvironmentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableProjectID(v *string) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EnvironmentUpdateOne) SetName(v string) *EnvironmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableName(v *string) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *EnvironmentUpdateOne) SetOrder(v int) *EnvironmentUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableOrder(v *int) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *EnvironmentUpdateOne) AddOrder(v int) *EnvironmentUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetRequireProposals sets the "require_proposals" field.
func (_u *EnvironmentUpdateOne) SetRequireProposals(v bool) *EnvironmentUpdateOne {
	_u.mutation.SetRequireProposals(v)
	return _u
}

// SetNillableRequireProposals sets the "require_proposals" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableRequireProposals(v *bool) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetRequireProposals(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *EnvironmentUpdateOne) SetProject(v *Project) *EnvironmentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by IDs.
func (_u *EnvironmentUpdateOne) AddVariantIDs(ids ...string) *EnvironmentUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ConfigVariant entity.
func (_u *EnvironmentUpdateOne) AddVariants(v ...*ConfigVariant) *EnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddSdkKeyIDs adds the "sdk_keys" edge to the SdkKey entity by IDs.
func (_u *EnvironmentUpdateOne) AddSdkKeyIDs(ids ...string) *EnvironmentUpdateOne {
	_u.mutation.AddSdkKeyIDs(ids...)
	return _u
}

// AddSdkKeys adds the "sdk_keys" edges to the SdkKey entity.
func (_u *EnvironmentUpdateOne) AddSdkKeys(v ...*SdkKey) *EnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSdkKeyIDs(ids...)
}

// Mutation returns the EnvironmentMutation object of the builder.
func (_u *EnvironmentUpdateOne) Mutation() *EnvironmentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *EnvironmentUpdateOne) ClearProject() *EnvironmentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearVariants clears all "variants" edges to the ConfigVariant entity.
func (_u *EnvironmentUpdateOne) ClearVariants() *EnvironmentUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ConfigVariant entities by IDs.
func (_u *EnvironmentUpdateOne) RemoveVariantIDs(ids ...string) *EnvironmentUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ConfigVariant entities.
func (_u *EnvironmentUpdateOne) RemoveVariants(v ...*ConfigVariant) *EnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearSdkKeys clears all "sdk_keys" edges to the SdkKey entity.
func (_u *EnvironmentUpdateOne) ClearSdkKeys() *EnvironmentUpdateOne {
	_u.mutation.ClearSdkKeys()
	return _u
}

// RemoveSdkKeyIDs removes the "sdk_keys" edge to SdkKey entities by IDs.
func (_u *EnvironmentUpdateOne) RemoveSdkKeyIDs(ids ...string) *EnvironmentUpdateOne {
	_u.mutation.RemoveSdkKeyIDs(ids...)
	return _u
}

// RemoveSdkKeys removes "sdk_keys" edges to SdkKey entities.
func (_u *EnvironmentUpdateOne) RemoveSdkKeys(v ...*SdkKey) *EnvironmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSdkKeyIDs(ids...)
}

// Where appends a list predicates to the EnvironmentUpdate builder.
func (_u *EnvironmentUpdateOne) Where(ps ...predicate.Environment) *EnvironmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvironmentUpdateOne) Select(field string, fields ...string) *EnvironmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Environment entity.
func (_u *EnvironmentUpdateOne) Save(ctx context.Context) (*Environment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentUpdateOne) SaveX(ctx context.Context) *Environment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvironmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvironmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := environment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := environment.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Environment.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := environment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Environment.name": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Environment.project"`)
	}
	return nil
}

func (_u *EnvironmentUpdateOne) sqlSave(ctx context.Context) (_node *Environment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environment.Table, environment.Columns, sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Environment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, environment.FieldID)
		for _, f := range fields {
			if !environment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != environment.FieldID {
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
		_spec.SetField(environment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(environment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(environment.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(environment.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireProposals(); ok {
		_spec.SetField(environment.FieldRequireProposals, field.TypeBool, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   environment.ProjectTable,
			Columns: []string{environment.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   environment.ProjectTable,
			Columns: []string{environment.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.VariantsTable,
			Columns: []string{environment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SdkKeysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSdkKeysIDs(); len(nodes) > 0 && !_u.mutation.SdkKeysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SdkKeysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environment.SdkKeysTable,
			Columns: []string{environment.SdkKeysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdkkey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Environment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
