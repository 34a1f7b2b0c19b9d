// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/ent/project"
	"replane.io/replane/internal/override"
)

// ConfigItemUpdate is the builder for updating ConfigItem entities.
type ConfigItemUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigItemMutation
}

// Where appends a list predicates to the ConfigItemUpdate builder.
func (_u *ConfigItemUpdate) Where(ps ...predicate.ConfigItem) *ConfigItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigItemUpdate) SetUpdatedAt(v time.Time) *ConfigItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ConfigItemUpdate) SetProjectID(v string) *ConfigItemUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableProjectID(v *string) *ConfigItemUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConfigItemUpdate) SetDescription(v string) *ConfigItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableDescription(v *string) *ConfigItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConfigItemUpdate) ClearDescription() *ConfigItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConfigItemUpdate) SetVersion(v int) *ConfigItemUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableVersion(v *int) *ConfigItemUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConfigItemUpdate) AddVersion(v int) *ConfigItemUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigItemUpdate) SetValue(v json.RawMessage) *ConfigItemUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ConfigItemUpdate) AppendValue(v json.RawMessage) *ConfigItemUpdate {
	_u.mutation.AppendValue(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ConfigItemUpdate) SetSchema(v json.RawMessage) *ConfigItemUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *ConfigItemUpdate) AppendSchema(v json.RawMessage) *ConfigItemUpdate {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *ConfigItemUpdate) ClearSchema() *ConfigItemUpdate {
	_u.mutation.ClearSchema()
	return _u
}

// SetOverrides sets the "overrides" field.
func (_u *ConfigItemUpdate) SetOverrides(v []override.Override) *ConfigItemUpdate {
	_u.mutation.SetOverrides(v)
	return _u
}

// AppendOverrides appends value to the "overrides" field.
func (_u *ConfigItemUpdate) AppendOverrides(v []override.Override) *ConfigItemUpdate {
	_u.mutation.AppendOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *ConfigItemUpdate) ClearOverrides() *ConfigItemUpdate {
	_u.mutation.ClearOverrides()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ConfigItemUpdate) SetCreatedBy(v string) *ConfigItemUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableCreatedBy(v *string) *ConfigItemUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ConfigItemUpdate) SetProject(v *Project) *ConfigItemUpdate {
	return _u.SetProjectID(v.ID)
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by IDs.
func (_u *ConfigItemUpdate) AddVariantIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ConfigVariant entity.
func (_u *ConfigItemUpdate) AddVariants(v ...*ConfigVariant) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the ConfigVersion entity by IDs.
func (_u *ConfigItemUpdate) AddVersionIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the ConfigVersion entity.
func (_u *ConfigItemUpdate) AddVersions(v ...*ConfigVersion) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddProposalIDs adds the "proposals" edge to the ConfigProposal entity by IDs.
func (_u *ConfigItemUpdate) AddProposalIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the ConfigProposal entity.
func (_u *ConfigItemUpdate) AddProposals(v ...*ConfigProposal) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// AddUserIDs adds the "users" edge to the ConfigUser entity by IDs.
func (_u *ConfigItemUpdate) AddUserIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the ConfigUser entity.
func (_u *ConfigItemUpdate) AddUsers(v ...*ConfigUser) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the ConfigItemMutation object of the builder.
func (_u *ConfigItemUpdate) Mutation() *ConfigItemMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ConfigItemUpdate) ClearProject() *ConfigItemUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearVariants clears all "variants" edges to the ConfigVariant entity.
func (_u *ConfigItemUpdate) ClearVariants() *ConfigItemUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ConfigVariant entities by IDs.
func (_u *ConfigItemUpdate) RemoveVariantIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ConfigVariant entities.
func (_u *ConfigItemUpdate) RemoveVariants(v ...*ConfigVariant) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearVersions clears all "versions" edges to the ConfigVersion entity.
func (_u *ConfigItemUpdate) ClearVersions() *ConfigItemUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to ConfigVersion entities by IDs.
func (_u *ConfigItemUpdate) RemoveVersionIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to ConfigVersion entities.
func (_u *ConfigItemUpdate) RemoveVersions(v ...*ConfigVersion) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearProposals clears all "proposals" edges to the ConfigProposal entity.
func (_u *ConfigItemUpdate) ClearProposals() *ConfigItemUpdate {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to ConfigProposal entities by IDs.
func (_u *ConfigItemUpdate) RemoveProposalIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to ConfigProposal entities.
func (_u *ConfigItemUpdate) RemoveProposals(v ...*ConfigProposal) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// ClearUsers clears all "users" edges to the ConfigUser entity.
func (_u *ConfigItemUpdate) ClearUsers() *ConfigItemUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to ConfigUser entities by IDs.
func (_u *ConfigItemUpdate) RemoveUserIDs(ids ...string) *ConfigItemUpdate {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to ConfigUser entities.
func (_u *ConfigItemUpdate) RemoveUsers(v ...*ConfigUser) *ConfigItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigItemUpdate) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := configitem.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := configitem.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := configitem.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.created_by": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigItem.project"`)
	}
	return nil
}

func (_u *ConfigItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configitem.Table, configitem.Columns, sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(configitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(configitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(configitem.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(configitem.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configitem.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(configitem.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configitem.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(configitem.FieldOverrides, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOverrides(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldOverrides, value)
		})
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configitem.FieldOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(configitem.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configitem.ProjectTable,
			Columns: []string{configitem.ProjectColumn},
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
			Table:   configitem.ProjectTable,
			Columns: []string{configitem.ProjectColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigItemUpdateOne is the builder for updating a single ConfigItem entity.
type ConfigItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigItemUpdateOne) SetUpdatedAt(v time.Time) *ConfigItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ConfigItemUpdateOne) SetProjectID(v string) *ConfigItemUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableProjectID(v *string) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConfigItemUpdateOne) SetDescription(v string) *ConfigItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableDescription(v *string) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConfigItemUpdateOne) ClearDescription() *ConfigItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConfigItemUpdateOne) SetVersion(v int) *ConfigItemUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableVersion(v *int) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConfigItemUpdateOne) AddVersion(v int) *ConfigItemUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigItemUpdateOne) SetValue(v json.RawMessage) *ConfigItemUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ConfigItemUpdateOne) AppendValue(v json.RawMessage) *ConfigItemUpdateOne {
	_u.mutation.AppendValue(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ConfigItemUpdateOne) SetSchema(v json.RawMessage) *ConfigItemUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *ConfigItemUpdateOne) AppendSchema(v json.RawMessage) *ConfigItemUpdateOne {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *ConfigItemUpdateOne) ClearSchema() *ConfigItemUpdateOne {
	_u.mutation.ClearSchema()
	return _u
}

// SetOverrides sets the "overrides" field.
func (_u *ConfigItemUpdateOne) SetOverrides(v []override.Override) *ConfigItemUpdateOne {
	_u.mutation.SetOverrides(v)
	return _u
}

// AppendOverrides appends value to the "overrides" field.
func (_u *ConfigItemUpdateOne) AppendOverrides(v []override.Override) *ConfigItemUpdateOne {
	_u.mutation.AppendOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *ConfigItemUpdateOne) ClearOverrides() *ConfigItemUpdateOne {
	_u.mutation.ClearOverrides()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ConfigItemUpdateOne) SetCreatedBy(v string) *ConfigItemUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableCreatedBy(v *string) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ConfigItemUpdateOne) SetProject(v *Project) *ConfigItemUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddVariantIDs adds the "variants" edge to the ConfigVariant entity by IDs.
func (_u *ConfigItemUpdateOne) AddVariantIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ConfigVariant entity.
func (_u *ConfigItemUpdateOne) AddVariants(v ...*ConfigVariant) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the ConfigVersion entity by IDs.
func (_u *ConfigItemUpdateOne) AddVersionIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the ConfigVersion entity.
func (_u *ConfigItemUpdateOne) AddVersions(v ...*ConfigVersion) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddProposalIDs adds the "proposals" edge to the ConfigProposal entity by IDs.
func (_u *ConfigItemUpdateOne) AddProposalIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the ConfigProposal entity.
func (_u *ConfigItemUpdateOne) AddProposals(v ...*ConfigProposal) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// AddUserIDs adds the "users" edge to the ConfigUser entity by IDs.
func (_u *ConfigItemUpdateOne) AddUserIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the ConfigUser entity.
func (_u *ConfigItemUpdateOne) AddUsers(v ...*ConfigUser) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the ConfigItemMutation object of the builder.
func (_u *ConfigItemUpdateOne) Mutation() *ConfigItemMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ConfigItemUpdateOne) ClearProject() *ConfigItemUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearVariants clears all "variants" edges to the ConfigVariant entity.
func (_u *ConfigItemUpdateOne) ClearVariants() *ConfigItemUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ConfigVariant entities by IDs.
func (_u *ConfigItemUpdateOne) RemoveVariantIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ConfigVariant entities.
func (_u *ConfigItemUpdateOne) RemoveVariants(v ...*ConfigVariant) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearVersions clears all "versions" edges to the ConfigVersion entity.
func (_u *ConfigItemUpdateOne) ClearVersions() *ConfigItemUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to ConfigVersion entities by IDs.
func (_u *ConfigItemUpdateOne) RemoveVersionIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to ConfigVersion entities.
func (_u *ConfigItemUpdateOne) RemoveVersions(v ...*ConfigVersion) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearProposals clears all "proposals" edges to the ConfigProposal entity.
func (_u *ConfigItemUpdateOne) ClearProposals() *ConfigItemUpdateOne {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to ConfigProposal entities by IDs.
func (_u *ConfigItemUpdateOne) RemoveProposalIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to ConfigProposal entities.
func (_u *ConfigItemUpdateOne) RemoveProposals(v ...*ConfigProposal) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// ClearUsers clears all "users" edges to the ConfigUser entity.
func (_u *ConfigItemUpdateOne) ClearUsers() *ConfigItemUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to ConfigUser entities by IDs.
func (_u *ConfigItemUpdateOne) RemoveUserIDs(ids ...string) *ConfigItemUpdateOne {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to ConfigUser entities.
func (_u *ConfigItemUpdateOne) RemoveUsers(v ...*ConfigUser) *ConfigItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Where appends a list predicates to the ConfigItemUpdate builder.
func (_u *ConfigItemUpdateOne) Where(ps ...predicate.ConfigItem) *ConfigItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigItemUpdateOne) Select(field string, fields ...string) *ConfigItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigItem entity.
func (_u *ConfigItemUpdateOne) Save(ctx context.Context) (*ConfigItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigItemUpdateOne) SaveX(ctx context.Context) *ConfigItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigItemUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectID(); ok {
		if err := configitem.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.project_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := configitem.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := configitem.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.created_by": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigItem.project"`)
	}
	return nil
}

func (_u *ConfigItemUpdateOne) sqlSave(ctx context.Context) (_node *ConfigItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configitem.Table, configitem.Columns, sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configitem.FieldID)
		for _, f := range fields {
			if !configitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configitem.FieldID {
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
		_spec.SetField(configitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(configitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(configitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(configitem.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(configitem.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configitem.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(configitem.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configitem.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(configitem.FieldOverrides, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOverrides(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configitem.FieldOverrides, value)
		})
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configitem.FieldOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(configitem.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configitem.ProjectTable,
			Columns: []string{configitem.ProjectColumn},
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
			Table:   configitem.ProjectTable,
			Columns: []string{configitem.ProjectColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
			Table:   configitem.VariantsTable,
			Columns: []string{configitem.VariantsColumn},
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
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.VersionsTable,
			Columns: []string{configitem.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.ProposalsTable,
			Columns: []string{configitem.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configitem.UsersTable,
			Columns: []string{configitem.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuser.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConfigItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
