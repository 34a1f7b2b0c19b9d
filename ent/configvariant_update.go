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
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/predicate"
	"replane.io/replane/internal/override"
)

// ConfigVariantUpdate is the builder for updating ConfigVariant entities.
type ConfigVariantUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigVariantMutation
}

// Where appends a list predicates to the ConfigVariantUpdate builder.
func (_u *ConfigVariantUpdate) Where(ps ...predicate.ConfigVariant) *ConfigVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigVariantUpdate) SetUpdatedAt(v time.Time) *ConfigVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *ConfigVariantUpdate) SetConfigID(v string) *ConfigVariantUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *ConfigVariantUpdate) SetNillableConfigID(v *string) *ConfigVariantUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetEnvironmentID sets the "environment_id" field.
func (_u *ConfigVariantUpdate) SetEnvironmentID(v string) *ConfigVariantUpdate {
	_u.mutation.SetEnvironmentID(v)
	return _u
}

// SetNillableEnvironmentID sets the "environment_id" field if the given value is not nil.
func (_u *ConfigVariantUpdate) SetNillableEnvironmentID(v *string) *ConfigVariantUpdate {
	if v != nil {
		_u.SetEnvironmentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConfigVariantUpdate) SetVersion(v int) *ConfigVariantUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConfigVariantUpdate) SetNillableVersion(v *int) *ConfigVariantUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConfigVariantUpdate) AddVersion(v int) *ConfigVariantUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigVariantUpdate) SetValue(v json.RawMessage) *ConfigVariantUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ConfigVariantUpdate) AppendValue(v json.RawMessage) *ConfigVariantUpdate {
	_u.mutation.AppendValue(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ConfigVariantUpdate) SetSchema(v json.RawMessage) *ConfigVariantUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *ConfigVariantUpdate) AppendSchema(v json.RawMessage) *ConfigVariantUpdate {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *ConfigVariantUpdate) ClearSchema() *ConfigVariantUpdate {
	_u.mutation.ClearSchema()
	return _u
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (_u *ConfigVariantUpdate) SetUseBaseSchema(v bool) *ConfigVariantUpdate {
	_u.mutation.SetUseBaseSchema(v)
	return _u
}

// SetNillableUseBaseSchema sets the "use_base_schema" field if the given value is not nil.
func (_u *ConfigVariantUpdate) SetNillableUseBaseSchema(v *bool) *ConfigVariantUpdate {
	if v != nil {
		_u.SetUseBaseSchema(*v)
	}
	return _u
}

// SetOverrides sets the "overrides" field.
func (_u *ConfigVariantUpdate) SetOverrides(v []override.Override) *ConfigVariantUpdate {
	_u.mutation.SetOverrides(v)
	return _u
}

// AppendOverrides appends value to the "overrides" field.
func (_u *ConfigVariantUpdate) AppendOverrides(v []override.Override) *ConfigVariantUpdate {
	_u.mutation.AppendOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *ConfigVariantUpdate) ClearOverrides() *ConfigVariantUpdate {
	_u.mutation.ClearOverrides()
	return _u
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_u *ConfigVariantUpdate) SetConfig(v *ConfigItem) *ConfigVariantUpdate {
	return _u.SetConfigID(v.ID)
}

// SetEnvironment sets the "environment" edge to the Environment entity.
func (_u *ConfigVariantUpdate) SetEnvironment(v *Environment) *ConfigVariantUpdate {
	return _u.SetEnvironmentID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the ConfigVariantVersion entity by IDs.
func (_u *ConfigVariantUpdate) AddVersionIDs(ids ...string) *ConfigVariantUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the ConfigVariantVersion entity.
func (_u *ConfigVariantUpdate) AddVersions(v ...*ConfigVariantVersion) *ConfigVariantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the ConfigVariantMutation object of the builder.
func (_u *ConfigVariantUpdate) Mutation() *ConfigVariantMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (_u *ConfigVariantUpdate) ClearConfig() *ConfigVariantUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// ClearEnvironment clears the "environment" edge to the Environment entity.
func (_u *ConfigVariantUpdate) ClearEnvironment() *ConfigVariantUpdate {
	_u.mutation.ClearEnvironment()
	return _u
}

// ClearVersions clears all "versions" edges to the ConfigVariantVersion entity.
func (_u *ConfigVariantUpdate) ClearVersions() *ConfigVariantUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to ConfigVariantVersion entities by IDs.
func (_u *ConfigVariantUpdate) RemoveVersionIDs(ids ...string) *ConfigVariantUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to ConfigVariantVersion entities.
func (_u *ConfigVariantUpdate) RemoveVersions(v ...*ConfigVariantVersion) *ConfigVariantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVariantUpdate) check() error {
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := configvariant.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.config_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnvironmentID(); ok {
		if err := configvariant.EnvironmentIDValidator(v); err != nil {
			return &ValidationError{Name: "environment_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.environment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := configvariant.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.version": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariant.config"`)
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariant.environment"`)
	}
	return nil
}

func (_u *ConfigVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configvariant.Table, configvariant.Columns, sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(configvariant.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(configvariant.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configvariant.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(configvariant.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configvariant.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.UseBaseSchema(); ok {
		_spec.SetField(configvariant.FieldUseBaseSchema, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(configvariant.FieldOverrides, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOverrides(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldOverrides, value)
		})
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configvariant.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.ConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.ConfigTable,
			Columns: []string{configvariant.ConfigColumn},
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
			Table:   configvariant.ConfigTable,
			Columns: []string{configvariant.ConfigColumn},
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
	if _u.mutation.EnvironmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.EnvironmentTable,
			Columns: []string{configvariant.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvironmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.EnvironmentTable,
			Columns: []string{configvariant.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString),
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
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
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
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigVariantUpdateOne is the builder for updating a single ConfigVariant entity.
type ConfigVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigVariantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigVariantUpdateOne) SetUpdatedAt(v time.Time) *ConfigVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *ConfigVariantUpdateOne) SetConfigID(v string) *ConfigVariantUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *ConfigVariantUpdateOne) SetNillableConfigID(v *string) *ConfigVariantUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetEnvironmentID sets the "environment_id" field.
func (_u *ConfigVariantUpdateOne) SetEnvironmentID(v string) *ConfigVariantUpdateOne {
	_u.mutation.SetEnvironmentID(v)
	return _u
}

// SetNillableEnvironmentID sets the "environment_id" field if the given value is not nil.
func (_u *ConfigVariantUpdateOne) SetNillableEnvironmentID(v *string) *ConfigVariantUpdateOne {
	if v != nil {
		_u.SetEnvironmentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ConfigVariantUpdateOne) SetVersion(v int) *ConfigVariantUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ConfigVariantUpdateOne) SetNillableVersion(v *int) *ConfigVariantUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ConfigVariantUpdateOne) AddVersion(v int) *ConfigVariantUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigVariantUpdateOne) SetValue(v json.RawMessage) *ConfigVariantUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ConfigVariantUpdateOne) AppendValue(v json.RawMessage) *ConfigVariantUpdateOne {
	_u.mutation.AppendValue(v)
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ConfigVariantUpdateOne) SetSchema(v json.RawMessage) *ConfigVariantUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// AppendSchema appends value to the "schema" field.
func (_u *ConfigVariantUpdateOne) AppendSchema(v json.RawMessage) *ConfigVariantUpdateOne {
	_u.mutation.AppendSchema(v)
	return _u
}

// ClearSchema clears the value of the "schema" field.
func (_u *ConfigVariantUpdateOne) ClearSchema() *ConfigVariantUpdateOne {
	_u.mutation.ClearSchema()
	return _u
}

// SetUseBaseSchema sets the "use_base_schema" field.
func (_u *ConfigVariantUpdateOne) SetUseBaseSchema(v bool) *ConfigVariantUpdateOne {
	_u.mutation.SetUseBaseSchema(v)
	return _u
}

// SetNillableUseBaseSchema sets the "use_base_schema" field if the given value is not nil.
func (_u *ConfigVariantUpdateOne) SetNillableUseBaseSchema(v *bool) *ConfigVariantUpdateOne {
	if v != nil {
		_u.SetUseBaseSchema(*v)
	}
	return _u
}

// SetOverrides sets the "overrides" field.
func (_u *ConfigVariantUpdateOne) SetOverrides(v []override.Override) *ConfigVariantUpdateOne {
	_u.mutation.SetOverrides(v)
	return _u
}

// AppendOverrides appends value to the "overrides" field.
func (_u *ConfigVariantUpdateOne) AppendOverrides(v []override.Override) *ConfigVariantUpdateOne {
	_u.mutation.AppendOverrides(v)
	return _u
}

// ClearOverrides clears the value of the "overrides" field.
func (_u *ConfigVariantUpdateOne) ClearOverrides() *ConfigVariantUpdateOne {
	_u.mutation.ClearOverrides()
	return _u
}

// SetConfig sets the "config" edge to the ConfigItem entity.
func (_u *ConfigVariantUpdateOne) SetConfig(v *ConfigItem) *ConfigVariantUpdateOne {
	return _u.SetConfigID(v.ID)
}

// SetEnvironment sets the "environment" edge to the Environment entity.
func (_u *ConfigVariantUpdateOne) SetEnvironment(v *Environment) *ConfigVariantUpdateOne {
	return _u.SetEnvironmentID(v.ID)
}

// AddVersionIDs adds the "versions" edge to the ConfigVariantVersion entity by IDs.
func (_u *ConfigVariantUpdateOne) AddVersionIDs(ids ...string) *ConfigVariantUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the ConfigVariantVersion entity.
func (_u *ConfigVariantUpdateOne) AddVersions(v ...*ConfigVariantVersion) *ConfigVariantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the ConfigVariantMutation object of the builder.
func (_u *ConfigVariantUpdateOne) Mutation() *ConfigVariantMutation {
	return _u.mutation
}

// ClearConfig clears the "config" edge to the ConfigItem entity.
func (_u *ConfigVariantUpdateOne) ClearConfig() *ConfigVariantUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// ClearEnvironment clears the "environment" edge to the Environment entity.
func (_u *ConfigVariantUpdateOne) ClearEnvironment() *ConfigVariantUpdateOne {
	_u.mutation.ClearEnvironment()
	return _u
}

// ClearVersions clears all "versions" edges to the ConfigVariantVersion entity.
func (_u *ConfigVariantUpdateOne) ClearVersions() *ConfigVariantUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to ConfigVariantVersion entities by IDs.
func (_u *ConfigVariantUpdateOne) RemoveVersionIDs(ids ...string) *ConfigVariantUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to ConfigVariantVersion entities.
func (_u *ConfigVariantUpdateOne) RemoveVersions(v ...*ConfigVariantVersion) *ConfigVariantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the ConfigVariantUpdate builder.
func (_u *ConfigVariantUpdateOne) Where(ps ...predicate.ConfigVariant) *ConfigVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigVariantUpdateOne) Select(field string, fields ...string) *ConfigVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigVariant entity.
func (_u *ConfigVariantUpdateOne) Save(ctx context.Context) (*ConfigVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigVariantUpdateOne) SaveX(ctx context.Context) *ConfigVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigVariantUpdateOne) check() error {
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := configvariant.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.config_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnvironmentID(); ok {
		if err := configvariant.EnvironmentIDValidator(v); err != nil {
			return &ValidationError{Name: "environment_id", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.environment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := configvariant.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ConfigVariant.version": %w`, err)}
		}
	}
	if _u.mutation.ConfigCleared() && len(_u.mutation.ConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariant.config"`)
	}
	if _u.mutation.EnvironmentCleared() && len(_u.mutation.EnvironmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConfigVariant.environment"`)
	}
	return nil
}

func (_u *ConfigVariantUpdateOne) sqlSave(ctx context.Context) (_node *ConfigVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configvariant.Table, configvariant.Columns, sqlgraph.NewFieldSpec(configvariant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configvariant.FieldID)
		for _, f := range fields {
			if !configvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configvariant.FieldID {
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
		_spec.SetField(configvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(configvariant.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(configvariant.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configvariant.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(configvariant.FieldSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldSchema, value)
		})
	}
	if _u.mutation.SchemaCleared() {
		_spec.ClearField(configvariant.FieldSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.UseBaseSchema(); ok {
		_spec.SetField(configvariant.FieldUseBaseSchema, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Overrides(); ok {
		_spec.SetField(configvariant.FieldOverrides, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOverrides(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, configvariant.FieldOverrides, value)
		})
	}
	if _u.mutation.OverridesCleared() {
		_spec.ClearField(configvariant.FieldOverrides, field.TypeJSON)
	}
	if _u.mutation.ConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.ConfigTable,
			Columns: []string{configvariant.ConfigColumn},
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
			Table:   configvariant.ConfigTable,
			Columns: []string{configvariant.ConfigColumn},
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
	if _u.mutation.EnvironmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.EnvironmentTable,
			Columns: []string{configvariant.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnvironmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configvariant.EnvironmentTable,
			Columns: []string{configvariant.EnvironmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environment.FieldID, field.TypeString),
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
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
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
			Table:   configvariant.VersionsTable,
			Columns: []string{configvariant.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configvariantversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConfigVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
