// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/project"
	"replane.io/replane/internal/override"
)

// ConfigItem is the model entity for the ConfigItem schema.
type ConfigItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Value holds the value of the "value" field.
	Value json.RawMessage `json:"value,omitempty"`
	// Schema holds the value of the "schema" field.
	Schema json.RawMessage `json:"schema,omitempty"`
	// Overrides holds the value of the "overrides" field.
	Overrides []override.Override `json:"overrides,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConfigItemQuery when eager-loading is set.
	Edges        ConfigItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConfigItemEdges holds the relations/edges for other nodes in the graph.
type ConfigItemEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Variants holds the value of the variants edge.
	Variants []*ConfigVariant `json:"variants,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*ConfigVersion `json:"versions,omitempty"`
	// Proposals holds the value of the proposals edge.
	Proposals []*ConfigProposal `json:"proposals,omitempty"`
	// Users holds the value of the users edge.
	Users []*ConfigUser `json:"users,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigItemEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// VariantsOrErr returns the Variants value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigItemEdges) VariantsOrErr() ([]*ConfigVariant, error) {
	if e.loadedTypes[1] {
		return e.Variants, nil
	}
	return nil, &NotLoadedError{edge: "variants"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigItemEdges) VersionsOrErr() ([]*ConfigVersion, error) {
	if e.loadedTypes[2] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigItemEdges) ProposalsOrErr() ([]*ConfigProposal, error) {
	if e.loadedTypes[3] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigItemEdges) UsersOrErr() ([]*ConfigUser, error) {
	if e.loadedTypes[4] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfigItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case configitem.FieldValue, configitem.FieldSchema, configitem.FieldOverrides:
			values[i] = new([]byte)
		case configitem.FieldVersion:
			values[i] = new(sql.NullInt64)
		case configitem.FieldID, configitem.FieldProjectID, configitem.FieldName, configitem.FieldDescription, configitem.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case configitem.FieldCreatedAt, configitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfigItem fields.
func (_m *ConfigItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case configitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case configitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case configitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case configitem.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case configitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case configitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case configitem.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case configitem.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		case configitem.FieldSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schema); err != nil {
					return fmt.Errorf("unmarshal field schema: %w", err)
				}
			}
		case configitem.FieldOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Overrides); err != nil {
					return fmt.Errorf("unmarshal field overrides: %w", err)
				}
			}
		case configitem.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ConfigItem.
// This includes values selected through modifiers, order, etc.
func (_m *ConfigItem) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ConfigItem entity.
func (_m *ConfigItem) QueryProject() *ProjectQuery {
	return NewConfigItemClient(_m.config).QueryProject(_m)
}

// QueryVariants queries the "variants" edge of the ConfigItem entity.
func (_m *ConfigItem) QueryVariants() *ConfigVariantQuery {
	return NewConfigItemClient(_m.config).QueryVariants(_m)
}

// QueryVersions queries the "versions" edge of the ConfigItem entity.
func (_m *ConfigItem) QueryVersions() *ConfigVersionQuery {
	return NewConfigItemClient(_m.config).QueryVersions(_m)
}

// QueryProposals queries the "proposals" edge of the ConfigItem entity.
func (_m *ConfigItem) QueryProposals() *ConfigProposalQuery {
	return NewConfigItemClient(_m.config).QueryProposals(_m)
}

// QueryUsers queries the "users" edge of the ConfigItem entity.
func (_m *ConfigItem) QueryUsers() *ConfigUserQuery {
	return NewConfigItemClient(_m.config).QueryUsers(_m)
}

// Update returns a builder for updating this ConfigItem.
// Note that you need to call ConfigItem.Unwrap() before calling this method if this ConfigItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfigItem) Update() *ConfigItemUpdateOne {
	return NewConfigItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfigItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfigItem) Unwrap() *ConfigItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfigItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfigItem) String() string {
	var builder strings.Builder
	builder.WriteString("ConfigItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.Schema))
	builder.WriteString(", ")
	builder.WriteString("overrides=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overrides))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ConfigItems is a parsable slice of ConfigItem.
type ConfigItems []*ConfigItem
