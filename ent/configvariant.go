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
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/override"
)

// ConfigVariant is the model entity for the ConfigVariant schema.
type ConfigVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID string `json:"config_id,omitempty"`
	// EnvironmentID holds the value of the "environment_id" field.
	EnvironmentID string `json:"environment_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Value holds the value of the "value" field.
	Value json.RawMessage `json:"value,omitempty"`
	// Schema holds the value of the "schema" field.
	Schema json.RawMessage `json:"schema,omitempty"`
	// UseBaseSchema holds the value of the "use_base_schema" field.
	UseBaseSchema bool `json:"use_base_schema,omitempty"`
	// Overrides holds the value of the "overrides" field.
	Overrides []override.Override `json:"overrides,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConfigVariantQuery when eager-loading is set.
	Edges        ConfigVariantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConfigVariantEdges holds the relations/edges for other nodes in the graph.
type ConfigVariantEdges struct {
	// Config holds the value of the config edge.
	Config *ConfigItem `json:"config,omitempty"`
	// Environment holds the value of the environment edge.
	Environment *Environment `json:"environment,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*ConfigVariantVersion `json:"versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ConfigOrErr returns the Config value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigVariantEdges) ConfigOrErr() (*ConfigItem, error) {
	if e.Config != nil {
		return e.Config, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: configitem.Label}
	}
	return nil, &NotLoadedError{edge: "config"}
}

// EnvironmentOrErr returns the Environment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigVariantEdges) EnvironmentOrErr() (*Environment, error) {
	if e.Environment != nil {
		return e.Environment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: environment.Label}
	}
	return nil, &NotLoadedError{edge: "environment"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e ConfigVariantEdges) VersionsOrErr() ([]*ConfigVariantVersion, error) {
	if e.loadedTypes[2] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfigVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case configvariant.FieldValue, configvariant.FieldSchema, configvariant.FieldOverrides:
			values[i] = new([]byte)
		case configvariant.FieldUseBaseSchema:
			values[i] = new(sql.NullBool)
		case configvariant.FieldVersion:
			values[i] = new(sql.NullInt64)
		case configvariant.FieldID, configvariant.FieldConfigID, configvariant.FieldEnvironmentID:
			values[i] = new(sql.NullString)
		case configvariant.FieldCreatedAt, configvariant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfigVariant fields.
func (_m *ConfigVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case configvariant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case configvariant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case configvariant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case configvariant.FieldConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.String
			}
		case configvariant.FieldEnvironmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field environment_id", values[i])
			} else if value.Valid {
				_m.EnvironmentID = value.String
			}
		case configvariant.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case configvariant.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		case configvariant.FieldSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schema); err != nil {
					return fmt.Errorf("unmarshal field schema: %w", err)
				}
			}
		case configvariant.FieldUseBaseSchema:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field use_base_schema", values[i])
			} else if value.Valid {
				_m.UseBaseSchema = value.Bool
			}
		case configvariant.FieldOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Overrides); err != nil {
					return fmt.Errorf("unmarshal field overrides: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ConfigVariant.
// This includes values selected through modifiers, order, etc.
func (_m *ConfigVariant) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConfig queries the "config" edge of the ConfigVariant entity.
func (_m *ConfigVariant) QueryConfig() *ConfigItemQuery {
	return NewConfigVariantClient(_m.config).QueryConfig(_m)
}

// QueryEnvironment queries the "environment" edge of the ConfigVariant entity.
func (_m *ConfigVariant) QueryEnvironment() *EnvironmentQuery {
	return NewConfigVariantClient(_m.config).QueryEnvironment(_m)
}

// QueryVersions queries the "versions" edge of the ConfigVariant entity.
func (_m *ConfigVariant) QueryVersions() *ConfigVariantVersionQuery {
	return NewConfigVariantClient(_m.config).QueryVersions(_m)
}

// Update returns a builder for updating this ConfigVariant.
// Note that you need to call ConfigVariant.Unwrap() before calling this method if this ConfigVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfigVariant) Update() *ConfigVariantUpdateOne {
	return NewConfigVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfigVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfigVariant) Unwrap() *ConfigVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfigVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfigVariant) String() string {
	var builder strings.Builder
	builder.WriteString("ConfigVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("config_id=")
	builder.WriteString(_m.ConfigID)
	builder.WriteString(", ")
	builder.WriteString("environment_id=")
	builder.WriteString(_m.EnvironmentID)
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
	builder.WriteString("use_base_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseBaseSchema))
	builder.WriteString(", ")
	builder.WriteString("overrides=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overrides))
	builder.WriteByte(')')
	return builder.String()
}

// ConfigVariants is a parsable slice of ConfigVariant.
type ConfigVariants []*ConfigVariant
