// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/internal/override"
)

// ConfigVariantVersion is the model entity for the ConfigVariantVersion schema.
type ConfigVariantVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// VariantID holds the value of the "variant_id" field.
	VariantID string `json:"variant_id,omitempty"`
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
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID string `json:"proposal_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConfigVariantVersionQuery when eager-loading is set.
	Edges        ConfigVariantVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConfigVariantVersionEdges holds the relations/edges for other nodes in the graph.
type ConfigVariantVersionEdges struct {
	// Variant holds the value of the variant edge.
	Variant *ConfigVariant `json:"variant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VariantOrErr returns the Variant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigVariantVersionEdges) VariantOrErr() (*ConfigVariant, error) {
	if e.Variant != nil {
		return e.Variant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: configvariant.Label}
	}
	return nil, &NotLoadedError{edge: "variant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfigVariantVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case configvariantversion.FieldValue, configvariantversion.FieldSchema, configvariantversion.FieldOverrides:
			values[i] = new([]byte)
		case configvariantversion.FieldUseBaseSchema:
			values[i] = new(sql.NullBool)
		case configvariantversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case configvariantversion.FieldID, configvariantversion.FieldVariantID, configvariantversion.FieldConfigID, configvariantversion.FieldEnvironmentID, configvariantversion.FieldCreatedBy, configvariantversion.FieldProposalID:
			values[i] = new(sql.NullString)
		case configvariantversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfigVariantVersion fields.
func (_m *ConfigVariantVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case configvariantversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case configvariantversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case configvariantversion.FieldVariantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = value.String
			}
		case configvariantversion.FieldConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.String
			}
		case configvariantversion.FieldEnvironmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field environment_id", values[i])
			} else if value.Valid {
				_m.EnvironmentID = value.String
			}
		case configvariantversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case configvariantversion.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		case configvariantversion.FieldSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schema); err != nil {
					return fmt.Errorf("unmarshal field schema: %w", err)
				}
			}
		case configvariantversion.FieldUseBaseSchema:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field use_base_schema", values[i])
			} else if value.Valid {
				_m.UseBaseSchema = value.Bool
			}
		case configvariantversion.FieldOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Overrides); err != nil {
					return fmt.Errorf("unmarshal field overrides: %w", err)
				}
			}
		case configvariantversion.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case configvariantversion.FieldProposalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value.Valid {
				_m.ProposalID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ConfigVariantVersion.
// This includes values selected through modifiers, order, etc.
func (_m *ConfigVariantVersion) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVariant queries the "variant" edge of the ConfigVariantVersion entity.
func (_m *ConfigVariantVersion) QueryVariant() *ConfigVariantQuery {
	return NewConfigVariantVersionClient(_m.config).QueryVariant(_m)
}

// Update returns a builder for updating this ConfigVariantVersion.
// Note that you need to call ConfigVariantVersion.Unwrap() before calling this method if this ConfigVariantVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfigVariantVersion) Update() *ConfigVariantVersionUpdateOne {
	return NewConfigVariantVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfigVariantVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfigVariantVersion) Unwrap() *ConfigVariantVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfigVariantVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfigVariantVersion) String() string {
	var builder strings.Builder
	builder.WriteString("ConfigVariantVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("variant_id=")
	builder.WriteString(_m.VariantID)
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
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("proposal_id=")
	builder.WriteString(_m.ProposalID)
	builder.WriteByte(')')
	return builder.String()
}

// ConfigVariantVersions is a parsable slice of ConfigVariantVersion.
type ConfigVariantVersions []*ConfigVariantVersion
