// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
)

// AdminApiKeyScope is the model entity for the AdminApiKeyScope schema.
type AdminApiKeyScope struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// KeyID holds the value of the "key_id" field.
	KeyID string `json:"key_id,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdminApiKeyScopeQuery when eager-loading is set.
	Edges        AdminApiKeyScopeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdminApiKeyScopeEdges holds the relations/edges for other nodes in the graph.
type AdminApiKeyScopeEdges struct {
	// Key holds the value of the key edge.
	Key *AdminApiKey `json:"key,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// KeyOrErr returns the Key value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdminApiKeyScopeEdges) KeyOrErr() (*AdminApiKey, error) {
	if e.Key != nil {
		return e.Key, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: adminapikey.Label}
	}
	return nil, &NotLoadedError{edge: "key"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdminApiKeyScope) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adminapikeyscope.FieldID, adminapikeyscope.FieldKeyID, adminapikeyscope.FieldScope:
			values[i] = new(sql.NullString)
		case adminapikeyscope.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdminApiKeyScope fields.
func (_m *AdminApiKeyScope) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adminapikeyscope.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case adminapikeyscope.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case adminapikeyscope.FieldKeyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_id", values[i])
			} else if value.Valid {
				_m.KeyID = value.String
			}
		case adminapikeyscope.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdminApiKeyScope.
// This includes values selected through modifiers, order, etc.
func (_m *AdminApiKeyScope) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKey queries the "key" edge of the AdminApiKeyScope entity.
func (_m *AdminApiKeyScope) QueryKey() *AdminApiKeyQuery {
	return NewAdminApiKeyScopeClient(_m.config).QueryKey(_m)
}

// Update returns a builder for updating this AdminApiKeyScope.
// Note that you need to call AdminApiKeyScope.Unwrap() before calling this method if this AdminApiKeyScope
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdminApiKeyScope) Update() *AdminApiKeyScopeUpdateOne {
	return NewAdminApiKeyScopeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdminApiKeyScope entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdminApiKeyScope) Unwrap() *AdminApiKeyScope {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdminApiKeyScope is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdminApiKeyScope) String() string {
	var builder strings.Builder
	builder.WriteString("AdminApiKeyScope(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("key_id=")
	builder.WriteString(_m.KeyID)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteByte(')')
	return builder.String()
}

// AdminApiKeyScopes is a parsable slice of AdminApiKeyScope.
type AdminApiKeyScopes []*AdminApiKeyScope
