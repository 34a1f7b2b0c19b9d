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
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/internal/domain"
)

// ConfigProposal is the model entity for the ConfigProposal schema.
type ConfigProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ConfigID holds the value of the "config_id" field.
	ConfigID string `json:"config_id,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Status holds the value of the "status" field.
	Status configproposal.Status `json:"status,omitempty"`
	// BaseVersion holds the value of the "base_version" field.
	BaseVersion int `json:"base_version,omitempty"`
	// IsDelete holds the value of the "is_delete" field.
	IsDelete bool `json:"is_delete,omitempty"`
	// Original holds the value of the "original" field.
	Original domain.ConfigState `json:"original,omitempty"`
	// Proposed holds the value of the "proposed" field.
	Proposed domain.ConfigState `json:"proposed,omitempty"`
	// Variants holds the value of the "variants" field.
	Variants []domain.ProposalVariant `json:"variants,omitempty"`
	// Reviewer holds the value of the "reviewer" field.
	Reviewer string `json:"reviewer,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason configproposal.RejectionReason `json:"rejection_reason,omitempty"`
	// RejectedInFavorOf holds the value of the "rejected_in_favor_of" field.
	RejectedInFavorOf string `json:"rejected_in_favor_of,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConfigProposalQuery when eager-loading is set.
	Edges        ConfigProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConfigProposalEdges holds the relations/edges for other nodes in the graph.
type ConfigProposalEdges struct {
	// Config holds the value of the config edge.
	Config *ConfigItem `json:"config,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConfigOrErr returns the Config value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConfigProposalEdges) ConfigOrErr() (*ConfigItem, error) {
	if e.Config != nil {
		return e.Config, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: configitem.Label}
	}
	return nil, &NotLoadedError{edge: "config"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfigProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case configproposal.FieldOriginal, configproposal.FieldProposed, configproposal.FieldVariants:
			values[i] = new([]byte)
		case configproposal.FieldIsDelete:
			values[i] = new(sql.NullBool)
		case configproposal.FieldBaseVersion:
			values[i] = new(sql.NullInt64)
		case configproposal.FieldID, configproposal.FieldConfigID, configproposal.FieldAuthor, configproposal.FieldMessage, configproposal.FieldStatus, configproposal.FieldReviewer, configproposal.FieldRejectionReason, configproposal.FieldRejectedInFavorOf:
			values[i] = new(sql.NullString)
		case configproposal.FieldCreatedAt, configproposal.FieldUpdatedAt, configproposal.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfigProposal fields.
func (_m *ConfigProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case configproposal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case configproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case configproposal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case configproposal.FieldConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field config_id", values[i])
			} else if value.Valid {
				_m.ConfigID = value.String
			}
		case configproposal.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case configproposal.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case configproposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = configproposal.Status(value.String)
			}
		case configproposal.FieldBaseVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_version", values[i])
			} else if value.Valid {
				_m.BaseVersion = int(value.Int64)
			}
		case configproposal.FieldIsDelete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_delete", values[i])
			} else if value.Valid {
				_m.IsDelete = value.Bool
			}
		case configproposal.FieldOriginal:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Original); err != nil {
					return fmt.Errorf("unmarshal field original: %w", err)
				}
			}
		case configproposal.FieldProposed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field proposed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Proposed); err != nil {
					return fmt.Errorf("unmarshal field proposed: %w", err)
				}
			}
		case configproposal.FieldVariants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variants); err != nil {
					return fmt.Errorf("unmarshal field variants: %w", err)
				}
			}
		case configproposal.FieldReviewer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer", values[i])
			} else if value.Valid {
				_m.Reviewer = value.String
			}
		case configproposal.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = configproposal.RejectionReason(value.String)
			}
		case configproposal.FieldRejectedInFavorOf:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_in_favor_of", values[i])
			} else if value.Valid {
				_m.RejectedInFavorOf = value.String
			}
		case configproposal.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConfigProposal.
// This includes values selected through modifiers, order, etc.
func (_m *ConfigProposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConfig queries the "config" edge of the ConfigProposal entity.
func (_m *ConfigProposal) QueryConfig() *ConfigItemQuery {
	return NewConfigProposalClient(_m.config).QueryConfig(_m)
}

// Update returns a builder for updating this ConfigProposal.
// Note that you need to call ConfigProposal.Unwrap() before calling this method if this ConfigProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfigProposal) Update() *ConfigProposalUpdateOne {
	return NewConfigProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfigProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfigProposal) Unwrap() *ConfigProposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfigProposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfigProposal) String() string {
	var builder strings.Builder
	builder.WriteString("ConfigProposal(")
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
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("base_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseVersion))
	builder.WriteString(", ")
	builder.WriteString("is_delete=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDelete))
	builder.WriteString(", ")
	builder.WriteString("original=")
	builder.WriteString(fmt.Sprintf("%v", _m.Original))
	builder.WriteString(", ")
	builder.WriteString("proposed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Proposed))
	builder.WriteString(", ")
	builder.WriteString("variants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variants))
	builder.WriteString(", ")
	builder.WriteString("reviewer=")
	builder.WriteString(_m.Reviewer)
	builder.WriteString(", ")
	builder.WriteString("rejection_reason=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectionReason))
	builder.WriteString(", ")
	builder.WriteString("rejected_in_favor_of=")
	builder.WriteString(_m.RejectedInFavorOf)
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConfigProposals is a parsable slice of ConfigProposal.
type ConfigProposals []*ConfigProposal
