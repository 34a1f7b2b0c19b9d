// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/workspace"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// RequireProposals holds the value of the "require_proposals" field.
	RequireProposals bool `json:"require_proposals,omitempty"`
	// AllowSelfApprovals holds the value of the "allow_self_approvals" field.
	AllowSelfApprovals bool `json:"allow_self_approvals,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Environments holds the value of the environments edge.
	Environments []*Environment `json:"environments,omitempty"`
	// Configs holds the value of the configs edge.
	Configs []*ConfigItem `json:"configs,omitempty"`
	// Users holds the value of the users edge.
	Users []*ProjectUser `json:"users,omitempty"`
	// SdkKeys holds the value of the sdk_keys edge.
	SdkKeys []*SdkKey `json:"sdk_keys,omitempty"`
	// APIKeys holds the value of the api_keys edge.
	APIKeys []*AdminApiKey `json:"api_keys,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// EnvironmentsOrErr returns the Environments value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) EnvironmentsOrErr() ([]*Environment, error) {
	if e.loadedTypes[1] {
		return e.Environments, nil
	}
	return nil, &NotLoadedError{edge: "environments"}
}

// ConfigsOrErr returns the Configs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ConfigsOrErr() ([]*ConfigItem, error) {
	if e.loadedTypes[2] {
		return e.Configs, nil
	}
	return nil, &NotLoadedError{edge: "configs"}
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) UsersOrErr() ([]*ProjectUser, error) {
	if e.loadedTypes[3] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// SdkKeysOrErr returns the SdkKeys value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SdkKeysOrErr() ([]*SdkKey, error) {
	if e.loadedTypes[4] {
		return e.SdkKeys, nil
	}
	return nil, &NotLoadedError{edge: "sdk_keys"}
}

// APIKeysOrErr returns the APIKeys value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) APIKeysOrErr() ([]*AdminApiKey, error) {
	if e.loadedTypes[5] {
		return e.APIKeys, nil
	}
	return nil, &NotLoadedError{edge: "api_keys"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldRequireProposals, project.FieldAllowSelfApprovals:
			values[i] = new(sql.NullBool)
		case project.FieldID, project.FieldWorkspaceID, project.FieldName, project.FieldDescription, project.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldRequireProposals:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_proposals", values[i])
			} else if value.Valid {
				_m.RequireProposals = value.Bool
			}
		case project.FieldAllowSelfApprovals:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_self_approvals", values[i])
			} else if value.Valid {
				_m.AllowSelfApprovals = value.Bool
			}
		case project.FieldCreatedBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the Project entity.
func (_m *Project) QueryWorkspace() *WorkspaceQuery {
	return NewProjectClient(_m.config).QueryWorkspace(_m)
}

// QueryEnvironments queries the "environments" edge of the Project entity.
func (_m *Project) QueryEnvironments() *EnvironmentQuery {
	return NewProjectClient(_m.config).QueryEnvironments(_m)
}

// QueryConfigs queries the "configs" edge of the Project entity.
func (_m *Project) QueryConfigs() *ConfigItemQuery {
	return NewProjectClient(_m.config).QueryConfigs(_m)
}

// QueryUsers queries the "users" edge of the Project entity.
func (_m *Project) QueryUsers() *ProjectUserQuery {
	return NewProjectClient(_m.config).QueryUsers(_m)
}

// QuerySdkKeys queries the "sdk_keys" edge of the Project entity.
func (_m *Project) QuerySdkKeys() *SdkKeyQuery {
	return NewProjectClient(_m.config).QuerySdkKeys(_m)
}

// QueryAPIKeys queries the "api_keys" edge of the Project entity.
func (_m *Project) QueryAPIKeys() *AdminApiKeyQuery {
	return NewProjectClient(_m.config).QueryAPIKeys(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("require_proposals=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireProposals))
	builder.WriteString(", ")
	builder.WriteString("allow_self_approvals=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowSelfApprovals))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
