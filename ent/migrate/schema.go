// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminAPIKeysColumns holds the columns for the "admin_api_keys" table.
	AdminAPIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "key_hash", Type: field.TypeString},
		{Name: "key_prefix", Type: field.TypeString},
		{Name: "key_suffix", Type: field.TypeString},
		{Name: "all_projects", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// AdminAPIKeysTable holds the schema information for the "admin_api_keys" table.
	AdminAPIKeysTable = &schema.Table{
		Name:       "admin_api_keys",
		Columns:    AdminAPIKeysColumns,
		PrimaryKey: []*schema.Column{AdminAPIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admin_api_keys_workspaces_api_keys",
				Columns:    []*schema.Column{AdminAPIKeysColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "adminapikey_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{AdminAPIKeysColumns[12]},
			},
		},
	}
	// AdminAPIKeyScopesColumns holds the columns for the "admin_api_key_scopes" table.
	AdminAPIKeyScopesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scope", Type: field.TypeString},
		{Name: "key_id", Type: field.TypeString},
	}
	// AdminAPIKeyScopesTable holds the schema information for the "admin_api_key_scopes" table.
	AdminAPIKeyScopesTable = &schema.Table{
		Name:       "admin_api_key_scopes",
		Columns:    AdminAPIKeyScopesColumns,
		PrimaryKey: []*schema.Column{AdminAPIKeyScopesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admin_api_key_scopes_admin_api_keys_scopes",
				Columns:    []*schema.Column{AdminAPIKeyScopesColumns[3]},
				RefColumns: []*schema.Column{AdminAPIKeysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "adminapikeyscope_key_id_scope",
				Unique:  true,
				Columns: []*schema.Column{AdminAPIKeyScopesColumns[3], AdminAPIKeyScopesColumns[2]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "config_id", Type: field.TypeString, Nullable: true},
		{Name: "environment_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_project_id_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5], AuditLogsColumns[1], AuditLogsColumns[0]},
			},
			{
				Name:    "auditlog_config_id_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6], AuditLogsColumns[1], AuditLogsColumns[0]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3]},
			},
		},
	}
	// ConfigsColumns holds the columns for the "configs" table.
	ConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "value", Type: field.TypeJSON},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// ConfigsTable holds the schema information for the "configs" table.
	ConfigsTable = &schema.Table{
		Name:       "configs",
		Columns:    ConfigsColumns,
		PrimaryKey: []*schema.Column{ConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "configs_projects_configs",
				Columns:    []*schema.Column{ConfigsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configitem_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{ConfigsColumns[10], ConfigsColumns[3]},
			},
		},
	}
	// ConfigProposalsColumns holds the columns for the "config_proposals" table.
	ConfigProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "author", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "base_version", Type: field.TypeInt},
		{Name: "is_delete", Type: field.TypeBool, Default: false},
		{Name: "original", Type: field.TypeJSON, Nullable: true},
		{Name: "proposed", Type: field.TypeJSON, Nullable: true},
		{Name: "variants", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewer", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeEnum, Nullable: true, Enums: []string{"rejected_explicitly", "rejected_by_config_edit", "rejected_by_other_approval"}},
		{Name: "rejected_in_favor_of", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "config_id", Type: field.TypeString},
	}
	// ConfigProposalsTable holds the schema information for the "config_proposals" table.
	ConfigProposalsTable = &schema.Table{
		Name:       "config_proposals",
		Columns:    ConfigProposalsColumns,
		PrimaryKey: []*schema.Column{ConfigProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "config_proposals_configs_proposals",
				Columns:    []*schema.Column{ConfigProposalsColumns[15]},
				RefColumns: []*schema.Column{ConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configproposal_config_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConfigProposalsColumns[15], ConfigProposalsColumns[5]},
			},
			{
				Name:    "configproposal_author",
				Unique:  false,
				Columns: []*schema.Column{ConfigProposalsColumns[3]},
			},
		},
	}
	// ConfigUsersColumns holds the columns for the "config_users" table.
	ConfigUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"editor", "maintainer"}, Default: "editor"},
		{Name: "config_id", Type: field.TypeString},
	}
	// ConfigUsersTable holds the schema information for the "config_users" table.
	ConfigUsersTable = &schema.Table{
		Name:       "config_users",
		Columns:    ConfigUsersColumns,
		PrimaryKey: []*schema.Column{ConfigUsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "config_users_configs_users",
				Columns:    []*schema.Column{ConfigUsersColumns[5]},
				RefColumns: []*schema.Column{ConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configuser_config_id_email",
				Unique:  true,
				Columns: []*schema.Column{ConfigUsersColumns[5], ConfigUsersColumns[3]},
			},
			{
				Name:    "configuser_email",
				Unique:  false,
				Columns: []*schema.Column{ConfigUsersColumns[3]},
			},
		},
	}
	// ConfigVariantsColumns holds the columns for the "config_variants" table.
	ConfigVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "value", Type: field.TypeJSON},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "use_base_schema", Type: field.TypeBool, Default: false},
		{Name: "overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "config_id", Type: field.TypeString},
		{Name: "environment_id", Type: field.TypeString},
	}
	// ConfigVariantsTable holds the schema information for the "config_variants" table.
	ConfigVariantsTable = &schema.Table{
		Name:       "config_variants",
		Columns:    ConfigVariantsColumns,
		PrimaryKey: []*schema.Column{ConfigVariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "config_variants_configs_variants",
				Columns:    []*schema.Column{ConfigVariantsColumns[8]},
				RefColumns: []*schema.Column{ConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "config_variants_environments_variants",
				Columns:    []*schema.Column{ConfigVariantsColumns[9]},
				RefColumns: []*schema.Column{EnvironmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configvariant_config_id_environment_id",
				Unique:  true,
				Columns: []*schema.Column{ConfigVariantsColumns[8], ConfigVariantsColumns[9]},
			},
		},
	}
	// ConfigVariantVersionsColumns holds the columns for the "config_variant_versions" table.
	ConfigVariantVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "config_id", Type: field.TypeString},
		{Name: "environment_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "value", Type: field.TypeJSON},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "use_base_schema", Type: field.TypeBool, Default: false},
		{Name: "overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeString, Nullable: true},
		{Name: "variant_id", Type: field.TypeString},
	}
	// ConfigVariantVersionsTable holds the schema information for the "config_variant_versions" table.
	ConfigVariantVersionsTable = &schema.Table{
		Name:       "config_variant_versions",
		Columns:    ConfigVariantVersionsColumns,
		PrimaryKey: []*schema.Column{ConfigVariantVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "config_variant_versions_config_variants_versions",
				Columns:    []*schema.Column{ConfigVariantVersionsColumns[11]},
				RefColumns: []*schema.Column{ConfigVariantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configvariantversion_variant_id_version",
				Unique:  true,
				Columns: []*schema.Column{ConfigVariantVersionsColumns[11], ConfigVariantVersionsColumns[4]},
			},
			{
				Name:    "configvariantversion_config_id_environment_id",
				Unique:  false,
				Columns: []*schema.Column{ConfigVariantVersionsColumns[2], ConfigVariantVersionsColumns[3]},
			},
		},
	}
	// ConfigVersionsColumns holds the columns for the "config_versions" table.
	ConfigVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "schema", Type: field.TypeJSON, Nullable: true},
		{Name: "overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "members", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeString, Nullable: true},
		{Name: "config_id", Type: field.TypeString},
	}
	// ConfigVersionsTable holds the schema information for the "config_versions" table.
	ConfigVersionsTable = &schema.Table{
		Name:       "config_versions",
		Columns:    ConfigVersionsColumns,
		PrimaryKey: []*schema.Column{ConfigVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "config_versions_configs_versions",
				Columns:    []*schema.Column{ConfigVersionsColumns[10]},
				RefColumns: []*schema.Column{ConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "configversion_config_id_version",
				Unique:  true,
				Columns: []*schema.Column{ConfigVersionsColumns[10], ConfigVersionsColumns[2]},
			},
		},
	}
	// EnvironmentsColumns holds the columns for the "environments" table.
	EnvironmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "require_proposals", Type: field.TypeBool, Default: false},
		{Name: "project_id", Type: field.TypeString},
	}
	// EnvironmentsTable holds the schema information for the "environments" table.
	EnvironmentsTable = &schema.Table{
		Name:       "environments",
		Columns:    EnvironmentsColumns,
		PrimaryKey: []*schema.Column{EnvironmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "environments_projects_environments",
				Columns:    []*schema.Column{EnvironmentsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "environment_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{EnvironmentsColumns[6], EnvironmentsColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "require_proposals", Type: field.TypeBool, Default: false},
		{Name: "allow_self_approvals", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_workspaces_projects",
				Columns:    []*schema.Column{ProjectsColumns[8]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[8], ProjectsColumns[3]},
			},
		},
	}
	// ProjectUsersColumns holds the columns for the "project_users" table.
	ProjectUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "maintainer"}, Default: "maintainer"},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProjectUsersTable holds the schema information for the "project_users" table.
	ProjectUsersTable = &schema.Table{
		Name:       "project_users",
		Columns:    ProjectUsersColumns,
		PrimaryKey: []*schema.Column{ProjectUsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_users_projects_users",
				Columns:    []*schema.Column{ProjectUsersColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectuser_project_id_email",
				Unique:  true,
				Columns: []*schema.Column{ProjectUsersColumns[5], ProjectUsersColumns[3]},
			},
			{
				Name:    "projectuser_email",
				Unique:  false,
				Columns: []*schema.Column{ProjectUsersColumns[3]},
			},
		},
	}
	// SdkKeysColumns holds the columns for the "sdk_keys" table.
	SdkKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "key_hash", Type: field.TypeString},
		{Name: "key_prefix", Type: field.TypeString},
		{Name: "key_suffix", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "environment_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// SdkKeysTable holds the schema information for the "sdk_keys" table.
	SdkKeysTable = &schema.Table{
		Name:       "sdk_keys",
		Columns:    SdkKeysColumns,
		PrimaryKey: []*schema.Column{SdkKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sdk_keys_environments_sdk_keys",
				Columns:    []*schema.Column{SdkKeysColumns[10]},
				RefColumns: []*schema.Column{EnvironmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "sdk_keys_projects_sdk_keys",
				Columns:    []*schema.Column{SdkKeysColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sdkkey_project_id_environment_id",
				Unique:  false,
				Columns: []*schema.Column{SdkKeysColumns[11], SdkKeysColumns[10]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "auto_add_new_users", Type: field.TypeBool, Default: false},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// WorkspaceMembersColumns holds the columns for the "workspace_members" table.
	WorkspaceMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "member"}, Default: "member"},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// WorkspaceMembersTable holds the schema information for the "workspace_members" table.
	WorkspaceMembersTable = &schema.Table{
		Name:       "workspace_members",
		Columns:    WorkspaceMembersColumns,
		PrimaryKey: []*schema.Column{WorkspaceMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspace_members_workspaces_members",
				Columns:    []*schema.Column{WorkspaceMembersColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspacemember_workspace_id_email",
				Unique:  true,
				Columns: []*schema.Column{WorkspaceMembersColumns[6], WorkspaceMembersColumns[3]},
			},
			{
				Name:    "workspacemember_email",
				Unique:  false,
				Columns: []*schema.Column{WorkspaceMembersColumns[3]},
			},
		},
	}
	// AdminAPIKeyProjectsColumns holds the columns for the "admin_api_key_projects" table.
	AdminAPIKeyProjectsColumns = []*schema.Column{
		{Name: "admin_api_key_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// AdminAPIKeyProjectsTable holds the schema information for the "admin_api_key_projects" table.
	AdminAPIKeyProjectsTable = &schema.Table{
		Name:       "admin_api_key_projects",
		Columns:    AdminAPIKeyProjectsColumns,
		PrimaryKey: []*schema.Column{AdminAPIKeyProjectsColumns[0], AdminAPIKeyProjectsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admin_api_key_projects_admin_api_key_id",
				Columns:    []*schema.Column{AdminAPIKeyProjectsColumns[0]},
				RefColumns: []*schema.Column{AdminAPIKeysColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "admin_api_key_projects_project_id",
				Columns:    []*schema.Column{AdminAPIKeyProjectsColumns[1]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminAPIKeysTable,
		AdminAPIKeyScopesTable,
		AuditLogsTable,
		ConfigsTable,
		ConfigProposalsTable,
		ConfigUsersTable,
		ConfigVariantsTable,
		ConfigVariantVersionsTable,
		ConfigVersionsTable,
		EnvironmentsTable,
		ProjectsTable,
		ProjectUsersTable,
		SdkKeysTable,
		WorkspacesTable,
		WorkspaceMembersTable,
		AdminAPIKeyProjectsTable,
	}
)

func init() {
	AdminAPIKeysTable.ForeignKeys[0].RefTable = WorkspacesTable
	AdminAPIKeyScopesTable.ForeignKeys[0].RefTable = AdminAPIKeysTable
	ConfigsTable.ForeignKeys[0].RefTable = ProjectsTable
	ConfigsTable.Annotation = &entsql.Annotation{
		Table: "configs",
	}
	ConfigProposalsTable.ForeignKeys[0].RefTable = ConfigsTable
	ConfigUsersTable.ForeignKeys[0].RefTable = ConfigsTable
	ConfigVariantsTable.ForeignKeys[0].RefTable = ConfigsTable
	ConfigVariantsTable.ForeignKeys[1].RefTable = EnvironmentsTable
	ConfigVariantVersionsTable.ForeignKeys[0].RefTable = ConfigVariantsTable
	ConfigVersionsTable.ForeignKeys[0].RefTable = ConfigsTable
	EnvironmentsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectsTable.ForeignKeys[0].RefTable = WorkspacesTable
	ProjectUsersTable.ForeignKeys[0].RefTable = ProjectsTable
	SdkKeysTable.ForeignKeys[0].RefTable = EnvironmentsTable
	SdkKeysTable.ForeignKeys[1].RefTable = ProjectsTable
	WorkspaceMembersTable.ForeignKeys[0].RefTable = WorkspacesTable
	AdminAPIKeyProjectsTable.ForeignKeys[0].RefTable = AdminAPIKeysTable
	AdminAPIKeyProjectsTable.ForeignKeys[1].RefTable = ProjectsTable
}
