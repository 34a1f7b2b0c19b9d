// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/adminapikeyscope"
	"replane.io/replane/ent/auditlog"
	"replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configproposal"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/configvariantversion"
	"replane.io/replane/ent/configversion"
	"replane.io/replane/ent/environment"
	"replane.io/replane/ent/project"
	"replane.io/replane/ent/projectuser"
	"replane.io/replane/ent/schema"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/ent/workspace"
	"replane.io/replane/ent/workspacemember"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminapikeyMixin := schema.AdminApiKey{}.Mixin()
	adminapikeyMixinFields0 := adminapikeyMixin[0].Fields()
	_ = adminapikeyMixinFields0
	adminapikeyFields := schema.AdminApiKey{}.Fields()
	_ = adminapikeyFields
	// adminapikeyDescCreatedAt is the schema descriptor for created_at field.
	adminapikeyDescCreatedAt := adminapikeyMixinFields0[0].Descriptor()
	// adminapikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminapikey.DefaultCreatedAt = adminapikeyDescCreatedAt.Default.(func() time.Time)
	// adminapikeyDescUpdatedAt is the schema descriptor for updated_at field.
	adminapikeyDescUpdatedAt := adminapikeyMixinFields0[1].Descriptor()
	// adminapikey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adminapikey.DefaultUpdatedAt = adminapikeyDescUpdatedAt.Default.(func() time.Time)
	// adminapikey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adminapikey.UpdateDefaultUpdatedAt = adminapikeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// adminapikeyDescWorkspaceID is the schema descriptor for workspace_id field.
	adminapikeyDescWorkspaceID := adminapikeyFields[1].Descriptor()
	// adminapikey.WorkspaceIDValidator is a validator for the "workspace_id" field. It is called by the builders before save.
	adminapikey.WorkspaceIDValidator = adminapikeyDescWorkspaceID.Validators[0].(func(string) error)
	// adminapikeyDescName is the schema descriptor for name field.
	adminapikeyDescName := adminapikeyFields[2].Descriptor()
	// adminapikey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	adminapikey.NameValidator = adminapikeyDescName.Validators[0].(func(string) error)
	// adminapikeyDescKeyHash is the schema descriptor for key_hash field.
	adminapikeyDescKeyHash := adminapikeyFields[4].Descriptor()
	// adminapikey.KeyHashValidator is a validator for the "key_hash" field. It is called by the builders before save.
	adminapikey.KeyHashValidator = adminapikeyDescKeyHash.Validators[0].(func(string) error)
	// adminapikeyDescKeyPrefix is the schema descriptor for key_prefix field.
	adminapikeyDescKeyPrefix := adminapikeyFields[5].Descriptor()
	// adminapikey.KeyPrefixValidator is a validator for the "key_prefix" field. It is called by the builders before save.
	adminapikey.KeyPrefixValidator = adminapikeyDescKeyPrefix.Validators[0].(func(string) error)
	// adminapikeyDescKeySuffix is the schema descriptor for key_suffix field.
	adminapikeyDescKeySuffix := adminapikeyFields[6].Descriptor()
	// adminapikey.KeySuffixValidator is a validator for the "key_suffix" field. It is called by the builders before save.
	adminapikey.KeySuffixValidator = adminapikeyDescKeySuffix.Validators[0].(func(string) error)
	// adminapikeyDescAllProjects is the schema descriptor for all_projects field.
	adminapikeyDescAllProjects := adminapikeyFields[7].Descriptor()
	// adminapikey.DefaultAllProjects holds the default value on creation for the all_projects field.
	adminapikey.DefaultAllProjects = adminapikeyDescAllProjects.Default.(bool)
	// adminapikeyDescCreatedBy is the schema descriptor for created_by field.
	adminapikeyDescCreatedBy := adminapikeyFields[8].Descriptor()
	// adminapikey.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	adminapikey.CreatedByValidator = adminapikeyDescCreatedBy.Validators[0].(func(string) error)
	adminapikeyscopeMixin := schema.AdminApiKeyScope{}.Mixin()
	adminapikeyscopeMixinFields0 := adminapikeyscopeMixin[0].Fields()
	_ = adminapikeyscopeMixinFields0
	adminapikeyscopeFields := schema.AdminApiKeyScope{}.Fields()
	_ = adminapikeyscopeFields
	// adminapikeyscopeDescCreatedAt is the schema descriptor for created_at field.
	adminapikeyscopeDescCreatedAt := adminapikeyscopeMixinFields0[0].Descriptor()
	// adminapikeyscope.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminapikeyscope.DefaultCreatedAt = adminapikeyscopeDescCreatedAt.Default.(func() time.Time)
	// adminapikeyscopeDescKeyID is the schema descriptor for key_id field.
	adminapikeyscopeDescKeyID := adminapikeyscopeFields[1].Descriptor()
	// adminapikeyscope.KeyIDValidator is a validator for the "key_id" field. It is called by the builders before save.
	adminapikeyscope.KeyIDValidator = adminapikeyscopeDescKeyID.Validators[0].(func(string) error)
	// adminapikeyscopeDescScope is the schema descriptor for scope field.
	adminapikeyscopeDescScope := adminapikeyscopeFields[2].Descriptor()
	// adminapikeyscope.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	adminapikeyscope.ScopeValidator = adminapikeyscopeDescScope.Validators[0].(func(string) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[2].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	configitemMixin := schema.ConfigItem{}.Mixin()
	configitemMixinFields0 := configitemMixin[0].Fields()
	_ = configitemMixinFields0
	configitemFields := schema.ConfigItem{}.Fields()
	_ = configitemFields
	// configitemDescCreatedAt is the schema descriptor for created_at field.
	configitemDescCreatedAt := configitemMixinFields0[0].Descriptor()
	// configitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	configitem.DefaultCreatedAt = configitemDescCreatedAt.Default.(func() time.Time)
	// configitemDescUpdatedAt is the schema descriptor for updated_at field.
	configitemDescUpdatedAt := configitemMixinFields0[1].Descriptor()
	// configitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configitem.DefaultUpdatedAt = configitemDescUpdatedAt.Default.(func() time.Time)
	// configitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	configitem.UpdateDefaultUpdatedAt = configitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// configitemDescProjectID is the schema descriptor for project_id field.
	configitemDescProjectID := configitemFields[1].Descriptor()
	// configitem.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	configitem.ProjectIDValidator = configitemDescProjectID.Validators[0].(func(string) error)
	// configitemDescName is the schema descriptor for name field.
	configitemDescName := configitemFields[2].Descriptor()
	// configitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	configitem.NameValidator = configitemDescName.Validators[0].(func(string) error)
	// configitemDescVersion is the schema descriptor for version field.
	configitemDescVersion := configitemFields[4].Descriptor()
	// configitem.DefaultVersion holds the default value on creation for the version field.
	configitem.DefaultVersion = configitemDescVersion.Default.(int)
	// configitem.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	configitem.VersionValidator = configitemDescVersion.Validators[0].(func(int) error)
	// configitemDescCreatedBy is the schema descriptor for created_by field.
	configitemDescCreatedBy := configitemFields[8].Descriptor()
	// configitem.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	configitem.CreatedByValidator = configitemDescCreatedBy.Validators[0].(func(string) error)
	configproposalMixin := schema.ConfigProposal{}.Mixin()
	configproposalMixinFields0 := configproposalMixin[0].Fields()
	_ = configproposalMixinFields0
	configproposalFields := schema.ConfigProposal{}.Fields()
	_ = configproposalFields
	// configproposalDescCreatedAt is the schema descriptor for created_at field.
	configproposalDescCreatedAt := configproposalMixinFields0[0].Descriptor()
	// configproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	configproposal.DefaultCreatedAt = configproposalDescCreatedAt.Default.(func() time.Time)
	// configproposalDescUpdatedAt is the schema descriptor for updated_at field.
	configproposalDescUpdatedAt := configproposalMixinFields0[1].Descriptor()
	// configproposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configproposal.DefaultUpdatedAt = configproposalDescUpdatedAt.Default.(func() time.Time)
	// configproposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	configproposal.UpdateDefaultUpdatedAt = configproposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// configproposalDescConfigID is the schema descriptor for config_id field.
	configproposalDescConfigID := configproposalFields[1].Descriptor()
	// configproposal.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	configproposal.ConfigIDValidator = configproposalDescConfigID.Validators[0].(func(string) error)
	// configproposalDescAuthor is the schema descriptor for author field.
	configproposalDescAuthor := configproposalFields[2].Descriptor()
	// configproposal.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	configproposal.AuthorValidator = configproposalDescAuthor.Validators[0].(func(string) error)
	// configproposalDescBaseVersion is the schema descriptor for base_version field.
	configproposalDescBaseVersion := configproposalFields[5].Descriptor()
	// configproposal.BaseVersionValidator is a validator for the "base_version" field. It is called by the builders before save.
	configproposal.BaseVersionValidator = configproposalDescBaseVersion.Validators[0].(func(int) error)
	// configproposalDescIsDelete is the schema descriptor for is_delete field.
	configproposalDescIsDelete := configproposalFields[6].Descriptor()
	// configproposal.DefaultIsDelete holds the default value on creation for the is_delete field.
	configproposal.DefaultIsDelete = configproposalDescIsDelete.Default.(bool)
	configuserMixin := schema.ConfigUser{}.Mixin()
	configuserMixinFields0 := configuserMixin[0].Fields()
	_ = configuserMixinFields0
	configuserFields := schema.ConfigUser{}.Fields()
	_ = configuserFields
	// configuserDescCreatedAt is the schema descriptor for created_at field.
	configuserDescCreatedAt := configuserMixinFields0[0].Descriptor()
	// configuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	configuser.DefaultCreatedAt = configuserDescCreatedAt.Default.(func() time.Time)
	// configuserDescUpdatedAt is the schema descriptor for updated_at field.
	configuserDescUpdatedAt := configuserMixinFields0[1].Descriptor()
	// configuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configuser.DefaultUpdatedAt = configuserDescUpdatedAt.Default.(func() time.Time)
	// configuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	configuser.UpdateDefaultUpdatedAt = configuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	// configuserDescConfigID is the schema descriptor for config_id field.
	configuserDescConfigID := configuserFields[1].Descriptor()
	// configuser.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	configuser.ConfigIDValidator = configuserDescConfigID.Validators[0].(func(string) error)
	// configuserDescEmail is the schema descriptor for email field.
	configuserDescEmail := configuserFields[2].Descriptor()
	// configuser.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	configuser.EmailValidator = configuserDescEmail.Validators[0].(func(string) error)
	configvariantMixin := schema.ConfigVariant{}.Mixin()
	configvariantMixinFields0 := configvariantMixin[0].Fields()
	_ = configvariantMixinFields0
	configvariantFields := schema.ConfigVariant{}.Fields()
	_ = configvariantFields
	// configvariantDescCreatedAt is the schema descriptor for created_at field.
	configvariantDescCreatedAt := configvariantMixinFields0[0].Descriptor()
	// configvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	configvariant.DefaultCreatedAt = configvariantDescCreatedAt.Default.(func() time.Time)
	// configvariantDescUpdatedAt is the schema descriptor for updated_at field.
	configvariantDescUpdatedAt := configvariantMixinFields0[1].Descriptor()
	// configvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configvariant.DefaultUpdatedAt = configvariantDescUpdatedAt.Default.(func() time.Time)
	// configvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	configvariant.UpdateDefaultUpdatedAt = configvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// configvariantDescConfigID is the schema descriptor for config_id field.
	configvariantDescConfigID := configvariantFields[1].Descriptor()
	// configvariant.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	configvariant.ConfigIDValidator = configvariantDescConfigID.Validators[0].(func(string) error)
	// configvariantDescEnvironmentID is the schema descriptor for environment_id field.
	configvariantDescEnvironmentID := configvariantFields[2].Descriptor()
	// configvariant.EnvironmentIDValidator is a validator for the "environment_id" field. It is called by the builders before save.
	configvariant.EnvironmentIDValidator = configvariantDescEnvironmentID.Validators[0].(func(string) error)
	// configvariantDescVersion is the schema descriptor for version field.
	configvariantDescVersion := configvariantFields[3].Descriptor()
	// configvariant.DefaultVersion holds the default value on creation for the version field.
	configvariant.DefaultVersion = configvariantDescVersion.Default.(int)
	// configvariant.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	configvariant.VersionValidator = configvariantDescVersion.Validators[0].(func(int) error)
	// configvariantDescUseBaseSchema is the schema descriptor for use_base_schema field.
	configvariantDescUseBaseSchema := configvariantFields[6].Descriptor()
	// configvariant.DefaultUseBaseSchema holds the default value on creation for the use_base_schema field.
	configvariant.DefaultUseBaseSchema = configvariantDescUseBaseSchema.Default.(bool)
	configvariantversionMixin := schema.ConfigVariantVersion{}.Mixin()
	configvariantversionMixinFields0 := configvariantversionMixin[0].Fields()
	_ = configvariantversionMixinFields0
	configvariantversionFields := schema.ConfigVariantVersion{}.Fields()
	_ = configvariantversionFields
	// configvariantversionDescCreatedAt is the schema descriptor for created_at field.
	configvariantversionDescCreatedAt := configvariantversionMixinFields0[0].Descriptor()
	// configvariantversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	configvariantversion.DefaultCreatedAt = configvariantversionDescCreatedAt.Default.(func() time.Time)
	// configvariantversionDescVariantID is the schema descriptor for variant_id field.
	configvariantversionDescVariantID := configvariantversionFields[1].Descriptor()
	// configvariantversion.VariantIDValidator is a validator for the "variant_id" field. It is called by the builders before save.
	configvariantversion.VariantIDValidator = configvariantversionDescVariantID.Validators[0].(func(string) error)
	// configvariantversionDescConfigID is the schema descriptor for config_id field.
	configvariantversionDescConfigID := configvariantversionFields[2].Descriptor()
	// configvariantversion.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	configvariantversion.ConfigIDValidator = configvariantversionDescConfigID.Validators[0].(func(string) error)
	// configvariantversionDescEnvironmentID is the schema descriptor for environment_id field.
	configvariantversionDescEnvironmentID := configvariantversionFields[3].Descriptor()
	// configvariantversion.EnvironmentIDValidator is a validator for the "environment_id" field. It is called by the builders before save.
	configvariantversion.EnvironmentIDValidator = configvariantversionDescEnvironmentID.Validators[0].(func(string) error)
	// configvariantversionDescVersion is the schema descriptor for version field.
	configvariantversionDescVersion := configvariantversionFields[4].Descriptor()
	// configvariantversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	configvariantversion.VersionValidator = configvariantversionDescVersion.Validators[0].(func(int) error)
	// configvariantversionDescUseBaseSchema is the schema descriptor for use_base_schema field.
	configvariantversionDescUseBaseSchema := configvariantversionFields[7].Descriptor()
	// configvariantversion.DefaultUseBaseSchema holds the default value on creation for the use_base_schema field.
	configvariantversion.DefaultUseBaseSchema = configvariantversionDescUseBaseSchema.Default.(bool)
	// configvariantversionDescCreatedBy is the schema descriptor for created_by field.
	configvariantversionDescCreatedBy := configvariantversionFields[9].Descriptor()
	// configvariantversion.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	configvariantversion.CreatedByValidator = configvariantversionDescCreatedBy.Validators[0].(func(string) error)
	configversionMixin := schema.ConfigVersion{}.Mixin()
	configversionMixinFields0 := configversionMixin[0].Fields()
	_ = configversionMixinFields0
	configversionFields := schema.ConfigVersion{}.Fields()
	_ = configversionFields
	// configversionDescCreatedAt is the schema descriptor for created_at field.
	configversionDescCreatedAt := configversionMixinFields0[0].Descriptor()
	// configversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	configversion.DefaultCreatedAt = configversionDescCreatedAt.Default.(func() time.Time)
	// configversionDescConfigID is the schema descriptor for config_id field.
	configversionDescConfigID := configversionFields[1].Descriptor()
	// configversion.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	configversion.ConfigIDValidator = configversionDescConfigID.Validators[0].(func(string) error)
	// configversionDescVersion is the schema descriptor for version field.
	configversionDescVersion := configversionFields[2].Descriptor()
	// configversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	configversion.VersionValidator = configversionDescVersion.Validators[0].(func(int) error)
	// configversionDescCreatedBy is the schema descriptor for created_by field.
	configversionDescCreatedBy := configversionFields[8].Descriptor()
	// configversion.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	configversion.CreatedByValidator = configversionDescCreatedBy.Validators[0].(func(string) error)
	environmentMixin := schema.Environment{}.Mixin()
	environmentMixinFields0 := environmentMixin[0].Fields()
	_ = environmentMixinFields0
	environmentFields := schema.Environment{}.Fields()
	_ = environmentFields
	// environmentDescCreatedAt is the schema descriptor for created_at field.
	environmentDescCreatedAt := environmentMixinFields0[0].Descriptor()
	// environment.DefaultCreatedAt holds the default value on creation for the created_at field.
	environment.DefaultCreatedAt = environmentDescCreatedAt.Default.(func() time.Time)
	// environmentDescUpdatedAt is the schema descriptor for updated_at field.
	environmentDescUpdatedAt := environmentMixinFields0[1].Descriptor()
	// environment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	environment.DefaultUpdatedAt = environmentDescUpdatedAt.Default.(func() time.Time)
	// environment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	environment.UpdateDefaultUpdatedAt = environmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// environmentDescProjectID is the schema descriptor for project_id field.
	environmentDescProjectID := environmentFields[1].Descriptor()
	// environment.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	environment.ProjectIDValidator = environmentDescProjectID.Validators[0].(func(string) error)
	// environmentDescName is the schema descriptor for name field.
	environmentDescName := environmentFields[2].Descriptor()
	// environment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	environment.NameValidator = environmentDescName.Validators[0].(func(string) error)
	// environmentDescOrder is the schema descriptor for order field.
	environmentDescOrder := environmentFields[3].Descriptor()
	// environment.DefaultOrder holds the default value on creation for the order field.
	environment.DefaultOrder = environmentDescOrder.Default.(int)
	// environmentDescRequireProposals is the schema descriptor for require_proposals field.
	environmentDescRequireProposals := environmentFields[4].Descriptor()
	// environment.DefaultRequireProposals holds the default value on creation for the require_proposals field.
	environment.DefaultRequireProposals = environmentDescRequireProposals.Default.(bool)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields0[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescWorkspaceID is the schema descriptor for workspace_id field.
	projectDescWorkspaceID := projectFields[1].Descriptor()
	// project.WorkspaceIDValidator is a validator for the "workspace_id" field. It is called by the builders before save.
	project.WorkspaceIDValidator = projectDescWorkspaceID.Validators[0].(func(string) error)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[2].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescRequireProposals is the schema descriptor for require_proposals field.
	projectDescRequireProposals := projectFields[4].Descriptor()
	// project.DefaultRequireProposals holds the default value on creation for the require_proposals field.
	project.DefaultRequireProposals = projectDescRequireProposals.Default.(bool)
	// projectDescAllowSelfApprovals is the schema descriptor for allow_self_approvals field.
	projectDescAllowSelfApprovals := projectFields[5].Descriptor()
	// project.DefaultAllowSelfApprovals holds the default value on creation for the allow_self_approvals field.
	project.DefaultAllowSelfApprovals = projectDescAllowSelfApprovals.Default.(bool)
	// projectDescCreatedBy is the schema descriptor for created_by field.
	projectDescCreatedBy := projectFields[6].Descriptor()
	// project.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	project.CreatedByValidator = projectDescCreatedBy.Validators[0].(func(string) error)
	projectuserMixin := schema.ProjectUser{}.Mixin()
	projectuserMixinFields0 := projectuserMixin[0].Fields()
	_ = projectuserMixinFields0
	projectuserFields := schema.ProjectUser{}.Fields()
	_ = projectuserFields
	// projectuserDescCreatedAt is the schema descriptor for created_at field.
	projectuserDescCreatedAt := projectuserMixinFields0[0].Descriptor()
	// projectuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectuser.DefaultCreatedAt = projectuserDescCreatedAt.Default.(func() time.Time)
	// projectuserDescUpdatedAt is the schema descriptor for updated_at field.
	projectuserDescUpdatedAt := projectuserMixinFields0[1].Descriptor()
	// projectuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectuser.DefaultUpdatedAt = projectuserDescUpdatedAt.Default.(func() time.Time)
	// projectuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectuser.UpdateDefaultUpdatedAt = projectuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectuserDescProjectID is the schema descriptor for project_id field.
	projectuserDescProjectID := projectuserFields[1].Descriptor()
	// projectuser.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	projectuser.ProjectIDValidator = projectuserDescProjectID.Validators[0].(func(string) error)
	// projectuserDescEmail is the schema descriptor for email field.
	projectuserDescEmail := projectuserFields[2].Descriptor()
	// projectuser.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	projectuser.EmailValidator = projectuserDescEmail.Validators[0].(func(string) error)
	sdkkeyMixin := schema.SdkKey{}.Mixin()
	sdkkeyMixinFields0 := sdkkeyMixin[0].Fields()
	_ = sdkkeyMixinFields0
	sdkkeyFields := schema.SdkKey{}.Fields()
	_ = sdkkeyFields
	// sdkkeyDescCreatedAt is the schema descriptor for created_at field.
	sdkkeyDescCreatedAt := sdkkeyMixinFields0[0].Descriptor()
	// sdkkey.DefaultCreatedAt holds the default value on creation for the created_at field.
	sdkkey.DefaultCreatedAt = sdkkeyDescCreatedAt.Default.(func() time.Time)
	// sdkkeyDescUpdatedAt is the schema descriptor for updated_at field.
	sdkkeyDescUpdatedAt := sdkkeyMixinFields0[1].Descriptor()
	// sdkkey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sdkkey.DefaultUpdatedAt = sdkkeyDescUpdatedAt.Default.(func() time.Time)
	// sdkkey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sdkkey.UpdateDefaultUpdatedAt = sdkkeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sdkkeyDescProjectID is the schema descriptor for project_id field.
	sdkkeyDescProjectID := sdkkeyFields[1].Descriptor()
	// sdkkey.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	sdkkey.ProjectIDValidator = sdkkeyDescProjectID.Validators[0].(func(string) error)
	// sdkkeyDescEnvironmentID is the schema descriptor for environment_id field.
	sdkkeyDescEnvironmentID := sdkkeyFields[2].Descriptor()
	// sdkkey.EnvironmentIDValidator is a validator for the "environment_id" field. It is called by the builders before save.
	sdkkey.EnvironmentIDValidator = sdkkeyDescEnvironmentID.Validators[0].(func(string) error)
	// sdkkeyDescName is the schema descriptor for name field.
	sdkkeyDescName := sdkkeyFields[3].Descriptor()
	// sdkkey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sdkkey.NameValidator = sdkkeyDescName.Validators[0].(func(string) error)
	// sdkkeyDescKeyHash is the schema descriptor for key_hash field.
	sdkkeyDescKeyHash := sdkkeyFields[5].Descriptor()
	// sdkkey.KeyHashValidator is a validator for the "key_hash" field. It is called by the builders before save.
	sdkkey.KeyHashValidator = sdkkeyDescKeyHash.Validators[0].(func(string) error)
	// sdkkeyDescKeyPrefix is the schema descriptor for key_prefix field.
	sdkkeyDescKeyPrefix := sdkkeyFields[6].Descriptor()
	// sdkkey.KeyPrefixValidator is a validator for the "key_prefix" field. It is called by the builders before save.
	sdkkey.KeyPrefixValidator = sdkkeyDescKeyPrefix.Validators[0].(func(string) error)
	// sdkkeyDescKeySuffix is the schema descriptor for key_suffix field.
	sdkkeyDescKeySuffix := sdkkeyFields[7].Descriptor()
	// sdkkey.KeySuffixValidator is a validator for the "key_suffix" field. It is called by the builders before save.
	sdkkey.KeySuffixValidator = sdkkeyDescKeySuffix.Validators[0].(func(string) error)
	// sdkkeyDescCreatedBy is the schema descriptor for created_by field.
	sdkkeyDescCreatedBy := sdkkeyFields[8].Descriptor()
	// sdkkey.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	sdkkey.CreatedByValidator = sdkkeyDescCreatedBy.Validators[0].(func(string) error)
	workspaceMixin := schema.Workspace{}.Mixin()
	workspaceMixinFields0 := workspaceMixin[0].Fields()
	_ = workspaceMixinFields0
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceMixinFields0[0].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceMixinFields0[1].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[1].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescAutoAddNewUsers is the schema descriptor for auto_add_new_users field.
	workspaceDescAutoAddNewUsers := workspaceFields[2].Descriptor()
	// workspace.DefaultAutoAddNewUsers holds the default value on creation for the auto_add_new_users field.
	workspace.DefaultAutoAddNewUsers = workspaceDescAutoAddNewUsers.Default.(bool)
	workspacememberMixin := schema.WorkspaceMember{}.Mixin()
	workspacememberMixinFields0 := workspacememberMixin[0].Fields()
	_ = workspacememberMixinFields0
	workspacememberFields := schema.WorkspaceMember{}.Fields()
	_ = workspacememberFields
	// workspacememberDescCreatedAt is the schema descriptor for created_at field.
	workspacememberDescCreatedAt := workspacememberMixinFields0[0].Descriptor()
	// workspacemember.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspacemember.DefaultCreatedAt = workspacememberDescCreatedAt.Default.(func() time.Time)
	// workspacememberDescUpdatedAt is the schema descriptor for updated_at field.
	workspacememberDescUpdatedAt := workspacememberMixinFields0[1].Descriptor()
	// workspacemember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspacemember.DefaultUpdatedAt = workspacememberDescUpdatedAt.Default.(func() time.Time)
	// workspacemember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspacemember.UpdateDefaultUpdatedAt = workspacememberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workspacememberDescWorkspaceID is the schema descriptor for workspace_id field.
	workspacememberDescWorkspaceID := workspacememberFields[1].Descriptor()
	// workspacemember.WorkspaceIDValidator is a validator for the "workspace_id" field. It is called by the builders before save.
	workspacemember.WorkspaceIDValidator = workspacememberDescWorkspaceID.Validators[0].(func(string) error)
	// workspacememberDescEmail is the schema descriptor for email field.
	workspacememberDescEmail := workspacememberFields[2].Descriptor()
	// workspacemember.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	workspacemember.EmailValidator = workspacememberDescEmail.Validators[0].(func(string) error)
}
