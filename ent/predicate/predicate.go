// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminApiKey is the predicate function for adminapikey builders.
type AdminApiKey func(*sql.Selector)

// AdminApiKeyScope is the predicate function for adminapikeyscope builders.
type AdminApiKeyScope func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// ConfigItem is the predicate function for configitem builders.
type ConfigItem func(*sql.Selector)

// ConfigProposal is the predicate function for configproposal builders.
type ConfigProposal func(*sql.Selector)

// ConfigUser is the predicate function for configuser builders.
type ConfigUser func(*sql.Selector)

// ConfigVariant is the predicate function for configvariant builders.
type ConfigVariant func(*sql.Selector)

// ConfigVariantVersion is the predicate function for configvariantversion builders.
type ConfigVariantVersion func(*sql.Selector)

// ConfigVersion is the predicate function for configversion builders.
type ConfigVersion func(*sql.Selector)

// Environment is the predicate function for environment builders.
type Environment func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectUser is the predicate function for projectuser builders.
type ProjectUser func(*sql.Selector)

// SdkKey is the predicate function for sdkkey builders.
type SdkKey func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)

// WorkspaceMember is the predicate function for workspacemember builders.
type WorkspaceMember func(*sql.Selector)
