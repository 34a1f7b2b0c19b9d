// Code generated by ent, DO NOT EDIT.

package configproposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the configproposal type in the database.
	Label = "config_proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldConfigID holds the string denoting the config_id field in the database.
	FieldConfigID = "config_id"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBaseVersion holds the string denoting the base_version field in the database.
	FieldBaseVersion = "base_version"
	// FieldIsDelete holds the string denoting the is_delete field in the database.
	FieldIsDelete = "is_delete"
	// FieldOriginal holds the string denoting the original field in the database.
	FieldOriginal = "original"
	// FieldProposed holds the string denoting the proposed field in the database.
	FieldProposed = "proposed"
	// FieldVariants holds the string denoting the variants field in the database.
	FieldVariants = "variants"
	// FieldReviewer holds the string denoting the reviewer field in the database.
	FieldReviewer = "reviewer"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldRejectedInFavorOf holds the string denoting the rejected_in_favor_of field in the database.
	FieldRejectedInFavorOf = "rejected_in_favor_of"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeConfig holds the string denoting the config edge name in mutations.
	EdgeConfig = "config"
	// Table holds the table name of the configproposal in the database.
	Table = "config_proposals"
	// ConfigTable is the table that holds the config relation/edge.
	ConfigTable = "config_proposals"
	// ConfigInverseTable is the table name for the ConfigItem entity.
	// It exists in this package in order to avoid circular dependency with the "configitem" package.
	ConfigInverseTable = "configs"
	// ConfigColumn is the table column denoting the config relation/edge.
	ConfigColumn = "config_id"
)

// Columns holds all SQL columns for configproposal fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldConfigID,
	FieldAuthor,
	FieldMessage,
	FieldStatus,
	FieldBaseVersion,
	FieldIsDelete,
	FieldOriginal,
	FieldProposed,
	FieldVariants,
	FieldReviewer,
	FieldRejectionReason,
	FieldRejectedInFavorOf,
	FieldResolvedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	ConfigIDValidator func(string) error
	// AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	AuthorValidator func(string) error
	// BaseVersionValidator is a validator for the "base_version" field. It is called by the builders before save.
	BaseVersionValidator func(int) error
	// DefaultIsDelete holds the default value on creation for the "is_delete" field.
	DefaultIsDelete bool
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("configproposal: invalid enum value for status field: %q", s)
	}
}

// RejectionReason defines the type for the "rejection_reason" enum field.
type RejectionReason string

// RejectionReason values.
const (
	RejectionReasonRejectedExplicitly      RejectionReason = "rejected_explicitly"
	RejectionReasonRejectedByConfigEdit    RejectionReason = "rejected_by_config_edit"
	RejectionReasonRejectedByOtherApproval RejectionReason = "rejected_by_other_approval"
)

func (rr RejectionReason) String() string {
	return string(rr)
}

// RejectionReasonValidator is a validator for the "rejection_reason" field enum values. It is called by the builders before save.
func RejectionReasonValidator(rr RejectionReason) error {
	switch rr {
	case RejectionReasonRejectedExplicitly, RejectionReasonRejectedByConfigEdit, RejectionReasonRejectedByOtherApproval:
		return nil
	default:
		return fmt.Errorf("configproposal: invalid enum value for rejection_reason field: %q", rr)
	}
}

// OrderOption defines the ordering options for the ConfigProposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConfigID orders the results by the config_id field.
func ByConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigID, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBaseVersion orders the results by the base_version field.
func ByBaseVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseVersion, opts...).ToFunc()
}

// ByIsDelete orders the results by the is_delete field.
func ByIsDelete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDelete, opts...).ToFunc()
}

// ByReviewer orders the results by the reviewer field.
func ByReviewer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewer, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByRejectedInFavorOf orders the results by the rejected_in_favor_of field.
func ByRejectedInFavorOf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedInFavorOf, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByConfigField orders the results by config field.
func ByConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConfigStep(), sql.OrderByField(field, opts...))
	}
}
func newConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConfigInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
	)
}
