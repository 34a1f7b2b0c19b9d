// Code generated by ent, DO NOT EDIT.

package configproposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"replane.io/replane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldConfigID, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldAuthor, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldMessage, v))
}

// BaseVersion applies equality check predicate on the "base_version" field. It's identical to BaseVersionEQ.
func BaseVersion(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldBaseVersion, v))
}

// IsDelete applies equality check predicate on the "is_delete" field. It's identical to IsDeleteEQ.
func IsDelete(v bool) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldIsDelete, v))
}

// Reviewer applies equality check predicate on the "reviewer" field. It's identical to ReviewerEQ.
func Reviewer(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldReviewer, v))
}

// RejectedInFavorOf applies equality check predicate on the "rejected_in_favor_of" field. It's identical to RejectedInFavorOfEQ.
func RejectedInFavorOf(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldRejectedInFavorOf, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldConfigID, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldAuthor, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldMessage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldStatus, vs...))
}

// BaseVersionEQ applies the EQ predicate on the "base_version" field.
func BaseVersionEQ(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldBaseVersion, v))
}

// BaseVersionNEQ applies the NEQ predicate on the "base_version" field.
func BaseVersionNEQ(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldBaseVersion, v))
}

// BaseVersionIn applies the In predicate on the "base_version" field.
func BaseVersionIn(vs ...int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldBaseVersion, vs...))
}

// BaseVersionNotIn applies the NotIn predicate on the "base_version" field.
func BaseVersionNotIn(vs ...int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldBaseVersion, vs...))
}

// BaseVersionGT applies the GT predicate on the "base_version" field.
func BaseVersionGT(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldBaseVersion, v))
}

// BaseVersionGTE applies the GTE predicate on the "base_version" field.
func BaseVersionGTE(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldBaseVersion, v))
}

// BaseVersionLT applies the LT predicate on the "base_version" field.
func BaseVersionLT(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldBaseVersion, v))
}

// BaseVersionLTE applies the LTE predicate on the "base_version" field.
func BaseVersionLTE(v int) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldBaseVersion, v))
}

// IsDeleteEQ applies the EQ predicate on the "is_delete" field.
func IsDeleteEQ(v bool) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldIsDelete, v))
}

// IsDeleteNEQ applies the NEQ predicate on the "is_delete" field.
func IsDeleteNEQ(v bool) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldIsDelete, v))
}

// OriginalIsNil applies the IsNil predicate on the "original" field.
func OriginalIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldOriginal))
}

// OriginalNotNil applies the NotNil predicate on the "original" field.
func OriginalNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldOriginal))
}

// ProposedIsNil applies the IsNil predicate on the "proposed" field.
func ProposedIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldProposed))
}

// ProposedNotNil applies the NotNil predicate on the "proposed" field.
func ProposedNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldProposed))
}

// VariantsIsNil applies the IsNil predicate on the "variants" field.
func VariantsIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldVariants))
}

// VariantsNotNil applies the NotNil predicate on the "variants" field.
func VariantsNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldVariants))
}

// ReviewerEQ applies the EQ predicate on the "reviewer" field.
func ReviewerEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldReviewer, v))
}

// ReviewerNEQ applies the NEQ predicate on the "reviewer" field.
func ReviewerNEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldReviewer, v))
}

// ReviewerIn applies the In predicate on the "reviewer" field.
func ReviewerIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldReviewer, vs...))
}

// ReviewerNotIn applies the NotIn predicate on the "reviewer" field.
func ReviewerNotIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldReviewer, vs...))
}

// ReviewerGT applies the GT predicate on the "reviewer" field.
func ReviewerGT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldReviewer, v))
}

// ReviewerGTE applies the GTE predicate on the "reviewer" field.
func ReviewerGTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldReviewer, v))
}

// ReviewerLT applies the LT predicate on the "reviewer" field.
func ReviewerLT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldReviewer, v))
}

// ReviewerLTE applies the LTE predicate on the "reviewer" field.
func ReviewerLTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldReviewer, v))
}

// ReviewerContains applies the Contains predicate on the "reviewer" field.
func ReviewerContains(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContains(FieldReviewer, v))
}

// ReviewerHasPrefix applies the HasPrefix predicate on the "reviewer" field.
func ReviewerHasPrefix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasPrefix(FieldReviewer, v))
}

// ReviewerHasSuffix applies the HasSuffix predicate on the "reviewer" field.
func ReviewerHasSuffix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasSuffix(FieldReviewer, v))
}

// ReviewerIsNil applies the IsNil predicate on the "reviewer" field.
func ReviewerIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldReviewer))
}

// ReviewerNotNil applies the NotNil predicate on the "reviewer" field.
func ReviewerNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldReviewer))
}

// ReviewerEqualFold applies the EqualFold predicate on the "reviewer" field.
func ReviewerEqualFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldReviewer, v))
}

// ReviewerContainsFold applies the ContainsFold predicate on the "reviewer" field.
func ReviewerContainsFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldReviewer, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v RejectionReason) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v RejectionReason) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...RejectionReason) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...RejectionReason) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldRejectionReason))
}

// RejectedInFavorOfEQ applies the EQ predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfNEQ applies the NEQ predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfNEQ(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfIn applies the In predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldRejectedInFavorOf, vs...))
}

// RejectedInFavorOfNotIn applies the NotIn predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfNotIn(vs ...string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldRejectedInFavorOf, vs...))
}

// RejectedInFavorOfGT applies the GT predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfGT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfGTE applies the GTE predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfGTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfLT applies the LT predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfLT(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfLTE applies the LTE predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfLTE(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfContains applies the Contains predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfContains(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContains(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfHasPrefix applies the HasPrefix predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfHasPrefix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasPrefix(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfHasSuffix applies the HasSuffix predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfHasSuffix(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldHasSuffix(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfIsNil applies the IsNil predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldRejectedInFavorOf))
}

// RejectedInFavorOfNotNil applies the NotNil predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldRejectedInFavorOf))
}

// RejectedInFavorOfEqualFold applies the EqualFold predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfEqualFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEqualFold(FieldRejectedInFavorOf, v))
}

// RejectedInFavorOfContainsFold applies the ContainsFold predicate on the "rejected_in_favor_of" field.
func RejectedInFavorOfContainsFold(v string) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldContainsFold(FieldRejectedInFavorOf, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.FieldNotNull(FieldResolvedAt))
}

// HasConfig applies the HasEdge predicate on the "config" edge.
func HasConfig() predicate.ConfigProposal {
	return predicate.ConfigProposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConfigWith applies the HasEdge predicate on the "config" edge with a given conditions (other predicates).
func HasConfigWith(preds ...predicate.ConfigItem) predicate.ConfigProposal {
	return predicate.ConfigProposal(func(s *sql.Selector) {
		step := newConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfigProposal) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfigProposal) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfigProposal) predicate.ConfigProposal {
	return predicate.ConfigProposal(sql.NotPredicates(p))
}
