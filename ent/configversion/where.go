// Code generated by ent, DO NOT EDIT.

package configversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"replane.io/replane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldConfigID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldVersion, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldDescription, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldProposalID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContainsFold(FieldConfigID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldVersion, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContainsFold(FieldDescription, v))
}

// SchemaIsNil applies the IsNil predicate on the "schema" field.
func SchemaIsNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIsNull(FieldSchema))
}

// SchemaNotNil applies the NotNil predicate on the "schema" field.
func SchemaNotNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotNull(FieldSchema))
}

// OverridesIsNil applies the IsNil predicate on the "overrides" field.
func OverridesIsNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIsNull(FieldOverrides))
}

// OverridesNotNil applies the NotNil predicate on the "overrides" field.
func OverridesNotNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotNull(FieldOverrides))
}

// MembersIsNil applies the IsNil predicate on the "members" field.
func MembersIsNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIsNull(FieldMembers))
}

// MembersNotNil applies the NotNil predicate on the "members" field.
func MembersNotNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotNull(FieldMembers))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotIn(FieldProposalID, vs...))
}

// ProposalIDGT applies the GT predicate on the "proposal_id" field.
func ProposalIDGT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGT(FieldProposalID, v))
}

// ProposalIDGTE applies the GTE predicate on the "proposal_id" field.
func ProposalIDGTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldGTE(FieldProposalID, v))
}

// ProposalIDLT applies the LT predicate on the "proposal_id" field.
func ProposalIDLT(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLT(FieldProposalID, v))
}

// ProposalIDLTE applies the LTE predicate on the "proposal_id" field.
func ProposalIDLTE(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldLTE(FieldProposalID, v))
}

// ProposalIDContains applies the Contains predicate on the "proposal_id" field.
func ProposalIDContains(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContains(FieldProposalID, v))
}

// ProposalIDHasPrefix applies the HasPrefix predicate on the "proposal_id" field.
func ProposalIDHasPrefix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasPrefix(FieldProposalID, v))
}

// ProposalIDHasSuffix applies the HasSuffix predicate on the "proposal_id" field.
func ProposalIDHasSuffix(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldHasSuffix(FieldProposalID, v))
}

// ProposalIDIsNil applies the IsNil predicate on the "proposal_id" field.
func ProposalIDIsNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldIsNull(FieldProposalID))
}

// ProposalIDNotNil applies the NotNil predicate on the "proposal_id" field.
func ProposalIDNotNil() predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldNotNull(FieldProposalID))
}

// ProposalIDEqualFold applies the EqualFold predicate on the "proposal_id" field.
func ProposalIDEqualFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldEqualFold(FieldProposalID, v))
}

// ProposalIDContainsFold applies the ContainsFold predicate on the "proposal_id" field.
func ProposalIDContainsFold(v string) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.FieldContainsFold(FieldProposalID, v))
}

// HasConfig applies the HasEdge predicate on the "config" edge.
func HasConfig() predicate.ConfigVersion {
	return predicate.ConfigVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConfigTable, ConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConfigWith applies the HasEdge predicate on the "config" edge with a given conditions (other predicates).
func HasConfigWith(preds ...predicate.ConfigItem) predicate.ConfigVersion {
	return predicate.ConfigVersion(func(s *sql.Selector) {
		step := newConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfigVersion) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfigVersion) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfigVersion) predicate.ConfigVersion {
	return predicate.ConfigVersion(sql.NotPredicates(p))
}
