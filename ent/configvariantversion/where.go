// Code generated by ent, DO NOT EDIT.

package configvariantversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"replane.io/replane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldVariantID, v))
}

// ConfigID applies equality check predicate on the "config_id" field. It's identical to ConfigIDEQ.
func ConfigID(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldConfigID, v))
}

// EnvironmentID applies equality check predicate on the "environment_id" field. It's identical to EnvironmentIDEQ.
func EnvironmentID(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldEnvironmentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldVersion, v))
}

// UseBaseSchema applies equality check predicate on the "use_base_schema" field. It's identical to UseBaseSchemaEQ.
func UseBaseSchema(v bool) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldUseBaseSchema, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldProposalID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldVariantID, vs...))
}

// VariantIDGT applies the GT predicate on the "variant_id" field.
func VariantIDGT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldVariantID, v))
}

// VariantIDGTE applies the GTE predicate on the "variant_id" field.
func VariantIDGTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldVariantID, v))
}

// VariantIDLT applies the LT predicate on the "variant_id" field.
func VariantIDLT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldVariantID, v))
}

// VariantIDLTE applies the LTE predicate on the "variant_id" field.
func VariantIDLTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldVariantID, v))
}

// VariantIDContains applies the Contains predicate on the "variant_id" field.
func VariantIDContains(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContains(FieldVariantID, v))
}

// VariantIDHasPrefix applies the HasPrefix predicate on the "variant_id" field.
func VariantIDHasPrefix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasPrefix(FieldVariantID, v))
}

// VariantIDHasSuffix applies the HasSuffix predicate on the "variant_id" field.
func VariantIDHasSuffix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasSuffix(FieldVariantID, v))
}

// VariantIDEqualFold applies the EqualFold predicate on the "variant_id" field.
func VariantIDEqualFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldVariantID, v))
}

// VariantIDContainsFold applies the ContainsFold predicate on the "variant_id" field.
func VariantIDContainsFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldVariantID, v))
}

// ConfigIDEQ applies the EQ predicate on the "config_id" field.
func ConfigIDEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldConfigID, v))
}

// ConfigIDNEQ applies the NEQ predicate on the "config_id" field.
func ConfigIDNEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldConfigID, v))
}

// ConfigIDIn applies the In predicate on the "config_id" field.
func ConfigIDIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldConfigID, vs...))
}

// ConfigIDNotIn applies the NotIn predicate on the "config_id" field.
func ConfigIDNotIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldConfigID, vs...))
}

// ConfigIDGT applies the GT predicate on the "config_id" field.
func ConfigIDGT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldConfigID, v))
}

// ConfigIDGTE applies the GTE predicate on the "config_id" field.
func ConfigIDGTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldConfigID, v))
}

// ConfigIDLT applies the LT predicate on the "config_id" field.
func ConfigIDLT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldConfigID, v))
}

// ConfigIDLTE applies the LTE predicate on the "config_id" field.
func ConfigIDLTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldConfigID, v))
}

// ConfigIDContains applies the Contains predicate on the "config_id" field.
func ConfigIDContains(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContains(FieldConfigID, v))
}

// ConfigIDHasPrefix applies the HasPrefix predicate on the "config_id" field.
func ConfigIDHasPrefix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasPrefix(FieldConfigID, v))
}

// ConfigIDHasSuffix applies the HasSuffix predicate on the "config_id" field.
func ConfigIDHasSuffix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasSuffix(FieldConfigID, v))
}

// ConfigIDEqualFold applies the EqualFold predicate on the "config_id" field.
func ConfigIDEqualFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldConfigID, v))
}

// ConfigIDContainsFold applies the ContainsFold predicate on the "config_id" field.
func ConfigIDContainsFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldConfigID, v))
}

// EnvironmentIDEQ applies the EQ predicate on the "environment_id" field.
func EnvironmentIDEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldEnvironmentID, v))
}

// EnvironmentIDNEQ applies the NEQ predicate on the "environment_id" field.
func EnvironmentIDNEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldEnvironmentID, v))
}

// EnvironmentIDIn applies the In predicate on the "environment_id" field.
func EnvironmentIDIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldEnvironmentID, vs...))
}

// EnvironmentIDNotIn applies the NotIn predicate on the "environment_id" field.
func EnvironmentIDNotIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldEnvironmentID, vs...))
}

// EnvironmentIDGT applies the GT predicate on the "environment_id" field.
func EnvironmentIDGT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldEnvironmentID, v))
}

// EnvironmentIDGTE applies the GTE predicate on the "environment_id" field.
func EnvironmentIDGTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldEnvironmentID, v))
}

// EnvironmentIDLT applies the LT predicate on the "environment_id" field.
func EnvironmentIDLT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldEnvironmentID, v))
}

// EnvironmentIDLTE applies the LTE predicate on the "environment_id" field.
func EnvironmentIDLTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldEnvironmentID, v))
}

// EnvironmentIDContains applies the Contains predicate on the "environment_id" field.
func EnvironmentIDContains(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContains(FieldEnvironmentID, v))
}

// EnvironmentIDHasPrefix applies the HasPrefix predicate on the "environment_id" field.
func EnvironmentIDHasPrefix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasPrefix(FieldEnvironmentID, v))
}

// EnvironmentIDHasSuffix applies the HasSuffix predicate on the "environment_id" field.
func EnvironmentIDHasSuffix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasSuffix(FieldEnvironmentID, v))
}

// EnvironmentIDEqualFold applies the EqualFold predicate on the "environment_id" field.
func EnvironmentIDEqualFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldEnvironmentID, v))
}

// EnvironmentIDContainsFold applies the ContainsFold predicate on the "environment_id" field.
func EnvironmentIDContainsFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldEnvironmentID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldVersion, v))
}

// SchemaIsNil applies the IsNil predicate on the "schema" field.
func SchemaIsNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIsNull(FieldSchema))
}

// SchemaNotNil applies the NotNil predicate on the "schema" field.
func SchemaNotNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotNull(FieldSchema))
}

// UseBaseSchemaEQ applies the EQ predicate on the "use_base_schema" field.
func UseBaseSchemaEQ(v bool) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldUseBaseSchema, v))
}

// UseBaseSchemaNEQ applies the NEQ predicate on the "use_base_schema" field.
func UseBaseSchemaNEQ(v bool) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldUseBaseSchema, v))
}

// OverridesIsNil applies the IsNil predicate on the "overrides" field.
func OverridesIsNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIsNull(FieldOverrides))
}

// OverridesNotNil applies the NotNil predicate on the "overrides" field.
func OverridesNotNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotNull(FieldOverrides))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotIn(FieldProposalID, vs...))
}

// ProposalIDGT applies the GT predicate on the "proposal_id" field.
func ProposalIDGT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGT(FieldProposalID, v))
}

// ProposalIDGTE applies the GTE predicate on the "proposal_id" field.
func ProposalIDGTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldGTE(FieldProposalID, v))
}

// ProposalIDLT applies the LT predicate on the "proposal_id" field.
func ProposalIDLT(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLT(FieldProposalID, v))
}

// ProposalIDLTE applies the LTE predicate on the "proposal_id" field.
func ProposalIDLTE(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldLTE(FieldProposalID, v))
}

// ProposalIDContains applies the Contains predicate on the "proposal_id" field.
func ProposalIDContains(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContains(FieldProposalID, v))
}

// ProposalIDHasPrefix applies the HasPrefix predicate on the "proposal_id" field.
func ProposalIDHasPrefix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasPrefix(FieldProposalID, v))
}

// ProposalIDHasSuffix applies the HasSuffix predicate on the "proposal_id" field.
func ProposalIDHasSuffix(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldHasSuffix(FieldProposalID, v))
}

// ProposalIDIsNil applies the IsNil predicate on the "proposal_id" field.
func ProposalIDIsNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldIsNull(FieldProposalID))
}

// ProposalIDNotNil applies the NotNil predicate on the "proposal_id" field.
func ProposalIDNotNil() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldNotNull(FieldProposalID))
}

// ProposalIDEqualFold applies the EqualFold predicate on the "proposal_id" field.
func ProposalIDEqualFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldEqualFold(FieldProposalID, v))
}

// ProposalIDContainsFold applies the ContainsFold predicate on the "proposal_id" field.
func ProposalIDContainsFold(v string) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.FieldContainsFold(FieldProposalID, v))
}

// HasVariant applies the HasEdge predicate on the "variant" edge.
func HasVariant() predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VariantTable, VariantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantWith applies the HasEdge predicate on the "variant" edge with a given conditions (other predicates).
func HasVariantWith(preds ...predicate.ConfigVariant) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(func(s *sql.Selector) {
		step := newVariantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfigVariantVersion) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfigVariantVersion) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfigVariantVersion) predicate.ConfigVariantVersion {
	return predicate.ConfigVariantVersion(sql.NotPredicates(p))
}
