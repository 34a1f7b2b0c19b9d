// Code generated by ent, DO NOT EDIT.

package adminapikeyscope

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"replane.io/replane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldCreatedAt, v))
}

// KeyID applies equality check predicate on the "key_id" field. It's identical to KeyIDEQ.
func KeyID(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldKeyID, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldScope, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLTE(FieldCreatedAt, v))
}

// KeyIDEQ applies the EQ predicate on the "key_id" field.
func KeyIDEQ(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldKeyID, v))
}

// KeyIDNEQ applies the NEQ predicate on the "key_id" field.
func KeyIDNEQ(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNEQ(FieldKeyID, v))
}

// KeyIDIn applies the In predicate on the "key_id" field.
func KeyIDIn(vs ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldIn(FieldKeyID, vs...))
}

// KeyIDNotIn applies the NotIn predicate on the "key_id" field.
func KeyIDNotIn(vs ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNotIn(FieldKeyID, vs...))
}

// KeyIDGT applies the GT predicate on the "key_id" field.
func KeyIDGT(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGT(FieldKeyID, v))
}

// KeyIDGTE applies the GTE predicate on the "key_id" field.
func KeyIDGTE(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGTE(FieldKeyID, v))
}

// KeyIDLT applies the LT predicate on the "key_id" field.
func KeyIDLT(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLT(FieldKeyID, v))
}

// KeyIDLTE applies the LTE predicate on the "key_id" field.
func KeyIDLTE(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLTE(FieldKeyID, v))
}

// KeyIDContains applies the Contains predicate on the "key_id" field.
func KeyIDContains(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldContains(FieldKeyID, v))
}

// KeyIDHasPrefix applies the HasPrefix predicate on the "key_id" field.
func KeyIDHasPrefix(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldHasPrefix(FieldKeyID, v))
}

// KeyIDHasSuffix applies the HasSuffix predicate on the "key_id" field.
func KeyIDHasSuffix(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldHasSuffix(FieldKeyID, v))
}

// KeyIDEqualFold applies the EqualFold predicate on the "key_id" field.
func KeyIDEqualFold(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEqualFold(FieldKeyID, v))
}

// KeyIDContainsFold applies the ContainsFold predicate on the "key_id" field.
func KeyIDContainsFold(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldContainsFold(FieldKeyID, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.FieldContainsFold(FieldScope, v))
}

// HasKey applies the HasEdge predicate on the "key" edge.
func HasKey() predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, KeyTable, KeyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKeyWith applies the HasEdge predicate on the "key" edge with a given conditions (other predicates).
func HasKeyWith(preds ...predicate.AdminApiKey) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(func(s *sql.Selector) {
		step := newKeyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdminApiKeyScope) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdminApiKeyScope) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdminApiKeyScope) predicate.AdminApiKeyScope {
	return predicate.AdminApiKeyScope(sql.NotPredicates(p))
}
