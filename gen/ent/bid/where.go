// Code generated by ent, DO NOT EDIT.

package bid

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldProductID, v))
}

// BidderID applies equality check predicate on the "bidder_id" field. It's identical to BidderIDEQ.
func BidderID(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidderID, v))
}

// BidderName applies equality check predicate on the "bidder_name" field. It's identical to BidderNameEQ.
func BidderName(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidderName, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldAmount, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMessage, v))
}

// IsAccepted applies equality check predicate on the "is_accepted" field. It's identical to IsAcceptedEQ.
func IsAccepted(v bool) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldIsAccepted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldProductID, vs...))
}

// BidderIDEQ applies the EQ predicate on the "bidder_id" field.
func BidderIDEQ(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidderID, v))
}

// BidderIDNEQ applies the NEQ predicate on the "bidder_id" field.
func BidderIDNEQ(v uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidderID, v))
}

// BidderIDIn applies the In predicate on the "bidder_id" field.
func BidderIDIn(vs ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidderID, vs...))
}

// BidderIDNotIn applies the NotIn predicate on the "bidder_id" field.
func BidderIDNotIn(vs ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidderID, vs...))
}

// BidderNameEQ applies the EQ predicate on the "bidder_name" field.
func BidderNameEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidderName, v))
}

// BidderNameNEQ applies the NEQ predicate on the "bidder_name" field.
func BidderNameNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidderName, v))
}

// BidderNameIn applies the In predicate on the "bidder_name" field.
func BidderNameIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidderName, vs...))
}

// BidderNameNotIn applies the NotIn predicate on the "bidder_name" field.
func BidderNameNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidderName, vs...))
}

// BidderNameGT applies the GT predicate on the "bidder_name" field.
func BidderNameGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBidderName, v))
}

// BidderNameGTE applies the GTE predicate on the "bidder_name" field.
func BidderNameGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBidderName, v))
}

// BidderNameLT applies the LT predicate on the "bidder_name" field.
func BidderNameLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBidderName, v))
}

// BidderNameLTE applies the LTE predicate on the "bidder_name" field.
func BidderNameLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBidderName, v))
}

// BidderNameContains applies the Contains predicate on the "bidder_name" field.
func BidderNameContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldBidderName, v))
}

// BidderNameHasPrefix applies the HasPrefix predicate on the "bidder_name" field.
func BidderNameHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldBidderName, v))
}

// BidderNameHasSuffix applies the HasSuffix predicate on the "bidder_name" field.
func BidderNameHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldBidderName, v))
}

// BidderNameEqualFold applies the EqualFold predicate on the "bidder_name" field.
func BidderNameEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldBidderName, v))
}

// BidderNameContainsFold applies the ContainsFold predicate on the "bidder_name" field.
func BidderNameContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldBidderName, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldAmount, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldMessage, v))
}

// IsAcceptedEQ applies the EQ predicate on the "is_accepted" field.
func IsAcceptedEQ(v bool) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldIsAccepted, v))
}

// IsAcceptedNEQ applies the NEQ predicate on the "is_accepted" field.
func IsAcceptedNEQ(v bool) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldIsAccepted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBidder applies the HasEdge predicate on the "bidder" edge.
func HasBidder() predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BidderTable, BidderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBidderWith applies the HasEdge predicate on the "bidder" edge with a given conditions (other predicates).
func HasBidderWith(preds ...predicate.User) predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := newBidderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.NotPredicates(p))
}
