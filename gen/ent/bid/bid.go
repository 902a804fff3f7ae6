// Code generated by ent, DO NOT EDIT.

package bid

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bid type in the database.
	Label = "bid"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProductID holds the string denoting the product_id field in the database.
	FieldProductID = "product_id"
	// FieldBidderID holds the string denoting the bidder_id field in the database.
	FieldBidderID = "bidder_id"
	// FieldBidderName holds the string denoting the bidder_name field in the database.
	FieldBidderName = "bidder_name"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldIsAccepted holds the string denoting the is_accepted field in the database.
	FieldIsAccepted = "is_accepted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProduct holds the string denoting the product edge name in mutations.
	EdgeProduct = "product"
	// EdgeBidder holds the string denoting the bidder edge name in mutations.
	EdgeBidder = "bidder"
	// Table holds the table name of the bid in the database.
	Table = "bids"
	// ProductTable is the table that holds the product relation/edge.
	ProductTable = "bids"
	// ProductInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	ProductInverseTable = "products"
	// ProductColumn is the table column denoting the product relation/edge.
	ProductColumn = "product_id"
	// BidderTable is the table that holds the bidder relation/edge.
	BidderTable = "bids"
	// BidderInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	BidderInverseTable = "users"
	// BidderColumn is the table column denoting the bidder relation/edge.
	BidderColumn = "bidder_id"
)

// Columns holds all SQL columns for bid fields.
var Columns = []string{
	FieldID,
	FieldProductID,
	FieldBidderID,
	FieldBidderName,
	FieldAmount,
	FieldMessage,
	FieldIsAccepted,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultBidderName holds the default value on creation for the "bidder_name" field.
	DefaultBidderName string
	// DefaultIsAccepted holds the default value on creation for the "is_accepted" field.
	DefaultIsAccepted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Bid queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProductID orders the results by the product_id field.
func ByProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductID, opts...).ToFunc()
}

// ByBidderID orders the results by the bidder_id field.
func ByBidderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidderID, opts...).ToFunc()
}

// ByBidderName orders the results by the bidder_name field.
func ByBidderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBidderName, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByIsAccepted orders the results by the is_accepted field.
func ByIsAccepted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAccepted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProductField orders the results by product field.
func ByProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductStep(), sql.OrderByField(field, opts...))
	}
}

// ByBidderField orders the results by bidder field.
func ByBidderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBidderStep(), sql.OrderByField(field, opts...))
	}
}
func newProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
	)
}
func newBidderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BidderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BidderTable, BidderColumn),
	)
}
