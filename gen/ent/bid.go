// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// Bid is the model entity for the Bid schema.
type Bid struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// BidderID holds the value of the "bidder_id" field.
	BidderID uuid.UUID `json:"bidder_id,omitempty"`
	// BidderName holds the value of the "bidder_name" field.
	BidderName string `json:"bidder_name,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Message holds the value of the "message" field.
	Message *string `json:"message,omitempty"`
	// IsAccepted holds the value of the "is_accepted" field.
	IsAccepted bool `json:"is_accepted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BidQuery when eager-loading is set.
	Edges        BidEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BidEdges holds the relations/edges for other nodes in the graph.
type BidEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// Bidder holds the value of the bidder edge.
	Bidder *User `json:"bidder,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BidEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// BidderOrErr returns the Bidder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BidEdges) BidderOrErr() (*User, error) {
	if e.Bidder != nil {
		return e.Bidder, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "bidder"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bid) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bid.FieldIsAccepted:
			values[i] = new(sql.NullBool)
		case bid.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case bid.FieldBidderName, bid.FieldMessage:
			values[i] = new(sql.NullString)
		case bid.FieldCreatedAt, bid.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case bid.FieldID, bid.FieldProductID, bid.FieldBidderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bid fields.
func (_m *Bid) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bid.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bid.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case bid.FieldBidderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bidder_id", values[i])
			} else if value != nil {
				_m.BidderID = *value
			}
		case bid.FieldBidderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bidder_name", values[i])
			} else if value.Valid {
				_m.BidderName = value.String
			}
		case bid.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case bid.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = new(string)
				*_m.Message = value.String
			}
		case bid.FieldIsAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_accepted", values[i])
			} else if value.Valid {
				_m.IsAccepted = value.Bool
			}
		case bid.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bid.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bid.
// This includes values selected through modifiers, order, etc.
func (_m *Bid) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the Bid entity.
func (_m *Bid) QueryProduct() *ProductQuery {
	return NewBidClient(_m.config).QueryProduct(_m)
}

// QueryBidder queries the "bidder" edge of the Bid entity.
func (_m *Bid) QueryBidder() *UserQuery {
	return NewBidClient(_m.config).QueryBidder(_m)
}

// Update returns a builder for updating this Bid.
// Note that you need to call Bid.Unwrap() before calling this method if this Bid
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bid) Update() *BidUpdateOne {
	return NewBidClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bid entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bid) Unwrap() *Bid {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bid is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bid) String() string {
	var builder strings.Builder
	builder.WriteString("Bid(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	builder.WriteString("bidder_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BidderID))
	builder.WriteString(", ")
	builder.WriteString("bidder_name=")
	builder.WriteString(_m.BidderName)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	if v := _m.Message; v != nil {
		builder.WriteString("message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_accepted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAccepted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Bids is a parsable slice of Bid.
type Bids []*Bid
