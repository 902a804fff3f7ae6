// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// BidUpdate is the builder for updating Bid entities.
type BidUpdate struct {
	config
	hooks    []Hook
	mutation *BidMutation
}

// Where appends a list predicates to the BidUpdate builder.
func (_u *BidUpdate) Where(ps ...predicate.Bid) *BidUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *BidUpdate) SetProductID(v uuid.UUID) *BidUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *BidUpdate) SetNillableProductID(v *uuid.UUID) *BidUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetBidderID sets the "bidder_id" field.
func (_u *BidUpdate) SetBidderID(v uuid.UUID) *BidUpdate {
	_u.mutation.SetBidderID(v)
	return _u
}

// SetNillableBidderID sets the "bidder_id" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidderID(v *uuid.UUID) *BidUpdate {
	if v != nil {
		_u.SetBidderID(*v)
	}
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidUpdate) SetBidderName(v string) *BidUpdate {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidderName(v *string) *BidUpdate {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BidUpdate) SetAmount(v float64) *BidUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BidUpdate) SetNillableAmount(v *float64) *BidUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BidUpdate) AddAmount(v float64) *BidUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *BidUpdate) SetMessage(v string) *BidUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *BidUpdate) SetNillableMessage(v *string) *BidUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *BidUpdate) ClearMessage() *BidUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetIsAccepted sets the "is_accepted" field.
func (_u *BidUpdate) SetIsAccepted(v bool) *BidUpdate {
	_u.mutation.SetIsAccepted(v)
	return _u
}

// SetNillableIsAccepted sets the "is_accepted" field if the given value is not nil.
func (_u *BidUpdate) SetNillableIsAccepted(v *bool) *BidUpdate {
	if v != nil {
		_u.SetIsAccepted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BidUpdate) SetCreatedAt(v time.Time) *BidUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BidUpdate) SetNillableCreatedAt(v *time.Time) *BidUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BidUpdate) SetUpdatedAt(v time.Time) *BidUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *BidUpdate) SetProduct(v *Product) *BidUpdate {
	return _u.SetProductID(v.ID)
}

// SetBidder sets the "bidder" edge to the User entity.
func (_u *BidUpdate) SetBidder(v *User) *BidUpdate {
	return _u.SetBidderID(v.ID)
}

// Mutation returns the BidMutation object of the builder.
func (_u *BidUpdate) Mutation() *BidMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *BidUpdate) ClearProduct() *BidUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// ClearBidder clears the "bidder" edge to the User entity.
func (_u *BidUpdate) ClearBidder() *BidUpdate {
	_u.mutation.ClearBidder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BidUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BidUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BidUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bid.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidUpdate) check() error {
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bid.product"`)
	}
	if _u.mutation.BidderCleared() && len(_u.mutation.BidderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bid.bidder"`)
	}
	return nil
}

func (_u *BidUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bid.Table, bid.Columns, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(bid.FieldBidderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bid.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bid.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(bid.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(bid.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccepted(); ok {
		_spec.SetField(bid.FieldIsAccepted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.ProductTable,
			Columns: []string{bid.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.ProductTable,
			Columns: []string{bid.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BidderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.BidderTable,
			Columns: []string{bid.BidderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.BidderTable,
			Columns: []string{bid.BidderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bid.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BidUpdateOne is the builder for updating a single Bid entity.
type BidUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BidMutation
}

// SetProductID sets the "product_id" field.
func (_u *BidUpdateOne) SetProductID(v uuid.UUID) *BidUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableProductID(v *uuid.UUID) *BidUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetBidderID sets the "bidder_id" field.
func (_u *BidUpdateOne) SetBidderID(v uuid.UUID) *BidUpdateOne {
	_u.mutation.SetBidderID(v)
	return _u
}

// SetNillableBidderID sets the "bidder_id" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidderID(v *uuid.UUID) *BidUpdateOne {
	if v != nil {
		_u.SetBidderID(*v)
	}
	return _u
}

// SetBidderName sets the "bidder_name" field.
func (_u *BidUpdateOne) SetBidderName(v string) *BidUpdateOne {
	_u.mutation.SetBidderName(v)
	return _u
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidderName(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetBidderName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BidUpdateOne) SetAmount(v float64) *BidUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableAmount(v *float64) *BidUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BidUpdateOne) AddAmount(v float64) *BidUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *BidUpdateOne) SetMessage(v string) *BidUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableMessage(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *BidUpdateOne) ClearMessage() *BidUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetIsAccepted sets the "is_accepted" field.
func (_u *BidUpdateOne) SetIsAccepted(v bool) *BidUpdateOne {
	_u.mutation.SetIsAccepted(v)
	return _u
}

// SetNillableIsAccepted sets the "is_accepted" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableIsAccepted(v *bool) *BidUpdateOne {
	if v != nil {
		_u.SetIsAccepted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BidUpdateOne) SetCreatedAt(v time.Time) *BidUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableCreatedAt(v *time.Time) *BidUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BidUpdateOne) SetUpdatedAt(v time.Time) *BidUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *BidUpdateOne) SetProduct(v *Product) *BidUpdateOne {
	return _u.SetProductID(v.ID)
}

// SetBidder sets the "bidder" edge to the User entity.
func (_u *BidUpdateOne) SetBidder(v *User) *BidUpdateOne {
	return _u.SetBidderID(v.ID)
}

// Mutation returns the BidMutation object of the builder.
func (_u *BidUpdateOne) Mutation() *BidMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *BidUpdateOne) ClearProduct() *BidUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// ClearBidder clears the "bidder" edge to the User entity.
func (_u *BidUpdateOne) ClearBidder() *BidUpdateOne {
	_u.mutation.ClearBidder()
	return _u
}

// Where appends a list predicates to the BidUpdate builder.
func (_u *BidUpdateOne) Where(ps ...predicate.Bid) *BidUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BidUpdateOne) Select(field string, fields ...string) *BidUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bid entity.
func (_u *BidUpdateOne) Save(ctx context.Context) (*Bid, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidUpdateOne) SaveX(ctx context.Context) *Bid {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BidUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BidUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bid.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidUpdateOne) check() error {
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bid.product"`)
	}
	if _u.mutation.BidderCleared() && len(_u.mutation.BidderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bid.bidder"`)
	}
	return nil
}

func (_u *BidUpdateOne) sqlSave(ctx context.Context) (_node *Bid, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bid.Table, bid.Columns, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bid.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bid.FieldID)
		for _, f := range fields {
			if !bid.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bid.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BidderName(); ok {
		_spec.SetField(bid.FieldBidderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bid.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bid.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(bid.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(bid.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccepted(); ok {
		_spec.SetField(bid.FieldIsAccepted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.ProductTable,
			Columns: []string{bid.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.ProductTable,
			Columns: []string{bid.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BidderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.BidderTable,
			Columns: []string{bid.BidderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bid.BidderTable,
			Columns: []string{bid.BidderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bid{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bid.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
