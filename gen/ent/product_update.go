// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSellerID sets the "seller_id" field.
func (_u *ProductUpdate) SetSellerID(v uuid.UUID) *ProductUpdate {
	_u.mutation.SetSellerID(v)
	return _u
}

// SetNillableSellerID sets the "seller_id" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSellerID(v *uuid.UUID) *ProductUpdate {
	if v != nil {
		_u.SetSellerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProductUpdate) SetTitle(v string) *ProductUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTitle(v *string) *ProductUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProductUpdate) SetDescription(v string) *ProductUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableDescription(v *string) *ProductUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdate) SetPrice(v float64) *ProductUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePrice(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdate) AddPrice(v float64) *ProductUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductUpdate) SetCategory(v string) *ProductUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCategory(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetImages sets the "images" field.
func (_u *ProductUpdate) SetImages(v []string) *ProductUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *ProductUpdate) AppendImages(v []string) *ProductUpdate {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *ProductUpdate) ClearImages() *ProductUpdate {
	_u.mutation.ClearImages()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *ProductUpdate) SetSellerName(v string) *ProductUpdate {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSellerName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductUpdate) SetIsActive(v bool) *ProductUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableIsActive(v *bool) *ProductUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsApproved sets the "is_approved" field.
func (_u *ProductUpdate) SetIsApproved(v bool) *ProductUpdate {
	_u.mutation.SetIsApproved(v)
	return _u
}

// SetNillableIsApproved sets the "is_approved" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableIsApproved(v *bool) *ProductUpdate {
	if v != nil {
		_u.SetIsApproved(*v)
	}
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ProductUpdate) SetAverageRating(v float64) *ProductUpdate {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableAverageRating(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ProductUpdate) AddAverageRating(v float64) *ProductUpdate {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ProductUpdate) SetTotalReviews(v int) *ProductUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTotalReviews(v *int) *ProductUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ProductUpdate) AddTotalReviews(v int) *ProductUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdate) SetCreatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCreatedAt(v *time.Time) *ProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSeller sets the "seller" edge to the User entity.
func (_u *ProductUpdate) SetSeller(v *User) *ProductUpdate {
	return _u.SetSellerID(v.ID)
}

// AddBidIDs adds the "bids" edge to the Bid entity by IDs.
func (_u *ProductUpdate) AddBidIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddBidIDs(ids...)
	return _u
}

// AddBids adds the "bids" edges to the Bid entity.
func (_u *ProductUpdate) AddBids(v ...*Bid) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the User entity.
func (_u *ProductUpdate) ClearSeller() *ProductUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// ClearBids clears all "bids" edges to the Bid entity.
func (_u *ProductUpdate) ClearBids() *ProductUpdate {
	_u.mutation.ClearBids()
	return _u
}

// RemoveBidIDs removes the "bids" edge to Bid entities by IDs.
func (_u *ProductUpdate) RemoveBidIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveBidIDs(ids...)
	return _u
}

// RemoveBids removes "bids" edges to Bid entities.
func (_u *ProductUpdate) RemoveBids(v ...*Bid) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := product.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Product.title": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Product.seller"`)
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(product.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(product.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(product.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(product.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(product.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(product.FieldSellerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(product.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsApproved(); ok {
		_spec.SetField(product.FieldIsApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(product.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(product.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(product.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(product.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SellerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.SellerTable,
			Columns: []string{product.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.SellerTable,
			Columns: []string{product.SellerColumn},
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
	if _u.mutation.BidsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBidsIDs(); len(nodes) > 0 && !_u.mutation.BidsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetSellerID sets the "seller_id" field.
func (_u *ProductUpdateOne) SetSellerID(v uuid.UUID) *ProductUpdateOne {
	_u.mutation.SetSellerID(v)
	return _u
}

// SetNillableSellerID sets the "seller_id" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSellerID(v *uuid.UUID) *ProductUpdateOne {
	if v != nil {
		_u.SetSellerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProductUpdateOne) SetTitle(v string) *ProductUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTitle(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProductUpdateOne) SetDescription(v string) *ProductUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableDescription(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdateOne) SetPrice(v float64) *ProductUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePrice(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdateOne) AddPrice(v float64) *ProductUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductUpdateOne) SetCategory(v string) *ProductUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCategory(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetImages sets the "images" field.
func (_u *ProductUpdateOne) SetImages(v []string) *ProductUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *ProductUpdateOne) AppendImages(v []string) *ProductUpdateOne {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *ProductUpdateOne) ClearImages() *ProductUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *ProductUpdateOne) SetSellerName(v string) *ProductUpdateOne {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSellerName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductUpdateOne) SetIsActive(v bool) *ProductUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableIsActive(v *bool) *ProductUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsApproved sets the "is_approved" field.
func (_u *ProductUpdateOne) SetIsApproved(v bool) *ProductUpdateOne {
	_u.mutation.SetIsApproved(v)
	return _u
}

// SetNillableIsApproved sets the "is_approved" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableIsApproved(v *bool) *ProductUpdateOne {
	if v != nil {
		_u.SetIsApproved(*v)
	}
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ProductUpdateOne) SetAverageRating(v float64) *ProductUpdateOne {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableAverageRating(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ProductUpdateOne) AddAverageRating(v float64) *ProductUpdateOne {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ProductUpdateOne) SetTotalReviews(v int) *ProductUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTotalReviews(v *int) *ProductUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ProductUpdateOne) AddTotalReviews(v int) *ProductUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdateOne) SetCreatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCreatedAt(v *time.Time) *ProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSeller sets the "seller" edge to the User entity.
func (_u *ProductUpdateOne) SetSeller(v *User) *ProductUpdateOne {
	return _u.SetSellerID(v.ID)
}

// AddBidIDs adds the "bids" edge to the Bid entity by IDs.
func (_u *ProductUpdateOne) AddBidIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddBidIDs(ids...)
	return _u
}

// AddBids adds the "bids" edges to the Bid entity.
func (_u *ProductUpdateOne) AddBids(v ...*Bid) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBidIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearSeller clears the "seller" edge to the User entity.
func (_u *ProductUpdateOne) ClearSeller() *ProductUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// ClearBids clears all "bids" edges to the Bid entity.
func (_u *ProductUpdateOne) ClearBids() *ProductUpdateOne {
	_u.mutation.ClearBids()
	return _u
}

// RemoveBidIDs removes the "bids" edge to Bid entities by IDs.
func (_u *ProductUpdateOne) RemoveBidIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveBidIDs(ids...)
	return _u
}

// RemoveBids removes "bids" edges to Bid entities.
func (_u *ProductUpdateOne) RemoveBids(v ...*Bid) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBidIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := product.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Product.title": %w`, err)}
		}
	}
	if _u.mutation.SellerCleared() && len(_u.mutation.SellerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Product.seller"`)
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(product.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(product.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(product.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(product.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(product.FieldImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(product.FieldSellerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(product.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsApproved(); ok {
		_spec.SetField(product.FieldIsApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(product.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(product.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(product.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(product.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SellerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.SellerTable,
			Columns: []string{product.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.SellerTable,
			Columns: []string{product.SellerColumn},
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
	if _u.mutation.BidsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBidsIDs(); len(nodes) > 0 && !_u.mutation.BidsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BidsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.BidsTable,
			Columns: []string{product.BidsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
