// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// BidCreate is the builder for creating a Bid entity.
type BidCreate struct {
	config
	mutation *BidMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *BidCreate) SetProductID(v uuid.UUID) *BidCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetBidderID sets the "bidder_id" field.
func (_c *BidCreate) SetBidderID(v uuid.UUID) *BidCreate {
	_c.mutation.SetBidderID(v)
	return _c
}

// SetBidderName sets the "bidder_name" field.
func (_c *BidCreate) SetBidderName(v string) *BidCreate {
	_c.mutation.SetBidderName(v)
	return _c
}

// SetNillableBidderName sets the "bidder_name" field if the given value is not nil.
func (_c *BidCreate) SetNillableBidderName(v *string) *BidCreate {
	if v != nil {
		_c.SetBidderName(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BidCreate) SetAmount(v float64) *BidCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *BidCreate) SetMessage(v string) *BidCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *BidCreate) SetNillableMessage(v *string) *BidCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetIsAccepted sets the "is_accepted" field.
func (_c *BidCreate) SetIsAccepted(v bool) *BidCreate {
	_c.mutation.SetIsAccepted(v)
	return _c
}

// SetNillableIsAccepted sets the "is_accepted" field if the given value is not nil.
func (_c *BidCreate) SetNillableIsAccepted(v *bool) *BidCreate {
	if v != nil {
		_c.SetIsAccepted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BidCreate) SetCreatedAt(v time.Time) *BidCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BidCreate) SetNillableCreatedAt(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BidCreate) SetUpdatedAt(v time.Time) *BidCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BidCreate) SetNillableUpdatedAt(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BidCreate) SetID(v uuid.UUID) *BidCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BidCreate) SetNillableID(v *uuid.UUID) *BidCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *BidCreate) SetProduct(v *Product) *BidCreate {
	return _c.SetProductID(v.ID)
}

// SetBidder sets the "bidder" edge to the User entity.
func (_c *BidCreate) SetBidder(v *User) *BidCreate {
	return _c.SetBidderID(v.ID)
}

// Mutation returns the BidMutation object of the builder.
func (_c *BidCreate) Mutation() *BidMutation {
	return _c.mutation
}

// Save creates the Bid in the database.
func (_c *BidCreate) Save(ctx context.Context) (*Bid, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BidCreate) SaveX(ctx context.Context) *Bid {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BidCreate) defaults() {
	if _, ok := _c.mutation.BidderName(); !ok {
		v := bid.DefaultBidderName
		_c.mutation.SetBidderName(v)
	}
	if _, ok := _c.mutation.IsAccepted(); !ok {
		v := bid.DefaultIsAccepted
		_c.mutation.SetIsAccepted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bid.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bid.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bid.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BidCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "Bid.product_id"`)}
	}
	if _, ok := _c.mutation.BidderID(); !ok {
		return &ValidationError{Name: "bidder_id", err: errors.New(`ent: missing required field "Bid.bidder_id"`)}
	}
	if _, ok := _c.mutation.BidderName(); !ok {
		return &ValidationError{Name: "bidder_name", err: errors.New(`ent: missing required field "Bid.bidder_name"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Bid.amount"`)}
	}
	if _, ok := _c.mutation.IsAccepted(); !ok {
		return &ValidationError{Name: "is_accepted", err: errors.New(`ent: missing required field "Bid.is_accepted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bid.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bid.updated_at"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "Bid.product"`)}
	}
	if len(_c.mutation.BidderIDs()) == 0 {
		return &ValidationError{Name: "bidder", err: errors.New(`ent: missing required edge "Bid.bidder"`)}
	}
	return nil
}

func (_c *BidCreate) sqlSave(ctx context.Context) (*Bid, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BidCreate) createSpec() (*Bid, *sqlgraph.CreateSpec) {
	var (
		_node = &Bid{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bid.Table, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BidderName(); ok {
		_spec.SetField(bid.FieldBidderName, field.TypeString, value)
		_node.BidderName = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(bid.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(bid.FieldMessage, field.TypeString, value)
		_node.Message = &value
	}
	if value, ok := _c.mutation.IsAccepted(); ok {
		_spec.SetField(bid.FieldIsAccepted, field.TypeBool, value)
		_node.IsAccepted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
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
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BidderIDs(); len(nodes) > 0 {
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
		_node.BidderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BidCreateBulk is the builder for creating many Bid entities in bulk.
type BidCreateBulk struct {
	config
	err      error
	builders []*BidCreate
}

// Save creates the Bid entities in the database.
func (_c *BidCreateBulk) Save(ctx context.Context) ([]*Bid, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bid, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BidMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BidCreateBulk) SaveX(ctx context.Context) []*Bid {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
