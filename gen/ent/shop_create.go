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
	"github.com/pakricemarket/mandi-admin/gen/ent/shop"
)

// ShopCreate is the builder for creating a Shop entity.
type ShopCreate struct {
	config
	mutation *ShopMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ShopCreate) SetOwnerID(v uuid.UUID) *ShopCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ShopCreate) SetName(v string) *ShopCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ShopCreate) SetDescription(v string) *ShopCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ShopCreate) SetNillableDescription(v *string) *ShopCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ShopCreate) SetCity(v string) *ShopCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ShopCreate) SetNillableCity(v *string) *ShopCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetLogoImage sets the "logo_image" field.
func (_c *ShopCreate) SetLogoImage(v string) *ShopCreate {
	_c.mutation.SetLogoImage(v)
	return _c
}

// SetNillableLogoImage sets the "logo_image" field if the given value is not nil.
func (_c *ShopCreate) SetNillableLogoImage(v *string) *ShopCreate {
	if v != nil {
		_c.SetLogoImage(*v)
	}
	return _c
}

// SetIsFeatured sets the "is_featured" field.
func (_c *ShopCreate) SetIsFeatured(v bool) *ShopCreate {
	_c.mutation.SetIsFeatured(v)
	return _c
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_c *ShopCreate) SetNillableIsFeatured(v *bool) *ShopCreate {
	if v != nil {
		_c.SetIsFeatured(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ShopCreate) SetIsActive(v bool) *ShopCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ShopCreate) SetNillableIsActive(v *bool) *ShopCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetAverageRating sets the "average_rating" field.
func (_c *ShopCreate) SetAverageRating(v float64) *ShopCreate {
	_c.mutation.SetAverageRating(v)
	return _c
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_c *ShopCreate) SetNillableAverageRating(v *float64) *ShopCreate {
	if v != nil {
		_c.SetAverageRating(*v)
	}
	return _c
}

// SetTotalReviews sets the "total_reviews" field.
func (_c *ShopCreate) SetTotalReviews(v int) *ShopCreate {
	_c.mutation.SetTotalReviews(v)
	return _c
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_c *ShopCreate) SetNillableTotalReviews(v *int) *ShopCreate {
	if v != nil {
		_c.SetTotalReviews(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShopCreate) SetCreatedAt(v time.Time) *ShopCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShopCreate) SetNillableCreatedAt(v *time.Time) *ShopCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShopCreate) SetUpdatedAt(v time.Time) *ShopCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShopCreate) SetNillableUpdatedAt(v *time.Time) *ShopCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ShopCreate) SetID(v uuid.UUID) *ShopCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ShopCreate) SetNillableID(v *uuid.UUID) *ShopCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ShopMutation object of the builder.
func (_c *ShopCreate) Mutation() *ShopMutation {
	return _c.mutation
}

// Save creates the Shop in the database.
func (_c *ShopCreate) Save(ctx context.Context) (*Shop, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShopCreate) SaveX(ctx context.Context) *Shop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShopCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShopCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShopCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := shop.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		v := shop.DefaultIsFeatured
		_c.mutation.SetIsFeatured(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := shop.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		v := shop.DefaultAverageRating
		_c.mutation.SetAverageRating(v)
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		v := shop.DefaultTotalReviews
		_c.mutation.SetTotalReviews(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := shop.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shop.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := shop.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShopCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Shop.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Shop.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := shop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Shop.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Shop.description"`)}
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		return &ValidationError{Name: "is_featured", err: errors.New(`ent: missing required field "Shop.is_featured"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Shop.is_active"`)}
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		return &ValidationError{Name: "average_rating", err: errors.New(`ent: missing required field "Shop.average_rating"`)}
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "Shop.total_reviews"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Shop.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Shop.updated_at"`)}
	}
	return nil
}

func (_c *ShopCreate) sqlSave(ctx context.Context) (*Shop, error) {
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

func (_c *ShopCreate) createSpec() (*Shop, *sqlgraph.CreateSpec) {
	var (
		_node = &Shop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shop.Table, sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(shop.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(shop.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(shop.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(shop.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.LogoImage(); ok {
		_spec.SetField(shop.FieldLogoImage, field.TypeString, value)
		_node.LogoImage = &value
	}
	if value, ok := _c.mutation.IsFeatured(); ok {
		_spec.SetField(shop.FieldIsFeatured, field.TypeBool, value)
		_node.IsFeatured = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(shop.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.AverageRating(); ok {
		_spec.SetField(shop.FieldAverageRating, field.TypeFloat64, value)
		_node.AverageRating = value
	}
	if value, ok := _c.mutation.TotalReviews(); ok {
		_spec.SetField(shop.FieldTotalReviews, field.TypeInt, value)
		_node.TotalReviews = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(shop.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shop.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ShopCreateBulk is the builder for creating many Shop entities in bulk.
type ShopCreateBulk struct {
	config
	err      error
	builders []*ShopCreate
}

// Save creates the Shop entities in the database.
func (_c *ShopCreateBulk) Save(ctx context.Context) ([]*Shop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Shop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShopMutation)
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
func (_c *ShopCreateBulk) SaveX(ctx context.Context) []*Shop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShopCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShopCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
