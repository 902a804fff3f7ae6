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
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
	"github.com/pakricemarket/mandi-admin/gen/ent/shop"
)

// ShopUpdate is the builder for updating Shop entities.
type ShopUpdate struct {
	config
	hooks    []Hook
	mutation *ShopMutation
}

// Where appends a list predicates to the ShopUpdate builder.
func (_u *ShopUpdate) Where(ps ...predicate.Shop) *ShopUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ShopUpdate) SetOwnerID(v uuid.UUID) *ShopUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableOwnerID(v *uuid.UUID) *ShopUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ShopUpdate) SetName(v string) *ShopUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableName(v *string) *ShopUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ShopUpdate) SetDescription(v string) *ShopUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableDescription(v *string) *ShopUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ShopUpdate) SetCity(v string) *ShopUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableCity(v *string) *ShopUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ShopUpdate) ClearCity() *ShopUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetLogoImage sets the "logo_image" field.
func (_u *ShopUpdate) SetLogoImage(v string) *ShopUpdate {
	_u.mutation.SetLogoImage(v)
	return _u
}

// SetNillableLogoImage sets the "logo_image" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableLogoImage(v *string) *ShopUpdate {
	if v != nil {
		_u.SetLogoImage(*v)
	}
	return _u
}

// ClearLogoImage clears the value of the "logo_image" field.
func (_u *ShopUpdate) ClearLogoImage() *ShopUpdate {
	_u.mutation.ClearLogoImage()
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ShopUpdate) SetIsFeatured(v bool) *ShopUpdate {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableIsFeatured(v *bool) *ShopUpdate {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ShopUpdate) SetIsActive(v bool) *ShopUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableIsActive(v *bool) *ShopUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ShopUpdate) SetAverageRating(v float64) *ShopUpdate {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableAverageRating(v *float64) *ShopUpdate {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ShopUpdate) AddAverageRating(v float64) *ShopUpdate {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ShopUpdate) SetTotalReviews(v int) *ShopUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableTotalReviews(v *int) *ShopUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ShopUpdate) AddTotalReviews(v int) *ShopUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ShopUpdate) SetCreatedAt(v time.Time) *ShopUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ShopUpdate) SetNillableCreatedAt(v *time.Time) *ShopUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShopUpdate) SetUpdatedAt(v time.Time) *ShopUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShopMutation object of the builder.
func (_u *ShopUpdate) Mutation() *ShopMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShopUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShopUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShopUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShopUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShopUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShopUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := shop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Shop.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ShopUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shop.Table, shop.Columns, sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(shop.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(shop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(shop.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(shop.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(shop.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LogoImage(); ok {
		_spec.SetField(shop.FieldLogoImage, field.TypeString, value)
	}
	if _u.mutation.LogoImageCleared() {
		_spec.ClearField(shop.FieldLogoImage, field.TypeString)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(shop.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(shop.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(shop.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(shop.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(shop.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(shop.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(shop.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shop.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShopUpdateOne is the builder for updating a single Shop entity.
type ShopUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShopMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ShopUpdateOne) SetOwnerID(v uuid.UUID) *ShopUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ShopUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ShopUpdateOne) SetName(v string) *ShopUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableName(v *string) *ShopUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ShopUpdateOne) SetDescription(v string) *ShopUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableDescription(v *string) *ShopUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ShopUpdateOne) SetCity(v string) *ShopUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableCity(v *string) *ShopUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ShopUpdateOne) ClearCity() *ShopUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetLogoImage sets the "logo_image" field.
func (_u *ShopUpdateOne) SetLogoImage(v string) *ShopUpdateOne {
	_u.mutation.SetLogoImage(v)
	return _u
}

// SetNillableLogoImage sets the "logo_image" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableLogoImage(v *string) *ShopUpdateOne {
	if v != nil {
		_u.SetLogoImage(*v)
	}
	return _u
}

// ClearLogoImage clears the value of the "logo_image" field.
func (_u *ShopUpdateOne) ClearLogoImage() *ShopUpdateOne {
	_u.mutation.ClearLogoImage()
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *ShopUpdateOne) SetIsFeatured(v bool) *ShopUpdateOne {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableIsFeatured(v *bool) *ShopUpdateOne {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ShopUpdateOne) SetIsActive(v bool) *ShopUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableIsActive(v *bool) *ShopUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ShopUpdateOne) SetAverageRating(v float64) *ShopUpdateOne {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableAverageRating(v *float64) *ShopUpdateOne {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ShopUpdateOne) AddAverageRating(v float64) *ShopUpdateOne {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ShopUpdateOne) SetTotalReviews(v int) *ShopUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableTotalReviews(v *int) *ShopUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ShopUpdateOne) AddTotalReviews(v int) *ShopUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ShopUpdateOne) SetCreatedAt(v time.Time) *ShopUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ShopUpdateOne) SetNillableCreatedAt(v *time.Time) *ShopUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShopUpdateOne) SetUpdatedAt(v time.Time) *ShopUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShopMutation object of the builder.
func (_u *ShopUpdateOne) Mutation() *ShopMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShopUpdate builder.
func (_u *ShopUpdateOne) Where(ps ...predicate.Shop) *ShopUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShopUpdateOne) Select(field string, fields ...string) *ShopUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Shop entity.
func (_u *ShopUpdateOne) Save(ctx context.Context) (*Shop, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShopUpdateOne) SaveX(ctx context.Context) *Shop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShopUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShopUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShopUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShopUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := shop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Shop.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ShopUpdateOne) sqlSave(ctx context.Context) (_node *Shop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shop.Table, shop.Columns, sqlgraph.NewFieldSpec(shop.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Shop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shop.FieldID)
		for _, f := range fields {
			if !shop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shop.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(shop.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(shop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(shop.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(shop.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(shop.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LogoImage(); ok {
		_spec.SetField(shop.FieldLogoImage, field.TypeString, value)
	}
	if _u.mutation.LogoImageCleared() {
		_spec.ClearField(shop.FieldLogoImage, field.TypeString)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(shop.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(shop.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(shop.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(shop.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(shop.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(shop.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(shop.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shop.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Shop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
