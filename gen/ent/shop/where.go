// Code generated by ent, DO NOT EDIT.

package shop

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldDescription, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldCity, v))
}

// LogoImage applies equality check predicate on the "logo_image" field. It's identical to LogoImageEQ.
func LogoImage(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldLogoImage, v))
}

// IsFeatured applies equality check predicate on the "is_featured" field. It's identical to IsFeaturedEQ.
func IsFeatured(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldIsFeatured, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldIsActive, v))
}

// AverageRating applies equality check predicate on the "average_rating" field. It's identical to AverageRatingEQ.
func AverageRating(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldAverageRating, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldTotalReviews, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContainsFold(FieldDescription, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Shop {
	return predicate.Shop(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Shop {
	return predicate.Shop(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContainsFold(FieldCity, v))
}

// LogoImageEQ applies the EQ predicate on the "logo_image" field.
func LogoImageEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldLogoImage, v))
}

// LogoImageNEQ applies the NEQ predicate on the "logo_image" field.
func LogoImageNEQ(v string) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldLogoImage, v))
}

// LogoImageIn applies the In predicate on the "logo_image" field.
func LogoImageIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldLogoImage, vs...))
}

// LogoImageNotIn applies the NotIn predicate on the "logo_image" field.
func LogoImageNotIn(vs ...string) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldLogoImage, vs...))
}

// LogoImageGT applies the GT predicate on the "logo_image" field.
func LogoImageGT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldLogoImage, v))
}

// LogoImageGTE applies the GTE predicate on the "logo_image" field.
func LogoImageGTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldLogoImage, v))
}

// LogoImageLT applies the LT predicate on the "logo_image" field.
func LogoImageLT(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldLogoImage, v))
}

// LogoImageLTE applies the LTE predicate on the "logo_image" field.
func LogoImageLTE(v string) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldLogoImage, v))
}

// LogoImageContains applies the Contains predicate on the "logo_image" field.
func LogoImageContains(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContains(FieldLogoImage, v))
}

// LogoImageHasPrefix applies the HasPrefix predicate on the "logo_image" field.
func LogoImageHasPrefix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasPrefix(FieldLogoImage, v))
}

// LogoImageHasSuffix applies the HasSuffix predicate on the "logo_image" field.
func LogoImageHasSuffix(v string) predicate.Shop {
	return predicate.Shop(sql.FieldHasSuffix(FieldLogoImage, v))
}

// LogoImageIsNil applies the IsNil predicate on the "logo_image" field.
func LogoImageIsNil() predicate.Shop {
	return predicate.Shop(sql.FieldIsNull(FieldLogoImage))
}

// LogoImageNotNil applies the NotNil predicate on the "logo_image" field.
func LogoImageNotNil() predicate.Shop {
	return predicate.Shop(sql.FieldNotNull(FieldLogoImage))
}

// LogoImageEqualFold applies the EqualFold predicate on the "logo_image" field.
func LogoImageEqualFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldEqualFold(FieldLogoImage, v))
}

// LogoImageContainsFold applies the ContainsFold predicate on the "logo_image" field.
func LogoImageContainsFold(v string) predicate.Shop {
	return predicate.Shop(sql.FieldContainsFold(FieldLogoImage, v))
}

// IsFeaturedEQ applies the EQ predicate on the "is_featured" field.
func IsFeaturedEQ(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldIsFeatured, v))
}

// IsFeaturedNEQ applies the NEQ predicate on the "is_featured" field.
func IsFeaturedNEQ(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldIsFeatured, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldIsActive, v))
}

// AverageRatingEQ applies the EQ predicate on the "average_rating" field.
func AverageRatingEQ(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldAverageRating, v))
}

// AverageRatingNEQ applies the NEQ predicate on the "average_rating" field.
func AverageRatingNEQ(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldAverageRating, v))
}

// AverageRatingIn applies the In predicate on the "average_rating" field.
func AverageRatingIn(vs ...float64) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldAverageRating, vs...))
}

// AverageRatingNotIn applies the NotIn predicate on the "average_rating" field.
func AverageRatingNotIn(vs ...float64) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldAverageRating, vs...))
}

// AverageRatingGT applies the GT predicate on the "average_rating" field.
func AverageRatingGT(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldAverageRating, v))
}

// AverageRatingGTE applies the GTE predicate on the "average_rating" field.
func AverageRatingGTE(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldAverageRating, v))
}

// AverageRatingLT applies the LT predicate on the "average_rating" field.
func AverageRatingLT(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldAverageRating, v))
}

// AverageRatingLTE applies the LTE predicate on the "average_rating" field.
func AverageRatingLTE(v float64) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldAverageRating, v))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldTotalReviews, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Shop {
	return predicate.Shop(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Shop) predicate.Shop {
	return predicate.Shop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Shop) predicate.Shop {
	return predicate.Shop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Shop) predicate.Shop {
	return predicate.Shop(sql.NotPredicates(p))
}
