// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/db/ent/schema"
	"github.com/pakricemarket/mandi-admin/gen/ent/admin"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/gen/ent/mandireport"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/shop"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminFields := schema.Admin{}.Fields()
	_ = adminFields
	// adminDescEmail is the schema descriptor for email field.
	adminDescEmail := adminFields[1].Descriptor()
	// admin.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	admin.EmailValidator = adminDescEmail.Validators[0].(func(string) error)
	// adminDescPassword is the schema descriptor for password field.
	adminDescPassword := adminFields[2].Descriptor()
	// admin.PasswordValidator is a validator for the "password" field. It is called by the builders before save.
	admin.PasswordValidator = adminDescPassword.Validators[0].(func(string) error)
	// adminDescRole is the schema descriptor for role field.
	adminDescRole := adminFields[4].Descriptor()
	// admin.DefaultRole holds the default value on creation for the role field.
	admin.DefaultRole = adminDescRole.Default.(string)
	// adminDescIsActive is the schema descriptor for is_active field.
	adminDescIsActive := adminFields[5].Descriptor()
	// admin.DefaultIsActive holds the default value on creation for the is_active field.
	admin.DefaultIsActive = adminDescIsActive.Default.(bool)
	// adminDescCreatedAt is the schema descriptor for created_at field.
	adminDescCreatedAt := adminFields[6].Descriptor()
	// admin.DefaultCreatedAt holds the default value on creation for the created_at field.
	admin.DefaultCreatedAt = adminDescCreatedAt.Default.(func() time.Time)
	// adminDescID is the schema descriptor for id field.
	adminDescID := adminFields[0].Descriptor()
	// admin.DefaultID holds the default value on creation for the id field.
	admin.DefaultID = adminDescID.Default.(func() uuid.UUID)
	bidFields := schema.Bid{}.Fields()
	_ = bidFields
	// bidDescBidderName is the schema descriptor for bidder_name field.
	bidDescBidderName := bidFields[3].Descriptor()
	// bid.DefaultBidderName holds the default value on creation for the bidder_name field.
	bid.DefaultBidderName = bidDescBidderName.Default.(string)
	// bidDescIsAccepted is the schema descriptor for is_accepted field.
	bidDescIsAccepted := bidFields[6].Descriptor()
	// bid.DefaultIsAccepted holds the default value on creation for the is_accepted field.
	bid.DefaultIsAccepted = bidDescIsAccepted.Default.(bool)
	// bidDescCreatedAt is the schema descriptor for created_at field.
	bidDescCreatedAt := bidFields[7].Descriptor()
	// bid.DefaultCreatedAt holds the default value on creation for the created_at field.
	bid.DefaultCreatedAt = bidDescCreatedAt.Default.(func() time.Time)
	// bidDescUpdatedAt is the schema descriptor for updated_at field.
	bidDescUpdatedAt := bidFields[8].Descriptor()
	// bid.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bid.DefaultUpdatedAt = bidDescUpdatedAt.Default.(func() time.Time)
	// bid.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bid.UpdateDefaultUpdatedAt = bidDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bidDescID is the schema descriptor for id field.
	bidDescID := bidFields[0].Descriptor()
	// bid.DefaultID holds the default value on creation for the id field.
	bid.DefaultID = bidDescID.Default.(func() uuid.UUID)
	mandireportFields := schema.MandiReport{}.Fields()
	_ = mandireportFields
	// mandireportDescMarket is the schema descriptor for market field.
	mandireportDescMarket := mandireportFields[1].Descriptor()
	// mandireport.MarketValidator is a validator for the "market" field. It is called by the builders before save.
	mandireport.MarketValidator = mandireportDescMarket.Validators[0].(func(string) error)
	// mandireportDescDate is the schema descriptor for date field.
	mandireportDescDate := mandireportFields[2].Descriptor()
	// mandireport.DateValidator is a validator for the "date" field. It is called by the builders before save.
	mandireport.DateValidator = mandireportDescDate.Validators[0].(func(string) error)
	// mandireportDescSource is the schema descriptor for source field.
	mandireportDescSource := mandireportFields[3].Descriptor()
	// mandireport.DefaultSource holds the default value on creation for the source field.
	mandireport.DefaultSource = mandireportDescSource.Default.(string)
	// mandireportDescPdfURL is the schema descriptor for pdf_url field.
	mandireportDescPdfURL := mandireportFields[4].Descriptor()
	// mandireport.PdfURLValidator is a validator for the "pdf_url" field. It is called by the builders before save.
	mandireport.PdfURLValidator = mandireportDescPdfURL.Validators[0].(func(string) error)
	// mandireportDescPdfFilename is the schema descriptor for pdf_filename field.
	mandireportDescPdfFilename := mandireportFields[5].Descriptor()
	// mandireport.PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	mandireport.PdfFilenameValidator = mandireportDescPdfFilename.Validators[0].(func(string) error)
	// mandireportDescTotalItems is the schema descriptor for total_items field.
	mandireportDescTotalItems := mandireportFields[6].Descriptor()
	// mandireport.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	mandireport.TotalItemsValidator = mandireportDescTotalItems.Validators[0].(func(int) error)
	// mandireportDescCreatedAt is the schema descriptor for created_at field.
	mandireportDescCreatedAt := mandireportFields[7].Descriptor()
	// mandireport.DefaultCreatedAt holds the default value on creation for the created_at field.
	mandireport.DefaultCreatedAt = mandireportDescCreatedAt.Default.(func() time.Time)
	// mandireportDescID is the schema descriptor for id field.
	mandireportDescID := mandireportFields[0].Descriptor()
	// mandireport.DefaultID holds the default value on creation for the id field.
	mandireport.DefaultID = mandireportDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescTitle is the schema descriptor for title field.
	productDescTitle := productFields[2].Descriptor()
	// product.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	product.TitleValidator = productDescTitle.Validators[0].(func(string) error)
	// productDescDescription is the schema descriptor for description field.
	productDescDescription := productFields[3].Descriptor()
	// product.DefaultDescription holds the default value on creation for the description field.
	product.DefaultDescription = productDescDescription.Default.(string)
	// productDescCategory is the schema descriptor for category field.
	productDescCategory := productFields[5].Descriptor()
	// product.DefaultCategory holds the default value on creation for the category field.
	product.DefaultCategory = productDescCategory.Default.(string)
	// productDescSellerName is the schema descriptor for seller_name field.
	productDescSellerName := productFields[7].Descriptor()
	// product.DefaultSellerName holds the default value on creation for the seller_name field.
	product.DefaultSellerName = productDescSellerName.Default.(string)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[8].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescIsApproved is the schema descriptor for is_approved field.
	productDescIsApproved := productFields[9].Descriptor()
	// product.DefaultIsApproved holds the default value on creation for the is_approved field.
	product.DefaultIsApproved = productDescIsApproved.Default.(bool)
	// productDescAverageRating is the schema descriptor for average_rating field.
	productDescAverageRating := productFields[10].Descriptor()
	// product.DefaultAverageRating holds the default value on creation for the average_rating field.
	product.DefaultAverageRating = productDescAverageRating.Default.(float64)
	// productDescTotalReviews is the schema descriptor for total_reviews field.
	productDescTotalReviews := productFields[11].Descriptor()
	// product.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	product.DefaultTotalReviews = productDescTotalReviews.Default.(int)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[12].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[13].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	shopFields := schema.Shop{}.Fields()
	_ = shopFields
	// shopDescName is the schema descriptor for name field.
	shopDescName := shopFields[2].Descriptor()
	// shop.NameValidator is a validator for the "name" field. It is called by the builders before save.
	shop.NameValidator = shopDescName.Validators[0].(func(string) error)
	// shopDescDescription is the schema descriptor for description field.
	shopDescDescription := shopFields[3].Descriptor()
	// shop.DefaultDescription holds the default value on creation for the description field.
	shop.DefaultDescription = shopDescDescription.Default.(string)
	// shopDescIsFeatured is the schema descriptor for is_featured field.
	shopDescIsFeatured := shopFields[6].Descriptor()
	// shop.DefaultIsFeatured holds the default value on creation for the is_featured field.
	shop.DefaultIsFeatured = shopDescIsFeatured.Default.(bool)
	// shopDescIsActive is the schema descriptor for is_active field.
	shopDescIsActive := shopFields[7].Descriptor()
	// shop.DefaultIsActive holds the default value on creation for the is_active field.
	shop.DefaultIsActive = shopDescIsActive.Default.(bool)
	// shopDescAverageRating is the schema descriptor for average_rating field.
	shopDescAverageRating := shopFields[8].Descriptor()
	// shop.DefaultAverageRating holds the default value on creation for the average_rating field.
	shop.DefaultAverageRating = shopDescAverageRating.Default.(float64)
	// shopDescTotalReviews is the schema descriptor for total_reviews field.
	shopDescTotalReviews := shopFields[9].Descriptor()
	// shop.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	shop.DefaultTotalReviews = shopDescTotalReviews.Default.(int)
	// shopDescCreatedAt is the schema descriptor for created_at field.
	shopDescCreatedAt := shopFields[10].Descriptor()
	// shop.DefaultCreatedAt holds the default value on creation for the created_at field.
	shop.DefaultCreatedAt = shopDescCreatedAt.Default.(func() time.Time)
	// shopDescUpdatedAt is the schema descriptor for updated_at field.
	shopDescUpdatedAt := shopFields[11].Descriptor()
	// shop.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shop.DefaultUpdatedAt = shopDescUpdatedAt.Default.(func() time.Time)
	// shop.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shop.UpdateDefaultUpdatedAt = shopDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shopDescID is the schema descriptor for id field.
	shopDescID := shopFields[0].Descriptor()
	// shop.DefaultID holds the default value on creation for the id field.
	shop.DefaultID = shopDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescGender is the schema descriptor for gender field.
	userDescGender := userFields[8].Descriptor()
	// user.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	user.GenderValidator = userDescGender.Validators[0].(func(string) error)
	// userDescIsApproved is the schema descriptor for is_approved field.
	userDescIsApproved := userFields[9].Descriptor()
	// user.DefaultIsApproved holds the default value on creation for the is_approved field.
	user.DefaultIsApproved = userDescIsApproved.Default.(bool)
	// userDescAverageRating is the schema descriptor for average_rating field.
	userDescAverageRating := userFields[10].Descriptor()
	// user.DefaultAverageRating holds the default value on creation for the average_rating field.
	user.DefaultAverageRating = userDescAverageRating.Default.(float64)
	// userDescTotalReviews is the schema descriptor for total_reviews field.
	userDescTotalReviews := userFields[11].Descriptor()
	// user.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	user.DefaultTotalReviews = userDescTotalReviews.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[12].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[13].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
