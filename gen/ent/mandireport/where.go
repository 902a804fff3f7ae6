// Code generated by ent, DO NOT EDIT.

package mandireport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldID, id))
}

// Market applies equality check predicate on the "market" field. It's identical to MarketEQ.
func Market(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldMarket, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldDate, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldSource, v))
}

// PdfURL applies equality check predicate on the "pdf_url" field. It's identical to PdfURLEQ.
func PdfURL(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldPdfURL, v))
}

// PdfFilename applies equality check predicate on the "pdf_filename" field. It's identical to PdfFilenameEQ.
func PdfFilename(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldPdfFilename, v))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldTotalItems, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldExpiresAt, v))
}

// MarketEQ applies the EQ predicate on the "market" field.
func MarketEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldMarket, v))
}

// MarketNEQ applies the NEQ predicate on the "market" field.
func MarketNEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldMarket, v))
}

// MarketIn applies the In predicate on the "market" field.
func MarketIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldMarket, vs...))
}

// MarketNotIn applies the NotIn predicate on the "market" field.
func MarketNotIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldMarket, vs...))
}

// MarketGT applies the GT predicate on the "market" field.
func MarketGT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldMarket, v))
}

// MarketGTE applies the GTE predicate on the "market" field.
func MarketGTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldMarket, v))
}

// MarketLT applies the LT predicate on the "market" field.
func MarketLT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldMarket, v))
}

// MarketLTE applies the LTE predicate on the "market" field.
func MarketLTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldMarket, v))
}

// MarketContains applies the Contains predicate on the "market" field.
func MarketContains(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContains(FieldMarket, v))
}

// MarketHasPrefix applies the HasPrefix predicate on the "market" field.
func MarketHasPrefix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasPrefix(FieldMarket, v))
}

// MarketHasSuffix applies the HasSuffix predicate on the "market" field.
func MarketHasSuffix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasSuffix(FieldMarket, v))
}

// MarketEqualFold applies the EqualFold predicate on the "market" field.
func MarketEqualFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEqualFold(FieldMarket, v))
}

// MarketContainsFold applies the ContainsFold predicate on the "market" field.
func MarketContainsFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContainsFold(FieldMarket, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContainsFold(FieldDate, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContainsFold(FieldSource, v))
}

// PdfURLEQ applies the EQ predicate on the "pdf_url" field.
func PdfURLEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldPdfURL, v))
}

// PdfURLNEQ applies the NEQ predicate on the "pdf_url" field.
func PdfURLNEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldPdfURL, v))
}

// PdfURLIn applies the In predicate on the "pdf_url" field.
func PdfURLIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldPdfURL, vs...))
}

// PdfURLNotIn applies the NotIn predicate on the "pdf_url" field.
func PdfURLNotIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldPdfURL, vs...))
}

// PdfURLGT applies the GT predicate on the "pdf_url" field.
func PdfURLGT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldPdfURL, v))
}

// PdfURLGTE applies the GTE predicate on the "pdf_url" field.
func PdfURLGTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldPdfURL, v))
}

// PdfURLLT applies the LT predicate on the "pdf_url" field.
func PdfURLLT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldPdfURL, v))
}

// PdfURLLTE applies the LTE predicate on the "pdf_url" field.
func PdfURLLTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldPdfURL, v))
}

// PdfURLContains applies the Contains predicate on the "pdf_url" field.
func PdfURLContains(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContains(FieldPdfURL, v))
}

// PdfURLHasPrefix applies the HasPrefix predicate on the "pdf_url" field.
func PdfURLHasPrefix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasPrefix(FieldPdfURL, v))
}

// PdfURLHasSuffix applies the HasSuffix predicate on the "pdf_url" field.
func PdfURLHasSuffix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasSuffix(FieldPdfURL, v))
}

// PdfURLEqualFold applies the EqualFold predicate on the "pdf_url" field.
func PdfURLEqualFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEqualFold(FieldPdfURL, v))
}

// PdfURLContainsFold applies the ContainsFold predicate on the "pdf_url" field.
func PdfURLContainsFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContainsFold(FieldPdfURL, v))
}

// PdfFilenameEQ applies the EQ predicate on the "pdf_filename" field.
func PdfFilenameEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfFilenameNEQ applies the NEQ predicate on the "pdf_filename" field.
func PdfFilenameNEQ(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldPdfFilename, v))
}

// PdfFilenameIn applies the In predicate on the "pdf_filename" field.
func PdfFilenameIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldPdfFilename, vs...))
}

// PdfFilenameNotIn applies the NotIn predicate on the "pdf_filename" field.
func PdfFilenameNotIn(vs ...string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldPdfFilename, vs...))
}

// PdfFilenameGT applies the GT predicate on the "pdf_filename" field.
func PdfFilenameGT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldPdfFilename, v))
}

// PdfFilenameGTE applies the GTE predicate on the "pdf_filename" field.
func PdfFilenameGTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldPdfFilename, v))
}

// PdfFilenameLT applies the LT predicate on the "pdf_filename" field.
func PdfFilenameLT(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldPdfFilename, v))
}

// PdfFilenameLTE applies the LTE predicate on the "pdf_filename" field.
func PdfFilenameLTE(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldPdfFilename, v))
}

// PdfFilenameContains applies the Contains predicate on the "pdf_filename" field.
func PdfFilenameContains(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContains(FieldPdfFilename, v))
}

// PdfFilenameHasPrefix applies the HasPrefix predicate on the "pdf_filename" field.
func PdfFilenameHasPrefix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasPrefix(FieldPdfFilename, v))
}

// PdfFilenameHasSuffix applies the HasSuffix predicate on the "pdf_filename" field.
func PdfFilenameHasSuffix(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldHasSuffix(FieldPdfFilename, v))
}

// PdfFilenameEqualFold applies the EqualFold predicate on the "pdf_filename" field.
func PdfFilenameEqualFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEqualFold(FieldPdfFilename, v))
}

// PdfFilenameContainsFold applies the ContainsFold predicate on the "pdf_filename" field.
func PdfFilenameContainsFold(v string) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldContainsFold(FieldPdfFilename, v))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldTotalItems, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.MandiReport {
	return predicate.MandiReport(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MandiReport) predicate.MandiReport {
	return predicate.MandiReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MandiReport) predicate.MandiReport {
	return predicate.MandiReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MandiReport) predicate.MandiReport {
	return predicate.MandiReport(sql.NotPredicates(p))
}
