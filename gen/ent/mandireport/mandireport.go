// Code generated by ent, DO NOT EDIT.

package mandireport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mandireport type in the database.
	Label = "mandi_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMarket holds the string denoting the market field in the database.
	FieldMarket = "market"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPdfURL holds the string denoting the pdf_url field in the database.
	FieldPdfURL = "pdf_url"
	// FieldPdfFilename holds the string denoting the pdf_filename field in the database.
	FieldPdfFilename = "pdf_filename"
	// FieldTotalItems holds the string denoting the total_items field in the database.
	FieldTotalItems = "total_items"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the mandireport in the database.
	Table = "mandi_reports"
)

// Columns holds all SQL columns for mandireport fields.
var Columns = []string{
	FieldID,
	FieldMarket,
	FieldDate,
	FieldSource,
	FieldPdfURL,
	FieldPdfFilename,
	FieldTotalItems,
	FieldCreatedAt,
	FieldExpiresAt,
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
	// MarketValidator is a validator for the "market" field. It is called by the builders before save.
	MarketValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// PdfURLValidator is a validator for the "pdf_url" field. It is called by the builders before save.
	PdfURLValidator func(string) error
	// PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	PdfFilenameValidator func(string) error
	// TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	TotalItemsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MandiReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMarket orders the results by the market field.
func ByMarket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarket, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPdfURL orders the results by the pdf_url field.
func ByPdfURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfURL, opts...).ToFunc()
}

// ByPdfFilename orders the results by the pdf_filename field.
func ByPdfFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFilename, opts...).ToFunc()
}

// ByTotalItems orders the results by the total_items field.
func ByTotalItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalItems, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
