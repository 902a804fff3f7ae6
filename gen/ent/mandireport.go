// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/mandireport"
)

// MandiReport is the model entity for the MandiReport schema.
type MandiReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Market holds the value of the "market" field.
	Market string `json:"market,omitempty"`
	// Date holds the value of the "date" field.
	Date string `json:"date,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// PdfURL holds the value of the "pdf_url" field.
	PdfURL string `json:"pdf_url,omitempty"`
	// PdfFilename holds the value of the "pdf_filename" field.
	PdfFilename string `json:"pdf_filename,omitempty"`
	// TotalItems holds the value of the "total_items" field.
	TotalItems int `json:"total_items,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MandiReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mandireport.FieldTotalItems:
			values[i] = new(sql.NullInt64)
		case mandireport.FieldMarket, mandireport.FieldDate, mandireport.FieldSource, mandireport.FieldPdfURL, mandireport.FieldPdfFilename:
			values[i] = new(sql.NullString)
		case mandireport.FieldCreatedAt, mandireport.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case mandireport.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MandiReport fields.
func (_m *MandiReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mandireport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mandireport.FieldMarket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market", values[i])
			} else if value.Valid {
				_m.Market = value.String
			}
		case mandireport.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case mandireport.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case mandireport.FieldPdfURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_url", values[i])
			} else if value.Valid {
				_m.PdfURL = value.String
			}
		case mandireport.FieldPdfFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_filename", values[i])
			} else if value.Valid {
				_m.PdfFilename = value.String
			}
		case mandireport.FieldTotalItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_items", values[i])
			} else if value.Valid {
				_m.TotalItems = int(value.Int64)
			}
		case mandireport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mandireport.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MandiReport.
// This includes values selected through modifiers, order, etc.
func (_m *MandiReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MandiReport.
// Note that you need to call MandiReport.Unwrap() before calling this method if this MandiReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MandiReport) Update() *MandiReportUpdateOne {
	return NewMandiReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MandiReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MandiReport) Unwrap() *MandiReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MandiReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MandiReport) String() string {
	var builder strings.Builder
	builder.WriteString("MandiReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("market=")
	builder.WriteString(_m.Market)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("pdf_url=")
	builder.WriteString(_m.PdfURL)
	builder.WriteString(", ")
	builder.WriteString("pdf_filename=")
	builder.WriteString(_m.PdfFilename)
	builder.WriteString(", ")
	builder.WriteString("total_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalItems))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MandiReports is a parsable slice of MandiReport.
type MandiReports []*MandiReport
