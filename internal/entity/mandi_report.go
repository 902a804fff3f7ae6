package entity

import (
	"time"

	"github.com/google/uuid"
)

// MandiReport is the published-report metadata record for data transfer
// between layers. Append-only; never mutated after creation.
type MandiReport struct {
	ID          uuid.UUID `json:"id"`
	Market      string    `json:"market"`
	Date        string    `json:"date"`
	Source      string    `json:"source"`
	PDFURL      string    `json:"pdf_url"`
	PDFFilename string    `json:"pdf_filename"`
	TotalItems  int       `json:"total_items"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
