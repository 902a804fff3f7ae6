package constants

import "time"

// Report document constants shared by the storage publisher and the recorder.
const (
	// PDFFolderPrefix is the S3 key prefix for uploaded mandi PDFs.
	PDFFolderPrefix = "mandi-pdfs/"

	// PDFContentType is the content type set on uploaded report documents.
	PDFContentType = "application/pdf"

	// ReportTTL is the advertised validity window for a published report.
	// The presigned URL expires after exactly this duration. Actual object
	// deletion depends on an S3 lifecycle rule configured outside this code;
	// expires_at in the metadata record is advisory only.
	ReportTTL = 7 * 24 * time.Hour
)
