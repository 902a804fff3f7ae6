package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pakricemarket/mandi-admin/internal/repository"
)

// Service produces XLSX bytes for the report history export.
type Service struct {
	reports repository.ReportRepository
	logger  *slog.Logger
}

func NewService(reports repository.ReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, logger: logger}
}

// ExportReportsXLSX returns an XLSX workbook listing the most recent reports,
// newest first. limit <= 0 falls back to the repository's default page size
// (the 10 most recent).
func (s *Service) ExportReportsXLSX(ctx context.Context, limit int) ([]byte, string, error) {
	start := time.Now()

	recs, err := s.reports.ListRecent(ctx, limit)
	if err != nil {
		return nil, "", fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Reports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Market",
		"Date",
		"Source",
		"Items",
		"PDF Filename",
		"PDF URL",
		"Created At",
		"Expires At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Market)
		write(2, r.Date)
		write(3, r.Source)
		write(4, r.TotalItems)
		write(5, r.PDFFilename)
		write(6, r.PDFURL)
		write(7, r.CreatedAt.UTC().Format(time.RFC3339))
		write(8, r.ExpiresAt.UTC().Format(time.RFC3339))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // market
	_ = f.SetColWidth(sheet, "B", "C", 16) // date, source
	_ = f.SetColWidth(sheet, "E", "E", 32) // filename
	_ = f.SetColWidth(sheet, "F", "F", 72) // url
	_ = f.SetColWidth(sheet, "G", "H", 22) // timestamps

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	filename := fmt.Sprintf("mandi-reports-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), filename, nil
}
