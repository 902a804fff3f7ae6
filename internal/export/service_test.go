package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/repository"
)

type stubReports struct {
	reports []*entity.MandiReport
	err     error
}

func (s *stubReports) Create(_ context.Context, _ *repository.CreateReportRequest) (*entity.MandiReport, error) {
	return nil, errors.New("not used")
}

func (s *stubReports) ListRecent(_ context.Context, _ int) ([]*entity.MandiReport, error) {
	return s.reports, s.err
}

func TestExportReportsXLSX(t *testing.T) {
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	repo := &stubReports{reports: []*entity.MandiReport{
		{
			ID:          uuid.New(),
			Market:      "غلہ منڈی عارفوالا",
			Date:        "15.01.2025",
			Source:      "WhatsApp",
			PDFURL:      "https://bucket.s3.ap-south-1.amazonaws.com/mandi-pdfs/Mandi-List-15-01-2025.pdf",
			PDFFilename: "Mandi-List-15-01-2025.pdf",
			TotalItems:  12,
			CreatedAt:   created,
			ExpiresAt:   created.Add(7 * 24 * time.Hour),
		},
	}}

	svc := NewService(repo, nil)
	out, filename, err := svc.ExportReportsXLSX(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Contains(t, filename, "mandi-reports-")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Market", rows[0][0])
	assert.Equal(t, "غلہ منڈی عارفوالا", rows[1][0])
	assert.Equal(t, "15.01.2025", rows[1][1])
	assert.Equal(t, "12", rows[1][3])
	assert.Equal(t, "Mandi-List-15-01-2025.pdf", rows[1][4])
}

func TestExportReportsXLSXEmptyHistory(t *testing.T) {
	svc := NewService(&stubReports{}, nil)
	out, _, err := svc.ExportReportsXLSX(context.Background(), 10)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestExportReportsXLSXRepositoryFailure(t *testing.T) {
	svc := NewService(&stubReports{err: errors.New("db down")}, nil)
	_, _, err := svc.ExportReportsXLSX(context.Background(), 10)
	assert.Error(t, err)
}
