package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/mandireport"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

// CreateReportRequest wraps parameters for recording a published report.
// Timestamps come from the pipeline's clock so expiry is testable.
type CreateReportRequest struct {
	Market      string
	Date        string
	Source      string
	PDFURL      string
	PDFFilename string
	TotalItems  int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ReportRepository is append-only: records are created once after a
// successful upload and never updated or deleted by the application.
type ReportRepository interface {
	Create(ctx context.Context, req *CreateReportRequest) (*entity.MandiReport, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.MandiReport, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, req *CreateReportRequest) (*entity.MandiReport, error) {
	rec, err := r.client.MandiReport.Create().
		SetMarket(req.Market).
		SetDate(req.Date).
		SetSource(req.Source).
		SetPdfURL(req.PDFURL).
		SetPdfFilename(req.PDFFilename).
		SetTotalItems(req.TotalItems).
		SetCreatedAt(req.CreatedAt).
		SetExpiresAt(req.ExpiresAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save mandi report", "market", req.Market, "date", req.Date, "error", err)
		return nil, err
	}
	return utils.ToMandiReport(rec), nil
}

func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]*entity.MandiReport, error) {
	if limit <= 0 {
		limit = 10
	}
	recs, err := r.client.MandiReport.Query().
		Order(mandireport.ByCreatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list mandi reports", "error", err)
		return nil, err
	}

	result := make([]*entity.MandiReport, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToMandiReport(rec)
	}
	return result, nil
}
