package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/export"
	"github.com/pakricemarket/mandi-admin/internal/pipeline"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type ReportService struct {
	mandipb.UnimplementedReportsServiceServer
	processor  *pipeline.Processor
	reportRepo repository.ReportRepository
	exporter   *export.Service
	logger     *slog.Logger
}

func NewReportService(processor *pipeline.Processor, reportRepo repository.ReportRepository, exporter *export.Service, logger *slog.Logger) *ReportService {
	return &ReportService{
		processor:  processor,
		reportRepo: reportRepo,
		exporter:   exporter,
		logger:     logger,
	}
}

// ParseMandiMessage runs one pasted message through the full pipeline and
// returns the recorded report. The admin retries by pasting again; nothing
// partial survives a failed stage.
func (s *ReportService) ParseMandiMessage(ctx context.Context, req *mandipb.ParseMandiMessageRequest) (*mandipb.ParseMandiMessageResponse, error) {
	if strings.TrimSpace(req.GetRawText()) == "" {
		s.logger.Error("parse request missing raw_text")
		return nil, common.InvalidArgumentError("raw_text is required")
	}

	res, err := s.processor.Run(ctx, req.GetRawText())
	if err != nil {
		s.logger.Error("failed to process mandi message", "error", err)
		return nil, stageStatus(err)
	}

	return &mandipb.ParseMandiMessageResponse{
		Report:       utils.ToPBReport(res.Report),
		PublicUrl:    res.PublicURL,
		PresignedUrl: res.PresignedURL,
	}, nil
}

func (s *ReportService) ListReports(ctx context.Context, req *mandipb.ListReportsRequest) (*mandipb.ListReportsResponse, error) {
	recs, err := s.reportRepo.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list reports", "error", err)
		return nil, common.InternalErrorf("list reports: %v", err)
	}

	out := make([]*mandipb.MandiReport, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReport(r))
	}
	return &mandipb.ListReportsResponse{Reports: out}, nil
}

func (s *ReportService) ExportReports(ctx context.Context, req *mandipb.ExportReportsRequest) (*mandipb.ExportReportsResponse, error) {
	xlsx, filename, err := s.exporter.ExportReportsXLSX(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to export reports", "error", err)
		return nil, common.InternalErrorf("export reports: %v", err)
	}
	return &mandipb.ExportReportsResponse{Archive: xlsx, Filename: filename}, nil
}

// stageStatus maps a stage-tagged pipeline error to a gRPC status. The
// submission itself is only at fault for validation and extraction failures;
// everything downstream is an internal problem.
func stageStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrExtraction):
		return status.Errorf(codes.FailedPrecondition, "extraction failed: %v", err)
	case errors.Is(err, common.ErrRender):
		return status.Errorf(codes.Internal, "pdf render failed: %v", err)
	case errors.Is(err, common.ErrUpload):
		return status.Errorf(codes.Unavailable, "upload failed: %v", err)
	case errors.Is(err, common.ErrPersistence):
		return status.Errorf(codes.Internal, "record failed: %v", err)
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
