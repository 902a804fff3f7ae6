package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pakricemarket/mandi-admin/constants"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/llm"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/storage"
)

// Renderer turns validated mandi data into a finished PDF plus a filename.
type Renderer interface {
	Render(data llm.ParsedMandiData) ([]byte, string, error)
}

// Result is everything a successful submission produces. The parsed structure
// itself is transient: it lives here and in the PDF, never in the database.
type Result struct {
	Parsed       llm.ParsedMandiData
	Report       *entity.MandiReport
	PublicURL    string
	PresignedURL string
}

// Processor runs one submission through extract → render → upload → record.
// Stages run strictly in sequence; each depends on the previous stage's
// output. There is no retry and no recovery of prior-stage artifacts: any
// failure aborts the submission and the caller starts over.
type Processor struct {
	logger    *slog.Logger
	extractor llm.MandiExtractor
	renderer  Renderer
	publisher storage.Publisher
	reports   repository.ReportRepository
	now       func() time.Time
}

func NewProcessor(
	logger *slog.Logger,
	extractor llm.MandiExtractor,
	renderer Renderer,
	publisher storage.Publisher,
	reports repository.ReportRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		renderer:  renderer,
		publisher: publisher,
		reports:   reports,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for created_at/expires_at.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	p.now = now
	return p
}

// Run processes one pasted mandi message end to end. Errors are tagged with
// exactly one stage sentinel from internal/common so callers can distinguish
// a bad submission from a bad upstream.
func (p *Processor) Run(ctx context.Context, rawText string) (*Result, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, common.StageError(common.ErrValidation, errors.New("message text is empty"))
	}

	start := time.Now()

	// 1) extraction
	parsed, _, err := p.extractor.ExtractMandiData(ctx, llm.ExtractRequest{RawText: rawText})
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "err", err)
		return nil, common.StageError(common.ErrExtraction, err)
	}
	p.logger.Debug("pipeline.extract.ok",
		"market", parsed.Market,
		"date", parsed.Date,
		"categories", len(parsed.Categories),
		"items", parsed.TotalItems(),
	)

	// Normalize free-form category labels onto the taxonomy. Labels the
	// synonyms map does not recognize keep their raw text so nothing is lost
	// from the rendered report.
	for i := range parsed.Categories {
		raw := parsed.Categories[i].Category
		if cat, ok := constants.Canonicalize(raw); ok {
			parsed.Categories[i].Category = string(cat)
		} else {
			p.logger.Warn("pipeline.category.unmapped", "category", raw)
		}
	}

	// 2) render
	pdfBytes, filename, err := p.renderer.Render(parsed)
	if err != nil {
		p.logger.Error("pipeline.render.failed", "date", parsed.Date, "err", err)
		return nil, common.StageError(common.ErrRender, err)
	}
	p.logger.Debug("pipeline.render.ok", "filename", filename, "bytes", len(pdfBytes))

	// 3) upload
	uploaded, err := p.publisher.Upload(ctx, filename, pdfBytes)
	if err != nil {
		p.logger.Error("pipeline.upload.failed", "filename", filename, "err", err)
		return nil, common.StageError(common.ErrUpload, err)
	}
	p.logger.Debug("pipeline.upload.ok", "key", uploaded.Key)

	// 4) record metadata; the presigned URL is the authoritative pointer
	createdAt := p.now()
	report, err := p.reports.Create(ctx, &repository.CreateReportRequest{
		Market:      parsed.Market,
		Date:        parsed.Date,
		Source:      parsed.Source,
		PDFURL:      uploaded.PresignedURL,
		PDFFilename: filename,
		TotalItems:  parsed.TotalItems(),
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(constants.ReportTTL),
	})
	if err != nil {
		p.logger.Error("pipeline.record.failed", "filename", filename, "err", err)
		return nil, common.StageError(common.ErrPersistence, err)
	}

	p.logger.Info("pipeline.run.ok",
		"report_id", report.ID,
		"market", report.Market,
		"date", report.Date,
		"items", report.TotalItems,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{
		Parsed:       parsed,
		Report:       report,
		PublicURL:    uploaded.PublicURL,
		PresignedURL: uploaded.PresignedURL,
	}, nil
}
