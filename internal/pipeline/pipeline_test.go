package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakricemarket/mandi-admin/constants"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/llm"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/storage"
)

type fakeExtractor struct {
	data llm.ParsedMandiData
	err  error
}

func (f *fakeExtractor) ExtractMandiData(_ context.Context, _ llm.ExtractRequest) (llm.ParsedMandiData, []byte, error) {
	return f.data, nil, f.err
}

type fakeRenderer struct {
	err  error
	last llm.ParsedMandiData
}

func (f *fakeRenderer) Render(data llm.ParsedMandiData) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	f.last = data
	return []byte("%PDF-fake"), "Mandi-List-15-01-2025.pdf", nil
}

type fakePublisher struct {
	err      error
	uploaded []byte
}

func (f *fakePublisher) Upload(_ context.Context, filename string, pdf []byte) (storage.UploadResult, error) {
	if f.err != nil {
		return storage.UploadResult{}, f.err
	}
	f.uploaded = pdf
	return storage.UploadResult{
		Key:          "mandi-pdfs/" + filename,
		PublicURL:    "https://bucket.s3.ap-south-1.amazonaws.com/mandi-pdfs/" + filename,
		PresignedURL: "https://bucket.s3.ap-south-1.amazonaws.com/mandi-pdfs/" + filename + "?X-Amz-Signature=abc",
	}, nil
}

type fakeReportRepo struct {
	err  error
	last *repository.CreateReportRequest
}

func (f *fakeReportRepo) Create(_ context.Context, req *repository.CreateReportRequest) (*entity.MandiReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = req
	return &entity.MandiReport{
		ID:          uuid.New(),
		Market:      req.Market,
		Date:        req.Date,
		Source:      req.Source,
		PDFURL:      req.PDFURL,
		PDFFilename: req.PDFFilename,
		TotalItems:  req.TotalItems,
		CreatedAt:   req.CreatedAt,
		ExpiresAt:   req.ExpiresAt,
	}, nil
}

func (f *fakeReportRepo) ListRecent(_ context.Context, _ int) ([]*entity.MandiReport, error) {
	return nil, nil
}

func parsedFixture() llm.ParsedMandiData {
	p := 3200.0
	return llm.ParsedMandiData{
		Date:   "15.01.2025",
		Market: "غلہ منڈی عارفوالا",
		Source: "WhatsApp",
		Categories: []llm.MandiCategory{
			{Category: "Dhan (Rice Paddy)", Items: []llm.MandiItem{
				{NameUrdu: "ڈی 98 ڈرائی", Price: &p, Unit: "40kg"},
				{NameUrdu: "ڈی 98", Unit: "40kg"},
			}},
			{Category: "Wheat", Items: []llm.MandiItem{
				{NameUrdu: "گندم", Price: &p, Unit: "40kg"},
			}},
		},
	}
}

func newTestProcessor(ex *fakeExtractor, rn *fakeRenderer, pub *fakePublisher, repo *fakeReportRepo, now time.Time) *Processor {
	return NewProcessor(nil, ex, rn, pub, repo).WithClock(func() time.Time { return now })
}

func TestRunHappyPath(t *testing.T) {
	fixed := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{}
	pub := &fakePublisher{}
	p := newTestProcessor(&fakeExtractor{data: parsedFixture()}, &fakeRenderer{}, pub, repo, fixed)

	res, err := p.Run(context.Background(), "غلہ منڈی عارفوالا ...")
	require.NoError(t, err)

	require.NotNil(t, repo.last)
	assert.Equal(t, "15.01.2025", repo.last.Date)
	assert.Equal(t, 3, repo.last.TotalItems)
	assert.Equal(t, fixed, repo.last.CreatedAt)
	assert.Equal(t, fixed.Add(constants.ReportTTL), repo.last.ExpiresAt)
	// the record points at the signed URL, not the bare object URL
	assert.Contains(t, repo.last.PDFURL, "X-Amz-Signature")
	assert.Equal(t, []byte("%PDF-fake"), pub.uploaded)

	assert.Equal(t, res.Report.PDFURL, res.PresignedURL)
	assert.Equal(t, 3, res.Report.TotalItems)
}

func TestRunCanonicalizesCategoryLabels(t *testing.T) {
	data := parsedFixture()
	data.Categories[0].Category = "paddy"
	data.Categories[1].Category = "مکئی"
	data.Categories = append(data.Categories, llm.MandiCategory{Category: "Fancy Pulses"})

	rn := &fakeRenderer{}
	p := newTestProcessor(&fakeExtractor{data: data}, rn, &fakePublisher{}, &fakeReportRepo{}, time.Now())

	_, err := p.Run(context.Background(), "غلہ منڈی عارفوالا ...")
	require.NoError(t, err)

	require.Len(t, rn.last.Categories, 3)
	assert.Equal(t, string(constants.Dhan), rn.last.Categories[0].Category)
	assert.Equal(t, string(constants.Corn), rn.last.Categories[1].Category)
	// unrecognized labels pass through untouched
	assert.Equal(t, "Fancy Pulses", rn.last.Categories[2].Category)
}

func TestRunRejectsEmptyInput(t *testing.T) {
	repo := &fakeReportRepo{}
	p := newTestProcessor(&fakeExtractor{}, &fakeRenderer{}, &fakePublisher{}, repo, time.Now())

	_, err := p.Run(context.Background(), "   \n\t ")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Nil(t, repo.last)
}

func TestRunTagsStageFailures(t *testing.T) {
	boom := errors.New("boom")
	fixed := time.Now()

	cases := []struct {
		name string
		make func() *Processor
		want error
	}{
		{
			"extraction",
			func() *Processor {
				return newTestProcessor(&fakeExtractor{err: boom}, &fakeRenderer{}, &fakePublisher{}, &fakeReportRepo{}, fixed)
			},
			common.ErrExtraction,
		},
		{
			"render",
			func() *Processor {
				return newTestProcessor(&fakeExtractor{data: parsedFixture()}, &fakeRenderer{err: boom}, &fakePublisher{}, &fakeReportRepo{}, fixed)
			},
			common.ErrRender,
		},
		{
			"upload",
			func() *Processor {
				return newTestProcessor(&fakeExtractor{data: parsedFixture()}, &fakeRenderer{}, &fakePublisher{err: boom}, &fakeReportRepo{}, fixed)
			},
			common.ErrUpload,
		},
		{
			"persistence",
			func() *Processor {
				return newTestProcessor(&fakeExtractor{data: parsedFixture()}, &fakeRenderer{}, &fakePublisher{}, &fakeReportRepo{err: boom}, fixed)
			},
			common.ErrPersistence,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.make().Run(context.Background(), "some message")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, boom)
		})
	}
}
