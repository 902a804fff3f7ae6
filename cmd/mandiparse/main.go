package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/llm/openai"
	"github.com/pakricemarket/mandi-admin/internal/pdf"
	"github.com/pakricemarket/mandi-admin/internal/pipeline"
	repo "github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/storage"
)

// mandiparse runs one message through the full pipeline from the command
// line: the message text comes from the file named in argv[1], or stdin.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var raw []byte
	var err error
	if len(os.Args) >= 2 {
		raw, err = os.ReadFile(os.Args[1])
		if err != nil {
			logger.Error("read input file", "path", os.Args[1], "error", err)
			os.Exit(2)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(2)
		}
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	reportsRepo := repo.NewReportRepository(entc, logger)

	openaiClient := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	renderer := pdf.NewRenderer(pdf.Config{UrduFontFile: cfg.PDF.UrduFontFile}, logger)

	publisher, err := storage.NewS3Publisher(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("init s3 publisher", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(logger, openaiClient, renderer, publisher, reportsRepo)

	start := time.Now()
	res, err := processor.Run(ctx, string(raw))
	if err != nil {
		logger.Error("pipeline.run.error", "err", err)
		os.Exit(1)
	}

	logger.Info("done",
		"report_id", res.Report.ID.String(),
		"market", res.Report.Market,
		"date", res.Report.Date,
		"items", res.Report.TotalItems,
		"pdf_url", res.PresignedURL,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
