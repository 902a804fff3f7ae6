package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/export"
	"github.com/pakricemarket/mandi-admin/internal/llm/openai"
	"github.com/pakricemarket/mandi-admin/internal/pdf"
	"github.com/pakricemarket/mandi-admin/internal/pipeline"
	repo "github.com/pakricemarket/mandi-admin/internal/repository"
	svc "github.com/pakricemarket/mandi-admin/internal/server"
	"github.com/pakricemarket/mandi-admin/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.UnaryContextInterceptor(logger)),
	)

	reportsRepo := repo.NewReportRepository(entc, logger)
	usersRepo := repo.NewUserRepository(entc, logger)
	productsRepo := repo.NewProductRepository(entc, logger)
	bidsRepo := repo.NewBidRepository(entc, logger)
	shopsRepo := repo.NewShopRepository(entc, logger)
	adminsRepo := repo.NewAdminRepository(entc, logger)
	statsRepo := repo.NewStatsRepository(entc, logger)

	openaiClient := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	renderer := pdf.NewRenderer(pdf.Config{UrduFontFile: cfg.PDF.UrduFontFile}, logger)

	publisher, err := storage.NewS3Publisher(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to init s3 publisher", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(logger, openaiClient, renderer, publisher, reportsRepo)
	exporter := export.NewService(reportsRepo, logger)

	mandipb.RegisterReportsServiceServer(grpcServer, svc.NewReportService(processor, reportsRepo, exporter, logger))
	mandipb.RegisterUsersServiceServer(grpcServer, svc.NewUserService(usersRepo, logger))
	mandipb.RegisterProductsServiceServer(grpcServer, svc.NewProductService(productsRepo, logger))
	mandipb.RegisterBidsServiceServer(grpcServer, svc.NewBidService(bidsRepo, logger))
	mandipb.RegisterShopsServiceServer(grpcServer, svc.NewShopService(shopsRepo, logger))
	mandipb.RegisterDashboardServiceServer(grpcServer, svc.NewDashboardService(statsRepo, logger))
	mandipb.RegisterAuthServiceServer(grpcServer, svc.NewAuthService(adminsRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("mandi-admin listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
