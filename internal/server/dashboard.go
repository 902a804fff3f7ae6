package server

import (
	"context"
	"log/slog"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/repository"
)

type DashboardService struct {
	mandipb.UnimplementedDashboardServiceServer
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

func NewDashboardService(statsRepo repository.StatsRepository, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context, _ *mandipb.GetDashboardStatsRequest) (*mandipb.GetDashboardStatsResponse, error) {
	stats, err := s.statsRepo.DashboardStats(ctx)
	if err != nil {
		s.logger.Error("failed to load dashboard stats", "error", err)
		return nil, common.InternalErrorf("dashboard stats: %v", err)
	}

	return &mandipb.GetDashboardStatsResponse{
		TotalUsers:       int32(stats.TotalUsers),
		TotalProducts:    int32(stats.TotalProducts),
		TotalBids:        int32(stats.TotalBids),
		PendingApprovals: int32(stats.PendingApprovals),
		ActiveUsers:      int32(stats.ActiveUsers),
		ActiveProducts:   int32(stats.ActiveProducts),
	}, nil
}
