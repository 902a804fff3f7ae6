package repository

import (
	"context"
	"log/slog"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
)

// DashboardStats are the aggregate counts shown on the admin landing view.
type DashboardStats struct {
	TotalUsers       int
	TotalProducts    int
	TotalBids        int
	PendingApprovals int
	ActiveUsers      int
	ActiveProducts   int
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type statsRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStatsRepository(client *ent.Client, logger *slog.Logger) StatsRepository {
	return &statsRepository{
		client: client,
		logger: logger,
	}
}

func (r *statsRepository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = r.client.User.Query().Count(ctx); err != nil {
		r.logger.Error("failed to count users", "error", err)
		return nil, err
	}
	if stats.ActiveUsers, err = r.client.User.Query().Where(user.IsApproved(true)).Count(ctx); err != nil {
		r.logger.Error("failed to count approved users", "error", err)
		return nil, err
	}
	stats.PendingApprovals = stats.TotalUsers - stats.ActiveUsers

	if stats.TotalProducts, err = r.client.Product.Query().Count(ctx); err != nil {
		r.logger.Error("failed to count products", "error", err)
		return nil, err
	}
	if stats.ActiveProducts, err = r.client.Product.Query().Where(product.IsActive(true)).Count(ctx); err != nil {
		r.logger.Error("failed to count active products", "error", err)
		return nil, err
	}

	if stats.TotalBids, err = r.client.Bid.Query().Count(ctx); err != nil {
		r.logger.Error("failed to count bids", "error", err)
		return nil, err
	}

	return stats, nil
}
