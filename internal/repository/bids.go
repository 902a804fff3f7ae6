package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/bid"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type BidRepository interface {
	List(ctx context.Context) ([]*entity.Bid, error)
	ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bid, error)
}

type bidRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBidRepository(client *ent.Client, logger *slog.Logger) BidRepository {
	return &bidRepository{
		client: client,
		logger: logger,
	}
}

func (r *bidRepository) List(ctx context.Context) ([]*entity.Bid, error) {
	recs, err := r.client.Bid.Query().
		Order(bid.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list bids", "error", err)
		return nil, err
	}

	result := make([]*entity.Bid, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToBid(rec)
	}
	return result, nil
}

func (r *bidRepository) ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bid, error) {
	recs, err := r.client.Bid.Query().
		Where(bid.ProductID(productID)).
		Order(bid.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list bids for product", "product_id", productID, "error", err)
		return nil, err
	}

	result := make([]*entity.Bid, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToBid(rec)
	}
	return result, nil
}
