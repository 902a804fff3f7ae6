package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/shop"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type ShopPage struct {
	Shops   []*entity.Shop
	HasMore bool
}

type ShopRepository interface {
	List(ctx context.Context, pageSize, offset int) (*ShopPage, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Shop, error)
}

type shopRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewShopRepository(client *ent.Client, logger *slog.Logger) ShopRepository {
	return &shopRepository{
		client: client,
		logger: logger,
	}
}

func (r *shopRepository) List(ctx context.Context, pageSize, offset int) (*ShopPage, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	recs, err := r.client.Shop.Query().
		Order(shop.ByCreatedAt(entsql.OrderDesc())).
		Offset(offset).
		Limit(pageSize + 1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list shops", "error", err)
		return nil, err
	}

	hasMore := len(recs) > pageSize
	if hasMore {
		recs = recs[:pageSize]
	}
	page := &ShopPage{HasMore: hasMore, Shops: make([]*entity.Shop, len(recs))}
	for i, rec := range recs {
		page.Shops[i] = utils.ToShop(rec)
	}
	return page, nil
}

func (r *shopRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Shop, error) {
	rec, err := r.client.Shop.UpdateOneID(id).
		SetIsFeatured(featured).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update shop featured flag", "shop_id", id, "error", err)
		return nil, err
	}
	return utils.ToShop(rec), nil
}
