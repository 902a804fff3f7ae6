package server

import (
	"context"
	"errors"
	"log/slog"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type ShopService struct {
	mandipb.UnimplementedShopsServiceServer
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

func NewShopService(shopRepo repository.ShopRepository, logger *slog.Logger) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

func (s *ShopService) ListShops(ctx context.Context, req *mandipb.ListShopsRequest) (*mandipb.ListShopsResponse, error) {
	page, err := s.shopRepo.List(ctx, int(req.GetPageSize()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list shops", "error", err)
		return nil, common.InternalErrorf("list shops: %v", err)
	}

	out := make([]*mandipb.Shop, 0, len(page.Shops))
	for _, sh := range page.Shops {
		out = append(out, utils.ToPBShop(sh))
	}
	return &mandipb.ListShopsResponse{Shops: out, HasMore: page.HasMore}, nil
}

func (s *ShopService) SetShopFeatured(ctx context.Context, req *mandipb.SetShopFeaturedRequest) (*mandipb.SetShopFeaturedResponse, error) {
	id, err := parseID(req.GetShopId(), "shop_id")
	if err != nil {
		return nil, err
	}

	sh, err := s.shopRepo.SetFeatured(ctx, id, req.GetFeatured())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("shop not found")
		}
		s.logger.Error("failed to set shop featured", "shop_id", id, "error", err)
		return nil, common.InternalErrorf("set shop featured: %v", err)
	}
	s.logger.Info("shop featured updated", "shop_id", id, "featured", req.GetFeatured())
	return &mandipb.SetShopFeaturedResponse{Shop: utils.ToPBShop(sh)}, nil
}
