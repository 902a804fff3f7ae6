package server

import (
	"context"
	"log/slog"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type BidService struct {
	mandipb.UnimplementedBidsServiceServer
	bidRepo repository.BidRepository
	logger  *slog.Logger
}

func NewBidService(bidRepo repository.BidRepository, logger *slog.Logger) *BidService {
	return &BidService{
		bidRepo: bidRepo,
		logger:  logger,
	}
}

func (s *BidService) ListBids(ctx context.Context, req *mandipb.ListBidsRequest) (*mandipb.ListBidsResponse, error) {
	bids, err := s.bidRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list bids", "error", err)
		return nil, common.InternalErrorf("list bids: %v", err)
	}

	if limit := int(req.GetLimit()); limit > 0 && len(bids) > limit {
		bids = bids[:limit]
	}

	out := make([]*mandipb.Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, utils.ToPBBid(b))
	}
	return &mandipb.ListBidsResponse{Bids: out}, nil
}

func (s *BidService) ListBidsForProduct(ctx context.Context, req *mandipb.ListBidsForProductRequest) (*mandipb.ListBidsForProductResponse, error) {
	id, err := parseID(req.GetProductId(), "product_id")
	if err != nil {
		return nil, err
	}

	bids, err := s.bidRepo.ListForProduct(ctx, id)
	if err != nil {
		s.logger.Error("failed to list bids for product", "product_id", id, "error", err)
		return nil, common.InternalErrorf("list bids for product: %v", err)
	}

	out := make([]*mandipb.Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, utils.ToPBBid(b))
	}
	return &mandipb.ListBidsForProductResponse{Bids: out}, nil
}
