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

type ProductService struct {
	mandipb.UnimplementedProductsServiceServer
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *ProductService) ListProducts(ctx context.Context, req *mandipb.ListProductsRequest) (*mandipb.ListProductsResponse, error) {
	page, err := s.productRepo.List(ctx, int(req.GetPageSize()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list products", "error", err)
		return nil, common.InternalErrorf("list products: %v", err)
	}

	out := make([]*mandipb.Product, 0, len(page.Products))
	for _, p := range page.Products {
		out = append(out, utils.ToPBProduct(p))
	}
	return &mandipb.ListProductsResponse{Products: out, HasMore: page.HasMore}, nil
}

func (s *ProductService) SetProductApproval(ctx context.Context, req *mandipb.SetProductApprovalRequest) (*mandipb.SetProductApprovalResponse, error) {
	id, err := parseID(req.GetProductId(), "product_id")
	if err != nil {
		return nil, err
	}

	p, err := s.productRepo.SetApproval(ctx, id, req.GetApproved())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("product not found")
		}
		s.logger.Error("failed to set product approval", "product_id", id, "error", err)
		return nil, common.InternalErrorf("set product approval: %v", err)
	}
	s.logger.Info("product approval updated", "product_id", id, "approved", req.GetApproved())
	return &mandipb.SetProductApprovalResponse{Product: utils.ToPBProduct(p)}, nil
}

func (s *ProductService) SetProductStatus(ctx context.Context, req *mandipb.SetProductStatusRequest) (*mandipb.SetProductStatusResponse, error) {
	id, err := parseID(req.GetProductId(), "product_id")
	if err != nil {
		return nil, err
	}

	p, err := s.productRepo.SetActive(ctx, id, req.GetActive())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("product not found")
		}
		s.logger.Error("failed to set product status", "product_id", id, "error", err)
		return nil, common.InternalErrorf("set product status: %v", err)
	}
	s.logger.Info("product status updated", "product_id", id, "active", req.GetActive())
	return &mandipb.SetProductStatusResponse{Product: utils.ToPBProduct(p)}, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, req *mandipb.DeleteProductRequest) (*mandipb.DeleteProductResponse, error) {
	id, err := parseID(req.GetProductId(), "product_id")
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("product not found")
		}
		s.logger.Error("failed to delete product", "product_id", id, "error", err)
		return nil, common.InternalErrorf("delete product: %v", err)
	}
	s.logger.Info("product deleted", "product_id", id)
	return &mandipb.DeleteProductResponse{}, nil
}
