package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/product"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type ProductPage struct {
	Products []*entity.Product
	HasMore  bool
}

type ProductRepository interface {
	List(ctx context.Context, pageSize, offset int) (*ProductPage, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Product, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepository{
		client: client,
		logger: logger,
	}
}

func (r *productRepository) List(ctx context.Context, pageSize, offset int) (*ProductPage, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	recs, err := r.client.Product.Query().
		Order(product.ByCreatedAt(entsql.OrderDesc())).
		Offset(offset).
		Limit(pageSize + 1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, err
	}

	hasMore := len(recs) > pageSize
	if hasMore {
		recs = recs[:pageSize]
	}
	page := &ProductPage{HasMore: hasMore, Products: make([]*entity.Product, len(recs))}
	for i, rec := range recs {
		page.Products[i] = utils.ToProduct(rec)
	}
	return page, nil
}

func (r *productRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Product, error) {
	rec, err := r.client.Product.UpdateOneID(id).
		SetIsApproved(approved).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update product approval", "product_id", id, "error", err)
		return nil, err
	}
	return utils.ToProduct(rec), nil
}

func (r *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Product, error) {
	rec, err := r.client.Product.UpdateOneID(id).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update product status", "product_id", id, "error", err)
		return nil, err
	}
	return utils.ToProduct(rec), nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Product.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete product", "product_id", id, "error", err)
		return err
	}
	return nil
}
