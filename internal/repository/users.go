package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/user"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

// UserPage is one page of users. HasMore is detected by fetching one row
// beyond the page size and trimming it.
type UserPage struct {
	Users   []*entity.User
	HasMore bool
}

type UserRepository interface {
	List(ctx context.Context, pageSize, offset int) (*UserPage, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) List(ctx context.Context, pageSize, offset int) (*UserPage, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	recs, err := r.client.User.Query().
		Order(user.ByCreatedAt(entsql.OrderDesc())).
		Offset(offset).
		Limit(pageSize + 1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	hasMore := len(recs) > pageSize
	if hasMore {
		recs = recs[:pageSize]
	}
	page := &UserPage{HasMore: hasMore, Users: make([]*entity.User, len(recs))}
	for i, rec := range recs {
		page.Users[i] = utils.ToUser(rec)
	}
	return page, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	recs, err := r.client.User.Query().
		Where(user.Role(role)).
		Order(user.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list users by role", "role", role, "error", err)
		return nil, err
	}

	result := make([]*entity.User, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToUser(rec)
	}
	return result, nil
}

func (r *userRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.User, error) {
	rec, err := r.client.User.UpdateOneID(id).
		SetIsApproved(approved).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update user approval", "user_id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}
	return nil
}
