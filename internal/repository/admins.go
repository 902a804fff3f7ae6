package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/gen/ent"
	"github.com/pakricemarket/mandi-admin/gen/ent/admin"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type AdminRepository interface {
	Authenticate(ctx context.Context, email, password string) (*entity.Admin, error)
	Create(ctx context.Context, email, password, name string) (*entity.Admin, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type adminRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAdminRepository(client *ent.Client, logger *slog.Logger) AdminRepository {
	return &adminRepository{
		client: client,
		logger: logger,
	}
}

// Authenticate matches an active admin by credentials and bumps last_login.
// A failed last_login update is logged but does not fail the login.
func (r *adminRepository) Authenticate(ctx context.Context, email, password string) (*entity.Admin, error) {
	rec, err := r.client.Admin.Query().
		Where(
			admin.Email(email),
			admin.Password(password),
			admin.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrUnauthorized
		}
		r.logger.Error("failed to authenticate admin", "email", email, "error", err)
		return nil, err
	}

	if err := r.client.Admin.UpdateOneID(rec.ID).SetLastLogin(time.Now()).Exec(ctx); err != nil {
		r.logger.Warn("failed to update admin last_login", "admin_id", rec.ID, "error", err)
	}

	return utils.ToAdmin(rec), nil
}

func (r *adminRepository) Create(ctx context.Context, email, password, name string) (*entity.Admin, error) {
	builder := r.client.Admin.Create().
		SetEmail(email).
		SetPassword(password)
	if name != "" {
		builder = builder.SetName(name)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create admin", "email", email, "error", err)
		return nil, err
	}
	return utils.ToAdmin(rec), nil
}

func (r *adminRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Admin.UpdateOneID(id).SetIsActive(false).Exec(ctx); err != nil {
		r.logger.Error("failed to deactivate admin", "admin_id", id, "error", err)
		return err
	}
	return nil
}
