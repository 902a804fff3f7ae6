package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type AuthService struct {
	mandipb.UnimplementedAuthServiceServer
	adminRepo repository.AdminRepository
	logger    *slog.Logger
}

func NewAuthService(adminRepo repository.AdminRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login authenticates an admin by email and password. A wrong password and an
// unknown email are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *mandipb.LoginRequest) (*mandipb.LoginResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" || req.GetPassword() == "" {
		return nil, common.InvalidArgumentError("email and password are required")
	}

	admin, err := s.adminRepo.Authenticate(ctx, email, req.GetPassword())
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.logger.Warn("admin login rejected", "email", email)
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		s.logger.Error("failed to authenticate admin", "email", email, "error", err)
		return nil, common.InternalErrorf("login: %v", err)
	}

	s.logger.Info("admin logged in", "admin_id", admin.ID)
	return &mandipb.LoginResponse{Admin: utils.ToPBAdmin(admin)}, nil
}
