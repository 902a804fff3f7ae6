package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pakricemarket/mandi-admin/constants"
	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/repository"
	"github.com/pakricemarket/mandi-admin/internal/utils"
)

type UserService struct {
	mandipb.UnimplementedUsersServiceServer
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context, req *mandipb.ListUsersRequest) (*mandipb.ListUsersResponse, error) {
	page, err := s.userRepo.List(ctx, int(req.GetPageSize()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, common.InternalErrorf("list users: %v", err)
	}

	out := make([]*mandipb.User, 0, len(page.Users))
	for _, u := range page.Users {
		out = append(out, utils.ToPBUser(u))
	}
	return &mandipb.ListUsersResponse{Users: out, HasMore: page.HasMore}, nil
}

func (s *UserService) ListUsersByRole(ctx context.Context, req *mandipb.ListUsersByRoleRequest) (*mandipb.ListUsersByRoleResponse, error) {
	role := strings.TrimSpace(req.GetRole())
	if !validRole(role) {
		s.logger.Error("invalid role for list users", "role", role)
		return nil, common.InvalidArgumentErrorf("role must be one of %v", constants.UserRoles)
	}

	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		s.logger.Error("failed to list users by role", "role", role, "error", err)
		return nil, common.InternalErrorf("list users by role: %v", err)
	}

	out := make([]*mandipb.User, 0, len(users))
	for _, u := range users {
		out = append(out, utils.ToPBUser(u))
	}
	return &mandipb.ListUsersByRoleResponse{Users: out}, nil
}

func (s *UserService) SetUserApproval(ctx context.Context, req *mandipb.SetUserApprovalRequest) (*mandipb.SetUserApprovalResponse, error) {
	id, err := parseID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.SetApproval(ctx, id, req.GetApproved())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("user not found")
		}
		s.logger.Error("failed to set user approval", "user_id", id, "error", err)
		return nil, common.InternalErrorf("set user approval: %v", err)
	}
	s.logger.Info("user approval updated", "user_id", id, "approved", req.GetApproved())
	return &mandipb.SetUserApprovalResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *mandipb.DeleteUserRequest) (*mandipb.DeleteUserResponse, error) {
	id, err := parseID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("user not found")
		}
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return nil, common.InternalErrorf("delete user: %v", err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return &mandipb.DeleteUserResponse{}, nil
}

func validRole(role string) bool {
	for _, r := range constants.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}
