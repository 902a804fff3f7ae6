package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mandipb "github.com/pakricemarket/mandi-admin/gen/proto/mandi/v1"
	"github.com/pakricemarket/mandi-admin/internal/common"
	"github.com/pakricemarket/mandi-admin/internal/entity"
	"github.com/pakricemarket/mandi-admin/internal/repository"
)

type stubUserRepo struct {
	err error
}

func (s *stubUserRepo) List(context.Context, int, int) (*repository.UserPage, error) {
	return &repository.UserPage{}, s.err
}

func (s *stubUserRepo) ListByRole(context.Context, string) ([]*entity.User, error) {
	return nil, s.err
}

func (s *stubUserRepo) SetApproval(context.Context, uuid.UUID, bool) (*entity.User, error) {
	return nil, s.err
}

func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func TestSetUserApprovalMapsErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"missing row", common.ErrNotFound, codes.NotFound},
		{"other failure", errors.New("db down"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewUserService(&stubUserRepo{err: tc.err}, slog.Default())
			_, err := svc.SetUserApproval(context.Background(), &mandipb.SetUserApprovalRequest{
				UserId:   uuid.NewString(),
				Approved: true,
			})
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
		})
	}
}

func TestSetUserApprovalRejectsBadID(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, slog.Default())

	for _, id := range []string{"", "not-a-uuid"} {
		_, err := svc.SetUserApproval(context.Background(), &mandipb.SetUserApprovalRequest{UserId: id})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code(), "id %q", id)
	}
}

func TestDeleteUserMapsNotFound(t *testing.T) {
	svc := NewUserService(&stubUserRepo{err: common.ErrNotFound}, slog.Default())

	_, err := svc.DeleteUser(context.Background(), &mandipb.DeleteUserRequest{UserId: uuid.NewString()})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}
