package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/pakricemarket/mandi-admin/internal/common"
)

func TestUnaryContextInterceptorStampsContext(t *testing.T) {
	ic := UnaryContextInterceptor(slog.Default())

	md := metadata.Pairs("x-request-id", "req-123", "x-admin-id", "admin-456")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var seen context.Context
	_, err := ic(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/mandi.v1.UsersService/ListUsers"},
		func(ctx context.Context, _ any) (any, error) {
			seen = ctx
			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "req-123", common.RequestIDFromContext(seen))
	assert.Equal(t, "admin-456", common.AdminIDFromContext(seen))
}

func TestUnaryContextInterceptorMintsRequestID(t *testing.T) {
	ic := UnaryContextInterceptor(slog.Default())

	var seen context.Context
	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/mandi.v1.AuthService/Login"},
		func(ctx context.Context, _ any) (any, error) {
			seen = ctx
			return nil, nil
		})
	require.NoError(t, err)
	assert.NotEmpty(t, common.RequestIDFromContext(seen))
	assert.Empty(t, common.AdminIDFromContext(seen))
}

func TestUnaryContextInterceptorPassesErrorsThrough(t *testing.T) {
	ic := UnaryContextInterceptor(slog.Default())

	boom := errors.New("boom")
	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(context.Context, any) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
