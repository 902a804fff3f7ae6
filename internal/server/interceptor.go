package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/pakricemarket/mandi-admin/internal/common"
)

const (
	requestIDHeader = "x-request-id"
	adminIDHeader   = "x-admin-id"
)

// UnaryContextInterceptor stamps each RPC context with a request id (taken
// from metadata, or minted) and the caller's admin id when the client sends
// one. The admin identity only ever travels with the request like this; no
// handler reads it from ambient state.
func UnaryContextInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := ""
		adminID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(requestIDHeader); len(v) > 0 {
				reqID = v[0]
			}
			if v := md.Get(adminIDHeader); len(v) > 0 {
				adminID = v[0]
			}
		}
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, reqID)
		if adminID != "" {
			ctx = common.WithAdminID(ctx, adminID)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			"method", info.FullMethod,
			"req_id", reqID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if adminID != "" {
			attrs = append(attrs, "admin_id", adminID)
		}
		if err != nil {
			attrs = append(attrs, "code", status.Code(err).String(), "error", err)
			logger.Warn("rpc.done", attrs...)
		} else {
			logger.Debug("rpc.done", attrs...)
		}
		return resp, err
	}
}
