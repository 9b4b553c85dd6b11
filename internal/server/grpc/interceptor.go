package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// protectedMethods need a live access token. Reads, registration, login
// and logout are open.
var protectedMethods = map[string]struct{}{
	FullMethod("UpdateUser"):            {},
	FullMethod("PartialUpdateUser"):     {},
	FullMethod("DeleteUser"):            {},
	FullMethod("CreateArticle"):         {},
	FullMethod("UpdateArticle"):         {},
	FullMethod("PartialUpdateArticle"):  {},
	FullMethod("DeleteArticle"):         {},
	FullMethod("CreateTag"):             {},
	FullMethod("UpdateTag"):             {},
	FullMethod("PartialUpdateTag"):      {},
	FullMethod("DeleteTag"):             {},
	FullMethod("AddTagsToArticle"):      {},
	FullMethod("RemoveTagsFromArticle"): {},
}

// UserIDFromContext returns the id stored by the access token interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

func tokenFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := protectedMethods[info.FullMethod]; ok {

		accessToken := tokenFromContext(ctx)
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userId, err := s.services.Users.Authenticate(ctx, accessToken)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userId)

	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request", args...)
	}
	return resp, err
}
