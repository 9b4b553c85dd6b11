package grpc

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Every method takes
// and returns a google.protobuf.Struct.
const ServiceName = common.ContentServiceName

// FullMethod returns the "/service/method" path used on the wire.
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

type contentServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type handlerFunc func(*GRPCServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, h handlerFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(*GRPCServer)
			if interceptor == nil {
				return h(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return h(s, ctx, req.(*structpb.Struct))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*contentServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", (*GRPCServer).Ping),
		unary("Login", (*GRPCServer).Login),
		unary("Logout", (*GRPCServer).Logout),

		unary("GetAllUsers", (*GRPCServer).GetAllUsers),
		unary("CreateUser", (*GRPCServer).CreateUser),
		unary("GetUser", (*GRPCServer).GetUser),
		unary("UpdateUser", (*GRPCServer).UpdateUser),
		unary("PartialUpdateUser", (*GRPCServer).PartialUpdateUser),
		unary("DeleteUser", (*GRPCServer).DeleteUser),

		unary("GetAllArticles", (*GRPCServer).GetAllArticles),
		unary("CreateArticle", (*GRPCServer).CreateArticle),
		unary("GetArticle", (*GRPCServer).GetArticle),
		unary("UpdateArticle", (*GRPCServer).UpdateArticle),
		unary("PartialUpdateArticle", (*GRPCServer).PartialUpdateArticle),
		unary("DeleteArticle", (*GRPCServer).DeleteArticle),

		unary("GetAllTags", (*GRPCServer).GetAllTags),
		unary("CreateTag", (*GRPCServer).CreateTag),
		unary("GetTag", (*GRPCServer).GetTag),
		unary("UpdateTag", (*GRPCServer).UpdateTag),
		unary("PartialUpdateTag", (*GRPCServer).PartialUpdateTag),
		unary("DeleteTag", (*GRPCServer).DeleteTag),

		unary("GetArticleTags", (*GRPCServer).GetArticleTags),
		unary("AddTagsToArticle", (*GRPCServer).AddTagsToArticle),
		unary("RemoveTagsFromArticle", (*GRPCServer).RemoveTagsFromArticle),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inkwell/v1/content.proto",
}
