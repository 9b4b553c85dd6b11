// Package client talks to the Inkwell content service over gRPC.
//
// GRPCClient keeps the session token returned by Login and attaches it to
// every call through a unary interceptor. Requests and replies travel as
// google.protobuf.Struct values and are decoded into the types in
// internal/client/models.
//
// Transport and server errors are mapped to the sentinels in errors.go so
// callers can match them with errors.Is.
package client
