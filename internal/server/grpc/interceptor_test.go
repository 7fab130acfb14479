package grpc

import (
	"context"
	"testing"

	"github.com/luconnect/luconnect/internal/api"
	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(us UserService) *GRPCServer {
	return NewGRPCServer("", logging.NewDiscard(), us, nil, nil, nil)
}

func withAuthorization(value string) context.Context {
	md := metadata.New(map[string]string{common.AuthorizationHeaderName: value})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer(stubUsers{err: common.ErrInvalidToken})

	for _, method := range []string{api.PingFullMethodName, api.LoginFullMethodName, "/grpc.health.v1.Health/Check"} {
		info := &grpc.UnaryServerInfo{FullMethod: method}
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if !called || resp != "ok" {
			t.Fatalf("%s: handler not called", method)
		}
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newTestServer(stubUsers{subject: "alice"})
	info := &grpc.UnaryServerInfo{FullMethod: api.WhoAmIFullMethodName}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	for _, ctx := range []context.Context{context.Background(), withAuthorization("Basic abc"), withAuthorization("Bearer ")} {
		_, err := s.accessTokenInterceptor(ctx, nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
		}
		if status.Convert(err).Message() != "missing token" {
			t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
		}
	}
}

func TestInterceptor_Protected_RejectedToken(t *testing.T) {
	tests := []struct {
		err error
		msg string
	}{
		{common.ErrTokenExpired, "token expired"},
		{common.ErrInvalidToken, "could not validate credentials"},
	}

	for _, tt := range tests {
		s := newTestServer(stubUsers{err: tt.err})
		info := &grpc.UnaryServerInfo{FullMethod: api.ListClientsFullMethodName}
		h := func(ctx context.Context, req any) (any, error) {
			t.Fatal("handler should not be called for rejected token")
			return nil, nil
		}

		_, err := s.accessTokenInterceptor(withAuthorization("Bearer abc"), nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
		}
		if got := status.Convert(err).Message(); got != tt.msg {
			t.Fatalf("expected %q, got %q", tt.msg, got)
		}
	}
}

func TestInterceptor_Protected_ValidToken_SetsUsername(t *testing.T) {
	s := newTestServer(stubUsers{subject: "alice"})
	info := &grpc.UnaryServerInfo{FullMethod: api.WhoAmIFullMethodName}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = UsernameFromContext(ctx)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(withAuthorization("bearer abc"), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("username not propagated in context: got %q", got)
	}
}

func TestLoggingInterceptor_RequestID(t *testing.T) {
	s := newTestServer(nil)
	info := &grpc.UnaryServerInfo{FullMethod: api.PingFullMethodName}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = RequestIDFromContext(ctx)
		return nil, status.Error(codes.NotFound, "nope")
	}

	md := metadata.New(map[string]string{RequestIDHeaderName: "req-1"})
	_, err := s.loggingInterceptor(metadata.NewIncomingContext(context.Background(), md), nil, info, h)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("error not passed through: %v", err)
	}
	if got != "req-1" {
		t.Fatalf("incoming request id not kept: %q", got)
	}

	_, _ = s.loggingInterceptor(context.Background(), nil, info, h)
	if len(got) != 36 {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}
