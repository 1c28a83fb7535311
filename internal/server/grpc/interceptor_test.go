package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newTestServer(&fakeSessions{})

	for _, m := range []string{rpc.OpenSessionFullMethod, rpc.PingFullMethod} {
		called := false
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if !called || resp != "ok" {
			t.Fatalf("%s: handler not called", m)
		}
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(&fakeSessions{})
	info := &grpc.UnaryServerInfo{FullMethod: rpc.ListContactsFullMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_BadTokens(t *testing.T) {
	cases := []struct {
		err error
		msg string
	}{
		{common.ErrInvalidToken, "invalid token"},
		{common.ErrTokenExpired, "token expired"},
	}

	for _, tc := range cases {
		s := newTestServer(&fakeSessions{ownerErr: tc.err})
		info := &grpc.UnaryServerInfo{FullMethod: rpc.TriggerAlertFullMethod}
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler should not be called")
			return nil, nil
		}

		_, err := s.accessTokenInterceptor(withToken("tok"), nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
		}
		if got := status.Convert(err).Message(); got != tc.msg {
			t.Fatalf("expected %q, got %q", tc.msg, got)
		}
	}
}

func TestInterceptor_ValidTokenPutsOwnerInContext(t *testing.T) {
	s := newTestServer(&fakeSessions{owner: "owner-1"})
	info := &grpc.UnaryServerInfo{FullMethod: rpc.GetSettingsFullMethod}

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		var err error
		seen, err = ownerIDFromContext(ctx)
		return nil, err
	}

	if _, err := s.accessTokenInterceptor(withToken("good"), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "owner-1" {
		t.Fatalf("owner in context = %q, want owner-1", seen)
	}
}

func TestOwnerIDFromContext_Missing(t *testing.T) {
	_, err := ownerIDFromContext(context.Background())
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}
