// Package grpc exposes the SafeWalk services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/rpc"
	"google.golang.org/grpc"
)

// Services bundles the business services the server dispatches to.
type Services struct {
	Sessions SessionService
	Contacts ContactService
	Reports  ReportService
	Settings SettingsService
	Alerts   AlertService
}

type GRPCServer struct {
	address  string
	logger   logging.Logger
	sessions SessionService
	contacts ContactService
	reports  ReportService
	settings SettingsService
	alerts   AlertService
	now      func() time.Time
}

func NewGRPCServer(a string, l logging.Logger, svc Services) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: svc.Sessions,
		contacts: svc.Contacts,
		reports:  svc.Reports,
		settings: svc.Settings,
		alerts:   svc.Alerts,
		now:      time.Now,
	}
}

// newServer builds the grpc.Server with the access token interceptor and the
// SafeWalk service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	rpc.RegisterSafeWalkServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
