package grpchealth

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"storefront/pkg/logger"
)

// ServiceName - имя сервиса в grpc.health.v1, под которым публикуется статус заказов.
const ServiceName = "storefront.orders"

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewServer(log logger.Logger) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthServer,
	}
}

// ListenAndServe блокирует до Stop. Возвращает nil при штатной остановке.
func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.With(
		logger.NewField("addr", lis.Addr().String()),
	).Info("gRPC health server starting")

	err := s.server.Serve(lis)
	if err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// SetNotServing переводит все сервисы в NOT_SERVING, новые статусы больше не принимаются.
func (s *Server) SetNotServing() {
	s.health.Shutdown()
	s.log.Info("gRPC health switched to NOT_SERVING")
}

// Stop ждёт завершения активных вызовов, пока не истечёт ctx.
func (s *Server) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC health graceful stop timeout, forcing stop")
		s.server.Stop()
	}
}
