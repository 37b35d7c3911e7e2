package grpchealth

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	KeepalivePermitWithoutStream = false

	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

func NewConnClient(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}
	return conn, nil
}

// Check опрашивает grpc.health.v1 с ретраями, пока сервис не ответит.
// Ответ NOT_SERVING не ретраится: это штатное состояние при остановке.
// Неизвестный сервис (NotFound) тоже возвращается сразу.
func Check(ctx context.Context, log logger.Logger, conn *grpc.ClientConn, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	client := healthpb.NewHealthClient(conn)

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     shouldRetryCheck,
		Notify: func(err error, next time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("next", next),
			).Warn("gRPC health check attempt failed")
		},
	}

	retrier := backoff_adapter.New(retryConfig)

	servingStatus := healthpb.HealthCheckResponse_UNKNOWN
	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting gRPC health check")

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			return err
		}
		servingStatus = resp.GetStatus()
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC health check failed after retries")
		return healthpb.HealthCheckResponse_UNKNOWN, fmt.Errorf("grpc health check: %w", err)
	}

	return servingStatus, nil
}

func shouldRetryCheck(err error) bool {
	switch status.Code(err) {
	case codes.NotFound, codes.Unimplemented, codes.Canceled:
		return false
	default:
		return true
	}
}
