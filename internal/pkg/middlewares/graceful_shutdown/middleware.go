package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
)

// Middleware отклоняет новые запросы с 503, как только начато завершение сервиса.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					response.Error(w, http.StatusServiceUnavailable, dto.ErrorCodeUnavailable, "service is shutting down")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
