package rate_limiter

import (
	"math"
	"net/http"
	"strconv"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/pkg/middlewares/metrics"
	"storefront/pkg/logger"
)

func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := metrics.RouteTemplate(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			retryAfter := retryAfterSeconds(rlimiter)
			RateLimitedRequestsTotal.WithLabelValues(r.Method, handlerPath).Inc()
			RateLimitRetryAfterSeconds.WithLabelValues(handlerPath).Observe(float64(retryAfter))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "rate limit exceeded, try again later")
		})
	}
}

// Retry-After в целых секундах, не меньше 1.
func retryAfterSeconds(rlimiter Limiter) int {
	seconds := int(math.Ceil(rlimiter.RetryAfter().Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
