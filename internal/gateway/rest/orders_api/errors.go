package orders_api

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/generated/dto"
)

var ErrUnexpectedResponse = errors.New("unexpected response")

// APIError ответ API с кодом ошибки из dto.Error.
type APIError struct {
	StatusCode int
	Code       dto.ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
