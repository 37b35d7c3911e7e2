package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/order"
)

const internalMessage = "internal server error"

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, code dto.ErrorCode, message string) {
	// тело ошибки пишется без логирования: клиент уже получил статус
	_ = JSON(w, status, dto.Error{
		Error:   code,
		Message: message,
	})
}

// OrderError переводит ошибку сервиса заказов в HTTP ответ и возвращает
// выбранный статус, чтобы хендлер мог решить, логировать ли её.
func OrderError(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, order.ErrMissingRequiredFields),
		errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidUserID),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPaymentStatus),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrInvalidAddress),
		errors.Is(err, order.ErrConstraintViolation):
		Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, err.Error())
		return http.StatusBadRequest
	case errors.Is(err, order.ErrOrderNotFound):
		Error(w, http.StatusNotFound, dto.ErrorCodeNotFound, err.Error())
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		Error(w, http.StatusConflict, dto.ErrorCodeInvalidTransition, err.Error())
		return http.StatusConflict
	case errors.Is(err, order.ErrPaymentNotEditable):
		Error(w, http.StatusForbidden, dto.ErrorCodeForbidden, err.Error())
		return http.StatusForbidden
	default:
		Error(w, http.StatusInternalServerError, dto.ErrorCodeInternal, internalMessage)
		return http.StatusInternalServerError
	}
}

func OrderDTO(o entities.Order) dto.Order {
	return dto.Order{
		Id:            o.ID.String(),
		User:          o.UserID.String(),
		Status:        dto.OrderStatus(o.Status),
		PaymentMethod: dto.PaymentMethod(o.PaymentMethod),
		PaymentStatus: dto.PaymentStatus(o.PaymentStatus),
		Price:         o.Price.StringFixed(2),
		TotalPrice:    o.TotalPrice.StringFixed(2),
		DeliveryAddress: dto.DeliveryAddress{
			Street: o.DeliveryAddress.Street,
			City:   o.DeliveryAddress.City,
			State:  o.DeliveryAddress.State,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrderStatusesDTO(statuses []entities.OrderStatusType) []dto.OrderStatus {
	result := make([]dto.OrderStatus, len(statuses))
	for i, s := range statuses {
		result[i] = dto.OrderStatus(s)
	}
	return result
}

func PaymentStatusesDTO(statuses []entities.PaymentStatusType) []dto.PaymentStatus {
	result := make([]dto.PaymentStatus, len(statuses))
	for i, s := range statuses {
		result[i] = dto.PaymentStatus(s)
	}
	return result
}
