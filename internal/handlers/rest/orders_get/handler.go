package orders_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

var errInvalidQuery = errors.New("invalid query parameter")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, err.Error())
		return
	}

	orderEntities, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		if response.OrderError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("list orders")
		}
		return
	}

	res := dto.OrderList{
		Orders: make([]dto.Order, len(orderEntities)),
	}
	for i, orderEntity := range orderEntities {
		res.Orders[i] = response.OrderDTO(orderEntity)
	}

	err = response.JSON(w, http.StatusOK, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Значения статусов проверяет сервис, здесь разбираются только типы.
func parseFilter(query url.Values) (entities.OrderFilter, error) {
	filter := entities.OrderFilter{}

	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatusType(status)
		filter.Status = &statusType
	}
	if paymentStatus := query.Get("paymentStatus"); paymentStatus != "" {
		paymentStatusType := entities.PaymentStatusType(paymentStatus)
		filter.PaymentStatus = &paymentStatusType
	}
	if user := query.Get("user"); user != "" {
		userID, err := uuid.Parse(user)
		if err != nil {
			return filter, fmt.Errorf("%w: user=%q", errInvalidQuery, user)
		}
		filter.UserID = &userID
	}

	var err error
	filter.Limit, err = parseUint(query, "limit")
	if err != nil {
		return filter, err
	}
	filter.Offset, err = parseUint(query, "offset")
	if err != nil {
		return filter, err
	}

	return filter, nil
}

func parseUint(query url.Values, key string) (uint64, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidQuery, key, raw)
	}
	return value, nil
}
