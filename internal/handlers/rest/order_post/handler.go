package order_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

var errInvalidField = errors.New("invalid field")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, "invalid JSON body")
		return
	}

	orderModifyEntity, err := toOrderModify(orderCreateDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, err.Error())
		return
	}

	created, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		if response.OrderError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
		}
		return
	}

	h.log.With(
		logger.NewField("order_id", created.ID),
		logger.NewField("payment_method", created.PaymentMethod),
	).Info("order created")

	err = response.JSON(w, http.StatusCreated, response.OrderDTO(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Отсутствующие поля остаются nil, их наличие проверяет сервис.
func toOrderModify(orderCreateDTO dto.OrderCreate) (entities.OrderModify, error) {
	orderModify := entities.OrderModify{}

	if orderCreateDTO.User != nil {
		userID, err := uuid.Parse(*orderCreateDTO.User)
		if err != nil {
			return orderModify, fmt.Errorf("%w: user", errInvalidField)
		}
		orderModify.UserID = &userID
	}
	if orderCreateDTO.Status != nil {
		status := entities.OrderStatusType(*orderCreateDTO.Status)
		orderModify.Status = &status
	}
	if orderCreateDTO.PaymentMethod != nil {
		method := entities.PaymentMethodType(*orderCreateDTO.PaymentMethod)
		orderModify.PaymentMethod = &method
	}
	if orderCreateDTO.PaymentStatus != nil {
		paymentStatus := entities.PaymentStatusType(*orderCreateDTO.PaymentStatus)
		orderModify.PaymentStatus = &paymentStatus
	}
	if orderCreateDTO.Price != nil {
		price, err := decimal.NewFromString(*orderCreateDTO.Price)
		if err != nil {
			return orderModify, fmt.Errorf("%w: price", errInvalidField)
		}
		orderModify.Price = &price
	}
	if orderCreateDTO.TotalPrice != nil {
		totalPrice, err := decimal.NewFromString(*orderCreateDTO.TotalPrice)
		if err != nil {
			return orderModify, fmt.Errorf("%w: totalPrice", errInvalidField)
		}
		orderModify.TotalPrice = &totalPrice
	}
	if orderCreateDTO.DeliveryAddress != nil {
		orderModify.DeliveryAddress = &entities.DeliveryAddress{
			Street: orderCreateDTO.DeliveryAddress.Street,
			City:   orderCreateDTO.DeliveryAddress.City,
			State:  orderCreateDTO.DeliveryAddress.State,
		}
	}

	return orderModify, nil
}
