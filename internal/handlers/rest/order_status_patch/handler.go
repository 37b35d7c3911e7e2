package order_status_patch

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_status_patch"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, "invalid JSON body")
		return
	}
	if statusUpdateDTO.Status == nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, "status is required")
		return
	}

	target := entities.OrderStatusType(*statusUpdateDTO.Status)

	transition, err := h.service.ApplyStatusTransition(r.Context(), orderID, target)
	if err != nil {
		if response.OrderError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("target", target),
				logger.NewField("error", err),
			).Error("apply status transition")
		}
		return
	}

	h.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("from", transition.PreviousStatus),
		logger.NewField("to", transition.Order.Status),
		logger.NewField("payment_status", transition.Order.PaymentStatus),
	).Info("order status changed")

	res := dto.OrderStatusTransition{
		Order:          response.OrderDTO(transition.Order),
		PreviousStatus: dto.OrderStatus(transition.PreviousStatus),
	}

	err = response.JSON(w, http.StatusOK, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
