package order_payment_status_patch

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
	handlerLog := log.With(logger.NewField("handler", "order_payment_status_patch"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var paymentUpdateDTO dto.OrderPaymentStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&paymentUpdateDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, "invalid JSON body")
		return
	}
	if paymentUpdateDTO.PaymentStatus == nil {
		response.Error(w, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, "paymentStatus is required")
		return
	}

	target := entities.PaymentStatusType(*paymentUpdateDTO.PaymentStatus)

	transition, err := h.service.ApplyPaymentTransition(r.Context(), orderID, target)
	if err != nil {
		if response.OrderError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("target", target),
				logger.NewField("error", err),
			).Error("apply payment transition")
		}
		return
	}

	h.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("from", transition.PreviousPaymentStatus),
		logger.NewField("to", transition.Order.PaymentStatus),
	).Info("order payment status changed")

	res := dto.OrderPaymentStatusTransition{
		Order:                 response.OrderDTO(transition.Order),
		PreviousPaymentStatus: dto.PaymentStatus(transition.PreviousPaymentStatus),
	}

	err = response.JSON(w, http.StatusOK, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
