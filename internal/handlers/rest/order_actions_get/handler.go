package order_actions_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

// Handler отдаёт админке переходы, которые сервис примет для заказа прямо сейчас.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_actions_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	actions, err := h.service.GetOrderActions(r.Context(), orderID)
	if err != nil {
		if response.OrderError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("get order actions")
		}
		return
	}

	res := dto.OrderActions{
		OrderId:             actions.Order.ID.String(),
		Status:              dto.OrderStatus(actions.Order.Status),
		PaymentStatus:       dto.PaymentStatus(actions.Order.PaymentStatus),
		NextStatuses:        response.OrderStatusesDTO(actions.NextStatuses),
		NextPaymentStatuses: response.PaymentStatusesDTO(actions.NextPaymentStatuses),
	}

	err = response.JSON(w, http.StatusOK, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
