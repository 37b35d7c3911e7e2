package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
	publisher  EventPublisher
}

func New(repository Repository, txManager TxManager, publisher EventPublisher) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.UserID == nil ||
		orderModify.PaymentMethod == nil ||
		orderModify.Price == nil ||
		orderModify.TotalPrice == nil ||
		orderModify.DeliveryAddress == nil {
		return nil, ErrMissingRequiredFields
	}

	if *orderModify.UserID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if !orderModify.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if !isValidPrice(*orderModify.Price, *orderModify.TotalPrice) {
		return nil, ErrInvalidPrice
	}

	address := normalizeAddress(*orderModify.DeliveryAddress)
	if !isValidAddress(address) {
		return nil, ErrInvalidAddress
	}

	// новый заказ всегда начинает жизненный цикл с pending
	status := entities.DefaultOrderStatus
	if orderModify.Status != nil && *orderModify.Status != status {
		return nil, ErrInvalidStatus
	}

	paymentStatus := entities.DefaultPaymentStatus
	if orderModify.PaymentStatus != nil {
		if !isValidInitialPaymentStatus(*orderModify.PaymentMethod, *orderModify.PaymentStatus) {
			return nil, ErrInvalidPaymentStatus
		}
		paymentStatus = *orderModify.PaymentStatus
	}

	createModify := entities.OrderModify{
		UserID:          orderModify.UserID,
		Status:          &status,
		PaymentMethod:   orderModify.PaymentMethod,
		PaymentStatus:   &paymentStatus,
		Price:           orderModify.Price,
		TotalPrice:      orderModify.TotalPrice,
		DeliveryAddress: &address,
	}

	order, err := s.repository.Create(ctx, createModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publisher.OrderUpdated(ctx, newOrderEvent(entities.OrderEventCreated, entities.OrderTransition{Order: *order}))

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrderActions(ctx context.Context, orderID string) (*entities.OrderActions, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &entities.OrderActions{
		Order:               *order,
		NextStatuses:        entities.NextOrderStatuses(order.Status),
		NextPaymentStatuses: entities.NextPaymentActions(*order),
	}, nil
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.PaymentStatus != nil && !filter.PaymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	filter.Limit = normalizeLimit(filter.Limit)

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ApplyStatusTransition переводит заказ в target и применяет каскад на статус оплаты.
func (s *Service) ApplyStatusTransition(
	ctx context.Context,
	orderID string,
	target entities.OrderStatusType,
) (*entities.OrderTransition, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	transition := entities.OrderTransition{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !entities.CanTransitionOrder(order.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, target)
		}

		orderModify := entities.OrderModify{
			ID:     &order.ID,
			Status: &target,
		}

		paymentStatus := entities.CascadePaymentStatus(target, order.PaymentStatus)
		if paymentStatus != order.PaymentStatus {
			orderModify.PaymentStatus = &paymentStatus
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		transition = entities.OrderTransition{
			Order:                 *updated,
			PreviousStatus:        order.Status,
			PreviousPaymentStatus: order.PaymentStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.OrderUpdated(ctx, newOrderEvent(entities.OrderEventStatusChanged, transition))

	return &transition, nil
}

// ApplyPaymentTransition меняет только статус оплаты, статус заказа не трогается.
func (s *Service) ApplyPaymentTransition(
	ctx context.Context,
	orderID string,
	target entities.PaymentStatusType,
) (*entities.OrderTransition, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return nil, err
	}

	transition := entities.OrderTransition{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		// оплата через шлюз закрыта для любых значений, включая некорректные
		if !entities.IsPaymentEditable(order.PaymentMethod, order.PaymentStatus) {
			return ErrPaymentNotEditable
		}
		if !target.IsValid() {
			return ErrInvalidPaymentStatus
		}

		if !entities.CanTransitionPayment(order.PaymentStatus, target) {
			return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, order.PaymentStatus, target)
		}

		updated, err := s.repository.Update(ctx, entities.OrderModify{
			ID:            &order.ID,
			PaymentStatus: &target,
		})
		if err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}

		transition = entities.OrderTransition{
			Order:                 *updated,
			PreviousStatus:        order.Status,
			PreviousPaymentStatus: order.PaymentStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.OrderUpdated(ctx, newOrderEvent(entities.OrderEventPaymentStatusChanged, transition))

	return &transition, nil
}

// CountOrdersByStatus возвращает счётчики по всем статусам, включая нулевые.
func (s *Service) CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	byStatus := make(map[entities.OrderStatusType]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	statuses := entities.OrderStatuses()
	result := make([]entities.OrderStatusCount, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, entities.OrderStatusCount{
			Status: status,
			Count:  byStatus[status],
		})
	}
	return result, nil
}
