package entities

import "slices"

// Граф переходов задан один раз: по нему проверяют движки переходов
// и по нему же админка получает список доступных действий.
var orderStatusTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// failed -> completed оставлен намеренно: ручное подтверждение повторной оплаты.
var paymentStatusTransitions = map[PaymentStatusType][]PaymentStatusType{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {},
	PaymentFailed:    {PaymentPending, PaymentCompleted},
}

var orderStatusOrder = []OrderStatusType{
	OrderPending,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// OrderStatuses перечисляет все статусы заказа в порядке жизненного цикла.
func OrderStatuses() []OrderStatusType {
	return append([]OrderStatusType{}, orderStatusOrder...)
}

// NextOrderStatuses возвращает статусы, в которые можно перевести заказ из current.
// Для терминальных и неизвестных статусов возвращается пустой срез.
func NextOrderStatuses(current OrderStatusType) []OrderStatusType {
	return append([]OrderStatusType{}, orderStatusTransitions[current]...)
}

// NextPaymentStatuses возвращает статусы оплаты, достижимые из current.
func NextPaymentStatuses(current PaymentStatusType) []PaymentStatusType {
	return append([]PaymentStatusType{}, paymentStatusTransitions[current]...)
}

func CanTransitionOrder(from, to OrderStatusType) bool {
	return slices.Contains(orderStatusTransitions[from], to)
}

func CanTransitionPayment(from, to PaymentStatusType) bool {
	return slices.Contains(paymentStatusTransitions[from], to)
}

func IsTerminalOrderStatus(s OrderStatusType) bool {
	return s.IsValid() && len(orderStatusTransitions[s]) == 0
}

// IsPaymentEditable - правило "предоплаченного" заказа: оплата через шлюз,
// которая уже прошла, не редактируется ни в какую сторону.
func IsPaymentEditable(method PaymentMethodType, status PaymentStatusType) bool {
	return method != PaymentGateway || status != PaymentCompleted
}

// NextPaymentActions учитывает способ оплаты заказа поверх общего графа.
func NextPaymentActions(order Order) []PaymentStatusType {
	if !IsPaymentEditable(order.PaymentMethod, order.PaymentStatus) {
		return []PaymentStatusType{}
	}
	return NextPaymentStatuses(order.PaymentStatus)
}

// CascadePaymentStatus вычисляет статус оплаты после перехода заказа в target.
// Меняется только ожидающая оплата.
func CascadePaymentStatus(target OrderStatusType, current PaymentStatusType) PaymentStatusType {
	if current != PaymentPending {
		return current
	}

	switch target {
	case OrderDelivered:
		return PaymentCompleted
	case OrderCancelled:
		return PaymentFailed
	default:
		return current
	}
}
