package order

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	// цены хранятся в NUMERIC(12,2)
	priceScale = 2
)

var maxPriceExclusive = decimal.New(1, 10)

func parseOrderID(orderID string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(orderID))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidOrderID
	}
	return id, nil
}

func isValidPrice(price, totalPrice decimal.Decimal) bool {
	return price.IsPositive() &&
		totalPrice.GreaterThanOrEqual(price) &&
		fitsPriceColumn(price) &&
		fitsPriceColumn(totalPrice)
}

// fitsPriceColumn не даёт БД молча округлить сумму или упасть на переполнении.
func fitsPriceColumn(d decimal.Decimal) bool {
	return d.LessThan(maxPriceExclusive) && d.Truncate(priceScale).Equal(d)
}

func normalizeAddress(address entities.DeliveryAddress) entities.DeliveryAddress {
	return entities.DeliveryAddress{
		Street: strings.TrimSpace(address.Street),
		City:   strings.TrimSpace(address.City),
		State:  strings.TrimSpace(address.State),
	}
}

func isValidAddress(address entities.DeliveryAddress) bool {
	return address.Street != "" && address.City != "" && address.State != ""
}

// completed на старте допустим только после успешной онлайн-оплаты.
func isValidInitialPaymentStatus(method entities.PaymentMethodType, status entities.PaymentStatusType) bool {
	switch status {
	case entities.PaymentPending:
		return true
	case entities.PaymentCompleted:
		return method == entities.PaymentGateway
	default:
		return false
	}
}

func normalizeLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
