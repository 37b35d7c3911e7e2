package order

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(o.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", o.Price, err)
	}
	totalPrice, err := decimal.NewFromString(o.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("parse total price %q: %w", o.TotalPrice, err)
	}

	var address DeliveryAddressDB
	if len(o.DeliveryAddress) > 0 {
		if err := json.Unmarshal(o.DeliveryAddress, &address); err != nil {
			return nil, fmt.Errorf("decode delivery address: %w", err)
		}
	}

	return &entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        entities.OrderStatusType(o.Status),
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatusType(o.PaymentStatus),
		Price:         price,
		TotalPrice:    totalPrice,
		DeliveryAddress: entities.DeliveryAddress{
			Street: address.Street,
			City:   address.City,
			State:  address.State,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}, nil
}

func FromDomainModify(orderModify *entities.OrderModify) (*OrderModifyDB, error) {
	if orderModify == nil {
		return nil, nil
	}
	orderDB := &OrderModifyDB{
		ID:     orderModify.ID,
		UserID: orderModify.UserID,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.PaymentMethod != nil {
		method := orderModify.PaymentMethod.String()
		orderDB.PaymentMethod = &method
	}
	if orderModify.PaymentStatus != nil {
		paymentStatus := orderModify.PaymentStatus.String()
		orderDB.PaymentStatus = &paymentStatus
	}
	if orderModify.Price != nil {
		price := orderModify.Price.String()
		orderDB.Price = &price
	}
	if orderModify.TotalPrice != nil {
		totalPrice := orderModify.TotalPrice.String()
		orderDB.TotalPrice = &totalPrice
	}
	if orderModify.DeliveryAddress != nil {
		address, err := json.Marshal(DeliveryAddressDB{
			Street: orderModify.DeliveryAddress.Street,
			City:   orderModify.DeliveryAddress.City,
			State:  orderModify.DeliveryAddress.State,
		})
		if err != nil {
			return nil, fmt.Errorf("encode delivery address: %w", err)
		}
		orderDB.DeliveryAddress = address
	}

	return orderDB, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result[i] = *order
	}
	return result, nil
}

func ToDomainStatusCounts(countsDB []StatusCountDB) []entities.OrderStatusCount {
	result := make([]entities.OrderStatusCount, len(countsDB))
	for i, c := range countsDB {
		result[i] = entities.OrderStatusCount{
			Status: entities.OrderStatusType(c.Status),
			Count:  c.Count,
		}
	}
	return result
}
