package order

import (
	"time"

	"github.com/google/uuid"
)

// Цены читаются как text и разбираются в decimal без потери точности.
type OrderDB struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          string
	PaymentMethod   string
	PaymentStatus   string
	Price           string
	TotalPrice      string
	DeliveryAddress []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderModifyDB struct {
	ID              *uuid.UUID
	UserID          *uuid.UUID
	Status          *string
	PaymentMethod   *string
	PaymentStatus   *string
	Price           *string
	TotalPrice      *string
	DeliveryAddress []byte
}

type DeliveryAddressDB struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

type StatusCountDB struct {
	Status string
	Count  int64
}
