package order

import (
	"TrioChat/entity"
)

// Core defines the methods required by order handlers.
type Core interface {
	GetOrder(orderID string) (*entity.Order, error)
}
