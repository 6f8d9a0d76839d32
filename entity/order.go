package entity

import "time"

type Order struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	VendorName  string    `json:"vendor_name,omitempty"`
	PlacedAt    time.Time `json:"placed_at,omitempty"`
}
