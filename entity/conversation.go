package entity

import "time"

// Conversation is one row in a dashboard chat list. It is derived state:
// it exists because a list fetch returned it and disappears when a later
// fetch no longer includes it. Keyed by (OrderID, Channel).
type Conversation struct {
	OrderID       string      `json:"order_id"`
	Channel       ChannelType `json:"channel"`
	RecipientID   string      `json:"recipient_id"`
	RecipientName string      `json:"recipient_name"`
	LastMessage   string      `json:"last_message"`
	LastTime      time.Time   `json:"last_time"`
	Unread        int         `json:"unread"`
	OrderStatus   string      `json:"order_status"`
}
