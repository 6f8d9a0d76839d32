package entity

import (
	"fmt"
	"time"
)

// Role identifies which side of the marketplace a chat participant is on.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleDelivery Role = "delivery"
)

// ParseRole is the single entry point for turning an external role tag into
// a Role. The backend historically emitted both "delivery" and
// "delivery_boy"; both map to RoleDelivery and only RoleDelivery leaves
// this function.
func ParseRole(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "vendor":
		return RoleVendor, nil
	case "delivery", "delivery_boy":
		return RoleDelivery, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleDelivery:
		return true
	}
	return false
}

// MessageStatus is the delivery state of a single message.
type MessageStatus string

const (
	StatusSending   MessageStatus = "sending"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
	StatusFailed    MessageStatus = "failed"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case StatusSending, StatusSent, StatusDelivered, StatusRead, StatusFailed:
		return true
	}
	return false
}

// Message represents a single message in an order conversation.
//
// ID is assigned by the backend on confirmation. An outbound message that
// has not been confirmed yet carries only TempID, a locally generated uuid
// used to match the optimistic copy against the server copy.
type Message struct {
	ID            string        `json:"id,omitempty"`
	TempID        string        `json:"temp_id,omitempty"`
	OrderID       string        `json:"order_id"`
	SenderID      string        `json:"sender_id"`
	SenderType    Role          `json:"sender_type"`
	RecipientID   string        `json:"recipient_id,omitempty"`
	RecipientType Role          `json:"recipient_type,omitempty"`
	Body          string        `json:"message"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        MessageStatus `json:"status"`
}

// Pending reports whether the message is a local optimistic copy the server
// has not confirmed (or has rejected).
func (m *Message) Pending() bool {
	return m.Status == StatusSending || m.Status == StatusFailed
}
