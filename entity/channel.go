package entity

import "fmt"

// ChannelType is one of the three fixed role pairings that may exchange
// messages about an order.
type ChannelType string

const (
	ChannelCustomerDelivery ChannelType = "customer-delivery"
	ChannelVendorDelivery   ChannelType = "vendor-delivery"
	ChannelVendorCustomer   ChannelType = "vendor-customer"
)

func ParseChannel(s string) (ChannelType, error) {
	switch ChannelType(s) {
	case ChannelCustomerDelivery, ChannelVendorDelivery, ChannelVendorCustomer:
		return ChannelType(s), nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

func (c ChannelType) Valid() bool {
	switch c {
	case ChannelCustomerDelivery, ChannelVendorDelivery, ChannelVendorCustomer:
		return true
	}
	return false
}

// Counterpart returns the role on the other end of the channel for a
// participant with role r. The second return value is false when r does not
// belong to the channel at all.
func (c ChannelType) Counterpart(r Role) (Role, bool) {
	switch c {
	case ChannelCustomerDelivery:
		switch r {
		case RoleCustomer:
			return RoleDelivery, true
		case RoleDelivery:
			return RoleCustomer, true
		}
	case ChannelVendorDelivery:
		switch r {
		case RoleVendor:
			return RoleDelivery, true
		case RoleDelivery:
			return RoleVendor, true
		}
	case ChannelVendorCustomer:
		switch r {
		case RoleVendor:
			return RoleCustomer, true
		case RoleCustomer:
			return RoleVendor, true
		}
	}
	return "", false
}

// ChannelInfo is the display metadata for one channel tab on a dashboard.
type ChannelInfo struct {
	Type         ChannelType `json:"type"`
	Name         string      `json:"name"`
	Icon         string      `json:"icon"`
	Description  string      `json:"description"`
	QuickReplies []string    `json:"quick_replies,omitempty"`
}
