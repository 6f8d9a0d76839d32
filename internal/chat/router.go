package chat

import (
	"TrioChat/entity"
)

var quickReplies = map[entity.ChannelType][]string{
	entity.ChannelCustomerDelivery: {
		"I'm on my way",
		"I've arrived at your address",
		"Could you share your exact location?",
	},
	entity.ChannelVendorDelivery: {
		"Order is ready for pickup",
		"Running late, be there soon",
		"Please confirm the order number",
	},
	entity.ChannelVendorCustomer: {
		"Thanks for your order!",
		"Your order is being prepared",
		"Sorry, that item is out of stock",
	},
}

// Router is the pure mapping from a user's role to the channel tabs their
// dashboard shows. It keeps no state and is recomputed from the role on
// every call.
type Router struct {
	vendorCustomer bool
}

// NewRouter builds the channel router. vendorCustomerEnabled gates the
// direct vendor-customer channel, which not every marketplace deployment
// has.
func NewRouter(vendorCustomerEnabled bool) *Router {
	return &Router{vendorCustomer: vendorCustomerEnabled}
}

// Channels returns the ordered channel set a role may open, with display
// metadata and the quick-reply templates for each.
func (r *Router) Channels(role entity.Role) []entity.ChannelInfo {
	switch role {
	case entity.RoleCustomer:
		return []entity.ChannelInfo{
			channelInfo(entity.ChannelCustomerDelivery, "Delivery chat", "truck", "Chat with your delivery partner"),
		}
	case entity.RoleDelivery:
		return []entity.ChannelInfo{
			channelInfo(entity.ChannelCustomerDelivery, "Customer chat", "user", "Chat with the customer"),
			channelInfo(entity.ChannelVendorDelivery, "Vendor chat", "shop", "Chat with the vendor"),
		}
	case entity.RoleVendor:
		out := []entity.ChannelInfo{
			channelInfo(entity.ChannelVendorDelivery, "Delivery chat", "truck", "Chat with the delivery partner"),
		}
		if r.vendorCustomer {
			out = append(out, channelInfo(entity.ChannelVendorCustomer, "Customer chat", "user", "Chat with the customer"))
		}
		return out
	}
	return nil
}

// Allowed reports whether a role may open conversations on a channel.
func (r *Router) Allowed(role entity.Role, channel entity.ChannelType) bool {
	for _, info := range r.Channels(role) {
		if info.Type == channel {
			return true
		}
	}
	return false
}

func channelInfo(t entity.ChannelType, name, icon, description string) entity.ChannelInfo {
	return entity.ChannelInfo{
		Type:         t,
		Name:         name,
		Icon:         icon,
		Description:  description,
		QuickReplies: quickReplies[t],
	}
}
