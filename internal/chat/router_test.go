package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrioChat/entity"
)

func channelTypes(infos []entity.ChannelInfo) []entity.ChannelType {
	out := make([]entity.ChannelType, len(infos))
	for i, info := range infos {
		out[i] = info.Type
	}
	return out
}

func TestRouter_CapabilitySets(t *testing.T) {
	tests := []struct {
		name           string
		role           entity.Role
		vendorCustomer bool
		want           []entity.ChannelType
	}{
		{
			name: "customer sees only the delivery channel",
			role: entity.RoleCustomer,
			want: []entity.ChannelType{entity.ChannelCustomerDelivery},
		},
		{
			name: "delivery sees customer and vendor channels",
			role: entity.RoleDelivery,
			want: []entity.ChannelType{entity.ChannelCustomerDelivery, entity.ChannelVendorDelivery},
		},
		{
			name: "vendor without direct customer chat",
			role: entity.RoleVendor,
			want: []entity.ChannelType{entity.ChannelVendorDelivery},
		},
		{
			name:           "vendor with direct customer chat enabled",
			role:           entity.RoleVendor,
			vendorCustomer: true,
			want:           []entity.ChannelType{entity.ChannelVendorDelivery, entity.ChannelVendorCustomer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(tt.vendorCustomer)
			assert.Equal(t, tt.want, channelTypes(r.Channels(tt.role)))
		})
	}
}

func TestRouter_ChannelMetadata(t *testing.T) {
	r := NewRouter(true)

	infos := r.Channels(entity.RoleDelivery)
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Icon)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.QuickReplies)
	}
}

func TestRouter_Allowed(t *testing.T) {
	r := NewRouter(false)

	assert.True(t, r.Allowed(entity.RoleCustomer, entity.ChannelCustomerDelivery))
	assert.False(t, r.Allowed(entity.RoleCustomer, entity.ChannelVendorDelivery))
	assert.False(t, r.Allowed(entity.RoleVendor, entity.ChannelVendorCustomer))
	assert.True(t, NewRouter(true).Allowed(entity.RoleVendor, entity.ChannelVendorCustomer))
}
