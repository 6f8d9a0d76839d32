package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TrioChat/entity"
)

func TestBadgeNotifier_FiresOnChangeOnly(t *testing.T) {
	var fired []int
	b := NewBadgeNotifier(func(_ string, _ entity.ChannelType, unread int) {
		fired = append(fired, unread)
	})

	b.Set("ORD-1", entity.ChannelCustomerDelivery, 2)
	b.Set("ORD-1", entity.ChannelCustomerDelivery, 2)
	b.Set("ORD-1", entity.ChannelCustomerDelivery, 0)
	b.Set("ORD-1", entity.ChannelCustomerDelivery, 0)

	assert.Equal(t, []int{2, 0}, fired)
	assert.Equal(t, 0, b.Get("ORD-1", entity.ChannelCustomerDelivery))
}

func TestBadgeNotifier_TracksConversationsIndependently(t *testing.T) {
	var fired int
	b := NewBadgeNotifier(func(_ string, _ entity.ChannelType, _ int) {
		fired++
	})

	b.Set("ORD-1", entity.ChannelCustomerDelivery, 1)
	b.Set("ORD-1", entity.ChannelVendorDelivery, 1)
	b.Set("ORD-2", entity.ChannelCustomerDelivery, 1)

	// same count, three distinct conversations
	assert.Equal(t, 3, fired)
	assert.Equal(t, 1, b.Get("ORD-2", entity.ChannelCustomerDelivery))
}

func TestBadgeNotifier_ZeroOnFirstReportStillFires(t *testing.T) {
	var fired []int
	b := NewBadgeNotifier(func(_ string, _ entity.ChannelType, unread int) {
		fired = append(fired, unread)
	})

	b.Set("ORD-1", entity.ChannelCustomerDelivery, 0)

	assert.Equal(t, []int{0}, fired)
}
