package chat

import (
	"sync"

	"TrioChat/entity"
)

type convKey struct {
	orderID string
	channel entity.ChannelType
}

// BadgeNotifier tracks the last reported unread count per conversation and
// notifies its subscriber only on change. It is a cache over derived
// values, never a source of truth: every count it holds came out of
// Reconciler.CountUnread on a fresh batch.
type BadgeNotifier struct {
	mu     sync.Mutex
	counts map[convKey]int
	notify func(orderID string, channel entity.ChannelType, unread int)
}

func NewBadgeNotifier(notify func(orderID string, channel entity.ChannelType, unread int)) *BadgeNotifier {
	return &BadgeNotifier{
		counts: make(map[convKey]int),
		notify: notify,
	}
}

// Set records the freshly derived count for one conversation and fires the
// subscriber when it differs from the last reported value.
func (b *BadgeNotifier) Set(orderID string, channel entity.ChannelType, unread int) {
	key := convKey{orderID: orderID, channel: channel}

	b.mu.Lock()
	prev, seen := b.counts[key]
	b.counts[key] = unread
	b.mu.Unlock()

	if seen && prev == unread {
		return
	}
	if b.notify != nil {
		b.notify(orderID, channel, unread)
	}
}

// Get returns the last reported count for one conversation.
func (b *BadgeNotifier) Get(orderID string, channel entity.ChannelType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[convKey{orderID: orderID, channel: channel}]
}
