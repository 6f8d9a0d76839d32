package chat

import (
	"TrioChat/entity"
)

// Store is the slice of the backend client the chat controllers need.
type Store interface {
	ListMessages(orderID string, channel entity.ChannelType) ([]entity.Message, error)
	SendMessage(orderID string, channel entity.ChannelType, body, recipientID, tempID string) (*entity.Message, error)
	SetMessageStatus(messageID string, channel entity.ChannelType, status entity.MessageStatus) error
	ListConversations(channel entity.ChannelType) ([]entity.Conversation, error)
}

// EventSink receives controller updates for delivery to one user's open
// dashboards. Implementations must not block: controllers call into the
// sink from their polling goroutines.
type EventSink interface {
	ConversationList(channel entity.ChannelType, conversations []entity.Conversation)
	Thread(orderID string, channel entity.ChannelType, messages []entity.Message)
	UnreadBadge(orderID string, channel entity.ChannelType, unread int)
}
