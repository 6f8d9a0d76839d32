package chat

import (
	"TrioChat/entity"
)

// Core defines the methods required by chat handlers.
type Core interface {
	GetChannels(user *entity.UserAuth) []entity.ChannelInfo
	GetConversations(user *entity.UserAuth, channel entity.ChannelType) ([]entity.Conversation, error)
	GetThreadMessages(user *entity.UserAuth, orderID string, channel entity.ChannelType) ([]entity.Message, error)
	SendChatMessage(user *entity.UserAuth, req *entity.SendMessageRequest) (*entity.Message, error)
}
