package entity

import (
	"errors"
	"net/http"

	"TrioChat/internal/lib/validate"
)

var (
	ErrBadRole    = errors.New("unknown role")
	ErrBadChannel = errors.New("unknown channel")
)

// SendMessageRequest is the body of POST /api/v1/chat/send.
type SendMessageRequest struct {
	OrderID     string      `json:"order_id" validate:"required"`
	Channel     ChannelType `json:"channel" validate:"required"`
	Message     string      `json:"message" validate:"required,min=1,max=4000"`
	RecipientID string      `json:"recipient_id" validate:"omitempty"`
}

func (s *SendMessageRequest) Bind(_ *http.Request) error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if !s.Channel.Valid() {
		return ErrBadChannel
	}
	return nil
}
