package store

import (
	"fmt"
	"net/http"
	"net/url"

	"TrioChat/entity"
)

// ListMessages fetches the full message history of one conversation. The
// backend has no pagination on this endpoint; every poll returns the whole
// set.
func (s *Service) ListMessages(orderID string, channel entity.ChannelType) ([]entity.Message, error) {
	path := fmt.Sprintf("/messages/%s?channel=%s", url.PathEscape(orderID), url.QueryEscape(string(channel)))

	var result struct {
		Messages []entity.Message `json:"messages"`
	}
	if err := s.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}

type sendMessageRequest struct {
	OrderID     string             `json:"order_id"`
	Channel     entity.ChannelType `json:"channel"`
	Message     string             `json:"message"`
	RecipientID string             `json:"recipient_id,omitempty"`
	TempID      string             `json:"temp_id,omitempty"`
}

// SendMessage submits a new message and returns the server-confirmed copy.
// tempID is the caller's optimistic id; the backend echoes it on the
// confirmed copy and on subsequent history fetches, which is how a poll
// response that raced the send is matched back to the optimistic entry.
// The caller owns the optimistic local copy and must mark it failed when
// this returns an error.
func (s *Service) SendMessage(orderID string, channel entity.ChannelType, body, recipientID, tempID string) (*entity.Message, error) {
	req := sendMessageRequest{
		OrderID:     orderID,
		Channel:     channel,
		Message:     body,
		RecipientID: recipientID,
		TempID:      tempID,
	}

	var msg entity.Message
	if err := s.do(http.MethodPost, "/send-message", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

type setStatusRequest struct {
	Status  entity.MessageStatus `json:"status"`
	Channel entity.ChannelType   `json:"channel"`
}

// SetMessageStatus updates one message's delivery status on the backend.
// Used exclusively to mark messages read.
func (s *Service) SetMessageStatus(messageID string, channel entity.ChannelType, status entity.MessageStatus) error {
	path := fmt.Sprintf("/messages/%s/status", url.PathEscape(messageID))
	return s.do(http.MethodPatch, path, setStatusRequest{Status: status, Channel: channel}, nil)
}
