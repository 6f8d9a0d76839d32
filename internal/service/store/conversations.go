package store

import (
	"fmt"
	"net/http"
	"net/url"

	"TrioChat/entity"
)

// ListConversations fetches the active conversation list for one channel
// type. Ordering is the server's (most recent first) and is kept as-is.
func (s *Service) ListConversations(channel entity.ChannelType) ([]entity.Conversation, error) {
	path := fmt.Sprintf("/conversations?channel=%s", url.QueryEscape(string(channel)))

	var result struct {
		Conversations []entity.Conversation `json:"conversations"`
	}
	if err := s.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Conversations, nil
}
