package chat

import (
	"io"
	"log/slog"
	"sync"

	"TrioChat/entity"
)

// fakeStore is a scriptable in-memory stand-in for the backend client.
// Behavior is injected per test through the Fn hooks; calls are counted
// under the mutex so timing tests can assert on them.
type fakeStore struct {
	mu sync.Mutex

	listMessagesFn      func(orderID string, channel entity.ChannelType) ([]entity.Message, error)
	sendMessageFn       func(orderID string, channel entity.ChannelType, body, recipientID, tempID string) (*entity.Message, error)
	setStatusFn         func(messageID string, channel entity.ChannelType, status entity.MessageStatus) error
	listConversationsFn func(channel entity.ChannelType) ([]entity.Conversation, error)

	listMessagesCalls      int
	sendCalls              int
	setStatusCalls         []string
	listConversationsCalls int
}

func (f *fakeStore) ListMessages(orderID string, channel entity.ChannelType) ([]entity.Message, error) {
	f.mu.Lock()
	f.listMessagesCalls++
	fn := f.listMessagesFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(orderID, channel)
}

func (f *fakeStore) SendMessage(orderID string, channel entity.ChannelType, body, recipientID, tempID string) (*entity.Message, error) {
	f.mu.Lock()
	f.sendCalls++
	fn := f.sendMessageFn
	f.mu.Unlock()
	if fn == nil {
		return &entity.Message{OrderID: orderID, TempID: tempID, Body: body, Status: entity.StatusSent}, nil
	}
	return fn(orderID, channel, body, recipientID, tempID)
}

func (f *fakeStore) SetMessageStatus(messageID string, channel entity.ChannelType, status entity.MessageStatus) error {
	f.mu.Lock()
	f.setStatusCalls = append(f.setStatusCalls, messageID)
	fn := f.setStatusFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(messageID, channel, status)
}

func (f *fakeStore) ListConversations(channel entity.ChannelType) ([]entity.Conversation, error) {
	f.mu.Lock()
	f.listConversationsCalls++
	fn := f.listConversationsFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(channel)
}

func (f *fakeStore) messageCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listMessagesCalls
}

func (f *fakeStore) conversationCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listConversationsCalls
}

func (f *fakeStore) sentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sendCalls
}

func (f *fakeStore) statusCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.setStatusCalls))
	copy(out, f.setStatusCalls)
	return out
}

// recordSink captures controller events for assertions.
type recordSink struct {
	mu      sync.Mutex
	lists   [][]entity.Conversation
	threads [][]entity.Message
	badges  []int
}

func (s *recordSink) ConversationList(_ entity.ChannelType, conversations []entity.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = append(s.lists, conversations)
}

func (s *recordSink) Thread(_ string, _ entity.ChannelType, messages []entity.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads = append(s.threads, messages)
}

func (s *recordSink) UnreadBadge(_ string, _ entity.ChannelType, unread int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badges = append(s.badges, unread)
}

func (s *recordSink) badgeValues() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.badges))
	copy(out, s.badges)
	return out
}

func (s *recordSink) lastThread() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.threads) == 0 {
		return nil
	}
	return s.threads[len(s.threads)-1]
}

func (s *recordSink) lastList() []entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lists) == 0 {
		return nil
	}
	return s.lists[len(s.lists)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func deliveryUser() *entity.UserAuth {
	return &entity.UserAuth{ID: "drv-1", Name: "Courier", Role: entity.RoleDelivery}
}
