package chat

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"TrioChat/entity"
	"TrioChat/internal/lib/sl"
)

// Session owns the live chat state for one authenticated user: one
// conversation-list controller per channel their role grants, and at most
// one open thread at a time. Opening a conversation while another is open
// closes the first; all mutation of the lists goes through the controllers.
type Session struct {
	user           *entity.UserAuth
	store          Store
	router         *Router
	sink           EventSink
	rec            *Reconciler
	badges         *BadgeNotifier
	listInterval   time.Duration
	threadInterval time.Duration
	log            *slog.Logger

	mu     sync.Mutex
	lists  map[entity.ChannelType]*ListController
	thread *ThreadController
	closed bool
}

func NewSession(
	user *entity.UserAuth,
	store Store,
	router *Router,
	sink EventSink,
	listInterval, threadInterval time.Duration,
	logger *slog.Logger,
) *Session {
	log := logger.With(
		sl.Module("chat.session"),
		slog.String("user", user.ID),
		slog.String("role", string(user.Role)),
	)

	s := &Session{
		user:           user,
		store:          store,
		router:         router,
		sink:           sink,
		rec:            NewReconciler(store, user.ID, user.Role, logger),
		listInterval:   listInterval,
		threadInterval: threadInterval,
		log:            log,
		lists:          make(map[entity.ChannelType]*ListController),
	}
	s.badges = NewBadgeNotifier(func(orderID string, channel entity.ChannelType, unread int) {
		if sink != nil {
			sink.UnreadBadge(orderID, channel, unread)
		}
	})

	for _, info := range router.Channels(user.Role) {
		s.lists[info.Type] = NewListController(store, info.Type, listInterval, sink, logger)
	}
	return s
}

// Start launches the conversation-list pollers for every visible channel.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.lists {
		c.Start()
	}
	s.log.Debug("session started", slog.Int("channels", len(s.lists)))
}

// Channels returns the channel tabs for the session's role.
func (s *Session) Channels() []entity.ChannelInfo {
	return s.router.Channels(s.user.Role)
}

// Conversations returns the current list snapshot for one channel.
func (s *Session) Conversations(channel entity.ChannelType) ([]entity.Conversation, error) {
	s.mu.Lock()
	c, ok := s.lists[channel]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("channel %s not available for role %s", channel, s.user.Role)
	}
	return c.Conversations(), nil
}

// OpenThread starts polling one conversation. A previously open thread is
// closed first; its poller must not outlive the switch.
func (s *Session) OpenThread(orderID string, channel entity.ChannelType) error {
	if !s.router.Allowed(s.user.Role, channel) {
		return fmt.Errorf("channel %s not available for role %s", channel, s.user.Role)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrThreadClosed
	}
	if s.thread != nil {
		s.thread.Close()
	}
	t := NewThreadController(s.store, s.rec, s.badges, s.sink, s.user, orderID, channel, s.threadInterval, s.log)
	s.thread = t
	s.mu.Unlock()

	t.Open()
	return nil
}

// CloseThread stops the open thread's poller. Calling it without an open
// thread, or twice, is a no-op.
func (s *Session) CloseThread() {
	s.mu.Lock()
	t := s.thread
	s.thread = nil
	s.mu.Unlock()

	if t != nil {
		t.Close()
	}
}

// Send submits a message on the open thread and returns the optimistic
// copy.
func (s *Session) Send(orderID string, channel entity.ChannelType, body, recipientID string) (*entity.Message, error) {
	s.mu.Lock()
	t := s.thread
	s.mu.Unlock()

	if t == nil || t.orderID != orderID || t.channel != channel {
		return nil, fmt.Errorf("no open thread for order %s on channel %s", orderID, channel)
	}
	return t.Send(body, recipientID)
}

// FetchThread is the one-shot variant of a thread poll for clients that do
// not hold a websocket: fetch, reconcile read state, report badges, return
// the settled list. It does not start a poller.
func (s *Session) FetchThread(orderID string, channel entity.ChannelType) ([]entity.Message, error) {
	if !s.router.Allowed(s.user.Role, channel) {
		return nil, fmt.Errorf("channel %s not available for role %s", channel, s.user.Role)
	}

	s.mu.Lock()
	t := s.thread
	s.mu.Unlock()
	if t != nil && t.orderID == orderID && t.channel == channel {
		return t.Messages(), nil
	}

	messages, err := s.store.ListMessages(orderID, channel)
	if err != nil {
		return nil, err
	}

	s.badges.Set(orderID, channel, s.rec.CountUnread(channel, messages))
	s.rec.Reconcile(channel, messages)
	s.badges.Set(orderID, channel, s.rec.CountUnread(channel, messages))

	return messages, nil
}

// Close tears the session down: every poller stops. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	lists := s.lists
	t := s.thread
	s.thread = nil
	s.mu.Unlock()

	for _, c := range lists {
		c.Stop()
	}
	if t != nil {
		t.Close()
	}
	s.log.Debug("session closed")
}
