package chat

import (
	"log/slog"
	"sync"
	"time"

	"TrioChat/entity"
	"TrioChat/internal/lib/sl"
)

// ListController keeps an up-to-date conversation list for one channel type
// by polling the backend. On success the list is replaced wholesale with
// the server's ordering; there is no incremental merge. Fetch errors are
// logged and retried on the next natural tick.
type ListController struct {
	store   Store
	channel entity.ChannelType
	sink    EventSink
	poller  *poller
	log     *slog.Logger

	mu            sync.RWMutex
	conversations []entity.Conversation
	closed        bool
}

func NewListController(store Store, channel entity.ChannelType, interval time.Duration, sink EventSink, logger *slog.Logger) *ListController {
	c := &ListController{
		store:   store,
		channel: channel,
		sink:    sink,
		log: logger.With(
			sl.Module("chat.list"),
			slog.String("channel", string(channel)),
		),
	}
	c.poller = newPoller(interval, c.fetch)
	return c
}

// Start begins polling with an immediate first fetch.
func (c *ListController) Start() {
	c.poller.Start(true)
}

// Stop halts polling. Safe to call more than once. A fetch racing Stop
// does not apply its result or reach the sink.
func (c *ListController) Stop() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.poller.Stop()
}

// Conversations returns a copy of the current list snapshot.
func (c *ListController) Conversations() []entity.Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Conversation, len(c.conversations))
	copy(out, c.conversations)
	return out
}

func (c *ListController) fetch() {
	c.mu.RLock()
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return
	}

	list, err := c.store.ListConversations(c.channel)
	if err != nil {
		c.log.Debug("conversation list fetch failed", sl.Err(err))
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.conversations = list
	c.mu.Unlock()

	if c.sink != nil {
		c.sink.ConversationList(c.channel, c.Conversations())
	}
}
