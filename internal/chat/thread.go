package chat

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"TrioChat/entity"
	"TrioChat/internal/lib/sl"
)

var ErrThreadClosed = errors.New("thread closed")

// ThreadController owns the live message list for one open conversation.
// It merges optimistic locally sent messages with server-confirmed ones,
// drives the read reconciler and the unread badge, and polls faster than
// the conversation list because it backs an actively viewed surface.
type ThreadController struct {
	store   Store
	rec     *Reconciler
	badges  *BadgeNotifier
	sink    EventSink
	user    *entity.UserAuth
	orderID string
	channel entity.ChannelType
	poller  *poller
	log     *slog.Logger

	mu       sync.Mutex
	messages []entity.Message
	closed   bool
}

func NewThreadController(
	store Store,
	rec *Reconciler,
	badges *BadgeNotifier,
	sink EventSink,
	user *entity.UserAuth,
	orderID string,
	channel entity.ChannelType,
	interval time.Duration,
	logger *slog.Logger,
) *ThreadController {
	t := &ThreadController{
		store:   store,
		rec:     rec,
		badges:  badges,
		sink:    sink,
		user:    user,
		orderID: orderID,
		channel: channel,
		log: logger.With(
			sl.Module("chat.thread"),
			slog.String("order_id", orderID),
			slog.String("channel", string(channel)),
		),
	}
	t.poller = newPoller(interval, t.fetch)
	return t
}

// Open begins polling the conversation, performing one fetch immediately.
func (t *ThreadController) Open() {
	t.poller.Start(true)
}

// Close stops polling. Idempotent: closing twice is a no-op, and no new
// fetch starts after the first Close returns.
func (t *ThreadController) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.poller.Stop()
}

// Messages returns a copy of the current thread view.
func (t *ThreadController) Messages() []entity.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

// snapshot copies the message list. Callers must hold t.mu.
func (t *ThreadController) snapshot() []entity.Message {
	out := make([]entity.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Send appends an optimistic copy of the message to the thread and submits
// it to the backend asynchronously. The optimistic copy (status sending,
// uuid temp id) is returned immediately; confirmation or failure lands via
// the event sink. There is exactly one optimistic copy per outbound
// message: on confirm it is replaced in place by the server copy, on
// failure it stays visible as failed with no automatic retry.
func (t *ThreadController) Send(body, recipientID string) (*entity.Message, error) {
	optimistic := entity.Message{
		TempID:      uuid.NewString(),
		OrderID:     t.orderID,
		SenderID:    t.user.ID,
		SenderType:  t.user.Role,
		RecipientID: recipientID,
		Body:        body,
		Timestamp:   time.Now(),
		Status:      entity.StatusSending,
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrThreadClosed
	}
	t.messages = append(t.messages, optimistic)
	snap := t.snapshot()
	t.mu.Unlock()

	t.emitThread(snap)
	go t.deliver(optimistic)

	return &optimistic, nil
}

// deliver runs the backend send for one optimistic message and settles its
// local copy.
func (t *ThreadController) deliver(optimistic entity.Message) {
	confirmed, err := t.store.SendMessage(t.orderID, t.channel, optimistic.Body, optimistic.RecipientID, optimistic.TempID)

	t.mu.Lock()
	idx := -1
	for i := range t.messages {
		if t.messages[i].TempID == optimistic.TempID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// already reflected by a poll merge
		t.mu.Unlock()
		return
	}

	if err != nil {
		t.messages[idx].Status = entity.StatusFailed
		snap := t.snapshot()
		t.mu.Unlock()

		t.log.With(slog.String("temp_id", optimistic.TempID)).Debug("send failed", sl.Err(err))
		t.emitThread(snap)
		return
	}

	// server copy takes the optimistic entry's list position; the temp id
	// is kept so later polls can match the confirmation
	msg := *confirmed
	msg.TempID = optimistic.TempID
	if msg.Status == "" || msg.Status == entity.StatusSending {
		msg.Status = entity.StatusSent
	}
	t.messages[idx] = msg
	snap := t.snapshot()
	t.mu.Unlock()

	t.emitThread(snap)
}

// fetch is one poll cycle: pull the server list, merge it with local
// optimistic state, report the pre-reconciliation unread count, mark
// addressed messages read, then report the settled count.
func (t *ThreadController) fetch() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	server, err := t.store.ListMessages(t.orderID, t.channel)
	if err != nil {
		t.log.Debug("thread fetch failed", sl.Err(err))
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.messages = mergeMessages(server, t.messages)
	snap := t.snapshot()
	t.mu.Unlock()

	t.badges.Set(t.orderID, t.channel, t.rec.CountUnread(t.channel, snap))

	marked := t.rec.Reconcile(t.channel, snap)
	if len(marked) > 0 {
		t.mu.Lock()
		for i := range t.messages {
			if _, ok := marked[t.messages[i].ID]; ok {
				t.messages[i].Status = entity.StatusRead
			}
		}
		snap = t.snapshot()
		t.mu.Unlock()
	}

	t.badges.Set(t.orderID, t.channel, t.rec.CountUnread(t.channel, snap))
	t.emitThread(snap)
}

func (t *ThreadController) emitThread(messages []entity.Message) {
	if t.sink != nil {
		t.sink.Thread(t.orderID, t.channel, messages)
	}
}
