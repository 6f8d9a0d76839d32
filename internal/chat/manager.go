package chat

import (
	"log/slog"
	"sync"
	"time"

	"TrioChat/entity"
	"TrioChat/internal/lib/sl"
)

// Manager tracks one Session per connected user, refcounted across their
// open dashboard tabs. The last disconnect tears the session (and all its
// pollers) down.
type Manager struct {
	store          Store
	router         *Router
	sinkFor        func(userID string) EventSink
	listInterval   time.Duration
	threadInterval time.Duration
	log            *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	refs     map[string]int
}

func NewManager(
	store Store,
	router *Router,
	sinkFor func(userID string) EventSink,
	listInterval, threadInterval time.Duration,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		store:          store,
		router:         router,
		sinkFor:        sinkFor,
		listInterval:   listInterval,
		threadInterval: threadInterval,
		log:            logger.With(sl.Module("chat.manager")),
		sessions:       make(map[string]*Session),
		refs:           make(map[string]int),
	}
}

// Connect registers one websocket connection for the user, starting a
// session on their first.
func (m *Manager) Connect(user *entity.UserAuth) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.refs[user.ID]++
	if _, ok := m.sessions[user.ID]; ok {
		return
	}

	var sink EventSink
	if m.sinkFor != nil {
		sink = m.sinkFor(user.ID)
	}
	sess := NewSession(user, m.store, m.router, sink, m.listInterval, m.threadInterval, m.log)
	m.sessions[user.ID] = sess
	sess.Start()
}

// Disconnect drops one connection; the session closes when none remain.
func (m *Manager) Disconnect(user *entity.UserAuth) {
	m.mu.Lock()
	m.refs[user.ID]--
	if m.refs[user.ID] > 0 {
		m.mu.Unlock()
		return
	}
	delete(m.refs, user.ID)
	sess := m.sessions[user.ID]
	delete(m.sessions, user.ID)
	m.mu.Unlock()

	if sess != nil {
		sess.Close()
	}
}

// OpenThread opens a conversation on the user's session.
func (m *Manager) OpenThread(user *entity.UserAuth, orderID string, channel entity.ChannelType) error {
	sess, ok := m.Lookup(user.ID)
	if !ok {
		return ErrThreadClosed
	}
	return sess.OpenThread(orderID, channel)
}

// CloseThread closes the user's open conversation, if any.
func (m *Manager) CloseThread(user *entity.UserAuth) {
	if sess, ok := m.Lookup(user.ID); ok {
		sess.CloseThread()
	}
}

// Lookup returns the live session for a user id.
func (m *Manager) Lookup(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	return sess, ok
}
