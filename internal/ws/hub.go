package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"TrioChat/entity"
	"TrioChat/internal/chat"
)

// ClientMessageHandler handles connection lifecycle and incoming messages
// from dashboard clients.
type ClientMessageHandler interface {
	Connect(user *entity.UserAuth)
	Disconnect(user *entity.UserAuth)
	OpenThread(user *entity.UserAuth, orderID string, channel entity.ChannelType) error
	CloseThread(user *entity.UserAuth)
}

// Event represents a push event sent to dashboard clients.
type Event struct {
	Type string `json:"type"` // "conversation_list", "thread", "unread_badge"
	Data any    `json:"data"`
}

type directed struct {
	userID string
	event  *Event
}

// Hub maintains the set of active websocket clients grouped by user and
// delivers events to all connections of one user.
type Hub struct {
	clients    map[string]map[*Client]bool
	direct     chan directed
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	handler    ClientMessageHandler
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		direct:     make(chan directed, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// SetHandler sets the handler for client lifecycle and incoming messages.
func (h *Hub) SetHandler(handler ClientMessageHandler) {
	h.handler = handler
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			conns := h.clients[client.user.ID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.user.ID] = conns
			}
			conns[client] = true
			h.mu.Unlock()
			if h.handler != nil {
				h.handler.Connect(client.user)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			conns := h.clients[client.user.ID]
			removed := false
			if conns != nil && conns[client] {
				delete(conns, client)
				close(client.send)
				removed = true
				if len(conns) == 0 {
					delete(h.clients, client.user.ID)
				}
			}
			h.mu.Unlock()
			if removed && h.handler != nil {
				h.handler.Disconnect(client.user)
			}

		case d := <-h.direct:
			data, err := json.Marshal(d.event)
			if err != nil {
				continue
			}
			var evicted []*Client
			h.mu.Lock()
			for client := range h.clients[d.userID] {
				select {
				case client.send <- data:
				default:
					// slow client: drop the connection rather than
					// block the hub
					close(client.send)
					delete(h.clients[d.userID], client)
					evicted = append(evicted, client)
				}
			}
			if len(h.clients[d.userID]) == 0 {
				delete(h.clients, d.userID)
			}
			h.mu.Unlock()
			// an evicted client is already out of the map, so the read
			// pump's later unregister is a no-op; the lifecycle handler
			// hears about the disconnect here, exactly once
			if h.handler != nil {
				for _, client := range evicted {
					h.handler.Disconnect(client.user)
				}
			}
		}
	}
}

// Send queues an event for every connection of one user.
func (h *Hub) Send(userID string, event *Event) {
	h.direct <- directed{userID: userID, event: event}
}

// UserSink returns a chat.EventSink that pushes controller updates to one
// user's connections.
func (h *Hub) UserSink(userID string) chat.EventSink {
	return userSink{hub: h, userID: userID}
}

type userSink struct {
	hub    *Hub
	userID string
}

func (s userSink) ConversationList(channel entity.ChannelType, conversations []entity.Conversation) {
	s.hub.Send(s.userID, &Event{
		Type: "conversation_list",
		Data: map[string]any{
			"channel":       channel,
			"conversations": conversations,
		},
	})
}

func (s userSink) Thread(orderID string, channel entity.ChannelType, messages []entity.Message) {
	s.hub.Send(s.userID, &Event{
		Type: "thread",
		Data: map[string]any{
			"order_id": orderID,
			"channel":  channel,
			"messages": messages,
		},
	})
}

func (s userSink) UnreadBadge(orderID string, channel entity.ChannelType, unread int) {
	s.hub.Send(s.userID, &Event{
		Type: "unread_badge",
		Data: map[string]any{
			"order_id": orderID,
			"channel":  channel,
			"unread":   unread,
		},
	})
}

// clientEvent represents an incoming websocket message from a client.
type clientEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleClientMessage parses and dispatches an incoming message from a
// client connection.
func (h *Hub) HandleClientMessage(user *entity.UserAuth, raw []byte) {
	if h.handler == nil {
		return
	}

	var event clientEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		if h.log != nil {
			h.log.Warn("failed to parse client ws message", slog.String("error", err.Error()))
		}
		return
	}

	switch event.Type {
	case "open_thread":
		var data struct {
			OrderID string `json:"order_id"`
			Channel string `json:"channel"`
		}
		if err := json.Unmarshal(event.Data, &data); err != nil {
			if h.log != nil {
				h.log.Warn("failed to parse open_thread data", slog.String("error", err.Error()))
			}
			return
		}
		channel, err := entity.ParseChannel(data.Channel)
		if err != nil || data.OrderID == "" {
			return
		}
		if err := h.handler.OpenThread(user, data.OrderID, channel); err != nil {
			if h.log != nil {
				h.log.Error("failed to open thread",
					slog.String("user", user.ID),
					slog.String("order_id", data.OrderID),
					slog.String("channel", data.Channel),
					slog.String("error", err.Error()),
				)
			}
		}

	case "close_thread":
		h.handler.CloseThread(user)
	}
}
