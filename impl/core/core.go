package core

import (
	"fmt"
	"log/slog"

	"TrioChat/entity"
	"TrioChat/internal/chat"
	"TrioChat/internal/lib/sl"
)

// StoreService is the backend message-store client the core depends on.
type StoreService interface {
	chat.Store
	GetOrder(orderID string) (*entity.Order, error)
}

// AuthService resolves bearer tokens against the identity provider.
type AuthService interface {
	AuthenticateByToken(token string) (*entity.UserAuth, error)
}

// Core wires the chat controllers, the store client and the identity
// client behind the interfaces the HTTP and websocket layers consume.
type Core struct {
	log     *slog.Logger
	auth    AuthService
	store   StoreService
	manager *chat.Manager
	router  *chat.Router
}

func New(lg *slog.Logger) *Core {
	return &Core{
		log: lg.With(sl.Module("core")),
	}
}

func (c *Core) SetAuthService(auth AuthService)      { c.auth = auth }
func (c *Core) SetStoreService(store StoreService)   { c.store = store }
func (c *Core) SetChatManager(manager *chat.Manager) { c.manager = manager }
func (c *Core) SetRouter(router *chat.Router)        { c.router = router }

// AuthenticateByToken implements the authenticate middleware contract.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if c.auth == nil {
		return nil, fmt.Errorf("auth service not available")
	}
	return c.auth.AuthenticateByToken(token)
}

// GetChannels returns the channel tabs for the user's role.
func (c *Core) GetChannels(user *entity.UserAuth) []entity.ChannelInfo {
	return c.router.Channels(user.Role)
}

// GetConversations serves the conversation list for one channel: the live
// session snapshot when the user holds a websocket, a one-shot backend
// fetch otherwise.
func (c *Core) GetConversations(user *entity.UserAuth, channel entity.ChannelType) ([]entity.Conversation, error) {
	if !c.router.Allowed(user.Role, channel) {
		return nil, fmt.Errorf("channel %s not available for role %s", channel, user.Role)
	}

	if c.manager != nil {
		if sess, ok := c.manager.Lookup(user.ID); ok {
			return sess.Conversations(channel)
		}
	}
	return c.store.ListConversations(channel)
}

// GetThreadMessages serves one conversation's history, reconciling read
// state for the caller as a side effect.
func (c *Core) GetThreadMessages(user *entity.UserAuth, orderID string, channel entity.ChannelType) ([]entity.Message, error) {
	if !c.router.Allowed(user.Role, channel) {
		return nil, fmt.Errorf("channel %s not available for role %s", channel, user.Role)
	}

	if c.manager != nil {
		if sess, ok := c.manager.Lookup(user.ID); ok {
			return sess.FetchThread(orderID, channel)
		}
	}

	messages, err := c.store.ListMessages(orderID, channel)
	if err != nil {
		return nil, err
	}
	rec := chat.NewReconciler(c.store, user.ID, user.Role, c.log)
	rec.Reconcile(channel, messages)
	return messages, nil
}

// SendChatMessage submits a message. When the user's session has the
// conversation open the send goes through the thread controller, so the
// optimistic copy shows up on their other tabs; otherwise it is a plain
// backend call.
func (c *Core) SendChatMessage(user *entity.UserAuth, req *entity.SendMessageRequest) (*entity.Message, error) {
	if !c.router.Allowed(user.Role, req.Channel) {
		return nil, fmt.Errorf("channel %s not available for role %s", req.Channel, user.Role)
	}

	if c.manager != nil {
		if sess, ok := c.manager.Lookup(user.ID); ok {
			msg, err := sess.Send(req.OrderID, req.Channel, req.Message, req.RecipientID)
			if err == nil {
				return msg, nil
			}
		}
	}
	// plain backend call: no optimistic copy exists, so no temp id to echo
	return c.store.SendMessage(req.OrderID, req.Channel, req.Message, req.RecipientID, "")
}

// GetOrder returns the order metadata for a thread header.
func (c *Core) GetOrder(orderID string) (*entity.Order, error) {
	return c.store.GetOrder(orderID)
}

// Connect, Disconnect, OpenThread and CloseThread implement the websocket
// hub's client lifecycle contract.
func (c *Core) Connect(user *entity.UserAuth) {
	if c.manager != nil {
		c.manager.Connect(user)
	}
}

func (c *Core) Disconnect(user *entity.UserAuth) {
	if c.manager != nil {
		c.manager.Disconnect(user)
	}
}

func (c *Core) OpenThread(user *entity.UserAuth, orderID string, channel entity.ChannelType) error {
	if c.manager == nil {
		return fmt.Errorf("chat manager not available")
	}
	return c.manager.OpenThread(user, orderID, channel)
}

func (c *Core) CloseThread(user *entity.UserAuth) {
	if c.manager != nil {
		c.manager.CloseThread(user)
	}
}
