package chat

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrioChat/entity"
	"TrioChat/internal/lib/api/cont"
	"TrioChat/internal/service/store"
)

type stubCore struct {
	sendFn func(user *entity.UserAuth, req *entity.SendMessageRequest) (*entity.Message, error)
}

func (s *stubCore) GetChannels(*entity.UserAuth) []entity.ChannelInfo { return nil }

func (s *stubCore) GetConversations(*entity.UserAuth, entity.ChannelType) ([]entity.Conversation, error) {
	return nil, nil
}

func (s *stubCore) GetThreadMessages(*entity.UserAuth, string, entity.ChannelType) ([]entity.Message, error) {
	return nil, nil
}

func (s *stubCore) SendChatMessage(user *entity.UserAuth, req *entity.SendMessageRequest) (*entity.Message, error) {
	return s.sendFn(user, req)
}

func doSend(t *testing.T, core Core, user *entity.UserAuth, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(cont.PutUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	SendMessage(slog.New(slog.NewTextHandler(io.Discard, nil)), core)(rec, req)
	return rec
}

func TestSendMessage_Ok(t *testing.T) {
	user := &entity.UserAuth{ID: "u1", Name: "Ravi", Role: entity.RoleDelivery}

	core := &stubCore{sendFn: func(u *entity.UserAuth, req *entity.SendMessageRequest) (*entity.Message, error) {
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "ord-1", req.OrderID)
		assert.Equal(t, entity.ChannelCustomerDelivery, req.Channel)
		return &entity.Message{ID: "m1", OrderID: req.OrderID, Body: req.Message, Status: entity.StatusSending}, nil
	}}

	rec := doSend(t, core, user, `{"order_id":"ord-1","channel":"customer-delivery","message":"on my way"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string         `json:"status"`
		Data   entity.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "m1", resp.Data.ID)
}

func TestSendMessage_BadBody(t *testing.T) {
	core := &stubCore{sendFn: func(*entity.UserAuth, *entity.SendMessageRequest) (*entity.Message, error) {
		t.Fatal("core must not be called for invalid bodies")
		return nil, nil
	}}
	user := &entity.UserAuth{ID: "u1", Role: entity.RoleCustomer}

	for name, body := range map[string]string{
		"empty message":   `{"order_id":"ord-1","channel":"customer-delivery","message":""}`,
		"unknown channel": `{"order_id":"ord-1","channel":"vendor-admin","message":"hi"}`,
		"not json":        `not json`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doSend(t, core, user, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSendMessage_NoUser(t *testing.T) {
	core := &stubCore{}
	rec := doSend(t, core, nil, `{"order_id":"ord-1","channel":"customer-delivery","message":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendMessage_OrderGone(t *testing.T) {
	core := &stubCore{sendFn: func(*entity.UserAuth, *entity.SendMessageRequest) (*entity.Message, error) {
		return nil, store.ErrNotFound
	}}
	user := &entity.UserAuth{ID: "u1", Role: entity.RoleVendor}

	rec := doSend(t, core, user, `{"order_id":"gone","channel":"vendor-delivery","message":"hello?"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order no longer exists", resp.Message)
}
