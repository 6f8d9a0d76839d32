package chat

import (
	"log/slog"

	"TrioChat/entity"
	"TrioChat/internal/lib/sl"
)

// Reconciler marks messages addressed to the current user as read, both on
// the backend and on the local copy.
type Reconciler struct {
	store  Store
	userID string
	role   entity.Role
	log    *slog.Logger
}

func NewReconciler(store Store, userID string, role entity.Role, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		userID: userID,
		role:   role,
		log:    logger.With(sl.Module("chat.reconciler")),
	}
}

// Actionable reports whether the viewer should mark m read: somebody else
// sent it, it is not read yet, and the sender sits on the other end of this
// channel relative to the viewer's role.
func (r *Reconciler) Actionable(m *entity.Message, channel entity.ChannelType) bool {
	if m.SenderID == r.userID {
		return false
	}
	if m.Status == entity.StatusRead {
		return false
	}
	counterpart, ok := channel.Counterpart(r.role)
	if !ok {
		return false
	}
	return m.SenderType == counterpart
}

// Reconcile marks every actionable message in the batch read. Each message
// is independent: a failed status update is logged and left unread, so the
// next poll picks it up again. The local copies of successfully marked
// messages are updated in place. Returns the set of message ids marked.
func (r *Reconciler) Reconcile(channel entity.ChannelType, messages []entity.Message) map[string]struct{} {
	marked := make(map[string]struct{})
	for i := range messages {
		m := &messages[i]
		if !r.Actionable(m, channel) {
			continue
		}
		if m.ID == "" {
			continue
		}
		if err := r.store.SetMessageStatus(m.ID, channel, entity.StatusRead); err != nil {
			r.log.With(
				slog.String("message_id", m.ID),
				slog.String("channel", string(channel)),
			).Debug("mark read failed, retrying next poll", sl.Err(err))
			continue
		}
		m.Status = entity.StatusRead
		marked[m.ID] = struct{}{}
	}
	return marked
}

// CountUnread derives the unread badge value for a message batch: how many
// messages the viewer could still mark read. It holds no state, so a badge
// lost in memory is always recomputable from a fresh fetch.
func (r *Reconciler) CountUnread(channel entity.ChannelType, messages []entity.Message) int {
	n := 0
	for i := range messages {
		if r.Actionable(&messages[i], channel) {
			n++
		}
	}
	return n
}
