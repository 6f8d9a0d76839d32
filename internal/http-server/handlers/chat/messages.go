package chat

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/entity"
	"TrioChat/internal/lib/api/cont"
	"TrioChat/internal/lib/api/response"
	"TrioChat/internal/lib/sl"
	"TrioChat/internal/service/store"
)

// GetMessages returns the message history for one conversation, marking
// messages addressed to the caller as read in the process.
func GetMessages(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user := cont.GetUser(r.Context())
		if user == nil {
			logger.Error("no authenticated user on request")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("orderID is required"))
			return
		}

		channel, err := entity.ParseChannel(r.URL.Query().Get("channel"))
		if err != nil {
			logger.Error("bad channel parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("channel is required"))
			return
		}

		logger = logger.With(
			slog.String("order_id", orderID),
			slog.String("channel", string(channel)),
		)

		messages, err := handler.GetThreadMessages(user, orderID, channel)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				logger.Debug("conversation not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Order no longer exists"))
			case errors.Is(err, store.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
			default:
				logger.Error("failed to get messages", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Failed to get messages"))
			}
			return
		}

		if messages == nil {
			messages = []entity.Message{}
		}
		logger.With(slog.Int("count", len(messages))).Debug("get messages")

		render.JSON(w, r, response.Ok(messages))
	}
}
