package chat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/entity"
	"TrioChat/internal/lib/api/cont"
	"TrioChat/internal/lib/api/response"
	"TrioChat/internal/lib/sl"
)

// GetConversations returns the active conversation list for one channel.
func GetConversations(log *slog.Logger, handler Core) http.HandlerFunc {
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

		channel, err := entity.ParseChannel(r.URL.Query().Get("channel"))
		if err != nil {
			logger.Error("bad channel parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("channel is required"))
			return
		}

		logger = logger.With(slog.String("channel", string(channel)))

		conversations, err := handler.GetConversations(user, channel)
		if err != nil {
			logger.Error("failed to get conversations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get conversations"))
			return
		}

		if conversations == nil {
			conversations = []entity.Conversation{}
		}
		logger.With(slog.Int("count", len(conversations))).Debug("get conversations")

		render.JSON(w, r, response.Ok(conversations))
	}
}
