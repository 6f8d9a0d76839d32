package chat

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/entity"
	"TrioChat/internal/lib/api/cont"
	"TrioChat/internal/lib/api/response"
	"TrioChat/internal/lib/sl"
	"TrioChat/internal/service/store"
)

// SendMessage submits a new message to a conversation.
func SendMessage(log *slog.Logger, handler Core) http.HandlerFunc {
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

		req := &entity.SendMessageRequest{}
		if err := render.Bind(r, req); err != nil {
			logger.Error("bad send request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		logger = logger.With(
			slog.String("order_id", req.OrderID),
			slog.String("channel", string(req.Channel)),
		)

		msg, err := handler.SendChatMessage(user, req)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Order no longer exists"))
			case errors.Is(err, store.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
			default:
				logger.Error("failed to send message", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Failed to send message"))
			}
			return
		}
		logger.Debug("message sent")

		render.JSON(w, r, response.Ok(msg))
	}
}
