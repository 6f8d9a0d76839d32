package chat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/internal/lib/api/cont"
	"TrioChat/internal/lib/api/response"
	"TrioChat/internal/lib/sl"
)

// GetChannels returns the channel tabs available to the caller's role.
func GetChannels(log *slog.Logger, handler Core) http.HandlerFunc {
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

		channels := handler.GetChannels(user)
		logger.With(slog.Int("channels", len(channels))).Debug("get channels")

		render.JSON(w, r, response.Ok(channels))
	}
}
