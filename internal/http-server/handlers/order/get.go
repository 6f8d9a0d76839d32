package order

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/internal/lib/api/response"
	"TrioChat/internal/lib/sl"
	"TrioChat/internal/service/store"
)

// GetOrder returns the order metadata shown in a thread header.
func GetOrder(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.order")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("orderID is required"))
			return
		}

		logger = logger.With(slog.String("order_id", orderID))

		ord, err := handler.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logger.Debug("order not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Order no longer exists"))
				return
			}
			logger.Error("failed to get order", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get order"))
			return
		}
		logger.Debug("get order")

		render.JSON(w, r, response.Ok(ord))
	}
}
