package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"TrioChat/internal/config"
	"TrioChat/internal/http-server/handlers/chat"
	"TrioChat/internal/http-server/handlers/errors"
	"TrioChat/internal/http-server/handlers/order"
	"TrioChat/internal/http-server/middleware/authenticate"
	"TrioChat/internal/http-server/middleware/timeout"
	"TrioChat/internal/lib/sl"
	"TrioChat/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	chat.Core
	order.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(15))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	// websocket clients authenticate with a token query param on upgrade,
	// not the Authorization header
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, handler, log, w, r)
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(authenticate.New(log, handler))

		v1.Route("/chat", func(r chi.Router) {
			r.Get("/channels", chat.GetChannels(log, handler))
			r.Get("/conversations", chat.GetConversations(log, handler))
			r.Get("/messages/{orderID}", chat.GetMessages(log, handler))
			r.Post("/send", chat.SendMessage(log, handler))
		})
		v1.Route("/orders", func(r chi.Router) {
			r.Get("/{orderID}", order.GetOrder(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
