package main

import (
	"flag"
	"log/slog"
	"time"

	"TrioChat/impl/core"
	"TrioChat/internal/chat"
	"TrioChat/internal/config"
	"TrioChat/internal/http-server/api"
	"TrioChat/internal/lib/logger"
	"TrioChat/internal/lib/sl"
	"TrioChat/internal/service/auth"
	"TrioChat/internal/service/store"
	"TrioChat/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting triochat", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	storeService := store.NewStoreService(conf, lg)
	handler.SetStoreService(storeService)
	lg.With(
		slog.String("url", conf.Backend.BaseURL),
	).Info("store service initialized")

	authService := auth.NewAuthService(conf, lg)
	handler.SetAuthService(authService)
	lg.With(
		slog.String("url", conf.Auth.BaseURL),
	).Info("auth service initialized")

	router := chat.NewRouter(conf.Chat.VendorCustomerEnabled)
	handler.SetRouter(router)

	hub := ws.NewHub(lg)
	hub.SetHandler(handler)
	go hub.Run()

	manager := chat.NewManager(
		storeService,
		router,
		func(userID string) chat.EventSink { return hub.UserSink(userID) },
		time.Duration(conf.Chat.ListPollSeconds)*time.Second,
		time.Duration(conf.Chat.ThreadPollSeconds)*time.Second,
		lg,
	)
	handler.SetChatManager(manager)
	lg.With(
		slog.Int("list_poll_seconds", conf.Chat.ListPollSeconds),
		slog.Int("thread_poll_seconds", conf.Chat.ThreadPollSeconds),
	).Info("chat manager initialized")

	// *** blocking start with http server ***
	err := api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
