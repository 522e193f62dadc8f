package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "tourdesk/internal/adapters/http_server"
	"tourdesk/internal/adapters/observability"
	redisad "tourdesk/internal/adapters/redis"
	"tourdesk/internal/app"
	"tourdesk/internal/domain"
	"tourdesk/internal/shared"
	"tourdesk/internal/storage/jsonfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// document store + one-time admin migration
	store := jsonfile.New(cfg.DBFile)
	if err := store.EnsureAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("admin migration failed")
	}
	log.Info().Str("file", cfg.DBFile).Msg("document store ready")

	// deps
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	svc := app.NewService(store, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.CORSOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Svc: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
