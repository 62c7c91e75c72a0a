package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lojasmm/rowkit/internal/bot"
	"github.com/lojasmm/rowkit/internal/config"
	"github.com/lojasmm/rowkit/internal/discord"
	"github.com/lojasmm/rowkit/internal/log"
	"github.com/lojasmm/rowkit/internal/metrics"
	"github.com/lojasmm/rowkit/internal/middleware"
	"github.com/lojasmm/rowkit/internal/session"
	"github.com/lojasmm/rowkit/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		base := log.Base()
		base.Fatal().Err(err).Msg("config")
	}

	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.WithComponent("main")

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "rowkit.db"))
	if err != nil {
		logger.Fatal().Err(err).Msg("store")
	}
	defer db.Close()

	if cfg.DraftsFile != "" {
		drafts, err := store.LoadSeedFile(cfg.DraftsFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.DraftsFile).Msg("loading drafts")
		}
		if err := store.Seed(db, drafts); err != nil {
			logger.Fatal().Err(err).Msg("seeding drafts")
		}
		metrics.DraftsSeededTotal.Add(float64(len(drafts)))
		logger.Info().Int("drafts", len(drafts)).Str("file", cfg.DraftsFile).Msg("drafts seeded")
	}

	client := discord.NewClient(cfg.APIBase, cfg.AppID, cfg.BotToken)
	sessionMgr := session.NewManager()

	// Periodic cleanup of idle channel locks
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sessionMgr.Cleanup(1 * time.Hour)
		}
	}()

	botHandler := bot.NewHandler(client, db, sessionMgr)
	webhookHandler, err := discord.NewWebhookHandler(cfg.PublicKey, botHandler.HandleInteraction)
	if err != nil {
		logger.Fatal().Err(err).Msg("webhook")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(log.WithComponent("http")))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.With(middleware.InteractionRateLimit(cfg.RatePerMin)).
		Post("/interactions", webhookHandler.HandleInteraction)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("stopped")
}
