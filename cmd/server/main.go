package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planmate-backend/internal/common/config"
	"planmate-backend/internal/common/database"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/common/observability"
	"planmate-backend/internal/generation"
	"planmate-backend/internal/interview"
	"planmate-backend/internal/notify"
	"planmate-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting planmate backend", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"address":     cfg.Server.Address,
	})

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		log.WithError(err).Error("failed to open postgres", nil)
		os.Exit(1)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := pg.Ping(ctx); err != nil {
		cancel()
		log.WithError(err).Error("postgres unreachable", nil)
		os.Exit(1)
	}
	cancel()

	var redisClient *database.RedisClient
	var planCache *generation.PlanCache
	if cfg.Database.Redis.Address != "" {
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, plan cache disabled", nil)
		} else {
			defer redisClient.Close()
			planCache = generation.NewPlanCache(
				redisClient.GetClient(),
				time.Duration(cfg.Cache.PlanTTL)*time.Second,
			)
		}
	}

	var sender generation.PlanSender
	if cfg.Email.Enabled {
		emailSender, err := notify.NewEmailSender(context.Background(), cfg.Email, log)
		if err != nil {
			log.WithError(err).Warn("email delivery disabled", nil)
		} else {
			sender = emailSender
		}
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	store := interview.NewStore(pg.GetDB(), log)
	flow := interview.NewFlow(store, log)
	client := generation.NewAnthropicClient(cfg.Anthropic)
	generator := generation.NewService(client, store, planCache, sender, obs, log)

	handler := server.NewHandler(server.Deps{
		Store:     store,
		Flow:      flow,
		Generator: generator,
		PlanCache: planCache,
		DB:        pg,
		Redis:     redisClient,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.NewRouter(handler, cfg.Server.AllowedOrigins),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.WithError(err).Error("http server failed", nil)
		os.Exit(1)
	case sig := <-quit:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed", nil)
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
