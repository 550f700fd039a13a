package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"studyaid-backend/internal/config"
	"studyaid-backend/internal/database"
	"studyaid-backend/internal/generator"
	"studyaid-backend/internal/handlers"
	"studyaid-backend/internal/logger"
	"studyaid-backend/internal/middleware"
	"studyaid-backend/internal/repository"
	"studyaid-backend/internal/router"
	"studyaid-backend/internal/services"
	"studyaid-backend/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	log, err := logger.New(cfg.Env, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("🚀 Starting StudyAid Backend...", zap.String("env", cfg.Env))

	// ──── Step 3: Initialize Session Store ────
	var (
		store  repository.SessionStore
		pubsub *redis.Client
	)
	switch cfg.SessionStore {
	case config.StoreRedis:
		redisClients, err := database.NewRedisClients(cfg.RedisURL)
		if err != nil {
			log.Fatal("✗ Redis connection failed", zap.Error(err))
		}
		defer redisClients.Close()
		store = repository.NewRedisStore(redisClients.Store, cfg.SessionTTL)
		pubsub = redisClients.PubSub
		log.Info("✓ Redis session store connected")
	default:
		store = repository.NewMemoryStore(cfg.SessionTTL)
		log.Info("✓ In-memory session store ready", zap.Duration("ttl", cfg.SessionTTL))
	}

	// ──── Step 4: Start WebSocket Hub ────
	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret, cfg.SessionTTL)
	wsHub := websocket.NewHub(pubsub, sessionAuth, log.Named("ws"))
	defer wsHub.Close()
	log.Info("✓ WebSocket hub started")

	// ──── Step 5: Initialize Services & Handlers ────
	studyService := services.NewStudyService(store, generator.New(nil), wsHub, log.Named("study"), services.StudyOptions{
		QuestionCount: cfg.QuestionCount,
		MinMCQ:        cfg.MinMCQ,
		FlashcardSeed: cfg.FlashcardSeed,
	})
	fileExtractService := services.NewFileExtractService()

	sessionLimiter := middleware.NewRateLimiter(20, time.Minute)
	defer sessionLimiter.Stop()

	r := router.New(
		sessionAuth,
		handlers.NewSessionHandler(studyService, sessionAuth, log),
		handlers.NewContentHandler(studyService, fileExtractService, cfg.MaxUploadBytes(), log),
		handlers.NewStudyHandler(studyService),
		handlers.NewQuizHandler(studyService),
		handlers.NewFlashcardHandler(studyService),
		wsHub,
		sessionLimiter,
		cfg.FrontendURL,
	)

	// ──── Step 6: Start HTTP Server ────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("✓ StudyAid Backend ready",
			zap.String("api", fmt.Sprintf("http://localhost:%s/api/v1", cfg.Port)),
			zap.String("ws", fmt.Sprintf("ws://localhost:%s/api/v1/ws", cfg.Port)))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
