package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/santa/internal/common/clock"
	"github.com/KirkDiggler/santa/internal/common/logger"
	"github.com/KirkDiggler/santa/internal/common/uuid"
	"github.com/KirkDiggler/santa/internal/config"
	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/handlers/discord"
	"github.com/KirkDiggler/santa/internal/random"
	"github.com/KirkDiggler/santa/internal/repositories/attendee"
	santaRepo "github.com/KirkDiggler/santa/internal/repositories/secret_santa"
	"github.com/KirkDiggler/santa/internal/services/messaging"
	"github.com/KirkDiggler/santa/internal/services/notifications"
	"github.com/KirkDiggler/santa/internal/services/santa"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	sealKey, err := cfg.SealKeyBytes()
	if err != nil {
		zapLogger.Fatal("invalid seal key", zap.Error(err))
	}

	secretSantaRepo, err := santaRepo.NewRedis(&santaRepo.Config{
		RedisClient: redisClient,
		SealKey:     sealKey,
	})
	if err != nil {
		zapLogger.Fatal("failed to create secret santa repository", zap.Error(err))
	}

	attendeeRepo, err := attendee.NewRedis(&attendee.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		zapLogger.Fatal("failed to create attendee repository", zap.Error(err))
	}

	generator, err := draw.NewGenerator(&draw.Config{
		Random:      random.New(nil),
		MaxAttempts: cfg.DrawAttempts,
	})
	if err != nil {
		zapLogger.Fatal("failed to create draw generator", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		zapLogger.Fatal("failed to create messaging service", zap.Error(err))
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		zapLogger.Fatal("failed to create Discord session", zap.Error(err))
	}

	sender, err := notifications.NewDiscordSender(&notifications.DiscordSenderConfig{
		Session: session,
	})
	if err != nil {
		zapLogger.Fatal("failed to create Discord sender", zap.Error(err))
	}

	dispatcher, err := notifications.NewDispatcher(&notifications.DispatcherConfig{
		Sender:     sender,
		Messaging:  messagingSvc,
		Directory:  attendeeRepo,
		Logger:     zapLogger,
		Workers:    cfg.NotifyWorkers,
		MaxRetries: cfg.NotifyRetries,
		RetryDelay: cfg.NotifyRetryDelay,
	})
	if err != nil {
		zapLogger.Fatal("failed to create notification dispatcher", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	dispatcher.Start(ctx)

	santaSvc, err := santa.New(&santa.Config{
		Repository:      secretSantaRepo,
		Generator:       generator,
		Notifier:        dispatcher,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		Logger:          zapLogger,
		MinParticipants: cfg.MinParticipants,
	})
	if err != nil {
		zapLogger.Fatal("failed to create santa service", zap.Error(err))
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zapLogger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		SantaService:  santaSvc,
		Messaging:     messagingSvc,
		Directory:     attendeeRepo,
		Logger:        zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		zapLogger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		zapLogger.Warn("error stopping bot", zap.Error(err))
	}

	// Let queued notifications drain before cancelling the workers
	if err := dispatcher.Stop(); err != nil {
		zapLogger.Warn("error stopping dispatcher", zap.Error(err))
	}
	stop()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			zapLogger.Warn("error stopping metrics server", zap.Error(err))
		}
		cancel()
	}

	if err := redisClient.Close(); err != nil {
		zapLogger.Warn("error closing Redis client", zap.Error(err))
	}

	zapLogger.Info("bot has been shut down")
}
