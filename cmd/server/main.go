package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minichat-backend/internal/config"
	"minichat-backend/internal/database"
	"minichat-backend/internal/handlers"
	"minichat-backend/internal/repository"
	"minichat-backend/internal/router"
	"minichat-backend/internal/services"
	"minichat-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Minichat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	ctx := context.Background()

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	conversationRepo := repository.NewConversationRepo(pool)
	messageRepo := repository.NewMessageRepo(pool)
	historyCache := repository.NewHistoryCache(
		redisClients.Cache,
		cfg.HistoryCacheSize,
		time.Duration(cfg.HistoryCacheTTL)*time.Second,
	)

	// ──── Step 5: Prepare AI Gateway ────
	// Constructed lazily: the first chat request pays the model-probing
	// cost, and a missing key degrades to localized fallback text instead
	// of aborting startup.
	gatewayProvider := services.NewGatewayProvider(func(ctx context.Context) (services.AIGateway, error) {
		return services.NewGeminiService(ctx, cfg.GoogleAPIKey)
	})
	if cfg.GoogleAPIKey == "" {
		log.Println("⚠ GOOGLE_API_KEY not set; AI gateway will be unavailable")
	} else {
		log.Println("✓ AI gateway configured (lazy initialization)")
	}

	responder := services.NewResponder(gatewayProvider)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(
		conversationRepo, messageRepo, historyCache, responder,
		redisClients.PubSub, cfg.StoragePath,
	)
	conversationHandler := handlers.NewConversationHandler(
		conversationRepo, messageRepo, historyCache, cfg.StoragePath,
	)

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(chatHandler, conversationHandler, wsHub, cfg.StoragePath, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // gateway calls are blocking round trips
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Minichat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
