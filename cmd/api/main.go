package main

import (
	"log"
	"time"

	"bizlist/config"
	"bizlist/internal/handler"
	"bizlist/internal/redis"
	"bizlist/internal/repository"
	"bizlist/internal/server"
	"bizlist/internal/services"
	"bizlist/internal/websocket"
	"bizlist/pkg/database"
	"bizlist/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	listingRepo := repository.NewListingRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	listingService := services.NewListingService(listingRepo, l)
	chatService := services.NewChatService(conversationRepo, l)

	hub := websocket.NewHub()

	handlers := &server.Handlers{
		Listings:      handler.NewListingHandler(listingService, l),
		Conversations: handler.NewConversationHandler(chatService, l),
		Chat:          websocket.NewHandler(hub, chatService, l),
	}

	var limiter *redis.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = redis.NewRateLimiter(redis.NewClient(cfg), cfg.RateLimitPerMinute, time.Minute)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, db, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
