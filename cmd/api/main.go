package main

import (
	"log"

	"astro-chat/config"
	"astro-chat/internal/domain/account"
	"astro-chat/internal/domain/message"
	"astro-chat/internal/domain/profile"
	"astro-chat/internal/handler"
	"astro-chat/internal/rabbitmq"
	"astro-chat/internal/redis"
	"astro-chat/internal/repository"
	"astro-chat/internal/server"
	"astro-chat/internal/services"
	"astro-chat/pkg/database"
	"astro-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	// Connect to Database
	database.Connect(cfg)

	if err := database.DB.AutoMigrate(
		&account.Account{},
		&profile.Profile{},
		&message.Message{},
	); err != nil {
		log.Fatalf("Failed to apply GORM migrations: %v", err)
	}

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := redis.NewRateLimiter(redis.GetClient(), redis.DefaultRateLimitConfig())

	broker := rabbitmq.NewClient(cfg, l)
	broker.Start()
	defer broker.Close()

	accountRepo := repository.NewAccountRepository(database.DB)
	profileRepo := repository.NewProfileRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)

	authService := services.NewAuthService(accountRepo, cfg)
	profileService := services.NewProfileService(profileRepo)
	chatService := services.NewChatService(accountRepo, messageRepo, broker, l)

	if err := broker.ConsumeNotifications(chatService.HandleNotification); err != nil {
		l.Errorf("Failed to start notification consumer: %s", err)
	}

	handlers := &server.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Profile: handler.NewProfileHandler(profileService),
		Chat:    handler.NewChatHandler(chatService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
