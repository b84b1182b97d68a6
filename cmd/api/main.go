package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/kartavyango/sahaaya/internal/handler/http"
	redisclient "github.com/kartavyango/sahaaya/internal/infrastructure/cache"
	"github.com/kartavyango/sahaaya/internal/infrastructure/config"
	database "github.com/kartavyango/sahaaya/internal/infrastructure/database"
	"github.com/kartavyango/sahaaya/internal/infrastructure/external_services"
	"github.com/kartavyango/sahaaya/internal/infrastructure/jwt"
	"github.com/kartavyango/sahaaya/internal/infrastructure/logger"
	passwordservice "github.com/kartavyango/sahaaya/internal/infrastructure/password_service"
	randomgenerator "github.com/kartavyango/sahaaya/internal/infrastructure/random_generator"
	"github.com/kartavyango/sahaaya/internal/infrastructure/repository/mongodb"
	"github.com/kartavyango/sahaaya/internal/infrastructure/storage"
	"github.com/kartavyango/sahaaya/internal/infrastructure/store"
	"github.com/kartavyango/sahaaya/internal/infrastructure/uuidgen"
	"github.com/kartavyango/sahaaya/internal/infrastructure/validator"
	"github.com/kartavyango/sahaaya/internal/realtime"
	"github.com/kartavyango/sahaaya/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(context.Background(), mongoURI, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	// SMTP settings for registrant and password-reset mail
	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(mongoClient.Collection("users"))
	tokenRepo := mongodb.NewTokenRepository(mongoClient.Collection("tokens"))
	eventRepo := mongodb.NewMongoEventRepository(mongoClient.Collection("events"))
	registrationRepo := mongodb.NewMongoRegistrationRepository(mongoClient.Collection("event_registrations"))
	notificationRepo := mongodb.NewMongoNotificationRepository(mongoClient.Collection("notifications"))
	initiativeRepo := mongodb.NewMongoInitiativeRepository(mongoClient.Collection("initiatives"))

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtRefreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if jwtRefreshSecret == "" {
		jwtRefreshSecret = jwtSecret
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, jwtRefreshSecret, "sahaaya", 15*time.Minute, appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	fileStorage, err := storage.NewLocalStorage(appConfig.UploadDir, appConfig.UploadBaseURL, uuidGenerator)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, mailService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	notificationUsecase := usecase.NewNotificationUsecase(notificationRepo, userRepo, uuidGenerator, appLogger)
	notificationUsecase.SetFanoutConcurrency(appConfig.GetFanoutConcurrency())
	eventUsecase := usecase.NewEventUsecase(eventRepo, notificationUsecase, fileStorage, uuidGenerator, appLogger)
	registrationUsecase := usecase.NewRegistrationUsecase(registrationRepo, eventRepo, notificationUsecase, mailService, appValidator, uuidGenerator, appLogger)
	initiativeUsecase := usecase.NewInitiativeUsecase(initiativeRepo, fileStorage, uuidGenerator, appLogger)

	// Realtime notification hub
	hub := realtime.NewHub()
	notificationUsecase.SetPublisher(hub)

	// Optional Dependency Injection: Redis unread-count cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		notificationUsecase.SetCache(store.NewNotificationCacheStore(rdb))
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, eventUsecase, registrationUsecase,
		notificationUsecase, initiativeUsecase,
		jwtService, hub, appConfig.GetAppBaseURL(),
	)
	appRouter.SetupRoutes(router)

	// Serve stored uploads
	router.Static("/uploads", appConfig.UploadDir)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
