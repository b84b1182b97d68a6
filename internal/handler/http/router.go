package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/handler/http/middleware"
	"github.com/kartavyango/sahaaya/internal/realtime"
	"github.com/kartavyango/sahaaya/internal/usecase"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler         *UserHandler
	authHandler         *AuthHandler
	eventHandler        *EventHandler
	registrationHandler *RegistrationHandler
	notificationHandler *NotificationHandler
	initiativeHandler   *InitiativeHandler
	userUsecase         usecasecontract.IUserUseCase
	jwtService          usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	eventUsecase usecasecontract.IEventUseCase,
	registrationUsecase usecasecontract.IRegistrationUseCase,
	notificationUsecase usecasecontract.INotificationUseCase,
	initiativeUsecase usecasecontract.IInitiativeUseCase,
	jwtService usecase.JWTService,
	hub *realtime.Hub,
	baseURL string,
) *Router {
	return &Router{
		userHandler:         NewUserHandler(userUsecase),
		authHandler:         NewAuthHandler(userUsecase, baseURL),
		eventHandler:        NewEventHandler(eventUsecase),
		registrationHandler: NewRegistrationHandler(registrationUsecase),
		notificationHandler: NewNotificationHandler(notificationUsecase, hub),
		initiativeHandler:   NewInitiativeHandler(initiativeUsecase),
		userUsecase:         userUsecase,
		jwtService:          jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/forgot-password", r.userHandler.ForgotPassword)
		auth.POST("/reset-password", r.userHandler.ResetPassword)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Public event routes, registration included: registrants need no account
	events := v1.Group("/events")
	{
		events.GET("", r.eventHandler.GetEventsHandler)
		events.GET("/:eventID", r.eventHandler.GetEventHandler)
		events.POST("/:eventID/register", r.registrationHandler.RegisterHandler)
	}

	// Public initiative catalog
	initiatives := v1.Group("/initiatives")
	{
		initiatives.GET("", r.initiativeHandler.GetInitiativesHandler)
		initiatives.GET("/:initiativeID", r.initiativeHandler.GetInitiativeHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateUser)

		// Notification feed
		protected.GET("/notifications", r.notificationHandler.ListHandler)
		protected.PUT("/notifications/:notificationID/read", r.notificationHandler.MarkAsReadHandler)
		protected.PUT("/notifications/read-all", r.notificationHandler.MarkAllAsReadHandler)
		protected.GET("/notifications/unread-count", r.notificationHandler.UnreadCountHandler)
		protected.GET("/notifications/stream", r.notificationHandler.StreamHandler)

		// Event management
		organizers := middleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleBlockOfficer, entity.UserRoleOfficialMember)
		protected.POST("/events", organizers, r.eventHandler.CreateEventHandler)
		protected.PUT("/events/:eventID", r.eventHandler.UpdateEventHandler)
		protected.DELETE("/events/:eventID", r.eventHandler.DeleteEventHandler)
		protected.POST("/events/:eventID/share", r.eventHandler.ShareEventHandler)
		protected.DELETE("/events/:eventID/reports/:storageID", r.eventHandler.RemoveReportFileHandler)

		// Registration management
		protected.GET("/events/:eventID/registrations", r.registrationHandler.ListForEventHandler)
		protected.POST("/registrations/:registrationID/share", r.registrationHandler.ShareHandler)
		protected.PUT("/registrations/:registrationID/status", r.registrationHandler.UpdateStatusHandler)

		// Initiative management
		protected.POST("/initiatives", organizers, r.initiativeHandler.CreateInitiativeHandler)
		protected.PUT("/initiatives/:initiativeID", r.initiativeHandler.UpdateInitiativeHandler)
		protected.DELETE("/initiatives/:initiativeID", r.initiativeHandler.DeleteInitiativeHandler)

		// Admin user management
		admin := protected.Group("/users")
		admin.Use(middleware.IsAdmin())
		{
			admin.GET("", r.userHandler.GetAllUsers)
			admin.POST("", r.userHandler.CreateUser)
			admin.GET("/:id", r.userHandler.GetUser)
			admin.PUT("/:id/role", r.userHandler.ChangeUserRole)
			admin.DELETE("/:id", r.userHandler.DeleteUser)
		}
	}

	// Logout route (no authentication required, accepts the refresh token from the request body and invalidates the session)
	v1.POST("/logout", r.userHandler.Logout)
}
