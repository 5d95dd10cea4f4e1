package main

import (
	"fmt"
	"log"
	"net/http"

	"myyeargroup/backend/internal/auth"
	"myyeargroup/backend/internal/config"
	"myyeargroup/backend/internal/database"
	"myyeargroup/backend/internal/handler"
	"myyeargroup/backend/internal/hub"
	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/internal/store"
	"myyeargroup/backend/internal/store/gormstore"
	"myyeargroup/backend/internal/store/memory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "myyeargroup/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           MyYearGroup API
// @version         1.0
// @description     This is the API for the MyYearGroup medical alumni network.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Unable to create logger, %v", err)
	}
	defer logger.Sync()

	// With no DATABASE_URL the server runs on the seeded in-memory store.
	var st store.Store
	if config.AppConfig.DatabaseURL != "" {
		db, err := database.Connect(config.AppConfig.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		st = gormstore.New(db)
		logger.Info("Using postgres store")
	} else {
		st = memory.NewSeeded()
		logger.Info("Using seeded in-memory store")
	}

	eventHub := hub.NewHub()

	notifications := service.NewNotificationService(st, eventHub, logger)
	accounts := service.NewAccountService(st, notifications, logger)
	friendships := service.NewFriendshipService(st, notifications, logger)
	feed := service.NewFeedService(st, friendships, notifications, logger)
	listings := service.NewListingService(st, friendships, notifications, logger)
	events := service.NewEventService(st, notifications, logger)

	authHandler := handler.NewAuthHandler(accounts)
	userHandler := handler.NewUserHandler(accounts, friendships)
	friendshipHandler := handler.NewFriendshipHandler(friendships, accounts)
	postHandler := handler.NewPostHandler(feed, accounts)
	yeargroupHandler := handler.NewYeargroupHandler(st, feed)
	jobHandler := handler.NewJobHandler(listings)
	propertyHandler := handler.NewPropertyHandler(listings)
	eventHandler := handler.NewEventHandler(events)
	notificationHandler := handler.NewNotificationHandler(notifications, eventHub)
	adminHandler := handler.NewAdminHandler(accounts)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// User routes (any authenticated user, including pending ones, so
		// they can see their own approval status)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.PUT("/me", userHandler.UpdateMe)
		}

		// Member routes (approved members only)
		memberRoutes := apiV1.Group("/users")
		memberRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			memberRoutes.GET("", userHandler.SearchUsers) // Must be before /:id
			memberRoutes.GET("/:id", userHandler.GetUserByID)

			// Friendship routes
			memberRoutes.POST("/:id/request", friendshipHandler.SendRequest)
			memberRoutes.POST("/:id/accept", friendshipHandler.AcceptRequest)
			memberRoutes.POST("/:id/decline", friendshipHandler.DeclineRequest)
			memberRoutes.POST("/:id/block", friendshipHandler.BlockUser)
		}

		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			friendRoutes.GET("", friendshipHandler.ListFriends)
			friendRoutes.GET("/requests", friendshipHandler.ListRequests)
		}

		// Feed and post routes (approved members only)
		feedRoutes := apiV1.Group("/")
		feedRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			feedRoutes.GET("/feed", postHandler.GetFeed)
			feedRoutes.POST("/posts", postHandler.CreatePost)
			feedRoutes.POST("/posts/:id/like", postHandler.ToggleLike)
			feedRoutes.GET("/posts/:id/comments", postHandler.ListComments)
			feedRoutes.POST("/posts/:id/comments", postHandler.AddComment)
		}

		// Yeargroup routes (approved members only)
		yeargroupRoutes := apiV1.Group("/yeargroups")
		yeargroupRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			yeargroupRoutes.GET("", yeargroupHandler.ListYeargroups)
			yeargroupRoutes.GET("/:id", yeargroupHandler.GetYeargroup)
			yeargroupRoutes.GET("/:id/members", yeargroupHandler.ListMembers)
			yeargroupRoutes.GET("/:id/posts", yeargroupHandler.ListPosts)
			yeargroupRoutes.GET("/:id/events", eventHandler.ListEvents)
		}

		// Job board routes (approved members only)
		jobRoutes := apiV1.Group("/jobs")
		jobRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			jobRoutes.GET("", jobHandler.ListJobs)
			jobRoutes.POST("", jobHandler.CreateJob)
			jobRoutes.GET("/:id", jobHandler.GetJob)
			jobRoutes.POST("/:id/close", jobHandler.CloseJob)
		}

		// Property board routes (approved members only)
		propertyRoutes := apiV1.Group("/properties")
		propertyRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			propertyRoutes.GET("", propertyHandler.ListProperties)
			propertyRoutes.POST("", propertyHandler.CreateProperty)
			propertyRoutes.GET("/:id", propertyHandler.GetProperty)
			propertyRoutes.POST("/:id/close", propertyHandler.CloseProperty)
		}

		// Event routes (approved members only)
		eventRoutes := apiV1.Group("/events")
		eventRoutes.Use(auth.AuthMiddleware(), auth.ApprovedMiddleware(st.Users()))
		{
			eventRoutes.POST("", eventHandler.CreateEvent)
			eventRoutes.GET("/:id", eventHandler.GetEvent)
			eventRoutes.POST("/:id/rsvp", eventHandler.RSVP)
		}

		// Notification routes (any authenticated user)
		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(auth.AuthMiddleware())
		{
			notificationRoutes.GET("", notificationHandler.ListNotifications)
			notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
			notificationRoutes.GET("/stream", notificationHandler.Stream)
			notificationRoutes.POST("/read-all", notificationHandler.MarkAllRead)
			notificationRoutes.POST("/:id/read", notificationHandler.MarkRead)
			notificationRoutes.DELETE("", notificationHandler.ClearAll)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware(st.Users()))
		{
			adminRoutes.GET("/users", adminHandler.ListUsers)
			adminRoutes.GET("/stats", adminHandler.GetStats)
			adminRoutes.POST("/users/:id/approve", adminHandler.ApproveUser)
			adminRoutes.POST("/users/:id/reject", adminHandler.RejectUser)
			adminRoutes.POST("/users/:id/suspend", adminHandler.SuspendUser)
			adminRoutes.POST("/users/:id/reactivate", adminHandler.ReactivateUser)
			adminRoutes.POST("/users/:id/verify-email", adminHandler.VerifyUserEmail)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
