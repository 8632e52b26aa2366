package main

import (
	"context"

	_ "github.com/Lucky-tech10/auto-mart-api/api/swagger" // swagger docs
	"github.com/Lucky-tech10/auto-mart-api/internal/config"
	"github.com/Lucky-tech10/auto-mart-api/internal/email"
	"github.com/Lucky-tech10/auto-mart-api/internal/handler"
	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	"github.com/Lucky-tech10/auto-mart-api/internal/service"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/internal/upload"
	"github.com/Lucky-tech10/auto-mart-api/internal/websocket"
	pkglog "github.com/Lucky-tech10/auto-mart-api/pkg/log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           AutoMart API
// @version         1.0
// @description     Car marketplace backend: listings, orders, flags and accounts over an in-memory store.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := pkglog.New(cfg.Env)
	secret := []byte(cfg.JWTSecret)

	uploader, err := upload.NewGCSUploader(context.Background(), cfg.GCSBucket, cfg.GCSCredentialsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("image storage init failed")
	}
	defer uploader.Close()

	mailer := email.NewSMTPSender(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})

	// Live event hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	st := store.New()
	authService := service.NewAuthService(st, st, mailer, secret, cfg.JWTLifetime, cfg.FrontendURL, logger)
	userService := service.NewUserService(st)
	carService := service.NewCarService(st, wsHub)
	orderService := service.NewOrderService(st, st, wsHub)
	flagService := service.NewFlagService(st, st)

	auth := middleware.Authenticate(secret, st)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, auth)
	carHandler := handler.NewCarHandler(carService, uploader, auth)
	orderHandler := handler.NewOrderHandler(orderService, auth)
	flagHandler := handler.NewFlagHandler(flagService, auth)

	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, secret)
	})

	// API routing
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1)
	carHandler.RegisterRoutes(v1)
	orderHandler.RegisterRoutes(v1)
	flagHandler.RegisterRoutes(v1)

	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
