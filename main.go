package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserve/config"
	"homeserve/database"
	accountRepo "homeserve/database/repository/account"
	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	recordsRepo "homeserve/database/repository/records"
	reviewRepo "homeserve/database/repository/review"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/booking"
	"homeserve/services/identity"
	"homeserve/services/provider"
	"homeserve/services/review"
	"homeserve/services/storage"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	// Record store backend.
	var store recordsRepo.Store
	switch config.AppConfig.StoreBackend {
	case "mongo":
		db, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL, config.AppConfig.DatabaseName)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		store = recordsRepo.NewMongoStore(db)
	case "memory":
		store = recordsRepo.NewMemoryStore()
	default:
		utils.InitRedis()
		store = recordsRepo.NewRedisStore(utils.GetCacheClient())
	}

	// Identity provider backend.
	var idProvider identity.Provider
	if config.AppConfig.IdentityBackend == "firebase" {
		fb, err := identity.NewFirebaseProvider(context.Background())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize firebase identity provider: %v", err)
		}
		idProvider = fb
	} else {
		idProvider = identity.NewLocalProvider(store)
	}
	gate := identity.NewGate(idProvider, logger)

	// Qualification document storage is optional.
	var storageSvc storage.StorageService
	if config.AppConfig.CloudinaryURL != "" {
		svc, err := storage.NewStorageService()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		storageSvc = svc
	}

	// Repositories.
	provRepo := providerRepo.NewRecordProviderRepo(store)
	bookRepo := bookingRepo.NewRecordBookingRepo(store)
	revRepo := reviewRepo.NewRecordReviewRepo(store)
	acctRepo := accountRepo.NewRecordAccountRepo(store)

	// Services.
	providerService := &provider.DefaultProviderService{Repo: provRepo, Gate: gate}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookRepo,
		Providers: provRepo,
		Accounts:  acctRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     revRepo,
		Bookings: bookRepo,
	}
	userService := &user.DefaultUserService{
		Gate:      gate,
		Accounts:  acctRepo,
		Providers: provRepo,
	}

	// Router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(userService),
		Provider: handlers.NewProviderHandler(providerService, storageSvc),
		Booking:  handlers.NewBookingHandler(bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Account:  handlers.NewAccountHandler(userService),
		Admin:    handlers.NewAdminHandler(providerService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
