package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"impulso/config"
	"impulso/cron"
	"impulso/database"
	bookingRepoPkg "impulso/database/repository/booking"
	jovemRepoPkg "impulso/database/repository/jovem"
	memoryRepo "impulso/database/repository/memory"
	ongRepoPkg "impulso/database/repository/ong"
	pricingRepoPkg "impulso/database/repository/pricing"
	reviewRepoPkg "impulso/database/repository/review"
	serviceRepoPkg "impulso/database/repository/service"
	userRepoPkg "impulso/database/repository/user"
	"impulso/handlers"
	"impulso/middleware"
	"impulso/routes"
	"impulso/services/availability"
	"impulso/services/booking"
	"impulso/services/catalog"
	"impulso/services/jovem"
	"impulso/services/notification"
	"impulso/services/ong"
	"impulso/services/pricing"
	"impulso/services/review"
	"impulso/services/storage"
	"impulso/services/user"
	"impulso/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Repositories: MongoDB in production, in-memory for local development.
	var (
		bookingRepo bookingRepoPkg.BookingRepository
		jovemRepo   jovemRepoPkg.JovemRepository
		userRepo    userRepoPkg.UserRepository
		ongRepo     ongRepoPkg.OngRepository
		serviceRepo serviceRepoPkg.ServiceRepository
		reviewRepo  reviewRepoPkg.ReviewRepository
		pricingRepo pricingRepoPkg.PricingConfigRepository
	)

	var cacheClient *redis.Client
	var dispatcher notification.Dispatcher

	if config.UseMemoryStorage() {
		logger.Sugar().Info("main: running on the in-memory storage driver")
		bookingRepo = memoryRepo.NewBookingRepo()
		jovemRepo = memoryRepo.NewJovemRepo()
		userRepo = memoryRepo.NewUserRepo()
		ongRepo = memoryRepo.NewOngRepo()
		serviceRepo = memoryRepo.NewServiceRepo()
		reviewRepo = memoryRepo.NewReviewRepo()
		pricingRepo = memoryRepo.NewPricingRepo()
		dispatcher = &notification.LogDispatcher{Logger: logger}
	} else {
		database.InitDB()
		utils.InitCache()
		cacheClient = utils.GetCacheClient()

		bookingRepo = bookingRepoPkg.NewMongoBookingRepo()
		jovemRepo = jovemRepoPkg.NewMongoJovemRepo()
		userRepo = userRepoPkg.NewMongoUserRepo()
		ongRepo = ongRepoPkg.NewMongoOngRepo()
		serviceRepo = serviceRepoPkg.NewMongoServiceRepo()
		reviewRepo = reviewRepoPkg.NewMongoReviewRepo()
		pricingRepo = pricingRepoPkg.NewMongoPricingRepo()

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		dispatcher = &notification.AsynqDispatcher{Client: asynqClient, Logger: logger}

		cron.InitNotifyWorker(notification.NewEmailNotifier(logger))
	}

	// The content store is optional; without credentials photo uploads and
	// cleanup are disabled.
	var contentStore storage.StorageService
	if cs, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: content store disabled: %v", err)
	} else {
		contentStore = cs
	}

	// Services.
	evaluator := &availability.Evaluator{Bookings: bookingRepo}
	matcher := &booking.Matcher{
		Jovens:       jovemRepo,
		Availability: evaluator,
		CacheClient:  cacheClient,
		Logger:       logger,
	}

	userService := &user.DefaultService{Users: userRepo, Ongs: ongRepo, Logger: logger}
	pricingService := &pricing.DefaultService{Repo: pricingRepo}
	reviewService := &review.DefaultService{Reviews: reviewRepo, Jovens: jovemRepo}
	jovemService := &jovem.DefaultService{
		Jovens:   jovemRepo,
		Catalog:  serviceRepo,
		Accounts: userService,
		Logger:   logger,
	}
	ongService := &ong.DefaultService{Ongs: ongRepo, Jovens: jovemRepo}
	catalogService := &catalog.DefaultService{Catalog: serviceRepo}

	bookingService := &booking.DefaultService{
		Bookings:     bookingRepo,
		Jovens:       jovemRepo,
		Users:        userRepo,
		Catalog:      serviceRepo,
		Pricing:      pricingService,
		Reviews:      reviewService,
		Availability: evaluator,
		Matcher:      matcher,
		Notify:       dispatcher,
		Content:      contentStore,
		Logger:       logger,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Users:    userService,
		Bookings: bookingService,
		Jovens:   jovemService,
		Ongs:     ongService,
		Catalog:  catalogService,
		Reviews:  reviewService,
		Pricing:  pricingService,
		Content:  contentStore,
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
