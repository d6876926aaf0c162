package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockDateHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/block_date"
	checkDateHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/check_date"
	createBookingHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/create_booking"
	createPackageHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/create_package"
	deletePackageHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/delete_package"
	getBookingHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/get_booking"
	getPackageHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/get_package"
	listBlockedDatesHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/list_blocked_dates"
	listBookingsHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/list_bookings"
	listPackagesHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/list_packages"
	recommendPackagesHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/recommend_packages"
	unblockDateHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/unblock_date"
	updateBookingStatusHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/update_booking_status"
	updatePackageHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/update_package"
	uploadPackageImageHandler "github.com/broomaam/BAAM-BookingService/internal/api/handlers/upload_package_image"
	"github.com/broomaam/BAAM-BookingService/internal/api/middleware"
	"github.com/broomaam/BAAM-BookingService/internal/config"
	"github.com/broomaam/BAAM-BookingService/internal/infra/media"
	"github.com/broomaam/BAAM-BookingService/internal/infra/ratelimit"
	availabilityRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/broomaam/BAAM-BookingService/internal/infra/storage/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/integrations/notify"
	availabilityService "github.com/broomaam/BAAM-BookingService/internal/service/availability"
	bookingsService "github.com/broomaam/BAAM-BookingService/internal/service/bookings"
	catalogService "github.com/broomaam/BAAM-BookingService/internal/service/catalog"
	recommendPackagesUC "github.com/broomaam/BAAM-BookingService/internal/usecase/recommend_packages"
	submitBookingUC "github.com/broomaam/BAAM-BookingService/internal/usecase/submit_booking"
	"github.com/broomaam/BAAM-BookingService/pkg/dbmetrics"
	"github.com/broomaam/BAAM-BookingService/pkg/logger"
	"github.com/broomaam/BAAM-BookingService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BAAM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories, instrumented when metrics are on
	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection enabled")
	}

	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	availabilityRepository := availabilityRepo.NewRepository(dbExecutor)
	catalogRepository := catalogRepo.NewRepository(dbExecutor)

	// Redis-backed submission-rate guard
	var rateGuard *ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		rateGuard = ratelimit.New(
			redisClient,
			cfg.RateLimit.MaxSubmissions,
			time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		)
		log.Info("Submission-rate guard enabled (%d per %dm, redis=%s)",
			cfg.RateLimit.MaxSubmissions, cfg.RateLimit.WindowMinutes, cfg.Redis.Addr)
	} else {
		log.Warn("Redis not configured, submission-rate guard disabled")
	}

	// RabbitMQ notification publisher
	var notifier *notify.Publisher
	if cfg.RabbitMQ.URL != "" {
		notifier, err = notify.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer notifier.Close()
		log.Info("Notification publisher connected (exchange=%s)", cfg.RabbitMQ.Exchange)
	} else {
		log.Warn("RabbitMQ not configured, notifications disabled")
	}

	// S3 media store for package images
	var mediaStore *media.Store
	if cfg.S3.Bucket != "" {
		mediaStore, err = media.New(context.Background(), cfg.S3.Region, cfg.S3.Bucket, cfg.S3.KeyPrefix, log)
		if err != nil {
			log.Fatal("Failed to initialize media store: %v", err)
		}
		log.Info("Media store initialized (bucket=%s, region=%s)", cfg.S3.Bucket, cfg.S3.Region)
	} else {
		log.Warn("S3 not configured, package image uploads disabled")
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, nilableNotifier(notifier), log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, nilableMediaStore(mediaStore), log)

	// Use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		availabilitySvc,
		nilableRateGuard(rateGuard),
		nilableNotifier(notifier),
		log,
	)
	recommendPackagesUseCase := recommendPackagesUC.NewUseCase(catalogRepository, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	checkDate := checkDateHandler.NewHandler(availabilitySvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(availabilitySvc, log)
	listPackages := listPackagesHandler.NewHandler(catalogSvc, log)
	getPackage := getPackageHandler.NewHandler(catalogSvc, log)
	recommendPackages := recommendPackagesHandler.NewHandler(recommendPackagesUseCase, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	blockDate := blockDateHandler.NewHandler(availabilitySvc, log)
	unblockDate := unblockDateHandler.NewHandler(availabilitySvc, log)
	createPackage := createPackageHandler.NewHandler(catalogSvc, log)
	updatePackage := updatePackageHandler.NewHandler(catalogSvc, log)
	deletePackage := deletePackageHandler.NewHandler(catalogSvc, log)
	uploadPackageImage := uploadPackageImageHandler.NewHandler(catalogSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	api.HandleFunc("/availability", listBlockedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{date}", checkDate.Handle).Methods(http.MethodGet)

	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/recommendations", recommendPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}", getPackage.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (JWT with admin role)
	// ============================================================

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.AdminRole)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(auth.Middleware)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/availability/{date}", blockDate.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/{date}", unblockDate.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/packages", createPackage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{packageId}", updatePackage.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/packages/{packageId}/image", uploadPackageImage.Handle).Methods(http.MethodPost)

	// HTTP server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// A typed nil pointer stored in an interface is not nil, so optional
// dependencies are converted here before injection.

func nilableNotifier(p *notify.Publisher) bookingsService.Notifier {
	if p == nil {
		return nil
	}
	return p
}

func nilableRateGuard(l *ratelimit.Limiter) submitBookingUC.RateGuard {
	if l == nil {
		return nil
	}
	return l
}

func nilableMediaStore(s *media.Store) catalogService.MediaStore {
	if s == nil {
		return nil
	}
	return s
}
