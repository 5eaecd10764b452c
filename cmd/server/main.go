package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	catalogapp "github.com/assettrack/backend/internal/application/catalog"
	identityapp "github.com/assettrack/backend/internal/application/identity"
	inventoryapp "github.com/assettrack/backend/internal/application/inventory"
	leaseapp "github.com/assettrack/backend/internal/application/lease"
	maintenanceapp "github.com/assettrack/backend/internal/application/maintenance"
	orgapp "github.com/assettrack/backend/internal/application/org"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/assettrack/backend/internal/infrastructure/cache"
	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/assettrack/backend/internal/infrastructure/event"
	"github.com/assettrack/backend/internal/infrastructure/logger"
	"github.com/assettrack/backend/internal/infrastructure/persistence"
	"github.com/assettrack/backend/internal/infrastructure/scheduler"
	"github.com/assettrack/backend/internal/infrastructure/storage"
	"github.com/assettrack/backend/internal/infrastructure/telemetry"
	"github.com/assettrack/backend/internal/interfaces/http/handler"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/assettrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromAppConfig(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting AssetTrack Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel, cfg.Telemetry.DBSlowQueryThresh)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		}, log)
		if err := dbTracing.Register(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Redis client (token blacklist, cache backend)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	auditRepo := persistence.NewGormAuditRecordRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	subCategoryRepo := persistence.NewGormSubCategoryRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	siteRepo := persistence.NewGormSiteRepository(db.DB)
	companyRepo := persistence.NewGormCompanyInfoRepository(db.DB)
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)
	maintenanceRepo := persistence.NewGormMaintenanceRepository(db.DB)
	maintenanceTxScope := persistence.NewGormTransactionScope(db.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	inventoryTxRepo := persistence.NewGormInventoryTransactionRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Object storage for asset documents
	var objectStorage assetapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage initialized",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
		)
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("No storage bucket configured, using in-process stub storage")
	}

	// Document listing cache
	listingCache, err := cache.NewDocumentListingCache(cfg.Cache, redisClient, log)
	if err != nil {
		log.Fatal("Failed to initialize document listing cache", zap.Error(err))
	}

	// Token issuing and revocation
	jwtService := auth.NewJWTService(cfg.JWT)
	var tokenBlacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Initialize application services
	assetService := assetapp.NewAssetService(assetRepo, categoryRepo, subCategoryRepo, departmentRepo, siteRepo, leaseRepo)
	auditService := assetapp.NewAuditService(auditRepo, assetRepo)
	documentService := assetapp.NewDocumentService(documentRepo, assetRepo, objectStorage, listingCache)
	docConfig := assetapp.DefaultDocumentServiceConfig()
	docConfig.UploadURLExpiry = cfg.Storage.UploadURLExpiry
	docConfig.DownloadURLExpiry = cfg.Storage.DownloadURLExpiry
	documentService.SetConfig(docConfig)
	categoryService := catalogapp.NewCategoryService(categoryRepo, subCategoryRepo, assetRepo)
	subCategoryService := catalogapp.NewSubCategoryService(categoryRepo, subCategoryRepo, assetRepo)
	departmentService := orgapp.NewDepartmentService(departmentRepo, assetRepo)
	siteService := orgapp.NewSiteService(siteRepo, assetRepo)
	companyService := orgapp.NewCompanyService(companyRepo)
	leaseService := leaseapp.NewService(leaseRepo, assetRepo, log)
	maintenanceService := maintenanceapp.NewService(maintenanceRepo, assetRepo, itemRepo, maintenanceTxScope, log)
	inventoryService := inventoryapp.NewService(itemRepo, inventoryTxRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist)
	userService := identityapp.NewUserService(userRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	lowStockHandler := inventoryapp.NewLowStockAlertHandler(log)
	eventBus.Subscribe(lowStockHandler)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	assetService.SetEventPublisher(eventBus)
	documentService.SetEventPublisher(eventBus)
	leaseService.SetEventPublisher(eventBus)
	maintenanceService.SetEventPublisher(eventBus)
	inventoryService.SetEventPublisher(eventBus)
	authService.SetEventPublisher(eventBus)
	userService.SetEventPublisher(eventBus)

	// Background housekeeping scheduler (if enabled)
	if cfg.Scheduler.Enabled {
		executor := scheduler.NewHousekeepingExecutor(
			leaseService,
			maintenanceService,
			documentService,
			cfg.Scheduler.StaleUploadMaxAge,
			log,
		)
		housekeeping := scheduler.NewScheduler(scheduler.Config{
			MaxConcurrentJobs: cfg.Scheduler.MaxConcurrentJobs,
			JobTimeout:        cfg.Scheduler.JobTimeout,
			RetryAttempts:     cfg.Scheduler.RetryAttempts,
			RetryDelay:        cfg.Scheduler.RetryDelay,
		}, executor, log)
		if err := housekeeping.Start(context.Background()); err != nil {
			log.Fatal("Failed to start scheduler", zap.Error(err))
		}
		defer func() {
			if err := housekeeping.Stop(context.Background()); err != nil {
				log.Error("Error stopping scheduler", zap.Error(err))
			}
		}()

		trigger := scheduler.NewDailyTrigger(housekeeping, cfg.Scheduler.DailyRunHour, log)
		if err := trigger.Start(context.Background()); err != nil {
			log.Fatal("Failed to start daily trigger", zap.Error(err))
		}
		defer trigger.Stop()

		log.Info("Housekeeping scheduler started",
			zap.Int("daily_run_hour", cfg.Scheduler.DailyRunHour),
			zap.Int("max_concurrent_jobs", cfg.Scheduler.MaxConcurrentJobs),
		)
	}

	// Initialize HTTP handlers
	assetHandler := handler.NewAssetHandler(assetService)
	auditHandler := handler.NewAuditHandler(auditService)
	documentHandler := handler.NewDocumentHandler(documentService)
	categoryHandler := handler.NewCategoryHandler(categoryService, subCategoryService)
	orgHandler := handler.NewOrgHandler(departmentService, siteService, companyService)
	leaseHandler := handler.NewLeaseHandler(leaseService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	cronHandler := handler.NewCronHandler(leaseService, maintenanceService, documentService, cfg.Scheduler.StaleUploadMaxAge)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body size limit, then rate limiting.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Tighter limit on credential endpoints
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authHandler.SetRateLimiter(middleware.RateLimit(authLimiter))
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Assemble API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.UseAuth(middleware.JWTAuthWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		Logger:         log,
	}))
	r.UseCronAuth(middleware.CronAuth(cfg.Cron.Secret))

	r.RegisterPublic(systemHandler)
	r.RegisterPublic(router.RegistrarFunc(authHandler.RegisterPublicRoutes))

	r.Register(router.RegistrarFunc(authHandler.RegisterProtectedRoutes))
	r.Register(assetHandler)
	r.Register(auditHandler)
	r.Register(documentHandler)
	r.Register(categoryHandler)
	r.Register(orgHandler)
	r.Register(leaseHandler)
	r.Register(maintenanceHandler)
	r.Register(inventoryHandler)
	r.Register(userHandler)

	r.RegisterCron(cronHandler)

	r.Setup()

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
