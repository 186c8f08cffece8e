package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/actrac/actrac-server/internal/facades"
	"github.com/actrac/actrac-server/internal/handlers"
	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/migrations"
	"github.com/actrac/actrac-server/internal/repositories"
	"github.com/actrac/actrac-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Actrac API
// @version 1.0.0
// @description Personal activity points tracker: users log activities and track progress against a 100-point goal
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey UserID
// @in header
// @name user-id
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, corsOrigins,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, corsOrigins,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond, logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, corsOrigins string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int, logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	corsOrigins = getEnv("APP_CORS_ORIGINS", "http://localhost:3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "actrac")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Aggregate cache TTL
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and HTTP server. It sets
// up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, corsOrigins string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int, logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply additive schema bootstrap
	if err := migrations.Up(ctx, db); err != nil {
		logger.Log.Fatal("schema bootstrap failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	activityReadRepo := repositories.NewActivityReadRepository(db)
	activityWriteRepo := repositories.NewActivityWriteRepository(db)

	// Aggregate cache in front of the stats queries
	statsFacade := facades.NewStatsCacheFacade(
		activityReadRepo,
		facades.NewRedisCache(rdb),
		time.Duration(cacheTTLSecond)*time.Second,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	activityService := services.NewActivityService(activityReadRepo, activityWriteRepo, statsFacade)
	statsService := services.NewStatsService(statsFacade)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createActivityHandler := handlers.NewCreateActivityHandler(activityService)
	listActivitiesHandler := handlers.NewListActivitiesHandler(activityService)
	updateActivityHandler := handlers.NewUpdateActivityHandler(activityService)
	deleteActivityHandler := handlers.NewDeleteActivityHandler(activityService)
	totalHandler := handlers.NewTotalHandler(statsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "user-id"},
		AllowCredentials: true,
	}))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Endpoint not found"}`)
	})

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/health", healthHandler)

	// Protected routes behind the identity header
	r.Group(func(r chi.Router) {
		r.Use(middlewares.IdentityMiddleware(userReadRepo))
		r.Get("/activities", listActivitiesHandler)
		r.Post("/activities", createActivityHandler)
		r.Put("/activities/{id}", updateActivityHandler)
		r.Delete("/activities/{id}", deleteActivityHandler)
		r.Get("/total", totalHandler)
		r.Get("/stats", statsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
