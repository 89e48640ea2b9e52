package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/joaovitorrom/API-Sistema-Pets/docs"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/config"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/facades"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/handlers"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/jwt"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/metrics"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/middlewares"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/migrations"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/repositories"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/tracing"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Pet adoption API
// @version 1.0.0
// @description Marketplace where users list pets for adoption, schedule visits and conclude adoptions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// run initializes the logger, tracing, database, Redis, Kafka writer and HTTP server.
// It blocks until ctx is cancelled or a termination signal arrives, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing init: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			logger.Log.Errorw("tracer provider shutdown error", "error", err)
		}
	}()

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var events facades.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := facades.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer w.Close()
		events = w
		logger.Log.Infow("Publishing pet events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration()),
	)

	router := newRouter(db, rdb, tokens, events, cfg.Redis.CacheTTL())

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           otelhttp.NewHandler(router, cfg.Tracing.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the chi router.
func newRouter(db *sqlx.DB, rdb *redis.Client, tokens *jwt.JWT, events facades.KafkaWriter, cacheTTL time.Duration) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	petReadRepo := repositories.NewPetReadRepository(db)
	petWriteRepo := repositories.NewPetWriteRepository(db, middlewares.GetTxFromContext)
	petCacheRepo := repositories.NewPetCacheRepository(rdb, cacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo, petWriteRepo, petCacheRepo)
	petService := services.NewPetService(petReadRepo, petWriteRepo, petCacheRepo, facades.NewPetEventsKafkaFacade(events))

	authMiddleware := middlewares.AuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.HTTPMetricsMiddleware)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.With(middlewares.OptionalAuthMiddleware(tokens)).Get("/check", handlers.NewCheckUserHandler(userService))
		r.Get("/{id}", handlers.NewGetUserHandler(userService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Patch("/{id}", handlers.NewEditUserHandler(userService))
			r.With(middlewares.TxMiddleware(db)).Delete("/{id}", handlers.NewDeleteUserHandler(userService))
		})
	})

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", handlers.NewListPetsHandler(petService))
		r.Get("/{id}", handlers.NewGetPetHandler(petService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/create", handlers.NewCreatePetHandler(petService))
			r.Get("/mypets", handlers.NewMyPetsHandler(petService))
			r.Get("/myadoptions", handlers.NewMyAdoptionsHandler(petService))
			r.Patch("/{id}", handlers.NewUpdatePetHandler(petService))
			r.Delete("/{id}", handlers.NewRemovePetHandler(petService))
			r.Patch("/schedule/{id}", handlers.NewScheduleVisitHandler(petService))
			r.Patch("/conclude/{id}", handlers.NewConcludeAdoptionHandler(petService))
		})
	})

	r.Get("/health", handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
