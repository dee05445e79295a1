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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/parlorgames/party-rounds/internal/handlers"
	"github.com/parlorgames/party-rounds/internal/jobqueue"
	"github.com/parlorgames/party-rounds/internal/jwt"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/middlewares"
	"github.com/parlorgames/party-rounds/internal/repositories"
	"github.com/parlorgames/party-rounds/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title party-rounds API
// @version 1.0.0
// @description Inbound-request service for the party-rounds game: collects round entries and votes, reads round state, and enqueues state-advancing jobs
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, promptCacheTTL,
		kafkaBrokers, jobsTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, promptCacheTTL,
		kafkaBrokers, jobsTopic,
		jwtSecret, jwtExp,
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
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, promptCacheTTL time.Duration,
	kafkaBrokers []string, jobsTopic string,
	jwtSecretKey string, jwtExpSecond int,
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
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "partyrounds"),
	)
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisAddr = fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379"))
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	ttlSecond := 0
	if ttlSecond, err = strconv.Atoi(getEnv("PROMPT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	promptCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	jobsTopic = getEnv("KAFKA_JOBS_TOPIC", "party-rounds.jobs")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and Kafka producer, sets up
// routes with middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, promptCacheTTL time.Duration,
	kafkaBrokers []string, jobsTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL: %s", pgDSN)
	db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for state-advancing jobs. Hash balancing keeps all
	// jobs for one round on one partition.
	jobWriter := jobqueue.NewJobWriter(&kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    jobsTopic,
		Balancer: &kafka.Hash{},
	})
	defer jobWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	roundReadRepo := repositories.NewRoundReadRepository(db, middlewares.GetTxFromContext)
	membershipRepo := repositories.NewGameMembershipReadRepository(db, middlewares.GetTxFromContext)
	entryReadRepo := repositories.NewEntryReadRepository(db, middlewares.GetTxFromContext)
	entryWriteRepo := repositories.NewEntryWriteRepository(db, middlewares.GetTxFromContext)
	voteReadRepo := repositories.NewVoteReadRepository(db, middlewares.GetTxFromContext)
	voteWriteRepo := repositories.NewVoteWriteRepository(db, middlewares.GetTxFromContext)
	promptReadRepo := repositories.NewPromptReadRepository(db, middlewares.GetTxFromContext)
	promptWriteRepo := repositories.NewPromptWriteRepository(db, middlewares.GetTxFromContext)
	promptCacheRepo := repositories.NewPromptCacheRepository(rdb, promptCacheTTL)

	// Initialize services
	collectorService := services.NewCollectorService(
		roundReadRepo, membershipRepo,
		entryWriteRepo, entryReadRepo,
		voteWriteRepo, voteReadRepo,
		jobWriter,
	)
	promptService := services.NewPromptService(promptReadRepo, promptWriteRepo, promptCacheRepo)

	// Initialize handlers
	submitEntryHandler := handlers.NewSubmitEntryHandler(collectorService, tokener)
	submitVoteHandler := handlers.NewSubmitVoteHandler(collectorService, tokener)
	roundStateHandler := handlers.NewRoundStateHandler(collectorService, tokener)
	promptApprovalHandler := handlers.NewPromptApprovalHandler(promptService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokener)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/rounds/{roundID}", roundStateHandler)

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/rounds/{roundID}/entries", submitEntryHandler)
				r.Post("/rounds/{roundID}/votes", submitVoteHandler)
				r.Post("/prompts/{promptID}/approval", promptApprovalHandler)
			})
		})
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
