package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/parlorgames/party-rounds/internal/jobqueue"
	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/repositories"
	"github.com/parlorgames/party-rounds/internal/services"
	"github.com/parlorgames/party-rounds/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, promptCacheTTL,
		kafkaBrokers, jobsTopic, deadLetterTopic, consumerGroup, numWorkers,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, promptCacheTTL,
		kafkaBrokers, jobsTopic, deadLetterTopic, consumerGroup, numWorkers,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting worker version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// worker, database, Redis, Kafka, and logging configuration.
func parseConfig(path string) (
	logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, promptCacheTTL time.Duration,
	kafkaBrokers []string, jobsTopic, deadLetterTopic, consumerGroup string, numWorkers int,
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
	deadLetterTopic = getEnv("KAFKA_DEAD_LETTER_TOPIC", "party-rounds.jobs.dead")
	consumerGroup = getEnv("KAFKA_CONSUMER_GROUP", "party-rounds-worker")
	if numWorkers, err = strconv.Atoi(getEnv("WORKER_COUNT", "4")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and Kafka consumers, then
// starts the job dispatchers and handles graceful shutdown.
func run(ctx context.Context,
	logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, promptCacheTTL time.Duration,
	kafkaBrokers []string, jobsTopic, deadLetterTopic, consumerGroup string, numWorkers int,
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

	// Kafka producers shared by all dispatchers: requeue back onto the
	// jobs topic, terminal failures onto the dead letter topic.
	requeueWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    jobsTopic,
		Balancer: &kafka.Hash{},
	}
	defer requeueWriter.Close()
	deadLetterWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    deadLetterTopic,
		Balancer: &kafka.Hash{},
	}
	defer deadLetterWriter.Close()

	// Repositories run inside the advisory-lock transaction opened per job.
	roundReadRepo := repositories.NewRoundReadRepository(db, repositories.TxFromContext)
	roundWriteRepo := repositories.NewRoundWriteRepository(db, repositories.TxFromContext)
	membershipRepo := repositories.NewGameMembershipReadRepository(db, repositories.TxFromContext)
	entryWriteRepo := repositories.NewEntryWriteRepository(db, repositories.TxFromContext)
	voteReadRepo := repositories.NewVoteReadRepository(db, repositories.TxFromContext)
	gameWriteRepo := repositories.NewGameWriteRepository(db, repositories.TxFromContext)
	promptReadRepo := repositories.NewPromptReadRepository(db, repositories.TxFromContext)
	promptWriteRepo := repositories.NewPromptWriteRepository(db, repositories.TxFromContext)
	promptCacheRepo := repositories.NewPromptCacheRepository(rdb, promptCacheTTL)
	lockRepo := repositories.NewRoundLockRepository(db)

	// Job producer used by the lifecycle service to chain follow-up jobs.
	jobWriter := jobqueue.NewJobWriter(requeueWriter)

	promptService := services.NewPromptService(promptReadRepo, promptWriteRepo, promptCacheRepo)
	lifecycleService := services.NewRoundLifecycleService(
		lockRepo,
		roundReadRepo, roundWriteRepo,
		membershipRepo, entryWriteRepo,
		voteReadRepo,
		promptService,
		jobWriter,
	)
	gameService := services.NewGameService(roundReadRepo, gameWriteRepo)

	// One consumer per dispatcher goroutine. Each reader joins the same
	// consumer group, so partitions are split across them.
	var wg sync.WaitGroup
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	for i := 0; i < numWorkers; i++ {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers: kafkaBrokers,
			Topic:   jobsTopic,
			GroupID: consumerGroup,
		})
		consumer := jobqueue.NewConsumer(reader, requeueWriter, deadLetterWriter)
		dispatcher := workers.NewDispatcher(consumer, lifecycleService, gameService)

		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer consumer.Close()
			logger.Log.Infof("Dispatcher %d started", id)
			dispatcher.Run(ctxShutdown)
			logger.Log.Infof("Dispatcher %d stopped", id)
		}(i)
	}

	<-ctxShutdown.Done()
	logger.Log.Info("Shutdown signal received, waiting for dispatchers...")
	wg.Wait()

	logger.Log.Info("Worker stopped gracefully")
	return nil
}
