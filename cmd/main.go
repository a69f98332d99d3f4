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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/sbilibin2017/account-pages/internal/handlers"
	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/middlewares"
	"github.com/sbilibin2017/account-pages/internal/repositories"
	"github.com/sbilibin2017/account-pages/internal/services"
	"github.com/sbilibin2017/account-pages/internal/sessions"
	"github.com/sbilibin2017/account-pages/internal/views"
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

	appHost, appPort, logLevel,
		mongoURL, mongoDB,
		sessionStore, sessionTTLSecond, sessionSweepSecond,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		bcryptCost, unifiedLoginErrors,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURL, mongoDB,
		sessionStore, sessionTTLSecond, sessionSweepSecond,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		bcryptCost, unifiedLoginErrors,
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
// application, MongoDB, session, Redis, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURL, mongoDB string,
	sessionStore string, sessionTTLSecond, sessionSweepSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	bcryptCost int, unifiedLoginErrors bool,
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
	appPort = getEnv("APP_PORT", "3001")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if bcryptCost, err = strconv.Atoi(getEnv("APP_BCRYPT_COST", "10")); err != nil {
		return
	}
	if unifiedLoginErrors, err = strconv.ParseBool(getEnv("APP_UNIFIED_LOGIN_ERRORS", "false")); err != nil {
		return
	}

	// MongoDB config
	mongoURL = getEnv("MONGODB_URL", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGODB_DB", "accounts")

	// Session config
	sessionStore = getEnv("SESSION_STORE", "memory")
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}
	if sessionSweepSecond, err = strconv.Atoi(getEnv("SESSION_SWEEP_SECOND", "60")); err != nil {
		return
	}

	// Redis config (used when SESSION_STORE=redis)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config (event publishing disabled when KAFKA_ADDR is empty)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "account-events")

	return
}

// run initializes the logger, MongoDB, the session store, and the HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURL, mongoDB string,
	sessionStore string, sessionTTLSecond, sessionSweepSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	bcryptCost int, unifiedLoginErrors bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURL)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer client.Disconnect(context.Background())

	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	users := client.Database(mongoDB).Collection("users")

	// Initialize session store
	var store sessions.Store
	switch sessionStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		store = sessions.NewRedisStore(rdb)
	default:
		ms := sessions.NewMemoryStore(time.Duration(sessionSweepSecond) * time.Second)
		defer ms.Close()
		store = ms
	}
	sessionManager := sessions.NewManager(store, time.Duration(sessionTTLSecond)*time.Second)

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka event publishing enabled: %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(users)
	userWriteRepo := repositories.NewUserWriteRepository(users)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, kafkaWriter, bcryptCost)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, kafkaWriter, bcryptCost)

	// Initialize views
	pages, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.SessionMiddleware(sessionManager))

	r.Get("/", handlers.NewIndexHandler())
	r.Get("/login", handlers.NewLoginPageHandler(pages))
	r.Post("/login", handlers.NewLoginHandler(authService, sessionManager, pages, unifiedLoginErrors))
	r.Get("/signup", handlers.NewSignupPageHandler(pages))
	r.Post("/signup", handlers.NewSignupHandler(authService, sessionManager, pages))
	r.Get("/home", handlers.NewHomeHandler(pages))
	r.Get("/logout", handlers.NewLogoutHandler(sessionManager))
	r.Get("/edit", handlers.NewEditPageHandler(pages))
	r.Post("/edit", handlers.NewEditHandler(profileService, sessionManager))
	r.Get("/delete", handlers.NewDeleteHandler(profileService, sessionManager))

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
