package main

import (
	"context"
	"errors"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/hyunjk/bookreview/internal/handlers"
	"github.com/hyunjk/bookreview/internal/jwt"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/middlewares"
	"github.com/hyunjk/bookreview/internal/ratelimit"
	"github.com/hyunjk/bookreview/internal/repositories"
	"github.com/hyunjk/bookreview/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bookreview API
// @version 1.0.0
// @description Personal book-review service: cookie-session auth, admin-managed catalog, visitor comments
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, cookieName,
		loginRateLimit, loginRateWindow, trustProxy,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, cookieName,
		loginRateLimit, loginRateWindow, trustProxy,
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
// application, database, Redis, Kafka, and auth configuration. A missing
// signing secret is a fatal misconfiguration, never silently defaulted.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecret, cookieName string,
	loginRateLimit int, loginRateWindow time.Duration, trustProxy bool,
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
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "bookreview")
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

	// Kafka config; empty address disables audit publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "bookreview-audit")

	// Auth config
	jwtSecret = os.Getenv("AUTH_JWT_SECRET")
	if jwtSecret == "" {
		err = errors.New("AUTH_JWT_SECRET is required")
		return
	}
	cookieName = getEnv("AUTH_COOKIE_NAME", jwt.DefaultCookieName)

	// Login rate limit config
	if loginRateLimit, err = strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "10")); err != nil {
		return
	}
	var windowSecond int
	if windowSecond, err = strconv.Atoi(getEnv("LOGIN_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}
	loginRateWindow = time.Duration(windowSecond) * time.Second
	if trustProxy, err = strconv.ParseBool(getEnv("LOGIN_RATE_TRUST_PROXY", "false")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecret, cookieName string,
	loginRateLimit int, loginRateWindow time.Duration, trustProxy bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for audit events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaAddr),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Audit events will be published to %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		log.Info("Kafka address not configured, audit publishing disabled")
	}

	// Initialize token service
	tokens := jwt.New(jwtSecret, cookieName)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, kafkaWriter)
	userService := services.NewUserService(userReadRepo, userWriteRepo, kafkaWriter)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, commentReadRepo, commentWriteRepo, kafkaWriter)

	// Login rate limiter
	limiter := ratelimit.NewRedisLimiter(rdb, loginRateLimit, loginRateWindow)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.With(middlewares.RateLimitMiddleware(limiter, trustProxy)).
		Post("/login", handlers.NewLoginHandler(authService, tokens))
	r.Post("/logout", handlers.NewLogoutHandler(tokens))
	r.Get("/me", handlers.NewMeHandler(tokens))
	r.Get("/books", handlers.NewBookListHandler(bookService))
	r.Get("/books/{id}", handlers.NewBookGetHandler(bookService))
	r.Get("/books/{id}/comments", handlers.NewCommentListHandler(bookService))
	r.Post("/books/{id}/comments", handlers.NewCommentCreateHandler(bookService))

	// Admin routes behind the gate; mutations run in a per-request
	// transaction so a failed request leaves no partial side effects.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Use(middlewares.AdminOnly())
		r.Use(middlewares.TxMiddleware(db))
		r.Get("/admin/users", handlers.NewAdminUsersListHandler(userService))
		r.Put("/admin/users", handlers.NewAdminUsersUpdateHandler(userService))
		r.Post("/books", handlers.NewBookCreateHandler(bookService))
		r.Put("/books/{id}", handlers.NewBookUpdateHandler(bookService))
		r.Delete("/books/{id}", handlers.NewBookDeleteHandler(bookService))
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
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
