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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/date-tracker/internal/handlers"
	"github.com/sbilibin2017/date-tracker/internal/jwt"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/middlewares"
	"github.com/sbilibin2017/date-tracker/internal/repositories"
	"github.com/sbilibin2017/date-tracker/internal/services"
	"github.com/sbilibin2017/date-tracker/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/date-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title date-tracker API
// @version 1.0.0
// @description Shared journal of dates: activities, places, ratings, notes and photos
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds everything read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	DatabaseURL    string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// RedisHost empty disables session revocation.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// KafkaBrokers empty disables date events.
	KafkaBrokers []string
	KafkaTopic   string

	SessionSecret       string
	SessionExp          time.Duration
	SessionCookieSecure bool

	ImageDir       string
	MaxUploadBytes int64
	ThumbnailTTL   time.Duration
}

// dsn returns DATABASE_URL when set, otherwise a URL built from the POSTGRES_* values.
func (c *config) dsn() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, session and image configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{
		// Application config
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		LogFormat: getEnv("APP_LOG_FORMAT", "json"),

		// PostgreSQL config
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         atoi("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: atoi("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: atoi("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         atoi("REDIS_PORT", "6379"),
		RedisDB:           atoi("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     atoi("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: atoi("REDIS_MIN_IDLE_CONNS", "2"),

		// Kafka config
		KafkaTopic: getEnv("KAFKA_TOPIC", "date-events"),

		// Session config
		SessionSecret: getEnv("SESSION_SECRET", "my_super_secret_key"),
		SessionExp:    time.Duration(atoi("SESSION_EXP_SECOND", "86400")) * time.Second,

		// Images config
		ImageDir:       getEnv("IMAGE_DIR", "static/images"),
		MaxUploadBytes: int64(atoi("MAX_UPLOAD_BYTES", strconv.FormatInt(services.DefaultMaxUploadBytes, 10))),
		ThumbnailTTL:   time.Duration(atoi("THUMBNAIL_TTL_SECOND", "3600")) * time.Second,
	}
	if err != nil {
		return nil, err
	}

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	if cfg.SessionCookieSecure, err = strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("SESSION_COOKIE_SECURE: %w", err)
	}

	return cfg, nil
}

// app bundles what the router needs.
type app struct {
	db       *sqlx.DB
	auth     *services.AuthService
	sessions *services.SessionService
	dates    *services.DateService
	photos   *services.PhotoService
}

// newRouter wires handlers and middleware onto a chi router.
func newRouter(a *app, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/health", handlers.NewHealthHandler(a.db))
	r.Get("/static/images/thumbs/{filename}", handlers.NewThumbnailHandler(a.photos, a.photos))
	r.Get("/static/images/{filename}", handlers.NewImageHandler(a.photos))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(a.auth, a.sessions))
		r.Post("/login", handlers.NewLoginHandler(a.auth, a.sessions))
		r.Post("/logout", handlers.NewLogoutHandler(a.sessions))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(a.sessions))

			r.Get("/user", handlers.NewUserHandler(a.auth))
			r.Put("/user/profile", handlers.NewProfileHandler(a.auth, a.sessions))

			r.Get("/dates", handlers.NewListDatesHandler(a.dates))
			r.Post("/dates", handlers.NewCreateDateHandler(a.dates))
			r.Get("/dates/count", handlers.NewCountDatesHandler(a.dates))
			r.Get("/dates/{id}", handlers.NewGetDateHandler(a.dates))
			r.Put("/dates/{id}", handlers.NewUpdateDateHandler(a.dates))
			r.With(middlewares.TxMiddleware(a.db)).Delete("/dates/{id}", handlers.NewDeleteDateHandler(a.dates))
			r.Post("/dates/{id}/photos", handlers.NewUploadPhotoHandler(a.photos))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.InitializeWithEncoding(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	var revoker services.SessionRevoker
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		revoker = repositories.NewSessionRevocationRepository(rdb)
	} else {
		logger.Log.Warn("REDIS_HOST not set, logout will not revoke session tokens")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Image directory
	images, err := storage.NewImageStore(cfg.ImageDir, storage.WithThumbnailTTL(cfg.ThumbnailTTL))
	if err != nil {
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SessionSecret),
		jwt.WithExpiration(cfg.SessionExp),
		jwt.WithSecureCookie(cfg.SessionCookieSecure),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	dateReadRepo := repositories.NewDateReadRepository(db)
	dateWriteRepo := repositories.NewDateWriteRepository(db, middlewares.GetTxFromContext)
	photoReadRepo := repositories.NewPhotoReadRepository(db)
	photoWriteRepo := repositories.NewPhotoWriteRepository(db)

	// Initialize services
	a := &app{
		db:       db,
		auth:     services.NewAuthService(userReadRepo, userWriteRepo),
		sessions: services.NewSessionService(tokens, revoker),
		dates:    services.NewDateService(dateReadRepo, dateWriteRepo, photoReadRepo, kafkaWriter, middlewares.AfterCommit),
		photos:   services.NewPhotoService(dateReadRepo, photoWriteRepo, images, cfg.MaxUploadBytes),
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(a, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
