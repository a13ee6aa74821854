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

	"github.com/sbilibin2017/blueforce/internal/handlers"
	"github.com/sbilibin2017/blueforce/internal/jwt"
	"github.com/sbilibin2017/blueforce/internal/logger"
	"github.com/sbilibin2017/blueforce/internal/middlewares"
	"github.com/sbilibin2017/blueforce/internal/repositories"
	"github.com/sbilibin2017/blueforce/internal/services"
	"github.com/sbilibin2017/blueforce/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	driverMemory   = "memory"
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
	driverRedis    = "redis"
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	StorageDriver string
	SQLitePath    string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisKeyPrefix    string

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey      string
	JWTExpSecond      int
	AdminPasswordHash string
}

// @title BlueForce API
// @version 1.0.0
// @description User directory, session and dashboards of the BlueForce labour marketplace
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

// parseConfig loads environment variables from a file, if present, and
// returns the application configuration with defaults applied.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Storage config
	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", driverMemory))
	switch cfg.StorageDriver {
	case driverMemory, driverSQLite, driverPostgres, driverRedis:
	default:
		return cfg, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", cfg.StorageDriver)
	}
	cfg.SQLitePath = getEnv("SQLITE_PATH", "blueforce.db")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	cfg.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", "blueforce:")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "blueforce.events")

	// JWT and admin config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	return cfg, nil
}

// openStorage connects the configured backend and wraps it in FailSoft.
// A backend that cannot be reached at startup is replaced by memory.
func openStorage(ctx context.Context, cfg config) (storage.Storage, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case driverSQLite, driverPostgres:
		driver, dsn := "sqlite", cfg.SQLitePath
		if cfg.StorageDriver == driverPostgres {
			driver = "pgx"
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
				cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		}

		db, err := sqlx.Open(driver, dsn)
		if err != nil {
			return nil, noop, err
		}
		if cfg.StorageDriver == driverSQLite {
			db.SetMaxOpenConns(1)
		} else {
			db.SetMaxOpenConns(cfg.PGMaxOpenConns)
			db.SetMaxIdleConns(cfg.PGMaxIdleConns)
		}

		sqlStore := storage.NewSQLStorage(db)
		if err := sqlStore.EnsureSchema(ctx); err != nil {
			logger.Log.Warnw("database unavailable, using in-memory storage", "driver", cfg.StorageDriver, "error", err)
			db.Close()
			return storage.NewMemory(), noop, nil
		}
		logger.Log.Infow("storage connected", "driver", cfg.StorageDriver)
		return storage.NewFailSoft(sqlStore), func() { db.Close() }, nil

	case driverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("redis unavailable, using in-memory storage", "error", err)
			rdb.Close()
			return storage.NewMemory(), noop, nil
		}
		logger.Log.Infow("storage connected", "driver", cfg.StorageDriver)
		return storage.NewFailSoft(storage.NewRedisStorage(rdb, cfg.RedisKeyPrefix)), func() { rdb.Close() }, nil

	default:
		return storage.NewMemory(), noop, nil
	}
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config) services.KafkaWriter {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// app groups the services the router exposes.
type app struct {
	directory   *services.DirectoryService
	auth        *services.AuthService
	admin       *services.AdminService
	preferences *services.PreferenceService
	worker      *services.WorkerService
	employer    *services.EmployerService
	tokens      *jwt.JWT
}

// newApp wires repositories and services over store.
func newApp(store storage.Storage, events services.EventPublisher, cfg config) *app {
	users := repositories.NewUserRepository(store)
	session := repositories.NewSessionRepository(store)
	settings := repositories.NewSettingsRepository(store)
	hires := repositories.NewHireRepository(store)
	messages := repositories.NewMessageRepository(store)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	directory := services.NewDirectoryService(users, users, session, events)

	return &app{
		directory:   directory,
		auth:        services.NewAuthService(users, users, session, events),
		admin:       services.NewAdminService(settings, directory, tokens, cfg.AdminPasswordHash),
		preferences: services.NewPreferenceService(settings),
		worker:      services.NewWorkerService(settings),
		employer:    services.NewEmployerService(users, hires, messages, events),
		tokens:      tokens,
	}
}

// newRouter builds the HTTP router with every route registered.
func newRouter(a *app, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	handlers.RegisterUserHandlers(r,
		handlers.NewListUsersHandler(a.directory),
		handlers.NewRegisterUserHandler(a.directory),
		handlers.NewLookupUserHandler(a.directory),
		handlers.NewGetUserHandler(a.directory),
		handlers.NewUpdateUserHandler(a.directory),
	)
	handlers.RegisterSessionHandlers(r,
		handlers.NewLoginHandler(a.auth),
		handlers.NewCurrentSessionHandler(a.auth),
		handlers.NewLogoutHandler(a.auth),
	)
	handlers.RegisterLanguageHandlers(r,
		handlers.NewGetLanguageHandler(a.preferences),
		handlers.NewSetLanguageHandler(a.preferences),
	)
	handlers.RegisterWorkerHandlers(r,
		handlers.NewGetAvailabilityHandler(a.worker),
		handlers.NewToggleAvailabilityHandler(a.worker),
		handlers.NewGetSkillVideoHandler(a.worker),
		handlers.NewSetSkillVideoHandler(a.worker),
		handlers.NewRemoveSkillVideoHandler(a.worker),
	)
	handlers.RegisterEmployerHandlers(r,
		handlers.NewHireWorkersHandler(a.employer),
		handlers.NewHiredWorkersHandler(a.employer),
		handlers.NewSendMessageHandler(a.employer),
		handlers.NewMessagesHandler(a.employer),
	)
	handlers.RegisterAdminHandlers(r,
		middlewares.AdminAuthMiddleware(a.tokens, a.admin),
		handlers.NewAdminSignInHandler(a.admin),
		handlers.NewAdminSignOutHandler(a.admin),
		handlers.NewAdminUsersHandler(a.admin),
		handlers.NewAdminStatsHandler(a.admin),
		handlers.NewToggleStatusHandler(a.admin),
	)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, storage, Kafka publisher and HTTP server.
// It seeds the directory and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	var events services.EventPublisher
	if writer := newKafkaWriter(cfg); writer != nil {
		publisher := services.NewKafkaEventPublisher(writer)
		defer publisher.Close()
		events = publisher
		logger.Log.Infow("publishing events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	if cfg.AdminPasswordHash == "" {
		logger.Log.Warn("ADMIN_PASSWORD_HASH is empty, admin sign-in is disabled")
	}

	a := newApp(store, events, cfg)
	a.directory.Initialize(ctx)

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
