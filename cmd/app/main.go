package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"washcubes/cmd"
	"washcubes/internal/adapters/out/postgres/lockerrepo"
	"washcubes/internal/adapters/out/postgres/orderrepo"
	"washcubes/internal/adapters/out/postgres/servicerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultReservationTTL = 30 * time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := getConfigs()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close outbound connections", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager(configs)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateServer().RegisterRoutes(e)

	go func() {
		if serveErr := e.Start("0.0.0.0:" + configs.HTTPPort); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("http server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file found, relying on environment", "error", err)
	}

	ttl := defaultReservationTTL
	if raw := os.Getenv("RESERVATION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("invalid RESERVATION_TTL: %w", err)
		}
		ttl = parsed
	}

	schedule := os.Getenv("RESERVATION_SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "0 */5 * * * *"
	}

	config := cmd.Config{
		HTTPPort:                 os.Getenv("HTTP_PORT"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   os.Getenv("DB_PORT"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                os.Getenv("DB_SSLMODE"),
		KafkaBrokers:             splitBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderEventTopic:     os.Getenv("KAFKA_ORDER_EVENT_TOPIC"),
		RiderJobServiceURL:       os.Getenv("RIDER_JOB_SERVICE_URL"),
		ReservationTTL:           ttl,
		ReservationSweepSchedule: schedule,
	}

	return config, nil
}

func splitBrokers(raw string) []string {
	if raw == "" {
		return nil
	}

	var brokers []string
	for _, broker := range strings.Split(raw, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return brokers
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&lockerrepo.SiteDTO{},
		&lockerrepo.CompartmentDTO{},
		&servicerepo.ServiceDTO{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return gormDB, nil
}
