package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abalfour/flightbooking/config"
	"github.com/abalfour/flightbooking/internal/bootstrap"
	"github.com/abalfour/flightbooking/internal/cache"
	"github.com/abalfour/flightbooking/internal/kafka"
	"github.com/abalfour/flightbooking/internal/repository"
	"github.com/abalfour/flightbooking/internal/service/account"
	"github.com/abalfour/flightbooking/internal/service/flights"
	"github.com/abalfour/flightbooking/internal/service/history"
	"github.com/abalfour/flightbooking/internal/service/reservation"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	accountService := account.NewAccountService(customerRepo)
	historyService := history.NewHistoryService(reservationRepo)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		flightRepo,
		customerRepo,
		redisCache,
		producer,
		cfg.Kafka.ReservationsTopic,
		time.Duration(cfg.Reservation.HoldTTLSeconds)*time.Second,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, accountService, reservationService, historyService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runMigrations(cfg config.DatabaseConfig) error {
	dir := cfg.MigrationsDir
	if dir == "" {
		dir = "migrations"
	}

	m, err := migrate.New("file://"+dir, cfg.MigrateURL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
