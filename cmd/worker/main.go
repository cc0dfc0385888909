package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abalfour/flightbooking/config"
	"github.com/abalfour/flightbooking/internal/cache"
	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/email"
	"github.com/abalfour/flightbooking/internal/kafka"
	"github.com/abalfour/flightbooking/internal/repository"
	"github.com/abalfour/flightbooking/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// The worker sends confirmation mail for reservation events and
// periodically re-warms the upcoming-flights cache.
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	flightRepo := repository.NewFlightRepository(pool)
	flightService := flights.NewFlightService(flightRepo, redisCache)

	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.ConsumeReservationEvents(ctx, emailSender.Send); err != nil {
			log.Warn().Err(err).Msg("consumer stopped")
		}
	}()

	warmTicker := time.NewTicker(cfg.Worker.WarmInterval())
	defer warmTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-warmTicker.C:
			if _, err := flightService.Search(ctx, domain.SearchFilter{}); err != nil {
				log.Warn().Err(err).Msg("warm flights cache")
				continue
			}
			log.Info().Msg("warmed flights cache")
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}
