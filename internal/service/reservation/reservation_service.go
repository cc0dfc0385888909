package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/kafka"
	"github.com/abalfour/flightbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReservationUseCase interface {
	Reserve(ctx context.Context, customerID, flightID int64) (*domain.Reservation, error)
}

type Cache interface {
	AcquireHold(ctx context.Context, flightID, customerID int64, ttl time.Duration) (bool, error)
	ReleaseHold(ctx context.Context, flightID, customerID int64) error
	InvalidateSearch(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	flights            repository.FlightRepository
	customers          repository.CustomerRepository
	cache              Cache
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	holdTTL            time.Duration
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	flights repository.FlightRepository,
	customers repository.CustomerRepository,
	cache Cache,
	producer Producer,
	reservationsTopic string,
	holdTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:      reservations,
		flights:           flights,
		customers:         customers,
		cache:             cache,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		holdTTL:           holdTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve books the flight for the customer. The conflict check and the
// capacity decrement run in one transaction in the repository; a redis
// hold keyed by (flight, customer) rejects a duplicate submit while the
// first attempt is in flight.
func (s *ReservationService) Reserve(ctx context.Context, customerID, flightID int64) (*domain.Reservation, error) {
	if customerID <= 0 {
		return nil, errors.New("customer id is required")
	}
	if flightID <= 0 {
		return nil, errors.New("flight id is required")
	}

	held := false
	if s.cache != nil {
		ok, err := s.cache.AcquireHold(ctx, flightID, customerID, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrReservationInProgress
		}
		held = true
	}
	defer func() {
		if held {
			_ = s.cache.ReleaseHold(ctx, flightID, customerID)
		}
	}()

	reservation := &domain.Reservation{
		CustomerID:         customerID,
		FlightID:           flightID,
		ConfirmationNumber: uuid.NewString(),
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSearch(ctx); err != nil {
			log.Warn().Err(err).Msg("invalidate search cache")
		}
	}
	if err := s.publish(ctx, "reservation_created", reservation); err != nil {
		log.Warn().Err(err).Str("confirmation", reservation.ConfirmationNumber).Msg("publish reservation event")
	}
	return reservation, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) error {
	if s.producer == nil || s.reservationsTopic == "" {
		return nil
	}

	event := kafka.ReservationEvent{
		Type:               eventType,
		ConfirmationNumber: reservation.ConfirmationNumber,
		CustomerID:         reservation.CustomerID,
		FlightID:           reservation.FlightID,
	}
	if flight, err := s.flights.GetByID(ctx, reservation.FlightID); err == nil {
		event.Airline = flight.Airline
		event.Destination = flight.Destination
		event.StartDate = flight.StartDate.Format("2006-01-02")
		event.EndDate = flight.EndDate.Format("2006-01-02")
	}
	if customer, err := s.customers.GetByID(ctx, reservation.CustomerID); err == nil {
		event.Email = customer.Email
	}

	if err := s.producer.Publish(ctx, s.reservationsTopic, reservation.ConfirmationNumber, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reservation.ConfirmationNumber, event)
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
