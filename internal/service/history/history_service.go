package history

import (
	"context"
	"time"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/repository"
)

type HistoryUseCase interface {
	History(ctx context.Context, customerID int64) (*Flights, error)
}

// Flights splits a customer's reservations around today: a flight is
// past once its end date is behind the current date.
type Flights struct {
	Past    []domain.BookedFlight
	Current []domain.BookedFlight
}

type HistoryService struct {
	reservations repository.ReservationRepository
	now          func() time.Time
}

func NewHistoryService(reservations repository.ReservationRepository) *HistoryService {
	return &HistoryService{reservations: reservations, now: time.Now}
}

func (s *HistoryService) History(ctx context.Context, customerID int64) (*Flights, error) {
	booked, err := s.reservations.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	result := &Flights{
		Past:    make([]domain.BookedFlight, 0),
		Current: make([]domain.BookedFlight, 0),
	}
	for _, b := range booked {
		if b.EndDate.Before(today) {
			result.Past = append(result.Past, b)
		} else {
			result.Current = append(result.Current, b)
		}
	}
	return result, nil
}

var _ HistoryUseCase = (*HistoryService)(nil)
