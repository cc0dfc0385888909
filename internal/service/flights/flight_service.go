package flights

import (
	"context"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
}

type Cache interface {
	GetSearch(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error)
	SetSearch(ctx context.Context, filter domain.SearchFilter, flights []domain.FlightListing) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, filter); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, filter, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
