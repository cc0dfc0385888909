package account

import (
	"context"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/repository"
)

type AccountUseCase interface {
	Create(ctx context.Context, input CreateInput) (*domain.Customer, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type CreateInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
}

type AccountService struct {
	customers repository.CustomerRepository
}

func NewAccountService(customers repository.CustomerRepository) *AccountService {
	return &AccountService{customers: customers}
}

func (s *AccountService) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	if input.FirstName == "" || input.LastName == "" || input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrMissingFields
	}

	customer := &domain.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Authenticate looks the customer up by the exact credential pair.
// Unknown username and wrong password are deliberately the same
// outcome.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.Customer, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	customer, err := s.customers.GetByCredentials(ctx, username, password)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return customer, nil
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

var _ AccountUseCase = (*AccountService)(nil)
