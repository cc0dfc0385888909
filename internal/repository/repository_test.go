package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewFlightRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFlightRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewCustomerRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCustomerRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewReservationRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewReservationRepository(pool)
	assert.NotNil(t, repo)
}
