package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByCredentials(ctx context.Context, username, password string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

// Create inserts a customer after checking the username and email are
// unused. An email collision is reported over a username collision when
// a row matches both. The unique constraints on the table back the
// check against concurrent inserts.
func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	rows, err := r.db.Query(ctx, `SELECT username, email FROM customers WHERE username=$1 OR email=$2`, customer.Username, customer.Email)
	if err != nil {
		return err
	}
	defer rows.Close()

	emailTaken := false
	usernameTaken := false
	for rows.Next() {
		var username, email string
		if err := rows.Scan(&username, &email); err != nil {
			return err
		}
		if email == customer.Email {
			emailTaken = true
		}
		if username == customer.Username {
			usernameTaken = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	if emailTaken {
		return domain.ErrEmailTaken
	}
	if usernameTaken {
		return domain.ErrUsernameTaken
	}

	if err := r.db.QueryRow(ctx, `INSERT INTO customers (first_name, last_name, email, username, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, customer.FirstName, customer.LastName, customer.Email, customer.Username, customer.Password).
		Scan(&customer.ID); err != nil {
		return uniqueViolationError(err)
	}
	return nil
}

// uniqueViolationError maps a unique-constraint violation raised by a
// concurrent insert onto the collision error the check above would have
// reported.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}

func (r *PGCustomerRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, username, password FROM customers WHERE username=$1 AND password=$2`, username, password)
	return scanCustomer(row)
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, username, password FROM customers WHERE id=$1`, id)
	return scanCustomer(row)
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Username, &c.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
