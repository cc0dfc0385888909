package repository

import (
	"errors"
	"testing"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// A duplicate slipping past the pre-insert check surfaces as the
// constraint violation from the table, which must map to the same
// collision errors the check reports.
func TestUniqueViolationError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "Email constraint maps to email collision",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name:    "Username constraint maps to username collision",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "customers_username_key"},
			wantErr: domain.ErrUsernameTaken,
		},
		{
			name: "Other database errors pass through",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "past_flights_customer_id_fkey"},
		},
		{
			name: "Non-database errors pass through",
			err:  errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := uniqueViolationError(tc.err)

			if tc.wantErr != nil {
				assert.ErrorIs(t, got, tc.wantErr)
			} else {
				assert.Equal(t, tc.err, got)
			}
		})
	}
}
