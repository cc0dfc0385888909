package repository

import (
	"context"
	"errors"
	"time"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// dateConflictQuery matches both endpoints of every flight the
	// customer already booked against both endpoints of the requested
	// dates, so a flight ending on the day another one starts is a
	// conflict too.
	dateConflictQuery = `SELECT EXISTS (
			SELECT 1 FROM past_flights p
			JOIN flights f ON f.id = p.flight_id
			WHERE p.customer_id = $1
			AND (f.start_date IN ($2, $3) OR f.end_date IN ($2, $3))
		)`

	// takeSeatQuery only decrements while seats remain, so capacity
	// cannot go below zero even under concurrent bookings.
	takeSeatQuery = `UPDATE flights SET capacity = capacity - 1 WHERE id=$1 AND capacity > 0`
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookedFlight, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// Create books a flight for a customer in a single transaction. The
// flight row is locked FOR UPDATE so the conflict check, the seat
// decrement and the insert are serialized per flight: two reservations
// for the last seat cannot both commit, and capacity never goes below
// zero.
func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var startDate, endDate time.Time
	if err := tx.QueryRow(ctx, `SELECT start_date, end_date FROM flights WHERE id=$1 FOR UPDATE`, reservation.FlightID).
		Scan(&startDate, &endDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var conflict bool
	if err := tx.QueryRow(ctx, dateConflictQuery, reservation.CustomerID, startDate, endDate).Scan(&conflict); err != nil {
		return err
	}
	if conflict {
		return domain.ErrDateConflict
	}

	cmd, err := tx.Exec(ctx, takeSeatQuery, reservation.FlightID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoSeats
	}

	if err := tx.QueryRow(ctx, `INSERT INTO past_flights (customer_id, flight_id, confirmation_number)
		VALUES ($1, $2, $3)
		RETURNING id`, reservation.CustomerID, reservation.FlightID, reservation.ConfirmationNumber).
		Scan(&reservation.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGReservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.BookedFlight, error) {
	rows, err := r.db.Query(ctx, `SELECT f.price, f.airline, f.start_date, f.end_date, f.destination_id, f.return_id, p.confirmation_number, d.location, ret.location
		FROM past_flights p
		JOIN flights f ON f.id = p.flight_id
		JOIN locations d ON d.id = f.destination_id
		JOIN locations ret ON ret.id = f.return_id
		WHERE p.customer_id = $1
		ORDER BY f.start_date, p.id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make([]domain.BookedFlight, 0)
	for rows.Next() {
		var b domain.BookedFlight
		if err := rows.Scan(&b.Price, &b.Airline, &b.StartDate, &b.EndDate, &b.DestinationID, &b.ReturnID, &b.ConfirmationNumber, &b.Destination, &b.ReturnLocation); err != nil {
			return nil, err
		}
		booked = append(booked, b)
	}
	return booked, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
