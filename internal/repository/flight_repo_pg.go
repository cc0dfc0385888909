package repository

import (
	"context"
	"errors"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.price, f.airline, f.destination_id, f.return_id, f.start_date, f.end_date, f.capacity`

// searchQuery builds the listing query for the filter combination. The
// destination and start-date filters switch the date window the same
// way the search form does: an end date is only honored together with a
// start date and destination, and an unfiltered search lists upcoming
// flights only. Every branch keeps the capacity guard.
func searchQuery(filter domain.SearchFilter) (string, []any) {
	query := `SELECT ` + flightColumns + `, l.location FROM flights f JOIN locations l ON l.id = f.destination_id WHERE f.capacity > 0`
	var args []any

	switch {
	case filter.Destination != "" && filter.StartDate != "" && filter.EndDate != "":
		query += ` AND f.start_date >= $1::date AND f.end_date <= $2::date AND l.location = $3`
		args = append(args, filter.StartDate, filter.EndDate, filter.Destination)
	case filter.Destination != "" && filter.StartDate != "":
		query += ` AND f.start_date >= $1::date AND l.location = $2`
		args = append(args, filter.StartDate, filter.Destination)
	case filter.Destination != "":
		query += ` AND f.start_date >= CURRENT_DATE AND l.location = $1`
		args = append(args, filter.Destination)
	default:
		query += ` AND f.start_date >= CURRENT_DATE`
	}
	query += ` ORDER BY f.start_date, f.id`

	return query, args
}

// Search returns bookable flights joined with the destination name.
func (r *PGFlightRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.FlightListing, error) {
	query, args := searchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightListing, 0)
	for rows.Next() {
		var f domain.FlightListing
		if err := rows.Scan(&f.ID, &f.Price, &f.Airline, &f.DestinationID, &f.ReturnID, &f.StartDate, &f.EndDate, &f.Capacity, &f.Location); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+`, d.location, ret.location
		FROM flights f
		JOIN locations d ON d.id = f.destination_id
		JOIN locations ret ON ret.id = f.return_id
		WHERE f.id=$1`, id)
	var f domain.FlightDetail
	if err := row.Scan(&f.ID, &f.Price, &f.Airline, &f.DestinationID, &f.ReturnID, &f.StartDate, &f.EndDate, &f.Capacity, &f.Destination, &f.ReturnLocation); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
