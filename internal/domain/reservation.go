package domain

import "time"

type Reservation struct {
	ID                 int64
	CustomerID         int64
	FlightID           int64
	ConfirmationNumber string
}

// BookedFlight is a reservation joined with its flight and the
// resolved location names, as returned by the history listing.
type BookedFlight struct {
	Price              int64
	Airline            string
	StartDate          time.Time
	EndDate            time.Time
	DestinationID      int64
	ReturnID           int64
	ConfirmationNumber string
	Destination        string
	ReturnLocation     string
}
