package domain

import "time"

type Location struct {
	ID   int64
	Name string
}

type Flight struct {
	ID            int64
	Price         int64
	Airline       string
	DestinationID int64
	ReturnID      int64
	StartDate     time.Time
	EndDate       time.Time
	Capacity      int
}

// SearchFilter narrows a flight search. All fields are optional; dates
// are YYYY-MM-DD strings as received on the wire.
type SearchFilter struct {
	StartDate   string
	EndDate     string
	Destination string
}

// FlightListing is a search result row: the flight joined with the
// display name of its destination.
type FlightListing struct {
	Flight
	Location string
}

// FlightDetail carries both location names for the detail view.
type FlightDetail struct {
	Flight
	Destination    string
	ReturnLocation string
}
