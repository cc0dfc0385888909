package email

import (
	"context"
	"fmt"

	"github.com/abalfour/flightbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send confirmation %s to %s for %s flight to %s departing %s\n",
		event.ConfirmationNumber, event.Email, event.Airline, event.Destination, event.StartDate)
	return nil
}
