package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/service/history"
	"github.com/abalfour/flightbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservations reservation.ReservationUseCase
	history      history.HistoryUseCase
}

func NewReservationHandler(reservations reservation.ReservationUseCase, history history.HistoryUseCase) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, history: history}
}

func (h *ReservationHandler) Register(router *gin.Engine) {
	router.POST("/store_flight", h.store)
	router.POST("/flight_history", h.flightHistory)
}

type bookedFlightResponse struct {
	Price              int64  `json:"price"`
	Airline            string `json:"airline"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	DestinationID      int64  `json:"destination_id"`
	ReturnID           int64  `json:"return_id"`
	ConfirmationNumber string `json:"confirmation_number"`
	Destination        string `json:"destination"`
	ReturnLocation     string `json:"returnLocation"`
}

type historyResponse struct {
	PastFlights    []bookedFlightResponse `json:"past_flights"`
	CurrentFlights []bookedFlightResponse `json:"current_flights"`
}

func (h *ReservationHandler) store(c *gin.Context) {
	rawFlight := c.PostForm("flightID")
	rawCustomer := c.PostForm("customerID")
	if rawFlight == "" || rawCustomer == "" {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}
	flightID, err := strconv.ParseInt(rawFlight, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}
	customerID, err := strconv.ParseInt(rawCustomer, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}

	_, err = h.reservations.Reserve(c.Request.Context(), customerID, flightID)
	switch {
	case err == nil:
		c.String(http.StatusOK, "Flight stored successfully")
	case errors.Is(err, domain.ErrDateConflict):
		c.String(http.StatusOK, "You are already booked on those dates. Please select a different date for your flight. Thank you")
	case errors.Is(err, domain.ErrNoSeats):
		c.String(http.StatusOK, "This flight is fully booked. Please select a different flight.")
	case errors.Is(err, domain.ErrReservationInProgress):
		c.String(http.StatusOK, "Your reservation is still being processed. Please try again in a moment.")
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
	default:
		c.String(http.StatusInternalServerError, ServerErrorMessage)
	}
}

func (h *ReservationHandler) flightHistory(c *gin.Context) {
	raw := c.PostForm("id")
	if raw == "" {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}
	customerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}

	result, err := h.history.History(c.Request.Context(), customerID)
	if err != nil {
		c.String(http.StatusInternalServerError, ServerErrorMessage)
		return
	}

	c.JSON(http.StatusOK, historyResponse{
		PastFlights:    toBookedFlightResponses(result.Past),
		CurrentFlights: toBookedFlightResponses(result.Current),
	})
}

func toBookedFlightResponses(booked []domain.BookedFlight) []bookedFlightResponse {
	out := make([]bookedFlightResponse, 0, len(booked))
	for _, b := range booked {
		out = append(out, bookedFlightResponse{
			Price:              b.Price,
			Airline:            b.Airline,
			StartDate:          b.StartDate.Format(dateLayout),
			EndDate:            b.EndDate.Format(dateLayout),
			DestinationID:      b.DestinationID,
			ReturnID:           b.ReturnID,
			ConfirmationNumber: b.ConfirmationNumber,
			Destination:        b.Destination,
			ReturnLocation:     b.ReturnLocation,
		})
	}
	return out
}
