package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.Engine) {
	router.GET("/flightslist", h.list)
	router.POST("/get_flight", h.get)
}

type flightListingResponse struct {
	ID            int64  `json:"id"`
	Price         int64  `json:"price"`
	Airline       string `json:"airline"`
	DestinationID int64  `json:"destination_id"`
	ReturnID      int64  `json:"return_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Capacity      int    `json:"capacity"`
	Location      string `json:"location"`
}

type flightDetailResponse struct {
	ID             int64  `json:"id"`
	Price          int64  `json:"price"`
	Airline        string `json:"airline"`
	DestinationID  int64  `json:"destination_id"`
	ReturnID       int64  `json:"return_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Capacity       int    `json:"capacity"`
	Destination    string `json:"destination"`
	ReturnLocation string `json:"returnLocation"`
}

func (h *FlightHandler) list(c *gin.Context) {
	filter := domain.SearchFilter{
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		Destination: c.Query("destination"),
	}

	results, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		c.String(http.StatusInternalServerError, ServerErrorMessage)
		return
	}

	out := make([]flightListingResponse, 0, len(results))
	for _, f := range results {
		out = append(out, flightListingResponse{
			ID:            f.ID,
			Price:         f.Price,
			Airline:       f.Airline,
			DestinationID: f.DestinationID,
			ReturnID:      f.ReturnID,
			StartDate:     f.StartDate.Format(dateLayout),
			EndDate:       f.EndDate.Format(dateLayout),
			Capacity:      f.Capacity,
			Location:      f.Location,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) get(c *gin.Context) {
	raw := c.PostForm("id")
	if raw == "" {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, clientErrorMessage)
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
			return
		}
		c.String(http.StatusInternalServerError, ServerErrorMessage)
		return
	}

	c.JSON(http.StatusOK, flightDetailResponse{
		ID:             flight.ID,
		Price:          flight.Price,
		Airline:        flight.Airline,
		DestinationID:  flight.DestinationID,
		ReturnID:       flight.ReturnID,
		StartDate:      flight.StartDate.Format(dateLayout),
		EndDate:        flight.EndDate.Format(dateLayout),
		Capacity:       flight.Capacity,
		Destination:    flight.Destination,
		ReturnLocation: flight.ReturnLocation,
	})
}
