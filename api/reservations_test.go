package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/service/history"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) Reserve(ctx context.Context, customerID, flightID int64) (*domain.Reservation, error) {
	args := m.Called(ctx, customerID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockHistoryUseCase struct {
	mock.Mock
}

func (m *MockHistoryUseCase) History(ctx context.Context, customerID int64) (*history.Flights, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.Flights), args.Error(1)
}

func storeFlightForm() url.Values {
	return url.Values{"flightID": {"4"}, "customerID": {"7"}}
}

func TestReservationHandler_store(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	mockHistory := &MockHistoryUseCase{}
	handler := NewReservationHandler(mockReservations, mockHistory)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/store_flight", storeFlightForm())

	mockReservations.On("Reserve", c.Request.Context(), int64(7), int64(4)).Return(&domain.Reservation{
		ID:                 1,
		CustomerID:         7,
		FlightID:           4,
		ConfirmationNumber: "58c9a2f6",
	}, nil)

	handler.store(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Flight stored successfully", w.Body.String())

	mockReservations.AssertExpectations(t)
}

func TestReservationHandler_store_Outcomes(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "Date conflict",
			err:      domain.ErrDateConflict,
			wantCode: http.StatusOK,
			wantBody: "You are already booked on those dates. Please select a different date for your flight. Thank you",
		},
		{
			name:     "Sold out",
			err:      domain.ErrNoSeats,
			wantCode: http.StatusOK,
			wantBody: "This flight is fully booked. Please select a different flight.",
		},
		{
			name:     "Reservation in progress",
			err:      domain.ErrReservationInProgress,
			wantCode: http.StatusOK,
			wantBody: "Your reservation is still being processed. Please try again in a moment.",
		},
		{
			name:     "Server error",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
			wantBody: ServerErrorMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockReservations := &MockReservationUseCase{}
			handler := NewReservationHandler(mockReservations, &MockHistoryUseCase{})

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = formRequest("/store_flight", storeFlightForm())

			mockReservations.On("Reserve", c.Request.Context(), int64(7), int64(4)).Return(nil, tc.err)

			handler.store(c)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestReservationHandler_store_MissingParams(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	handler := NewReservationHandler(mockReservations, &MockHistoryUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/store_flight", url.Values{"flightID": {"4"}})

	handler.store(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, clientErrorMessage, w.Body.String())
	mockReservations.AssertNotCalled(t, "Reserve")
}

func TestReservationHandler_store_FlightNotFound(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	handler := NewReservationHandler(mockReservations, &MockHistoryUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/store_flight", storeFlightForm())

	mockReservations.On("Reserve", c.Request.Context(), int64(7), int64(4)).Return(nil, domain.ErrNotFound)

	handler.store(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationHandler_flightHistory(t *testing.T) {
	mockHistory := &MockHistoryUseCase{}
	handler := NewReservationHandler(&MockReservationUseCase{}, mockHistory)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/flight_history", url.Values{"id": {"7"}})

	mockHistory.On("History", c.Request.Context(), int64(7)).Return(&history.Flights{
		Past: []domain.BookedFlight{
			{
				Price:              450,
				Airline:            "Alaska",
				StartDate:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:            time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				ConfirmationNumber: "a",
				Destination:        "Paris",
				ReturnLocation:     "Seattle",
			},
		},
		Current: []domain.BookedFlight{},
	}, nil)

	handler.flightHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"past_flights"`)
	assert.Contains(t, w.Body.String(), `"current_flights":[]`)
	assert.Contains(t, w.Body.String(), `"end_date":"2024-06-10"`)
	assert.Contains(t, w.Body.String(), `"returnLocation":"Seattle"`)

	mockHistory.AssertExpectations(t)
}

func TestReservationHandler_flightHistory_MissingID(t *testing.T) {
	mockHistory := &MockHistoryUseCase{}
	handler := NewReservationHandler(&MockReservationUseCase{}, mockHistory)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/flight_history", url.Values{})

	handler.flightHistory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockHistory.AssertNotCalled(t, "History")
}
