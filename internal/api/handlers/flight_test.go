package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-scheduler-backend/internal/api/handlers"
	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/mocks"
	"flight-scheduler-backend/internal/service"
	"flight-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// flightRequestBody returns a complete flight payload for create and update requests.
func flightRequestBody() map[string]interface{} {
	return map[string]interface{}{
		"aircraft_id":      1,
		"origin":           "JFK",
		"destination":      "LAX",
		"route":            "JFK-LAX",
		"origin_terminal":  "T4",
		"arrival_terminal": "TB",
		"departure_gate":   "B22",
		"arrival_gate":     "130",
		"departure_date":   "2025-06-01",
		"departure_time":   "09:30:00",
		"arrival_date":     "2025-06-01",
		"arrival_time":     "12:45:00",
	}
}

// FlightHandlerTestSuite defines the test suite for FlightHandler
type FlightHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFlightServiceInterface
	handler     *handlers.FlightHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *FlightHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFlightServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewFlightHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	flights := v1.Group("/flights")
	{
		flights.GET("", suite.handler.ListFlights)
		flights.POST("", suite.handler.CreateFlight)
		flights.GET("/:id", suite.handler.GetFlight)
		flights.PUT("/:id", suite.handler.UpdateFlight)
		flights.DELETE("/:id", suite.handler.DeleteFlight)
	}

	// Aircraft flights route
	v1.GET("/aircrafts/:id/flights", suite.handler.GetFlightsByAircraft)
}

// TearDownTest cleans up after each test
func (suite *FlightHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *FlightHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateFlight tests the CreateFlight handler
func (suite *FlightHandlerTestSuite) TestCreateFlight() {
	// Test successful flight creation
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.FlightResponse{
			ID:            1,
			AircraftID:    1,
			Origin:        "JFK",
			Destination:   "LAX",
			Route:         "JFK-LAX",
			DepartureDate: "2025-06-01",
			DepartureTime: "09:30:00",
			ArrivalDate:   "2025-06-01",
			ArrivalTime:   "12:45:00",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/flights", flightRequestBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.FlightResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, expectedResponse.Origin, response.Origin)
		assert.Equal(t, expectedResponse.Destination, response.Destination)
		assert.Equal(t, expectedResponse.DepartureDate, response.DepartureDate)
	})

	// Test validation error
	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := flightRequestBody()
		requestBody["origin"] = ""

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("", "Origin is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/flights", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})

	// Test referenced aircraft does not exist
	suite.T().Run("Aircraft Missing", func(t *testing.T) {
		requestBody := flightRequestBody()
		requestBody["aircraft_id"] = 99999

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrInvalidAircraftReference).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/flights", requestBody)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnprocessableEntity, "flight references a non-existent aircraft")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/flights", flightRequestBody())

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to create flight")
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/flights")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

// TestGetFlight tests the GetFlight handler
func (suite *FlightHandlerTestSuite) TestGetFlight() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.FlightResponse{
			ID:            7,
			AircraftID:    1,
			Origin:        "JFK",
			Destination:   "LAX",
			DepartureDate: "2025-06-01",
			DepartureTime: "09:30:00",
			ArrivalDate:   "2025-06-01",
			ArrivalTime:   "12:45:00",
		}

		suite.mockService.EXPECT().
			GetByID(uint(7)).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/7", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FlightResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, expectedResponse.Destination, response.Destination)
	})

	// Test invalid flight ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/invalid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid flight ID")
	})

	// Test flight not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(99)).
			Return(nil, apperrors.ErrFlightNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "flight not found")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(7)).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/7", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to get flight")
	})
}

// TestListFlights tests the ListFlights handler
func (suite *FlightHandlerTestSuite) TestListFlights() {
	// Test successful listing
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.FlightListResponse{
			Flights: []service.FlightResponse{
				{ID: 1, AircraftID: 1, Origin: "JFK", Destination: "LAX"},
				{ID: 2, AircraftID: 1, Origin: "JFK", Destination: "SFO"},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetAll(1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FlightListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Flights, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	// Test with pagination
	suite.T().Run("With Pagination", func(t *testing.T) {
		expectedResponse := &service.FlightListResponse{
			Flights: []service.FlightResponse{
				{ID: 11, AircraftID: 2, Origin: "ORD", Destination: "DEN"},
			},
			Total:    11,
			Page:     3,
			PageSize: 5,
		}

		suite.mockService.EXPECT().
			GetAll(3, 5).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights?page=3&page_size=5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FlightListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(11), response.Total)
		assert.Equal(t, 3, response.Page)
		assert.Equal(t, 5, response.PageSize)
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll(1, 20).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to get flights")
	})
}

// TestUpdateFlight tests the UpdateFlight handler
func (suite *FlightHandlerTestSuite) TestUpdateFlight() {
	// Test successful update
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/flights/5", flightRequestBody())

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	// Test invalid flight ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/flights/invalid", flightRequestBody())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid flight ID")
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("PUT", "/api/v1/flights/5")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	// Test flight not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(apperrors.ErrFlightNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/flights/99", flightRequestBody())

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "flight not found")
	})

	// Test referenced aircraft does not exist
	suite.T().Run("Aircraft Missing", func(t *testing.T) {
		requestBody := flightRequestBody()
		requestBody["aircraft_id"] = 99999

		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(apperrors.ErrInvalidAircraftReference).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/flights/5", requestBody)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnprocessableEntity, "flight references a non-existent aircraft")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/flights/5", flightRequestBody())

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to update flight")
	})
}

// TestDeleteFlight tests the DeleteFlight handler
func (suite *FlightHandlerTestSuite) TestDeleteFlight() {
	// Test successful deletion
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(4)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/flights/4", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	// Test invalid flight ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/flights/invalid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid flight ID")
	})

	// Test flight not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(99)).
			Return(apperrors.ErrFlightNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/flights/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "flight not found")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(4)).
			Return(fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/flights/4", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to delete flight")
	})
}

// TestGetFlightsByAircraft tests the GetFlightsByAircraft handler
func (suite *FlightHandlerTestSuite) TestGetFlightsByAircraft() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedFlights := []service.FlightResponse{
			{ID: 1, AircraftID: 7, Origin: "JFK", Destination: "LAX"},
			{ID: 2, AircraftID: 7, Origin: "LAX", Destination: "JFK"},
		}

		suite.mockService.EXPECT().
			GetByAircraft(uint(7)).
			Return(expectedFlights, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircrafts/7/flights", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.FlightResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, uint(7), response[0].AircraftID)
	})

	// Test aircraft with no flights
	suite.T().Run("Empty", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByAircraft(uint(7)).
			Return([]service.FlightResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircrafts/7/flights", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.FlightResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Empty(t, response)
	})

	// Test invalid aircraft ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircrafts/invalid/flights", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid aircraft ID")
	})

	// Test aircraft not found
	suite.T().Run("Aircraft Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByAircraft(uint(99)).
			Return(nil, apperrors.ErrAircraftNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircrafts/99/flights", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "aircraft not found")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByAircraft(uint(7)).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircrafts/7/flights", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to get flights")
	})
}

// TestFlightHandlerTestSuite runs the test suite
func TestFlightHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FlightHandlerTestSuite))
}
