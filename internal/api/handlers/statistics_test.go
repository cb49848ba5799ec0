package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"flight-scheduler-backend/internal/api/handlers"
	"flight-scheduler-backend/internal/mocks"
	"flight-scheduler-backend/internal/service"
	"flight-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatisticsHandlerTestSuite defines the test suite for StatisticsHandler
type StatisticsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStatisticsServiceInterface
	handler     *handlers.StatisticsHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StatisticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStatisticsServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewStatisticsHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/flights/statistics", suite.handler.GetFlightStatistics)
}

// TearDownTest cleans up after each test
func (suite *StatisticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetFlightStatistics tests the GetFlightStatistics handler
func (suite *StatisticsHandlerTestSuite) TestGetFlightStatistics() {
	// Test successful statistics retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.FlightStatisticsResponse{
			TotalFlights: 6,
			MostCommonDestination: &service.DestinationStatResponse{
				Destination: "LAX",
				Count:       3,
			},
			MostCommonAircraftType: &service.AircraftTypeStatResponse{
				Type:  "Boeing 737",
				Count: 4,
			},
		}

		suite.mockService.EXPECT().
			GetFlightStatistics().
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/statistics", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FlightStatisticsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(6), response.TotalFlights)
		assert.Equal(t, "LAX", response.MostCommonDestination.Destination)
		assert.Equal(t, int64(3), response.MostCommonDestination.Count)
		assert.Equal(t, "Boeing 737", response.MostCommonAircraftType.Type)
		assert.Equal(t, int64(4), response.MostCommonAircraftType.Count)
	})

	// Test statistics with no flights
	suite.T().Run("No Flights", func(t *testing.T) {
		expectedResponse := &service.FlightStatisticsResponse{
			TotalFlights: 0,
		}

		suite.mockService.EXPECT().
			GetFlightStatistics().
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/statistics", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, float64(0), response["total_flights"])
		assert.Nil(t, response["most_common_destination"])
		assert.Nil(t, response["most_common_aircraft_type"])
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetFlightStatistics().
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/flights/statistics", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to compute flight statistics")
	})
}

// TestStatisticsHandlerTestSuite runs the test suite
func TestStatisticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerTestSuite))
}
