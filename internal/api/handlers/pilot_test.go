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

// PilotHandlerTestSuite defines the test suite for PilotHandler
type PilotHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPilotServiceInterface
	handler     *handlers.PilotHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PilotHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPilotServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewPilotHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	pilots := v1.Group("/pilots")
	{
		pilots.GET("", suite.handler.ListPilots)
		pilots.POST("", suite.handler.CreatePilot)
		pilots.GET("/:id", suite.handler.GetPilot)
		pilots.PUT("/:id", suite.handler.UpdatePilot)
		pilots.DELETE("/:id", suite.handler.DeletePilot)
	}
}

// TearDownTest cleans up after each test
func (suite *PilotHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *PilotHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreatePilot tests the CreatePilot handler
func (suite *PilotHandlerTestSuite) TestCreatePilot() {
	// Test successful pilot creation
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Jane",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		expectedResponse := &service.PilotResponse{
			ID:          1,
			FirstName:   "Jane",
			LastName:    "Doe",
			DateOfBirth: "1985-04-12",
			CreatedAt:   "2025-06-01T10:00:00Z",
			UpdatedAt:   "2025-06-01T10:00:00Z",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pilots", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.PilotResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, expectedResponse.FirstName, response.FirstName)
		assert.Equal(t, expectedResponse.LastName, response.LastName)
		assert.Equal(t, expectedResponse.DateOfBirth, response.DateOfBirth)
	})

	// Test validation error
	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("", "FirstName is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pilots", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})

	// Test malformed date of birth
	suite.T().Run("Malformed Date", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Jane",
			"last_name":     "Doe",
			"date_of_birth": "12/04/1985",
		}

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pilots", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Jane",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pilots", requestBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to create pilot")
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/pilots")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

// TestGetPilot tests the GetPilot handler
func (suite *PilotHandlerTestSuite) TestGetPilot() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PilotResponse{
			ID:          2,
			FirstName:   "John",
			LastName:    "Smith",
			DateOfBirth: "1979-11-30",
		}

		suite.mockService.EXPECT().
			GetByID(uint(2)).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots/2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PilotResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, expectedResponse.LastName, response.LastName)
	})

	// Test invalid pilot ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots/invalid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid pilot ID")
	})

	// Test pilot not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(99)).
			Return(nil, apperrors.ErrPilotNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "pilot not found")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(2)).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots/2", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to get pilot")
	})
}

// TestListPilots tests the ListPilots handler
func (suite *PilotHandlerTestSuite) TestListPilots() {
	// Test successful listing
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PilotListResponse{
			Pilots: []service.PilotResponse{
				{ID: 1, FirstName: "Jane", LastName: "Doe", DateOfBirth: "1985-04-12"},
				{ID: 2, FirstName: "John", LastName: "Smith", DateOfBirth: "1979-11-30"},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetAll(1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PilotListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Pilots, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	// Test with pagination
	suite.T().Run("With Pagination", func(t *testing.T) {
		expectedResponse := &service.PilotListResponse{
			Pilots: []service.PilotResponse{
				{ID: 21, FirstName: "Amara", LastName: "Okafor", DateOfBirth: "1990-02-17"},
			},
			Total:    21,
			Page:     2,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetAll(2, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots?page=2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PilotListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(21), response.Total)
		assert.Equal(t, 2, response.Page)
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetAll(1, 20).
			Return(nil, fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pilots", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to get pilots")
	})
}

// TestUpdatePilot tests the UpdatePilot handler
func (suite *PilotHandlerTestSuite) TestUpdatePilot() {
	// Test successful update
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Janet",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/pilots/5", requestBody)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	// Test invalid pilot ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Janet",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/pilots/invalid", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid pilot ID")
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("PUT", "/api/v1/pilots/5")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	// Test pilot not found
	suite.T().Run("Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Janet",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(apperrors.ErrPilotNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/pilots/99", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "pilot not found")
	})

	// Test validation error
	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(apperrors.NewValidationError("", "FirstName is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/pilots/5", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":    "Janet",
			"last_name":     "Doe",
			"date_of_birth": "1985-04-12",
		}

		suite.mockService.EXPECT().
			Update(uint(5), gomock.Any()).
			Return(fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/pilots/5", requestBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to update pilot")
	})
}

// TestDeletePilot tests the DeletePilot handler
func (suite *PilotHandlerTestSuite) TestDeletePilot() {
	// Test successful deletion
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(4)).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/pilots/4", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	// Test invalid pilot ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/pilots/invalid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid pilot ID")
	})

	// Test pilot not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(99)).
			Return(apperrors.ErrPilotNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/pilots/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "pilot not found")
	})

	// Test service error
	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Delete(uint(4)).
			Return(fmt.Errorf("database connection error")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/pilots/4", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to delete pilot")
	})
}

// TestPilotHandlerTestSuite runs the test suite
func TestPilotHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PilotHandlerTestSuite))
}
