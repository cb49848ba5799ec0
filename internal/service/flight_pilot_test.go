package service_test

import (
	"errors"
	"testing"
	"time"

	"flight-scheduler-backend/internal/database/models"
	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/mocks"
	"flight-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type FlightPilotServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockFlightPilotRepositoryInterface
	mockFlightRepo     *mocks.MockFlightRepositoryInterface
	mockPilotRepo      *mocks.MockPilotRepositoryInterface
	assignmentService  *service.FlightPilotService
	validator          *validator.Validate
}

func (suite *FlightPilotServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockFlightPilotRepositoryInterface(suite.ctrl)
	suite.mockFlightRepo = mocks.NewMockFlightRepositoryInterface(suite.ctrl)
	suite.mockPilotRepo = mocks.NewMockPilotRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.assignmentService = service.NewFlightPilotService(
		suite.mockAssignmentRepo,
		suite.mockFlightRepo,
		suite.mockPilotRepo,
		suite.validator,
	)
}

func (suite *FlightPilotServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// testPilot builds a persisted-looking pilot model
func testPilot(id uint) *models.Pilot {
	return &models.Pilot{
		BaseModel:   models.BaseModel{ID: id},
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: models.NewDate(1985, time.April, 12),
	}
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_Success() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), uint(1), resp.FlightID)
	assert.Equal(suite.T(), uint(2), resp.PilotID)
	assert.NotEmpty(suite.T(), resp.AssignedAt)
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_ValidationError() {
	req := &service.AssignPilotRequest{PilotID: 0} // required

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation error")
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_FlightNotFound() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "flight not found")
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_PilotNotFound() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "pilot not found")
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_AlreadyAssigned() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Contains(suite.T(), err.Error(), "pilot assignment already exists for this flight")
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_ExistsCheckError() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(false, errors.New("db failed"))

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to check existing assignment")
}

func (suite *FlightPilotServiceTestSuite) TestAssignPilot_CreateError() {
	req := &service.AssignPilotRequest{PilotID: 2}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db failed"))

	resp, err := suite.assignmentService.AssignPilot(1, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to create pilot assignment")
}

func (suite *FlightPilotServiceTestSuite) TestUnassignPilot_Success() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)
	suite.mockAssignmentRepo.EXPECT().Delete(uint(1), uint(2)).Return(nil)

	err := suite.assignmentService.UnassignPilot(1, 2)

	assert.NoError(suite.T(), err)
}

func (suite *FlightPilotServiceTestSuite) TestUnassignPilot_FlightNotFound() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.assignmentService.UnassignPilot(1, 2)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "flight not found")
}

func (suite *FlightPilotServiceTestSuite) TestUnassignPilot_PilotNotFound() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.assignmentService.UnassignPilot(1, 2)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "pilot not found")
}

func (suite *FlightPilotServiceTestSuite) TestUnassignPilot_AssignmentNotFound() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)

	err := suite.assignmentService.UnassignPilot(1, 2)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Contains(suite.T(), err.Error(), "pilot assignment not found")
}

func (suite *FlightPilotServiceTestSuite) TestUnassignPilot_DeleteError() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)
	suite.mockAssignmentRepo.EXPECT().Delete(uint(1), uint(2)).Return(errors.New("db failed"))

	err := suite.assignmentService.UnassignPilot(1, 2)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to unassign pilot")
}

func (suite *FlightPilotServiceTestSuite) TestGetPilotsByFlight_Success() {
	pilots := []models.Pilot{*testPilot(2), *testPilot(3)}

	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockAssignmentRepo.EXPECT().GetPilotsByFlightID(uint(1)).Return(pilots, nil)

	resp, err := suite.assignmentService.GetPilotsByFlight(1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), uint(2), resp[0].ID)
	assert.Equal(suite.T(), "Doe", resp[0].LastName)
	assert.Equal(suite.T(), "1985-04-12", resp[0].DateOfBirth)
}

func (suite *FlightPilotServiceTestSuite) TestGetPilotsByFlight_FlightNotFound() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.GetPilotsByFlight(1)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "flight not found")
}

func (suite *FlightPilotServiceTestSuite) TestGetPilotsByFlight_Empty() {
	suite.mockFlightRepo.EXPECT().GetByID(uint(1)).Return(testFlight(1, 1), nil)
	suite.mockAssignmentRepo.EXPECT().GetPilotsByFlightID(uint(1)).Return([]models.Pilot{}, nil)

	resp, err := suite.assignmentService.GetPilotsByFlight(1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 0)
}

func (suite *FlightPilotServiceTestSuite) TestGetFlightsByPilot_Success() {
	flights := []models.Flight{*testFlight(1, 1), *testFlight(4, 2)}

	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().GetFlightsByPilotID(uint(2)).Return(flights, nil)

	resp, err := suite.assignmentService.GetFlightsByPilot(2)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), uint(1), resp[0].ID)
	assert.Equal(suite.T(), uint(4), resp[1].ID)
	assert.Equal(suite.T(), "LAX", resp[0].Destination)
}

func (suite *FlightPilotServiceTestSuite) TestGetFlightsByPilot_PilotNotFound() {
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.GetFlightsByPilot(2)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "pilot not found")
}

func (suite *FlightPilotServiceTestSuite) TestGetFlightsByPilot_ServiceError() {
	suite.mockPilotRepo.EXPECT().GetByID(uint(2)).Return(testPilot(2), nil)
	suite.mockAssignmentRepo.EXPECT().GetFlightsByPilotID(uint(2)).Return(nil, errors.New("db failed"))

	resp, err := suite.assignmentService.GetFlightsByPilot(2)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get flights for pilot")
}

func (suite *FlightPilotServiceTestSuite) TestIsAssigned() {
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)

	assigned, err := suite.assignmentService.IsAssigned(1, 2)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), assigned)
}

func (suite *FlightPilotServiceTestSuite) TestIsAssigned_NotAssigned() {
	suite.mockAssignmentRepo.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)

	assigned, err := suite.assignmentService.IsAssigned(1, 2)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), assigned)
}

func TestFlightPilotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlightPilotServiceTestSuite))
}
