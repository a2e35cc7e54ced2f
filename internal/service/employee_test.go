package service_test

import (
	"testing"

	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/mocks"
	"timesheet-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	employeeService  *service.EmployeeService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.employeeService = service.NewEmployeeService(suite.mockEmployeeRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEmployee tests creating an employee
func (suite *EmployeeServiceTestSuite) TestCreateEmployee() {
	startDate := "2024-01-15"
	req := &service.CreateEmployeeRequest{
		AuthUserID: "i501234",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		StartDate:  &startDate,
	}

	suite.mockEmployeeRepo.EXPECT().
		GetByAuthUserID(req.AuthUserID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockEmployeeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(employee *models.Employee) error {
			assert.Equal(suite.T(), "i501234", employee.AuthUserID)
			suite.Require().NotNil(employee.StartDate)
			return nil
		}).
		Times(1)

	response, err := suite.employeeService.CreateEmployee(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Jane", response.FirstName)
	suite.Require().NotNil(response.StartDate)
	assert.Equal(suite.T(), "2024-01-15", *response.StartDate)
}

// TestCreateEmployeeDuplicate tests the one-row-per-auth-user guard
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeDuplicate() {
	req := &service.CreateEmployeeRequest{
		AuthUserID: "i501234",
		FirstName:  "Jane",
		LastName:   "Doe",
	}
	existing := &models.Employee{AuthUserID: "i501234"}

	suite.mockEmployeeRepo.EXPECT().GetByAuthUserID(req.AuthUserID).Return(existing, nil).Times(1)

	_, err := suite.employeeService.CreateEmployee(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeExists)
}

// TestCreateEmployeeRejectsInvertedEmployment tests end-before-start validation
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeRejectsInvertedEmployment() {
	startDate := "2024-06-01"
	endDate := "2024-01-01"
	req := &service.CreateEmployeeRequest{
		AuthUserID: "i501234",
		FirstName:  "Jane",
		LastName:   "Doe",
		StartDate:  &startDate,
		EndDate:    &endDate,
	}

	suite.mockEmployeeRepo.EXPECT().
		GetByAuthUserID(req.AuthUserID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.employeeService.CreateEmployee(req)

	var validation *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validation)
}

// TestUpdateEmployeeClearSettings tests the present-but-null convention
func (suite *EmployeeServiceTestSuite) TestUpdateEmployeeClearSettings() {
	id := uuid.New()
	settingsID := uuid.New()
	existing := &models.Employee{AuthUserID: "i501234", FirstName: "Jane", SettingsID: &settingsID}
	existing.ID = id

	suite.mockEmployeeRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockEmployeeRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(employee *models.Employee) error {
			assert.Nil(suite.T(), employee.SettingsID)
			return nil
		}).
		Times(1)

	response, err := suite.employeeService.UpdateEmployee(id, &service.UpdateEmployeeRequest{ClearSettings: true})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.SettingsID)
}

// TestGetEmployeeNotFound tests the missing-row mapping
func (suite *EmployeeServiceTestSuite) TestGetEmployeeNotFound() {
	id := uuid.New()
	suite.mockEmployeeRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.employeeService.GetEmployee(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

// TestListEmployees tests pagination passthrough
func (suite *EmployeeServiceTestSuite) TestListEmployees() {
	rows := []models.Employee{
		{AuthUserID: "i501234", FirstName: "Jane"},
		{AuthUserID: "i509999", FirstName: "John"},
	}
	suite.mockEmployeeRepo.EXPECT().GetAll(20, 0).Return(rows, int64(2), nil).Times(1)

	response, err := suite.employeeService.ListEmployees(20, 0)

	suite.Require().NoError(err)
	assert.Len(suite.T(), response.Employees, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 20, response.Limit)
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
